package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/calensys/appointment-api/internal/httperr"
	"github.com/calensys/appointment-api/internal/httpresp"
	"github.com/calensys/appointment-api/internal/models"
	ucSchedule "github.com/calensys/appointment-api/internal/usecase/schedule"
)

// ScheduleAdminHandler manages the exclusion sets (days off, unavailable
// hours) and the slot inventory.
type ScheduleAdminHandler struct {
	db *gorm.DB

	addDayOff           *ucSchedule.AddDayOff
	addUnavailableHours *ucSchedule.AddUnavailableHours
	createSlot          *ucSchedule.CreateSlot
}

func NewScheduleAdminHandler(
	db *gorm.DB,
	addDayOff *ucSchedule.AddDayOff,
	addUnavailableHours *ucSchedule.AddUnavailableHours,
	createSlot *ucSchedule.CreateSlot,
) *ScheduleAdminHandler {
	return &ScheduleAdminHandler{
		db:                  db,
		addDayOff:           addDayOff,
		addUnavailableHours: addUnavailableHours,
		createSlot:          createSlot,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateDayOffRequest struct {
	Date   string `json:"date" binding:"required,dateymd" example:"2024-12-25"`
	Reason string `json:"reason" example:"Christmas Day"`
}

type CreateUnavailableHoursRequest struct {
	Date      string `json:"date" binding:"required,dateymd" example:"2024-04-01"`
	StartTime string `json:"start_time" binding:"required,hhmm" example:"12:00"`
	EndTime   string `json:"end_time" binding:"required,hhmm" example:"13:00"`
}

type CreateSlotRequest struct {
	Date     string `json:"date" binding:"required,dateymd" example:"2024-04-01"`
	Time     string `json:"time" binding:"required,hhmm" example:"10:00"`
	Capacity int    `json:"capacity" binding:"required,min=1,max=5" example:"1"`
}

// ======================================================
// DAYS OFF
// ======================================================

// AddDayOff godoc
// @Summary      Add a public holiday (day off)
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        request  body  CreateDayOffRequest  true  "Day off data"
// @Success      201  {object}  models.DayOff
// @Failure      400  {object}  httperr.HTTPError
// @Router       /appointments/days-off [post]
func (h *ScheduleAdminHandler) AddDayOff(c *gin.Context) {
	var req CreateDayOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	dayOff, err := h.addDayOff.Execute(c.Request.Context(), ucSchedule.AddDayOffInput{
		Date:   req.Date,
		Reason: req.Reason,
	})
	if err != nil {
		httperr.Reply(c, err)
		return
	}

	httpresp.Created(c, dayOff)
}

// ListDaysOff godoc
// @Summary      List all days off
// @Tags         appointments
// @Produce      json
// @Success      200  {object}  httpresp.ListResponse[models.DayOff]
// @Router       /appointments/days-off [get]
func (h *ScheduleAdminHandler) ListDaysOff(c *gin.Context) {
	var daysOff []models.DayOff
	if err := h.db.Order("date ASC").Find(&daysOff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_days_off", "could not list days off")
		return
	}

	httpresp.List(c, daysOff)
}

// ======================================================
// UNAVAILABLE HOURS
// ======================================================

// AddUnavailableHours godoc
// @Summary      Add an unavailable hour range
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        request  body  CreateUnavailableHoursRequest  true  "Unavailable hours data"
// @Success      201  {object}  models.UnavailableHours
// @Failure      400  {object}  httperr.HTTPError
// @Router       /appointments/unavailable-hours [post]
func (h *ScheduleAdminHandler) AddUnavailableHours(c *gin.Context) {
	var req CreateUnavailableHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	uh, err := h.addUnavailableHours.Execute(c.Request.Context(), ucSchedule.AddUnavailableHoursInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		httperr.Reply(c, err)
		return
	}

	httpresp.Created(c, uh)
}

// ListUnavailableHours godoc
// @Summary      List all unavailable hour ranges
// @Tags         appointments
// @Produce      json
// @Success      200  {object}  httpresp.ListResponse[models.UnavailableHours]
// @Router       /appointments/unavailable-hours [get]
func (h *ScheduleAdminHandler) ListUnavailableHours(c *gin.Context) {
	var ranges []models.UnavailableHours
	if err := h.db.Order("date ASC, start_time ASC").Find(&ranges).Error; err != nil {
		httperr.Internal(c, "failed_to_list_unavailable_hours", "could not list unavailable hours")
		return
	}

	httpresp.List(c, ranges)
}

// ======================================================
// SLOT INVENTORY
// ======================================================

// AddSlot godoc
// @Summary      Add a bookable slot
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        request  body  CreateSlotRequest  true  "Slot data"
// @Success      201  {object}  models.Slot
// @Failure      400  {object}  httperr.HTTPError
// @Router       /appointments/add-slot [post]
func (h *ScheduleAdminHandler) AddSlot(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	slot, err := h.createSlot.Execute(c.Request.Context(), ucSchedule.CreateSlotInput{
		Date:     req.Date,
		Time:     req.Time,
		Capacity: req.Capacity,
	})
	if err != nil {
		httperr.Reply(c, err)
		return
	}

	httpresp.Created(c, slot)
}
