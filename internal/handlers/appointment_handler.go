package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/calensys/appointment-api/internal/domain/schedule"
	"github.com/calensys/appointment-api/internal/httperr"
	"github.com/calensys/appointment-api/internal/httpresp"
	ucSchedule "github.com/calensys/appointment-api/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	findSlots *ucSchedule.FindAvailableSlots
	book      *ucSchedule.BookAppointment
	cancel    *ucSchedule.CancelAppointment
	list      *ucSchedule.ListAppointments
}

func NewAppointmentHandler(
	findSlots *ucSchedule.FindAvailableSlots,
	book *ucSchedule.BookAppointment,
	cancel *ucSchedule.CancelAppointment,
	list *ucSchedule.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		findSlots: findSlots,
		book:      book,
		cancel:    cancel,
		list:      list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	Date string `json:"date" binding:"required,dateymd" example:"2024-04-01"`
	Time string `json:"time" binding:"required,hhmm" example:"10:00"`

	Slots int `json:"slots" binding:"required,min=1,max=5" example:"1"`
}

// ======================================================
// ROUTES
// ======================================================

// AvailableSlots godoc
// @Summary      List bookable slots for a date
// @Description  Returns the date's slot listing minus unavailable-hour exclusions. A day off blocks the whole date.
// @Tags         appointments
// @Produce      json
// @Param        date  query  string  true  "Date in YYYY-MM-DD format"
// @Success      200  {array}   models.Slot
// @Failure      400  {object}  httperr.HTTPError
// @Failure      404  {object}  httperr.HTTPError
// @Router       /appointments/available-slots [get]
func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	date := c.Query("date")
	if _, err := schedule.ParseDate(date); err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be in YYYY-MM-DD format")
		return
	}

	slots, err := h.findSlots.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Reply(c, err)
		return
	}

	httpresp.OK(c, slots)
}

// Book godoc
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        request  body  BookAppointmentRequest  true  "Booking data"
// @Success      201  {object}  models.Appointment
// @Failure      400  {object}  httperr.HTTPError
// @Router       /appointments/book [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucSchedule.BookAppointmentInput{
		Date:  req.Date,
		Time:  req.Time,
		Slots: req.Slots,
	})
	if err != nil {
		httperr.Reply(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// Cancel godoc
// @Summary      Cancel an appointment
// @Tags         appointments
// @Produce      json
// @Param        id  path  string  true  "Appointment ID"
// @Success      200  {object}  httpresp.MessageResponse
// @Failure      404  {object}  httperr.HTTPError
// @Router       /appointments/cancel/{id} [delete]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	if err := h.cancel.Execute(c.Request.Context(), id); err != nil {
		httperr.Reply(c, err)
		return
	}

	httpresp.Message(c, "Appointment has been successfully canceled")
}

// List godoc
// @Summary      List all appointments
// @Tags         appointments
// @Produce      json
// @Success      200  {object}  httpresp.ListResponse[models.Appointment]
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Reply(c, err)
		return
	}

	httpresp.List(c, appointments)
}
