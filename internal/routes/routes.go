package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/calensys/appointment-api/docs"
	"github.com/calensys/appointment-api/internal/audit"
	"github.com/calensys/appointment-api/internal/handlers"
	infraRepo "github.com/calensys/appointment-api/internal/infra/repository"
	ucSchedule "github.com/calensys/appointment-api/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	findAvailableSlotsUC := ucSchedule.NewFindAvailableSlots(scheduleRepo)

	bookAppointmentUC := ucSchedule.NewBookAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucSchedule.NewCancelAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucSchedule.NewListAppointments(scheduleRepo)

	addDayOffUC := ucSchedule.NewAddDayOff(scheduleRepo, auditDispatcher)

	addUnavailableHoursUC := ucSchedule.NewAddUnavailableHours(
		scheduleRepo,
		auditDispatcher,
	)

	createSlotUC := ucSchedule.NewCreateSlot(scheduleRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		findAvailableSlotsUC,
		bookAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsUC,
	)

	adminHandler := handlers.NewScheduleAdminHandler(
		db,
		addDayOffUC,
		addUnavailableHoursUC,
		createSlotUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		appointments := api.Group("/appointments")
		{
			appointments.GET("", appointmentHandler.List)
			appointments.GET("/available-slots", appointmentHandler.AvailableSlots)
			appointments.POST("/book", appointmentHandler.Book)
			appointments.DELETE("/cancel/:id", appointmentHandler.Cancel)

			appointments.POST("/days-off", adminHandler.AddDayOff)
			appointments.GET("/days-off", adminHandler.ListDaysOff)

			appointments.POST("/unavailable-hours", adminHandler.AddUnavailableHours)
			appointments.GET("/unavailable-hours", adminHandler.ListUnavailableHours)

			appointments.POST("/add-slot", adminHandler.AddSlot)
		}
	}

	// ======================================================
	// DOCS
	// ======================================================
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
