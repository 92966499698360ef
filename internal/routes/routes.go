package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fadeapp/fadeapp-api/internal/audit"
	"github.com/fadeapp/fadeapp-api/internal/cache"
	"github.com/fadeapp/fadeapp-api/internal/config"
	"github.com/fadeapp/fadeapp-api/internal/handlers"
	infraRepo "github.com/fadeapp/fadeapp-api/internal/infra/repository"
	"github.com/fadeapp/fadeapp-api/internal/middleware"
	"github.com/fadeapp/fadeapp-api/internal/storage"
	ucAppointment "github.com/fadeapp/fadeapp-api/internal/usecase/appointment"
	ucSchedule "github.com/fadeapp/fadeapp-api/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	scheduleCache := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	uploader := storage.NewS3Uploader(cfg)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(appointmentRepo, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	listByClientUC := ucAppointment.NewListAppointmentsByClient(appointmentRepo)
	listByBarberUC := ucAppointment.NewListAppointmentsByBarber(appointmentRepo)
	listByShopUC := ucAppointment.NewListAppointmentsByBarbershop(appointmentRepo)

	// ======================================================
	// USE CASES — SCHEDULES
	// ======================================================
	createScheduleUC := ucSchedule.NewCreateSchedule(scheduleRepo, auditDispatcher)
	updateScheduleUC := ucSchedule.NewUpdateSchedule(scheduleRepo, auditDispatcher)
	setAvailabilityUC := ucSchedule.NewSetScheduleAvailability(scheduleRepo, auditDispatcher)
	blockDayUC := ucSchedule.NewBlockDay(scheduleRepo, auditDispatcher)
	deleteScheduleUC := ucSchedule.NewDeleteSchedule(scheduleRepo, auditDispatcher)
	listSchedulesUC := ucSchedule.NewListSchedulesByBarber(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	clientHandler := handlers.NewClientHandler(db)
	barberHandler := handlers.NewBarberHandler(db, uploader)
	barbershopHandler := handlers.NewBarbershopHandler(db, uploader)
	serviceHandler := handlers.NewServiceHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateStatusUC,
		deleteAppointmentUC,
		listByClientUC,
		listByBarberUC,
		listByShopUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(
		createScheduleUC,
		updateScheduleUC,
		setAvailabilityUC,
		blockDayUC,
		deleteScheduleUC,
		listSchedulesUC,
		scheduleCache,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register/client", authHandler.RegisterClient)
		api.POST("/auth/register/barbershop", authHandler.RegisterBarbershop)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC READS
		// ------------------------------
		api.GET("/barbershops", barbershopHandler.List)
		api.GET("/barbershops/:barbershopId", barbershopHandler.Get)
		api.GET("/barbershops/:barbershopId/barbers", barberHandler.ListByBarbershop)
		api.GET("/barbershops/:barbershopId/services", serviceHandler.ListByBarbershop)
		api.GET("/barbers/:barberId/schedules", scheduleHandler.ListByBarber)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", clientHandler.GetMe)
			secured.GET("/clients/:clientId", clientHandler.Get)
			secured.PUT("/clients/:clientId", clientHandler.Update)
			secured.GET("/clients/:clientId/appointments", appointmentHandler.ListByClient)

			secured.PUT("/barbershops/:barbershopId", barbershopHandler.Update)
			secured.POST("/barbershops/:barbershopId/avatar", barbershopHandler.UploadAvatar)
			secured.GET("/barbershops/:barbershopId/appointments", appointmentHandler.ListByBarbershop)

			secured.POST("/barbers", barberHandler.Create)
			secured.GET("/barbers/:barberId", barberHandler.Get)
			secured.PUT("/barbers/:barberId", barberHandler.Update)
			secured.POST("/barbers/:barberId/avatar", barberHandler.UploadAvatar)
			secured.GET("/barbers/:barberId/appointments", appointmentHandler.ListByBarber)

			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:serviceId", serviceHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/me", appointmentHandler.ListMine)
			secured.PUT("/appointments/:appointmentId/status", appointmentHandler.UpdateStatus)
			secured.DELETE("/appointments/:appointmentId", appointmentHandler.Delete)

			// ------------------------------
			// SCHEDULES
			// ------------------------------
			secured.POST("/schedules", scheduleHandler.Create)
			secured.PUT("/schedules/:scheduleId", scheduleHandler.Update)
			secured.DELETE("/schedules/:scheduleId", scheduleHandler.Delete)
			secured.PUT("/barbers/:barberId/block/:scheduleId", scheduleHandler.Block)
			secured.PUT("/barbers/:barberId/unblock/:scheduleId", scheduleHandler.Unblock)
			secured.PUT("/barbers/:barberId/block-day", scheduleHandler.BlockDay)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
