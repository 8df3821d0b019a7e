package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/markeugine/atelier-backend/internal/config"
	"github.com/markeugine/atelier-backend/internal/handlers"
	"github.com/markeugine/atelier-backend/internal/imagegen"
	infraRepo "github.com/markeugine/atelier-backend/internal/infra/repository"
	"github.com/markeugine/atelier-backend/internal/mail"
	"github.com/markeugine/atelier-backend/internal/middleware"
	"github.com/markeugine/atelier-backend/internal/notify"
	"github.com/markeugine/atelier-backend/internal/otp"
	"github.com/markeugine/atelier-backend/internal/storage"
	ucAppointment "github.com/markeugine/atelier-backend/internal/usecase/appointment"
	ucDesign "github.com/markeugine/atelier-backend/internal/usecase/design"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	designRepo := infraRepo.NewDesignGormRepository(db)

	notifyWriter := notify.NewWriter(db)
	notifyDispatcher := notify.NewDispatcher(notifyWriter)

	otpStore := otp.NewRedisStore(cfg)
	otpService := otp.NewService(otpStore)
	mailer := mail.NewMailer(cfg)

	store := storage.New(cfg)
	imageClient := imagegen.NewClient(cfg.StabilityAPIKey)

	// ======================================================
	// USE CASES - APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		notifyDispatcher,
	)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	listUserAppointmentsUC := ucAppointment.NewListUserAppointments(appointmentRepo)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		notifyDispatcher,
	)
	updateOwnAppointmentUC := ucAppointment.NewUpdateOwnAppointment(
		appointmentRepo,
		notifyDispatcher,
	)
	deleteOwnAppointmentUC := ucAppointment.NewDeleteOwnAppointment(appointmentRepo)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	getOwnAppointmentUC := ucAppointment.NewGetOwnAppointment(appointmentRepo)

	// ======================================================
	// USE CASES - DESIGNS
	// ======================================================
	createDesignUC := ucDesign.NewCreateDesign(designRepo, notifyDispatcher)
	updateDesignUC := ucDesign.NewUpdateDesign(designRepo)
	addUpdateUC := ucDesign.NewAddUpdate(designRepo, notifyDispatcher)
	listUserDesignsUC := ucDesign.NewListUserDesigns(designRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, otpService, mailer)
	userHandler := handlers.NewUserHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		updateAppointmentUC,
		getAppointmentUC,
	)
	userAppointmentHandler := handlers.NewUserAppointmentHandler(
		createAppointmentUC,
		listUserAppointmentsUC,
		getOwnAppointmentUC,
		updateOwnAppointmentUC,
		deleteOwnAppointmentUC,
		store,
	)
	followUpHandler := handlers.NewFollowUpHandler(db)

	designHandler := handlers.NewDesignHandler(
		createDesignUC,
		updateDesignUC,
		addUpdateUC,
		designRepo,
		store,
	)
	userDesignHandler := handlers.NewUserDesignHandler(listUserDesignsUC)

	availabilityHandler := handlers.NewAvailabilityHandler(db)
	galleryHandler := handlers.NewGalleryHandler(db, store)
	notificationHandler := handlers.NewNotificationHandler(db, notifyWriter)
	messageHandler := handlers.NewMessageHandler(db)
	userInformationHandler := handlers.NewUserInformationHandler(db)
	exportHandler := handlers.NewExportHandler(db)
	imageGenHandler := handlers.NewImageGenHandler(imageClient, store)

	// ======================================================
	// STATIC MEDIA (LOCAL BACKEND ONLY)
	// ======================================================
	if cfg.StorageBackend != "s3" {
		r.Static("/media", cfg.MediaDir)
	}

	// ======================================================
	// AUTH (PUBLIC)
	// ======================================================
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/request_otp", authHandler.RequestOTP)
		authGroup.POST("/verify_otp", authHandler.VerifyOTP)
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/password_reset", authHandler.RequestPasswordReset)
		authGroup.POST("/password_reset/confirm", authHandler.ConfirmPasswordReset)
	}

	// ======================================================
	// PUBLIC READS
	// ======================================================
	r.GET("/gallery/attires", galleryHandler.List)
	r.GET("/gallery/attires/:id", galleryHandler.Retrieve)
	r.GET("/availability/display_unavailability", availabilityHandler.Display)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(db))
	{
		secured.POST("/logout", authHandler.Logout)
		secured.POST("/logoutall", authHandler.LogoutAll)

		secured.GET("/me", userHandler.GetMe)
		secured.PATCH("/me", userHandler.UpdateMe)

		// ------------------------------
		// APPOINTMENTS (OWNER)
		// ------------------------------
		secured.POST("/appointment/set_appointments", userAppointmentHandler.Create)
		secured.GET("/appointment/set_appointments", userAppointmentHandler.List)
		secured.GET("/appointment/user_appointments/:id", userAppointmentHandler.Retrieve)
		secured.PATCH("/appointment/user_appointments/:id", userAppointmentHandler.Update)
		secured.DELETE("/appointment/user_appointments/:id", userAppointmentHandler.Delete)

		// ------------------------------
		// FOLLOW-UPS
		// ------------------------------
		secured.POST("/appointment/follow_ups", followUpHandler.Create)
		secured.GET("/appointment/follow_ups", followUpHandler.List)
		secured.PATCH("/appointment/follow_ups/:id", followUpHandler.Update)
		secured.DELETE("/appointment/follow_ups/:id", followUpHandler.Delete)

		// ------------------------------
		// DESIGNS (OWNER)
		// ------------------------------
		secured.GET("/designs/my_designs", userDesignHandler.List)

		// ------------------------------
		// MEASUREMENTS (OWNER)
		// ------------------------------
		secured.GET("/measurements/my_measurements", userInformationHandler.MyMeasurements)

		// ------------------------------
		// NOTIFICATIONS
		// ------------------------------
		secured.GET("/notifications", notificationHandler.List)
		secured.POST("/notifications", notificationHandler.Create)
		secured.POST("/notifications/:id/mark_as_read", notificationHandler.MarkAsRead)
		secured.POST("/notifications/mark_all_as_read", notificationHandler.MarkAllAsRead)
		secured.POST("/notifications/:id/archive", notificationHandler.Archive)

		// ------------------------------
		// MESSAGES
		// ------------------------------
		secured.GET("/messages", messageHandler.List)
		secured.POST("/messages", messageHandler.Send)
		secured.POST("/messages/mark_read", messageHandler.MarkRead)

		// ------------------------------
		// IMAGE GENERATION
		// ------------------------------
		secured.POST("/generate/generate-image", imageGenHandler.Generate)
	}

	// ======================================================
	// STAFF ONLY
	// ======================================================
	staff := r.Group("/")
	staff.Use(middleware.AuthMiddleware(db), middleware.RequireStaff())
	{
		staff.GET("/users", userHandler.ListAll)

		// ------------------------------
		// APPOINTMENTS (ADMIN)
		// ------------------------------
		staff.GET("/appointment/appointments", appointmentHandler.List)
		staff.GET("/appointment/appointments/:id", appointmentHandler.Retrieve)
		staff.PATCH("/appointment/appointments/:id", appointmentHandler.Update)
		staff.GET("/appointment/export/csv", exportHandler.Appointments)

		// ------------------------------
		// AVAILABILITY
		// ------------------------------
		staff.POST("/availability/set_unavailability", availabilityHandler.Set)
		staff.PATCH("/availability/set_unavailability", availabilityHandler.PartialUpdate)

		// ------------------------------
		// GALLERY (ADMIN)
		// ------------------------------
		staff.POST("/gallery/attires", galleryHandler.Create)
		staff.PATCH("/gallery/attires/:id", galleryHandler.Update)
		staff.POST("/gallery/attires/:id/archive", galleryHandler.Archive)
		staff.DELETE("/gallery/attires/:id", galleryHandler.Delete)

		// ------------------------------
		// DESIGNS (ADMIN)
		// ------------------------------
		staff.POST("/designs", designHandler.Create)
		staff.GET("/designs", designHandler.List)
		staff.GET("/designs/:id", designHandler.Retrieve)
		staff.PATCH("/designs/:id", designHandler.Update)
		staff.DELETE("/designs/:id", designHandler.Delete)
		staff.POST("/designs/:id/add_update", designHandler.AddUpdate)
		staff.GET("/design_management/export/csv", exportHandler.Designs)

		// ------------------------------
		// MEASUREMENTS (ADMIN)
		// ------------------------------
		staff.POST("/measurements", userInformationHandler.Create)
		staff.GET("/measurements", userInformationHandler.List)
		staff.GET("/measurements/:id", userInformationHandler.Retrieve)
		staff.PATCH("/measurements/:id", userInformationHandler.Update)
		staff.DELETE("/measurements/:id", userInformationHandler.Delete)
	}
}
