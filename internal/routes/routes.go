package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/tutor-scheduler/internal/audit"
	"github.com/BruksfildServices01/tutor-scheduler/internal/config"
	"github.com/BruksfildServices01/tutor-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/tutor-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/tutor-scheduler/internal/locks"
	"github.com/BruksfildServices01/tutor-scheduler/internal/middleware"
	"github.com/BruksfildServices01/tutor-scheduler/internal/notify"
	"github.com/BruksfildServices01/tutor-scheduler/internal/payments"
	"github.com/BruksfildServices01/tutor-scheduler/internal/storage"
	"github.com/BruksfildServices01/tutor-scheduler/internal/timezone"
	ucBooking "github.com/BruksfildServices01/tutor-scheduler/internal/usecase/booking"
	ucPayment "github.com/BruksfildServices01/tutor-scheduler/internal/usecase/payment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	slotLocker := locks.NewRedisSlotLocker(cfg)
	avatarStorage := storage.NewAvatarStorage(cfg)
	notifier := notify.NewLogNotifier()

	gateway, err := payments.NewMercadoPagoGateway(cfg)
	if err != nil {
		log.Fatalf("failed to init payment gateway: %v", err)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	lessonLoc := timezone.Location(timezone.DefaultTimezone)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher)
	meetingLinkUC := ucBooking.NewAttachMeetingLink(bookingRepo, auditDispatcher)
	disputeUC := ucBooking.NewDisputeSession(bookingRepo, auditDispatcher)
	listByDateUC := ucBooking.NewListTutorBookingsByDate(bookingRepo)

	createSeriesUC := ucBooking.NewCreateSeries(bookingRepo, slotLocker, auditDispatcher)
	getSeriesUC := ucBooking.NewGetSeries(bookingRepo)
	cancelSeriesUC := ucBooking.NewCancelSeries(bookingRepo, auditDispatcher)

	sweepUC := ucBooking.NewSweepCompletions(bookingRepo, auditDispatcher, lessonLoc)

	// ======================================================
	// 🧠 USE CASES — PAYMENTS
	// ======================================================
	checkoutUC := ucPayment.NewCreateCheckout(bookingRepo, gateway, auditDispatcher, cfg.TrialPrice)
	applyPaymentUC := ucPayment.NewApplyPayment(bookingRepo, notifier, auditDispatcher)
	paymentStatusUC := ucPayment.NewGetPaymentStatus(bookingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	tutorHandler := handlers.NewTutorHandler(db, avatarStorage)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		getBookingUC,
		cancelBookingUC,
		meetingLinkUC,
		disputeUC,
		listByDateUC,
	)

	seriesHandler := handlers.NewSeriesHandler(
		createSeriesUC,
		getSeriesUC,
		cancelSeriesUC,
	)

	paymentHandler := handlers.NewPaymentHandler(
		checkoutUC,
		applyPaymentUC,
		paymentStatusUC,
		gateway,
	)

	sweepHandler := handlers.NewSweepHandler(sweepUC, cfg)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/tutors", tutorHandler.List)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// Perfil do tutor
			tutorOnly := secured.Group("/me")
			tutorOnly.Use(middleware.RequireRole(middleware.RoleTutor))
			{
				tutorOnly.PATCH("/profile", tutorHandler.UpdateMeProfile)
				tutorOnly.POST("/profile/avatar", tutorHandler.UploadAvatar)
				tutorOnly.GET("/bookings", bookingHandler.ListByDate)
			}

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			studentOnly := secured.Group("/bookings")
			studentOnly.Use(middleware.RequireRole(middleware.RoleStudent))
			{
				studentOnly.POST("", bookingHandler.Create)
				studentOnly.POST("/:id/checkout", paymentHandler.CreateCheckout)
				studentOnly.POST("/:id/dispute", bookingHandler.Dispute)
			}

			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/bookings/:id/meeting-link", bookingHandler.AttachMeetingLink)
			secured.GET("/bookings/:id/payment", paymentHandler.GetStatus)

			// ------------------------------
			// SERIES
			// ------------------------------
			series := secured.Group("/series")
			{
				series.POST("", middleware.RequireRole(middleware.RoleStudent), seriesHandler.Create)
				series.GET("/:id", seriesHandler.Get)
				series.PATCH("/:id/cancel", seriesHandler.Cancel)
			}
		}
	}

	// ======================================================
	// 🔔 WEBHOOKS + JOBS (fora do /api autenticado)
	// ======================================================
	r.POST("/webhooks/mercadopago", paymentHandler.Webhook)
	r.POST("/jobs/sweep-completions", sweepHandler.SweepCompletions)
}
