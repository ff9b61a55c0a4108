package routes

import (
	"time"

	"telecare/handlers"
	"telecare/middleware"
	"telecare/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUser)
		api.POST("/login", hb.AuthenticateUser)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.GetCurrentUser)
		api.DELETE("/me", hb.DeleteCurrentUser)
	}
}

// RegisterDoctorRoutes registers practitioner profile and scheduling
// endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		// Public directory and availability lookups.
		api.GET("", hb.ListDoctors)
		api.GET("/:id", hb.GetDoctor)
		api.GET("/:id/availability", hb.CheckDoctorAvailability)
		api.GET("/:id/slots", hb.GetDoctorTimeSlots)

		// Profile management requires authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/register", hb.RegisterDoctor)

		doctorOnly := protected.Group("")
		doctorOnly.Use(middleware.RequireRole(models.RoleDoctor))
		doctorOnly.PUT("/me/availability", hb.SetDoctorAvailability)
		doctorOnly.POST("/me/certifications", hb.AddDoctorCertification)
	}
}

// RegisterAppointmentRoutes registers the appointment lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.RequestAppointment)
		api.GET("", hb.ListMyAppointments)
		api.GET("/:id", hb.GetAppointment)
		api.PATCH("/:id", hb.UpdateAppointment)
		api.PUT("/:id/cancel", hb.CancelAppointment)

		doctorOnly := api.Group("")
		doctorOnly.Use(middleware.RequireRole(models.RoleDoctor))
		doctorOnly.PUT("/:id/accept", hb.AcceptAppointment)
		doctorOnly.PUT("/:id/decline", hb.DeclineAppointment)
		doctorOnly.PUT("/:id/complete", hb.CompleteAppointment)

		api.POST("/:id/payment-session", hb.CreatePaymentSession)
	}
}

// RegisterPaymentRoutes registers the checkout redirect target. It is public:
// Stripe calls it without a bearer token.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.GET("/success", hb.PaymentSuccess)
	}
}

// RegisterCalendarRoutes registers the Google Calendar OAuth endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		// OAuth callback is public; Google redirects the browser here.
		api.GET("/callback", hb.CalendarOAuthCallback)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleDoctor, models.RoleAdmin))
		protected.GET("/auth-url", hb.CalendarAuthURL)
		protected.GET("/status", hb.CalendarStatus)
		protected.DELETE("/disconnect", hb.CalendarDisconnect)
	}
}

// RegisterStorageRoutes registers file upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/files")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/upload/:folder", hb.UploadFile)
		api.DELETE("", hb.DeleteFile)
		api.GET("/download-url", hb.GetDownloadURL)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
