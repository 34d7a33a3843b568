package routes

import (
	"net/http"
	"time"

	"pitchbook/handlers"
	"pitchbook/middleware"
	"pitchbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers wired in main.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Ground  *handlers.GroundHandler
	Payment *handlers.PaymentHandler
}

// RegisterBookingRoutes sets up the endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Availability checks are public so the customer UI can probe slots
		// before sign-in.
		api.GET("/check-availability", hb.Booking.CheckAvailability)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.Booking.CreateBooking)
		protected.GET("/user/:userId", hb.Booking.ListUserBookings)
		protected.GET("/:id", hb.Booking.GetBooking)
		protected.PUT("/:id", hb.Booking.UpdateBooking)
		protected.PUT("/:id/confirm", hb.Booking.ConfirmBooking)
		protected.PUT("/:id/cancel", hb.Booking.CancelBooking)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.GET("", hb.Booking.ListBookings)
		admin.PUT("/:id/complete", hb.Booking.CompleteBooking)
		admin.DELETE("/:id", hb.Booking.DeleteBooking)
	}
}

// RegisterGroundRoutes sets up the facility directory endpoints.
func RegisterGroundRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/grounds")
	{
		api.GET("", hb.Ground.ListGrounds)
		api.GET("/:id", hb.Ground.GetGround)
	}

	admin := r.Group("/api/admin/grounds")
	{
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", hb.Ground.CreateGround)
		admin.PUT("/:id", hb.Ground.UpdateGround)
		admin.POST("/:id/photo", hb.Ground.UploadGroundPhoto)
	}
}

// RegisterPaymentRoutes sets up the payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Payment.ProcessPayment)
		api.GET("/:id", hb.Payment.GetPayment)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// periodic dependency monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterGroundRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
