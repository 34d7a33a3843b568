package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pitchbook/config"
	"pitchbook/cron"
	"pitchbook/database"
	"pitchbook/database/repository"
	"pitchbook/handlers"
	"pitchbook/middleware"
	"pitchbook/routes"
	"pitchbook/services/booking"
	"pitchbook/services/ground"
	"pitchbook/services/notification"
	"pitchbook/services/payment"
	"pitchbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary disabled: %v", err)
	}

	utils.StartHealthMonitor(database.MongoClient, utils.GetCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bkRepo := repository.NewMongoBookingRepo()
	gRepo := repository.NewMongoGroundRepo()
	uRepo := repository.NewMongoUserRepo()
	payRepo := repository.NewMongoPaymentRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Users: uRepo,
	}

	reminderClient := cron.NewReminderClient()
	defer reminderClient.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:        bkRepo,
		GroundRepo:  gRepo,
		UserRepo:    uRepo,
		PaymentRepo: payRepo,
		Locker:      utils.NewRedisSlotLocker(),
		Notifier:    notificationService,
		Reminders:   reminderClient,
	}

	groundService := &ground.DefaultGroundService{
		Repo:       gRepo,
		Cloudinary: cld,
	}

	paymentService := &payment.DefaultPaymentService{
		Repo:   payRepo,
		Users:  uRepo,
		Logger: logger,
	}

	// Background reminder worker.
	cron.InitReminderWorker(bkRepo, notificationService)

	handlerBundle := &routes.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService),
		Ground:  handlers.NewGroundHandler(groundService),
		Payment: handlers.NewPaymentHandler(paymentService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
