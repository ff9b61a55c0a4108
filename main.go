package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telecare/config"
	"telecare/cron"
	"telecare/database"
	appointmentRepoPkg "telecare/database/repository/appointment"
	doctorRepoPkg "telecare/database/repository/doctor"
	userRepoPkg "telecare/database/repository/user"
	"telecare/handlers"
	"telecare/models"
	"telecare/routes"
	appointmentSvc "telecare/services/appointment"
	calendarSvc "telecare/services/calendar"
	doctorSvc "telecare/services/doctor"
	notificationSvc "telecare/services/notification"
	paymentSvc "telecare/services/payment"
	schedulingSvc "telecare/services/scheduling"
	"telecare/services/tasks"
	userSvc "telecare/services/user"
	"telecare/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.InitMQTT()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	location, err := time.LoadLocation(config.AppConfig.SchedulingTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid scheduling timezone %q: %v", config.AppConfig.SchedulingTimezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// Repositories.
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	docRepo := doctorRepoPkg.NewMongoDoctorRepo()
	accountRepo := userRepoPkg.NewMongoUserRepo()

	// Services.
	userService := &userSvc.DefaultUserService{
		Repo: accountRepo,
	}
	doctorService := &doctorSvc.DefaultDoctorService{
		Repo:     docRepo,
		UserRepo: accountRepo,
	}
	schedulingService := &schedulingSvc.DefaultSchedulingService{
		DoctorRepo:      docRepo,
		AppointmentRepo: apptRepo,
		Hours: models.WorkingHours{
			StartHour:    config.AppConfig.WorkingHoursStart,
			EndHour:      config.AppConfig.WorkingHoursEnd,
			SlotDuration: time.Duration(config.AppConfig.SlotDurationMinutes) * time.Minute,
		},
		Location: location,
	}
	notificationService := &notificationSvc.DefaultNotificationService{
		Publisher:       &notificationSvc.MQTTPublisher{Client: utils.GetMQTTClient()},
		Mailer:          notificationSvc.NewSMTPMailer(),
		AppointmentRepo: apptRepo,
	}
	calendarService := calendarSvc.NewGoogleCalendarService()
	paymentService := paymentSvc.NewStripePaymentService()

	appointmentService := &appointmentSvc.DefaultAppointmentService{
		Repo:          apptRepo,
		DoctorRepo:    docRepo,
		UserRepo:      accountRepo,
		Scheduler:     schedulingService,
		Notifier:      notificationService,
		Calendar:      calendarService,
		Payments:      paymentService,
		ReminderQueue: tasks.NewReminderClient(),
		ReminderLead:  time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}

	// Background reminder worker.
	cron.InitReminderWorker(notificationService, apptRepo, accountRepo, docRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Users:        userService,
		Doctors:      doctorService,
		Appointments: appointmentService,
		Scheduler:    schedulingService,
		Calendar:     calendarService,
		Storage:      cloudinaryStorageService,
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
