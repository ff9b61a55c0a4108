package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"telecare/config"
	appointmentRepo "telecare/database/repository/appointment"
	doctorRepo "telecare/database/repository/doctor"
	userRepo "telecare/database/repository/user"
	"telecare/models"
	"telecare/services/notification"
	"telecare/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(
	notifSvc notification.NotificationService,
	appts appointmentRepo.AppointmentRepository,
	users userRepo.UserRepository,
	doctors doctorRepo.DoctorRepository,
) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc, appts, users, doctors))

	// Start async worker with retry logic.
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(
	notifSvc notification.NotificationService,
	appts appointmentRepo.AppointmentRepository,
	users userRepo.UserRepository,
	doctors doctorRepo.DoctorRepository,
) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		appt, err := appts.GetByID(p.AppointmentID)
		if err != nil {
			return err
		}
		if appt == nil || appt.Status != models.StatusAccepted || appt.ReminderSent {
			// Cancelled, rescheduled or already reminded since the task was enqueued.
			log.Printf("[ReminderHandler] skipping reminder for appointment %s", p.AppointmentID)
			return nil
		}

		user, err := users.GetByID(appt.UserID)
		if err != nil || user == nil {
			log.Printf("[ReminderHandler] user %s not found for appointment %s", appt.UserID, appt.ID)
			return err
		}
		doctor, err := doctors.GetByID(appt.DoctorID)
		if err != nil || doctor == nil {
			log.Printf("[ReminderHandler] doctor %s not found for appointment %s", appt.DoctorID, appt.ID)
			return err
		}

		log.Printf("[ReminderHandler] firing reminder for appointment %s at %s", appt.ID, p.FireDate)
		return notifSvc.SendAppointmentReminder(appt, user, doctor)
	}
}
