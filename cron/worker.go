package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"pitchbook/config"
	bookingRepo "pitchbook/database/repository/booking"
	"pitchbook/models"
	"pitchbook/services/notification"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "booking:reminder"

// ReminderLead is how long before the booking start the reminder fires.
const ReminderLead = time.Hour

// ReminderPayload is the task body for a scheduled booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(repo bookingRepo.BookingRepository, notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReminder, handleReminderTask(repo, notifSvc))

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

// handleReminderTask sends the reminder push unless the booking was cancelled
// after the task was scheduled.
func handleReminderTask(repo bookingRepo.BookingRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		b, err := repo.GetByID(ctx, p.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				log.Printf("[ReminderHandler] booking %s no longer exists, dropping reminder", p.BookingID)
				return nil
			}
			return err
		}
		if b.Status != models.BookingStatusConfirmed {
			log.Printf("[ReminderHandler] booking %s is %s, skipping reminder", b.ID, b.Status)
			return nil
		}

		if err := notifSvc.SendBookingReminder(ctx, b); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder for booking %s: %v", b.ID, err)
			return err
		}
		return nil
	}
}

// ReminderClient schedules reminder tasks. It implements the booking
// service's ReminderScheduler.
type ReminderClient struct {
	client *asynq.Client
}

// NewReminderClient creates the asynq client for enqueueing reminders.
func NewReminderClient() *ReminderClient {
	return &ReminderClient{client: asynq.NewClient(redisOpts())}
}

// ScheduleReminder enqueues a reminder to fire ReminderLead before the
// booking starts, or immediately if the start is closer than that.
func (c *ReminderClient) ScheduleReminder(ctx context.Context, booking *models.Booking) error {
	payload, err := json.Marshal(ReminderPayload{BookingID: booking.ID})
	if err != nil {
		return err
	}

	startAt, err := time.ParseInLocation("2006-01-02 15:04", booking.BookingDate+" "+booking.StartTime, time.Local)
	if err != nil {
		return err
	}

	fireAt := startAt.Add(-ReminderLead)
	task := asynq.NewTask(TypeBookingReminder, payload)
	opts := []asynq.Option{asynq.MaxRetry(3)}
	if fireAt.After(time.Now()) {
		opts = append(opts, asynq.ProcessAt(fireAt))
	}

	if _, err := c.client.EnqueueContext(ctx, task, opts...); err != nil {
		return err
	}
	return nil
}

// Close releases the underlying asynq client.
func (c *ReminderClient) Close() error {
	return c.client.Close()
}
