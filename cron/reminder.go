package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"wastewise/config"
	userRepo "wastewise/database/repository/user"
	"wastewise/models"
	"wastewise/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/hibiken/asynq"
)

const TypeCollectionReminder = "collection:reminder"

// reminderHour is the local hour, the evening before a collection day,
// at which reminders fire.
const reminderHour = 18

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderScheduler enqueues collection-day reminder tasks.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler constructs a scheduler over the reminder queue.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleForEntry queues a reminder for the evening before the entry's
// collection day. Entries whose reminder time has already passed are
// skipped without error.
func (s *ReminderScheduler) ScheduleForEntry(entry models.ScheduleEntry) error {
	day := entry.Day()
	if day.IsZero() {
		return fmt.Errorf("entry %s has no parseable date", entry.ID)
	}

	fireAt := time.Date(day.Year(), day.Month(), day.Day(), reminderHour, 0, 0, 0, time.Local).
		AddDate(0, 0, -1)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(models.CollectionReminder{
		EntryID:   entry.ID,
		Date:      entry.Date,
		WasteType: entry.WasteType,
	})
	if err != nil {
		return fmt.Errorf("failed to encode reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeCollectionReminder, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder for %s: %w", entry.Date, err)
	}
	return nil
}

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(users userRepo.UserRepository) {
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
	mux.HandleFunc(TypeCollectionReminder, handleCollectionReminder(users))

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

// handleCollectionReminder pushes the reminder to every resident with a
// registered device token.
func handleCollectionReminder(users userRepo.UserRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.CollectionReminder
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		if utils.FCMClient == nil {
			log.Printf("[ReminderHandler] push disabled, dropping reminder for %s", p.Date)
			return nil
		}

		all, err := users.GetAll()
		if err != nil {
			return fmt.Errorf("failed to load residents: %w", err)
		}

		title := "Collection day tomorrow"
		body := fmt.Sprintf("%s collection is scheduled for %s. Put your bin out tonight.", p.WasteType, p.Date)

		var failed int
		for _, u := range all {
			if !u.IsResident() || u.DeviceToken == "" {
				continue
			}
			_, err := utils.FCMClient.Send(ctx, &messaging.Message{
				Token: u.DeviceToken,
				Notification: &messaging.Notification{
					Title: title,
					Body:  body,
				},
				Data: map[string]string{
					"entryId":   p.EntryID,
					"date":      p.Date,
					"wasteType": p.WasteType,
				},
			})
			if err != nil {
				failed++
				log.Printf("[ReminderHandler] failed to notify %s: %v", u.ID, err)
			}
		}
		if failed > 0 {
			log.Printf("[ReminderHandler] %d notifications failed for %s", failed, p.Date)
		}
		return nil
	}
}
