package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"projecthub/internal/models"
	"projecthub/internal/services"
)

// ReminderUser represents one recipient in the reminder payload
type ReminderUser struct {
	UserID      interface{} `json:"userId"` // Can be string or int
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	ProjectLink string      `json:"project_link"`
}

// SendReminderArgs defines the arguments for a reminder task
type SendReminderArgs struct {
	Users        []ReminderUser `json:"users"`
	Template     string         `json:"template"`
	Subject      string         `json:"subject"`
	ProjectName  string         `json:"project_name"`
	MeetingTime  string         `json:"meeting_time"`
	AttemptCount int            `json:"attempt_count"`
}

// SendReminderTaskDef encapsulates the reminder delivery logic
type SendReminderTaskDef struct{}

// TaskID returns the unique identifier for this task
func (t *SendReminderTaskDef) TaskID() string {
	return "send_reminder"
}

// CreateTask builds a ScheduledTask record for this task
func (t *SendReminderTaskDef) CreateTask(args SendReminderArgs) (*models.ScheduledTask, error) {
	return BuildScheduledTask(t.TaskID(), args, time.Now(), nil, models.ScheduledTaskTypeOneTime, 3)
}

// HandleExecution delivers reminders based on each user's channel preference
func (t *SendReminderTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	argsBytes, err := json.Marshal(task.Arguments)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal args: %w", err)
	}

	var parsedArgs SendReminderArgs
	if err := json.Unmarshal(argsBytes, &parsedArgs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal args: %w", err)
	}

	total := len(parsedArgs.Users)
	successCount := 0
	skippedCount := 0
	failureCount := 0
	var failures []string
	var failedUsers []ReminderUser

	for _, user := range parsedArgs.Users {
		// Fetch preference
		var pref models.UserNotifPreference
		err := db.Where("user_id = ?", user.UserID).First(&pref).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				// No saved preference: default to email
				pref = models.UserNotifPreference{Channel: models.NotificationChannelEmail}
			} else {
				log.Printf("Error fetching preference for %s: %v", user.Username, err)
				failureCount++
				failures = append(failures, fmt.Sprintf("%s: db error", user.Username))
				failedUsers = append(failedUsers, user)
				continue
			}
		}

		var sendErr error
		switch pref.Channel {
		case models.NotificationChannelEmail:
			sendErr = sendEmailReminder(user, parsedArgs)
		case models.NotificationChannelWebhook:
			sendErr = sendWebhookReminder(user, parsedArgs, pref)
		case models.NotificationChannelNone:
			// Explicitly disabled, skip
			log.Printf("Reminders disabled (none) for %s", user.Username)
			skippedCount++
			continue
		default:
			log.Printf("Unsupported reminder channel %s for %s", pref.Channel, user.Username)
			skippedCount++
			continue
		}

		if sendErr != nil {
			log.Printf("Failed to send reminder to %s via %s: %v", user.Username, pref.Channel, sendErr)
			failureCount++
			failures = append(failures, fmt.Sprintf("%s: %v", user.Username, sendErr))
			failedUsers = append(failedUsers, user)
		} else {
			successCount++
		}
	}

	result := map[string]interface{}{
		"total":   total,
		"success": successCount,
		"skipped": skippedCount,
		"failure": failureCount,
	}

	if failureCount > 0 {
		result["errors"] = failures

		attempt := parsedArgs.AttemptCount
		maxRetries := task.MaxAttempt

		if attempt < maxRetries {
			log.Printf("Partial failure: %d users failed. Rescheduling for Attempt %d", len(failedUsers), attempt+1)

			newArgs := parsedArgs
			newArgs.Users = failedUsers
			newArgs.AttemptCount = attempt + 1

			// Re-schedule in 5 minutes
			nextRun := time.Now().Add(5 * time.Minute)

			newTask, err := BuildScheduledTask(t.TaskID(), newArgs, nextRun, nil, models.ScheduledTaskTypeOneTime, maxRetries)
			if err == nil {
				db.Create(newTask)
			} else {
				log.Printf("Failed to create retry task: %v", err)
			}
		} else {
			log.Printf("Max attempts (%d) reached for %d failed users.", maxRetries, len(failedUsers))
			return result, fmt.Errorf("max attempts reached, failed to deliver to %d users", len(failedUsers))
		}
	}

	return result, nil
}

// SendReminderTask is the singleton instance of SendReminderTaskDef
var SendReminderTask = &SendReminderTaskDef{}

// sendWebhookReminder posts the reminder to the user's chat channel
func sendWebhookReminder(user ReminderUser, args SendReminderArgs, pref models.UserNotifPreference) error {
	if args.Template == "" {
		return fmt.Errorf("reminder template is missing")
	}

	notifier := services.NewNotifier()
	msg := renderTemplate(args.Template, user, args)

	return notifier.SendMessage(pref.WebhookChannelID, msg)
}

// sendEmailReminder delivers the reminder over SMTP
func sendEmailReminder(user ReminderUser, args SendReminderArgs) error {
	if args.Template == "" {
		return fmt.Errorf("reminder template is missing")
	}

	emailService := services.NewEmailService()

	subject := "Meeting reminder"
	if args.Subject != "" {
		subject = args.Subject
	}

	msg := renderTemplate(args.Template, user, args)

	return emailService.SendEmail([]string{user.Email}, subject, msg)
}

func renderTemplate(template string, user ReminderUser, args SendReminderArgs) string {
	res := strings.ReplaceAll(template, "$name", user.Username)
	res = strings.ReplaceAll(res, "$username", user.Username)
	res = strings.ReplaceAll(res, "$email", user.Email)

	res = strings.ReplaceAll(res, "$subject", args.Subject)
	res = strings.ReplaceAll(res, "$project_name", args.ProjectName)
	res = strings.ReplaceAll(res, "$meeting_time", args.MeetingTime)
	res = strings.ReplaceAll(res, "$projectlink", user.ProjectLink)

	return res
}
