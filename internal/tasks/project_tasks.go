package tasks

import (
	"context"
	"fmt"
	"os"
	"time"

	"gorm.io/gorm"

	"projecthub/internal/models"
)

// ProcessMeetingScheduleTaskDef turns a due project meeting into a reminder
// fan-out for its attendees
type ProcessMeetingScheduleTaskDef struct{}

// TaskID returns the unique identifier for this task
func (t *ProcessMeetingScheduleTaskDef) TaskID() string {
	return "process_meeting_schedule"
}

// CreateTask builds a ScheduledTask record for this task
func (t *ProcessMeetingScheduleTaskDef) CreateTask(project models.Project) (*models.ScheduledTask, error) {
	taskType := models.ScheduledTaskTypeOneTime
	if project.MeetingSchedule != nil && *project.MeetingSchedule != "" {
		taskType = models.ScheduledTaskTypeRecurring
	}
	args := map[string]interface{}{"project_id": project.ID}
	return BuildScheduledTask(t.TaskID(), args, project.NextMeeting(), project.MeetingSchedule, taskType, 3)
}

// HandleExecution loads the project's attendees and enqueues a reminder task for them
func (t *ProcessMeetingScheduleTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	projectIDFloat, ok := task.Arguments["project_id"].(float64)
	if !ok {
		// Try other types
		if val, ok := task.Arguments["project_id"].(int); ok {
			projectIDFloat = float64(val)
		} else if val, ok := task.Arguments["project_id"].(uint); ok {
			projectIDFloat = float64(val)
		} else {
			return nil, fmt.Errorf("project_id not provided or invalid")
		}
	}
	projectID := uint(projectIDFloat)

	var project models.Project
	if err := db.Preload("Attendees.User").First(&project, projectID).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}

	if len(project.Attendees) == 0 {
		return map[string]interface{}{"status": "skipped", "message": "No attendees on project"}, nil
	}

	meeting := project.NextMeeting()
	projectLink := fmt.Sprintf("%s/projects/%s", os.Getenv("APP_BASE_URL"), project.UUID)

	users := make([]ReminderUser, 0, len(project.Attendees))
	for _, a := range project.Attendees {
		users = append(users, ReminderUser{
			UserID:      a.UserID,
			Username:    a.User.Name,
			Email:       a.User.Email,
			ProjectLink: projectLink,
		})
	}

	args := SendReminderArgs{
		Users:       users,
		Template:    "Hi $name, the project \"$project_name\" meets on $meeting_time. Details: $projectlink",
		Subject:     fmt.Sprintf("Meeting reminder: %s", project.Name),
		ProjectName: project.Name,
		MeetingTime: meeting.Format(time.RFC1123),
	}

	reminderTask, err := SendReminderTask.CreateTask(args)
	if err != nil {
		return nil, fmt.Errorf("failed to build reminder task: %w", err)
	}
	if err := db.Create(reminderTask).Error; err != nil {
		return nil, fmt.Errorf("failed to enqueue reminder task: %w", err)
	}

	return map[string]interface{}{
		"status":           "success",
		"attendees":        len(users),
		"reminder_task_id": reminderTask.ID,
	}, nil
}

// ProcessMeetingScheduleTask is the singleton instance of ProcessMeetingScheduleTaskDef
var ProcessMeetingScheduleTask = &ProcessMeetingScheduleTaskDef{}
