package models

import (
	"time"

	"github.com/teambition/rrule-go"
	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle stage of a project
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// Project represents a managed project
type Project struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// UUID is the public identifier used in routes; the numeric ID never
	// leaves the database layer
	UUID        string        `gorm:"type:varchar(36);uniqueIndex" json:"uuid"`
	Name        string        `gorm:"type:varchar(255)" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Status      ProjectStatus `gorm:"type:varchar(20);default:'planning'" json:"status"`
	StartDate   time.Time     `json:"start_date"`

	// MeetingSchedule holds an RFC 5545 RRULE string for recurring project
	// meetings; nil means the project meets once, on StartDate
	MeetingSchedule *string `gorm:"type:text" json:"meeting_schedule"`
	ScheduledTaskID *uint   `json:"scheduled_task_id"`

	// Relationships
	Attendees     []ProjectAttendee `gorm:"foreignKey:ProjectID" json:"attendees,omitempty"`
	Features      []Feature         `gorm:"foreignKey:ProjectID" json:"features,omitempty"`
	ScheduledTask *ScheduledTask    `gorm:"foreignKey:ScheduledTaskID" json:"scheduled_task,omitempty"`
}

// NextMeeting calculates the next meeting date for the project
func (p Project) NextMeeting() time.Time {
	if p.MeetingSchedule == nil || *p.MeetingSchedule == "" {
		return p.StartDate
	}

	rule, err := rrule.StrToRRule(*p.MeetingSchedule)
	if err == nil {
		rule.DTStart(p.StartDate)
		// Find next occurrence after now (or include today)
		next := rule.After(time.Now().Add(-24*time.Hour), true)
		if !next.IsZero() {
			return next
		}
	}
	// Fallback to start date if parsing fails or no future date found
	return p.StartDate
}
