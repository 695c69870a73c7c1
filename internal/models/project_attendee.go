package models

import (
	"time"

	"gorm.io/gorm"
)

// AttendeeRole represents what a user does on a project
type AttendeeRole string

const (
	AttendeeRoleOwner       AttendeeRole = "owner"
	AttendeeRoleContributor AttendeeRole = "contributor"
	AttendeeRoleObserver    AttendeeRole = "observer"
)

// ProjectAttendee represents the link between a Project and a User with a role
type ProjectAttendee struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	ProjectID uint `gorm:"index" json:"project_id"`
	UserID    uint `json:"user_id"`

	Role AttendeeRole `gorm:"type:varchar(20);default:'contributor'" json:"role"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
