package models

import (
	"time"

	"gorm.io/gorm"
)

// FeatureStatus represents the progress of a feature
type FeatureStatus string

const (
	FeatureStatusPlanned    FeatureStatus = "planned"
	FeatureStatusInProgress FeatureStatus = "in_progress"
	FeatureStatusDone       FeatureStatus = "done"
)

// Feature represents a unit of planned work within a project
type Feature struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	ProjectID   uint          `gorm:"index" json:"project_id"`
	Title       string        `gorm:"type:varchar(255)" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Status      FeatureStatus `gorm:"type:varchar(20);default:'planned'" json:"status"`
	Priority    int           `gorm:"default:0" json:"priority"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
