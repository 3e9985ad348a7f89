package models

import (
	"time"

	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusDraft      ProjectStatus = "draft"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusArchived   ProjectStatus = "archived"
)

// Project represents a speech dataset project owned by a single user
type Project struct {
	ID            string        `json:"id" gorm:"primarykey"`
	Name          string        `json:"name" gorm:"not null"`
	Description   string        `json:"description"`
	Status        ProjectStatus `json:"status" gorm:"default:'draft';index"`
	Progress      int           `json:"progress" gorm:"default:0"` // 0-100
	TotalFiles    int           `json:"total_files" gorm:"default:0"`
	TotalSize     int64         `json:"total_size" gorm:"default:0"` // Bytes
	TotalDuration int           `json:"total_duration" gorm:"default:0"` // Seconds
	DatasetPath   string        `json:"dataset_path"`
	CreatedBy     string        `json:"created_by" gorm:"not null;index"`

	// Audio file relationship (one-to-many)
	AudioFiles []AudioFile `json:"audio_files,omitempty" gorm:"foreignKey:ProjectID"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// IsTerminal returns true if the project is in a terminal state
func (p *Project) IsTerminal() bool {
	return p.Status == ProjectStatusCompleted || p.Status == ProjectStatusArchived
}
