package models

import (
	"time"

	"gorm.io/gorm"
)

// AudioFileStatus represents the transcription state of an audio file
type AudioFileStatus string

const (
	AudioFileStatusPending    AudioFileStatus = "pending"
	AudioFileStatusProcessing AudioFileStatus = "processing"
	AudioFileStatusCompleted  AudioFileStatus = "completed"
	AudioFileStatusFailed     AudioFileStatus = "failed"
)

// AudioFile represents one uploaded audio recording within a project.
// Invariant: at most one of TranscriptionContent and ErrorMessage is set.
type AudioFile struct {
	ID                   string          `json:"id" gorm:"primarykey"`
	ProjectID            string          `json:"project_id" gorm:"not null;index"`
	FilePathRaw          string          `json:"file_path_raw" gorm:"not null"`
	FilePathCleaned      string          `json:"file_path_cleaned"`
	TranscriptionStatus  AudioFileStatus `json:"transcription_status" gorm:"default:'pending';index:idx_audio_files_project_status"`
	TranscriptionContent string          `json:"transcription_content" gorm:"type:text"`
	ErrorMessage         string          `json:"error_message"`
	SizeBytes            int64           `json:"size_bytes" gorm:"default:0"`
	DurationSeconds      float64         `json:"duration_seconds" gorm:"default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for AudioFile
func (AudioFile) TableName() string {
	return "audio_files"
}

// IsTerminal returns true if the file reached a terminal transcription state
func (f *AudioFile) IsTerminal() bool {
	return f.TranscriptionStatus == AudioFileStatusCompleted ||
		f.TranscriptionStatus == AudioFileStatusFailed
}
