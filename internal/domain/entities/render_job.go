package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RenderJobStatus is the terminal outcome of a render attempt. Attempts
// are never resumed or retried; a row is written once, after the pipeline
// finishes.
type RenderJobStatus string

const (
	RenderJobCompleted RenderJobStatus = "completed"
	RenderJobFailed    RenderJobStatus = "failed"
)

// RenderJob is the history record of one two-phase render attempt.
type RenderJob struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProjectID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"project_id"`
	Status         RenderJobStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	StagedFilename *string         `gorm:"type:varchar(255)" json:"staged_filename,omitempty"`
	DownloadURL    *string         `gorm:"type:text" json:"download_url,omitempty"`
	ArtifactObject *string         `gorm:"type:varchar(512)" json:"artifact_object,omitempty"`
	Request        datatypes.JSON  `gorm:"type:jsonb;default:'{}'" json:"request"`
	ErrorMessage   *string         `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt      time.Time       `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for RenderJob
func (RenderJob) TableName() string {
	return "render_jobs"
}
