package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stepsyncdev/stepsync/internal/domain/entities"
	"github.com/stepsyncdev/stepsync/internal/domain/repositories"
)

// renderJobRepository implements the RenderJobRepository interface
type renderJobRepository struct {
	db *gorm.DB
}

// NewRenderJobRepository creates a new render job repository
func NewRenderJobRepository(db *gorm.DB) repositories.RenderJobRepository {
	return &renderJobRepository{db: db}
}

// Create records a terminal render attempt
func (r *renderJobRepository) Create(ctx context.Context, job *entities.RenderJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// ListByProject retrieves render history for a project, newest first
func (r *renderJobRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entities.RenderJob, error) {
	var jobs []*entities.RenderJob
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}
