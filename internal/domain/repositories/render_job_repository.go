package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/stepsyncdev/stepsync/internal/domain/entities"
)

// RenderJobRepository defines persistence operations for render history
type RenderJobRepository interface {
	Create(ctx context.Context, job *entities.RenderJob) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entities.RenderJob, error)
}
