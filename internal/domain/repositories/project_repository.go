package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/stepsyncdev/stepsync/internal/domain/entities"
)

// ProjectRepository defines persistence operations for projects
type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	List(ctx context.Context) ([]*entities.Project, error)
	Update(ctx context.Context, project *entities.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}
