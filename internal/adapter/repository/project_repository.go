package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stepsyncdev/stepsync/internal/domain/entities"
	"github.com/stepsyncdev/stepsync/internal/domain/repositories"
)

// projectRepository implements the ProjectRepository interface
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) repositories.ProjectRepository {
	return &projectRepository{db: db}
}

// Create creates a new project
func (r *projectRepository) Create(ctx context.Context, project *entities.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// FindByID retrieves a project by its ID
func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	var project entities.Project
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&project).Error

	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves all projects, newest first
func (r *projectRepository) List(ctx context.Context) ([]*entities.Project, error) {
	var projects []*entities.Project
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// Update updates an existing project
func (r *projectRepository) Update(ctx context.Context, project *entities.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes a project
func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Project{}, id).Error
}
