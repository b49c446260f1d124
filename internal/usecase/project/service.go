package project

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stepsyncdev/stepsync/internal/domain/entities"
	"github.com/stepsyncdev/stepsync/internal/domain/repositories"
	usecaseErrors "github.com/stepsyncdev/stepsync/internal/usecase/errors"
)

const (
	configCacheKeyFormat = "stepsync:config:%s"
	configCacheTTL       = 10 * time.Minute
)

// CreateProjectInput carries the initial project settings.
type CreateProjectInput struct {
	Title               string
	BPM                 float64
	OffsetSeconds       float64
	RestartPointSeconds float64
}

// UpdateProjectInput carries optional settings updates; nil fields are
// left unchanged.
type UpdateProjectInput struct {
	Title               *string
	BPM                 *float64
	OffsetSeconds       *float64
	RestartPointSeconds *float64
}

// CaptionInput carries a new caption's fields.
type CaptionInput struct {
	Content      string
	StartSeconds float64
	EndSeconds   float64
	Position     entities.CaptionPosition
}

// UpdateCaptionInput carries optional caption edits; nil fields are left
// unchanged.
type UpdateCaptionInput struct {
	Content      *string
	StartSeconds *float64
	EndSeconds   *float64
	Position     *entities.CaptionPosition
}

// ConfigExport is a serialized project config plus its suggested filename.
type ConfigExport struct {
	Filename string
	Blob     []byte
}

// Service defines project and caption operations
type Service interface {
	Create(ctx context.Context, input CreateProjectInput) (*entities.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	List(ctx context.Context) ([]*entities.Project, error)
	UpdateSettings(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*entities.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddCaption(ctx context.Context, projectID uuid.UUID, input CaptionInput) (*entities.Caption, error)
	UpdateCaption(ctx context.Context, projectID uuid.UUID, captionID string, input UpdateCaptionInput) (*entities.Project, error)
	DeleteCaption(ctx context.Context, projectID uuid.UUID, captionID string) (*entities.Project, error)

	ExportConfig(ctx context.Context, id uuid.UUID) (*ConfigExport, error)
	ImportConfig(ctx context.Context, id uuid.UUID, blob []byte) (*entities.Project, error)

	AttachMedia(ctx context.Context, id uuid.UUID, objectName, filename string) (*entities.Project, error)
}

type projectService struct {
	repo   repositories.ProjectRepository
	cache  *redis.Client
	logger *zap.Logger
}

// NewProjectService constructs the project service. cache may be nil;
// export caching is then skipped.
func NewProjectService(repo repositories.ProjectRepository, cache *redis.Client, logger *zap.Logger) Service {
	return &projectService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *projectService) Create(ctx context.Context, input CreateProjectInput) (*entities.Project, error) {
	p := entities.NewProject(input.Title, input.BPM, input.OffsetSeconds, input.RestartPointSeconds)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *projectService) List(ctx context.Context) ([]*entities.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectService) UpdateSettings(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*entities.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.BPM != nil {
		p.Tempo.BPM = *input.BPM
	}
	if input.OffsetSeconds != nil {
		p.Tempo.OffsetSeconds = *input.OffsetSeconds
	}
	if input.RestartPointSeconds != nil {
		p.RestartPointSeconds = *input.RestartPointSeconds
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	s.invalidateConfig(ctx, id)
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	s.invalidateConfig(ctx, id)
	return nil
}

// AddCaption allocates a fresh unique id and appends the caption to the
// end of the sequence. Timing is deliberately not validated: start > end
// is stored as-is and simply never displays.
func (s *projectService) AddCaption(ctx context.Context, projectID uuid.UUID, input CaptionInput) (*entities.Caption, error) {
	p, err := s.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	for p.HasCaption(id) {
		id = uuid.NewString()
	}

	c := entities.Caption{
		ID:           id,
		Content:      input.Content,
		StartSeconds: input.StartSeconds,
		EndSeconds:   input.EndSeconds,
		Position:     input.Position,
	}
	p.AddCaption(c)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to add caption: %w", err)
	}
	s.invalidateConfig(ctx, projectID)
	return &c, nil
}

// UpdateCaption edits the matching caption in place. An unknown caption
// id is a silent no-op: edit flows are expected to hold a valid id.
func (s *projectService) UpdateCaption(ctx context.Context, projectID uuid.UUID, captionID string, input UpdateCaptionInput) (*entities.Project, error) {
	p, err := s.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !p.UpdateCaption(captionID, input.Content, input.StartSeconds, input.EndSeconds, input.Position) {
		s.logDebug("caption.update.unknown_id", projectID, captionID)
		return p, nil
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update caption: %w", err)
	}
	s.invalidateConfig(ctx, projectID)
	return p, nil
}

// DeleteCaption removes the matching caption; unknown ids are a no-op.
func (s *projectService) DeleteCaption(ctx context.Context, projectID uuid.UUID, captionID string) (*entities.Project, error) {
	p, err := s.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !p.DeleteCaption(captionID) {
		s.logDebug("caption.delete.unknown_id", projectID, captionID)
		return p, nil
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to delete caption: %w", err)
	}
	s.invalidateConfig(ctx, projectID)
	return p, nil
}

// ExportConfig serializes the project into its canonical config document,
// with a cache-aside read through Redis.
func (s *projectService) ExportConfig(ctx context.Context, id uuid.UUID) (*ConfigExport, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf(configCacheKeyFormat, id)
	if s.cache != nil {
		if blob, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			return &ConfigExport{Filename: p.ConfigFilename(), Blob: blob}, nil
		} else if !errors.Is(err, redis.Nil) && s.logger != nil {
			s.logger.Warn("config.cache.read_failed", zap.String("project_id", id.String()), zap.Error(err))
		}
	}

	blob, err := ExportDocument(p).Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, blob, configCacheTTL).Err(); err != nil && s.logger != nil {
			s.logger.Warn("config.cache.write_failed", zap.String("project_id", id.String()), zap.Error(err))
		}
	}

	return &ConfigExport{Filename: p.ConfigFilename(), Blob: blob}, nil
}

// ImportConfig merges a config blob into the project. Malformed input is
// rejected wholesale and the stored project is left exactly as it was.
func (s *projectService) ImportConfig(ctx context.Context, id uuid.UUID, blob []byte) (*entities.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := DecodeDocument(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrMalformedConfig, err)
	}

	doc.ApplyTo(p)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to import config: %w", err)
	}
	s.invalidateConfig(ctx, id)
	return p, nil
}

func (s *projectService) AttachMedia(ctx context.Context, id uuid.UUID, objectName, filename string) (*entities.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p.AttachMedia(objectName, filename)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to attach media: %w", err)
	}
	s.invalidateConfig(ctx, id)
	return p, nil
}

func (s *projectService) invalidateConfig(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	key := fmt.Sprintf(configCacheKeyFormat, id)
	if err := s.cache.Del(ctx, key).Err(); err != nil && s.logger != nil {
		s.logger.Warn("config.cache.invalidate_failed", zap.String("project_id", id.String()), zap.Error(err))
	}
}

func (s *projectService) logDebug(msg string, projectID uuid.UUID, captionID string) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(msg,
		zap.String("project_id", projectID.String()),
		zap.String("caption_id", captionID),
	)
}
