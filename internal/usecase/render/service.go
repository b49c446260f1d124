package render

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/stepsyncdev/stepsync/errors"
	"github.com/stepsyncdev/stepsync/internal/domain/entities"
	"github.com/stepsyncdev/stepsync/internal/domain/repositories"
	"github.com/stepsyncdev/stepsync/internal/infrastructure/storage"
	projectuse "github.com/stepsyncdev/stepsync/internal/usecase/project"
	"github.com/stepsyncdev/stepsync/pkg/render"
)

const artifactURLExpiry = 24 * time.Hour

// Result is the outcome of a completed render: where to download the
// artifact from the Render Service, and where we archived a copy.
type Result struct {
	Job         *entities.RenderJob `json:"job"`
	DownloadURL string              `json:"download_url"`
	ArchiveURL  string              `json:"archive_url,omitempty"`
}

// Service drives the two-phase render protocol for a project
type Service interface {
	Render(ctx context.Context, projectID uuid.UUID) (*Result, error)
	History(ctx context.Context, projectID uuid.UUID) ([]*entities.RenderJob, error)
}

type renderService struct {
	projects repositories.ProjectRepository
	jobs     repositories.RenderJobRepository
	media    *storage.MediaStore
	client   *render.Client
	logger   *zap.Logger
}

// NewRenderService constructs the render pipeline service.
func NewRenderService(
	projects repositories.ProjectRepository,
	jobs repositories.RenderJobRepository,
	media *storage.MediaStore,
	client *render.Client,
	logger *zap.Logger,
) Service {
	return &renderService{
		projects: projects,
		jobs:     jobs,
		media:    media,
		client:   client,
		logger:   logger,
	}
}

// Render runs stage then process, strictly in that order, with no retry
// and no checkpoint in between. The project itself is never mutated; the
// only write is the terminal history row.
func (s *renderService) Render(ctx context.Context, projectID uuid.UUID) (*Result, error) {
	p, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, apperrors.ErrNotFound("Project")
	}
	if p.MediaObject == nil || p.MediaFilename == nil {
		return nil, apperrors.ErrMediaMissing(projectID.String())
	}

	timedTexts, err := projectuse.EncodeTimedTexts(p.Captions)
	if err != nil {
		return nil, apperrors.ErrInternal(fmt.Errorf("encode timed texts: %w", err))
	}

	// Phase 1: stage the media on the render service.
	source, err := s.media.Open(ctx, *p.MediaObject)
	if err != nil {
		return nil, apperrors.ErrStorageFailed("open media", err)
	}
	defer source.Close()

	staged, err := s.client.Stage(ctx, *p.MediaFilename, source)
	if err != nil {
		s.logger.Error("render.stage.failed",
			zap.String("project_id", projectID.String()),
			zap.Error(err),
		)
		s.recordFailure(ctx, p, entities.RenderJob{Status: entities.RenderJobFailed}, err)
		return nil, apperrors.ErrRenderStageFailed(err)
	}

	params := render.ProcessParams{
		Filename:   staged,
		BPM:        p.Tempo.BPM,
		Offset:     p.Tempo.OffsetSeconds,
		Text:       p.Title,
		TimedTexts: timedTexts,
	}

	// Phase 2: burn the overlays.
	downloadURL, err := s.client.Process(ctx, params)
	if err != nil {
		s.logger.Error("render.process.failed",
			zap.String("project_id", projectID.String()),
			zap.String("staged_filename", staged),
			zap.Error(err),
		)
		s.recordFailure(ctx, p, entities.RenderJob{Status: entities.RenderJobFailed, StagedFilename: &staged}, err)
		return nil, apperrors.ErrRenderProcessFailed(err)
	}

	resolved := s.client.ResolveDownloadURL(downloadURL)

	job := &entities.RenderJob{
		ID:             uuid.New(),
		ProjectID:      p.ID,
		Status:         entities.RenderJobCompleted,
		StagedFilename: &staged,
		DownloadURL:    &resolved,
		Request:        s.requestSnapshot(params),
	}

	result := &Result{Job: job, DownloadURL: resolved}

	// Archive a copy of the artifact next to the source media. Failure
	// here does not fail the render: the artifact is still downloadable
	// from the service.
	if archiveURL, objectName, err := s.archiveArtifact(ctx, p, downloadURL); err != nil {
		s.logger.Warn("render.archive.failed",
			zap.String("project_id", projectID.String()),
			zap.Error(err),
		)
	} else {
		job.ArtifactObject = &objectName
		result.ArchiveURL = archiveURL
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		s.logger.Error("render.history.write_failed",
			zap.String("project_id", projectID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("render.completed",
		zap.String("project_id", projectID.String()),
		zap.String("download_url", resolved),
	)

	return result, nil
}

func (s *renderService) History(ctx context.Context, projectID uuid.UUID) ([]*entities.RenderJob, error) {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return nil, apperrors.ErrNotFound("Project")
	}
	return s.jobs.ListByProject(ctx, projectID)
}

func (s *renderService) archiveArtifact(ctx context.Context, p *entities.Project, downloadURL string) (string, string, error) {
	body, size, err := s.client.FetchArtifact(ctx, downloadURL)
	if err != nil {
		return "", "", err
	}
	defer body.Close()

	objectName := storage.ArtifactObjectName(p.ID.String(), path.Base(downloadURL))
	if err := s.media.Upload(ctx, objectName, body, size, "video/mp4"); err != nil {
		return "", "", err
	}

	archiveURL, err := s.media.PresignedURL(ctx, objectName, artifactURLExpiry)
	if err != nil {
		return "", objectName, err
	}
	return archiveURL, objectName, nil
}

// recordFailure writes the terminal history row for a failed attempt.
func (s *renderService) recordFailure(ctx context.Context, p *entities.Project, job entities.RenderJob, cause error) {
	msg := cause.Error()
	job.ID = uuid.New()
	job.ProjectID = p.ID
	job.ErrorMessage = &msg

	if err := s.jobs.Create(ctx, &job); err != nil {
		s.logger.Error("render.history.write_failed",
			zap.String("project_id", p.ID.String()),
			zap.Error(err),
		)
	}
}

// requestSnapshot records the exact form fields sent to the render
// service, including the caption array that was burned in. TimedTexts is
// already JSON, so it embeds structurally rather than as a quoted string.
func (s *renderService) requestSnapshot(params render.ProcessParams) datatypes.JSON {
	blob, err := json.Marshal(map[string]interface{}{
		"filename":    params.Filename,
		"bpm":         params.BPM,
		"offset":      params.Offset,
		"text":        params.Text,
		"timed_texts": json.RawMessage(params.TimedTexts),
	})
	if err != nil {
		return datatypes.JSON([]byte(`{}`))
	}
	return datatypes.JSON(blob)
}
