package preview

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stepsyncdev/stepsync/internal/domain/entities"
	"github.com/stepsyncdev/stepsync/internal/domain/repositories"
	usecaseErrors "github.com/stepsyncdev/stepsync/internal/usecase/errors"
	"github.com/stepsyncdev/stepsync/internal/usecase/timeline"
)

// DefaultSessionTTL is how long an idle preview session survives.
const DefaultSessionTTL = 30 * time.Minute

// TransportAction is a transport verb accepted over the wire.
type TransportAction string

const (
	ActionPlay    TransportAction = "play"
	ActionPause   TransportAction = "pause"
	ActionEnded   TransportAction = "ended"
	ActionRestart TransportAction = "restart"
)

// State is a session snapshot returned to the client, including the
// transport commands it must apply to its video element.
type State struct {
	SessionID uuid.UUID
	ProjectID uuid.UUID
	Transport entities.TransportState
	Rate      float64
	Commands  []timeline.Command
}

// SampleResult is a State plus the display state derived from the sample.
type SampleResult struct {
	State
	Display entities.DerivedDisplayState
	Clock   string
}

// Service manages preview sessions over the timeline controller
type Service interface {
	Open(ctx context.Context, projectID uuid.UUID) (*State, error)
	Get(ctx context.Context, sessionID uuid.UUID) (*State, error)
	Transport(ctx context.Context, sessionID uuid.UUID, action TransportAction) (*State, error)
	Seek(ctx context.Context, sessionID uuid.UUID, timeSeconds float64) (*State, error)
	SetRate(ctx context.Context, sessionID uuid.UUID, rate float64) (*State, error)
	Sample(ctx context.Context, sessionID uuid.UUID, sample entities.PlaybackSample) (*SampleResult, error)
	Close(ctx context.Context, sessionID uuid.UUID)
}

type previewService struct {
	projects repositories.ProjectRepository
	registry *registry
	logger   *zap.Logger
}

// NewPreviewService constructs the preview session service.
func NewPreviewService(projects repositories.ProjectRepository, logger *zap.Logger) Service {
	return &previewService{
		projects: projects,
		registry: newRegistry(DefaultSessionTTL),
		logger:   logger,
	}
}

// Open verifies the project exists and creates a paused session at rate 1.
func (s *previewService) Open(ctx context.Context, projectID uuid.UUID) (*State, error) {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return nil, usecaseErrors.ErrProjectNotFound
	}

	queue := timeline.NewCommandQueue()
	session := &Session{
		ID:         uuid.New(),
		ProjectID:  projectID,
		Controller: timeline.NewController(queue),
		Queue:      queue,
	}
	s.registry.put(session)

	if s.logger != nil {
		s.logger.Info("preview.session.opened",
			zap.String("session_id", session.ID.String()),
			zap.String("project_id", projectID.String()),
		)
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return s.state(session), nil
}

func (s *previewService) Get(ctx context.Context, sessionID uuid.UUID) (*State, error) {
	session, ok := s.registry.get(sessionID)
	if !ok {
		return nil, usecaseErrors.ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return s.state(session), nil
}

func (s *previewService) Transport(ctx context.Context, sessionID uuid.UUID, action TransportAction) (*State, error) {
	session, ok := s.registry.get(sessionID)
	if !ok {
		return nil, usecaseErrors.ErrSessionNotFound
	}

	// Restart needs the project's bookmark; load it before taking the
	// session lock so the repository round trip happens outside it.
	var restartPoint float64
	if action == ActionRestart {
		project, err := s.projects.FindByID(ctx, session.ProjectID)
		if err != nil {
			return nil, usecaseErrors.ErrProjectNotFound
		}
		restartPoint = project.RestartPointSeconds
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	switch action {
	case ActionPlay:
		session.Controller.Play()
	case ActionPause:
		session.Controller.Pause()
	case ActionEnded:
		session.Controller.Ended()
	case ActionRestart:
		session.Controller.Restart(restartPoint)
	default:
		return nil, usecaseErrors.ErrInvalidTransportWord
	}

	return s.state(session), nil
}

func (s *previewService) Seek(ctx context.Context, sessionID uuid.UUID, timeSeconds float64) (*State, error) {
	session, ok := s.registry.get(sessionID)
	if !ok {
		return nil, usecaseErrors.ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.Controller.Seek(timeSeconds)
	return s.state(session), nil
}

func (s *previewService) SetRate(ctx context.Context, sessionID uuid.UUID, rate float64) (*State, error) {
	session, ok := s.registry.get(sessionID)
	if !ok {
		return nil, usecaseErrors.ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if err := session.Controller.SetRate(rate); err != nil {
		return nil, err
	}
	return s.state(session), nil
}

// Sample feeds a playback sample through the controller and returns the
// recomputed display state along with any queued transport commands.
func (s *previewService) Sample(ctx context.Context, sessionID uuid.UUID, sample entities.PlaybackSample) (*SampleResult, error) {
	session, ok := s.registry.get(sessionID)
	if !ok {
		return nil, usecaseErrors.ErrSessionNotFound
	}

	project, err := s.projects.FindByID(ctx, session.ProjectID)
	if err != nil {
		return nil, usecaseErrors.ErrProjectNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	display := session.Controller.OnSample(sample, project)
	return &SampleResult{
		State:   *s.state(session),
		Display: display,
		Clock:   entities.FormatClock(sample.CurrentTimeSeconds),
	}, nil
}

func (s *previewService) Close(ctx context.Context, sessionID uuid.UUID) {
	s.registry.delete(sessionID)
}

// state builds the response snapshot, draining the command queue. The
// caller must hold session.mu.
func (s *previewService) state(session *Session) *State {
	return &State{
		SessionID: session.ID,
		ProjectID: session.ProjectID,
		Transport: session.Controller.Transport(),
		Rate:      session.Controller.Rate(),
		Commands:  session.Queue.Drain(),
	}
}
