package render

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/stepsyncdev/stepsync/errors"
	"github.com/stepsyncdev/stepsync/internal/domain/entities"
	"github.com/stepsyncdev/stepsync/pkg/render"
)

func renderParamsFixture() render.ProcessParams {
	return render.ProcessParams{
		Filename:   "clase.mp4",
		BPM:        128,
		Offset:     1.5,
		Text:       "Clase de Bachata",
		TimedTexts: `[{"id":"a","content":"hola","start":1,"end":2,"position":"top"}]`,
	}
}

type fakeProjectRepo struct {
	projects map[uuid.UUID]*entities.Project
}

func (f *fakeProjectRepo) Create(_ context.Context, p *entities.Project) error {
	f.projects[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProjectRepo) List(_ context.Context) ([]*entities.Project, error) { return nil, nil }

func (f *fakeProjectRepo) Update(_ context.Context, p *entities.Project) error {
	f.projects[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.projects, id)
	return nil
}

type fakeJobRepo struct {
	jobs []*entities.RenderJob
}

func (f *fakeJobRepo) Create(_ context.Context, job *entities.RenderJob) error {
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeJobRepo) ListByProject(_ context.Context, projectID uuid.UUID) ([]*entities.RenderJob, error) {
	out := make([]*entities.RenderJob, 0)
	for _, j := range f.jobs {
		if j.ProjectID == projectID {
			out = append(out, j)
		}
	}
	return out, nil
}

func TestRender_NoMediaAttached(t *testing.T) {
	project := entities.NewProject("Clase de Bachata", 128, 1.5, 0)
	repo := &fakeProjectRepo{projects: map[uuid.UUID]*entities.Project{project.ID: project}}
	svc := &renderService{projects: repo}

	_, err := svc.Render(context.Background(), project.ID)

	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_MEDIA_MISSING {
		t.Fatalf("render without media = %v", err)
	}
}

func TestRender_UnknownProject(t *testing.T) {
	repo := &fakeProjectRepo{projects: map[uuid.UUID]*entities.Project{}}
	svc := &renderService{projects: repo}

	_, err := svc.Render(context.Background(), uuid.New())

	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NOT_FOUND {
		t.Fatalf("render of unknown project = %v", err)
	}
}

func TestHistory_UnknownProject(t *testing.T) {
	repo := &fakeProjectRepo{projects: map[uuid.UUID]*entities.Project{}}
	svc := &renderService{projects: repo, jobs: &fakeJobRepo{}}

	if _, err := svc.History(context.Background(), uuid.New()); err == nil {
		t.Fatal("history of unknown project succeeded")
	}
}

func TestRequestSnapshot_RecordsEveryFormField(t *testing.T) {
	svc := &renderService{}

	snap := svc.requestSnapshot(renderParamsFixture())

	var decoded struct {
		Filename   string  `json:"filename"`
		BPM        float64 `json:"bpm"`
		Offset     float64 `json:"offset"`
		Text       string  `json:"text"`
		TimedTexts []struct {
			ID string `json:"id"`
		} `json:"timed_texts"`
	}
	if err := json.Unmarshal(snap, &decoded); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if decoded.Filename != "clase.mp4" || decoded.BPM != 128 || decoded.Offset != 1.5 {
		t.Fatalf("snapshot fields = %+v", decoded)
	}
	if len(decoded.TimedTexts) != 1 || decoded.TimedTexts[0].ID != "a" {
		t.Fatalf("snapshot timed_texts = %+v", decoded.TimedTexts)
	}
}
