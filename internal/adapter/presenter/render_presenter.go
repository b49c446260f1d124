package presenter

import (
	"github.com/stepsyncdev/stepsync/internal/adapter/dto/render"
	"github.com/stepsyncdev/stepsync/internal/domain/entities"
	renderuse "github.com/stepsyncdev/stepsync/internal/usecase/render"
)

// ToRenderJobResponse converts a RenderJob entity to RenderJobResponse DTO
func ToRenderJobResponse(j *entities.RenderJob) *render.RenderJobResponse {
	if j == nil {
		return nil
	}
	return &render.RenderJobResponse{
		ID:             j.ID.String(),
		ProjectID:      j.ProjectID.String(),
		Status:         string(j.Status),
		StagedFilename: j.StagedFilename,
		DownloadURL:    j.DownloadURL,
		ErrorMessage:   j.ErrorMessage,
		CreatedAt:      j.CreatedAt,
	}
}

// ToRenderResponse converts a render Result to RenderResponse DTO
func ToRenderResponse(r *renderuse.Result) *render.RenderResponse {
	if r == nil {
		return nil
	}
	return &render.RenderResponse{
		Job:         ToRenderJobResponse(r.Job),
		DownloadURL: r.DownloadURL,
		ArchiveURL:  r.ArchiveURL,
	}
}

// ToRenderHistoryResponse converts render jobs to RenderHistoryResponse
func ToRenderHistoryResponse(jobs []*entities.RenderJob) *render.RenderHistoryResponse {
	responses := make([]*render.RenderJobResponse, len(jobs))
	for i, j := range jobs {
		responses[i] = ToRenderJobResponse(j)
	}
	return &render.RenderHistoryResponse{
		Jobs:  responses,
		Total: len(responses),
	}
}
