package presenter

import (
	"github.com/stepsyncdev/stepsync/internal/adapter/dto/project"
	"github.com/stepsyncdev/stepsync/internal/domain/entities"
)

// ToCaptionResponse converts a Caption entity to CaptionResponse DTO
func ToCaptionResponse(c *entities.Caption) project.CaptionResponse {
	return project.CaptionResponse{
		ID:           c.ID,
		Content:      c.Content,
		StartSeconds: c.StartSeconds,
		EndSeconds:   c.EndSeconds,
		Position:     string(c.Position),
	}
}

// ToProjectResponse converts a Project entity to ProjectResponse DTO.
// mediaURL may be empty when no media is attached.
func ToProjectResponse(p *entities.Project, mediaURL string) *project.ProjectResponse {
	if p == nil {
		return nil
	}

	captions := make([]project.CaptionResponse, len(p.Captions))
	for i := range p.Captions {
		captions[i] = ToCaptionResponse(&p.Captions[i])
	}

	return &project.ProjectResponse{
		ID:                  p.ID.String(),
		Title:               p.Title,
		BPM:                 p.Tempo.BPM,
		OffsetSeconds:       p.Tempo.OffsetSeconds,
		RestartPointSeconds: p.RestartPointSeconds,
		MediaFilename:       p.MediaFilename,
		MediaURL:            mediaURL,
		Captions:            captions,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// ToProjectListResponse converts a slice of Project entities to ProjectListResponse
func ToProjectListResponse(projects []*entities.Project) *project.ProjectListResponse {
	responses := make([]*project.ProjectResponse, len(projects))
	for i, p := range projects {
		responses[i] = ToProjectResponse(p, "")
	}
	return &project.ProjectListResponse{
		Projects: responses,
		Total:    len(responses),
	}
}
