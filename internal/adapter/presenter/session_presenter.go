package presenter

import (
	"github.com/stepsyncdev/stepsync/internal/adapter/dto/project"
	"github.com/stepsyncdev/stepsync/internal/adapter/dto/session"
	"github.com/stepsyncdev/stepsync/internal/usecase/preview"
	"github.com/stepsyncdev/stepsync/internal/usecase/timeline"
)

func toCommandResponses(commands []timeline.Command) []session.CommandResponse {
	responses := make([]session.CommandResponse, len(commands))
	for i, cmd := range commands {
		responses[i] = session.CommandResponse{
			Type:  string(cmd.Type),
			Value: cmd.Value,
		}
	}
	return responses
}

// ToSessionResponse converts a preview State to SessionResponse DTO
func ToSessionResponse(s *preview.State) *session.SessionResponse {
	if s == nil {
		return nil
	}
	return &session.SessionResponse{
		SessionID: s.SessionID.String(),
		ProjectID: s.ProjectID.String(),
		Transport: string(s.Transport),
		Rate:      s.Rate,
		Commands:  toCommandResponses(s.Commands),
	}
}

// ToSampleResponse converts a preview SampleResult to SampleResponse DTO
func ToSampleResponse(r *preview.SampleResult) *session.SampleResponse {
	if r == nil {
		return nil
	}

	active := make([]project.CaptionResponse, len(r.Display.ActiveCaptions))
	for i := range r.Display.ActiveCaptions {
		active[i] = ToCaptionResponse(&r.Display.ActiveCaptions[i])
	}

	return &session.SampleResponse{
		SessionResponse: *ToSessionResponse(&r.State),
		ActiveBeat:      r.Display.ActiveBeatLabel,
		ActiveCaptions:  active,
		Clock:           r.Clock,
	}
}
