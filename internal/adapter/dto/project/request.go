package project

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Title               string  `json:"title" validate:"required,min=1,max=255"`
	BPM                 float64 `json:"bpm" validate:"required,min=60,max=180"`
	OffsetSeconds       float64 `json:"offset" validate:"min=0"`
	RestartPointSeconds float64 `json:"start_point" validate:"min=0"`
}

// UpdateProjectRequest represents the request to update project settings
type UpdateProjectRequest struct {
	Title               *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	BPM                 *float64 `json:"bpm,omitempty" validate:"omitempty,min=60,max=180"`
	OffsetSeconds       *float64 `json:"offset,omitempty" validate:"omitempty,min=0"`
	RestartPointSeconds *float64 `json:"start_point,omitempty" validate:"omitempty,min=0"`
}

// CreateCaptionRequest represents the request to add a caption.
// Start and end are not cross-validated; a caption whose start is past
// its end is stored and simply never displays.
type CreateCaptionRequest struct {
	Content      string  `json:"content" validate:"required,min=1,max=500"`
	StartSeconds float64 `json:"start" validate:"min=0"`
	EndSeconds   float64 `json:"end" validate:"min=0"`
	Position     string  `json:"position" validate:"required,oneof=top center bottom"`
}

// UpdateCaptionRequest represents the request to edit a caption
type UpdateCaptionRequest struct {
	Content      *string  `json:"content,omitempty" validate:"omitempty,min=1,max=500"`
	StartSeconds *float64 `json:"start,omitempty" validate:"omitempty,min=0"`
	EndSeconds   *float64 `json:"end,omitempty" validate:"omitempty,min=0"`
	Position     *string  `json:"position,omitempty" validate:"omitempty,oneof=top center bottom"`
}
