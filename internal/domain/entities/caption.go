package entities

// CaptionPosition is the screen-position hint for a caption overlay
type CaptionPosition string

const (
	CaptionPositionTop    CaptionPosition = "top"
	CaptionPositionCenter CaptionPosition = "center"
	CaptionPositionBottom CaptionPosition = "bottom"
)

// IsValid checks the position against the known placements
func (p CaptionPosition) IsValid() bool {
	switch p {
	case CaptionPositionTop, CaptionPositionCenter, CaptionPositionBottom:
		return true
	}
	return false
}

// Caption is a time-bounded text overlay. The id is immutable for the
// lifetime of the caption; content, timing and position may all change.
// start > end is legal and means the caption is simply never active.
type Caption struct {
	ID           string          `json:"id"`
	Content      string          `json:"content"`
	StartSeconds float64         `json:"start"`
	EndSeconds   float64         `json:"end"`
	Position     CaptionPosition `json:"position"`
}

// ActiveAt reports whether the caption is visible at the given playback
// time. Both interval ends are inclusive.
func (c Caption) ActiveAt(timeSeconds float64) bool {
	return c.StartSeconds <= timeSeconds && timeSeconds <= c.EndSeconds
}

// CaptionList is the ordered caption sequence of a project. Order is
// insertion order, not time order, and is preserved through persistence.
type CaptionList []Caption
