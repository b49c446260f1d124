package timeline

import (
	"github.com/stepsyncdev/stepsync/internal/domain/entities"
)

// ActiveCaptionsAt returns every caption whose closed [start, end] interval
// contains the playback time, preserving insertion order. Overlapping
// captions are all returned; stacking by position is the presentation
// layer's concern. A linear scan is fine at the caption counts projects
// actually carry.
func ActiveCaptionsAt(timeSeconds float64, captions []entities.Caption) []entities.Caption {
	active := make([]entities.Caption, 0, len(captions))
	for _, c := range captions {
		if c.ActiveAt(timeSeconds) {
			active = append(active, c)
		}
	}
	return active
}
