package timeline

import (
	"math"

	"github.com/stepsyncdev/stepsync/internal/domain/entities"
)

// BeatCycle is the fixed 8-count overlay sequence. Positions 3 and 7 are
// the tap beat; the labels are display symbols, not beat numbers.
var BeatCycle = [8]string{"1", "2", "3", "T", "5", "6", "7", "T"}

// BeatAt maps a playback time onto the beat grid. Before the phase offset
// no beat has started and ok is false. A non-positive tempo defines no
// grid at all, so ok is false there too; imported configs can carry any
// numeric bpm. The label is a function of time alone, so seeking and
// scrubbing need no special handling.
func BeatAt(timeSeconds float64, tempo entities.TempoPhase) (string, bool) {
	if tempo.BPM <= 0 {
		return "", false
	}
	if timeSeconds < tempo.OffsetSeconds {
		return "", false
	}
	relative := timeSeconds - tempo.OffsetSeconds
	beatIndex := int(math.Floor(relative / tempo.SecondsPerBeat()))
	return BeatCycle[beatIndex%len(BeatCycle)], true
}
