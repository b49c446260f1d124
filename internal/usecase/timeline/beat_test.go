package timeline

import (
	"testing"

	"github.com/stepsyncdev/stepsync/internal/domain/entities"
)

func TestBeatAt_BeforeOffset(t *testing.T) {
	tempo := entities.TempoPhase{BPM: 120, OffsetSeconds: 1.0}

	for _, tt := range []float64{0, 0.5, 0.9, 0.999} {
		if label, ok := BeatAt(tt, tempo); ok {
			t.Fatalf("BeatAt(%v) = %q, want no beat before offset", tt, label)
		}
	}
}

func TestBeatAt_WorkedExample(t *testing.T) {
	// bpm 120, offset 1.0 => 0.5s per beat
	tempo := entities.TempoPhase{BPM: 120, OffsetSeconds: 1.0}

	tests := []struct {
		time float64
		want string
	}{
		{1.0, "1"},  // exactly at the offset
		{1.4, "1"},  // still inside the first beat
		{1.5, "2"},  // beat index 1
		{1.9, "2"},  // floor(0.9/0.5) = 1
		{2.0, "3"},  // beat index 2
		{2.5, "T"},  // tap on position 3
		{3.0, "5"},
		{3.5, "6"},
		{4.0, "7"},
		{4.5, "T"},  // tap on position 7
		{5.0, "1"},  // cycle wraps
	}
	for _, tc := range tests {
		got, ok := BeatAt(tc.time, tempo)
		if !ok {
			t.Fatalf("BeatAt(%v) returned no beat", tc.time)
		}
		if got != tc.want {
			t.Errorf("BeatAt(%v) = %q, want %q", tc.time, got, tc.want)
		}
	}
}

func TestBeatAt_LabelsAreFromCycle(t *testing.T) {
	tempo := entities.TempoPhase{BPM: 97, OffsetSeconds: 0.3}
	known := map[string]bool{}
	for _, l := range BeatCycle {
		known[l] = true
	}

	for tt := tempo.OffsetSeconds; tt < 60; tt += 0.173 {
		label, ok := BeatAt(tt, tempo)
		if !ok {
			t.Fatalf("BeatAt(%v) returned no beat at/after offset", tt)
		}
		if !known[label] {
			t.Fatalf("BeatAt(%v) = %q, not a cycle label", tt, label)
		}
	}
}

func TestBeatAt_Periodicity(t *testing.T) {
	tempo := entities.TempoPhase{BPM: 120, OffsetSeconds: 1.0}
	period := 8 * tempo.SecondsPerBeat()

	for k := 1; k <= 4; k++ {
		for phase := 0.0; phase < period; phase += 0.125 {
			base, _ := BeatAt(tempo.OffsetSeconds+phase, tempo)
			shifted, _ := BeatAt(tempo.OffsetSeconds+float64(k)*period+phase, tempo)
			if base != shifted {
				t.Fatalf("period broken at k=%d phase=%v: %q != %q", k, phase, base, shifted)
			}
		}
	}
}

// Imported configs bypass the request validators, so any numeric bpm can
// reach stored state. BeatAt must stay total for all of them.
func TestBeatAt_NonPositiveTempo(t *testing.T) {
	for _, bpm := range []float64{0, -5, -130} {
		tempo := entities.TempoPhase{BPM: bpm, OffsetSeconds: 1.0}
		for _, tt := range []float64{0, 1.0, 2.0, 60} {
			if label, ok := BeatAt(tt, tempo); ok {
				t.Fatalf("BeatAt(%v) with bpm %v = %q, want no beat", tt, bpm, label)
			}
		}
	}
}

func TestBeatAt_ZeroOffset(t *testing.T) {
	tempo := entities.TempoPhase{BPM: 60, OffsetSeconds: 0}

	label, ok := BeatAt(0, tempo)
	if !ok || label != "1" {
		t.Fatalf("BeatAt(0) = %q, %v; want \"1\", true", label, ok)
	}
}
