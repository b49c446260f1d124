package project

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/stepsyncdev/stepsync/internal/domain/entities"
)

// Number is a float64 that also accepts a numeric JSON string on decode,
// matching the coercion the config format has always allowed. A value
// that cannot be coerced fails the decode of the whole document.
type Number float64

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("cannot coerce %q to a number: %w", s, err)
		}
		*n = Number(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

// TimedText is the wire shape of one caption inside a config document.
type TimedText struct {
	ID       string                   `json:"id"`
	Content  string                   `json:"content"`
	Start    Number                   `json:"start"`
	End      Number                   `json:"end"`
	Position entities.CaptionPosition `json:"position"`
}

// Document is the canonical project config: the export shape and the
// import shape are the same object, with stable keys. On import every
// field is optional; a nil pointer means the key was absent and the
// corresponding project value must be left alone. This keeps 0 and
// "absent" distinct for offset and startPoint.
type Document struct {
	Text       *string      `json:"text,omitempty"`
	BPM        *Number      `json:"bpm,omitempty"`
	Offset     *Number      `json:"offset,omitempty"`
	StartPoint *Number      `json:"startPoint,omitempty"`
	TimedTexts *[]TimedText `json:"timedTexts,omitempty"`
}

// ExportDocument builds the full config document for a project. Export
// always emits every field.
func ExportDocument(p *entities.Project) *Document {
	text := p.Title
	bpm := Number(p.Tempo.BPM)
	offset := Number(p.Tempo.OffsetSeconds)
	startPoint := Number(p.RestartPointSeconds)
	timedTexts := timedTextsFromCaptions(p.Captions)

	return &Document{
		Text:       &text,
		BPM:        &bpm,
		Offset:     &offset,
		StartPoint: &startPoint,
		TimedTexts: &timedTexts,
	}
}

// Encode renders the document as indented UTF-8 JSON.
func (d *Document) Encode() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// DecodeDocument parses a config blob. Unknown keys are ignored; a JSON
// parse failure or a non-coercible numeric field rejects the blob as a
// whole, so a failed import never half-applies.
func DecodeDocument(blob []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(blob, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ApplyTo merges the document into a project, field by field, applying
// only the fields that were present in the input. A present timedTexts
// array replaces the caption sequence; an absent one leaves it alone.
func (d *Document) ApplyTo(p *entities.Project) {
	if d.Text != nil {
		p.Title = *d.Text
	}
	if d.BPM != nil {
		p.Tempo.BPM = float64(*d.BPM)
	}
	if d.Offset != nil {
		p.Tempo.OffsetSeconds = float64(*d.Offset)
	}
	if d.StartPoint != nil {
		p.RestartPointSeconds = float64(*d.StartPoint)
	}
	if d.TimedTexts != nil {
		captions := make(entities.CaptionList, 0, len(*d.TimedTexts))
		for _, tt := range *d.TimedTexts {
			captions = append(captions, entities.Caption{
				ID:           tt.ID,
				Content:      tt.Content,
				StartSeconds: float64(tt.Start),
				EndSeconds:   float64(tt.End),
				Position:     tt.Position,
			})
		}
		p.Captions = captions
	}
}

// EncodeTimedTexts renders the caption sequence as the JSON array the
// Render Service expects in its timed_texts form field.
func EncodeTimedTexts(captions entities.CaptionList) (string, error) {
	blob, err := json.Marshal(timedTextsFromCaptions(captions))
	if err != nil {
		return "", err
	}
	return string(blob), nil
}

func timedTextsFromCaptions(captions entities.CaptionList) []TimedText {
	out := make([]TimedText, 0, len(captions))
	for _, c := range captions {
		out = append(out, TimedText{
			ID:       c.ID,
			Content:  c.Content,
			Start:    Number(c.StartSeconds),
			End:      Number(c.EndSeconds),
			Position: c.Position,
		})
	}
	return out
}
