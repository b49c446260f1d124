package entities

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBPM is the tempo a fresh project starts with.
const DefaultBPM = 130

// DefaultConfigFilename is the suggested export name when no media is loaded.
const DefaultConfigFilename = "stepsync-config.json"

// TempoPhase anchors the beat grid: tempo in beats per minute plus the
// phase offset in seconds before counting begins.
type TempoPhase struct {
	BPM           float64 `gorm:"column:bpm;not null;default:130" json:"bpm"`
	OffsetSeconds float64 `gorm:"column:offset_seconds;not null;default:0" json:"offset_seconds"`
}

// SecondsPerBeat returns the beat period. Imported configs may carry a
// non-positive BPM; callers that index by beat must check for that first.
func (t TempoPhase) SecondsPerBeat() float64 {
	return 60.0 / t.BPM
}

// Project is the unit of export/import: tempo, restart bookmark, overlay
// title and the ordered caption sequence.
type Project struct {
	ID                  uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title               string      `gorm:"type:varchar(255);not null;default:''" json:"title"`
	Tempo               TempoPhase  `gorm:"embedded" json:"tempo"`
	RestartPointSeconds float64     `gorm:"not null;default:0" json:"restart_point_seconds"`
	MediaObject         *string     `gorm:"type:varchar(512)" json:"media_object,omitempty"`
	MediaFilename       *string     `gorm:"type:varchar(255)" json:"media_filename,omitempty"`
	Captions            CaptionList `gorm:"type:jsonb;serializer:json;not null;default:'[]'" json:"captions"`
	CreatedAt           time.Time   `gorm:"default:now()" json:"created_at"`
	UpdatedAt           time.Time   `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// NewProject creates a project with default tempo applied where unset.
func NewProject(title string, bpm, offsetSeconds, restartPointSeconds float64) *Project {
	if bpm == 0 {
		bpm = DefaultBPM
	}
	return &Project{
		ID:                  uuid.New(),
		Title:               title,
		Tempo:               TempoPhase{BPM: bpm, OffsetSeconds: offsetSeconds},
		RestartPointSeconds: restartPointSeconds,
		Captions:            CaptionList{},
	}
}

// HasCaption reports whether a caption with the id exists.
func (p *Project) HasCaption(id string) bool {
	for i := range p.Captions {
		if p.Captions[i].ID == id {
			return true
		}
	}
	return false
}

// AddCaption appends the caption to the end of the sequence.
func (p *Project) AddCaption(c Caption) {
	p.Captions = append(p.Captions, c)
}

// UpdateCaption replaces the mutable fields of the matching caption in
// place, keeping its id and its slot in the sequence. Returns false when
// the id is unknown; callers treat that as a no-op.
func (p *Project) UpdateCaption(id string, content *string, startSeconds, endSeconds *float64, position *CaptionPosition) bool {
	for i := range p.Captions {
		if p.Captions[i].ID != id {
			continue
		}
		if content != nil {
			p.Captions[i].Content = *content
		}
		if startSeconds != nil {
			p.Captions[i].StartSeconds = *startSeconds
		}
		if endSeconds != nil {
			p.Captions[i].EndSeconds = *endSeconds
		}
		if position != nil {
			p.Captions[i].Position = *position
		}
		return true
	}
	return false
}

// DeleteCaption removes the matching caption. Returns false when the id
// is unknown; callers treat that as a no-op.
func (p *Project) DeleteCaption(id string) bool {
	for i := range p.Captions {
		if p.Captions[i].ID == id {
			p.Captions = append(p.Captions[:i], p.Captions[i+1:]...)
			return true
		}
	}
	return false
}

// AttachMedia records the stored media object and its original filename.
func (p *Project) AttachMedia(objectName, filename string) {
	p.MediaObject = &objectName
	p.MediaFilename = &filename
}

// ConfigFilename is the suggested filename for an exported config:
// the media base name with a .json extension, or a fixed default when no
// media is loaded.
func (p *Project) ConfigFilename() string {
	if p.MediaFilename == nil || *p.MediaFilename == "" {
		return DefaultConfigFilename
	}
	name := *p.MediaFilename
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return base + ".json"
}
