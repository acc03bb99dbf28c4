// Package loader reads color cycling image descriptions from JSON.
//
// Two layouts are accepted. A static image:
//
//	{"width": W, "height": H, "colors": [...], "cycles": [...], "pixels": [...]}
//
// and a timeline, which wraps a static image with named palettes keyed to times of day:
//
//	{"base": {...}, "palettes": {"name": {"colors": [...]}}, "timeline": {"<seconds>": "name"}}
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/colorcycle/palette"
)

// Kind identifies which layout a description used
type Kind int

const (
	KindStatic Kind = iota
	KindTimeline
)

func (k Kind) String() string {
	if k == KindTimeline {
		return "timeline"
	}
	return "static"
}

// probe detects the timeline layout by its base object
type probe struct {
	Base json.RawMessage `json:"base"`
}

// LoadFile reads and decodes the description at path
func LoadFile(path string) (palette.Cycler, Kind, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, KindStatic, fmt.Errorf("failed to read %s: %w", path, err)
	}

	img, kind, err := Decode(data)
	if err != nil {
		return nil, kind, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return img, kind, nil
}

// Load decodes a description from r
func Load(r io.Reader) (palette.Cycler, Kind, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, KindStatic, err
	}
	return Decode(data)
}

// Decode builds an engine from a JSON description, trying the timeline layout first
// A description with a base object that is not a valid timeline falls back to the
// static layout; if that fails too the timeline error is reported
func Decode(data []byte) (palette.Cycler, Kind, error) {
	var p probe
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, KindStatic, fmt.Errorf("invalid JSON: %w", err)
	}

	if len(bytes.TrimSpace(p.Base)) > 0 && !bytes.Equal(bytes.TrimSpace(p.Base), []byte("null")) {
		tl, tlErr := DecodeTimeline(data)
		if tlErr == nil {
			return tl, KindTimeline, nil
		}
		img, err := DecodeStatic(data)
		if err != nil {
			return nil, KindTimeline, tlErr
		}
		return img, KindStatic, nil
	}

	img, err := DecodeStatic(data)
	if err != nil {
		return nil, KindStatic, err
	}
	return img, KindStatic, nil
}

// DecodeStatic decodes and validates a static image description
func DecodeStatic(data []byte) (*palette.StaticImage, error) {
	var img palette.Image
	if err := json.Unmarshal(data, &img); err != nil {
		return nil, fmt.Errorf("invalid image: %w", err)
	}
	return palette.NewStaticImage(img)
}

// DecodeTimeline decodes and validates a timeline description
func DecodeTimeline(data []byte) (*palette.TimelineImage, error) {
	var tl palette.Timeline
	if err := json.Unmarshal(data, &tl); err != nil {
		return nil, fmt.Errorf("invalid timeline: %w", err)
	}
	return palette.NewTimelineImage(tl)
}
