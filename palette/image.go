package palette

import (
	"fmt"
	"slices"
)

// Image is a validated-on-construction indexed image description
type Image struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Colors []Color      `json:"colors"`
	Cycles []CycleRange `json:"cycles"`
	Pixels []int        `json:"pixels"`
}

// Validate checks every cycle range and pixel against the palette
func (img *Image) Validate() error {
	if img.Width <= 0 || img.Height <= 0 || len(img.Colors) == 0 {
		return fmt.Errorf("%w: %dx%d, %d colors", ErrEmptyImage, img.Width, img.Height, len(img.Colors))
	}
	// Divide rather than multiply so huge dimensions cannot wrap
	if len(img.Pixels)%img.Width != 0 || len(img.Pixels)/img.Width != img.Height {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrEmptyImage, len(img.Pixels), img.Width, img.Height)
	}
	for i, c := range img.Cycles {
		if err := c.validate(len(img.Colors)); err != nil {
			return fmt.Errorf("cycle %d: %w", i, err)
		}
	}
	n := len(img.Colors)
	for i, p := range img.Pixels {
		if p < 0 || p >= n {
			return fmt.Errorf("%w: pixel %d has index %d with %d colors", ErrPixelIndex, i, p, n)
		}
	}
	return nil
}

// StaticImage animates an indexed image by rotating its cycle ranges
type StaticImage struct {
	width  int
	height int
	colors []Color
	cycles []CycleRange
	pixels []int
	anim   []int
}

// NewStaticImage validates img and precomputes its animated index set
// The image's slices are copied; later changes to img do not affect the engine
func NewStaticImage(img Image) (*StaticImage, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	return &StaticImage{
		width:  img.Width,
		height: img.Height,
		colors: slices.Clone(img.Colors),
		cycles: slices.Clone(img.Cycles),
		pixels: slices.Clone(img.Pixels),
		anim:   animatedIndices(img.Cycles),
	}, nil
}

// animatedIndices returns the sorted union of all animated ranges
func animatedIndices(cycles []CycleRange) []int {
	seen := make(map[int]struct{})
	for _, c := range cycles {
		if !c.Animated() {
			continue
		}
		for idx := c.Low; idx <= c.High; idx++ {
			seen[idx] = struct{}{}
		}
	}

	anim := make([]int, 0, len(seen))
	for idx := range seen {
		anim = append(anim, idx)
	}
	slices.Sort(anim)
	return anim
}

func (s *StaticImage) Size() (int, int) {
	return s.width, s.height
}

func (s *StaticImage) Indices() []int {
	return s.pixels
}

func (s *StaticImage) AnimatedIndices() []int {
	return s.anim
}

// Palette returns the base palette; callers must not modify it
func (s *StaticImage) Palette() []Color {
	return s.colors
}

// Cycles returns the cycle ranges; callers must not modify them
func (s *StaticImage) Cycles() []CycleRange {
	return s.cycles
}

// Cycle ignores the time of day and returns a rotated copy of the base palette
func (s *StaticImage) Cycle(_ TimeOfDay, dtMillis int) []Color {
	p := slices.Clone(s.colors)
	applyCycles(p, s.cycles, dtMillis)
	return p
}
