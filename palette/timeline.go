package palette

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Timeline is an image description with named palettes keyed to times of day
// Timeline keys are seconds since midnight as decimal strings
type Timeline struct {
	Base     Image                   `json:"base"`
	Palettes map[string]NamedPalette `json:"palettes"`
	Timeline map[string]string       `json:"timeline"`
}

// NamedPalette is one entry of a timeline's palette table
type NamedPalette struct {
	Colors []Color `json:"colors"`
}

// Marker is a parsed timeline entry
type Marker struct {
	Seconds int
	Name    string
}

// ParseSchedule converts the on-disk marker table into markers sorted by time
func ParseSchedule(raw map[string]string) ([]Marker, error) {
	if len(raw) == 0 {
		return nil, ErrEmptySchedule
	}

	markers := make([]Marker, 0, len(raw))
	for key, name := range raw {
		secs, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadMarker, key)
		}
		if secs < 0 || secs >= DaySeconds {
			return nil, fmt.Errorf("%w: %d out of range", ErrBadMarker, secs)
		}
		markers = append(markers, Marker{Seconds: secs, Name: name})
	}

	// Name breaks ties so that equal markers resolve the same way on every run
	slices.SortFunc(markers, func(a, b Marker) int {
		return cmp.Or(cmp.Compare(a.Seconds, b.Seconds), cmp.Compare(a.Name, b.Name))
	})
	return markers, nil
}

// TimeOfDayState is the resolved time-of-day palette pair
type TimeOfDayState struct {
	Current []Color
	Next    []Color // nil when no blending applies
	Offset  int     // seconds past the previous marker
	Window  int     // seconds between previous and next marker
}

// Percent returns the blend fraction toward Next, clamped to [0,1]
// A non-positive window yields 0
func (s TimeOfDayState) Percent() float64 {
	if s.Window <= 0 {
		return 0
	}
	p := float64(s.Offset) / float64(s.Window)
	return max(0, min(1, p))
}

// Resolver picks the two palettes bracketing a time of day
// The first resolved time is cached for the resolver's lifetime
type Resolver struct {
	base     []Color
	palettes map[string][]Color
	markers  []Marker

	mu    sync.Mutex
	state *TimeOfDayState
}

// NewResolver validates that every marker names a palette of len(base) colors
func NewResolver(base []Color, palettes map[string]NamedPalette, schedule map[string]string) (*Resolver, error) {
	markers, err := ParseSchedule(schedule)
	if err != nil {
		return nil, err
	}

	table := make(map[string][]Color, len(palettes))
	for name, np := range palettes {
		if len(np.Colors) != len(base) {
			return nil, fmt.Errorf("%w: %q has %d colors, base has %d", ErrPaletteSize, name, len(np.Colors), len(base))
		}
		table[name] = slices.Clone(np.Colors)
	}

	for _, m := range markers {
		if _, ok := table[m.Name]; !ok {
			return nil, fmt.Errorf("%w: %q at %d", ErrUnknownPalette, m.Name, m.Seconds)
		}
	}

	return &Resolver{
		base:     base,
		palettes: table,
		markers:  markers,
	}, nil
}

// Markers returns the sorted schedule
func (r *Resolver) Markers() []Marker {
	return r.markers
}

// Resolve computes the state for secs without touching the cache
func (r *Resolver) Resolve(secs int) TimeOfDayState {
	t := nonNegMod(secs, DaySeconds)

	// Previous marker: latest strictly before t, else the earliest of the day
	prev := r.markers[0]
	for _, m := range r.markers {
		if m.Seconds < t {
			prev = m
		}
	}

	// Next marker: earliest strictly after prev, else wrap to the earliest of the day
	next := r.markers[0]
	for _, m := range r.markers {
		if m.Seconds > prev.Seconds {
			next = m
			break
		}
	}

	return TimeOfDayState{
		Current: r.palettes[prev.Name],
		Next:    r.palettes[next.Name],
		Offset:  t - prev.Seconds,
		Window:  next.Seconds - prev.Seconds,
	}
}

// State returns the cached state, resolving it on the first call that carries a time
// Calls without a time return the unblended base palette and leave the cache empty
func (r *Resolver) State(tod TimeOfDay) TimeOfDayState {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != nil {
		return *r.state
	}
	if !tod.Valid {
		return TimeOfDayState{Current: r.base, Offset: 1, Window: 1}
	}

	st := r.Resolve(tod.Seconds)
	r.state = &st
	return st
}

// TimelineImage fades between scheduled palettes before applying the base image's cycles
type TimelineImage struct {
	base     *StaticImage
	resolver *Resolver
}

// NewTimelineImage validates the base image and the palette schedule
func NewTimelineImage(tl Timeline) (*TimelineImage, error) {
	base, err := NewStaticImage(tl.Base)
	if err != nil {
		return nil, fmt.Errorf("base image: %w", err)
	}

	resolver, err := NewResolver(base.Palette(), tl.Palettes, tl.Timeline)
	if err != nil {
		return nil, fmt.Errorf("timeline: %w", err)
	}

	return &TimelineImage{base: base, resolver: resolver}, nil
}

func (ti *TimelineImage) Size() (int, int) {
	return ti.base.Size()
}

func (ti *TimelineImage) Indices() []int {
	return ti.base.Indices()
}

func (ti *TimelineImage) AnimatedIndices() []int {
	return ti.base.AnimatedIndices()
}

// Resolver exposes the time-of-day resolver
func (ti *TimelineImage) Resolver() *Resolver {
	return ti.resolver
}

// Cycle fades the resolved palette toward the next scheduled one, then rotates cycle ranges
func (ti *TimelineImage) Cycle(tod TimeOfDay, dtMillis int) []Color {
	st := ti.resolver.State(tod)

	p := slices.Clone(st.Current)
	if st.Next != nil {
		FadeAll(p, st.Next, st.Percent())
	}

	applyCycles(p, ti.base.Cycles(), dtMillis)
	return p
}
