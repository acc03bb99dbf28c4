package palette

// TimeOfDay is an optional absolute time, in seconds since midnight
// The zero value carries no time
type TimeOfDay struct {
	Seconds int
	Valid   bool
}

// At returns a TimeOfDay holding secs
func At(secs int) TimeOfDay {
	return TimeOfDay{Seconds: secs, Valid: true}
}

// NoTime is the absent time of day
var NoTime = TimeOfDay{}

// Cycler computes the palette of an indexed image for a point in its animation
// StaticImage and TimelineImage implement it
type Cycler interface {
	// Size returns image width and height in pixels
	Size() (width, height int)
	// Indices returns the palette index of every pixel, row-major
	Indices() []int
	// AnimatedIndices returns the palette indices that can change between frames
	AnimatedIndices() []int
	// Cycle returns the palette after dtMillis of animation at the given time of day
	Cycle(tod TimeOfDay, dtMillis int) []Color
}
