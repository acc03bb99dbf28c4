package palette

import "fmt"

// CycleRange is a contiguous run of palette entries rotating together
// Style is stored under the "reverse" key in image descriptions
type CycleRange struct {
	Style Style `json:"reverse"`
	Rate  int   `json:"rate"`
	Low   int   `json:"low"`
	High  int   `json:"high"`
}

// Size returns the number of palette entries covered by the range
func (c CycleRange) Size() int {
	return c.High - c.Low + 1
}

// Animated reports whether the range ever moves
func (c CycleRange) Animated() bool {
	return c.Rate != 0
}

// validate checks the range against a palette of n entries
func (c CycleRange) validate(n int) error {
	if c.Low < 0 || c.High >= n || c.Low > c.High {
		return fmt.Errorf("%w: [%d,%d] with %d colors", ErrMalformedRange, c.Low, c.High, n)
	}
	if c.Rate < 0 {
		return fmt.Errorf("%w: negative rate %d on [%d,%d]", ErrMalformedRange, c.Rate, c.Low, c.High)
	}
	if !c.Style.Valid() {
		return fmt.Errorf("%w: unknown style %d on [%d,%d]", ErrMalformedRange, c.Style, c.Low, c.High)
	}
	return nil
}

// applyCycles rotates every animated range of p for dtMillis of elapsed time
func applyCycles(p []Color, cycles []CycleRange, dtMillis int) {
	for _, c := range cycles {
		if !c.Animated() {
			continue
		}
		n := c.Size()
		amount := ShiftAmount(c.Rate/CycleSpeed, dtMillis, n, c.Style)
		Rotate(p, c.Low, c.High, amount, c.Style.Reverse())
	}
}
