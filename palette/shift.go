package palette

import "math"

const (
	// CycleSpeed is the base tick rate a cycle's rate is divided by before shifting
	CycleSpeed = 280
	// DaySeconds is the length of the time-of-day cycle
	DaySeconds = 86400
)

// Style selects the shift-amount formula of a cycle range
// Encoded on disk as the cycle's "reverse" field
type Style int

const (
	StyleForward0 Style = iota
	StyleForward1
	StyleReverse   // linear, rotates toward low
	StylePingPong  // triangle wave across the range
	StyleSineQuart // sine-shaped, scaled by size/4
	StyleSineHalf  // sine-shaped, scaled by size/2
	styleCount
)

// Valid reports whether s is one of the six known styles
func (s Style) Valid() bool {
	return s >= StyleForward0 && s < styleCount
}

// Reverse reports whether the style rotates toward the low end
func (s Style) Reverse() bool {
	return s == StyleReverse
}

func (s Style) String() string {
	switch s {
	case StyleForward0, StyleForward1:
		return "forward"
	case StyleReverse:
		return "reverse"
	case StylePingPong:
		return "pingpong"
	case StyleSineQuart:
		return "sine-quarter"
	case StyleSineHalf:
		return "sine-half"
	default:
		return "unknown"
	}
}

// ShiftAmount returns the number of single-step rotations for a range of size n
// rate is already divided by CycleSpeed; dtMillis is time since the engine started
// Result is always in [0, n) for n > 0; n <= 0 yields 0
func ShiftAmount(rate, dtMillis, n int, style Style) int {
	if n <= 0 {
		return 0
	}
	steps := nonNegMod(dtMillis*rate/1000, 2*n)

	var amount int
	switch style {
	case StylePingPong:
		amount = steps
		if amount >= n {
			amount = 2*n - amount
		}
	case StyleSineQuart, StyleSineHalf:
		// Legacy shaping: sin of an integer multiple of 2π is ~0, so the shaped
		// value collapses to 0 or 1 before scaling. Kept as-is for compatibility.
		raw := steps % n
		shaped := int(math.Floor(math.Sin(float64(raw)*2.0*math.Pi)/float64(n) + 1.0))
		if style == StyleSineQuart {
			amount = shaped * (n / 4)
		} else {
			amount = shaped * (n / 2)
		}
	default:
		amount = steps
	}

	return nonNegMod(amount, n)
}

// Rotate performs amount single-step rotations of palette[low:high+1] in place
// Forward: the entry at high moves to low, the rest shift up by one
// Reverse: the entry at low moves to high, the rest shift down by one
func Rotate(p []Color, low, high, amount int, reverse bool) {
	if low < 0 || high >= len(p) || low >= high || amount <= 0 {
		return
	}
	for range amount {
		if reverse {
			first := p[low]
			copy(p[low:high], p[low+1:high+1])
			p[high] = first
		} else {
			last := p[high]
			copy(p[low+1:high+1], p[low:high])
			p[low] = last
		}
	}
}

// nonNegMod returns a mod n in [0, n)
func nonNegMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
