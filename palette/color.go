package palette

import (
	"encoding/json"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB palette entry
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Equal returns true if colors match
func (c Color) Equal(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Hex returns the color as "#rrggbb"
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses "#rrggbb" or "#rgb"
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// UnmarshalJSON accepts either {"r":..,"g":..,"b":..} or a "#rrggbb" string
func (c *Color) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseHex(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	// Alias drops the method set to avoid recursion
	type rgb Color
	var raw rgb
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = Color(raw)
	return nil
}

// Fade linearly interpolates each channel from start toward end, truncating toward zero
// percent is clamped to [0,1]; 0 returns start, 1 returns end
func Fade(start, end Color, percent float64) Color {
	percent = max(0, min(1, percent))
	return Color{
		R: uint8(float64(start.R) + (float64(end.R)-float64(start.R))*percent),
		G: uint8(float64(start.G) + (float64(end.G)-float64(start.G))*percent),
		B: uint8(float64(start.B) + (float64(end.B)-float64(start.B))*percent),
	}
}

// FadeAll fades every entry of start toward the entry at the same index of end, in place
// Entries past len(end) are left untouched
func FadeAll(start, end []Color, percent float64) {
	n := min(len(start), len(end))
	for i := 0; i < n; i++ {
		start[i] = Fade(start[i], end[i], percent)
	}
}
