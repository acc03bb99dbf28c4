// Package terminal detects terminal color capability and maps colors onto the xterm-256 palette.
package terminal

import (
	"fmt"
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves a -color flag value; "auto" and "" detect from the environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	default:
		return ColorMode256, fmt.Errorf("unknown color mode %q", s)
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	for _, env := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"WEZTERM_PANE",
	} {
		if os.Getenv(env) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// Color cube levels for palette indices 16-231
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to the nearest cube level
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			if d := abs(i - int(cubeValues[j])); d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Nearest256 returns the xterm-256 index closest to an RGB value
// Near-gray colors are matched against the grayscale ramp (232-255) as well as the cube
func Nearest256(r, g, b uint8) uint8 {
	cr, cg, cb := cubeIndex[r], cubeIndex[g], cubeIndex[b]
	cube := 16 + 36*cr + 6*cg + cb

	gray := (int(r) + int(g) + int(b)) / 3
	spread := max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray))
	if spread >= 10 {
		return cube
	}

	switch {
	case gray < 4:
		return 16
	case gray > 243:
		return 231
	}

	grayIdx := min(232+(gray-8)/10, 255)
	if grayIdx < 232 {
		grayIdx = 232
	}
	level := 8 + (grayIdx-232)*10
	grayDist := abs(int(r)-level) + abs(int(g)-level) + abs(int(b)-level)
	cubeDist := abs(int(r)-int(cubeValues[cr])) +
		abs(int(g)-int(cubeValues[cg])) +
		abs(int(b)-int(cubeValues[cb]))

	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return cube
}
