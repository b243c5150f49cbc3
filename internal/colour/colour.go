// Package colour implements the perceptual colour harmonization engine:
// colour space conversion, accent selection, OKLab blending, enhancement
// presets, gradient synthesis and the harmonization orchestrator.
package colour

import (
	"fmt"
	"strings"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSL represents a colour in HSL format.
// H is hue in degrees [0, 360); S and L are percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// OKLab represents a colour in the OKLab perceptual colour space.
// L is lightness [0, 1]; A and B are the opponent axes, practically
// within about ±0.5. Equal numeric distance approximates equal
// perceived difference.
type OKLab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// InvalidFormatError reports a hex colour string that could not be parsed.
type InvalidFormatError struct {
	Input string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid hex colour format: %q", e.Input)
}

// ParseHex parses a hex colour string into an RGB value.
// Accepts 3-digit and 6-digit forms, case-insensitive, with or without a
// leading '#'. Malformed input returns an *InvalidFormatError; callers
// decide their own fallback policy.
func ParseHex(s string) (RGB, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(trimmed) {
	case 3:
		// Expand shorthand: "abc" -> "aabbcc".
		var expanded [6]byte
		for i := 0; i < 3; i++ {
			expanded[i*2] = trimmed[i]
			expanded[i*2+1] = trimmed[i]
		}
		trimmed = string(expanded[:])
	case 6:
		// Already full form.
	default:
		return RGB{}, &InvalidFormatError{Input: s}
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(trimmed[i*2])
		lo, ok2 := hexNibble(trimmed[i*2+1])
		if !ok1 || !ok2 {
			return RGB{}, &InvalidFormatError{Input: s}
		}
		channels[i] = hi<<4 | lo
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// hexNibble decodes a single hex digit, case-insensitive.
func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// mustHex parses a hex string that is known to be valid at compile time.
// Used only for built-in palette and fallback constants.
func mustHex(s string) RGB {
	rgb, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return rgb
}
