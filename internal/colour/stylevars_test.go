// Package colour provides tests for the style-variable export.
package colour

import (
	"strings"
	"testing"
)

func TestStyleVariables(t *testing.T) {
	result := &HarmonizedResult{
		ProcessedColours: map[string]string{
			"VIBRANT":      "#e8825f",
			"DARK_VIBRANT": "#45486b",
		},
		AccentHex: "#e8825f",
		AccentRGB: RGB{R: 0xe8, G: 0x82, B: 0x5f},
	}
	gradient := []RGB{
		{R: 10, G: 20, B: 30},
		{R: 40, G: 50, B: 60},
	}

	vars := StyleVariables(result, gradient)

	tests := []struct {
		key  string
		want string
	}{
		{"accent", "#e8825f"},
		{"accent-rgb", "232, 130, 95"},
		{"colour-vibrant", "#e8825f"},
		{"colour-dark-vibrant", "#45486b"},
		{"gradient-stop-0", "#0a141e"},
		{"gradient-stop-1", "#28323c"},
	}
	for _, tt := range tests {
		if got := vars[tt.key]; got != tt.want {
			t.Errorf("vars[%q] = %q, want %q", tt.key, got, tt.want)
		}
	}

	stops := vars["gradient-stops"]
	if !strings.Contains(stops, "#0a141e") || !strings.Contains(stops, "#28323c") {
		t.Errorf("gradient-stops = %q missing stop hexes", stops)
	}
}

func TestStyleVariablesNilResult(t *testing.T) {
	vars := StyleVariables(nil, nil)
	if len(vars) != 0 {
		t.Errorf("expected empty map, got %+v", vars)
	}
}
