// Package colour provides tests for ANSI terminal previews.
package colour

import (
	"strings"
	"testing"
)

func TestColourPreview(t *testing.T) {
	c := RGB{R: 203, G: 166, B: 247}

	got := ColourPreview(c, 4)
	if !strings.Contains(got, "48;2;203;166;247") {
		t.Errorf("preview %q missing background escape for %+v", got, c)
	}
	if !strings.Contains(got, "    ") {
		t.Errorf("preview %q missing 4-space block", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Errorf("preview %q not reset-terminated", got)
	}

	// Non-positive width falls back to the default block width.
	if got := ColourPreview(c, 0); !strings.Contains(got, strings.Repeat(" ", defaultWidth)) {
		t.Errorf("zero width preview %q missing default-width block", got)
	}
}

func TestColourPreviewWithText(t *testing.T) {
	tests := []struct {
		name   string
		colour RGB
		text   string
		width  int
		wantFg string
		want   string
	}{
		{"dark background gets light text", RGB{R: 30, G: 30, B: 46}, "#1e1e2e", 9, "38;2;255;255;255", "#1e1e2e  "},
		{"light background gets dark text", RGB{R: 205, G: 214, B: 244}, "#cdd6f4", 9, "38;2;0;0;0", "#cdd6f4  "},
		{"long text truncated to width", RGB{R: 30, G: 30, B: 46}, "#1e1e2e", 4, "38;2;255;255;255", "#1e1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColourPreviewWithText(tt.colour, tt.text, tt.width)
			if !strings.Contains(got, tt.wantFg) {
				t.Errorf("preview %q missing foreground escape %q", got, tt.wantFg)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("preview %q missing padded text %q", got, tt.want)
			}
			if !strings.HasSuffix(got, ansiReset) {
				t.Errorf("preview %q not reset-terminated", got)
			}
		})
	}
}
