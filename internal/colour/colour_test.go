// Package colour provides tests for colour parsing and formatting.
package colour

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{
			name:  "six digit with hash",
			input: "#1a2b3c",
			want:  RGB{R: 0x1a, G: 0x2b, B: 0x3c},
		},
		{
			name:  "six digit without hash",
			input: "e07a5f",
			want:  RGB{R: 0xe0, G: 0x7a, B: 0x5f},
		},
		{
			name:  "uppercase",
			input: "#E07A5F",
			want:  RGB{R: 0xe0, G: 0x7a, B: 0x5f},
		},
		{
			name:  "three digit shorthand",
			input: "#abc",
			want:  RGB{R: 0xaa, G: 0xbb, B: 0xcc},
		},
		{
			name:  "three digit without hash",
			input: "f00",
			want:  RGB{R: 255, G: 0, B: 0},
		},
		{
			name:  "surrounding whitespace",
			input: "  #ffffff ",
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "wrong length",
			input:   "#abcd",
			wantErr: true,
		},
		{
			name:    "non-hex characters",
			input:   "#12345g",
			wantErr: true,
		},
		{
			name:    "not a colour at all",
			input:   "notacolour",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error, got %+v", tt.input, got)
				}
				var formatErr *InvalidFormatError
				if !errors.As(err, &formatErr) {
					t.Errorf("ParseHex(%q) error = %v, want *InvalidFormatError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{
			name: "red",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: "#ff0000",
		},
		{
			name: "mixed",
			rgb:  RGB{R: 0x1a, G: 0x2b, B: 0x3c},
			want: "#1a2b3c",
		},
		{
			name: "black",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: "#000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	hexes := []string{"#000000", "#ffffff", "#e07a5f", "#3d405b", "#cba6f7"}
	for _, hex := range hexes {
		rgb, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q) unexpected error: %v", hex, err)
		}
		if got := rgb.Hex(); got != hex {
			t.Errorf("round trip of %q = %q", hex, got)
		}
	}
}

func TestRGBString(t *testing.T) {
	got := RGB{R: 1, G: 2, B: 3}.String()
	if got != "rgb(1, 2, 3)" {
		t.Errorf("String() = %q, want %q", got, "rgb(1, 2, 3)")
	}
}
