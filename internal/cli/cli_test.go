// Package cli provides tests for argument parsing helpers.
package cli

import (
	"testing"

	"github.com/jlowell/chromabeat/internal/colour"
)

func TestParseRoleArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    colour.RawColourSet
		wantErr bool
	}{
		{
			name: "single pair",
			args: []string{"VIBRANT=#e07a5f"},
			want: colour.RawColourSet{"VIBRANT": "#e07a5f"},
		},
		{
			name: "role is uppercased",
			args: []string{"dark_vibrant=#3d405b"},
			want: colour.RawColourSet{"DARK_VIBRANT": "#3d405b"},
		},
		{
			name: "multiple pairs",
			args: []string{"VIBRANT=#e07a5f", "MUTED=#a6adc8"},
			want: colour.RawColourSet{"VIBRANT": "#e07a5f", "MUTED": "#a6adc8"},
		},
		{
			name:    "missing separator",
			args:    []string{"VIBRANT"},
			wantErr: true,
		},
		{
			name:    "empty role",
			args:    []string{"=#e07a5f"},
			wantErr: true,
		},
		{
			name:    "empty value",
			args:    []string{"VIBRANT="},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRoleArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d roles, want %d", len(got), len(tt.want))
			}
			for role, hex := range tt.want {
				if got[role] != hex {
					t.Errorf("got[%q] = %q, want %q", role, got[role], hex)
				}
			}
		})
	}
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		input   string
		want    colour.BlendProfile
		wantErr bool
	}{
		{"conservative", colour.ProfileConservative, false},
		{"default", colour.ProfileDefault, false},
		{"", colour.ProfileDefault, false},
		{"maximal", colour.ProfileMaximal, false},
		{"extreme", colour.ProfileDefault, true},
	}

	for _, tt := range tests {
		got, err := parseProfile(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseProfile(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseProfile(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseProfile(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
