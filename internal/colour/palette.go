// Package colour provides the curated base palette the engine harmonizes
// extracted colours against.
package colour

import (
	"fmt"
)

// Documented fallback colours used when input or palette data is unusable.
const (
	// FallbackNeutralHex is returned as the accent when no raw colour parses.
	FallbackNeutralHex = "#cdd6f4"
	// FallbackAccentHex is used when the active palette has no usable accent.
	FallbackAccentHex = "#cba6f7"
	// FallbackAccentName labels the fallback accent in selector results.
	FallbackAccentName = "fallback"
)

// accentPriority is the fixed order accents are considered in.
// Earlier entries win score ties, keeping selection deterministic.
var accentPriority = []string{
	"mauve",
	"pink",
	"red",
	"maroon",
	"peach",
	"yellow",
	"green",
	"teal",
	"sky",
	"sapphire",
	"blue",
	"lavender",
	"flamingo",
	"rosewater",
}

// neutralOrder lists neutral shade names from lightest to darkest.
var neutralOrder = []string{"text", "subtext", "overlay", "surface", "base", "mantle", "crust"}

// BasePalette is a curated palette the engine harmonizes towards: a set of
// named accent hues plus a ramp of neutral surface shades. Palettes are
// replaced wholesale, never mutated in place, so readers never observe a
// half-updated palette.
type BasePalette struct {
	Name     string            `json:"name"`
	Accents  map[string]string `json:"accents"`
	Neutrals map[string]string `json:"neutrals"`
}

// DefaultPalette returns the built-in dark base palette.
func DefaultPalette() *BasePalette {
	return &BasePalette{
		Name: "mocha",
		Accents: map[string]string{
			"rosewater": "#f5e0dc",
			"flamingo":  "#f2cdcd",
			"pink":      "#f5c2e7",
			"mauve":     "#cba6f7",
			"red":       "#f38ba8",
			"maroon":    "#eba0ac",
			"peach":     "#fab387",
			"yellow":    "#f9e2af",
			"green":     "#a6e3a1",
			"teal":      "#94e2d5",
			"sky":       "#89dceb",
			"sapphire":  "#74c7ec",
			"blue":      "#89b4fa",
			"lavender":  "#b4befe",
		},
		Neutrals: map[string]string{
			"text":    "#cdd6f4",
			"subtext": "#a6adc8",
			"overlay": "#6c7086",
			"surface": "#313244",
			"base":    "#1e1e2e",
			"mantle":  "#181825",
			"crust":   "#11111b",
		},
	}
}

// Validate checks the palette for misconfiguration: missing accents or
// neutrals, or entries that fail to parse as hex colours. Returns an error
// describing the first problem found, or nil if the palette is usable.
func (p *BasePalette) Validate() error {
	if p == nil {
		return fmt.Errorf("palette is nil")
	}
	if len(p.Accents) == 0 {
		return fmt.Errorf("palette %q has no accents", p.Name)
	}
	if len(p.Neutrals) == 0 {
		return fmt.Errorf("palette %q has no neutrals", p.Name)
	}
	for _, name := range p.AccentNames() {
		if _, err := ParseHex(p.Accents[name]); err != nil {
			return fmt.Errorf("palette %q accent %q: %w", p.Name, name, err)
		}
	}
	for _, name := range p.NeutralNames() {
		if _, err := ParseHex(p.Neutrals[name]); err != nil {
			return fmt.Errorf("palette %q neutral %q: %w", p.Name, name, err)
		}
	}
	return nil
}

// clone returns a deep copy of the palette, used for copy-on-replace swaps.
func (p *BasePalette) clone() *BasePalette {
	if p == nil {
		return nil
	}
	cp := &BasePalette{
		Name:     p.Name,
		Accents:  make(map[string]string, len(p.Accents)),
		Neutrals: make(map[string]string, len(p.Neutrals)),
	}
	for k, v := range p.Accents {
		cp.Accents[k] = v
	}
	for k, v := range p.Neutrals {
		cp.Neutrals[k] = v
	}
	return cp
}

// AccentNames returns accent names in the fixed priority order, with any
// palette-specific accents outside the standard set appended alphabetically.
func (p *BasePalette) AccentNames() []string {
	names := make([]string, 0, len(p.Accents))
	seen := make(map[string]bool, len(p.Accents))
	for _, name := range accentPriority {
		if _, ok := p.Accents[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	var extra []string
	for name := range p.Accents {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sortStrings(extra)
	return append(names, extra...)
}

// NeutralNames returns neutral shade names in lightest-to-darkest order,
// with any non-standard names appended alphabetically.
func (p *BasePalette) NeutralNames() []string {
	names := make([]string, 0, len(p.Neutrals))
	seen := make(map[string]bool, len(p.Neutrals))
	for _, name := range neutralOrder {
		if _, ok := p.Neutrals[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	var extra []string
	for name := range p.Neutrals {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sortStrings(extra)
	return append(names, extra...)
}

// sortStrings sorts a small string slice in place.
func sortStrings(s []string) {
	for i := 0; i < len(s)-1; i++ {
		for j := 0; j < len(s)-i-1; j++ {
			if s[j] > s[j+1] {
				s[j], s[j+1] = s[j+1], s[j]
			}
		}
	}
}
