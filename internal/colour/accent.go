// Package colour provides accent colour selection logic.
package colour

// Accent scoring weights.
const (
	// accentSaturationWeight is how much an accent's own saturation
	// contributes to its score relative to hue proximity.
	accentSaturationWeight = 0.3
)

// AccentMatch is the accent chosen for an extracted colour.
type AccentMatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
	RGB  RGB    `json:"rgb"`
}

// FindBestAccent picks the palette accent most harmonious with the extracted
// colour.
//
// Each named accent is scored by hue proximity to the extracted colour plus
// a saturation bonus: (1 - hueDistance/180) + saturation*0.3. Hue distance
// is circular (shortest path around the wheel). Accents are considered in a
// fixed priority order, and the first accent encountered at the best score
// wins, so selection is deterministic for a given colour and palette.
//
// If no palette accent parses, the built-in fallback accent is returned
// rather than failing the pipeline.
func FindBestAccent(extracted RGB, palette *BasePalette) AccentMatch {
	fallback := AccentMatch{
		Name: FallbackAccentName,
		Hex:  FallbackAccentHex,
		RGB:  mustHex(FallbackAccentHex),
	}
	if palette == nil || len(palette.Accents) == 0 {
		return fallback
	}

	extractedHSL := RGBToHSL(extracted)

	best := fallback
	bestScore := -1.0
	found := false

	for _, name := range palette.AccentNames() {
		hex := palette.Accents[name]
		accentRGB, err := ParseHex(hex)
		if err != nil {
			// Unusable entry, skip it. Validate() reports these.
			continue
		}
		accentHSL := RGBToHSL(accentRGB)

		hueDist := HueDistance(extractedHSL.H, accentHSL.H)
		score := (1.0 - hueDist/180.0) + (accentHSL.S/100.0)*accentSaturationWeight

		// Strict greater-than keeps the first accent in priority order on ties.
		if score > bestScore {
			bestScore = score
			best = AccentMatch{Name: name, Hex: hex, RGB: accentRGB}
			found = true
		}
	}

	if !found {
		return fallback
	}
	return best
}
