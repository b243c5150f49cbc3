// Package colour provides gradient synthesis from harmonized anchor colours.
package colour

import (
	"fmt"
	"math"
)

// Anchor colours are ordered primary, secondary, accent, emotional,
// tertiary; the accent sits at index 2 when present. The fallback ramp
// carries its accent at index 1.
const (
	accentAnchorIndex   = 2
	fallbackAccentIndex = 1
)

// valenceLightnessRange is the maximum lightness perturbation, in percent,
// that valence gravity can apply to a gradient stop.
const valenceLightnessRange = 20.0

// fallbackGradientAnchors is the fixed neutral-plus-accent ramp used when
// fewer than two usable anchors are supplied.
var fallbackGradientAnchors = []RGB{
	mustHex("#1e1e2e"),
	mustHex(FallbackAccentHex),
	mustHex(FallbackNeutralHex),
}

// GradientModulation perturbs synthesized gradient stops for animated
// consumers.
type GradientModulation struct {
	// HueShift rotates hue progressively across the gradient, in degrees
	// at the final stop.
	HueShift float64 `json:"hue_shift"`
	// ValenceGravity skews stop lightness along a sine curve over the
	// gradient's length. Range [-1, 1].
	ValenceGravity float64 `json:"valence_gravity"`
}

// SynthesizeGradient generates stopCount perceptually interpolated colour
// stops from the given anchors.
//
// Anchors are treated as control points of a piecewise-linear path; each
// stop position maps to a fractional index into the anchors and the two
// bracketing anchors are interpolated in OKLab space. Modulation, when
// given, then rotates hue proportionally to position and perturbs
// lightness sinusoidally by the valence gravity signal.
//
// Pure function of its inputs: repeated calls with identical arguments
// produce identical output. Fewer than two anchors fall back to a fixed
// neutral-plus-accent ramp; a stop count below one is a structural error.
func SynthesizeGradient(anchors []RGB, stopCount int, mod *GradientModulation) ([]RGB, error) {
	if stopCount < 1 {
		return nil, fmt.Errorf("gradient stop count must be at least 1, got %d", stopCount)
	}
	accentIdx := accentAnchorIndex
	if len(anchors) < 2 {
		anchors = fallbackGradientAnchors
		accentIdx = fallbackAccentIndex
	}

	if stopCount == 1 {
		if accentIdx > len(anchors)-1 {
			accentIdx = len(anchors) - 1
		}
		return []RGB{anchors[accentIdx]}, nil
	}

	labs := make([]OKLab, len(anchors))
	for i, a := range anchors {
		labs[i] = RGBToOKLab(a)
	}

	stops := make([]RGB, stopCount)
	for i := 0; i < stopCount; i++ {
		p := float64(i) / float64(stopCount-1)

		// Map position to a fractional anchor index.
		f := p * float64(len(anchors)-1)
		idx := int(f)
		if idx > len(anchors)-2 {
			idx = len(anchors) - 2
		}
		t := f - float64(idx)

		lab := lerpOKLab(labs[idx], labs[idx+1], 1-t)
		rgb := OKLabToRGB(lab)

		if mod != nil && (mod.HueShift != 0 || mod.ValenceGravity != 0) {
			hsl := RGBToHSL(rgb)
			hsl.H += mod.HueShift * p
			hsl.L = clamp(hsl.L+valenceLightnessRange*mod.ValenceGravity*math.Sin(math.Pi*p), 0, 100)
			rgb = HSLToRGB(hsl)
		}

		stops[i] = rgb
	}

	return stops, nil
}

// Gradient synthesizes a gradient from a harmonization result under the
// given music context.
//
// Anchors are assembled in primary/secondary/accent/emotional/tertiary
// order from the result's processed roles, the accent output and, when
// present, the emotional accent hex. With spectral adaptation enabled the
// music context drives the modulation: energy rotates hue and valence
// skews lightness around its midpoint.
func (h *Harmonizer) Gradient(result *HarmonizedResult, stopCount int, ctx Context) ([]RGB, error) {
	if result == nil {
		return SynthesizeGradient(nil, stopCount, nil)
	}

	var anchors []RGB
	appendRole := func(role string) {
		if hex, ok := result.ProcessedColours[role]; ok {
			if rgb, err := ParseHex(hex); err == nil {
				anchors = append(anchors, rgb)
			}
		}
	}

	appendRole("VIBRANT")   // primary
	appendRole("PROMINENT") // secondary
	anchors = append(anchors, result.AccentRGB)
	if ctx.Emotion != nil && ctx.Emotion.AccentHex != "" {
		if rgb, err := ParseHex(ctx.Emotion.AccentHex); err == nil {
			anchors = append(anchors, rgb)
		}
	}
	appendRole("DARK_VIBRANT") // tertiary

	var mod *GradientModulation
	if h.cfg.SpectralAdaptation {
		mod = &GradientModulation{
			HueShift:       clamp(ctx.Music.Energy, 0, 1) * 30,
			ValenceGravity: clamp(ctx.Music.Valence, 0, 1)*2 - 1,
		}
	}

	return SynthesizeGradient(anchors, stopCount, mod)
}
