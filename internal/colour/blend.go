// Package colour provides perceptual colour blending in OKLab space.
package colour

// DefaultMinSaturation is the default saturation floor applied to blended
// colours, in percent.
const DefaultMinSaturation = 30.0

// Lightness is capped below pure white so boosted colours never wash out.
const maxBlendLightness = 95.0

// BlendOptions configures a perceptual blend.
type BlendOptions struct {
	// Preset supplies the chroma and lightness boost factors.
	Preset Preset
	// MinSaturation is the saturation floor in percent [0, 100].
	// Zero means DefaultMinSaturation.
	MinSaturation float64
	// SafeMode skips the lightness boost, for callers that must preserve
	// the source material's brightness envelope.
	SafeMode bool
}

// Blend interpolates between an extracted colour and a palette accent in
// OKLab space, then applies the preset's saturation and lightness boosts.
//
// ratio is the weight on the extracted colour: 1 keeps the extracted side,
// 0 moves fully to the accent side. It is clamped to [0, 1] before use.
// Interpolating in OKLab rather than RGB or HSL avoids the muddy,
// desaturated midpoints naive RGB interpolation produces between hues.
//
// Pure function: identical inputs always produce identical output.
func Blend(extracted, accent RGB, ratio float64, opts BlendOptions) RGB {
	ratio = clamp(ratio, 0, 1)

	// Perceptual interpolation.
	mixed := lerpOKLab(RGBToOKLab(extracted), RGBToOKLab(accent), ratio)
	hsl := RGBToHSL(OKLabToRGB(mixed))

	// Saturation floor, then boosts.
	floor := opts.MinSaturation
	if floor <= 0 {
		floor = DefaultMinSaturation
	}
	if hsl.S < floor {
		hsl.S = floor
	}

	chromaBoost := opts.Preset.ChromaBoost
	if chromaBoost <= 0 {
		chromaBoost = 1
	}
	hsl.S = clamp(hsl.S*chromaBoost, 0, 100)
	// A genre-nudged boost can land below 1; the floor holds either way.
	if hsl.S < floor {
		hsl.S = floor
	}

	if !opts.SafeMode {
		lightnessBoost := opts.Preset.LightnessBoost
		if lightnessBoost <= 0 {
			lightnessBoost = 1
		}
		hsl.L = hsl.L * lightnessBoost
	}
	// Never force pure white.
	hsl.L = clamp(hsl.L, 0, maxBlendLightness)

	return HSLToRGB(hsl)
}
