// Package colour provides tests for perceptual blending.
package colour

import (
	"testing"

	"github.com/jlowell/chromabeat/internal/music"
)

// neutralBlendOpts applies no boost and a negligible saturation floor so
// boundary behaviour can be observed directly.
func neutralBlendOpts() BlendOptions {
	return BlendOptions{
		Preset:        Preset{Name: "identity", ChromaBoost: 1, LightnessBoost: 1},
		MinSaturation: 0.001,
	}
}

func TestBlendIdempotent(t *testing.T) {
	extracted := mustHex("#e07a5f")
	accent := mustHex("#cba6f7")
	opts := BlendOptions{Preset: PresetCosmic, MinSaturation: 30}

	first := Blend(extracted, accent, 0.6, opts)
	for i := 0; i < 20; i++ {
		if got := Blend(extracted, accent, 0.6, opts); got != first {
			t.Fatalf("call %d = %+v, first call = %+v", i, got, first)
		}
	}
}

func TestBlendBoundaries(t *testing.T) {
	extracted := mustHex("#e07a5f")
	accent := mustHex("#89b4fa")
	opts := neutralBlendOpts()

	// ratio=1 stays on the extracted side; ratio=0 moves fully to the
	// accent side. Conversion quantisation allows a few counts of drift.
	tests := []struct {
		name  string
		ratio float64
		want  RGB
	}{
		{"full extracted", 1, extracted},
		{"full accent", 0, accent},
		{"ratio above range clamps to extracted", 1.7, extracted},
		{"ratio below range clamps to accent", -0.4, accent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Blend(extracted, accent, tt.ratio, opts)
			if absDiff(got.R, tt.want.R) > 3 || absDiff(got.G, tt.want.G) > 3 || absDiff(got.B, tt.want.B) > 3 {
				t.Errorf("Blend ratio %v = %+v, want ~%+v", tt.ratio, got, tt.want)
			}
		})
	}
}

// TestBlendMidpointNotMuddy verifies the point of OKLab interpolation: the
// midpoint between two saturated hues keeps a reasonable saturation rather
// than collapsing towards grey.
func TestBlendMidpointNotMuddy(t *testing.T) {
	extracted := mustHex("#f38ba8")
	accent := mustHex("#89b4fa")

	got := Blend(extracted, accent, 0.5, neutralBlendOpts())
	hsl := RGBToHSL(got)
	if hsl.S < 20 {
		t.Errorf("midpoint saturation %.1f%%, expected a non-muddy midpoint", hsl.S)
	}
}

func TestBlendSaturationFloor(t *testing.T) {
	// A grey extracted colour and a grey-ish accent would land well below
	// the floor without enforcement.
	extracted := RGB{R: 120, G: 120, B: 120}
	accent := RGB{R: 140, G: 140, B: 145}

	opts := BlendOptions{
		Preset:        Preset{Name: "identity", ChromaBoost: 1, LightnessBoost: 1},
		MinSaturation: 35,
	}

	for _, ratio := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := Blend(extracted, accent, ratio, opts)
		hsl := RGBToHSL(got)
		// Allow under one percentage point of quantisation drift.
		if hsl.S < opts.MinSaturation-1 {
			t.Errorf("ratio %v: saturation %.2f%% below floor %v%%", ratio, hsl.S, opts.MinSaturation)
		}
	}
}

// TestBlendSaturationFloorSubUnityBoost covers the case where a genre nudge
// pulls ChromaBoost below 1: the boost must not push a floored colour back
// under the floor.
func TestBlendSaturationFloorSubUnityBoost(t *testing.T) {
	// Low energy over a confidently muted genre resolves to a subtle
	// preset whose nudged ChromaBoost lands below 1.
	genre := music.NewGenreContext(music.GenreAmbient, 0.95)
	preset := ResolvePreset(0.2, 0.5, nil, &genre, PresetOptions{GenreInfluence: 1})
	if preset.ChromaBoost >= 1 {
		t.Fatalf("ChromaBoost = %.4f, expected a sub-unity nudged boost", preset.ChromaBoost)
	}

	extracted := RGB{R: 120, G: 120, B: 120}
	accent := RGB{R: 140, G: 140, B: 145}
	opts := BlendOptions{Preset: preset, MinSaturation: 30}

	for _, ratio := range []float64{0, 0.5, 1} {
		got := Blend(extracted, accent, ratio, opts)
		hsl := RGBToHSL(got)
		if hsl.S < opts.MinSaturation-1 {
			t.Errorf("ratio %v: saturation %.2f%% below floor %v%%", ratio, hsl.S, opts.MinSaturation)
		}
	}
}

func TestBlendLightnessCap(t *testing.T) {
	// Near-white input with a strong lightness boost must not reach pure white.
	extracted := RGB{R: 250, G: 250, B: 240}
	accent := RGB{R: 255, G: 255, B: 250}

	got := Blend(extracted, accent, 0.5, BlendOptions{
		Preset:        Preset{Name: "hot", ChromaBoost: 1.5, LightnessBoost: 2.0},
		MinSaturation: 10,
	})

	if got == (RGB{R: 255, G: 255, B: 255}) {
		t.Error("blend produced pure white despite the lightness cap")
	}
}

func TestBlendSafeModeSkipsLightnessBoost(t *testing.T) {
	extracted := mustHex("#e07a5f")
	accent := mustHex("#cba6f7")
	preset := Preset{Name: "boosted", ChromaBoost: 1, LightnessBoost: 1.3}

	boosted := Blend(extracted, accent, 0.5, BlendOptions{Preset: preset, MinSaturation: 1})
	safe := Blend(extracted, accent, 0.5, BlendOptions{Preset: preset, MinSaturation: 1, SafeMode: true})

	lBoosted := RGBToHSL(boosted).L
	lSafe := RGBToHSL(safe).L
	if lSafe >= lBoosted {
		t.Errorf("safe mode lightness %.2f should be below boosted %.2f", lSafe, lBoosted)
	}
}
