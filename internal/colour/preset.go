// Package colour provides enhancement preset resolution.
package colour

import (
	"github.com/jlowell/chromabeat/internal/music"
)

// Preset is a named bundle of blending parameters. All fields are
// multiplicative factors or thresholds and are never negative.
type Preset struct {
	Name             string  `json:"name"`
	ChromaBoost      float64 `json:"chroma_boost"`
	LightnessBoost   float64 `json:"lightness_boost"`
	VibrantThreshold float64 `json:"vibrant_threshold"`
	ShadowReduction  float64 `json:"shadow_reduction"`
}

// Named presets on a spectrum from subtle to cosmic.
// The exact values are tuned; their ordering along the spectrum is what
// downstream behaviour depends on.
var (
	// PresetSubtle is the most conservative preset and the lightweight fallback.
	PresetSubtle = Preset{
		Name:             "subtle",
		ChromaBoost:      1.05,
		LightnessBoost:   1.0,
		VibrantThreshold: 0.6,
		ShadowReduction:  0.95,
	}

	// PresetBalanced is the default preset for mid-energy material.
	PresetBalanced = Preset{
		Name:             "balanced",
		ChromaBoost:      1.15,
		LightnessBoost:   1.05,
		VibrantThreshold: 0.5,
		ShadowReduction:  0.85,
	}

	// PresetVibrant boosts chroma strongly while keeping lightness restrained,
	// for high-energy low-valence material.
	PresetVibrant = Preset{
		Name:             "vibrant",
		ChromaBoost:      1.3,
		LightnessBoost:   1.02,
		VibrantThreshold: 0.4,
		ShadowReduction:  0.75,
	}

	// PresetIntense sits between vibrant and cosmic.
	PresetIntense = Preset{
		Name:             "intense",
		ChromaBoost:      1.4,
		LightnessBoost:   1.1,
		VibrantThreshold: 0.35,
		ShadowReduction:  0.7,
	}

	// PresetCosmic is the maximal preset for high-energy high-valence material.
	PresetCosmic = Preset{
		Name:             "cosmic",
		ChromaBoost:      1.5,
		LightnessBoost:   1.18,
		VibrantThreshold: 0.3,
		ShadowReduction:  0.6,
	}
)

// presetsByName indexes the named presets for lookup by external
// recommendations (e.g. emotional temperature results).
var presetsByName = map[string]Preset{
	PresetSubtle.Name:   PresetSubtle,
	PresetBalanced.Name: PresetBalanced,
	PresetVibrant.Name:  PresetVibrant,
	PresetIntense.Name:  PresetIntense,
	PresetCosmic.Name:   PresetCosmic,
}

// PresetByName returns the named preset, if it exists.
func PresetByName(name string) (Preset, bool) {
	p, ok := presetsByName[name]
	return p, ok
}

// Energy/valence quadrant thresholds for base preset selection.
const (
	highEnergyThreshold  = 0.7
	highValenceThreshold = 0.6
	lowEnergyThreshold   = 0.35

	// emotionOverrideThreshold is the minimum emotional intensity before an
	// emotional-temperature preset recommendation overrides the quadrant choice.
	emotionOverrideThreshold = 0.4

	// genreConfidenceThreshold gates genre-driven preset adjustment.
	genreConfidenceThreshold = 0.5

	// genreNudgeLimit bounds how far a genre adjustment can move a preset
	// field in either direction.
	genreNudgeLimit = 0.3
)

// PresetOptions carries the caller-tunable knobs that influence preset
// resolution.
type PresetOptions struct {
	// GenreInfluence scales genre-driven adjustment, 0 (off) to 1 (full).
	GenreInfluence float64
	// EmotionInfluence scales how readily emotional recommendations take
	// precedence, 0 (never) to 1 (always above the intensity threshold).
	EmotionInfluence float64
	// PreferLightweight forces the most conservative preset regardless of
	// every other signal.
	PreferLightweight bool
}

// ResolvePreset chooses the enhancement preset for the current music state.
//
// The base preset comes from the energy/valence quadrant. An available
// emotional-temperature result with sufficient intensity overrides the
// quadrant choice with its own recommendation. A genre context with
// confidence above 0.5 then nudges the chosen preset's numeric fields
// proportionally to confidence and the genre influence knob; nudges are
// bounded multiplicative adjustments and never flip a parameter's sign.
// PreferLightweight is the one hard override and wins over everything.
func ResolvePreset(energy, valence float64, emo *music.EmotionalTemperature, genre *music.GenreContext, opts PresetOptions) Preset {
	if opts.PreferLightweight {
		return PresetSubtle
	}

	// 1. Base preset from the energy/valence quadrant.
	var preset Preset
	switch {
	case energy >= highEnergyThreshold && valence >= highValenceThreshold:
		preset = PresetCosmic
	case energy >= highEnergyThreshold:
		preset = PresetVibrant
	case energy < lowEnergyThreshold:
		preset = PresetSubtle
	default:
		preset = PresetBalanced
	}

	// 2. Emotional recommendation takes precedence when intense enough.
	if emo != nil && opts.EmotionInfluence > 0 && emo.Intensity*opts.EmotionInfluence >= emotionOverrideThreshold {
		if recommended, ok := PresetByName(emo.Preset); ok {
			preset = recommended
		}
	}

	// 3. Genre adjustment: bounded nudges on the chosen preset's fields.
	if genre != nil && opts.GenreInfluence > 0 && genre.Confidence > genreConfidenceThreshold {
		preset = adjustForGenre(preset, genre.Characteristics, genre.Confidence*opts.GenreInfluence)
	}

	return preset
}

// adjustForGenre nudges preset fields from genre characteristics.
// strength is confidence multiplied by the genre influence knob.
func adjustForGenre(p Preset, c music.Characteristics, strength float64) Preset {
	// Saturated genres push chroma up; muted genres pull it down.
	p.ChromaBoost *= nudge(c.Saturation, strength)
	// Harmonically complex genres promote more colours to "vibrant"
	// treatment by lowering the threshold.
	p.VibrantThreshold *= 2 - nudge(c.HarmonicComplexity, strength)
	// Organic genres keep shadows natural; heavily processed genres push
	// shadow presence harder.
	p.ShadowReduction *= nudge(c.Organicness, strength)
	p.ShadowReduction *= 2 - nudge(c.ArtificialProcessing, strength*0.8)
	return p
}

// nudge maps a characteristic in [0, 1] to a bounded multiplicative factor
// centred on 1. A characteristic of 0.5 is neutral; 0 and 1 reach the
// nudge limit in each direction at full strength.
func nudge(characteristic, strength float64) float64 {
	offset := (characteristic - 0.5) * 2 * genreNudgeLimit * strength
	return clamp(1+offset, 1-genreNudgeLimit, 1+genreNudgeLimit)
}
