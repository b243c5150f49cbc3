// Package music defines the externally supplied analysis signals that drive
// colour harmonization.
package music

import "strings"

// Emotion is a closed enumeration of emotions the analyser can detect.
type Emotion int

const (
	EmotionUnknown Emotion = iota
	EmotionHappy
	EmotionSad
	EmotionEnergetic
	EmotionCalm
	EmotionMelancholy
	EmotionEuphoric
	EmotionAggressive
	EmotionRomantic
	EmotionMysterious
)

var emotionNames = map[Emotion]string{
	EmotionUnknown:    "unknown",
	EmotionHappy:      "happy",
	EmotionSad:        "sad",
	EmotionEnergetic:  "energetic",
	EmotionCalm:       "calm",
	EmotionMelancholy: "melancholy",
	EmotionEuphoric:   "euphoric",
	EmotionAggressive: "aggressive",
	EmotionRomantic:   "romantic",
	EmotionMysterious: "mysterious",
}

// String returns the lowercase emotion name.
func (e Emotion) String() string {
	if name, ok := emotionNames[e]; ok {
		return name
	}
	return "unknown"
}

// ParseEmotion maps a free-form emotion string from an external analyser to
// the closed Emotion enumeration. Unrecognised strings map to EmotionUnknown.
func ParseEmotion(s string) Emotion {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "happy", "joyful", "upbeat":
		return EmotionHappy
	case "sad", "sorrowful":
		return EmotionSad
	case "energetic", "excited", "intense":
		return EmotionEnergetic
	case "calm", "peaceful", "relaxed":
		return EmotionCalm
	case "melancholy", "melancholic", "wistful":
		return EmotionMelancholy
	case "euphoric", "ecstatic", "triumphant":
		return EmotionEuphoric
	case "aggressive", "angry", "fierce":
		return EmotionAggressive
	case "romantic", "tender", "loving":
		return EmotionRomantic
	case "mysterious", "dark", "brooding":
		return EmotionMysterious
	default:
		return EmotionUnknown
	}
}

// EmotionalTemperature is the result of emotional analysis of the current
// track, produced by an external analyser and consumed read-only.
// Intensity is in [0, 1]; TemperatureKelvin is a correlated colour
// temperature in [1000, 20000].
type EmotionalTemperature struct {
	Primary           Emotion `json:"primary_emotion"`
	Secondary         Emotion `json:"secondary_emotion,omitempty"`
	Intensity         float64 `json:"intensity"`
	TemperatureKelvin float64 `json:"temperature_kelvin"`
	Preset            string  `json:"chosen_preset"`
	AccentHex         string  `json:"perceptual_accent_hex"`
}
