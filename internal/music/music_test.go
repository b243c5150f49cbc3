// Package music provides tests for the analysis signal types.
package music

import "testing"

func TestParseGenre(t *testing.T) {
	tests := []struct {
		input string
		want  Genre
	}{
		{"rock", GenreRock},
		{"Rock", GenreRock},
		{" EDM ", GenreElectronic},
		{"hip-hop", GenreHipHop},
		{"rap", GenreHipHop},
		{"bossa nova", GenreJazz},
		{"r&b", GenreBlues},
		{"polka", GenreUnknown},
		{"", GenreUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseGenre(tt.input); got != tt.want {
				t.Errorf("ParseGenre(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseEmotion(t *testing.T) {
	tests := []struct {
		input string
		want  Emotion
	}{
		{"happy", EmotionHappy},
		{"JOYFUL", EmotionHappy},
		{"melancholic", EmotionMelancholy},
		{"brooding", EmotionMysterious},
		{"confused", EmotionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseEmotion(tt.input); got != tt.want {
				t.Errorf("ParseEmotion(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenreStringRoundTrip(t *testing.T) {
	genres := []Genre{
		GenreUnknown, GenreRock, GenrePop, GenreJazz, GenreClassical,
		GenreElectronic, GenreHipHop, GenreMetal, GenreAmbient, GenreFolk, GenreBlues,
	}
	for _, g := range genres {
		if got := ParseGenre(g.String()); got != g {
			t.Errorf("ParseGenre(%q) = %v, want %v", g.String(), got, g)
		}
	}
}

// TestCharacteristicsInRange verifies every genre's characteristics are
// normalised to [0, 1].
func TestCharacteristicsInRange(t *testing.T) {
	for g, c := range genreCharacteristics {
		fields := map[string]float64{
			"saturation":            c.Saturation,
			"harmonic_complexity":   c.HarmonicComplexity,
			"emotional_range":       c.EmotionalRange,
			"organicness":           c.Organicness,
			"artificial_processing": c.ArtificialProcessing,
		}
		for name, v := range fields {
			if v < 0 || v > 1 {
				t.Errorf("%s %s = %v out of range", g, name, v)
			}
		}
	}
}

// TestCharacteristicsOrdering spot-checks the relative weighting the colour
// engine depends on: electronic is more saturated and synthetic than
// classical, which is more organic.
func TestCharacteristicsOrdering(t *testing.T) {
	electronic := CharacteristicsFor(GenreElectronic)
	classical := CharacteristicsFor(GenreClassical)

	if electronic.Saturation <= classical.Saturation {
		t.Error("electronic should be more saturated than classical")
	}
	if electronic.Organicness >= classical.Organicness {
		t.Error("classical should be more organic than electronic")
	}
	if classical.HarmonicComplexity <= electronic.HarmonicComplexity {
		t.Error("classical should be more harmonically complex than electronic")
	}
}

func TestCharacteristicsForUnknown(t *testing.T) {
	got := CharacteristicsFor(Genre(999))
	if got != genreCharacteristics[GenreUnknown] {
		t.Errorf("unknown genre characteristics = %+v", got)
	}
}

func TestNewGenreContext(t *testing.T) {
	ctx := NewGenreContext(GenreJazz, 0.8)
	if ctx.Genre != GenreJazz || ctx.Confidence != 0.8 {
		t.Errorf("unexpected context: %+v", ctx)
	}
	if ctx.Characteristics != CharacteristicsFor(GenreJazz) {
		t.Errorf("characteristics not populated: %+v", ctx.Characteristics)
	}
}
