// Package music defines the externally supplied analysis signals that drive
// colour harmonization: per-tick music context, emotional temperature results
// and genre classification.
package music

import "strings"

// Context carries the per-tick music analysis signals.
// Energy and Valence are normalised to [0, 1]; Tempo is in BPM and may be
// zero when the analyser has not locked on yet.
type Context struct {
	Energy  float64 `json:"energy"`
	Valence float64 `json:"valence"`
	Tempo   float64 `json:"tempo,omitempty"`
	Genre   Genre   `json:"genre,omitempty"`
}

// Genre is a closed enumeration of music genres the analyser can report.
// GenreUnknown covers anything the classifier could not place.
type Genre int

const (
	GenreUnknown Genre = iota
	GenreRock
	GenrePop
	GenreJazz
	GenreClassical
	GenreElectronic
	GenreHipHop
	GenreMetal
	GenreAmbient
	GenreFolk
	GenreBlues
)

var genreNames = map[Genre]string{
	GenreUnknown:    "unknown",
	GenreRock:       "rock",
	GenrePop:        "pop",
	GenreJazz:       "jazz",
	GenreClassical:  "classical",
	GenreElectronic: "electronic",
	GenreHipHop:     "hiphop",
	GenreMetal:      "metal",
	GenreAmbient:    "ambient",
	GenreFolk:       "folk",
	GenreBlues:      "blues",
}

// String returns the lowercase genre name.
func (g Genre) String() string {
	if name, ok := genreNames[g]; ok {
		return name
	}
	return "unknown"
}

// ParseGenre maps a free-form genre string from an external classifier to the
// closed Genre enumeration. Unrecognised strings map to GenreUnknown.
func ParseGenre(s string) Genre {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock", "indie", "punk", "alternative":
		return GenreRock
	case "pop", "synthpop", "dance":
		return GenrePop
	case "jazz", "swing", "bossa nova":
		return GenreJazz
	case "classical", "orchestral", "opera":
		return GenreClassical
	case "electronic", "edm", "techno", "house", "trance":
		return GenreElectronic
	case "hiphop", "hip-hop", "rap", "trap":
		return GenreHipHop
	case "metal", "hardcore", "doom":
		return GenreMetal
	case "ambient", "drone", "new age":
		return GenreAmbient
	case "folk", "acoustic", "country", "singer-songwriter":
		return GenreFolk
	case "blues", "soul", "r&b", "rnb":
		return GenreBlues
	default:
		return GenreUnknown
	}
}

// Characteristics describes the visual character of a genre.
// All fields are normalised to [0, 1].
type Characteristics struct {
	Saturation           float64 `json:"saturation"`            // How saturated the genre's palette tends to be
	HarmonicComplexity   float64 `json:"harmonic_complexity"`   // Harmonic density of the music
	EmotionalRange       float64 `json:"emotional_range"`       // Breadth of moods the genre spans
	Organicness          float64 `json:"organicness"`           // Acoustic/organic vs synthetic character
	ArtificialProcessing float64 `json:"artificial_processing"` // Studio processing and synthetic contrast
}

// genreCharacteristics holds empirically tuned per-genre visual characteristics.
// The relative ordering between genres matters more than the exact values.
var genreCharacteristics = map[Genre]Characteristics{
	GenreUnknown:    {Saturation: 0.5, HarmonicComplexity: 0.5, EmotionalRange: 0.5, Organicness: 0.5, ArtificialProcessing: 0.5},
	GenreRock:       {Saturation: 0.65, HarmonicComplexity: 0.55, EmotionalRange: 0.7, Organicness: 0.7, ArtificialProcessing: 0.4},
	GenrePop:        {Saturation: 0.8, HarmonicComplexity: 0.4, EmotionalRange: 0.6, Organicness: 0.35, ArtificialProcessing: 0.7},
	GenreJazz:       {Saturation: 0.5, HarmonicComplexity: 0.9, EmotionalRange: 0.75, Organicness: 0.85, ArtificialProcessing: 0.15},
	GenreClassical:  {Saturation: 0.4, HarmonicComplexity: 0.85, EmotionalRange: 0.9, Organicness: 0.95, ArtificialProcessing: 0.05},
	GenreElectronic: {Saturation: 0.9, HarmonicComplexity: 0.5, EmotionalRange: 0.55, Organicness: 0.1, ArtificialProcessing: 0.95},
	GenreHipHop:     {Saturation: 0.75, HarmonicComplexity: 0.45, EmotionalRange: 0.6, Organicness: 0.3, ArtificialProcessing: 0.8},
	GenreMetal:      {Saturation: 0.55, HarmonicComplexity: 0.6, EmotionalRange: 0.65, Organicness: 0.55, ArtificialProcessing: 0.6},
	GenreAmbient:    {Saturation: 0.35, HarmonicComplexity: 0.4, EmotionalRange: 0.5, Organicness: 0.45, ArtificialProcessing: 0.55},
	GenreFolk:       {Saturation: 0.45, HarmonicComplexity: 0.5, EmotionalRange: 0.65, Organicness: 0.95, ArtificialProcessing: 0.05},
	GenreBlues:      {Saturation: 0.5, HarmonicComplexity: 0.6, EmotionalRange: 0.8, Organicness: 0.85, ArtificialProcessing: 0.15},
}

// CharacteristicsFor returns the visual characteristics for a genre.
// Unknown genres map to neutral midpoint characteristics.
func CharacteristicsFor(g Genre) Characteristics {
	if c, ok := genreCharacteristics[g]; ok {
		return c
	}
	return genreCharacteristics[GenreUnknown]
}

// GenreContext is a genre classification with confidence, as produced by an
// external analyser. Confidence is in [0, 1].
type GenreContext struct {
	Genre           Genre           `json:"genre"`
	Confidence      float64         `json:"confidence"`
	Characteristics Characteristics `json:"characteristics"`
}

// NewGenreContext builds a GenreContext with the standard characteristics
// for the given genre.
func NewGenreContext(g Genre, confidence float64) GenreContext {
	return GenreContext{
		Genre:           g,
		Confidence:      confidence,
		Characteristics: CharacteristicsFor(g),
	}
}
