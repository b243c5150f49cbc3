// Package colour provides the harmonization orchestrator.
package colour

import (
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jlowell/chromabeat/internal/music"
)

// RawColourSet maps semantic role names (e.g. "VIBRANT", "DARK_VIBRANT") to
// hex colour strings, as produced by an external colour-extraction
// collaborator. Absent roles are missing, not defaulted.
type RawColourSet map[string]string

// rolePriority is the fixed order roles are processed in. Roles outside
// this list are processed afterwards in name order.
var rolePriority = []string{
	"VIBRANT",
	"PROMINENT",
	"DARK_VIBRANT",
	"LIGHT_VIBRANT",
	"MUTED",
	"DARK_MUTED",
	"LIGHT_MUTED",
	"DOMINANT",
}

// accentRolePriority is the order roles are considered in when choosing the
// single accent output for downstream consumers.
var accentRolePriority = []string{
	"VIBRANT",
	"PROMINENT",
	"LIGHT_VIBRANT",
	"DARK_VIBRANT",
	"DOMINANT",
	"MUTED",
}

// BlendProfile selects the base blend ratio before signal modulation.
type BlendProfile int

const (
	// ProfileDefault balances extracted colour and palette accent.
	ProfileDefault BlendProfile = iota
	// ProfileConservative stays close to the extracted colour.
	ProfileConservative
	// ProfileMaximal pulls strongly towards the palette accent.
	ProfileMaximal
)

// Base blend ratios per profile: the weight kept on the extracted colour.
const (
	defaultBaseRatio      = 0.65
	conservativeBaseRatio = 0.85
	maximalBaseRatio      = 0.45

	// emotionRatioPull and musicRatioPull scale how far emotional intensity
	// and raw music energy pull the blend towards the palette accent.
	emotionRatioPull = 0.35
	musicRatioPull   = 0.25
)

// Config carries the harmonizer's tunable knobs.
type Config struct {
	// Intensity is the user-controlled global intensity scalar [0, 1].
	Intensity float64
	// GenreInfluence scales genre-driven preset adjustment [0, 1].
	GenreInfluence float64
	// EmotionInfluence scales emotional preset precedence [0, 1].
	EmotionInfluence float64
	// GenreAdaptation enables genre-driven preset adjustment.
	GenreAdaptation bool
	// SpectralAdaptation enables music-driven gradient modulation.
	SpectralAdaptation bool
	// Profile selects the base blend ratio.
	Profile BlendProfile
	// MinSaturation is the saturation floor in percent; zero means the
	// package default.
	MinSaturation float64
	// SafeMode disables lightness boosting.
	SafeMode bool
	// PreferLightweight forces the most conservative preset.
	PreferLightweight bool
	// CacheSize bounds the result cache; zero means the package default.
	CacheSize int
}

// DefaultConfig returns the standard harmonizer configuration.
func DefaultConfig() Config {
	return Config{
		Intensity:          1.0,
		GenreInfluence:     0.7,
		EmotionInfluence:   0.8,
		GenreAdaptation:    true,
		SpectralAdaptation: true,
		Profile:            ProfileDefault,
		MinSaturation:      DefaultMinSaturation,
		CacheSize:          DefaultCacheSize,
	}
}

// Context bundles the external analysis signals for one harmonization call.
// Emotion and Genre are optional; the engine falls back to energy/valence
// heuristics when they are absent.
type Context struct {
	Music   music.Context
	Emotion *music.EmotionalTemperature
	Genre   *music.GenreContext
}

// Metadata describes how a harmonization result was produced.
type Metadata struct {
	PresetName       string  `json:"preset_name"`
	ProcessingTimeMs float64 `json:"processing_time_ms"`
	CacheKey         string  `json:"cache_key"`
}

// HarmonizedResult is the output of one harmonization call. It is immutable
// once returned; the engine retains nothing beyond its cache entries.
type HarmonizedResult struct {
	ProcessedColours map[string]string `json:"processed_colours"`
	AccentHex        string            `json:"accent_hex"`
	AccentRGB        RGB               `json:"accent_rgb"`
	Metadata         Metadata          `json:"metadata"`
}

// Harmonizer drives the harmonization pipeline: accent selection, preset
// resolution and perceptual blending, with results cached per source
// colour, preset and genre.
//
// A Harmonizer owns its cache and base palette exclusively. It performs no
// blocking work and provides no locking; callers invoking it from multiple
// goroutines must serialise access.
type Harmonizer struct {
	cfg        Config
	palette    *BasePalette
	paletteErr error
	cache      *resultCache
	log        hclog.Logger
}

// NewHarmonizer creates a Harmonizer with the built-in default palette.
// A nil logger is replaced with a no-op logger.
func NewHarmonizer(cfg Config, logger hclog.Logger) *Harmonizer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Harmonizer{
		cfg:     cfg,
		palette: DefaultPalette(),
		cache:   newResultCache(cfg.CacheSize),
		log:     logger,
	}
}

// SetPalette swaps the active base palette wholesale. The palette is
// validated first; a misconfigured palette is rejected in favour of the
// built-in default, and the condition is recorded for Health to report.
// The incoming palette is deep-copied so later caller mutation cannot be
// observed mid-read. The cache is cleared because cached results depend on
// accent choices from the old palette.
func (h *Harmonizer) SetPalette(p *BasePalette) {
	if err := p.Validate(); err != nil {
		h.log.Warn("rejecting misconfigured palette, using default", "error", err)
		h.paletteErr = err
		h.palette = DefaultPalette()
	} else {
		h.paletteErr = nil
		h.palette = p.clone()
	}
	h.cache = newResultCache(h.cfg.CacheSize)
}

// Palette returns a copy of the active base palette.
func (h *Harmonizer) Palette() *BasePalette {
	return h.palette.clone()
}

// Health reports the most recent palette misconfiguration, or nil when the
// active palette was accepted as given.
func (h *Harmonizer) Health() error {
	return h.paletteErr
}

// Harmonize processes a raw colour set against the active palette under the
// given music context.
//
// Roles are processed in a fixed priority order. A role whose hex fails to
// parse is passed through unmodified rather than dropped. An empty or fully
// unparseable input yields a result built around the documented fallback
// neutral, never an error: callers always receive a renderable result.
func (h *Harmonizer) Harmonize(raw RawColourSet, ctx Context) *HarmonizedResult {
	start := time.Now()

	preset := h.resolvePreset(ctx)
	ratio := h.blendRatio(ctx)
	genreTag := "none"
	if ctx.Genre != nil {
		genreTag = ctx.Genre.Genre.String()
	}

	processed := make(map[string]string, len(raw))
	parsed := make(map[string]RGB, len(raw))
	var lastKey cacheKey

	for _, role := range h.rolesInOrder(raw) {
		input := raw[role]
		rgb, err := ParseHex(input)
		if err != nil {
			// Keep the original string; the role is not dropped.
			h.log.Debug("skipping unparseable colour", "role", role, "value", input)
			processed[role] = input
			continue
		}

		key := cacheKey{hex: rgb.Hex(), preset: preset.Name, genre: genreTag}
		lastKey = key

		if cached, ok := h.cache.get(key); ok {
			processed[role] = cached.Hex()
			parsed[role] = cached
			continue
		}

		accent := FindBestAccent(rgb, h.palette)
		blended := Blend(rgb, accent.RGB, ratio, BlendOptions{
			Preset:        preset,
			MinSaturation: h.cfg.MinSaturation,
			SafeMode:      h.cfg.SafeMode,
		})
		h.cache.put(key, blended)
		processed[role] = blended.Hex()
		parsed[role] = blended
	}

	accentHex, accentRGB := h.pickAccent(parsed)

	keyStr := ""
	if lastKey != (cacheKey{}) {
		keyStr = lastKey.String()
	}

	return &HarmonizedResult{
		ProcessedColours: processed,
		AccentHex:        accentHex,
		AccentRGB:        accentRGB,
		Metadata: Metadata{
			PresetName:       preset.Name,
			ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
			CacheKey:         keyStr,
		},
	}
}

// resolvePreset applies the config knobs to preset resolution.
func (h *Harmonizer) resolvePreset(ctx Context) Preset {
	genre := ctx.Genre
	if !h.cfg.GenreAdaptation {
		genre = nil
	}
	return ResolvePreset(ctx.Music.Energy, ctx.Music.Valence, ctx.Emotion, genre, PresetOptions{
		GenreInfluence:    h.cfg.GenreInfluence,
		EmotionInfluence:  h.cfg.EmotionInfluence,
		PreferLightweight: h.cfg.PreferLightweight,
	})
}

// blendRatio computes the weight kept on the extracted colour: the
// profile's base ratio, pulled towards the accent by emotional intensity
// (or raw music energy when no emotional result is available), then scaled
// by the global intensity knob and clamped to [0, 1].
func (h *Harmonizer) blendRatio(ctx Context) float64 {
	var ratio float64
	switch h.cfg.Profile {
	case ProfileConservative:
		ratio = conservativeBaseRatio
	case ProfileMaximal:
		ratio = maximalBaseRatio
	default:
		ratio = defaultBaseRatio
	}

	if ctx.Emotion != nil && h.cfg.EmotionInfluence > 0 {
		ratio *= 1 - emotionRatioPull*clamp(ctx.Emotion.Intensity, 0, 1)*h.cfg.EmotionInfluence
	} else if ctx.Music.Energy > 0 {
		ratio *= 1 - musicRatioPull*clamp(ctx.Music.Energy, 0, 1)
	}

	ratio *= h.cfg.Intensity
	return clamp(ratio, 0, 1)
}

// rolesInOrder returns the roles present in raw: priority roles first in
// their fixed order, remaining roles in name order for determinism.
func (h *Harmonizer) rolesInOrder(raw RawColourSet) []string {
	roles := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, role := range rolePriority {
		if _, ok := raw[role]; ok {
			roles = append(roles, role)
			seen[role] = true
		}
	}
	var extra []string
	for role := range raw {
		if !seen[role] {
			extra = append(extra, role)
		}
	}
	sortStrings(extra)
	return append(roles, extra...)
}

// pickAccent selects the accent output: the first successfully processed
// role in the accent priority order, falling back to the documented
// neutral when nothing parsed.
func (h *Harmonizer) pickAccent(parsed map[string]RGB) (string, RGB) {
	for _, role := range accentRolePriority {
		if rgb, ok := parsed[role]; ok {
			return rgb.Hex(), rgb
		}
	}
	// Any processed role at all, in deterministic order.
	if len(parsed) > 0 {
		names := make([]string, 0, len(parsed))
		for role := range parsed {
			names = append(names, role)
		}
		sortStrings(names)
		rgb := parsed[names[0]]
		return rgb.Hex(), rgb
	}
	return FallbackNeutralHex, mustHex(FallbackNeutralHex)
}
