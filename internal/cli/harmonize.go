// Package cli provides the harmonize command.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jlowell/chromabeat/internal/colour"
	"github.com/jlowell/chromabeat/internal/music"
)

var (
	// Harmonize command flags
	harmonizeEnergy           float64
	harmonizeValence          float64
	harmonizeTempo            float64
	harmonizeGenre            string
	harmonizeGenreConfidence  float64
	harmonizeEmotion          string
	harmonizeEmotionIntensity float64
	harmonizeIntensity        float64
	harmonizeProfile          string
	harmonizeSafe             bool
	harmonizeLightweight      bool
	harmonizeStops            int
	harmonizeFormat           string
	harmonizeShowPreview      bool
)

// harmonizeCmd represents the harmonize command
var harmonizeCmd = &cobra.Command{
	Use:   "harmonize ROLE=HEX [ROLE=HEX...]",
	Short: "Harmonize extracted colours against the base palette",
	Long: `Harmonize raw colours extracted from album artwork against the curated
base palette, modulated by the given music context.

Each argument is a ROLE=HEX pair, where ROLE is a semantic role name such
as VIBRANT, PROMINENT or DARK_VIBRANT, and HEX is a 3- or 6-digit hex
colour. Roles whose colour fails to parse are passed through unmodified.

Examples:
  # Harmonize two extracted colours for an energetic, positive track
  chromabeat harmonize VIBRANT=#e07a5f DARK_VIBRANT=#3d405b --energy 0.8 --valence 0.75

  # Include a genre signal and show colour previews
  chromabeat harmonize VIBRANT=#e07a5f --genre electronic --genre-confidence 0.9 --preview

  # Emit the flat style-variable mapping as JSON, with 16 gradient stops
  chromabeat harmonize VIBRANT=#e07a5f PROMINENT=#81b29a --format json --stops 16`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHarmonize,
}

func init() {
	harmonizeCmd.Flags().Float64VarP(&harmonizeEnergy, "energy", "e", 0.5, "music energy (0-1)")
	harmonizeCmd.Flags().Float64Var(&harmonizeValence, "valence", 0.5, "music valence (0-1)")
	harmonizeCmd.Flags().Float64Var(&harmonizeTempo, "tempo", 0, "music tempo in BPM")
	harmonizeCmd.Flags().StringVarP(&harmonizeGenre, "genre", "g", "", "detected genre (rock, pop, jazz, classical, electronic, hiphop, metal, ambient, folk, blues)")
	harmonizeCmd.Flags().Float64Var(&harmonizeGenreConfidence, "genre-confidence", 0.8, "genre classification confidence (0-1)")
	harmonizeCmd.Flags().StringVar(&harmonizeEmotion, "emotion", "", "detected emotion (happy, sad, energetic, calm, ...)")
	harmonizeCmd.Flags().Float64Var(&harmonizeEmotionIntensity, "emotion-intensity", 0.7, "emotional intensity (0-1)")
	harmonizeCmd.Flags().Float64VarP(&harmonizeIntensity, "intensity", "i", 1.0, "global harmonization intensity (0-1)")
	harmonizeCmd.Flags().StringVar(&harmonizeProfile, "profile", "default", "blend profile (conservative, default, maximal)")
	harmonizeCmd.Flags().BoolVar(&harmonizeSafe, "safe", false, "safe mode: preserve source lightness")
	harmonizeCmd.Flags().BoolVar(&harmonizeLightweight, "lightweight", false, "force the most conservative preset")
	harmonizeCmd.Flags().IntVar(&harmonizeStops, "stops", 0, "also synthesize a gradient with this many stops")
	harmonizeCmd.Flags().StringVarP(&harmonizeFormat, "format", "f", "text", "output format (text, json)")
	harmonizeCmd.Flags().BoolVar(&harmonizeShowPreview, "preview", false, "show colour previews in terminal")
}

// runHarmonize executes the harmonize command.
func runHarmonize(cmd *cobra.Command, args []string) error {
	raw, err := parseRoleArgs(args)
	if err != nil {
		return err
	}

	profile, err := parseProfile(harmonizeProfile)
	if err != nil {
		return err
	}

	cfg := colour.DefaultConfig()
	cfg.Intensity = harmonizeIntensity
	cfg.Profile = profile
	cfg.SafeMode = harmonizeSafe
	cfg.PreferLightweight = harmonizeLightweight

	h := colour.NewHarmonizer(cfg, newLogger())
	ctx := buildContext()

	result := h.Harmonize(raw, ctx)

	var gradient []colour.RGB
	if harmonizeStops > 0 {
		gradient, err = h.Gradient(result, harmonizeStops, ctx)
		if err != nil {
			return fmt.Errorf("synthesizing gradient: %w", err)
		}
	}

	switch harmonizeFormat {
	case "json":
		return writeJSON(map[string]any{
			"result":          result,
			"style_variables": colour.StyleVariables(result, gradient),
		})
	case "text":
		printResult(result, gradient)
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected text or json)", harmonizeFormat)
	}
}

// buildContext assembles the harmonization context from the music flags.
func buildContext() colour.Context {
	ctx := colour.Context{
		Music: music.Context{
			Energy:  harmonizeEnergy,
			Valence: harmonizeValence,
			Tempo:   harmonizeTempo,
		},
	}

	if harmonizeGenre != "" {
		genre := music.NewGenreContext(music.ParseGenre(harmonizeGenre), harmonizeGenreConfidence)
		ctx.Music.Genre = genre.Genre
		ctx.Genre = &genre
	}

	if harmonizeEmotion != "" {
		ctx.Emotion = &music.EmotionalTemperature{
			Primary:   music.ParseEmotion(harmonizeEmotion),
			Intensity: harmonizeEmotionIntensity,
		}
	}

	return ctx
}

// parseRoleArgs parses ROLE=HEX arguments into a raw colour set.
func parseRoleArgs(args []string) (colour.RawColourSet, error) {
	raw := make(colour.RawColourSet, len(args))
	for _, arg := range args {
		role, hex, found := strings.Cut(arg, "=")
		if !found || role == "" || hex == "" {
			return nil, fmt.Errorf("invalid argument %q (expected ROLE=HEX)", arg)
		}
		raw[strings.ToUpper(role)] = hex
	}
	return raw, nil
}

// parseProfile maps a profile flag value to a blend profile.
func parseProfile(s string) (colour.BlendProfile, error) {
	switch s {
	case "conservative":
		return colour.ProfileConservative, nil
	case "default", "":
		return colour.ProfileDefault, nil
	case "maximal":
		return colour.ProfileMaximal, nil
	default:
		return colour.ProfileDefault, fmt.Errorf("unknown profile %q (expected conservative, default or maximal)", s)
	}
}

// printResult writes the harmonization result as human-readable text.
func printResult(result *colour.HarmonizedResult, gradient []colour.RGB) {
	preview := harmonizeShowPreview && isTerminal()

	roles := make([]string, 0, len(result.ProcessedColours))
	for role := range result.ProcessedColours {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	for _, role := range roles {
		hex := result.ProcessedColours[role]
		if preview {
			if rgb, err := colour.ParseHex(hex); err == nil {
				fmt.Printf("%-14s %s %s\n", role, hex, colour.ColourPreview(rgb, 8))
				continue
			}
		}
		fmt.Printf("%-14s %s\n", role, hex)
	}

	if preview {
		fmt.Printf("%-14s %s %s\n", "accent", result.AccentHex, colour.ColourPreview(result.AccentRGB, 8))
	} else {
		fmt.Printf("%-14s %s\n", "accent", result.AccentHex)
	}

	if len(gradient) > 0 {
		fmt.Println("gradient:")
		for i, stop := range gradient {
			if preview {
				fmt.Printf("  %2d %s %s\n", i, stop.Hex(), colour.ColourPreview(stop, 8))
			} else {
				fmt.Printf("  %2d %s\n", i, stop.Hex())
			}
		}
	}

	fmt.Printf("preset: %s  (%.3fms)\n", result.Metadata.PresetName, result.Metadata.ProcessingTimeMs)
}

// writeJSON marshals v to indented JSON on stdout.
func writeJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// isTerminal reports whether stdout is attached to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
