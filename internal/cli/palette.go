// Package cli provides the palette command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jlowell/chromabeat/internal/colour"
)

var (
	// Palette command flags
	paletteFormat      string
	paletteShowPreview bool
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the active base palette",
	Long: `Show the curated base palette the engine harmonizes extracted colours
against: the named accent hues in their selection priority order, and
the neutral surface ramp from lightest to darkest.`,
	Args: cobra.NoArgs,
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().StringVarP(&paletteFormat, "format", "f", "text", "output format (text, json)")
	paletteCmd.Flags().BoolVar(&paletteShowPreview, "preview", false, "show colour previews in terminal")
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, args []string) error {
	palette := colour.DefaultPalette()

	switch paletteFormat {
	case "json":
		return writeJSON(palette)
	case "text":
		preview := paletteShowPreview && isTerminal()
		fmt.Printf("palette: %s\n\naccents:\n", palette.Name)
		printEntries(palette.AccentNames(), palette.Accents, preview)
		fmt.Println("\nneutrals:")
		printEntries(palette.NeutralNames(), palette.Neutrals, preview)
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected text or json)", paletteFormat)
	}
}

// printEntries writes named palette entries, optionally with previews.
func printEntries(names []string, entries map[string]string, preview bool) {
	for _, name := range names {
		hex := entries[name]
		if preview {
			if rgb, err := colour.ParseHex(hex); err == nil {
				fmt.Printf("  %-10s %s\n", name, colour.ColourPreviewWithText(rgb, hex, 9))
				continue
			}
		}
		fmt.Printf("  %-10s %s\n", name, hex)
	}
}
