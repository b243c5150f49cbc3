// Package cli provides the command-line interface for Chromabeat.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jlowell/chromabeat/internal/version"
)

var (
	// Global flags
	globalVerbose bool
	globalQuiet   bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "chromabeat",
		Short: "A music-reactive colour harmonization engine",
		Long: `Chromabeat harmonizes colours extracted from album artwork against a
curated base palette in the perceptually uniform OKLab colour space,
modulated by real-time music analysis signals (energy, valence, detected
emotion and genre).

Feed it the raw colours from a colour-extraction tool and the current
music context, and it produces a processed colour set plus gradient
stops ready for a rendering layer.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(harmonizeCmd)
	rootCmd.AddCommand(gradientCmd)
	rootCmd.AddCommand(paletteCmd)
}

// newLogger builds the hclog logger used by the engine, honouring the
// global verbosity flags.
func newLogger() hclog.Logger {
	level := hclog.Info
	if globalVerbose {
		level = hclog.Debug
	}
	if globalQuiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "chromabeat",
		Level:  level,
		Output: os.Stderr,
	})
}
