package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/symsvg/internal/config"
	"github.com/OpenTraceLab/symsvg/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// cfg is loaded before any subcommand runs
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "symsvg",
	Short: "symsvg - KiCad library symbols to SVG",
	Long: `symsvg converts KiCad library symbol records into SVG documents.

A symbol record lists the symbol's draw primitives (rectangles, polylines,
pins, circles, arcs, text) and its fields, as JSON, YAML or MessagePack.

Examples:
  symsvg render 7400.yaml -o 7400.svg         # Render unit 1
  symsvg render 7400.yaml --unit all --png    # One SVG and PNG per unit
  symsvg info 7400.yaml                       # Show symbol summary
  symsvg serve --addr :8080                   # Start the render service`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
}

// setup installs the logger and loads the configuration
func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	return nil
}
