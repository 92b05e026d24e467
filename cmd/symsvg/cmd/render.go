package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/symsvg/internal/logging"
	"github.com/OpenTraceLab/symsvg/pkg/kicad/symbol"
	"github.com/OpenTraceLab/symsvg/pkg/kicad/symbol/renderer"
	"github.com/OpenTraceLab/symsvg/pkg/raster"
	"github.com/OpenTraceLab/symsvg/pkg/unitsel"
)

var (
	renderOutput       string
	renderSize         int
	renderUnit         string
	renderPNG          bool
	renderDebugExtents bool
)

var renderCmd = &cobra.Command{
	Use:   "render <symbol_file>",
	Short: "Render a symbol to SVG",
	Long: `Render a symbol record (.json, .yaml, .msgpack) to SVG.

Units are selected with --unit: a single unit ("2"), a list ("1,3"), a
range ("2-4") or "all". Each selected unit is written to its own file,
name_u<unit>.svg, unless only one unit is selected.

Without -o, a single unit is written to stdout; otherwise files are named
after the symbol file.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output SVG file")
	renderCmd.Flags().IntVarP(&renderSize, "size", "s", renderer.DefaultSize, "canvas width and height")
	renderCmd.Flags().StringVarP(&renderUnit, "unit", "u", "1", `units to render ("1", "1,3", "2-4", "all")`)
	renderCmd.Flags().BoolVar(&renderPNG, "png", false, "also write a PNG preview next to each SVG")
	renderCmd.Flags().BoolVar(&renderDebugExtents, "debug-extents", false, "outline the computed extents")
}

// renderSettings merges the config file with flags given on the command line
func renderSettings(cmd *cobra.Command) (size int, unit string, png, debugExtents bool) {
	size, unit, png, debugExtents = cfg.Render.Size, cfg.Render.Unit, cfg.Render.PNG, cfg.Render.DebugExtents
	flags := cmd.Flags()
	if flags.Changed("size") {
		size = renderSize
	}
	if flags.Changed("unit") {
		unit = renderUnit
	}
	if flags.Changed("png") {
		png = renderPNG
	}
	if flags.Changed("debug-extents") {
		debugExtents = renderDebugExtents
	}
	return size, unit, png, debugExtents
}

func runRender(cmd *cobra.Command, args []string) error {
	filename := args[0]
	sym, err := symbol.DecodeFile(filename)
	if err != nil {
		return fmt.Errorf("error reading symbol: %w", err)
	}

	size, unitSel, png, debugExtents := renderSettings(cmd)
	units, err := unitsel.Expand(unitSel, sym.MaxUnit())
	if err != nil {
		return err
	}

	toStdout := renderOutput == "" && len(units) == 1 && !png
	base := renderOutput
	if base == "" {
		base = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".svg"
	}

	for _, unit := range units {
		opts := renderer.Options{Size: size, Unit: unit, DebugExtents: debugExtents}

		var buf bytes.Buffer
		if err := renderer.WriteSVG(&buf, sym, opts); err != nil {
			return fmt.Errorf("error rendering unit %d: %w", unit, err)
		}

		if toStdout {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}

		path := unitPath(base, unit, len(units) > 1)
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", path, err)
		}
		logging.Logger().Info("wrote svg", "path", path, "unit", unit)
		fmt.Fprintln(cmd.OutOrStdout(), path)

		if png {
			pngPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
			if err := writePNG(pngPath, buf.Bytes(), size); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pngPath)
		}
	}

	return nil
}

// unitPath returns the file for one unit: base itself, or base with a
// _u<unit> suffix when several units are written.
func unitPath(base string, unit int, multi bool) string {
	if !multi {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_u%d%s", strings.TrimSuffix(base, ext), unit, ext)
}

func writePNG(path string, svg []byte, size int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer file.Close()

	if err := raster.Encode(file, svg, size); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return file.Close()
}
