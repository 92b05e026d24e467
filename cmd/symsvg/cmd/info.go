package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/symsvg/pkg/kicad/symbol"
)

var infoCmd = &cobra.Command{
	Use:   "info <symbol_file>",
	Short: "Show symbol information",
	Long: `Display a summary of a symbol record: primitive counts, units,
fields and pins.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	sym, err := symbol.DecodeFile(filename)
	if err != nil {
		return fmt.Errorf("error reading symbol: %w", err)
	}

	showSymbolSummary(cmd.OutOrStdout(), sym, filename)
	return nil
}

func showSymbolSummary(w io.Writer, sym *symbol.Symbol, filename string) {
	fmt.Fprintf(w, "Symbol: %s\n", sym.Name)
	fmt.Fprintf(w, "File: %s\n", filename)
	if sym.Reference != "" {
		fmt.Fprintf(w, "Reference: %s\n", sym.Reference)
	} else if ref := sym.GetField(0); ref != nil {
		fmt.Fprintf(w, "Reference: %s\n", ref.Text)
	}
	if value := sym.GetField(1); value != nil {
		fmt.Fprintf(w, "Value: %s\n", value.Text)
	}
	fmt.Fprintf(w, "Units: %d\n", max(sym.MaxUnit(), 1))
	fmt.Fprintf(w, "Pin names: %s (offset %g)\n", onOff(sym.DrawName), sym.PinNameOffset)
	fmt.Fprintf(w, "Pin numbers: %s\n", onOff(sym.DrawNums))
	fmt.Fprintln(w)

	// Statistics
	counts := sym.CountByKind()
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	fmt.Fprintln(w, "Primitives:")
	for _, k := range kinds {
		fmt.Fprintf(w, "  %s: %d\n", k, counts[k])
	}
	fmt.Fprintln(w)

	if len(sym.Fields) > 0 {
		fmt.Fprintln(w, "Fields:")
		for _, f := range sym.Fields {
			fmt.Fprintf(w, "  [%d] %s\n", f.Index, f.Text)
		}
		fmt.Fprintln(w)
	}

	// Pins grouped by unit
	pins := sym.Pins()
	if len(pins) > 0 {
		byUnit := make(map[int][]string)
		for _, p := range pins {
			byUnit[p.Unit] = append(byUnit[p.Unit], fmt.Sprintf("%s(%s)", p.Number, p.Name))
		}

		var units []int
		for u := range byUnit {
			units = append(units, u)
		}
		sort.Ints(units)

		fmt.Fprintln(w, "Pins:")
		for _, u := range units {
			label := fmt.Sprintf("unit %d", u)
			if u == 0 {
				label = "all units"
			}
			fmt.Fprintf(w, "  %s: %s\n", label, strings.Join(byUnit[u], ", "))
		}
	}
}

func onOff(b bool) string {
	if b {
		return "shown"
	}
	return "hidden"
}
