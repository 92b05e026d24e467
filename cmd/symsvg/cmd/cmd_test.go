package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/symsvg/pkg/kicad/symbol"
)

func testdata(name string) string {
	return filepath.Join("..", "..", "..", "pkg", "kicad", "symbol", "testdata", name)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRenderToStdout(t *testing.T) {
	out, err := execute(t, "render", testdata("cp_polarized.json"), "--output=", "--unit", "1", "--png=false")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "<svg ") || !strings.Contains(out, "C?</text>") {
		t.Errorf("Expected SVG document on stdout, got %q", out)
	}
}

func TestRenderAllUnits(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "7400.svg")

	out, err := execute(t, "render", testdata("7400.yaml"), "-o", base, "--unit", "all", "--size", "200", "--png")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, unit := range []string{"1", "2", "3"} {
		svgPath := filepath.Join(dir, "7400_u"+unit+".svg")
		data, err := os.ReadFile(svgPath)
		if err != nil {
			t.Errorf("Expected %s to be written: %v", svgPath, err)
			continue
		}
		if !strings.Contains(string(data), unit+" of 3") {
			t.Errorf("Expected caption %q in %s", unit+" of 3", svgPath)
		}
		if !strings.Contains(string(data), `width="200"`) {
			t.Errorf("Expected size 200 in %s", svgPath)
		}
		if _, err := os.Stat(filepath.Join(dir, "7400_u"+unit+".png")); err != nil {
			t.Errorf("Expected PNG for unit %s: %v", unit, err)
		}
		if !strings.Contains(out, svgPath) {
			t.Errorf("Expected %s to be listed in output", svgPath)
		}
	}
}

func TestRenderInvalidUnit(t *testing.T) {
	if _, err := execute(t, "render", testdata("7400.yaml"), "--output=", "--unit", "5", "--png=false"); err == nil {
		t.Error("Expected error for unit beyond the symbol's units")
	}
}

func TestRenderConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "symsvg.yaml")
	if err := os.WriteFile(configFile, []byte("render:\n  size: 120\n  debugExtents: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "cp.svg")

	// flag values persist across executions of rootCmd
	if _, err := execute(t, "render", testdata("cp_polarized.json"), "-c", configFile, "-o", out, "--size", "120", "--png=false", "--unit", "1"); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `width="120"`) {
		t.Errorf("Expected size 120, got %s", data)
	}
	if strings.Count(string(data), "<rect ") != 1 {
		t.Errorf("Expected the extents frame from the config file")
	}
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info", testdata("7400.yaml"), "-c", "")
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}
	for _, want := range []string{
		"Symbol: 7400",
		"Reference: U",
		"Value: 7400",
		"Units: 3",
		"  pin: 11",
		"  square: 1",
		"  [0] U",
		"  all units: 14(VCC), 7(GND)",
		"  unit 2: 4(A), 5(B), 6(Y)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected info output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestInfoReferenceFromField(t *testing.T) {
	sym := &symbol.Symbol{
		Name:   "R",
		Fields: []symbol.Field{{Index: 0, Text: "R"}, {Index: 1, Text: "10k"}},
	}
	var out bytes.Buffer
	showSymbolSummary(&out, sym, "r.json")

	for _, want := range []string{"Reference: R\n", "Value: 10k\n"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected info output to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestUnitPath(t *testing.T) {
	if got := unitPath("out/cp.svg", 2, false); got != "out/cp.svg" {
		t.Errorf("Expected out/cp.svg, got %s", got)
	}
	if got := unitPath("out/7400.svg", 3, true); got != "out/7400_u3.svg" {
		t.Errorf("Expected out/7400_u3.svg, got %s", got)
	}
}
