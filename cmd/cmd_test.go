package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sdcerrors "github.com/Swissguarde/dimex-sdc/internal/errors"
	"github.com/Swissguarde/dimex-sdc/internal/version"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootBanner(t *testing.T) {
	out, err := execute(t)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Slope-Deflection Calculator") || !strings.Contains(out, version.Version) {
		t.Fatalf("unexpected banner:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "dimex-sdc v"+version.Version) {
		t.Fatalf("unexpected version output:\n%s", out)
	}
}

func TestBeamAnalyze(t *testing.T) {
	out, err := execute(t, "beam", "analyze", "-f", filepath.Join("..", "examples", "beam.json"), "--combo", "2", "--diagram")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{
		"CONTINUOUS BEAM ANALYSIS",
		"FIXED-END MOMENTS",
		"FINAL END MOMENTS",
		"RA:",
		"MAX MOMENT",
		"Three span beam BMD",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output", want)
		}
	}
}

func TestFrameAnalyzeExport(t *testing.T) {
	target := filepath.Join(t.TempDir(), "frame.svg")
	out, err := execute(t, "frame", "analyze", "-f", filepath.Join("..", "examples", "frame.json"), "-o", target)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "SWAY:") || !strings.Contains(out, "HA:") {
		t.Fatalf("unexpected report:\n%s", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected exported diagram: %v", err)
	}
}

func TestFrameAnalyzeUnstable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unstable.json")
	doc := `{
  "name": "Sliding portal",
  "columns": [
    {"height": 3, "rigidity": 1, "base": "roller"},
    {"height": 3, "rigidity": 1, "base": "roller"}
  ],
  "beam": {"length": 6, "rigidity": 1, "load": {"type": "udl", "magnitude": 10}}
}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	frameFlags.output = ""
	_, err := execute(t, "frame", "analyze", "-f", path)
	if !errors.Is(err, sdcerrors.ErrUnstableStructure) {
		t.Fatalf("expected unstable structure, got %v", err)
	}
}

func TestCombinations(t *testing.T) {
	out, err := execute(t, "combinations", "--dead", "10", "--live", "5")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "GOVERNS") || !strings.Contains(out, "1.2D + 1.6L") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
