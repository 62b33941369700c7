package config

import (
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/Swissguarde/dimex-sdc/internal/slope"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ReleaseScheme != "zero-moment" {
		t.Fatalf("expected zero-moment scheme, got %q", cfg.ReleaseScheme)
	}
	if cfg.DiagramSamples != 40 {
		t.Fatalf("expected 40 samples, got %d", cfg.DiagramSamples)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Scheme != slope.ZeroMoment || opts.SingularTolerance != 1e-9 || opts.ResidualTolerance != 1e-6 {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SDC_RELEASE_SCHEME", "modified")
	t.Setenv("SDC_SINGULAR_TOLERANCE", "1e-12")
	t.Setenv("SDC_LOCALE", "de")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Scheme != slope.Modified {
		t.Fatalf("expected modified scheme, got %v", opts.Scheme)
	}
	if opts.SingularTolerance != 1e-12 {
		t.Fatalf("expected tolerance 1e-12, got %g", opts.SingularTolerance)
	}
	if cfg.Language() != language.German {
		t.Fatalf("expected German, got %v", cfg.Language())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{"bad number", "SDC_RESIDUAL_TOLERANCE", "tiny", "parse env:"},
		{"bad scheme", "SDC_RELEASE_SCHEME", "plastic", "SDC_RELEASE_SCHEME"},
		{"bad samples", "SDC_DIAGRAM_SAMPLES", "0", "SDC_DIAGRAM_SAMPLES"},
		{"bad tolerance", "SDC_SINGULAR_TOLERANCE", "-1", "tolerances"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in %v", tt.want, err)
			}
		})
	}
}
