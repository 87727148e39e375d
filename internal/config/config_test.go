package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/wireclip/pkg/math3d"
	"github.com/taigrr/wireclip/pkg/view"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wireclip.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{"prp": [0, 0, 10], "width": 320, "output": "frame.png"}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 320 || cfg.Output != "frame.png" {
		t.Errorf("got width %d output %q", cfg.Width, cfg.Output)
	}
	if cfg.PRP[2] != 10 {
		t.Errorf("prp = %v, want z=10", cfg.PRP)
	}
	// Unset fields keep their defaults
	if cfg.Height != Default().Height || len(cfg.Clip) != 6 {
		t.Errorf("defaults lost: height %d clip %v", cfg.Height, cfg.Clip)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v, want os.ErrNotExist", err)
	}
	if _, err := Load(writeConfig(t, `{"prp": `)); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Default()
	err := cfg.Resolve(Flags{
		PRP:    "1, 2, 3",
		Clip:   "-2,2,-1,1,0.5,10",
		Width:  100,
		Output: "out.webp",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if p.PRP != math3d.V3(1, 2, 3) {
		t.Errorf("PRP = %v", p.PRP)
	}
	want := view.Clip{Umin: -2, Umax: 2, Vmin: -1, Vmax: 1, Front: 0.5, Back: 10}
	if p.Clip != want {
		t.Errorf("Clip = %+v, want %+v", p.Clip, want)
	}
	if cfg.Width != 100 || cfg.Height != 480 || cfg.Output != "out.webp" {
		t.Errorf("got %dx%d %q", cfg.Width, cfg.Height, cfg.Output)
	}
}

func TestResolveFillsDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Resolve(Flags{}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, err := cfg.Params(); err != nil {
		t.Errorf("Params after Resolve: %v", err)
	}
	if cfg.Supersample != 1 {
		t.Errorf("Supersample = %d, want 1", cfg.Supersample)
	}
}

func TestResolveBadFlag(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
	}{
		{"short vector", Flags{PRP: "1,2"}},
		{"not a number", Flags{VUP: "0,up,0"}},
		{"short clip", Flags{Clip: "1,2,3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			if err := cfg.Resolve(tt.flags); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParamsInvalidClip(t *testing.T) {
	cfg := Default()
	cfg.Clip = []float64{-1, 1, -1, 1, 5, 2}
	if _, err := cfg.Params(); !errors.Is(err, view.ErrInvalidClip) {
		t.Errorf("got %v, want ErrInvalidClip", err)
	}

	cfg = Default()
	cfg.SRP = []float64{0, 0}
	if _, err := cfg.Params(); err == nil {
		t.Error("expected error for short srp")
	}
}
