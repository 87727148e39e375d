// Package config loads camera and output settings from JSON files and flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/taigrr/wireclip/pkg/math3d"
	"github.com/taigrr/wireclip/pkg/view"
)

// Config holds the camera and render settings.
type Config struct {
	// Camera
	PRP  []float64 `json:"prp"`
	SRP  []float64 `json:"srp"`
	VUP  []float64 `json:"vup"`
	Clip []float64 `json:"clip"` // umin, umax, vmin, vmax, front, back

	// Output
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Supersample int    `json:"supersample"`
	Output      string `json:"output"`
}

// Default returns the camera used when nothing else is configured: the eye
// on the +z axis looking at the origin.
func Default() Config {
	return Config{
		PRP:         []float64{0, 0, 5},
		SRP:         []float64{0, 0, 0},
		VUP:         []float64{0, 1, 0},
		Clip:        []float64{-1, 1, -1, 1, 1, 20},
		Width:       640,
		Height:      480,
		Supersample: 2,
	}
}

// Load reads a JSON config file. Fields not set in the file keep their
// Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Vector flags are comma separated lists, e.g. "0,0,5".
type Flags struct {
	PRP         string
	SRP         string
	VUP         string
	Clip        string
	Width       int
	Height      int
	Supersample int
	Output      string
}

// Resolve applies non-empty flags on top of c and fills in defaults for
// anything still unset.
func (c *Config) Resolve(flags Flags) error {
	vectors := []struct {
		name string
		raw  string
		dst  *[]float64
		n    int
	}{
		{"prp", flags.PRP, &c.PRP, 3},
		{"srp", flags.SRP, &c.SRP, 3},
		{"vup", flags.VUP, &c.VUP, 3},
		{"clip", flags.Clip, &c.Clip, 6},
	}
	for _, v := range vectors {
		if v.raw == "" {
			continue
		}
		vals, err := ParseList(v.raw, v.n)
		if err != nil {
			return fmt.Errorf("config: -%s: %w", v.name, err)
		}
		*v.dst = vals
	}

	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}

	// Defaults for anything the file and flags left empty
	def := Default()
	if len(c.PRP) == 0 {
		c.PRP = def.PRP
	}
	if len(c.SRP) == 0 {
		c.SRP = def.SRP
	}
	if len(c.VUP) == 0 {
		c.VUP = def.VUP
	}
	if len(c.Clip) == 0 {
		c.Clip = def.Clip
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	return nil
}

// Params converts the camera settings to view parameters.
func (c Config) Params() (view.Params, error) {
	prp, err := vec3("prp", c.PRP)
	if err != nil {
		return view.Params{}, err
	}
	srp, err := vec3("srp", c.SRP)
	if err != nil {
		return view.Params{}, err
	}
	vup, err := vec3("vup", c.VUP)
	if err != nil {
		return view.Params{}, err
	}
	clip, err := view.ClipFromSlice(c.Clip)
	if err != nil {
		return view.Params{}, fmt.Errorf("config: clip: %w", err)
	}
	if err := clip.Validate(); err != nil {
		return view.Params{}, fmt.Errorf("config: clip: %w", err)
	}

	return view.Params{PRP: prp, SRP: srp, VUP: vup, Clip: clip}, nil
}

// ParseList parses n comma separated numbers.
func ParseList(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d values, got %d in %q", n, len(parts), s)
	}
	vals := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func vec3(name string, v []float64) (math3d.Vec3, error) {
	if len(v) != 3 {
		return math3d.Vec3{}, fmt.Errorf("config: %s: want 3 values, got %d", name, len(v))
	}
	return math3d.V3(v[0], v[1], v[2]), nil
}
