package clip

import (
	"testing"

	"github.com/taigrr/wireclip/pkg/math3d"
)

const zMin = -0.05

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		point    math3d.Vec4
		expected Outcode
	}{
		{"center", math3d.V4(0, 0, -0.5, 1), Inside},
		{"left", math3d.V4(-2, 0, -0.5, 1), Left},
		{"right", math3d.V4(2, 0, -0.5, 1), Right},
		{"bottom", math3d.V4(0, -2, -0.5, 1), Bottom},
		{"top", math3d.V4(0, 2, -0.5, 1), Top},
		{"far", math3d.V4(0, 0, -3, 1), Far},
		{"near", math3d.V4(0, 0, -0.01, 1), Near},
		{"left bottom far", math3d.V4(-5, -5, -2, 1), Left | Bottom | Far},
		{"right top", math3d.V4(1, 1, -0.5, 1), Right | Top},
		{"behind eye", math3d.V4(0, 0, 1, 1), Left | Bottom | Near},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.point, zMin); got != tc.expected {
				t.Errorf("Classify(%v) = %v, want %v", tc.point, got, tc.expected)
			}
		})
	}
}

func TestClassifyBoundaryTolerance(t *testing.T) {
	// Points on (or within Epsilon of) a boundary plane do not set its bit.
	tests := []struct {
		name  string
		point math3d.Vec4
		plane Outcode
	}{
		{"on left", math3d.V4(-0.5, 0, -0.5, 1), Left},
		{"just past left", math3d.V4(-0.5-Epsilon/2, 0, -0.5, 1), Left},
		{"on right", math3d.V4(0.5, 0, -0.5, 1), Right},
		{"just past right", math3d.V4(0.5+Epsilon/2, 0, -0.5, 1), Right},
		{"on bottom", math3d.V4(0, -0.5, -0.5, 1), Bottom},
		{"on top", math3d.V4(0, 0.5, -0.5, 1), Top},
		{"on far", math3d.V4(0, 0, -1, 1), Far},
		{"just past far", math3d.V4(0, 0, -1-Epsilon/2, 1), Far},
		{"on near", math3d.V4(0, 0, zMin, 1), Near},
		{"just past near", math3d.V4(0, 0, zMin+Epsilon/2, 1), Near},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.point, zMin); got.Has(tc.plane) {
				t.Errorf("Classify(%v) = %v, should not flag %v", tc.point, got, tc.plane)
			}
		})
	}
}

func TestOutcodeFirst(t *testing.T) {
	tests := []struct {
		code     Outcode
		expected Outcode
	}{
		{Inside, Inside},
		{Near, Near},
		{Far | Near, Far},
		{Left | Near, Left},
		{Right | Top | Far, Right},
		{Bottom | Top, Bottom},
	}

	for _, tc := range tests {
		t.Run(tc.code.String(), func(t *testing.T) {
			if got := tc.code.First(); got != tc.expected {
				t.Errorf("First(%v) = %v, want %v", tc.code, got, tc.expected)
			}
		})
	}
}

func TestOutcodeValues(t *testing.T) {
	if Left != 32 || Right != 16 || Bottom != 8 || Top != 4 || Far != 2 || Near != 1 {
		t.Errorf("plane bits = %d %d %d %d %d %d", Left, Right, Bottom, Top, Far, Near)
	}
	if s := (Left | Far).String(); s != "left|far" {
		t.Errorf("String = %q, want %q", s, "left|far")
	}
}
