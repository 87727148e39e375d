package math3d

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func vec4Near(a, b Vec4) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Z-b.Z) < eps && math.Abs(a.W-b.W) < eps
}

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"parallel", V3(2, 0, 0), V3(5, 0, 0), V3(0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Cross(tc.b); got != tc.expected {
				t.Errorf("Cross = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestVec3Unit(t *testing.T) {
	u, err := V3(0, 3, 4).Unit()
	if err != nil {
		t.Fatalf("Unit: %v", err)
	}
	if math.Abs(u.Len()-1) > eps || math.Abs(u.Y-0.6) > eps || math.Abs(u.Z-0.8) > eps {
		t.Errorf("Unit = %v, want (0, 0.6, 0.8)", u)
	}

	if _, err := (Vec3{}).Unit(); !errors.Is(err, ErrDegenerateVector) {
		t.Errorf("Unit(zero) error = %v, want ErrDegenerateVector", err)
	}

	if n := (Vec3{}).Normalize(); n != (Vec3{}) {
		t.Errorf("Normalize(zero) = %v, want zero", n)
	}
}

func TestVec3Dot(t *testing.T) {
	if d := V3(1, 2, 3).Dot(V3(4, 5, 6)); d != 32 {
		t.Errorf("Dot = %v, want 32", d)
	}
}

func TestMat4RowMajor(t *testing.T) {
	m := Translate(V3(1, 2, 3))
	if m[3] != 1 || m[7] != 2 || m[11] != 3 {
		t.Errorf("translation column = %v %v %v", m[3], m[7], m[11])
	}
	if m[12] != 0 || m[13] != 0 || m[14] != 0 || m[15] != 1 {
		t.Errorf("last row = %v, want (0, 0, 0, 1)", m[12:])
	}

	p := m.MulVec4(V4(1, 1, 1, 1))
	if p != V4(2, 3, 4, 1) {
		t.Errorf("MulVec4 = %v, want (2, 3, 4, 1)", p)
	}
}

func TestFromRows(t *testing.T) {
	m := FromRows(V4(1, 2, 3, 4), V4(5, 6, 7, 8), V4(9, 10, 11, 12), V4(13, 14, 15, 16))
	if m[1*4+2] != 7 {
		t.Errorf("m[1][2] = %v, want 7", m[1*4+2])
	}
	if m[3*4+0] != 13 {
		t.Errorf("m[3][0] = %v, want 13", m[3*4+0])
	}
}

func TestComposeOrder(t *testing.T) {
	// Translate then scale: scale is applied last.
	s := Scale(V3(2, 2, 2))
	tr := Translate(V3(1, 0, 0))
	v := V4(1, 0, 0, 1)

	got := Compose(s, tr).MulVec4(v)
	if !vec4Near(got, V4(4, 0, 0, 1)) {
		t.Errorf("Compose(s, t) * v = %v, want (4, 0, 0, 1)", got)
	}

	stepwise := s.MulVec4(tr.MulVec4(v))
	if !vec4Near(stepwise, got) {
		t.Errorf("s * (t * v) = %v, want %v", stepwise, got)
	}

	if Compose() != Identity() {
		t.Error("Compose() should be identity")
	}
}

func TestRotationsAndShear(t *testing.T) {
	tests := []struct {
		name     string
		m        Mat4
		v        Vec4
		expected Vec4
	}{
		{"rotate x", RotateX(math.Pi / 2), V4(0, 1, 0, 1), V4(0, 0, 1, 1)},
		{"rotate y", RotateY(math.Pi / 2), V4(0, 0, 1, 1), V4(1, 0, 0, 1)},
		{"rotate z", RotateZ(math.Pi / 2), V4(1, 0, 0, 1), V4(0, 1, 0, 1)},
		{"shear", ShearXY(0.5, -1), V4(0, 0, 2, 1), V4(1, -2, 2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.MulVec4(tc.v); !vec4Near(got, tc.expected) {
				t.Errorf("got %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestPerspectiveDivide(t *testing.T) {
	if p := V4(2, 4, 6, 2).PerspectiveDivide(); p != V3(1, 2, 3) {
		t.Errorf("PerspectiveDivide = %v, want (1, 2, 3)", p)
	}
	if p := V4(2, 4, 6, 0).PerspectiveDivide(); p != V3(2, 4, 6) {
		t.Errorf("PerspectiveDivide(w=0) = %v, want (2, 4, 6)", p)
	}
}
