package geom2d

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		name string
		tri  Triangle
		want float64
	}{
		{
			name: "unit right triangle CCW",
			tri:  Triangle{{0, 0}, {1, 0}, {0, 1}},
			want: 0.5,
		},
		{
			name: "unit right triangle CW",
			tri:  Triangle{{0, 0}, {0, 1}, {1, 0}},
			want: 0.5,
		},
		{
			name: "degenerate",
			tri:  Triangle{{0, 0}, {1, 1}, {2, 2}},
			want: 0,
		},
	} {
		got := test.tri.Area()
		if math.Abs(got-test.want) > 1e-12 {
			t.Errorf("%s: Area() = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestTriangleSignedArea(t *testing.T) {
	t.Parallel()
	ccw := Triangle{{0, 0}, {1, 0}, {0, 1}}
	cw := Triangle{{0, 0}, {0, 1}, {1, 0}}
	if a := ccw.SignedArea(); a <= 0 {
		t.Errorf("CCW triangle signed area = %v, want > 0", a)
	}
	if a := cw.SignedArea(); a >= 0 {
		t.Errorf("CW triangle signed area = %v, want < 0", a)
	}
}

func TestTriangleCentroid(t *testing.T) {
	t.Parallel()
	tri := Triangle{{0, 0}, {3, 0}, {0, 3}}
	want := Point{1, 1}
	if got := tri.Centroid(); got != want {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
}

func TestTriangleDegenerate(t *testing.T) {
	t.Parallel()
	ok := Triangle{{0, 0}, {1, 0}, {0, 1}}
	if ok.Degenerate(1e-12) {
		t.Error("well-formed triangle reported degenerate")
	}
	bad := Triangle{{0, 0}, {1, 1}, {2, 2}}
	if !bad.Degenerate(1e-12) {
		t.Error("collinear triangle not reported degenerate")
	}
}
