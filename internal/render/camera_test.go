package render

import (
	"math"
	"testing"

	"softpt/internal/mathutil"
)

func testCamera(w, h int) Camera {
	return NewCamera(
		mathutil.Vec3{0, 0.5, -1},
		mathutil.Vec3{0, 0, 0},
		mathutil.Vec3{0, 1, 0},
		w, h,
	)
}

func TestCamera_RayProperties(t *testing.T) {
	cam := testCamera(64, 64)

	for _, px := range [][2]int{{0, 0}, {32, 32}, {63, 63}, {10, 50}} {
		ray := cam.Ray(px[0], px[1])
		if ray.Origin != (mathutil.Vec3{0, 0.5, -1}) {
			t.Errorf("pixel %v: origin = %v, want camera position", px, ray.Origin)
		}
		if d := math.Abs(ray.Direction.Len() - 1); d > 1e-9 {
			t.Errorf("pixel %v: |direction| = %v, want 1", px, ray.Direction.Len())
		}
	}
}

func TestCamera_DistinctPixelsDistinctRays(t *testing.T) {
	cam := testCamera(64, 64)

	a := cam.Ray(0, 0).Direction
	b := cam.Ray(63, 0).Direction
	c := cam.Ray(0, 63).Direction
	if a.IsEquivalent(b, 1e-9) || a.IsEquivalent(c, 1e-9) || b.IsEquivalent(c, 1e-9) {
		t.Errorf("corner rays not distinct: %v %v %v", a, b, c)
	}
}

func TestCamera_Deterministic(t *testing.T) {
	a := testCamera(128, 128).Ray(17, 91)
	b := testCamera(128, 128).Ray(17, 91)
	if a != b {
		t.Errorf("same pixel produced different rays: %v vs %v", a, b)
	}
}
