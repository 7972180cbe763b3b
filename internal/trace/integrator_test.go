package trace

import (
	"math"
	"math/rand"
	"testing"

	"softpt/internal/mathutil"
	"softpt/internal/scene"
)

func testRay() mathutil.Ray {
	return mathutil.Ray{Origin: mathutil.Vec3{0, 0, -5}, Direction: mathutil.Vec3{0, 0, 1}}
}

func TestTracePath_EmptySceneIsBlack(t *testing.T) {
	sc := &scene.Scene{}
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(1))

	got := TracePath(testRay(), sc, &cfg, rng, 0)
	if got != (mathutil.Vec3{}) {
		t.Errorf("empty scene radiance = %v, want zero", got)
	}
}

func TestTracePath_SkyGradientOnMiss(t *testing.T) {
	sc := &scene.Scene{}
	cfg := DefaultConfig()
	cfg.Sky = true
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name      string
		direction mathutil.Vec3
		want      mathutil.Vec3
	}{
		{"straight up", mathutil.Vec3{0, 1, 0}, cfg.SkyTint},
		{"horizon", mathutil.Vec3{0, 0, 1}, mathutil.Vec3{}},
		{"halfway", mathutil.Vec3{0, 0.5, 0}, cfg.SkyTint.Scale(0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := mathutil.Ray{Origin: mathutil.Vec3{}, Direction: tt.direction}
			got := TracePath(ray, sc, &cfg, rng, 0)
			if !got.IsEquivalent(tt.want, 1e-12) {
				t.Errorf("sky radiance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTracePath_EmissiveOnlySphere(t *testing.T) {
	// Zero albedo kills every recursive term, so the radiance must be
	// exactly the emissive value of the sphere the primary ray hits.
	emissive := mathutil.Vec3{3, 5, 7}
	sc := &scene.Scene{
		Materials: []scene.Material{{Emissive: emissive}},
		Spheres:   []scene.Sphere{{Center: mathutil.Vec3{0, 0, 0}, Radius: 1, Material: 0}},
	}
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(1))

	got := TracePath(testRay(), sc, &cfg, rng, 0)
	if got != emissive {
		t.Errorf("radiance = %v, want %v", got, emissive)
	}
}

func TestTracePath_NearestSphereWins(t *testing.T) {
	near := mathutil.Vec3{1, 0, 0}
	far := mathutil.Vec3{0, 1, 0}
	sc := &scene.Scene{
		Materials: []scene.Material{{Emissive: near}, {Emissive: far}},
		Spheres: []scene.Sphere{
			{Center: mathutil.Vec3{0, 0, 10}, Radius: 1, Material: 1},
			{Center: mathutil.Vec3{0, 0, 0}, Radius: 1, Material: 0},
		},
	}
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(1))

	got := TracePath(testRay(), sc, &cfg, rng, 0)
	if got != near {
		t.Errorf("radiance = %v, want nearer sphere's emissive %v", got, near)
	}
}

func TestTracePath_TieBreakFirstInScanOrder(t *testing.T) {
	first := mathutil.Vec3{9, 0, 0}
	sc := &scene.Scene{
		Materials: []scene.Material{{Emissive: first}, {Emissive: mathutil.Vec3{0, 9, 0}}},
		Spheres: []scene.Sphere{
			{Center: mathutil.Vec3{0, 0, 0}, Radius: 1, Material: 0},
			{Center: mathutil.Vec3{0, 0, 0}, Radius: 1, Material: 1},
		},
	}
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(1))

	got := TracePath(testRay(), sc, &cfg, rng, 0)
	if got != first {
		t.Errorf("radiance = %v, want first sphere's emissive %v", got, first)
	}
}

func TestTracePath_BounceBudget(t *testing.T) {
	// At the cutoff depth no radiance is gathered, emissive or not.
	sc := &scene.Scene{
		Materials: []scene.Material{{Albedo: mathutil.Vec3{1, 1, 1}, Emissive: mathutil.Vec3{10, 10, 10}}},
		Spheres:   []scene.Sphere{{Center: mathutil.Vec3{0, 0, 0}, Radius: 1, Material: 0}},
	}
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(1))

	got := TracePath(testRay(), sc, &cfg, rng, cfg.MaxBounces)
	if got != (mathutil.Vec3{}) {
		t.Errorf("radiance at cutoff depth = %v, want zero", got)
	}
}

func TestTracePath_TerminatesInsideEnclosure(t *testing.T) {
	// Ray origin inside a large emissive sphere with full albedo: the
	// result must stay finite and the recursion must end at the cutoff.
	sc := &scene.Scene{
		Materials: []scene.Material{{Albedo: mathutil.Vec3{1, 1, 1}, Emissive: mathutil.Vec3{1, 1, 1}}},
		Spheres:   []scene.Sphere{{Center: mathutil.Vec3{0, 0, 0}, Radius: 100, Material: 0}},
	}
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(7))

	ray := mathutil.Ray{Origin: mathutil.Vec3{0, 0, 0}, Direction: mathutil.Vec3{0, 0, 1}}
	got := TracePath(ray, sc, &cfg, rng, 0)

	for i := 0; i < 3; i++ {
		if math.IsNaN(got[i]) || math.IsInf(got[i], 0) {
			t.Fatalf("radiance = %v, want finite", got)
		}
	}
	// The primary hit alone contributes its emissive term.
	if got[0] < 1-1e-6 {
		t.Errorf("radiance = %v, want at least the first emissive term", got)
	}
}

func TestNearestHit_MissReportsFalse(t *testing.T) {
	sc := &scene.Scene{
		Materials: []scene.Material{{}},
		Spheres:   []scene.Sphere{{Center: mathutil.Vec3{0, 50, 0}, Radius: 1, Material: 0}},
	}
	if _, ok := NearestHit(testRay(), sc); ok {
		t.Error("expected miss for ray pointing away from the only sphere")
	}
}
