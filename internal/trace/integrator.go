package trace

import (
	"fmt"
	"math"
	"math/rand"

	"softpt/internal/mathutil"
	"softpt/internal/scene"
)

// Config controls the path integrator.
type Config struct {
	MaxBounces int           // hard recursion cutoff; bounce 0 is the primary ray
	Sky        bool          // vertical sky gradient on miss instead of black
	SkyTint    mathutil.Vec3 // gradient color at direction Y = 1
}

// DefaultConfig matches the reference renderer: 6 bounces, sky disabled.
func DefaultConfig() Config {
	return Config{
		MaxBounces: 6,
		SkyTint:    mathutil.Vec3{0.25, 0.55, 0.75},
	}
}

// Hit identifies the nearest surface a ray strikes.
type Hit struct {
	Sphere int // index into the scene's sphere list
	Point  mathutil.Vec3
}

// NearestHit linearly scans every sphere and returns the hit point with
// the smallest Euclidean distance from the ray origin. On exact distance
// ties the first sphere in scan order wins.
func NearestHit(ray mathutil.Ray, sc *scene.Scene) (Hit, bool) {
	nearest := Hit{Sphere: -1}
	nearestDistance := math.Inf(1)

	for i, s := range sc.Spheres {
		points := Intersect(ray, s)
		if len(points) == 0 {
			continue
		}
		distance := points[0].Distance(ray.Origin)
		if distance < nearestDistance {
			nearest = Hit{Sphere: i, Point: points[0]}
			nearestDistance = distance
		}
	}

	return nearest, nearest.Sphere >= 0
}

// TracePath recursively estimates the radiance arriving along ray.
// At each diffuse bounce a new direction is drawn from the hemisphere
// above the surface normal and the recursion continues from a point
// offset by Epsilon along the normal to dodge self-re-intersection.
// Recursion stops unconditionally at cfg.MaxBounces.
//
// The recurrence emissive + albedo * L(next) * dot(normal, dir) is kept
// exactly as the reference renderer computes it; changing the cosine
// weighting changes the output image.
func TracePath(ray mathutil.Ray, sc *scene.Scene, cfg *Config, rng *rand.Rand, bounce int) mathutil.Vec3 {
	if bounce == cfg.MaxBounces {
		return mathutil.Vec3{}
	}

	hit, ok := NearestHit(ray, sc)
	if !ok {
		if cfg.Sky {
			return mathutil.Vec3{}.Lerp(cfg.SkyTint, ray.Direction[1])
		}
		return mathutil.Vec3{}
	}

	sphere := sc.Spheres[hit.Sphere]
	normal := hit.Point.Sub(sphere.Center).Normalize()

	newDir := RandomVector(normal, rng.Float64(), rng.Float64())
	cosTheta := normal.Dot(newDir)
	if cosTheta < -mathutil.Epsilon {
		// Frame-construction defect, not a recoverable condition.
		panic(fmt.Sprintf("trace: sampled direction below hemisphere: normal=%v dir=%v", normal, newDir))
	}

	next := mathutil.Ray{
		Origin:    hit.Point.Add(normal.Scale(mathutil.Epsilon)),
		Direction: newDir,
	}

	material := sc.MaterialOf(sphere)
	indirect := material.Albedo.Mul(TracePath(next, sc, cfg, rng, bounce+1)).Scale(cosTheta)
	return material.Emissive.Add(indirect)
}
