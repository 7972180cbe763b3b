package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"softpt/internal/mathutil"
	"softpt/internal/render"
	"softpt/internal/scene"
	"softpt/internal/trace"
)

// probe traces a single pixel's primary path and prints every bounce:
// which sphere was hit, where, the surface normal and the material.
// Useful for checking scene setup and sampler behavior without a full render.
func main() {
	px := flag.Int("x", 512, "Pixel x coordinate")
	py := flag.Int("y", 512, "Pixel y coordinate")
	width := flag.Int("width", 1024, "Frame width in pixels")
	height := flag.Int("height", 1024, "Frame height in pixels")
	bounces := flag.Int("bounces", 6, "Maximum path depth")
	seed := flag.Int64("seed", 1, "Random seed for the bounce directions")
	sky := flag.Bool("sky", false, "Sky gradient instead of black on ray miss")

	flag.Parse()

	if *px < 0 || *px >= *width || *py < 0 || *py >= *height {
		fmt.Fprintf(os.Stderr, "Error: pixel (%d,%d) outside %dx%d frame\n", *px, *py, *width, *height)
		os.Exit(1)
	}

	sc := scene.Default()
	cfg := trace.DefaultConfig()
	cfg.MaxBounces = *bounces
	cfg.Sky = *sky

	cam := render.NewCamera(
		mathutil.Vec3{0, 0.5, -1},
		mathutil.Vec3{0, 0, 0},
		mathutil.Vec3{0, 1, 0},
		*width, *height,
	)
	pixelIndex := int64(*py)*int64(*width) + int64(*px)
	ray := cam.Ray(*px, *py)
	rng := rand.New(rand.NewSource(*seed + pixelIndex))

	fmt.Printf("Pixel (%d,%d): origin=%v direction=%v\n", *px, *py, ray.Origin, ray.Direction)

	// Walk the path the integrator would take with this stream.
	walk := ray
	for bounce := 0; bounce < cfg.MaxBounces; bounce++ {
		hit, ok := trace.NearestHit(walk, sc)
		if !ok {
			fmt.Printf("  bounce %d: miss\n", bounce)
			break
		}
		sphere := sc.Spheres[hit.Sphere]
		material := sc.MaterialOf(sphere)
		normal := hit.Point.Sub(sphere.Center).Normalize()
		fmt.Printf("  bounce %d: sphere %d at %v\n", bounce, hit.Sphere, hit.Point)
		fmt.Printf("            normal=%v albedo=%v emissive=%v\n", normal, material.Albedo, material.Emissive)

		newDir := trace.RandomVector(normal, rng.Float64(), rng.Float64())
		walk = mathutil.Ray{
			Origin:    hit.Point.Add(normal.Scale(mathutil.Epsilon)),
			Direction: newDir,
		}
	}

	// Same stream again for the actual radiance estimate.
	rng = rand.New(rand.NewSource(*seed + pixelIndex))
	radiance := trace.TracePath(ray, sc, &cfg, rng, 0)
	fmt.Printf("Radiance: %v\n", radiance)
}
