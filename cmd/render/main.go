package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"softpt/internal/config"
	"softpt/internal/encode"
	"softpt/internal/mathutil"
	"softpt/internal/render"
	"softpt/internal/scene"
	"softpt/internal/trace"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Output width in pixels (default: 1024)")
	height := flag.Int("height", 0, "Output height in pixels (default: 1024)")
	samples := flag.Int("samples", 0, "Radiance samples per pixel (default: 4)")
	bounces := flag.Int("bounces", 0, "Maximum path depth (default: 6)")
	supersample := flag.Int("supersample", 0, "Render at N× and downscale (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	seed := flag.Int64("seed", 0, "Base random seed (default: 1)")
	sky := flag.Bool("sky", false, "Sky gradient instead of black on ray miss")
	format := flag.String("format", "", "Output format: webp, tga or png (default: webp)")
	output := flag.String("output", "", "Output file (default: render.webp)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Output:      *output,
		Format:      *format,
		Width:       *width,
		Height:      *height,
		Samples:     *samples,
		Bounces:     *bounces,
		Supersample: *supersample,
		Workers:     *workers,
		Seed:        *seed,
		Sky:         *sky,
	})

	sc := scene.Default()

	traceCfg := trace.DefaultConfig()
	traceCfg.MaxBounces = cfg.Bounces
	traceCfg.Sky = cfg.Sky

	opts := render.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		CameraPos:    mathutil.Vec3(cfg.CameraPos),
		CameraTarget: mathutil.Vec3(cfg.CameraTarget),
		CameraUp:     mathutil.Vec3(cfg.CameraUp),
		Samples:      cfg.Samples,
		Workers:      cfg.Workers,
		Seed:         cfg.Seed,
		Supersample:  cfg.Supersample,
		Progress:     true,
		Trace:        traceCfg,
	}

	fmt.Printf("SoftPT sphere path tracer → %s\n", cfg.Format)
	fmt.Printf("Resolution: %dx%d, Samples: %d, Bounces: %d, Workers: %d\n",
		cfg.Width, cfg.Height, cfg.Samples, cfg.Bounces, cfg.Workers)
	fmt.Printf("Spheres: %d, Seed: %d\n", len(sc.Spheres), cfg.Seed)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	img := render.Image(opts, sc)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	if err := encode.WriteFile(cfg.Output, img, cfg.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", cfg.Output)
}
