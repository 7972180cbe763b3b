package render

import (
	"fmt"
	"image"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"softpt/internal/mathutil"
	"softpt/internal/postprocess"
	"softpt/internal/scene"
	"softpt/internal/trace"
)

// Options holds everything the frame driver needs for one render.
type Options struct {
	Width        int
	Height       int
	CameraPos    mathutil.Vec3
	CameraTarget mathutil.Vec3
	CameraUp     mathutil.Vec3
	Samples      int   // radiance samples per pixel
	Workers      int   // 0 = runtime.NumCPU()
	Seed         int64 // base seed for the per-pixel random streams
	Supersample  int   // render at N× and downscale; <=1 disables
	Progress     bool  // periodic rows/sec reporting to stdout
	Trace        trace.Config
}

// Render traces every pixel and returns the linear radiance buffer at
// the full (possibly supersampled) resolution.
//
// Rows are distributed over a worker pool. Every pixel gets its own
// random stream seeded from Seed and the pixel index, so the output is
// bit-identical for a given seed regardless of worker count.
func Render(opts Options, sc *scene.Scene) *FrameBuffer {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	w, h := opts.Width, opts.Height
	cam := NewCamera(opts.CameraPos, opts.CameraTarget, opts.CameraUp, w, h)
	fb := NewFrameBuffer(w, h)

	var rendered atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if opts.Progress {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					n := rendered.Load()
					if n > 0 {
						elapsed := time.Since(start).Seconds()
						fmt.Printf("  [%d/%d] %.1f rows/sec\n", n, h, float64(n)/elapsed)
					}
				}
			}
		}()
	}

	// Worker pool over rows
	rowChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowChan {
				renderRow(fb, cam, sc, opts, y)
				rendered.Add(1)
			}
		}()
	}

	for y := 0; y < h; y++ {
		rowChan <- y
	}
	close(rowChan)

	wg.Wait()
	close(done)

	return fb
}

func renderRow(fb *FrameBuffer, cam Camera, sc *scene.Scene, opts Options, y int) {
	for x := 0; x < opts.Width; x++ {
		rng := rand.New(rand.NewSource(opts.Seed + int64(y*opts.Width+x)))
		ray := cam.Ray(x, y)

		var sum mathutil.Vec3
		for s := 0; s < opts.Samples; s++ {
			sum = sum.Add(trace.TracePath(ray, sc, &opts.Trace, rng, 0))
		}
		fb.Set(x, y, sum.Scale(1.0/float64(opts.Samples)))
	}
}

// Image renders the scene and returns the tone-mapped image at the
// requested output size, applying the supersample downscale if enabled.
func Image(opts Options, sc *scene.Scene) *image.NRGBA {
	outW, outH := opts.Width, opts.Height
	if opts.Supersample > 1 {
		opts.Width *= opts.Supersample
		opts.Height *= opts.Supersample
	}

	img := Render(opts, sc).ToNRGBA()
	if opts.Supersample > 1 {
		img = postprocess.Downsample(img, outW, outH)
	}
	return img
}
