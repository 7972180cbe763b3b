package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable render settings.
type Config struct {
	// Output
	Output string `json:"output"`
	Format string `json:"format"` // webp, tga or png

	// Render settings
	Width       int   `json:"width"`
	Height      int   `json:"height"`
	Samples     int   `json:"samples"`
	Bounces     int   `json:"bounces"`
	Supersample int   `json:"supersample"`
	Workers     int   `json:"workers"`
	Seed        int64 `json:"seed"`
	Sky         bool  `json:"sky"`

	// Camera
	CameraPos    [3]float64 `json:"camera_pos"`
	CameraTarget [3]float64 `json:"camera_target"`
	CameraUp     [3]float64 `json:"camera_up"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Output      string
	Format      string
	Width       int
	Height      int
	Samples     int
	Bounces     int
	Supersample int
	Workers     int
	Seed        int64
	Sky         bool
}

// Resolve merges CLI flags over file values and fills in defaults.
// Flags take priority when non-zero/non-empty; -sky can only enable.
func (c *Config) Resolve(flags Flags) {
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Samples > 0 {
		c.Samples = flags.Samples
	}
	if flags.Bounces > 0 {
		c.Bounces = flags.Bounces
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Sky {
		c.Sky = true
	}

	// Defaults
	if c.Output == "" {
		c.Output = "render.webp"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Width <= 0 {
		c.Width = 1024
	}
	if c.Height <= 0 {
		c.Height = 1024
	}
	if c.Samples <= 0 {
		c.Samples = 4
	}
	if c.Bounces <= 0 {
		c.Bounces = 6
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Seed == 0 {
		c.Seed = 1
	}

	// A zero camera vector is degenerate; fall back to the reference
	// viewpoint looking at the origin.
	if c.CameraPos == ([3]float64{}) {
		c.CameraPos = [3]float64{0, 0.5, -1}
	}
	if c.CameraUp == ([3]float64{}) {
		c.CameraUp = [3]float64{0, 1, 0}
	}
}
