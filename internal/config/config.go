// Package config handles application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics" toml:"graphics"`
	Scene    SceneConfig    `yaml:"scene" toml:"scene"`
	Capture  CaptureConfig  `yaml:"capture" toml:"capture"`
	Dev      DevConfig      `yaml:"dev" toml:"dev"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width" toml:"width"`
	Height     int  `yaml:"height" toml:"height"`
	Fullscreen bool `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool `yaml:"vsync" toml:"vsync"`
}

// SceneConfig describes the body field and the initial toggle state.
type SceneConfig struct {
	ResourceDir string  `yaml:"resource_dir" toml:"resource_dir"`
	Rows        int     `yaml:"rows" toml:"rows"`
	Cols        int     `yaml:"cols" toml:"cols"`
	GroundMin   float32 `yaml:"ground_min" toml:"ground_min"`
	GroundMax   float32 `yaml:"ground_max" toml:"ground_max"`
	// Seed 0 seeds from the wall clock.
	Seed        uint64  `yaml:"seed" toml:"seed"`
	Animate     bool    `yaml:"animate" toml:"animate"`
	Minimap     bool    `yaml:"minimap" toml:"minimap"`
	Cull        bool    `yaml:"cull" toml:"cull"`
	BunnyOffset float32 `yaml:"bunny_offset" toml:"bunny_offset"`
}

// CaptureConfig controls offline rendering.
type CaptureConfig struct {
	Offline bool   `yaml:"offline" toml:"offline"`
	Output  string `yaml:"output" toml:"output"`
}

// DevConfig holds development conveniences.
type DevConfig struct {
	WatchAssets bool `yaml:"watch_assets" toml:"watch_assets"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  640 * 3,
			Height: 480 * 3,
			VSync:  true,
		},
		Scene: SceneConfig{
			ResourceDir: "./resources",
			Rows:        11,
			Cols:        11,
			GroundMin:   -20,
			GroundMax:   20,
			Animate:     true,
			BunnyOffset: -0.333099,
		},
		Capture: CaptureConfig{
			Output: "output.png",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports settings the app cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Scene.ResourceDir == "" {
		errs = append(errs, errors.New("scene: resource_dir is required"))
	}
	if c.Scene.Rows < 0 || c.Scene.Cols < 0 {
		errs = append(errs, fmt.Errorf("scene: rows and cols must not be negative, got %d and %d", c.Scene.Rows, c.Scene.Cols))
	}
	if c.Scene.GroundMin >= c.Scene.GroundMax {
		errs = append(errs, fmt.Errorf("scene: ground_min %v must be below ground_max %v", c.Scene.GroundMin, c.Scene.GroundMax))
	}
	if c.Capture.Offline {
		switch strings.ToLower(filepath.Ext(c.Capture.Output)) {
		case ".png", ".bmp":
		default:
			errs = append(errs, fmt.Errorf("capture: output %q must end in .png or .bmp", c.Capture.Output))
		}
	}
	return errors.Join(errs...)
}
