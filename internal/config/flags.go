package config

import (
	"flag"
	"fmt"
	"strconv"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagResources  = flag.String("resources", "", "Resource directory with meshes and shaders")
	flagOffline    = flag.Bool("offline", false, "Render one frame to -output and exit")
	flagOutput     = flag.String("output", "", "Offline capture path (.png or .bmp)")
	flagSeed       = flag.Uint64("seed", 0, "Random seed for the body field (0 = time based)")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagWatch      = flag.Bool("watch", false, "Reload shaders when they change on disk")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagResources != "" {
		cfg.Scene.ResourceDir = *flagResources
	}
	if *flagOffline {
		cfg.Capture.Offline = true
	}
	if *flagOutput != "" {
		cfg.Capture.Output = *flagOutput
	}
	if *flagSeed != 0 {
		cfg.Scene.Seed = *flagSeed
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagWatch {
		cfg.Dev.WatchAssets = true
	}
}

// applyArgs handles the positional form RESOURCE_DIR [OFFLINE]. OFFLINE is an
// integer; any non-zero value enables offline capture.
func applyArgs(cfg *Config, args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("too many arguments: %q", args)
	}
	if len(args) >= 1 {
		cfg.Scene.ResourceDir = args[0]
	}
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("OFFLINE argument %q: %w", args[1], err)
		}
		cfg.Capture.Offline = n != 0
	}
	return nil
}
