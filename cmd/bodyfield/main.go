// Command bodyfield renders a field of pulsing bodies with HUD insets and an
// optional top-down minimap.
//
// Usage:
//
//	bodyfield [flags] [RESOURCE_DIR [OFFLINE]]
//
// A non-zero OFFLINE renders one frame to the capture path and exits.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/bodyfield/internal/app"
	"github.com/Faultbox/bodyfield/internal/config"
	"github.com/Faultbox/bodyfield/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== bodyfield ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		return 1
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("run failed", zap.Error(err))
		return 1
	}

	logger.Info("closed normally")
	return 0
}
