// Package main is the entry point for the engine3d demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/engine3d/internal/app"
	"github.com/Faultbox/engine3d/internal/config"
	"github.com/Faultbox/engine3d/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, path, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.InitWithFileConfig(cfg.Logging.Level, cfg.LogFileConfig(), true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== engine3d ===", zap.String("config", path))
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg, path)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("frame loop error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}
