// Package main is the entry point for the interactive SolidNet viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/solidnet/internal/config"
	"github.com/Faultbox/solidnet/internal/logger"
	"github.com/Faultbox/solidnet/internal/viewer"
)

func main() {
	var flags config.Flags
	flags.Register(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(&flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := initLogger(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== SolidNet ===", zap.String("shape", cfg.Viewer.Shape))
	logger.Debug("config loaded", zap.Any("config", cfg))

	v, err := viewer.New(cfg)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}

func initLogger(cfg config.LoggingConfig) error {
	opts := logger.Options{Level: cfg.Level, Console: os.Stderr}
	if cfg.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.LogFile)
	}
	return logger.Init(opts)
}
