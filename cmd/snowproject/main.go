// Package main is the entry point for the snow particle demo.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/bonobo-labs/internal/config"
	"github.com/Faultbox/bonobo-labs/internal/framework"
	"github.com/Faultbox/bonobo-labs/internal/logger"
	"github.com/Faultbox/bonobo-labs/internal/scenes/snow"
)

func init() {
	runtime.LockOSThread()
}

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

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, cfg.Logging.HistorySize); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== EDAN35 Snow Project ===")

	app := framework.New(cfg, "EDAN35: Snow Project")
	if err := app.Run(snow.New()); err != nil {
		logger.Error("snow project failed", zap.Error(err))
		return 1
	}
	return 0
}
