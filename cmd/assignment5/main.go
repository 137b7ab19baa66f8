// Package main is the entry point for the asteroid avoidance game.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/bonobo-labs/internal/config"
	"github.com/Faultbox/bonobo-labs/internal/framework"
	"github.com/Faultbox/bonobo-labs/internal/logger"
	"github.com/Faultbox/bonobo-labs/internal/scenes/assignment5"
)

func init() {
	// GL and the window must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
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

	logger.Info("=== EDAF80 Assignment 5: Asteroids ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	app := framework.New(cfg, "EDAF80: Assignment 5")
	if err := app.Run(assignment5.New()); err != nil {
		logger.Error("assignment 5 failed", zap.Error(err))
		return 1
	}

	logger.Info("closed normally")
	return 0
}
