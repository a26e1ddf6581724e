package main

import (
	"CubeWalker/internal/behaviour"
	"CubeWalker/internal/config"
	"CubeWalker/internal/engine"
	"CubeWalker/internal/game"
	"CubeWalker/internal/logger"
	"os"
	"runtime"

	"go.uber.org/zap"
)

func init() {
	// GLFW and OpenGL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Load(config.Path(os.Args[1:]))
	if err != nil {
		logger.Init(logger.DefaultConfig())
		logger.Log.Fatal("Could not load config", zap.Error(err))
	}
	logger.Init(cfg.Log)
	defer logger.Sync()
	if cfg.Source == "" {
		logger.Log.Info("No config file found, using defaults")
	} else {
		logger.Log.Info("Config loaded", zap.String("path", cfg.Source))
	}

	gopher := engine.NewGopher(cfg.Window)
	sky := cfg.Scene.ClearColor.Floats()
	gopher.SetClearColor(sky[0], sky[1], sky[2])
	gopher.SetDebugMode(cfg.Render.Debug)
	gopher.SetFaceCulling(cfg.Render.FaceCulling)

	g := game.NewGame(cfg, gopher)
	gopher.SetInputHandler(g)
	behaviour.GlobalBehaviourManager.Add(g)

	if err := gopher.Render(); err != nil {
		logger.Log.Fatal("Engine stopped", zap.Error(err))
	}
}
