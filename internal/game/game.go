package game

import (
	"CubeWalker/internal/behaviour"
	"CubeWalker/internal/config"
	"CubeWalker/internal/logger"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Game is the top-level behaviour: it builds the scene on Start and feeds
// window input to the player and camera scripts.
type Game struct {
	cfg     config.Config
	engine  Engine
	objects *behaviour.ComponentManager

	Input *InputState
	Scene *Scene
}

// NewGame creates a game whose objects live in the global component manager,
// the one the engine loop updates.
func NewGame(cfg config.Config, eng Engine) *Game {
	return newGame(cfg, eng, behaviour.GlobalComponentManager)
}

func newGame(cfg config.Config, eng Engine, objects *behaviour.ComponentManager) *Game {
	return &Game{
		cfg:     cfg,
		engine:  eng,
		objects: objects,
		Input:   &InputState{},
	}
}

func (g *Game) Start() {
	scene, err := BuildScene(g.cfg, g.engine, g.objects, g.Input)
	if err != nil {
		logger.Log.Error("Could not build scene", zap.Error(err))
		return
	}
	g.Scene = scene
}

// Update has nothing to do: movement and the camera run as scripts.
func (g *Game) Update() {}

func (g *Game) UpdateFixed() {}

// Step advances the game by dt seconds outside the engine loop.
func (g *Game) Step(dt float64) {
	behaviour.Time.Advance(dt)
	g.objects.UpdateAll()
}

// HandleKey forwards a key event. Escape asks the engine to close.
func (g *Game) HandleKey(key glfw.Key, action glfw.Action) (quit bool) {
	if key == glfw.KeyEscape && action == glfw.Press {
		logger.Log.Info("Escape pressed, closing")
		return true
	}
	g.Input.HandleKey(key, action)
	return false
}

func (g *Game) HandleCursor(xpos, ypos float64) {
	g.Input.HandleCursor(xpos, ypos)
}

// HandleFocus releases held keys and the cursor anchor when the window
// loses focus.
func (g *Game) HandleFocus(focused bool) {
	if focused {
		return
	}
	g.Input.MoveForward, g.Input.MoveBackward = false, false
	g.Input.MoveLeft, g.Input.MoveRight = false, false
	g.Input.ResetCursor()
}
