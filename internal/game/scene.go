package game

import (
	"CubeWalker/internal/behaviour"
	"CubeWalker/internal/config"
	"CubeWalker/internal/logger"
	"CubeWalker/internal/renderer"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Tags used to find scene objects through the component manager.
const (
	TagGround     = "Ground"
	TagObstacle   = "Obstacle"
	TagDecoration = "Decoration"
	TagPlayer     = "Player"
	TagCamera     = "MainCamera"
	TagLight      = "Light"
)

// Engine is the slice of the engine the game needs to build and show a scene.
type Engine interface {
	AddModel(model *renderer.Model)
	SetLight(light *renderer.Light)
	SetClearColor(r, g, b float32)
	GetCamera() *renderer.Camera
}

type Scene struct {
	Light       *behaviour.GameObject
	Ground      *behaviour.GameObject
	Obstacles   []*behaviour.GameObject
	Decorations []*behaviour.GameObject
	Player      *behaviour.GameObject
	Camera      *behaviour.GameObject
}

// BuildScene creates the level and registers every object with objects. The
// player is registered before the camera so it moves first each frame.
func BuildScene(cfg config.Config, eng Engine, objects *behaviour.ComponentManager, input *InputState) (*Scene, error) {
	view := eng.GetCamera()
	if view == nil {
		return nil, fmt.Errorf("build scene: engine has no camera")
	}

	sky := cfg.Scene.ClearColor.Floats()
	eng.SetClearColor(sky[0], sky[1], sky[2])

	scene := &Scene{}
	scene.Light = spawnLight(cfg.Scene.Light, eng, objects)

	scene.Ground = spawnMesh(eng, objects, meshSpec{
		name:  "Ground",
		tag:   TagGround,
		model: renderer.NewPlaneModel(),
		scale: cfg.Scene.GroundScale,
		color: cfg.Scene.GroundColor,
	})

	for i, pos := range cfg.Scene.Obstacles {
		scene.Obstacles = append(scene.Obstacles, spawnMesh(eng, objects, meshSpec{
			name:     fmt.Sprintf("Obstacle%d", i+1),
			tag:      TagObstacle,
			model:    renderer.NewCubeModel(),
			position: pos,
			scale:    mgl32.Vec3{1, 1, 1},
			color:    cfg.Scene.ObstacleColor,
		}))
	}

	avoid := append([]mgl32.Vec3{cfg.Player.Position}, cfg.Scene.Obstacles...)
	for i, pos := range ScatterDecorations(cfg.Decorations, cfg.Scene.GroundScale, avoid) {
		scene.Decorations = append(scene.Decorations, spawnMesh(eng, objects, meshSpec{
			name:     fmt.Sprintf("Decoration%d", i+1),
			tag:      TagDecoration,
			model:    renderer.NewCubeModel(),
			position: pos,
			scale:    mgl32.Vec3{decorationScale, decorationScale, decorationScale},
			color:    cfg.Decorations.Color,
		}))
	}

	scene.Player = spawnPlayer(cfg.Player, eng, objects, input)
	scene.Camera = spawnCamera(cfg.Camera, view, scene.Player, objects, input)

	logger.Log.Info("Scene built",
		zap.Int("obstacles", len(scene.Obstacles)),
		zap.Int("decorations", len(scene.Decorations)),
		zap.Int("objects", len(objects.GetAllGameObjects())))
	return scene, nil
}

type meshSpec struct {
	name     string
	tag      string
	model    *renderer.Model
	position mgl32.Vec3
	scale    mgl32.Vec3
	color    config.Color
}

func spawnMesh(eng Engine, objects *behaviour.ComponentManager, spec meshSpec) *behaviour.GameObject {
	obj := behaviour.NewGameObject(spec.name)
	obj.Tag = spec.tag
	obj.Transform.Position = spec.position
	obj.Transform.Scale = spec.scale

	color := spec.color.Floats()
	spec.model.Name = spec.name
	spec.model.SetDiffuseColor(color[0], color[1], color[2])

	mesh := behaviour.NewMeshComponent()
	mesh.DiffuseColor = color
	obj.AddComponent(mesh)
	mesh.SetMesh(spec.model)

	objects.RegisterGameObject(obj)
	eng.AddModel(spec.model)
	return obj
}

func spawnLight(cfg config.LightConfig, eng Engine, objects *behaviour.ComponentManager) *behaviour.GameObject {
	obj := behaviour.NewGameObject("DirectionalLight")
	obj.Tag = TagLight
	obj.Transform.Position = cfg.Position
	obj.Transform.Rotation = mgl32.QuatRotate(mgl32.DegToRad(cfg.PitchDeg), mgl32.Vec3{1, 0, 0})

	comp := behaviour.NewLightComponent()
	if cfg.Mode != "" {
		comp.LightMode = cfg.Mode
	}
	comp.Color = cfg.Color.Floats()
	comp.Intensity = cfg.Intensity
	obj.AddComponent(comp)
	objects.RegisterGameObject(obj)

	light := renderer.CreateDirectionalLightAt(obj.Transform.Position, obj.Transform.Rotation, mgl32.Vec3(comp.Color), comp.Intensity)
	light.AmbientStrength = comp.AmbientStrength
	light.Mode = comp.LightMode
	eng.SetLight(light)
	return obj
}

func spawnPlayer(cfg config.PlayerConfig, eng Engine, objects *behaviour.ComponentManager, input *InputState) *behaviour.GameObject {
	obj := behaviour.NewGameObject("Player")
	obj.Tag = TagPlayer
	obj.Transform.Position = cfg.Position
	obj.Transform.Scale = cfg.Scale

	model := renderer.NewCubeModel()
	model.Name = "Player"
	color := cfg.Color.Floats()
	model.SetDiffuseColor(color[0], color[1], color[2])
	mesh := behaviour.NewMeshComponent()
	mesh.DiffuseColor = color
	obj.AddComponent(mesh)
	mesh.SetMesh(model)

	if script, ok := behaviour.AttachScript(obj, PlayerControllerScript).(*PlayerController); ok {
		script.Input = input
		script.Speed = cfg.Speed
	}

	objects.RegisterGameObject(obj)
	eng.AddModel(model)
	return obj
}

func spawnCamera(cfg config.CameraConfig, view *renderer.Camera, player *behaviour.GameObject, objects *behaviour.ComponentManager, input *InputState) *behaviour.GameObject {
	obj := behaviour.NewGameObject("Camera")
	obj.Tag = TagCamera
	obj.Transform.Position = cfg.Position

	view.SetFov(cfg.Fov)
	if script, ok := behaviour.AttachScript(obj, FollowCameraScript).(*FollowCamera); ok {
		script.Target = player
		script.View = view
		script.Input = input
		script.Offset = cfg.Offset
		script.Smoothing = cfg.Smoothing
		script.MouseOrbit = cfg.MouseOrbit
		script.Sensitivity = cfg.Sensitivity
	}

	objects.RegisterGameObject(obj)
	return obj
}
