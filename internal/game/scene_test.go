package game

import (
	"testing"

	"CubeWalker/internal/behaviour"
	"CubeWalker/internal/config"
	"CubeWalker/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeEngine struct {
	models     []*renderer.Model
	light      *renderer.Light
	clearColor mgl32.Vec3
	camera     *renderer.Camera
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{camera: renderer.NewDefaultCamera(1024, 768)}
}

func (e *fakeEngine) AddModel(model *renderer.Model) { e.models = append(e.models, model) }
func (e *fakeEngine) SetLight(light *renderer.Light) { e.light = light }
func (e *fakeEngine) SetClearColor(r, g, b float32)  { e.clearColor = mgl32.Vec3{r, g, b} }
func (e *fakeEngine) GetCamera() *renderer.Camera    { return e.camera }

func (e *fakeEngine) model(name string) *renderer.Model {
	for _, m := range e.models {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func buildDefaultScene(t *testing.T) (*Scene, *fakeEngine, *behaviour.ComponentManager) {
	t.Helper()
	eng := newFakeEngine()
	objects := behaviour.NewComponentManager()
	scene, err := BuildScene(config.Default(), eng, objects, &InputState{})
	if err != nil {
		t.Fatalf("BuildScene failed: %v", err)
	}
	return scene, eng, objects
}

func TestBuildSceneObjects(t *testing.T) {
	scene, eng, objects := buildDefaultScene(t)

	// ground + 5 obstacles + player
	if len(eng.models) != 7 {
		t.Errorf("Expected 7 models, got %d", len(eng.models))
	}
	// light + ground + 5 obstacles + player + camera
	if n := len(objects.GetAllGameObjects()); n != 9 {
		t.Errorf("Expected 9 game objects, got %d", n)
	}
	if len(scene.Obstacles) != 5 {
		t.Errorf("Expected 5 obstacles, got %d", len(scene.Obstacles))
	}
	if len(scene.Decorations) != 0 {
		t.Errorf("Decorations should be off by default, got %d", len(scene.Decorations))
	}
	if got := objects.FindGameObjectsWithTag(TagObstacle); len(got) != 5 {
		t.Errorf("Expected 5 tagged obstacles, got %d", len(got))
	}
}

func TestBuildScenePlacement(t *testing.T) {
	scene, eng, _ := buildDefaultScene(t)

	player := eng.model("Player")
	if player == nil {
		t.Fatal("Player model not added")
	}
	if player.Position != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Expected player at (0,1,0), got %v", player.Position)
	}
	if player.Scale != (mgl32.Vec3{0.5, 1, 0.5}) {
		t.Errorf("Expected player scale (0.5,1,0.5), got %v", player.Scale)
	}

	ground := eng.model("Ground")
	if ground == nil || ground.Scale != (mgl32.Vec3{20, 1, 20}) {
		t.Errorf("Expected ground scaled (20,1,20), got %+v", ground)
	}

	first := scene.Obstacles[0].Transform.Position
	if first != (mgl32.Vec3{3, 0.5, 2}) {
		t.Errorf("Expected first obstacle at (3,0.5,2), got %v", first)
	}
	if scene.Camera.Transform.Position != (mgl32.Vec3{0, 3, 5}) {
		t.Errorf("Expected camera at (0,3,5), got %v", scene.Camera.Transform.Position)
	}
}

func TestBuildSceneColours(t *testing.T) {
	_, eng, _ := buildDefaultScene(t)

	expectedSky := mgl32.Vec3{100.0 / 255, 150.0 / 255, 200.0 / 255}
	if !eng.clearColor.ApproxEqual(expectedSky) {
		t.Errorf("Expected sky %v, got %v", expectedSky, eng.clearColor)
	}

	player := eng.model("Player").Material.DiffuseColor
	if !mgl32.Vec3(player).ApproxEqual(mgl32.Vec3{0, 100.0 / 255, 1}) {
		t.Errorf("Unexpected player colour %v", player)
	}
	obstacle := eng.model("Obstacle1").Material.DiffuseColor
	if !mgl32.Vec3(obstacle).ApproxEqual(mgl32.Vec3{200.0 / 255, 100.0 / 255, 50.0 / 255}) {
		t.Errorf("Unexpected obstacle colour %v", obstacle)
	}
}

func TestBuildSceneLight(t *testing.T) {
	scene, eng, _ := buildDefaultScene(t)

	if eng.light == nil {
		t.Fatal("Light not set")
	}
	if eng.light.Position != (mgl32.Vec3{0, 6, 0}) {
		t.Errorf("Expected light at (0,6,0), got %v", eng.light.Position)
	}
	expected := mgl32.Vec3{0, -1, -1}.Normalize()
	if !eng.light.Direction.ApproxEqualThreshold(expected, 1e-4) {
		t.Errorf("Expected light direction %v, got %v", expected, eng.light.Direction)
	}

	comp, ok := behaviour.GetComponent[*behaviour.LightComponent](scene.Light)
	if !ok {
		t.Fatal("Light object has no LightComponent")
	}
	if !comp.Direction().ApproxEqualThreshold(expected, 1e-4) {
		t.Errorf("Component direction %v should match the light", comp.Direction())
	}
}

func TestBuildSceneLightMode(t *testing.T) {
	_, eng, _ := buildDefaultScene(t)
	if eng.light.Mode != "directional" {
		t.Errorf("Expected directional light by default, got %q", eng.light.Mode)
	}

	cfg := config.Default()
	cfg.Scene.Light.Mode = "point"
	eng = newFakeEngine()
	scene, err := BuildScene(cfg, eng, behaviour.NewComponentManager(), &InputState{})
	if err != nil {
		t.Fatalf("BuildScene failed: %v", err)
	}
	if eng.light.Mode != "point" {
		t.Errorf("Expected point light, got %q", eng.light.Mode)
	}
	comp, _ := behaviour.GetComponent[*behaviour.LightComponent](scene.Light)
	if comp.LightMode != "point" {
		t.Errorf("Expected component mode point, got %q", comp.LightMode)
	}
}

func TestBuildSceneWiresScripts(t *testing.T) {
	scene, eng, _ := buildDefaultScene(t)

	controller, ok := behaviour.GetComponent[*PlayerController](scene.Player)
	if !ok {
		t.Fatal("Player has no PlayerController")
	}
	if controller.Speed != 5 {
		t.Errorf("Expected speed 5, got %f", controller.Speed)
	}

	follow, ok := behaviour.GetComponent[*FollowCamera](scene.Camera)
	if !ok {
		t.Fatal("Camera has no FollowCamera")
	}
	if follow.Target != scene.Player || follow.View != eng.camera {
		t.Error("FollowCamera should target the player and drive the engine camera")
	}

	toPlayer := mgl32.Vec3{0, 1, 0}.Sub(mgl32.Vec3{0, 3, 5}).Normalize()
	if !eng.camera.Front.ApproxEqualThreshold(toPlayer, 1e-4) {
		t.Errorf("Camera should face the player on start, front %v want %v", eng.camera.Front, toPlayer)
	}
}

func TestBuildSceneWithDecorations(t *testing.T) {
	cfg := config.Default()
	cfg.Decorations.Count = 4
	cfg.Decorations.Threshold = -10

	eng := newFakeEngine()
	scene, err := BuildScene(cfg, eng, behaviour.NewComponentManager(), &InputState{})
	if err != nil {
		t.Fatalf("BuildScene failed: %v", err)
	}
	if len(scene.Decorations) != 4 {
		t.Errorf("Expected 4 decorations, got %d", len(scene.Decorations))
	}
	if len(eng.models) != 11 {
		t.Errorf("Expected 11 models, got %d", len(eng.models))
	}
}

func TestBuildSceneWithoutCamera(t *testing.T) {
	eng := newFakeEngine()
	eng.camera = nil
	if _, err := BuildScene(config.Default(), eng, behaviour.NewComponentManager(), &InputState{}); err == nil {
		t.Error("Expected an error when the engine has no camera")
	}
}
