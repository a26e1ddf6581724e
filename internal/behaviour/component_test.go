package behaviour

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj == nil {
		t.Fatal("NewGameObject returned nil")
	}

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if !obj.Active {
		t.Error("New GameObject should be active by default")
	}

	if obj.Transform == nil {
		t.Fatal("Transform should not be nil")
	}

	if obj.Transform.Position != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Expected position (0,0,0), got %v", obj.Transform.Position)
	}

	if obj.Transform.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected scale (1,1,1), got %v", obj.Transform.Scale)
	}
}

func TestTransformTranslate(t *testing.T) {
	transform := &Transform{
		Position: mgl32.Vec3{5, 5, 5},
		Scale:    mgl32.Vec3{1, 1, 1},
	}

	transform.Translate(mgl32.Vec3{1, 2, 3})

	expected := mgl32.Vec3{6, 7, 8}
	if transform.Position != expected {
		t.Errorf("Expected position %v, got %v", expected, transform.Position)
	}
}

type MockComponent struct {
	BaseComponent
	startCalled  bool
	updateCalled bool
	fixedCalled  bool
	updates      int
	onUpdate     func()
}

func (m *MockComponent) Start() {
	m.startCalled = true
}

func (m *MockComponent) Update() {
	m.updateCalled = true
	m.updates++
	if m.onUpdate != nil {
		m.onUpdate()
	}
}

func (m *MockComponent) FixedUpdate() {
	m.fixedCalled = true
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)

	if len(obj.Components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.Components))
	}

	if comp.GetGameObject() != obj {
		t.Error("Component's GameObject reference not set correctly")
	}
}

func TestGetComponentByType(t *testing.T) {
	obj := NewGameObject("Test")
	mesh := NewMeshComponent()
	obj.AddComponent(&MockComponent{})
	obj.AddComponent(mesh)

	found, ok := GetComponent[*MeshComponent](obj)
	if !ok {
		t.Fatal("GetComponent should find the mesh component")
	}
	if found != mesh {
		t.Error("GetComponent returned the wrong component")
	}

	if _, ok := GetComponent[*LightComponent](obj); ok {
		t.Error("GetComponent should not find a missing light component")
	}
}

func TestGetComponentLooksInsideScripts(t *testing.T) {
	obj := NewGameObject("Test")
	script := &MockComponent{}
	obj.AddComponent(NewScriptComponent("Mock", script))

	found, ok := GetComponent[*MockComponent](obj)
	if !ok || found != script {
		t.Error("GetComponent should unwrap script components")
	}
	if script.GetGameObject() != obj {
		t.Error("Wrapped script should receive the GameObject on Awake")
	}
}

func TestLookRotationForward(t *testing.T) {
	cases := []mgl32.Vec3{
		{0, 0, -1},
		{1, 0, 0},
		{0, -2, -5},
		{-3, 1, 4},
	}

	for _, dir := range cases {
		rot, ok := LookRotation(dir, mgl32.Vec3{0, 1, 0})
		if !ok {
			t.Fatalf("LookRotation(%v) should succeed", dir)
		}
		forward := rot.Rotate(mgl32.Vec3{0, 0, -1})
		if !forward.ApproxEqualThreshold(dir.Normalize(), 1e-4) {
			t.Errorf("Forward for %v: got %v", dir, forward)
		}
		up := rot.Rotate(mgl32.Vec3{0, 1, 0})
		if up.Y() <= 0 {
			t.Errorf("Up for %v should stay above the horizon, got %v", dir, up)
		}
	}
}

func TestLookRotationDegenerate(t *testing.T) {
	if _, ok := LookRotation(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}); ok {
		t.Error("Zero direction should report false")
	}

	rot, ok := LookRotation(mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 1, 0})
	if !ok {
		t.Fatal("Looking straight down should still produce a rotation")
	}
	forward := rot.Rotate(mgl32.Vec3{0, 0, -1})
	if !forward.ApproxEqualThreshold(mgl32.Vec3{0, -1, 0}, 1e-4) {
		t.Errorf("Expected forward (0,-1,0), got %v", forward)
	}
}

func TestTransformLookAtKeepsRotationWhenTargetIsSelf(t *testing.T) {
	obj := NewGameObject("Cam")
	obj.Transform.Position = mgl32.Vec3{1, 2, 3}
	obj.Transform.Rotation = mgl32.QuatRotate(1, mgl32.Vec3{0, 1, 0})
	before := obj.Transform.Rotation

	if obj.Transform.LookAt(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 1, 0}) {
		t.Error("LookAt at own position should report false")
	}
	if obj.Transform.Rotation != before {
		t.Error("Rotation should be unchanged")
	}
}
