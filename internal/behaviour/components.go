package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeMesh   ComponentType = "Mesh"
	ComponentTypeScript ComponentType = "Script"
	ComponentTypeLight  ComponentType = "Light"
	ComponentTypeCustom ComponentType = "Custom"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}

// MeshComponent holds a reference to a mesh/model
type MeshComponent struct {
	BaseComponent
	DiffuseColor [3]float32

	// Runtime reference
	Model  interface{} // The actual renderer.Model
	Loaded bool        // Whether mesh has been bound
}

func NewMeshComponent() *MeshComponent {
	return &MeshComponent{
		DiffuseColor: [3]float32{0.8, 0.8, 0.8},
	}
}

func (m *MeshComponent) GetComponentType() ComponentType {
	return ComponentTypeMesh
}

func (m *MeshComponent) GetTypeName() string {
	return "MeshComponent"
}

// SetMesh binds mesh to the component and to its GameObject so the component
// manager keeps the mesh transform in sync.
func (m *MeshComponent) SetMesh(mesh interface{}) {
	m.Model = mesh
	m.Loaded = true
	if m.GetGameObject() != nil {
		m.GetGameObject().SetModel(mesh)
	}
}

func (m *MeshComponent) Awake() {
	if m.Loaded && m.GetGameObject() != nil {
		m.GetGameObject().SetModel(m.Model)
	}
}

// LightComponent holds light data
type LightComponent struct {
	BaseComponent
	LightMode       string // "directional", "point"
	Color           [3]float32
	Intensity       float32
	AmbientStrength float32
}

func NewLightComponent() *LightComponent {
	return &LightComponent{
		LightMode:       "directional",
		Color:           [3]float32{1.0, 1.0, 1.0},
		Intensity:       1.0,
		AmbientStrength: 0.15,
	}
}

func (l *LightComponent) GetComponentType() ComponentType {
	return ComponentTypeLight
}

func (l *LightComponent) GetTypeName() string {
	return "LightComponent"
}

// Direction is the transform's forward axis.
func (l *LightComponent) Direction() mgl32.Vec3 {
	if l.GetGameObject() == nil {
		return mgl32.Vec3{0, -1, 0}
	}
	return l.GetGameObject().Transform.Forward()
}

// ScriptComponent is a wrapper for user scripts to identify them as scripts
type ScriptComponent struct {
	BaseComponent
	ScriptName string
	Script     Component // The actual script implementation
}

func NewScriptComponent(scriptName string, script Component) *ScriptComponent {
	return &ScriptComponent{
		ScriptName: scriptName,
		Script:     script,
	}
}

func (s *ScriptComponent) GetComponentType() ComponentType {
	return ComponentTypeScript
}

func (s *ScriptComponent) GetTypeName() string {
	return s.ScriptName
}

func (s *ScriptComponent) Awake() {
	if s.Script != nil {
		s.Script.SetGameObject(s.GetGameObject())
		s.Script.SetEnabled(true)
		s.Script.Awake()
	}
}

func (s *ScriptComponent) Start() {
	if s.Script != nil {
		s.Script.Start()
	}
}

func (s *ScriptComponent) Update() {
	if s.Script != nil && s.GetEnabled() {
		s.Script.Update()
	}
}

func (s *ScriptComponent) FixedUpdate() {
	if s.Script != nil && s.GetEnabled() {
		s.Script.FixedUpdate()
	}
}

func (s *ScriptComponent) OnDestroy() {
	if s.Script != nil {
		s.Script.OnDestroy()
	}
}

// AttachScript instantiates a registered script by name and adds it to obj.
// It returns nil when no script of that name is registered.
func AttachScript(obj *GameObject, name string) Component {
	script := CreateScript(name)
	if script == nil {
		return nil
	}
	obj.AddComponent(NewScriptComponent(name, script))
	return script
}

// Helper function to get component category
func GetComponentCategory(comp Component) ComponentType {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetComponentType()
	}
	return ComponentTypeCustom
}
