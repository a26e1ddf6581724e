package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Component is the base interface for all components
// Components can be attached to models/game objects
type Component interface {
	// Lifecycle methods
	Awake()       // Called when component is first created
	Start()       // Called before first Update (after all Awakes)
	Update()      // Called every frame
	FixedUpdate() // Called at fixed time intervals
	OnDestroy()   // Called when component/object is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent provides default implementations for all Component methods
// User scripts can embed this to only override methods they need
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
}

func (c *BaseComponent) Awake()       {}
func (c *BaseComponent) Start()       {}
func (c *BaseComponent) Update()      {}
func (c *BaseComponent) FixedUpdate() {}
func (c *BaseComponent) OnDestroy()   {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

// GameObject represents an object in the scene
// This wraps around the renderer.Model to provide Unity-like functionality
type GameObject struct {
	Name       string
	Tag        string
	Active     bool
	Transform  *Transform
	Components []Component
	model      interface{} // Reference to renderer.Model (using interface to avoid circular import)
	started    bool
}

// Transform component
type Transform struct {
	BaseComponent
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}

func (t *Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// LookAt rotates the transform so Forward points at target. It reports false
// and leaves the rotation alone when target coincides with the position.
func (t *Transform) LookAt(target, up mgl32.Vec3) bool {
	rot, ok := LookRotation(target.Sub(t.Position), up)
	if ok {
		t.Rotation = rot
	}
	return ok
}

// LookRotation returns the right-handed orientation whose forward (-Z) axis is
// direction and whose up axis is as close to up as possible.
func LookRotation(direction, up mgl32.Vec3) (mgl32.Quat, bool) {
	if direction.Len() < 1e-6 {
		return mgl32.QuatIdent(), false
	}
	forward := direction.Normalize()
	right := forward.Cross(up)
	if right.Len() < 1e-6 {
		// Looking straight along up: any perpendicular right axis will do.
		right = forward.Cross(mgl32.Vec3{0, 0, 1})
		if right.Len() < 1e-6 {
			right = forward.Cross(mgl32.Vec3{1, 0, 0})
		}
	}
	right = right.Normalize()
	trueUp := right.Cross(forward)

	basis := mgl32.Mat3FromCols(right, trueUp, forward.Mul(-1))
	return mgl32.Mat4ToQuat(basis.Mat4()).Normalize(), true
}

// GameObject methods
func NewGameObject(name string) *GameObject {
	obj := &GameObject{
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		Transform: &Transform{
			Position: mgl32.Vec3{0, 0, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
	}
	obj.Transform.SetGameObject(obj)
	return obj
}

func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	component.Awake()
}

// GetComponent returns the first component of type T on obj.
func GetComponent[T Component](obj *GameObject) (T, bool) {
	for _, comp := range obj.Components {
		if typed, ok := comp.(T); ok {
			return typed, true
		}
		if script, ok := comp.(*ScriptComponent); ok {
			if typed, ok := script.Script.(T); ok {
				return typed, true
			}
		}
	}
	var zero T
	return zero, false
}

func (obj *GameObject) SetModel(model interface{}) {
	obj.model = model
}

func (obj *GameObject) GetModel() interface{} {
	return obj.model
}

type ModelInterface interface {
	GetPosition() mgl32.Vec3
	GetRotation() mgl32.Quat
	GetScale() mgl32.Vec3
	SetPositionVec(mgl32.Vec3)
	SetRotationQuat(mgl32.Quat)
	SetScaleVec(mgl32.Vec3)
	MarkDirty()
}

func (obj *GameObject) internalUpdate() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Update()
		}
	}
}

func (obj *GameObject) internalFixedUpdate() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.FixedUpdate()
		}
	}
}

func (obj *GameObject) internalStart() {
	if !obj.Active || obj.started {
		return
	}
	obj.started = true

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Start()
		}
	}
}

// Destroy runs OnDestroy on every component and deactivates obj.
func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.Active = false
}
