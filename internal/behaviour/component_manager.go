package behaviour

// ComponentManager owns the scene's GameObjects. It starts them on
// registration, updates them every frame and keeps bound models in step with
// their transforms.
type ComponentManager struct {
	gameObjects []*GameObject
}

var GlobalComponentManager = NewComponentManager()

func NewComponentManager() *ComponentManager {
	return &ComponentManager{}
}

// RegisterGameObject adds obj, moves a bound model to its transform and runs
// Start on its components.
func (cm *ComponentManager) RegisterGameObject(obj *GameObject) {
	cm.gameObjects = append(cm.gameObjects, obj)
	syncModel(obj)
	obj.internalStart()
}

// syncModel pushes the transform onto the bound model when they differ.
func syncModel(obj *GameObject) {
	model, ok := obj.GetModel().(ModelInterface)
	if !ok {
		return
	}
	t := obj.Transform
	if t.Position.ApproxEqual(model.GetPosition()) &&
		t.Rotation.ApproxEqual(model.GetRotation()) &&
		t.Scale.ApproxEqual(model.GetScale()) {
		return
	}
	model.SetPositionVec(t.Position)
	model.SetRotationQuat(t.Rotation)
	model.SetScaleVec(t.Scale)
}

func (cm *ComponentManager) FindGameObjectsWithTag(tag string) []*GameObject {
	var tagged []*GameObject
	for _, obj := range cm.gameObjects {
		if obj.Tag == tag {
			tagged = append(tagged, obj)
		}
	}
	return tagged
}

// UpdateAll updates active objects in registration order, syncing each
// object's model right after its own components ran.
func (cm *ComponentManager) UpdateAll() {
	for _, obj := range cm.gameObjects {
		if !obj.Active {
			continue
		}
		obj.internalUpdate()
		syncModel(obj)
	}
}

func (cm *ComponentManager) FixedUpdateAll() {
	for _, obj := range cm.gameObjects {
		if obj.Active {
			obj.internalFixedUpdate()
		}
	}
}

func (cm *ComponentManager) GetAllGameObjects() []*GameObject {
	return cm.gameObjects
}

// Clear destroys every object, calling OnDestroy on its components.
func (cm *ComponentManager) Clear() {
	for _, obj := range cm.gameObjects {
		obj.Destroy()
	}
	cm.gameObjects = nil
}
