package game

import (
	"CubeWalker/internal/behaviour"
	"CubeWalker/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	PlayerControllerScript = "PlayerController"
	FollowCameraScript     = "FollowCamera"
)

func init() {
	behaviour.RegisterScript(PlayerControllerScript, func() behaviour.Component {
		return &PlayerController{Speed: DefaultSpeed}
	})
	behaviour.RegisterScript(FollowCameraScript, func() behaviour.Component {
		return &FollowCamera{
			Offset:      mgl32.Vec3{0, 3, 5},
			Smoothing:   DefaultSmoothing,
			Sensitivity: 0.1,
		}
	})
}

// PlayerController walks its GameObject on the XZ plane from Input.
type PlayerController struct {
	behaviour.BaseComponent
	Input *InputState
	Speed float32
}

func (p *PlayerController) Update() {
	obj := p.GetGameObject()
	if obj == nil || p.Input == nil {
		return
	}
	obj.Transform.Position = StepPlayer(obj.Transform.Position, p.Input, p.Speed, behaviour.Time.DeltaTime)
}

// FollowCamera trails Target at Offset and keeps it in view. The result is
// copied onto View, the camera the renderer draws with.
type FollowCamera struct {
	behaviour.BaseComponent
	Target      *behaviour.GameObject
	View        *renderer.Camera
	Input       *InputState
	Offset      mgl32.Vec3
	Smoothing   float32
	MouseOrbit  bool
	Sensitivity float32
}

func (f *FollowCamera) Start() {
	obj := f.GetGameObject()
	if obj == nil || f.Target == nil {
		return
	}
	obj.Transform.LookAt(f.Target.Transform.Position, worldUp)
	f.syncView()
}

func (f *FollowCamera) Update() {
	obj := f.GetGameObject()
	if obj == nil || f.Target == nil {
		return
	}

	offset := f.Offset
	if f.Input != nil {
		if f.MouseOrbit {
			f.Input.ApplyMouseLook(f.Sensitivity)
			lo, hi := OrbitPitchLimits(offset)
			f.Input.Pitch = mgl32.Clamp(f.Input.Pitch, lo, hi)
			offset = OrbitOffset(offset, f.Input.Yaw, f.Input.Pitch)
		} else {
			f.Input.TakeMouseDelta()
		}
	}

	player := f.Target.Transform.Position
	goal := FollowTarget(player, offset)
	obj.Transform.Position = FollowStep(obj.Transform.Position, goal, f.Smoothing, behaviour.Time.DeltaTime)
	obj.Transform.LookAt(player, worldUp)
	f.syncView()
}

func (f *FollowCamera) syncView() {
	if f.View == nil {
		return
	}
	t := f.GetGameObject().Transform
	f.View.Position = t.Position
	f.View.SetOrientation(t.Rotation)
}
