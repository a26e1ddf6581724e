package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const maxPitch = 89.0

// InputState is the player's view of the keyboard and mouse for one frame.
type InputState struct {
	MoveForward  bool
	MoveBackward bool
	MoveLeft     bool
	MoveRight    bool

	// MouseDelta accumulates cursor motion until TakeMouseDelta is called.
	MouseDelta mgl32.Vec2
	Yaw        float32
	Pitch      float32

	lastX, lastY float64
	hasCursor    bool
}

// HandleKey updates the movement flags. Press and repeat hold a key down,
// release lets it go. It reports whether the key is one of W, A, S or D.
func (in *InputState) HandleKey(key glfw.Key, action glfw.Action) bool {
	var flag *bool
	switch key {
	case glfw.KeyW:
		flag = &in.MoveForward
	case glfw.KeyS:
		flag = &in.MoveBackward
	case glfw.KeyA:
		flag = &in.MoveLeft
	case glfw.KeyD:
		flag = &in.MoveRight
	default:
		return false
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		*flag = true
	case glfw.Release:
		*flag = false
	}
	return true
}

// HandleCursor turns absolute cursor positions into a delta. The first
// position only primes the tracker.
func (in *InputState) HandleCursor(xpos, ypos float64) {
	if !in.hasCursor {
		in.lastX, in.lastY = xpos, ypos
		in.hasCursor = true
		return
	}

	xoffset := xpos - in.lastX
	yoffset := in.lastY - ypos // Reversed since y-coordinates go from bottom to top
	in.lastX, in.lastY = xpos, ypos

	in.MouseDelta = in.MouseDelta.Add(mgl32.Vec2{float32(xoffset), float32(yoffset)})
}

// ResetCursor forgets the last cursor position, e.g. after focus loss.
func (in *InputState) ResetCursor() {
	in.hasCursor = false
}

// TakeMouseDelta returns the accumulated delta and clears it.
func (in *InputState) TakeMouseDelta() mgl32.Vec2 {
	delta := in.MouseDelta
	in.MouseDelta = mgl32.Vec2{}
	return delta
}

// ApplyMouseLook folds the pending mouse delta into yaw and pitch.
func (in *InputState) ApplyMouseLook(sensitivity float32) {
	delta := in.TakeMouseDelta().Mul(sensitivity)
	in.Yaw += delta.X()
	in.Pitch = mgl32.Clamp(in.Pitch+delta.Y(), -maxPitch, maxPitch)
}
