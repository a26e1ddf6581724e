package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultSpeed is the player speed in units per second.
const DefaultSpeed float32 = 5.0

// MovementDirection maps the held keys onto the XZ plane. Forward is -Z.
func MovementDirection(in *InputState) mgl32.Vec3 {
	var dir mgl32.Vec3
	if in == nil {
		return dir
	}
	if in.MoveForward {
		dir[2] -= 1
	}
	if in.MoveBackward {
		dir[2] += 1
	}
	if in.MoveLeft {
		dir[0] -= 1
	}
	if in.MoveRight {
		dir[0] += 1
	}
	return dir
}

// StepPlayer moves pos by speed*dt along the held direction. Diagonals are
// normalized so they are no faster than a single axis.
func StepPlayer(pos mgl32.Vec3, in *InputState, speed, dt float32) mgl32.Vec3 {
	dt = sanitizeDelta(dt)
	dir := MovementDirection(in)
	if dir.Len() == 0 || dt == 0 {
		return pos
	}
	return pos.Add(dir.Normalize().Mul(speed * dt))
}

func sanitizeDelta(dt float32) float32 {
	d := float64(dt)
	if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	return dt
}
