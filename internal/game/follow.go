package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// DefaultSmoothing scales dt into the camera lerp factor.
const DefaultSmoothing float32 = 2.0

// FollowTarget is the point the camera wants to sit at.
func FollowTarget(player, offset mgl32.Vec3) mgl32.Vec3 {
	return player.Add(offset)
}

// FollowStep moves current toward target by dt*smoothing, clamped to [0, 1]
// so a long frame lands on the target instead of overshooting it.
func FollowStep(current, target mgl32.Vec3, smoothing, dt float32) mgl32.Vec3 {
	t := mgl32.Clamp(sanitizeDelta(dt)*smoothing, 0, 1)
	return current.Add(target.Sub(current).Mul(t))
}

// Orbit elevations in degrees above the player's horizontal plane.
const (
	minOrbitElevation float32 = 0
	maxOrbitElevation float32 = maxPitch
)

// OrbitOffset swings offset around the player by yaw degrees about world up
// and lowers it by pitch degrees. The resulting elevation is clamped so the
// camera never passes over the player or drops below it.
func OrbitOffset(offset mgl32.Vec3, yaw, pitch float32) mgl32.Vec3 {
	dist := offset.Len()
	if dist < 1e-6 {
		return offset
	}

	dir := mgl32.Vec3{offset.X(), 0, offset.Z()}
	if dir.Len() < 1e-6 {
		dir = mgl32.Vec3{0, 0, 1}
	}
	dir = mgl32.QuatRotate(mgl32.DegToRad(yaw), worldUp).Rotate(dir.Normalize())

	lo, hi := elevationLimits(offset)
	elevation := mgl32.DegToRad(mgl32.Clamp(orbitElevation(offset)-pitch, lo, hi))
	sin, cos := math.Sincos(float64(elevation))
	return dir.Mul(dist * float32(cos)).Add(worldUp.Mul(dist * float32(sin)))
}

// OrbitPitchLimits is the pitch range OrbitOffset can express for offset.
func OrbitPitchLimits(offset mgl32.Vec3) (lo, hi float32) {
	base := orbitElevation(offset)
	minElev, maxElev := elevationLimits(offset)
	return base - maxElev, base - minElev
}

func orbitElevation(offset mgl32.Vec3) float32 {
	horizontal := math.Hypot(float64(offset.X()), float64(offset.Z()))
	return mgl32.RadToDeg(float32(math.Atan2(float64(offset.Y()), horizontal)))
}

// elevationLimits widens the default band to include the offset's own elevation.
func elevationLimits(offset mgl32.Vec3) (lo, hi float32) {
	base := orbitElevation(offset)
	lo, hi = minOrbitElevation, maxOrbitElevation
	if base < lo {
		lo = base
	}
	if base > hi {
		hi = base
	}
	return lo, hi
}
