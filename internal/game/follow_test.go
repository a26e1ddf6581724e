package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFollowTarget(t *testing.T) {
	got := FollowTarget(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 3, 5})
	expected := mgl32.Vec3{1, 4, 6}
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestFollowStepLerps(t *testing.T) {
	current := mgl32.Vec3{0, 3, 5}
	target := mgl32.Vec3{0, 4, 5}

	got := FollowStep(current, target, 2, 0.1)
	expected := mgl32.Vec3{0, 3.2, 5}
	if !got.ApproxEqual(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestFollowStepClampsFactor(t *testing.T) {
	current := mgl32.Vec3{0, 0, 0}
	target := mgl32.Vec3{10, 0, 0}

	if got := FollowStep(current, target, 2, 5); got != target {
		t.Errorf("Long frame should land on the target, got %v", got)
	}
	if got := FollowStep(current, target, 2, -1); got != current {
		t.Errorf("Negative dt should not move the camera, got %v", got)
	}
	if got := FollowStep(current, target, 2, float32(math.NaN())); got != current {
		t.Errorf("NaN dt should not move the camera, got %v", got)
	}
}

func TestFollowStepConverges(t *testing.T) {
	pos := mgl32.Vec3{0, 3, 5}
	target := mgl32.Vec3{4, 4, 1}
	for i := 0; i < 600; i++ {
		pos = FollowStep(pos, target, 2, 1.0/60)
	}
	if !pos.ApproxEqualThreshold(target, 1e-3) {
		t.Errorf("Expected camera near %v after 10s, got %v", target, pos)
	}
}

func TestOrbitOffsetIdentity(t *testing.T) {
	offset := mgl32.Vec3{0, 3, 5}
	if got := OrbitOffset(offset, 0, 0); got.Sub(offset).Len() > 1e-5 {
		t.Errorf("Zero yaw and pitch should keep %v, got %v", offset, got)
	}
}

func TestOrbitOffsetYaw(t *testing.T) {
	got := OrbitOffset(mgl32.Vec3{0, 3, 5}, 90, 0)
	expected := mgl32.Vec3{5, 3, 0}
	if got.Sub(expected).Len() > 1e-4 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestOrbitOffsetPitchKeepsDistance(t *testing.T) {
	offset := mgl32.Vec3{0, 3, 5}
	got := OrbitOffset(offset, 30, 20)

	if math.Abs(float64(got.Len()-offset.Len())) > 1e-4 {
		t.Errorf("Orbit should keep distance %f, got %f", offset.Len(), got.Len())
	}
	if got.Y() >= offset.Y() {
		t.Errorf("Positive pitch should lower the camera, got y=%f", got.Y())
	}
}

func TestOrbitOffsetStaysBehindAtSteepPitch(t *testing.T) {
	offset := mgl32.Vec3{0, 3, 5}
	for _, pitch := range []float32{-59, -89} {
		got := OrbitOffset(offset, 0, pitch)
		if got.Z() <= 0 {
			t.Errorf("Pitch %v should keep the camera behind the player, got %v", pitch, got)
		}
		if got.Normalize().Cross(worldUp).Len() < 1e-3 {
			t.Errorf("Pitch %v put the camera straight overhead: %v", pitch, got)
		}
		if math.Abs(float64(got.Len()-offset.Len())) > 1e-4 {
			t.Errorf("Orbit should keep distance %f, got %f", offset.Len(), got.Len())
		}
	}
}

func TestOrbitOffsetStaysAbovePlayer(t *testing.T) {
	got := OrbitOffset(mgl32.Vec3{0, 3, 5}, 0, 89)
	if got.Y() < -1e-5 {
		t.Errorf("Camera should not drop below the player, got %v", got)
	}
	if got.Z() <= 0 {
		t.Errorf("Camera should stay behind the player, got %v", got)
	}
}

func TestOrbitPitchLimits(t *testing.T) {
	offset := mgl32.Vec3{0, 3, 5}
	lo, hi := OrbitPitchLimits(offset)
	if lo >= 0 || hi <= 0 {
		t.Errorf("Expected limits around zero pitch, got [%f, %f]", lo, hi)
	}

	// Pitch past either limit changes nothing.
	if a, b := OrbitOffset(offset, 0, lo), OrbitOffset(offset, 0, lo-30); a.Sub(b).Len() > 1e-5 {
		t.Errorf("Expected %v at and beyond the upper limit, got %v", a, b)
	}
	if a, b := OrbitOffset(offset, 0, hi), OrbitOffset(offset, 0, hi+30); a.Sub(b).Len() > 1e-5 {
		t.Errorf("Expected %v at and beyond the lower limit, got %v", a, b)
	}
}

func TestOrbitOffsetKeepsOffsetOutsideBand(t *testing.T) {
	below := mgl32.Vec3{0, -1, 4}
	if got := OrbitOffset(below, 0, 0); got.Sub(below).Len() > 1e-5 {
		t.Errorf("Zero pitch should keep %v, got %v", below, got)
	}
}
