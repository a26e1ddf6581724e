package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

func CreateLight() *Light {
	return &Light{
		Position:        mgl32.Vec3{0.0, 10.0, 0.0},
		Direction:       mgl32.Vec3{0, -1, 0},
		Color:           mgl32.Vec3{1.0, 1.0, 1.0},
		Intensity:       1.0,
		AmbientStrength: 0.15,
		Mode:            "directional",
	}
}

// CreateDirectionalLight creates a directional light (like the sun)
func CreateDirectionalLight(direction mgl32.Vec3, color mgl32.Vec3, intensity float32) *Light {
	light := CreateLight()
	if direction.Len() > 0 {
		light.Direction = direction.Normalize()
	}
	light.Color = color
	light.Intensity = intensity
	return light
}

// CreateDirectionalLightAt places a directional light at position and aims it
// by rotating the default forward axis (-Z) with rotation.
func CreateDirectionalLightAt(position mgl32.Vec3, rotation mgl32.Quat, color mgl32.Vec3, intensity float32) *Light {
	light := CreateDirectionalLight(rotation.Rotate(mgl32.Vec3{0, 0, -1}), color, intensity)
	light.Position = position
	return light
}
