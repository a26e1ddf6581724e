package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

var FaceCullingEnabled bool = false
var Debug bool = false
var DepthTestEnabled bool = true

type Light struct {
	Position        mgl32.Vec3
	Direction       mgl32.Vec3 // Points from the light into the scene
	Color           mgl32.Vec3
	Intensity       float32
	AmbientStrength float32
	Mode            string // "directional", "point"
}

type Render interface {
	Init(width, height int32) error
	Render(camera Camera, light *Light)
	AddModel(model *Model)
	SetClearColor(r, g, b float32)
	UpdateViewport(width, height int32)
	Cleanup()
}
