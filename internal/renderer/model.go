package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMaterial provides a basic material to fall back on
var DefaultMaterial = &Material{
	Name:          "default",
	DiffuseColor:  [3]float32{1.0, 1.0, 1.0}, // White color
	SpecularColor: [3]float32{0.2, 0.2, 0.2},
	Shininess:     32.0,
	Alpha:         1.0,
}

type Model struct {
	// HOT DATA - Accessed every frame in render loop
	ModelMatrix mgl32.Mat4 // Transformation matrix - used every frame
	Position    mgl32.Vec3 // Position in world space
	Scale       mgl32.Vec3 // Scale factors
	Rotation    mgl32.Quat // Rotation quaternion
	Material    *Material  // Material properties pointer
	VAO         uint32     // Vertex Array Object
	VBO         uint32     // Vertex Buffer Object
	EBO         uint32     // Element Buffer Object
	IsDirty     bool       // Needs recalculation flag

	// COLD DATA - Initialization only or rarely accessed
	Id              int       // Model identifier
	Name            string    // Model name
	Vertices        []float32 // Vertex position data
	Faces           []int32   // Face indices
	InterleavedData []float32 // position(3) uv(2) normal(3)
}

type Material struct {
	DiffuseColor  [3]float32 // Base color for lighting
	SpecularColor [3]float32 // Specular highlight color
	Shininess     float32    // Specular exponent
	Alpha         float32    // Transparency (0.0 = transparent, 1.0 = opaque)

	Name string // Material name for debugging
}

// SetPosition sets the position of the model
func (m *Model) SetPosition(x, y, z float32) {
	m.SetPositionVec(mgl32.Vec3{x, y, z})
}

func (m *Model) SetScale(x, y, z float32) {
	m.SetScaleVec(mgl32.Vec3{x, y, z})
}

func (m *Model) GetPosition() mgl32.Vec3 {
	return m.Position
}

func (m *Model) GetRotation() mgl32.Quat {
	return m.Rotation
}

func (m *Model) GetScale() mgl32.Vec3 {
	return m.Scale
}

func (m *Model) SetPositionVec(pos mgl32.Vec3) {
	m.Position = pos
	m.MarkDirty()
}

func (m *Model) SetRotationQuat(rot mgl32.Quat) {
	m.Rotation = rot
	m.MarkDirty()
}

func (m *Model) SetScaleVec(scale mgl32.Vec3) {
	m.Scale = scale
	m.MarkDirty()
}

func (m *Model) MarkDirty() {
	m.IsDirty = true
}

// UpdateModelMatrix recomputes the model matrix if the transform changed.
func (m *Model) UpdateModelMatrix() {
	if !m.IsDirty {
		return
	}
	m.calculateModelMatrix()
	m.IsDirty = false
}

func (m *Model) calculateModelMatrix() {
	// Correct transformation order: Translation * Rotation * Scale (TRS)
	scaleMatrix := mgl32.Scale3D(m.Scale.X(), m.Scale.Y(), m.Scale.Z())
	rotationMatrix := m.Rotation.Mat4()
	translationMatrix := mgl32.Translate3D(m.Position.X(), m.Position.Y(), m.Position.Z())

	m.ModelMatrix = translationMatrix.Mul4(rotationMatrix).Mul4(scaleMatrix)
}

// ensureMaterial gives the model its own material so colour changes do not
// leak into DefaultMaterial.
func (m *Model) ensureMaterial() {
	if m.Material == nil || m.Material == DefaultMaterial {
		copied := *DefaultMaterial
		m.Material = &copied
	}
}

func (m *Model) SetDiffuseColor(r, g, b float32) {
	m.ensureMaterial()
	m.Material.DiffuseColor = [3]float32{r, g, b}
}

func (m *Model) SetSpecularColor(r, g, b float32) {
	m.ensureMaterial()
	m.Material.SpecularColor = [3]float32{r, g, b}
}

func CreateModel(vertices []mgl32.Vec3, indices []int32) *Model {
	interleavedData := make([]float32, 0, len(vertices)*8)

	for _, v := range vertices {
		interleavedData = append(interleavedData, v.X(), v.Y(), v.Z())
		interleavedData = append(interleavedData, 0.0, 0.0)
		interleavedData = append(interleavedData, 0.0, 1.0, 0.0)
	}

	return newModel(flattenVertices(vertices), interleavedData, indices)
}

func newModel(vertices, interleaved []float32, indices []int32) *Model {
	m := &Model{
		Position:        mgl32.Vec3{0, 0, 0},
		Rotation:        mgl32.QuatIdent(),
		Scale:           mgl32.Vec3{1.0, 1.0, 1.0},
		Vertices:        vertices,
		Faces:           indices,
		InterleavedData: interleaved,
		IsDirty:         true,
	}
	m.UpdateModelMatrix()
	return m
}

// Helper to flatten Vec3 array
func flattenVertices(vertices []mgl32.Vec3) []float32 {
	flat := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		flat = append(flat, v.X(), v.Y(), v.Z())
	}
	return flat
}
