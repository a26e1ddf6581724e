package renderer

import (
	"CubeWalker/internal/logger"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type OpenGLRenderer struct {
	defaultShader        Shader
	Models               []*Model
	currentShaderProgram uint32 // Track currently bound shader to avoid unnecessary switches
	clearColor           mgl32.Vec3
	nextID               int
}

func (rend *OpenGLRenderer) Init(width, height int32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize OpenGL: %w", err)
	}

	if Debug {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.Viewport(0, 0, width, height)

	rend.defaultShader = InitShader()
	if err := rend.defaultShader.Compile(); err != nil {
		return fmt.Errorf("compile default shader: %w", err)
	}
	logger.Log.Info("OpenGL render initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.Int32("width", width),
		zap.Int32("height", height))
	return nil
}

func (rend *OpenGLRenderer) SetClearColor(r, g, b float32) {
	rend.clearColor = mgl32.Vec3{r, g, b}
}

func (rend *OpenGLRenderer) AddModel(model *Model) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(model.InterleavedData)*4, gl.Ptr(model.InterleavedData), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(model.Faces)*4, gl.Ptr(model.Faces), gl.STATIC_DRAW)

	stride := int32((8) * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	model.VAO = vao
	model.VBO = vbo
	model.EBO = ebo
	rend.nextID++
	model.Id = rend.nextID

	model.MarkDirty()
	model.UpdateModelMatrix()

	rend.Models = append(rend.Models, model)
	logger.Log.Debug("Model added", zap.String("name", model.Name), zap.Int("id", model.Id))
}

func (rend *OpenGLRenderer) Render(camera Camera, light *Light) {
	gl.ClearColor(rend.clearColor.X(), rend.clearColor.Y(), rend.clearColor.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if DepthTestEnabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthMask(true)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	// Culling : https://learnopengl.com/Advanced-OpenGL/Face-culling
	if FaceCullingEnabled {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	}

	shader := &rend.defaultShader
	if rend.currentShaderProgram != shader.program {
		shader.Use()
		rend.currentShaderProgram = shader.program
	}

	viewProjection := camera.GetViewProjection()
	shader.SetMat4("viewProjection", viewProjection)
	shader.SetVec3("viewPos", camera.Position)
	rend.setLightUniforms(shader, light)

	for _, model := range rend.Models {
		model.UpdateModelMatrix()

		shader.SetMat4("model", model.ModelMatrix)
		rend.setMaterialUniforms(shader, model)

		gl.BindVertexArray(model.VAO)
		gl.DrawElements(gl.TRIANGLES, int32(len(model.Faces)), gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
}

func (rend *OpenGLRenderer) setLightUniforms(shader *Shader, light *Light) {
	if light == nil {
		light = CreateLight()
	}
	shader.SetVec3("light.position", light.Position)
	shader.SetVec3("light.direction", light.Direction)
	shader.SetVec3("light.color", light.Color)
	shader.SetFloat("light.intensity", light.Intensity)
	shader.SetFloat("light.ambientStrength", light.AmbientStrength)

	isDirectional := int32(0)
	if light.Mode == "directional" {
		isDirectional = 1
	}
	shader.SetInt("light.isDirectional", isDirectional)
}

func (rend *OpenGLRenderer) setMaterialUniforms(shader *Shader, model *Model) {
	material := model.Material
	if material == nil {
		material = DefaultMaterial
	}
	shader.SetVec3("diffuseColor", mgl32.Vec3(material.DiffuseColor))
	shader.SetVec3("specularColor", mgl32.Vec3(material.SpecularColor))
	shader.SetFloat("shininess", material.Shininess)
	shader.SetFloat("alpha", material.Alpha)
}

func (rend *OpenGLRenderer) Cleanup() {
	for _, model := range rend.Models {
		gl.DeleteVertexArrays(1, &model.VAO)
		gl.DeleteBuffers(1, &model.VBO)
		gl.DeleteBuffers(1, &model.EBO)
	}
	rend.Models = nil
	rend.defaultShader.Delete()
}

// UpdateViewport updates the OpenGL viewport to match the current window size
func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}
