package engine

import (
	"CubeWalker/internal/behaviour"
	"CubeWalker/internal/config"
	"CubeWalker/internal/logger"
	"CubeWalker/internal/renderer"
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	mgl "github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// fixedUpdateInterval is the number of frames between FixedUpdate passes.
const fixedUpdateInterval = 2

// InputHandler receives window input. HandleKey returns true to close the
// window.
type InputHandler interface {
	HandleKey(key glfw.Key, action glfw.Action) (quit bool)
	HandleCursor(xpos, ypos float64)
	HandleFocus(focused bool)
}

type Gopher struct {
	Width        int32
	Height       int32
	Light        *renderer.Light
	Camera       *renderer.Camera
	rendererAPI  renderer.Render
	window       *glfw.Window
	windowConfig config.WindowConfig
	behaviours   *behaviour.BehaviourManager
	input        InputHandler
	clearColor   mgl.Vec3
	frameTrackId int
}

func NewGopher(cfg config.WindowConfig) *Gopher {
	logger.Log.Info("CubeWalker engine initializing...")
	return &Gopher{
		rendererAPI:  &renderer.OpenGLRenderer{},
		Width:        cfg.Width,
		Height:       cfg.Height,
		windowConfig: cfg,
		behaviours:   behaviour.GlobalBehaviourManager,
		Light:        renderer.CreateLight(),
	}
}

// SetInputHandler routes key, cursor and focus events to handler.
func (gopher *Gopher) SetInputHandler(handler InputHandler) {
	gopher.input = handler
}

// Render opens the window and runs the render loop until the window closes.
// It must be called from the main goroutine.
func (gopher *Gopher) Render() error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolHint(gopher.windowConfig.Resizable))
	glfw.WindowHint(glfw.DepthBits, 32)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(gopher.Width), int(gopher.Height), gopher.windowConfig.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	gopher.window = window
	window.MakeContextCurrent()
	window.SetPos(gopher.windowConfig.X, gopher.windowConfig.Y)

	// The framebuffer can differ from the window size on HiDPI displays.
	fbWidth, fbHeight := window.GetFramebufferSize()
	if err := gopher.rendererAPI.Init(int32(fbWidth), int32(fbHeight)); err != nil {
		return fmt.Errorf("initialize renderer: %w", err)
	}
	gopher.rendererAPI.SetClearColor(gopher.clearColor.X(), gopher.clearColor.Y(), gopher.clearColor.Z())

	gopher.Camera = renderer.NewDefaultCamera(int32(fbWidth), int32(fbHeight))

	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	window.SetKeyCallback(gopher.keyCallback)
	window.SetCursorPosCallback(gopher.mouseCallback)
	window.SetFocusCallback(gopher.focusCallback)
	window.SetFramebufferSizeCallback(gopher.resizeCallback)

	logger.Log.Info("Window created",
		zap.String("title", gopher.windowConfig.Title),
		zap.Int32("width", gopher.Width),
		zap.Int32("height", gopher.Height))

	gopher.RenderLoop()
	return nil
}

func (gopher *Gopher) RenderLoop() {
	lastTime := glfw.GetTime()

	for !gopher.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		behaviour.Time.Advance(deltaTime)

		if gopher.frameTrackId >= fixedUpdateInterval {
			gopher.behaviours.UpdateAllFixed()
			gopher.frameTrackId = 0
		}
		gopher.behaviours.UpdateAll()

		gopher.rendererAPI.Render(*gopher.Camera, gopher.Light)

		gopher.window.SwapBuffers()
		gopher.frameTrackId++
		glfw.PollEvents()
	}
	logger.Log.Info("Window closed", zap.Uint64("frames", behaviour.Time.Frame))
	gopher.behaviours.Clear()
	gopher.rendererAPI.Cleanup()
}

// SetDebugMode draws every model as wireframe. It must be called before Render.
func (gopher *Gopher) SetDebugMode(debug bool) {
	renderer.Debug = debug
}

func (gopher *Gopher) SetFaceCulling(enabled bool) {
	renderer.FaceCullingEnabled = enabled
}

// SetClearColor sets the background colour. It may be called before Render.
func (gopher *Gopher) SetClearColor(r, g, b float32) {
	gopher.clearColor = mgl.Vec3{r, g, b}
	if gopher.window != nil {
		gopher.rendererAPI.SetClearColor(r, g, b)
	}
}

func (gopher *Gopher) SetLight(light *renderer.Light) {
	gopher.Light = light
}

func (gopher *Gopher) GetCamera() *renderer.Camera {
	return gopher.Camera
}

func (gopher *Gopher) AddModel(model *renderer.Model) {
	gopher.rendererAPI.AddModel(model)
}

func (gopher *Gopher) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if gopher.input == nil {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
		return
	}
	if gopher.input.HandleKey(key, action) {
		w.SetShouldClose(true)
	}
}

func (gopher *Gopher) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	if gopher.input != nil {
		gopher.input.HandleCursor(xpos, ypos)
	}
}

func (gopher *Gopher) focusCallback(w *glfw.Window, focused bool) {
	if gopher.input != nil {
		gopher.input.HandleFocus(focused)
	}
}

func (gopher *Gopher) resizeCallback(w *glfw.Window, width, height int) {
	// Minimised windows report 0x0.
	if width <= 0 || height <= 0 {
		return
	}
	gopher.Width, gopher.Height = int32(width), int32(height)
	gopher.rendererAPI.UpdateViewport(gopher.Width, gopher.Height)
	gopher.Camera.Resize(gopher.Width, gopher.Height)
	logger.Log.Debug("Framebuffer resized", zap.Int("width", width), zap.Int("height", height))
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}
