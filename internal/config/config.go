package config

import (
	"CubeWalker/internal/logger"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that points at the config file.
const EnvConfigPath = "CUBEWALKER_CONFIG"

// Color is an opaque 8-bit RGB colour.
type Color [3]uint8

// Floats converts the colour to the 0..1 range used by shaders.
func (c Color) Floats() [3]float32 {
	return [3]float32{float32(c[0]) / 255, float32(c[1]) / 255, float32(c[2]) / 255}
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Resizable bool   `yaml:"resizable"`
}

type PlayerConfig struct {
	Speed    float32    `yaml:"speed"` // units per second
	Position mgl32.Vec3 `yaml:"position"`
	Scale    mgl32.Vec3 `yaml:"scale"`
	Color    Color      `yaml:"color"`
}

type CameraConfig struct {
	Position    mgl32.Vec3 `yaml:"position"`
	Offset      mgl32.Vec3 `yaml:"offset"`
	Smoothing   float32    `yaml:"smoothing"`
	Fov         float32    `yaml:"fov"`
	MouseOrbit  bool       `yaml:"mouse_orbit"`
	Sensitivity float32    `yaml:"sensitivity"`
}

type LightConfig struct {
	Mode      string     `yaml:"mode"` // directional or point
	Position  mgl32.Vec3 `yaml:"position"`
	PitchDeg  float32    `yaml:"pitch_deg"`
	Color     Color      `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
}

type SceneConfig struct {
	ClearColor    Color        `yaml:"clear_color"`
	GroundScale   mgl32.Vec3   `yaml:"ground_scale"`
	GroundColor   Color        `yaml:"ground_color"`
	ObstacleColor Color        `yaml:"obstacle_color"`
	Obstacles     []mgl32.Vec3 `yaml:"obstacles"`
	Light         LightConfig  `yaml:"light"`
}

type RenderConfig struct {
	Debug       bool `yaml:"debug"` // wireframe
	FaceCulling bool `yaml:"face_culling"`
}

type DecorationConfig struct {
	Count     int     `yaml:"count"`
	Seed      int64   `yaml:"seed"`
	Threshold float64 `yaml:"threshold"`
	Spacing   float32 `yaml:"spacing"`
	Color     Color   `yaml:"color"`
}

type Config struct {
	Window      WindowConfig     `yaml:"window"`
	Player      PlayerConfig     `yaml:"player"`
	Camera      CameraConfig     `yaml:"camera"`
	Scene       SceneConfig      `yaml:"scene"`
	Decorations DecorationConfig `yaml:"decorations"`
	Render      RenderConfig     `yaml:"render"`
	Log         logger.Config    `yaml:"log"`

	// Source is the file the config was read from, empty for defaults.
	Source string `yaml:"-"`
}

// Default returns the stock scene: a blue player cube on a 20x20 green plane
// with five orange obstacles.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:     "CubeWalker - Player Movement",
			Width:     1024,
			Height:    768,
			X:         100,
			Y:         100,
			Resizable: true,
		},
		Player: PlayerConfig{
			Speed:    5.0,
			Position: mgl32.Vec3{0, 1, 0},
			Scale:    mgl32.Vec3{0.5, 1, 0.5},
			Color:    Color{0, 100, 255},
		},
		Camera: CameraConfig{
			Position:    mgl32.Vec3{0, 3, 5},
			Offset:      mgl32.Vec3{0, 3, 5},
			Smoothing:   2.0,
			Fov:         45.0,
			MouseOrbit:  false,
			Sensitivity: 0.1,
		},
		Scene: SceneConfig{
			ClearColor:    Color{100, 150, 200},
			GroundScale:   mgl32.Vec3{20, 1, 20},
			GroundColor:   Color{100, 150, 100},
			ObstacleColor: Color{200, 100, 50},
			Obstacles: []mgl32.Vec3{
				{3, 0.5, 2},
				{-2, 0.5, -3},
				{5, 0.5, -1},
				{-4, 0.5, 4},
				{1, 0.5, -5},
			},
			Light: LightConfig{
				Mode:      "directional",
				Position:  mgl32.Vec3{0, 6, 0},
				PitchDeg:  -45,
				Color:     Color{255, 255, 255},
				Intensity: 1.0,
			},
		},
		Decorations: DecorationConfig{
			Count:     0,
			Seed:      42,
			Threshold: 0.15,
			Spacing:   2.0,
			Color:     Color{120, 90, 60},
		},
		Log: logger.DefaultConfig(),
	}
}

// Load reads a YAML file and overlays it onto Default. An empty path or a
// missing file yields the defaults with an empty Source.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Path picks the config file from the environment, then the first argument.
func Path(args []string) string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func (c Config) Validate() error {
	if err := checkFinite(map[string][]float32{
		"player.speed":        {c.Player.Speed},
		"player.position":     c.Player.Position[:],
		"player.scale":        c.Player.Scale[:],
		"camera.position":     c.Camera.Position[:],
		"camera.offset":       c.Camera.Offset[:],
		"camera.smoothing":    {c.Camera.Smoothing},
		"camera.fov":          {c.Camera.Fov},
		"camera.sensitivity":  {c.Camera.Sensitivity},
		"scene.light":         append(c.Scene.Light.Position[:], c.Scene.Light.PitchDeg, c.Scene.Light.Intensity),
		"decorations.spacing": {c.Decorations.Spacing},
	}); err != nil {
		return err
	}
	for i, pos := range c.Scene.Obstacles {
		if !finite(pos[:]...) {
			return fmt.Errorf("scene.obstacles[%d] must be finite, got %v", i, pos)
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("player speed must be positive, got %v", c.Player.Speed)
	}
	if c.Camera.Smoothing <= 0 {
		return fmt.Errorf("camera smoothing must be positive, got %v", c.Camera.Smoothing)
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %v", c.Camera.Fov)
	}
	if c.Decorations.Count < 0 {
		return fmt.Errorf("decoration count must not be negative, got %d", c.Decorations.Count)
	}
	if c.Decorations.Count > 0 && c.Decorations.Spacing <= 0 {
		return fmt.Errorf("decoration spacing must be positive, got %v", c.Decorations.Spacing)
	}
	if math.IsNaN(c.Decorations.Threshold) {
		return fmt.Errorf("decoration threshold must not be NaN")
	}
	if m := c.Scene.Light.Mode; m != "directional" && m != "point" {
		return fmt.Errorf("light mode must be directional or point, got %q", m)
	}
	return nil
}

func checkFinite(fields map[string][]float32) error {
	for name, values := range fields {
		if !finite(values...) {
			return fmt.Errorf("%s must be finite, got %v", name, values)
		}
	}
	return nil
}

func finite(values ...float32) bool {
	for _, v := range values {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
