package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all renderer configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Camera   CameraConfig   `yaml:"camera"`
	Movement MovementConfig `yaml:"movement"`
	Textures TextureConfig  `yaml:"textures"`
	Shading  ShadingConfig  `yaml:"shading"`
	Lighting LightingConfig `yaml:"lighting"`
	Minimap  MinimapConfig  `yaml:"minimap"`
	Map      MapConfig      `yaml:"map"`
	Render   RenderConfig   `yaml:"render"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth     int     `yaml:"screen_width"`
	ScreenHeight    int     `yaml:"screen_height"`
	WindowTitle     string  `yaml:"window_title"`
	Resizable       bool    `yaml:"resizable"`
	TPS             int     `yaml:"tps"`
	Font            string  `yaml:"font"`      // TTF path, empty for the embedded Go Regular face
	FontSize        float64 `yaml:"font_size"` // Points
	ShowFPS         bool    `yaml:"show_fps"`
	FPSRefreshTime  float64 `yaml:"fps_refresh_time"` // Seconds the FPS counter is smoothed over
	PauseOnBlur     bool    `yaml:"pause_on_blur"`
	TerminalTickMs  int     `yaml:"terminal_tick_ms"`
	TerminalAspect  float64 `yaml:"terminal_aspect"` // Cell height / cell width
	TerminalMinimap bool    `yaml:"terminal_minimap"`
}

type CameraConfig struct {
	// Height of the eye between floor (0.0) and ceiling (1.0)
	Height float64 `yaml:"height"`
	// Magnitude of the camera plane; 0.66 gives roughly a 66 degree FOV
	PlaneMagnitude float64 `yaml:"plane_magnitude"`
}

type MovementConfig struct {
	MoveSpeed     float64    `yaml:"move_speed"`     // Tiles per second
	RotationSpeed float64    `yaml:"rotation_speed"` // Radians per second
	CollisionBox  float64    `yaml:"collision_box"`  // Full box size, in tiles
	StartPosition [2]float64 `yaml:"start_position"`
	StartFacing   [2]float64 `yaml:"start_facing"`
}

type TextureConfig struct {
	Atlas     string `yaml:"atlas"`      // PNG path, empty for the generated atlas
	AtlasSize int    `yaml:"atlas_size"` // Atlas width in pixels
	TileSize  int    `yaml:"tile_size"`  // Size of one wall variant in the atlas
}

type ShadingConfig struct {
	// "linear" subtracts falloff_rate*distance, "inverse" divides by distance
	Falloff           string  `yaml:"falloff"`
	FalloffRate       float64 `yaml:"falloff_rate"`
	SideShadowDivisor float64 `yaml:"side_shadow_divisor"`
	Ceiling           [3]int  `yaml:"ceiling"`
	Floor             [3]int  `yaml:"floor"`
	Wall              [3]int  `yaml:"wall"`
}

type LightingConfig struct {
	Enabled bool       `yaml:"enabled"`
	Weights [3]float64 `yaml:"weights"` // Per-channel brightening per unit distance
}

type MinimapConfig struct {
	Enabled bool    `yaml:"enabled"`
	Offset  float64 `yaml:"offset"` // Top-left corner, in pixels
	Scale   int     `yaml:"scale"`  // Pixels per tile
}

type MapConfig struct {
	File   string `yaml:"file"`   // Text map path, empty for the built-in level
	Tiles  string `yaml:"tiles"`  // Tile registry YAML, empty for the built-in set
	Width  int    `yaml:"width"`  // Optional explicit width; 0 infers from the file
	Height int    `yaml:"height"` // Optional explicit height; 0 infers from the file
}

type RenderConfig struct {
	Workers int `yaml:"workers"` // Column shards per frame; 1 renders serially, 0 uses every CPU
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when a key is missing from config.yaml
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:     1280,
			ScreenHeight:    768,
			WindowTitle:     "Raycaster",
			TPS:             60,
			FontSize:        32,
			ShowFPS:         true,
			FPSRefreshTime:  0.05,
			PauseOnBlur:     true,
			TerminalTickMs:  15,
			TerminalAspect:  2.0,
			TerminalMinimap: false,
		},
		Camera: CameraConfig{
			Height:         0.5,
			PlaneMagnitude: 0.66,
		},
		Movement: MovementConfig{
			MoveSpeed:     3.5,
			RotationSpeed: 2.0,
			CollisionBox:  0.375,
			StartPosition: [2]float64{15.5, 16.5},
			StartFacing:   [2]float64{1, 0},
		},
		Textures: TextureConfig{
			AtlasSize: 512,
			TileSize:  128,
		},
		Shading: ShadingConfig{
			Falloff:           FalloffInverse,
			FalloffRate:       40,
			SideShadowDivisor: 1.2,
			Ceiling:           [3]int{255, 255, 255},
			Floor:             [3]int{85, 55, 50},
			Wall:              [3]int{255, 255, 255},
		},
		Lighting: LightingConfig{
			Enabled: true,
			Weights: [3]float64{6, 5, 3},
		},
		Minimap: MinimapConfig{
			Enabled: true,
			Offset:  10,
			Scale:   8,
		},
		Render: RenderConfig{
			Workers: 1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Falloff policies
const (
	FalloffLinear  = "linear"
	FalloffInverse = "inverse"
)

// LoadConfig loads the configuration from a YAML file on top of Default
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, &ConfigError{Op: "read config", Path: filename, Err: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, &ConfigError{Op: "parse config", Path: filename, Err: err}
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges the renderer relies on
func (c *Config) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("display: screen size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Camera.Height < 0 || c.Camera.Height > 1 {
		return fmt.Errorf("camera: height must be within [0,1], got %v", c.Camera.Height)
	}
	if c.Camera.PlaneMagnitude <= 0 {
		return fmt.Errorf("camera: plane_magnitude must be positive, got %v", c.Camera.PlaneMagnitude)
	}
	if c.Movement.CollisionBox <= 0 || c.Movement.CollisionBox >= 1 {
		return fmt.Errorf("movement: collision_box must be within (0,1), got %v", c.Movement.CollisionBox)
	}
	if c.Movement.StartFacing == [2]float64{} {
		return fmt.Errorf("movement: start_facing must not be the zero vector")
	}
	if c.Textures.TileSize <= 0 || c.Textures.AtlasSize < c.Textures.TileSize {
		return fmt.Errorf("textures: need 0 < tile_size <= atlas_size, got %d and %d", c.Textures.TileSize, c.Textures.AtlasSize)
	}
	if c.Textures.AtlasSize%c.Textures.TileSize != 0 {
		return fmt.Errorf("textures: atlas_size %d is not a multiple of tile_size %d", c.Textures.AtlasSize, c.Textures.TileSize)
	}
	switch c.Shading.Falloff {
	case FalloffLinear, FalloffInverse:
	default:
		return fmt.Errorf("shading: unknown falloff %q", c.Shading.Falloff)
	}
	if c.Shading.SideShadowDivisor < 1 {
		return fmt.Errorf("shading: side_shadow_divisor must be >= 1, got %v", c.Shading.SideShadowDivisor)
	}
	if c.Minimap.Scale < 3 {
		return fmt.Errorf("minimap: scale must be >= 3, got %d", c.Minimap.Scale)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("render: workers must not be negative, got %d", c.Render.Workers)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}
