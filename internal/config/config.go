// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Lighting LightingConfig `yaml:"lighting"`
	Input    InputConfig    `yaml:"input"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	Fullscreen       bool    `yaml:"fullscreen"`
	VSync            bool    `yaml:"vsync"`
	ShadowResolution int     `yaml:"shadow_resolution"`
	FOVDegrees       float32 `yaml:"fov_degrees"`
	Near             float32 `yaml:"near"`
	Far              float32 `yaml:"far"`
}

// SceneConfig holds what is loaded and how it is laid out.
type SceneConfig struct {
	Models         []string   `yaml:"models"`      // OBJ paths or built-in names
	ModelDirs      []string   `yaml:"model_dirs"`  // Extra search directories
	Instances      int        `yaml:"instances"`   // Number of grid cells
	GridColumns    int        `yaml:"grid_columns"`
	Spacing        [2]float32 `yaml:"spacing"`
	GroundY        float32    `yaml:"ground_y"`
	GroundHalfSize float32    `yaml:"ground_half_size"`
	Camera         [3]float32 `yaml:"camera"`
	Shadows        bool       `yaml:"shadows"`
	Shading        string     `yaml:"shading"`
}

// LightingConfig holds the single light's placement and products.
type LightingConfig struct {
	Position  [3]float32 `yaml:"position"`
	Ambient   float32    `yaml:"ambient"`
	Diffuse   float32    `yaml:"diffuse"`
	Specular  float32    `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

// InputConfig holds keyboard and mouse step sizes.
type InputConfig struct {
	KeyboardSensitivity float32 `yaml:"keyboard_sensitivity"`
	TranslationStep     float32 `yaml:"translation_step"`
	RotationDegrees     float32 `yaml:"rotation_degrees"`
	DecreaseFactor      float32 `yaml:"decrease_factor"`
	IncreaseFactor      float32 `yaml:"increase_factor"`
	MouseSensitivity    float32 `yaml:"mouse_sensitivity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:            1280,
			Height:           720,
			Fullscreen:       false,
			VSync:            true,
			ShadowResolution: 1024,
			FOVDegrees:       45,
			Near:             0.1,
			Far:              100,
		},
		Scene: SceneConfig{
			Models:         []string{"cube.obj", "pyramid.obj", "sphere.obj"},
			Instances:      9,
			GridColumns:    3,
			Spacing:        [2]float32{3, 2.5},
			GroundY:        -3.5,
			GroundHalfSize: 5,
			Camera:         [3]float32{0, 0, 10},
			Shadows:        false,
			Shading:        "gouraud-diffuse",
		},
		Lighting: LightingConfig{
			Position:  [3]float32{0, 10, 0},
			Ambient:   0.4,
			Diffuse:   0.7,
			Specular:  1.0,
			Shininess: 42,
		},
		Input: InputConfig{
			KeyboardSensitivity: 0.05,
			TranslationStep:     0.1,
			RotationDegrees:     5,
			DecreaseFactor:      0.9,
			IncreaseFactor:      1.1,
			MouseSensitivity:    5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
