// Package config handles lab configuration loading and management.
package config

import "time"

// Config holds all settings shared by the lab executables.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Camera    CameraConfig    `yaml:"camera"`
	Resources ResourcesConfig `yaml:"resources"`
	Audio     AudioConfig     `yaml:"audio"`
	Game      GameConfig      `yaml:"game"`
	Snow      SnowConfig      `yaml:"snow"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	ShowGUI    bool `yaml:"show_gui"`
	ShowLogs   bool `yaml:"show_logs"`
	ShowBasis  bool `yaml:"show_basis"`
}

// CameraConfig holds the free-fly camera parameters.
type CameraConfig struct {
	FOV              float32 `yaml:"fov"` // vertical, degrees
	Near             float32 `yaml:"near"`
	Far              float32 `yaml:"far"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	MoveSpeed        float32 `yaml:"move_speed"`
}

// ResourcesConfig holds asset locations.
type ResourcesConfig struct {
	ShaderDir     string `yaml:"shader_dir"` // empty uses the embedded shaders
	AssetDir      string `yaml:"asset_dir"`
	ScreenshotDir string `yaml:"screenshot_dir"`
	WatchShaders  bool   `yaml:"watch_shaders"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float32 `yaml:"master_volume"`
	MusicVolume  float32 `yaml:"music_volume"`
	SFXVolume    float32 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
	Music        string  `yaml:"music"`     // WAV path relative to asset_dir
	HitSound     string  `yaml:"hit_sound"` // WAV path relative to asset_dir
}

// GameConfig holds the asteroid game settings.
type GameConfig struct {
	AsteroidCount    int           `yaml:"asteroid_count"`
	AsteroidRadius   float32       `yaml:"asteroid_radius"`
	AsteroidSpeed    float32       `yaml:"asteroid_speed"`
	ShipRadius       float32       `yaml:"ship_radius"`
	Boundary         float32       `yaml:"boundary"`
	StartHealth      float32       `yaml:"start_health"`
	HitDamage        float32       `yaml:"hit_damage"`
	Invulnerability  time.Duration `yaml:"invulnerability"`
	Seed             uint64        `yaml:"seed"` // 0 picks a time-based seed
	ShowFPS          bool          `yaml:"show_fps"`
	LightPathSeconds float32       `yaml:"light_path_seconds"`
}

// SnowConfig holds the water and particle scene settings.
type SnowConfig struct {
	QuadSize      float32 `yaml:"quad_size"`
	QuadSplits    int     `yaml:"quad_splits"`
	SkyboxRadius  float32 `yaml:"skybox_radius"`
	WaveSpeed     float32 `yaml:"wave_speed"`
	WaveAmplitude float32 `yaml:"wave_amplitude"`
	Particles     int     `yaml:"particles"`
	Gravity       float32 `yaml:"gravity"`
	Wind          float32 `yaml:"wind"`
	Lifetime      float32 `yaml:"lifetime"` // seconds
	Skybox        string  `yaml:"skybox"`   // cube map set under asset_dir/cubemaps
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	LogFile     string `yaml:"log_file"`
	HistorySize int    `yaml:"history_size"` // lines kept for the log window
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			ShowGUI:    true,
			ShowLogs:   false,
			ShowBasis:  false,
		},
		Camera: CameraConfig{
			FOV:              45,
			Near:             0.01,
			Far:              1000,
			MouseSensitivity: 0.003,
			MoveSpeed:        3,
		},
		Resources: ResourcesConfig{
			ShaderDir:     "",
			AssetDir:      "res",
			ScreenshotDir: "screenshots",
			WatchShaders:  false,
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			MusicVolume:  0.7,
			SFXVolume:    0.8,
			Muted:        false,
			Music:        "sounds/bgm.wav",
			HitSound:     "sounds/hit.wav",
		},
		Game: GameConfig{
			AsteroidCount:    200,
			AsteroidRadius:   1,
			AsteroidSpeed:    5,
			ShipRadius:       0.7,
			Boundary:         250,
			StartHealth:      100,
			HitDamage:        25,
			Invulnerability:  time.Second,
			Seed:             0,
			ShowFPS:          false,
			LightPathSeconds: 4,
		},
		Snow: SnowConfig{
			QuadSize:      100,
			QuadSplits:    1000,
			SkyboxRadius:  100,
			WaveSpeed:     1,
			WaveAmplitude: 0.5,
			Particles:     20000,
			Gravity:       -1.5,
			Wind:          0.4,
			Lifetime:      12,
			Skybox:        "NissiBeach2",
		},
		Logging: LoggingConfig{
			Level:       "info",
			LogFile:     "",
			HistorySize: 500,
		},
	}
}
