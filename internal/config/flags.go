package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagShaders    = flag.String("shaders", "", "Load shaders from this directory instead of the embedded set")
	flagAssets     = flag.String("assets", "", "Asset directory (textures, cube maps, sounds)")
	flagWatch      = flag.Bool("watch", false, "Reload shaders when their files change")
	flagSeed       = flag.Uint64("seed", 0, "Asteroid field seed")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Game.ShowFPS = true
		cfg.Graphics.ShowLogs = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagShaders != "" {
		cfg.Resources.ShaderDir = *flagShaders
	}
	if *flagAssets != "" {
		cfg.Resources.AssetDir = *flagAssets
	}
	if *flagWatch {
		cfg.Resources.WatchShaders = true
	}
	if *flagSeed != 0 {
		cfg.Game.Seed = *flagSeed
	}
}
