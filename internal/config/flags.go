package config

import (
	"flag"
	"strings"
)

// Flags are the command-line overrides.
type Flags struct {
	Config     string
	Debug      bool
	Shadows    bool
	Windowed   bool
	Fullscreen bool
	Width      int
	Height     int
	Models     modelList
}

// modelList collects repeated --model flags.
type modelList []string

func (m *modelList) String() string {
	return strings.Join(*m, ",")
}

func (m *modelList) Set(v string) error {
	*m = append(*m, v)
	return nil
}

// NewFlagSet registers every flag on a fresh FlagSet.
func NewFlagSet(name string) (*flag.FlagSet, *Flags) {
	f := &Flags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.Shadows, "shadows", false, "Start with shadows enabled")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.Var(&f.Models, "model", "OBJ file to show (repeatable, replaces scene.models)")
	return fs, f
}

// ParseFlags parses args (without the program name).
func ParseFlags(name string, args []string) (*Flags, error) {
	fs, f := NewFlagSet(name)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Shadows {
		cfg.Scene.Shadows = true
	}
	if f.Windowed {
		cfg.Graphics.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Graphics.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Graphics.Height = f.Height
	}
	if len(f.Models) > 0 {
		cfg.Scene.Models = append([]string(nil), f.Models...)
	}
}
