// Package config loads the prototype's TOML settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	BackendGLFW = "glfw"
	BackendSDL  = "sdl"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Window Window `toml:"window"`
	Log    Log    `toml:"log"`
	Scene  Scene  `toml:"scene"`
}

type Window struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Backend string `toml:"backend"`
	VSync   bool   `toml:"vsync"`
}

type Log struct {
	File   string `toml:"file"`
	Level  string `toml:"level"`
	Stderr bool   `toml:"stderr"`
}

type Scene struct {
	TriangleHeight float32    `toml:"triangle_height"`
	ClearColor     [4]float32 `toml:"clear_color"`
	Wireframe      bool       `toml:"wireframe"`
	// Texture overrides the embedded image when set.
	Texture string `toml:"texture"`
}

// Default matches the prototype's hard-coded setup.
func Default() Config {
	return Config{
		Window: Window{
			Title:   "GB Prototype",
			Width:   640,
			Height:  480,
			Backend: BackendGLFW,
			VSync:   true,
		},
		Log: Log{
			File:  "gb_prototype.log",
			Level: "info",
		},
		Scene: Scene{
			TriangleHeight: 1.0,
			ClearColor:     [4]float32{0.2, 0.2, 0.2, 1.0},
		},
	}
}

// Load reads path over the defaults. An empty path yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg, rejecting keys cfg does not declare.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Validate reports every problem in c at once.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Window.Backend {
	case BackendGLFW, BackendSDL:
	default:
		bad("window backend %q", c.Window.Backend)
	}
	if c.Log.File == "" {
		bad("log file is empty")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		bad("log level %q", c.Log.Level)
	}
	h := float64(c.Scene.TriangleHeight)
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		bad("triangle height %v", c.Scene.TriangleHeight)
	}
	for _, v := range c.Scene.ClearColor {
		if v < 0 || v > 1 {
			bad("clear color %v", c.Scene.ClearColor)
			break
		}
	}
	return errors.Join(errs...)
}

// SlogLevel parses Level.
func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(l.Level))
	return lvl, err
}
