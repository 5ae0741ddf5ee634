package main

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/tehcyx/gbprototype/internal/config"
	"github.com/tehcyx/gbprototype/internal/core"
	"github.com/tehcyx/gbprototype/internal/gfx"
	"github.com/tehcyx/gbprototype/internal/window"
	"github.com/tehcyx/gbprototype/internal/window/glfwwindow"
	"github.com/tehcyx/gbprototype/internal/window/sdlwindow"
)

func openWindow(cfg config.Window) (window.Window, error) {
	wcfg := window.Config{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		VSync:  cfg.VSync,
	}
	switch cfg.Backend {
	case config.BackendSDL:
		w, err := sdlwindow.Open(wcfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	case config.BackendGLFW:
		w, err := glfwwindow.Open(wcfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
}

// CoreInit opens the window, loads GL and sets the fixed pipeline state.
func CoreInit(cfg config.Config, log *slog.Logger) (*core.RenderInput, error) {
	win, err := openWindow(cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL context: %w", err)
	}

	info, err := gfx.Init()
	if err != nil {
		win.Destroy()
		return nil, err
	}
	log.Info("opengl context",
		"backend", cfg.Window.Backend,
		"vendor", info.Vendor,
		"renderer", info.Renderer,
		"version", info.Version,
		"glsl", info.GLSL)

	// enable depth testing
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	width, height := win.Size()
	return &core.RenderInput{Window: win, Width: width, Height: height}, nil
}

// CoreCleanup destroys the window and its GL context.
func CoreCleanup(in *core.RenderInput) {
	in.Window.Destroy()
}
