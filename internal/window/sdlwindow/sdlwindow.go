// Package sdlwindow opens windows through SDL2.
package sdlwindow

import (
	"fmt"

	"gopkg.in/veandco/go-sdl2.v0/sdl"

	"github.com/tehcyx/gbprototype/internal/window"
)

var scancodes = map[window.Key]int{
	window.KeyEscape: int(sdl.SCANCODE_ESCAPE),
}

type Window struct {
	window      *sdl.Window
	context     sdl.GLContext
	width       int
	height      int
	shouldClose bool
}

var _ window.Window = (*Window)(nil)

// Open initialises SDL's video subsystem and creates a window with a GL
// 3.3 core context.
func Open(cfg window.Config) (*Window, error) {
	var err error

	if err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdlwindow: init: %w", err)
	}

	if err = setAttributes(); err != nil {
		sdl.Quit()
		return nil, err
	}

	w := &Window{width: cfg.Width, height: cfg.Height}
	w.window, err = sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED, int32(cfg.Width), int32(cfg.Height), sdl.WINDOW_OPENGL)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlwindow: create window: %w", err)
	}

	w.context, err = w.window.GLCreateContext()
	if err != nil {
		w.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdlwindow: create context: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err = sdl.GLSetSwapInterval(interval); err != nil {
		w.Destroy()
		return nil, fmt.Errorf("sdlwindow: swap interval: %w", err)
	}
	return w, nil
}

// PollEvents drains the SDL event queue. A quit event sets the close flag.
func (w *Window) PollEvents() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev.(type) {
		case *sdl.QuitEvent:
			w.shouldClose = true
		}
	}
}

func (w *Window) KeyPressed(key window.Key) bool {
	sc, ok := scancodes[key]
	if !ok {
		return false
	}
	state := sdl.GetKeyboardState()
	return sc < len(state) && state[sc] != 0
}

func (w *Window) ShouldClose() bool { return w.shouldClose }

func (w *Window) SetShouldClose(v bool) { w.shouldClose = v }

func (w *Window) SwapBuffers() { w.window.GLSwap() }

func (w *Window) Time() float64 { return float64(sdl.GetTicks()) / 1000 }

func (w *Window) Size() (int, int) { return w.width, w.height }

// Destroy releases the context and window and shuts SDL down.
func (w *Window) Destroy() {
	if w.window == nil {
		return
	}
	sdl.GLDeleteContext(w.context)
	w.window.Destroy()
	w.window = nil
	sdl.Quit()
}

// setAttributes requests the context Open creates. It must run before
// the window exists.
func setAttributes() error {
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE); err != nil {
		return fmt.Errorf("sdlwindow: core profile: %w", err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, window.GLMajor); err != nil {
		return fmt.Errorf("sdlwindow: major version: %w", err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, window.GLMinor); err != nil {
		return fmt.Errorf("sdlwindow: minor version: %w", err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1); err != nil {
		return fmt.Errorf("sdlwindow: double buffer: %w", err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24); err != nil {
		return fmt.Errorf("sdlwindow: depth size: %w", err)
	}
	return nil
}
