// Package glfwwindow opens windows through GLFW 3.3.
package glfwwindow

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/tehcyx/gbprototype/internal/window"
)

var keys = map[window.Key]glfw.Key{
	window.KeyEscape: glfw.KeyEscape,
}

type Window struct {
	win    *glfw.Window
	width  int
	height int
}

var _ window.Window = (*Window)(nil)

// Open initialises GLFW and creates a fixed-size window whose GL context
// is made current on the calling thread.
func Open(cfg window.Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwwindow: init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, window.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, window.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfwwindow: create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return &Window{win: win, width: cfg.Width, height: cfg.Height}, nil
}

// OpenHidden creates an invisible 1x1 window. It is used to obtain a GL
// context where nothing needs to be shown.
func OpenHidden() (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwwindow: init: %w", err)
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	defer glfw.DefaultWindowHints()
	return Open(window.Config{Title: "hidden", Width: 1, Height: 1})
}

func (w *Window) PollEvents() { glfw.PollEvents() }

func (w *Window) KeyPressed(key window.Key) bool {
	k, ok := keys[key]
	if !ok {
		return false
	}
	switch w.win.GetKey(k) {
	case glfw.Press, glfw.Repeat:
		return true
	}
	return false
}

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

func (w *Window) SetShouldClose(v bool) { w.win.SetShouldClose(v) }

func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

func (w *Window) Time() float64 { return glfw.GetTime() }

func (w *Window) Size() (int, int) { return w.width, w.height }

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}
