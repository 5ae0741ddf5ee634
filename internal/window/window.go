// Package window defines what the render loop needs from a windowing
// backend. The backends live in the glfwwindow and sdlwindow packages.
package window

type Key int

const (
	KeyEscape Key = iota
)

// Config describes the window and the GL 3.3 core context to create.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// Window is an open window with a current GL context. All methods must
// be called from the thread that created it.
type Window interface {
	// PollEvents processes pending events without blocking.
	PollEvents()
	// KeyPressed reports whether key is pressed or held.
	KeyPressed(key Key) bool
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
	// Time returns seconds since the backend was initialised.
	Time() float64
	Size() (width, height int)
	Destroy()
}

const (
	GLMajor = 3
	GLMinor = 3
)
