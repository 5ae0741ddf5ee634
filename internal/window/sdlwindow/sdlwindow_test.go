package sdlwindow

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tehcyx/gbprototype/internal/window"
)

func TestMain(m *testing.M) {
	runtime.LockOSThread()
	os.Exit(m.Run())
}

// openOrSkip opens a small window, skipping the test where SDL has no
// video driver or cannot create a GL 3.3 context.
func openOrSkip(t *testing.T, cfg window.Config) *Window {
	t.Helper()
	w, err := Open(cfg)
	if err != nil {
		t.Skipf("sdl window unavailable: %v", err)
	}
	return w
}

func TestOpenWindow(t *testing.T) {
	w := openOrSkip(t, window.Config{Title: "sdlwindow test", Width: 64, Height: 48})
	defer w.Destroy()

	width, height := w.Size()
	assert.Equal(t, 64, width)
	assert.Equal(t, 48, height)

	w.PollEvents()
	assert.False(t, w.ShouldClose())
	assert.False(t, w.KeyPressed(window.KeyEscape))
	assert.False(t, w.KeyPressed(window.Key(99)))

	w.SetShouldClose(true)
	assert.True(t, w.ShouldClose())

	start := w.Time()
	w.SwapBuffers()
	assert.GreaterOrEqual(t, w.Time(), start)
}

func TestDestroyTwice(t *testing.T) {
	w := openOrSkip(t, window.Config{Title: "sdlwindow test", Width: 16, Height: 16, VSync: true})
	w.Destroy()
	require.NotPanics(t, w.Destroy)
}
