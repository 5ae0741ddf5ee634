// Package core runs the render loop shared by every scene.
package core

import (
	"context"
	"log/slog"

	"github.com/tehcyx/gbprototype/internal/window"
)

// RenderInput is the per-window state handed to a scene each frame.
type RenderInput struct {
	Window window.Window
	Width  int
	Height int
	// Delta is the time in seconds since the previous frame.
	Delta float32
	// Frame counts rendered frames, starting at zero.
	Frame uint64
}

// Scene is what the loop drives. Update runs at a fixed rate, Render once
// per frame. An error from either stops the loop.
type Scene interface {
	Update(in *RenderInput) error
	Render(in *RenderInput) error
}

type Stats struct {
	Frames  uint64
	Updates uint64
}

const (
	maxFrameSkip     = 1
	updatesPerSecond = 60
	skipTime         = 1.0 / updatesPerSecond
)

// Run renders frames until the window's close flag is set. Escape and a
// cancelled ctx both set the flag; the frame in progress is still drawn
// and presented before the loop observes it.
func Run(ctx context.Context, in *RenderInput, scene Scene, log *slog.Logger) (Stats, error) {
	var stats Stats
	win := in.Window

	lastTime := win.Time()
	timer := lastTime
	nextTick := lastTime

	var frameCounter, updateCounter uint64

	for !win.ShouldClose() {
		win.PollEvents()
		if win.KeyPressed(window.KeyEscape) {
			win.SetShouldClose(true)
		}
		if ctx.Err() != nil {
			win.SetShouldClose(true)
		}

		currentTime := win.Time()
		in.Delta = float32(currentTime - lastTime)
		lastTime = currentTime

		for skipped := 0; win.Time() > nextTick && skipped < maxFrameSkip; skipped++ {
			if err := scene.Update(in); err != nil {
				return stats, err
			}
			nextTick += skipTime
			updateCounter++
			stats.Updates++
		}

		if err := scene.Render(in); err != nil {
			return stats, err
		}
		win.SwapBuffers()

		in.Frame++
		stats.Frames++
		frameCounter++

		if currentTime-timer >= 1 {
			timer = currentTime
			log.Debug("frame rate", "fps", frameCounter, "updates", updateCounter)
			frameCounter = 0
			updateCounter = 0
		}
	}
	return stats, nil
}
