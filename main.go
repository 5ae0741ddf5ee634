package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/tehcyx/gbprototype/internal/assets"
	"github.com/tehcyx/gbprototype/internal/config"
	"github.com/tehcyx/gbprototype/internal/core"
	"github.com/tehcyx/gbprototype/internal/logger"
	"github.com/tehcyx/gbprototype/internal/mesh"
	"github.com/tehcyx/gbprototype/internal/scene"
	"github.com/tehcyx/gbprototype/internal/texture"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func init() {
	// GL and the windowing libraries must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	showVersion := flag.Bool("version", false, "print the build version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}
	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "gbprototype: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}

	lg, err := logger.Open(logger.Options{File: cfg.Log.File, Level: level, Stderr: cfg.Log.Stderr})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer lg.Close()
	lg.Info("build version", "version", version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	input, err := CoreInit(cfg, lg.Logger)
	if err != nil {
		lg.Error("startup failed", "err", err)
		return err
	}
	defer CoreCleanup(input)

	triangle, err := newScene(cfg.Scene, lg.Logger)
	if err != nil {
		lg.Error("startup failed", "err", err)
		return err
	}
	defer triangle.Destroy()

	stats, err := core.Run(ctx, input, triangle, lg.Logger)
	lg.Info("render loop stopped", "frames", stats.Frames, "updates", stats.Updates)
	if err != nil {
		lg.Error("render failed", "err", err)
	}
	return err
}

func newScene(cfg config.Scene, log *slog.Logger) (*scene.Triangle, error) {
	m, err := mesh.Triangle(cfg.TriangleHeight)
	if err != nil {
		return nil, err
	}

	var img *image.RGBA
	if cfg.Texture != "" {
		img, err = texture.Load(cfg.Texture)
	} else {
		img, err = texture.Decode(bytes.NewReader(assets.Texture()))
	}
	if err != nil {
		return nil, err
	}

	opts := scene.Options{
		ClearColor: mgl32.Vec4(cfg.ClearColor),
		Wireframe:  cfg.Wireframe,
		Transform:  mesh.IdentityTransform(),
	}
	return scene.New(log, opts, assets.Shaders(), m, img)
}
