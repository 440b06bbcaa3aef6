// Command panzoom opens an image in a pan/zoom viewer with point markers.
//
//	panzoom [flags] image
//
// Wheel pans, Ctrl/Cmd+wheel zooms around the cursor, left drag pans,
// double-click adds a marker, clicking a marker removes it and R resets
// the view.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/phanxgames/panzoom/ebitenview"
	"github.com/phanxgames/panzoom/internal/config"
	"github.com/phanxgames/panzoom/internal/imageload"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "panzoom: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := config.Flags()
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	if cfg.Image == "" {
		return errors.New("no image given")
	}

	level, _ := cfg.Level()
	logger := NewLogger(os.Stderr, level)

	viewer, err := newViewer(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("starting viewer",
		"image", cfg.Image, "space", cfg.Space(), "width", cfg.Width, "height", cfg.Height)
	return ebitenview.Run(viewer)
}

// newViewer builds the viewer for cfg, loading the image and the optional
// test script.
func newViewer(cfg config.Config, logger *slog.Logger) (*ebitenview.Viewer, error) {
	img, err := imageload.Open(cfg.Image)
	if err != nil {
		return nil, err
	}

	viewer := ebitenview.New(ebitenview.Config{
		Title:         cfg.Title,
		Width:         cfg.Width,
		Height:        cfg.Height,
		WheelPixels:   cfg.WheelPixels,
		MarkerRadius:  cfg.MarkerRadius,
		DoubleClick:   cfg.DoubleClick(),
		Zoom:          cfg.PanZoom(),
		MarkerSpace:   cfg.Space(),
		ShowDebug:     cfg.Debug,
		ScreenshotDir: cfg.ScreenshotDir,
	}, logger)
	viewer.SetImage(img)

	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
		runner, err := ebitenview.LoadTestScript(data)
		if err != nil {
			return nil, err
		}
		viewer.SetTestRunner(runner)
		logger.Info("test script attached", "path", cfg.Script)
	}
	return viewer, nil
}
