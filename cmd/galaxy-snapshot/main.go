// Command galaxy-snapshot renders frames offscreen and writes them as PNG files
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/vi-galaxy/asset"
	"github.com/lixenwraith/vi-galaxy/config"
	"github.com/lixenwraith/vi-galaxy/galaxy"
	"github.com/lixenwraith/vi-galaxy/render"
	"github.com/lixenwraith/vi-galaxy/scene"
)

type options struct {
	configPath string
	seed       uint64
	curve      string
	frames     int
	every      int
	outDir     string
	width      int
	height     int
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Config file (.toml, .yaml)")
	flag.Uint64Var(&opts.seed, "seed", 1, "Galaxy seed")
	flag.StringVar(&opts.curve, "curve", "", "Rotation curve: kepler, flat")
	flag.IntVar(&opts.frames, "frames", 1, "Frames to simulate")
	flag.IntVar(&opts.every, "every", 1, "Write every Nth frame")
	flag.StringVar(&opts.outDir, "out", "snapshots", "Output directory")
	flag.IntVar(&opts.width, "width", 0, "Image width, 0 for config")
	flag.IntVar(&opts.height, "height", 0, "Image height, 0 for config")
	flag.Parse()

	written, err := run(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "galaxy-snapshot: %v\n", err)
		os.Exit(1)
	}
	log.Printf("wrote %d frames to %s", written, opts.outDir)
}

func buildConfig(opts options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}
	if opts.seed != 0 {
		cfg.Galaxy.Seed = opts.seed
	}
	if opts.curve != "" {
		cfg.Kinematics.Curve = opts.curve
	}
	if opts.width > 0 {
		cfg.Render.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Render.Height = opts.height
	}
	return cfg, cfg.Validate()
}

// run simulates opts.frames frames and writes the selected ones, returning the count written
func run(opts options) (int, error) {
	if opts.frames < 1 || opts.every < 1 {
		return 0, fmt.Errorf("frames and every must be positive")
	}

	cfg, err := buildConfig(opts)
	if err != nil {
		return 0, err
	}

	w, h := cfg.Render.Width, cfg.Render.Height
	state, err := galaxy.NewState(cfg, galaxy.NewSeededRand(cfg.Galaxy.Seed), w, h)
	if err != nil {
		return 0, fmt.Errorf("failed to build galaxy: %w", err)
	}
	asset.AttachSprites(cfg.Render.Sprites, state.Companions)

	if err := os.MkdirAll(opts.outDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output dir: %w", err)
	}

	canvas := render.NewCanvas(w, h)
	orchestrator := scene.NewDefaultOrchestrator(cfg)

	written := 0
	for frame := 1; frame <= opts.frames; frame++ {
		state.Step(galaxy.Input{})
		if frame%opts.every != 0 && frame != opts.frames {
			continue
		}
		orchestrator.RenderFrame(state, canvas)
		if err := writePNG(filepath.Join(opts.outDir, fmt.Sprintf("frame-%05d.png", frame)), canvas); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func writePNG(path string, c *render.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, c.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
