package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-galaxy/asset"
	"github.com/lixenwraith/vi-galaxy/audio"
	"github.com/lixenwraith/vi-galaxy/config"
	"github.com/lixenwraith/vi-galaxy/galaxy"
	"github.com/lixenwraith/vi-galaxy/parameter"
	"github.com/lixenwraith/vi-galaxy/render"
	"github.com/lixenwraith/vi-galaxy/scene"
	"github.com/lixenwraith/vi-galaxy/status"
)

var (
	configFlag      = flag.String("config", "", "Config file (.toml, .yaml)")
	seedFlag        = flag.Uint64("seed", 0, "Galaxy seed, 0 for clock")
	curveFlag       = flag.String("curve", "", "Rotation curve: kepler, flat")
	debugFlag       = flag.Bool("debug", false, "Write logs to logs/vi-galaxy.log")
	noAudioFlag     = flag.Bool("no-audio", false, "Disable the ambient soundtrack")
	writeConfigFlag = flag.String("write-config", "", "Write the default config to this path and exit")
)

func main() {
	flag.Parse()

	if *writeConfigFlag != "" {
		if err := os.WriteFile(*writeConfigFlag, []byte(asset.DefaultConfigTOML), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-GALAXY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	if err := run(cfg, screen); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file if given, then applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return nil, err
		}
	}

	if *seedFlag != 0 {
		cfg.Galaxy.Seed = *seedFlag
	}
	if *curveFlag != "" {
		cfg.Kinematics.Curve = *curveFlag
	}
	if *noAudioFlag {
		cfg.Audio.Enabled = false
	}
	if cfg.Galaxy.Seed == 0 {
		cfg.Galaxy.Seed = uint64(time.Now().UnixNano())
	}

	return cfg, cfg.Validate()
}

// run owns the frame loop until the user quits
func run(cfg *config.Config, screen tcell.Screen) error {
	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()

	cols, rows := screen.Size()
	buf := render.NewCellBuffer(cols, rows)
	w, h := buf.Size()

	state, err := galaxy.NewState(cfg, galaxy.NewSeededRand(cfg.Galaxy.Seed), w, h)
	if err != nil {
		return fmt.Errorf("failed to build galaxy: %w", err)
	}
	log.Printf("galaxy seed %d: %d bodies, %s curve", cfg.Galaxy.Seed, len(state.Bodies), cfg.Kinematics.Curve)

	if n := asset.AttachSprites(cfg.Render.Sprites, state.Companions); n > 0 {
		log.Printf("loaded %d companion sprites", n)
	}

	// Audio streams on the speaker goroutine, so it gets its own random source
	player := audio.NewPlayer(cfg.Audio, galaxy.NewSeededRand(cfg.Galaxy.Seed+1))
	if err := player.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer player.Cleanup()

	stats := &status.Stats{}
	orchestrator := scene.NewDefaultOrchestrator(cfg)
	orchestrator.SetStats(stats)
	ctrl := newController()

	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(parameter.FrameInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				buf.Resize(screen.Size())
				state.Resize(buf.Size())
			case *tcell.EventKey:
				switch ctrl.key(ev) {
				case actionQuit:
					return nil
				case actionNextTrack:
					player.Next()
				case actionMute:
					player.Toggle()
				case actionVolumeUp:
					player.AdjustVolume(parameter.VolumeStep)
				case actionVolumeDown:
					player.AdjustVolume(-parameter.VolumeStep)
				}
			case *tcell.EventMouse:
				ctrl.mouse(ev)
			}

		case now := <-frameTicker.C:
			state.Step(ctrl.frameInput())
			player.Update()

			stats.RecordFrame(now)
			stats.Bodies.Store(int64(len(state.Bodies)))
			stats.Track.Store(player.Current())

			orchestrator.RenderFrame(state, buf)
			buf.Flush(screen)
		}
	}
}
