package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-raycaster/asset"
	"github.com/lixenwraith/vi-raycaster/audio"
	"github.com/lixenwraith/vi-raycaster/config"
	"github.com/lixenwraith/vi-raycaster/engine"
	"github.com/lixenwraith/vi-raycaster/input"
	"github.com/lixenwraith/vi-raycaster/level"
	"github.com/lixenwraith/vi-raycaster/maze"
	"github.com/lixenwraith/vi-raycaster/render"
	"github.com/lixenwraith/vi-raycaster/terminal"
)

var (
	configFlag      = flag.String("config", "", "Config file (default: "+config.DefaultConfigPath+" if present)")
	levelFlag       = flag.String("level", "", "Level file (default: "+level.DefaultLevelPath+" if present, else built-in)")
	mazeFlag        = flag.Bool("maze", false, "Play a generated maze instead of a level file")
	seedFlag        = flag.Int64("seed", 0, "Maze seed (0 = random)")
	debugFlag       = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	muteFlag        = flag.Bool("mute", false, "Start with audio muted")
	widthFlag       = flag.Int("width", 0, "Frame width in cells (0 = terminal width)")
	heightFlag      = flag.Int("height", 0, "Frame height in cells (0 = terminal height minus status line)")
	writeConfigFlag = flag.String("write-config", "", "Write the default config to this path and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-RAYCASTER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if *writeConfigFlag != "" {
		if err := os.WriteFile(*writeConfigFlag, []byte(asset.DefaultConfigYAML), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		logrus.WithError(err).Error("exit with error")
		fmt.Fprintf(os.Stderr, "vi-raycaster: %v\n", err)
		os.Exit(1)
	}
}

// run owns the screen; every return path finalizes it before main prints anything
func run() error {
	cfg, err := config.LoadAuto(*configFlag)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, err := loadLevel(cfg)
	if err != nil {
		return err
	}

	keys, err := input.DefaultKeyTable().WithOverrides(cfg.Keys.Runes, cfg.Keys.Special)
	if err != nil {
		return fmt.Errorf("keys: %w", err)
	}

	if !terminal.IsInteractive(os.Stdout) {
		return fmt.Errorf("stdout is not a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	renderer := render.NewTerminalRenderer(screen)
	viewW, viewH := renderer.ViewSize()
	if cfg.Screen.Width == 0 {
		cfg.Screen.Width = viewW
	}
	if cfg.Screen.Height == 0 {
		cfg.Screen.Height = viewH
	}

	session, err := engine.NewSession(lvl, cfg)
	if err != nil {
		return err
	}

	var cues engine.CueSink
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume, *muteFlag)
		if err := sm.Initialize(); err != nil {
			logrus.WithError(err).Warn("audio initialization failed, continuing without audio")
		} else {
			defer sm.Cleanup()
			cues = sm
		}
	}

	events := input.NewEventSource(screen, keys)
	defer events.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := engine.NewGame(session, renderer, events, cues, cfg.Timing.Tick, cfg.Timing.Poll)
	return game.Run(ctx)
}

// applyFlags layers command-line overrides on the loaded config
func applyFlags(cfg *config.Config) {
	if *mazeFlag {
		cfg.Maze.Enabled = true
	}
	if *seedFlag != 0 {
		cfg.Maze.Seed = *seedFlag
	}
	if *widthFlag > 0 {
		cfg.Screen.Width = *widthFlag
	}
	if *heightFlag > 0 {
		cfg.Screen.Height = *heightFlag
	}
}

func loadLevel(cfg *config.Config) (*level.Level, error) {
	if !cfg.Maze.Enabled {
		return level.LoadAuto(*levelFlag)
	}
	res := maze.Generate(maze.Config{
		Width:    cfg.Maze.Width,
		Height:   cfg.Maze.Height,
		Braiding: cfg.Maze.Braiding,
		Seed:     cfg.Maze.Seed,
	})
	logrus.WithFields(logrus.Fields{
		"seed": res.Seed,
		"size": fmt.Sprintf("%dx%d", res.Grid.Width(), res.Grid.Height()),
		"hops": res.SolutionPath.Hops(),
	}).Info("maze generated")
	return level.FromMaze(res), nil
}
