package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/butterfly/app"
	"github.com/lixenwraith/butterfly/audio"
	"github.com/lixenwraith/butterfly/config"
	"github.com/lixenwraith/butterfly/palette"
)

var (
	configFlag  = flag.String("config", "", "Path to TOML configuration file")
	paletteFlag = flag.String("palette", "", "Palette: basic, plasma, viridis, rainbow")
	entriesFlag = flag.Int("entries", 0, "Number of colors sampled from a gradient palette")
	repeatsFlag = flag.Int("repeats", 0, "Cycles drawn before the animation stops")
	triggerFlag = flag.String("trigger", "", "Start trigger: manual or auto")
	muteFlag    = flag.Bool("mute", false, "Disable audio cues")
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/butterfly.log")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n\nPalettes: %v\n\n", os.Args[0], palette.Names())
		flag.PrintDefaults()
	}
	flag.Parse()

	logFile := setupLogging(*debugFlag)

	err := run()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "butterfly: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBUTTERFLY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	var player app.Player
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sm.Close()
			player = sm
		}
	}

	a, err := app.New(screen, cfg, app.Options{Player: player})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.Run(ctx)
}

// loadConfig layers defaults, the config file and explicitly set flags
func loadConfig() (config.File, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return config.File{}, err
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		return config.File{}, err
	}
	return cfg, nil
}

// applyFlags overrides cfg with the flags given on the command line
func applyFlags(cfg *config.File) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "palette":
			cfg.Palette.Name = *paletteFlag
		case "entries":
			cfg.Palette.Entries = *entriesFlag
		case "repeats":
			cfg.Animation.MaxRepeats = *repeatsFlag
		case "trigger":
			cfg.Display.Trigger = *triggerFlag
		case "mute":
			if *muteFlag {
				cfg.Audio.Enabled = false
			}
		}
	})
}
