// Package app hosts the animation: it owns the terminal screen, drives the
// animator from a frame ticker, redraws on a render ticker and maps keys to
// animator commands. Everything except event polling runs on the Run goroutine.
package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/butterfly/animator"
	"github.com/lixenwraith/butterfly/audio"
	"github.com/lixenwraith/butterfly/config"
	"github.com/lixenwraith/butterfly/constant"
	"github.com/lixenwraith/butterfly/engine"
	"github.com/lixenwraith/butterfly/palette"
	"github.com/lixenwraith/butterfly/render"
)

// Player plays audio cues
type Player interface {
	Play(s audio.Sound)
}

type nopPlayer struct{}

func (nopPlayer) Play(audio.Sound) {}

// Options carries optional collaborators; zero values select defaults
type Options struct {
	Player Player
	Clock  engine.TimeProvider
}

// App is the host event loop
type App struct {
	screen tcell.Screen
	cfg    config.File
	anim   *animator.Animator
	orch   *render.Orchestrator
	player Player
	meter  *engine.FrameMeter

	// gradient is the palette the p key switches to from basic
	gradient string
}

// New builds the animator and renderer from cfg; screen must already be initialised
func New(screen tcell.Screen, cfg config.File, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	acfg, err := cfg.Animator()
	if err != nil {
		return nil, err
	}
	anim, err := animator.New(acfg)
	if err != nil {
		return nil, err
	}

	if opts.Player == nil {
		opts.Player = nopPlayer{}
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewMonotonicTimeProvider()
	}

	a := &App{
		screen:   screen,
		cfg:      cfg,
		anim:     anim,
		orch:     render.NewOrchestrator(screen, cfg.Display.Extent),
		player:   opts.Player,
		meter:    engine.NewFrameMeter(opts.Clock, constant.FrameMeterWindow),
		gradient: constant.PalettePlasma,
	}
	if acfg.Palette.Policy() == palette.PolicyGradient {
		a.gradient = acfg.Palette.Name()
	}
	anim.SetHooks(a.hooks())
	return a, nil
}

func (a *App) hooks() animator.Hooks {
	return animator.Hooks{
		OnSegment: func(s animator.Segment) {
			log.Printf("segment %d: samples [%d, %d] color %d %s", s.ID, s.Start, s.End, s.ColorIndex, s.Color)
		},
		OnCycle: func(repeat int) {
			log.Printf("cycle %d/%d complete", repeat, a.anim.MaxRepeats())
			a.player.Play(audio.SoundChime)
		},
		OnStop: func(reason animator.StopReason) {
			log.Printf("animation stopped (%s) after %d cycles", reason, a.anim.Repeat())
			if reason == animator.StopCompleted {
				a.player.Play(audio.SoundFinish)
			}
		},
	}
}

// Animator exposes the state machine for inspection
func (a *App) Animator() *animator.Animator {
	return a.anim
}

// Run processes events and ticks until quit is requested or ctx is done
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, constant.EventChannelSize)
	go a.pollEvents(ctx, events)

	acfg := a.anim.Config()
	frameTicker := time.NewTicker(acfg.FrameInterval)
	defer frameTicker.Stop()
	renderTicker := time.NewTicker(a.cfg.Display.RenderInterval())
	defer renderTicker.Stop()

	var autoStart <-chan time.Time
	if a.cfg.Display.Trigger == constant.TriggerAuto {
		timer := time.NewTimer(a.cfg.Display.AutoStartDelay())
		defer timer.Stop()
		autoStart = timer.C
	}

	log.Printf("event loop started: trigger=%s palette=%s", a.cfg.Display.Trigger, a.cfg.Palette.Name)
	a.Draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				return nil
			}

		case <-autoStart:
			autoStart = nil
			a.start()

		case <-frameTicker.C:
			a.Step()

		case <-renderTicker.C:
			a.Draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or ctx ends
func (a *App) pollEvents(ctx context.Context, out chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			a.screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Step advances the animator by one frame while running
func (a *App) Step() {
	if !a.anim.Running() {
		return
	}
	a.anim.Tick()
	a.meter.Tick()
}

// Draw renders the current segments and status
func (a *App) Draw() {
	a.orch.Render(a.anim.Segments(), a.status())
}

func (a *App) status() render.Status {
	return render.Status{
		State:      a.anim.State(),
		Repeat:     a.anim.Repeat(),
		MaxRepeats: a.anim.MaxRepeats(),
		Segments:   len(a.anim.Segments()),
		Palette:    a.anim.Config().Palette.Name(),
		Trigger:    a.cfg.Display.Trigger,
		TickRate:   a.meter.Rate(),
	}
}
