package app

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/butterfly/palette"
)

// HandleEvent applies one terminal event; returns false when the app should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventResize:
		a.screen.Sync()
		a.Draw()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		a.start()
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 's':
		a.start()
	case 'x', ' ':
		a.anim.Stop()
	case 'r':
		a.anim.Stop()
		a.start()
	case 'p':
		a.cyclePalette()
	}
	return true
}

func (a *App) start() {
	if a.anim.Running() {
		return
	}
	a.meter.Reset()
	a.anim.Start()
	log.Printf("animation started: %d segments per cycle, %d cycles", a.anim.SegmentsPerCycle(), a.anim.MaxRepeats())
}

// cyclePalette toggles between the basic palette and the configured gradient
// Ignored while running; the animator returns to Idle with the new palette
func (a *App) cyclePalette() {
	if a.anim.Running() {
		return
	}

	acfg := a.anim.Config()
	name := palette.NameBasic
	if acfg.Palette.Policy() == palette.PolicyDiscrete {
		name = a.gradient
	}

	p, err := palette.Lookup(name, a.cfg.Palette.Entries)
	if err != nil {
		log.Printf("palette switch failed: %v", err)
		return
	}
	acfg.Palette = p
	if err := a.anim.Configure(acfg); err != nil {
		log.Printf("palette switch failed: %v", err)
		return
	}
	a.cfg.Palette.Name = name
	log.Printf("palette switched to %s (%d colors)", p.Name(), p.Len())
	a.Draw()
}
