package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/event"
	"github.com/lixenwraith/lightbeam/render"
)

const (
	aimStep = math.Pi / 32
	aimFine = math.Pi / 128
)

// runTerminal drives the simulation in real time and draws the latest frame at the render rate
func (a *app) runTerminal(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashRestore(screen.Fini)
	defer func() {
		core.SetCrashRestore(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	orchestrator := render.NewDefaultOrchestrator(screen, a.world.Resources.Status)

	input := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case input <- ev:
			case <-done:
				return
			}
		}
	})

	a.scheduler.Start()
	defer a.scheduler.Stop()

	ticker := time.NewTicker(constant.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-input:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				orchestrator.Resize()
			case *tcell.EventKey:
				if !a.handleKey(ev, orchestrator) {
					return nil
				}
			}
		case <-ticker.C:
			orchestrator.RenderFrame(a.pub.Latest())
		}
	}
}

// handleKey maps a key to a game command, returns false on quit
func (a *app) handleKey(ev *tcell.EventKey, orchestrator *render.RenderOrchestrator) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		a.push(event.EventAimChange, &event.AimChangePayload{Delta: aimStep})
	case tcell.KeyRight:
		a.push(event.EventAimChange, &event.AimChangePayload{Delta: -aimStep})
	case tcell.KeyUp:
		a.push(event.EventAimChange, &event.AimChangePayload{Delta: aimFine})
	case tcell.KeyDown:
		a.push(event.EventAimChange, &event.AimChangePayload{Delta: -aimFine})
	case tcell.KeyRune:
		return a.handleRune(ev.Rune(), orchestrator)
	}
	return true
}

func (a *app) handleRune(r rune, orchestrator *render.RenderOrchestrator) bool {
	switch {
	case r >= '1' && r < '1'+rune(core.LightColorCount):
		a.push(event.EventBeamSpawnRequest, &event.BeamSpawnRequestPayload{Color: core.LightColor(r - '1')})
	case r == 'q':
		return false
	case r == 'n':
		if err := a.levels.Next(); err != nil {
			log.Printf("next level: %v", err)
		}
	case r == 'm':
		if a.sound != nil {
			log.Printf("audio muted: %t", a.sound.ToggleMute())
		}
	case r == 'h':
		if orchestrator != nil {
			orchestrator.ToggleHud()
		}
	case r == 'p' || r == ' ':
		if a.scheduler.IsPaused() {
			a.scheduler.Resume()
		} else {
			a.scheduler.Pause()
		}
	}
	return true
}

// push enqueues a command without touching world state owned by the tick goroutine
func (a *app) push(t event.EventType, payload any) {
	a.world.Resources.Event.Queue.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   a.scheduler.TickCount(),
	})
}
