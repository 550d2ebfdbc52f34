package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/event"
	"github.com/lixenwraith/lightbeam/status"
)

// TickHook runs after systems, still under the world lock
type TickHook func(frame int64)

// ClockScheduler drives game logic on a fixed tick
// Each tick dispatches queued events, runs systems in priority order, then calls hooks
type ClockScheduler struct {
	world   *World
	clock   TimeProvider
	timeRes *TimeResource
	eqRes   *EventQueueResource

	isPaused atomic.Bool

	// Tick configuration
	tickInterval     time.Duration
	gameTime         time.Time // Advances one interval per tick, independent of wall clock
	nextTickDeadline time.Time // Next tick deadline for drift correction

	tickCount atomic.Int64
	mu        sync.Mutex

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Event routing
	eventRouter *event.Router
	hooks       []TickHook

	// Cached metric pointers
	statTicks  *atomic.Int64
	statEvents *atomic.Int64
}

// NewClockScheduler creates a scheduler with the given tick interval
// Systems implementing event.Handler are registered with the router automatically
func NewClockScheduler(world *World, clock TimeProvider, tickInterval time.Duration) *ClockScheduler {
	cs := &ClockScheduler{
		world:        world,
		clock:        clock,
		timeRes:      world.Resources.Time,
		eqRes:        world.Resources.Event,
		tickInterval: tickInterval,
		gameTime:     clock.Now(),
		stopChan:     make(chan struct{}),
		eventRouter:  event.NewRouter(world.Resources.Event.Queue),
		statTicks:    world.Resources.Status.Ints.Get(status.KeyTicks),
		statEvents:   world.Resources.Status.Ints.Get(status.KeyEvents),
	}

	for _, sys := range world.Systems() {
		if h, ok := sys.(event.Handler); ok {
			cs.eventRouter.Register(h)
		}
	}

	return cs
}

// RegisterEventHandler adds an event handler to router, must be called before Start()
func (cs *ClockScheduler) RegisterEventHandler(handler event.Handler) {
	cs.eventRouter.Register(handler)
}

// Observe adds an observer that sees every dispatched event, must be called before Start()
func (cs *ClockScheduler) Observe(o event.Observer) {
	cs.eventRouter.Observe(o)
}

// OnTick adds a hook called at the end of every tick, must be called before Start()
func (cs *ClockScheduler) OnTick(hook TickHook) {
	cs.hooks = append(cs.hooks, hook)
}

// Router exposes the event router for inspection
func (cs *ClockScheduler) Router() *event.Router {
	return cs.eventRouter
}

// TickCount returns the number of processed ticks
func (cs *ClockScheduler) TickCount() int64 {
	return cs.tickCount.Load()
}

// Pause suspends ticking, Step still advances manually
func (cs *ClockScheduler) Pause() {
	cs.isPaused.Store(true)
}

// Resume continues ticking, resetting the deadline so paused time is not replayed
func (cs *ClockScheduler) Resume() {
	if cs.isPaused.CompareAndSwap(true, false) {
		cs.mu.Lock()
		cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
		cs.mu.Unlock()
	}
}

// IsPaused returns current pause state
func (cs *ClockScheduler) IsPaused() bool {
	return cs.isPaused.Load()
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// Step processes a single tick synchronously, used by headless runs and tests
func (cs *ClockScheduler) Step() {
	cs.processTick()
}

// schedulerLoop runs the main scheduling loop with drift correction
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if cs.isPaused.Load() {
			sleepDuration = cs.tickInterval * 2
		} else {
			now := cs.clock.Now()

			cs.mu.Lock()
			deadline := cs.nextTickDeadline
			cs.mu.Unlock()

			if !now.Before(deadline) {
				cs.processTick()

				cs.mu.Lock()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				// Skip ahead instead of bursting when far behind
				if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
					cs.nextTickDeadline = now.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()

				sleepDuration = deadline.Sub(cs.clock.Now())
			} else {
				sleepDuration = deadline.Sub(now)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}

// processTick executes one clock cycle
func (cs *ClockScheduler) processTick() {
	cs.world.RunSafe(func() {
		frame := cs.tickCount.Add(1)

		cs.mu.Lock()
		cs.gameTime = cs.gameTime.Add(cs.tickInterval)
		gameTime := cs.gameTime
		cs.mu.Unlock()

		cs.timeRes.Update(gameTime, cs.tickInterval, frame)

		dispatched := cs.eventRouter.DispatchAll()
		cs.statEvents.Add(int64(dispatched))

		cs.world.UpdateLocked()

		for _, hook := range cs.hooks {
			hook(frame)
		}
	})

	cs.statTicks.Store(cs.tickCount.Load())
}
