package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/lixenwraith/lightbeam/audio"
	"github.com/lixenwraith/lightbeam/config"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/level"
	"github.com/lixenwraith/lightbeam/network"
	"github.com/lixenwraith/lightbeam/replay"
	"github.com/lixenwraith/lightbeam/status"
	"github.com/lixenwraith/lightbeam/system"
)

var (
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/lightbeam.log")
	levelFlag    = flag.String("level", "", "First level to load")
	wsFlag       = flag.String("ws", "", "Stream frames over websocket on this address, e.g. :8080")
	recordFlag   = flag.String("record", "", "Record events and frames under this directory")
	headlessFlag = flag.Bool("headless", false, "Run without a terminal")
	ticksFlag    = flag.Int("ticks", 0, "Stop a headless run after this many ticks")
	seedFlag     = flag.Int64("seed", 0, "Spark jitter seed, 0 keeps the configured seed")
)

// app holds the wired simulation shared by the headless and terminal runners
type app struct {
	cfg       *config.Config
	world     *engine.World
	pipeline  *system.Pipeline
	levels    *level.Manager
	scheduler *engine.ClockScheduler
	pub       *publisher
	sound     *audio.SoundManager
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lightbeam: %v\n", err)
		os.Exit(2)
	}
	applyFlags(cfg)
	if !cfg.Headless && !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Headless = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "lightbeam: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "lightbeam: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overrides environment settings with explicitly set flags
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "level":
			cfg.Level = *levelFlag
		case "ws":
			cfg.WSAddr = *wsFlag
		case "record":
			cfg.ReplayDir = *recordFlag
		case "headless":
			cfg.Headless = *headlessFlag
		case "ticks":
			cfg.Ticks = *ticksFlag
		case "seed":
			if *seedFlag != 0 {
				cfg.Seed = *seedFlag
			}
		}
	})
}

func run(cfg *config.Config) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Headless {
		return a.runHeadless(ctx)
	}
	return a.runTerminal(ctx)
}

// newApp builds world, systems, level and the optional outputs
func newApp(cfg *config.Config) (*app, error) {
	world := engine.NewWorld()
	pipeline := system.NewPipeline(world, cfg.LightSpeed, cfg.Seed)

	levels := level.NewManager(world)
	if err := levels.Load(cfg.Level); err != nil {
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		world:    world,
		pipeline: pipeline,
		levels:   levels,
		pub:      newPublisher(world, pipeline.Cache),
	}

	if !cfg.Headless && cfg.Audio.Enabled {
		sound := audio.NewSoundManager(cfg.Audio)
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			a.sound = sound
			world.Resources.Audio = &engine.AudioResource{Player: sound}
		}
	}

	a.scheduler = engine.NewClockScheduler(world, engine.NewMonotonicTimeProvider(), cfg.TickInterval())
	a.scheduler.OnTick(a.pub.onTick)

	if cfg.ReplayDir != "" {
		rec, err := replay.NewRecorder(cfg.ReplayDir, cfg.Level, cfg.TickHz, nil)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("start recorder: %w", err)
		}
		a.pub.rec = rec
		a.scheduler.Observe(rec)
		log.Printf("recording to %s", rec.Directory())
	}

	if cfg.WSAddr != "" {
		netCfg := network.DefaultConfig()
		netCfg.Address = cfg.WSAddr
		hub := network.NewHub(netCfg, world.Resources.Event.Queue, world.Resources.Status)
		if err := hub.Start(); err != nil {
			a.close()
			return nil, fmt.Errorf("start hub: %w", err)
		}
		a.pub.hub = hub
		log.Printf("streaming frames on %s%s", hub.Addr(), netCfg.Path)
	}

	return a, nil
}

// close releases outputs in reverse start order
func (a *app) close() {
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	if a.pub.hub != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := a.pub.hub.Stop(ctx); err != nil {
			log.Printf("hub stop: %v", err)
		}
		cancel()
	}
	if a.pub.rec != nil {
		if err := a.pub.rec.Close(); err != nil {
			log.Printf("recorder close: %v", err)
		}
	}
	if a.sound != nil {
		a.sound.Cleanup()
	}
}

// runHeadless steps a fixed number of ticks, or runs in real time until interrupted
func (a *app) runHeadless(ctx context.Context) error {
	if a.cfg.Ticks > 0 {
		for i := 0; i < a.cfg.Ticks && ctx.Err() == nil; i++ {
			a.scheduler.Step()
		}
	} else {
		a.scheduler.Start()
		<-ctx.Done()
		a.scheduler.Stop()
	}

	reg := a.world.Resources.Status
	fmt.Printf("level %s: %d ticks, %d beams, %d bounces, %d sensors lit\n",
		reg.Strings.Get(status.KeyLevel).Load(),
		a.scheduler.TickCount(),
		reg.Ints.Get(status.KeyBeams).Load(),
		reg.Ints.Get(status.KeyBounces).Load(),
		reg.Ints.Get(status.KeySensorsLit).Load(),
	)
	return nil
}
