package level

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/event"
	"github.com/lixenwraith/lightbeam/status"
	"github.com/lixenwraith/lightbeam/system"
	"github.com/lixenwraith/lightbeam/vmath"
)

func newRig(t *testing.T) (*engine.World, *system.Pipeline, *engine.ClockScheduler, *Manager) {
	t.Helper()
	world := engine.NewWorld()
	pipeline := system.NewPipeline(world, constant.LightSpeed, 1)
	scheduler := engine.NewClockScheduler(world, engine.NewMockTimeProvider(time.Unix(0, 0)), constant.GameUpdateInterval)
	return world, pipeline, scheduler, NewManager(world)
}

func TestLoadBuildsGeometry(t *testing.T) {
	world, _, _, m := newRig(t)

	if err := m.Load("corridor"); err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}

	if got := world.Components.Wall.CountEntities(); got != 5 {
		t.Errorf("Expected 5 walls, got %d", got)
	}
	if got := world.Components.Sensor.CountEntities(); got != 1 {
		t.Errorf("Expected 1 sensor, got %d", got)
	}
	if got := world.Components.Crystal.CountEntities(); got != 1 {
		t.Errorf("Expected 1 crystal, got %d", got)
	}
	if got := world.Resources.Physics.Space.Len(); got != 7 {
		t.Errorf("Expected 7 colliders, got %d", got)
	}
	if world.Resources.Level.Name != "corridor" || world.Resources.Level.Max != vmath.V2(160, 80) {
		t.Errorf("Expected corridor bounds, got %+v", world.Resources.Level)
	}
	if got := world.Resources.Status.Strings.Get(status.KeyLevel).Load(); got != "corridor" {
		t.Errorf("Expected level metric corridor, got %q", got)
	}

	players := world.Components.Inventory.GetAllEntities()
	if len(players) != 1 {
		t.Fatalf("Expected one player, got %d", len(players))
	}
	inv, _ := world.Components.Inventory.GetComponent(players[0])
	if !inv.Available(core.LightGreen) || inv.Available(core.LightWhite) {
		t.Errorf("Expected green allowed and white disallowed, got %+v", inv.Allowed)
	}
	if inv.Current != core.LightGreen {
		t.Errorf("Expected current color green, got %s", inv.Current)
	}
}

func TestUnknownLevel(t *testing.T) {
	_, _, _, m := newRig(t)

	if err := m.Load("nowhere"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Expected ErrUnknownLevel from Load, got %v", err)
	}
	if err := m.Switch("nowhere"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Expected ErrUnknownLevel from Switch, got %v", err)
	}
	if m.Current() != "" {
		t.Errorf("Expected no level loaded, got %q", m.Current())
	}
}

func TestBlueCrystalPassesBlueLight(t *testing.T) {
	world, _, _, m := newRig(t)
	if err := m.Load("prism"); err != nil {
		t.Fatal(err)
	}

	space := world.Resources.Physics.Space
	origin, dir := vmath.V2(20, 40), vmath.V2(1, 0)

	hit, ok := space.CastRay(origin, dir, 1000, core.LightBlue.CollisionFilter(), core.NoEntity)
	if !ok || !world.Components.Sensor.HasEntity(hit.Entity) {
		t.Errorf("Expected blue ray to pass crystals and reach the sensor, got %+v", hit)
	}

	hit, ok = space.CastRay(origin, dir, 1000, core.LightWhite.CollisionFilter(), core.NoEntity)
	if !ok || !world.Components.Crystal.HasEntity(hit.Entity) || hit.Point.X != 80 {
		t.Errorf("Expected white ray to stop on the first crystal at x=80, got %+v", hit)
	}
}

func TestSwitchResetsLevel(t *testing.T) {
	world, pipeline, scheduler, m := newRig(t)
	if err := m.Load("corridor"); err != nil {
		t.Fatal(err)
	}

	green := pipeline.Registry.SpawnBeam(vmath.V2(20, 40), vmath.V2(1, 0), core.LightGreen)
	black := pipeline.Registry.SpawnBeam(vmath.V2(20, 40), vmath.V2(0, 1), core.LightBlack)
	scheduler.Step()

	transitions := 0
	scheduler.Observe(event.ObserverFunc(func(ev event.GameEvent) {
		if ev.Type == event.EventLevelTransition {
			transitions++
			payload := ev.Payload.(*event.LevelTransitionPayload)
			if payload.From != "corridor" || payload.To != "mirrors" {
				t.Errorf("Expected corridor -> mirrors, got %+v", payload)
			}
		}
	}))

	if err := m.Switch("mirrors"); err != nil {
		t.Fatal(err)
	}
	if got := world.Components.Mirror.CountEntities(); got != 2 {
		t.Errorf("Expected 2 mirrors, got %d", got)
	}
	if got := world.Components.Platform.CountEntities(); got != 1 {
		t.Errorf("Expected 1 platform, got %d", got)
	}
	if got := world.Components.Emitter.CountEntities(); got != 1 {
		t.Errorf("Expected the old player replaced, got %d emitters", got)
	}

	scheduler.Step()
	if transitions != 1 {
		t.Errorf("Expected one transition event, got %d", transitions)
	}
	if world.Components.Beam.HasEntity(green) {
		t.Error("Expected green beam despawned on transition")
	}
	if !world.Components.Beam.HasEntity(black) {
		t.Error("Expected black beam to persist across levels")
	}
}

func TestNextWraps(t *testing.T) {
	_, _, _, m := newRig(t)
	if err := m.Load("prism"); err != nil {
		t.Fatal(err)
	}
	if err := m.Next(); err != nil {
		t.Fatal(err)
	}
	if m.Current() != "corridor" {
		t.Errorf("Expected wrap to corridor, got %q", m.Current())
	}
	if err := m.Next(); err != nil {
		t.Fatal(err)
	}
	if m.Current() != "mirrors" {
		t.Errorf("Expected mirrors after corridor, got %q", m.Current())
	}
}
