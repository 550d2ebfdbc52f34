package engine

import (
	"sync"
	"testing"

	"github.com/lixenwraith/lightbeam/component"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/vmath"
)

// recordingSystem appends its name to a shared log on every update
type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	inits    int
}

func (s *recordingSystem) Init()         { s.inits++ }
func (s *recordingSystem) Name() string  { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Update()       { *s.log = append(*s.log, s.name) }

func TestStoreLifecycle(t *testing.T) {
	store := NewStore[component.MirrorComponent]()
	store.SetComponent(3, component.MirrorComponent{})
	store.SetComponent(1, component.MirrorComponent{})
	store.SetComponent(2, component.MirrorComponent{})
	store.SetComponent(2, component.MirrorComponent{})

	if store.CountEntities() != 3 {
		t.Errorf("Expected 3 entities, got %d", store.CountEntities())
	}

	store.RemoveEntity(3)
	if store.HasEntity(3) {
		t.Error("Expected entity 3 removed")
	}

	sorted := store.SortedEntities()
	if len(sorted) != 2 || sorted[0] != 1 || sorted[1] != 2 {
		t.Errorf("Expected sorted [1 2], got %v", sorted)
	}

	store.RemoveEntity(1)
	store.RemoveEntity(2)
	if store.CountEntities() != 0 {
		t.Errorf("Expected empty store, got %d", store.CountEntities())
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore[component.SparkComponent]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				e := core.Entity(base*100 + j + 1)
				store.SetComponent(e, component.SparkComponent{Remaining: 1})
				store.GetComponent(e)
			}
		}(i)
	}
	wg.Wait()

	if store.CountEntities() != 800 {
		t.Errorf("Expected 800 entities, got %d", store.CountEntities())
	}
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	world := NewWorld()
	var log []string
	world.AddSystem(&recordingSystem{name: "audio", priority: 80, log: &log})
	world.AddSystem(&recordingSystem{name: "tick", priority: 20, log: &log})
	world.AddSystem(&recordingSystem{name: "light", priority: 40, log: &log})

	world.RunSafe(world.UpdateLocked)

	expected := []string{"tick", "light", "audio"}
	if len(log) != len(expected) {
		t.Fatalf("Expected %d updates, got %d", len(expected), len(log))
	}
	for i := range expected {
		if log[i] != expected[i] {
			t.Errorf("Expected %s at %d, got %s", expected[i], i, log[i])
		}
	}
}

func TestDestroyEntityRemovesCollider(t *testing.T) {
	world := NewWorld()
	e := world.CreateEntity()
	world.Components.Mirror.SetComponent(e, component.MirrorComponent{})
	world.Components.Wall.SetComponent(e, component.WallComponent{Min: vmath.V2(0, 0), Max: vmath.V2(1, 1)})
	world.Resources.Physics.Space.AddBox(e, vmath.V2(0, 0), vmath.V2(1, 1), core.TerrainFilter)

	if !world.IsMirror(e) {
		t.Error("Expected entity to be a mirror")
	}

	world.DestroyEntity(e)

	if world.IsMirror(e) || world.Components.Wall.HasEntity(e) {
		t.Error("Expected components removed")
	}
	if _, ok := world.Resources.Physics.Space.Get(e); ok {
		t.Error("Expected collider removed")
	}
}

func TestCreateEntityUnique(t *testing.T) {
	world := NewWorld()
	seen := make(map[core.Entity]bool)
	for i := 0; i < 100; i++ {
		e := world.CreateEntity()
		if e == core.NoEntity {
			t.Fatal("Expected non-zero entity")
		}
		if seen[e] {
			t.Fatalf("Duplicate entity %d", e)
		}
		seen[e] = true
	}

	last := world.CreateEntity()
	world.DestroyEntity(last)
	if e := world.CreateEntity(); e <= last {
		t.Errorf("Expected destroyed id %d not to be reused, got %d", last, e)
	}
}

func TestPhysicsQueryNilWhenUnavailable(t *testing.T) {
	world := NewWorld()
	if world.Resources.Physics.Query() == nil {
		t.Error("Expected query service present")
	}
	world.Resources.Physics.Space = nil
	if world.Resources.Physics.Query() != nil {
		t.Error("Expected nil query when space missing")
	}
}
