package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/lightbeam/constant"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventBeamBounce, Frame: int64(i)})
	}

	if q.Len() != 5 {
		t.Errorf("Expected 5 pending, got %d", q.Len())
	}

	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(got))
	}
	for i, ev := range got {
		if ev.Frame != int64(i) {
			t.Errorf("Expected frame %d at %d, got %d", i, i, ev.Frame)
		}
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := constant.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventSoundRequest, Frame: int64(i)})
	}

	got := q.Consume()
	if len(got) != constant.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", constant.EventQueueSize, len(got))
	}
	if got[len(got)-1].Frame != int64(total-1) {
		t.Errorf("Expected newest frame %d, got %d", total-1, got[len(got)-1].Frame)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				q.Push(GameEvent{Type: EventBeamSpawnRequest})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != 200 {
		t.Errorf("Expected 200 events, got %d", got)
	}
}

type recordingHandler struct {
	types []EventType
	seen  []EventType
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }
func (h *recordingHandler) HandleEvent(ev GameEvent) { h.seen = append(h.seen, ev.Type) }

type recordingObserver struct {
	count int
}

func (o *recordingObserver) ObserveEvent(GameEvent) { o.count++ }

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	bounce := &recordingHandler{types: []EventType{EventBeamBounce}}
	both := &recordingHandler{types: []EventType{EventBeamBounce, EventLevelTransition}}
	obs := &recordingObserver{}
	r.Register(bounce)
	r.Register(both)
	r.Observe(obs)

	q.Push(GameEvent{Type: EventBeamBounce})
	q.Push(GameEvent{Type: EventLevelTransition})
	q.Push(GameEvent{Type: EventSoundRequest})

	if n := r.DispatchAll(); n != 3 {
		t.Errorf("Expected 3 dispatched, got %d", n)
	}
	if len(bounce.seen) != 1 {
		t.Errorf("Expected bounce handler to see 1 event, got %d", len(bounce.seen))
	}
	if len(both.seen) != 2 {
		t.Errorf("Expected dual handler to see 2 events, got %d", len(both.seen))
	}
	if obs.count != 3 {
		t.Errorf("Expected observer to see 3 events, got %d", obs.count)
	}
	if r.HandlerCount(EventBeamBounce) != 2 {
		t.Errorf("Expected 2 bounce handlers, got %d", r.HandlerCount(EventBeamBounce))
	}
	if r.HasHandlers(EventAimChange) {
		t.Error("Expected no aim handlers")
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	name := GetEventName(EventBeamBounce)
	if name != "EventBeamBounce" {
		t.Errorf("Expected EventBeamBounce, got %q", name)
	}
	et, ok := GetEventType(name)
	if !ok || et != EventBeamBounce {
		t.Errorf("Expected type round trip, got %v (ok=%v)", et, ok)
	}
	if _, ok := NewPayloadStruct(EventBeamBounce).(*BeamBouncePayload); !ok {
		t.Error("Expected *BeamBouncePayload")
	}
	if NewPayloadStruct(EventNone) != nil {
		t.Error("Expected nil payload for unregistered type")
	}
}
