package replay

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/event"
	"github.com/lixenwraith/lightbeam/vmath"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestRecorderRoundTrip(t *testing.T) {
	rec, err := NewRecorder(t.TempDir(), "corridor run!", 64, fixedClock)
	if err != nil {
		t.Fatalf("Expected recorder, got %v", err)
	}
	if !strings.HasSuffix(rec.Directory(), "corridorrun-20240301T120000Z") {
		t.Errorf("Expected cleaned timestamped dir, got %s", rec.Directory())
	}

	rec.ObserveEvent(event.GameEvent{
		Type:  event.EventBeamBounce,
		Frame: 10,
		Payload: &event.BeamBouncePayload{
			Beam: 3, Target: 9, Point: vmath.V2(80, 0), Color: core.LightGreen,
		},
	})
	rec.ObserveEvent(event.GameEvent{Type: event.EventLevelTransition, Frame: 11, Payload: &event.LevelTransitionPayload{From: "a", To: "b"}})

	for tick := int64(1); tick <= 3; tick++ {
		if err := rec.AppendFrame(tick, bytes.Repeat([]byte{byte(tick)}, int(tick)*10)); err != nil {
			t.Fatalf("Expected frame append, got %v", err)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Expected clean close, got %v", err)
	}

	m, err := ReadManifest(rec.Directory())
	if err != nil {
		t.Fatal(err)
	}
	if m.Events != 2 || m.Frames != 3 || m.TickHz != 64 || m.ClosedAt == "" {
		t.Errorf("Expected 2 events, 3 frames at 64 Hz with close time, got %+v", m)
	}

	frames, err := ReadFrames(rec.Directory())
	if err != nil {
		t.Fatalf("Expected frames, got %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(frames))
	}
	for i, f := range frames {
		if f.Tick != int64(i+1) || len(f.Payload) != (i+1)*10 || f.Payload[0] != byte(i+1) {
			t.Errorf("Expected frame %d intact, got tick %d len %d", i+1, f.Tick, len(f.Payload))
		}
	}

	records, err := ReadEvents(rec.Directory())
	if err != nil {
		t.Fatalf("Expected events, got %v", err)
	}
	if len(records) != 2 || records[0].Type != "EventBeamBounce" || records[0].Frame != 10 {
		t.Fatalf("Expected bounce record first, got %+v", records)
	}
	ev, err := records[0].Decode()
	if err != nil {
		t.Fatalf("Expected decode, got %v", err)
	}
	bounce, ok := ev.Payload.(*event.BeamBouncePayload)
	if !ok || bounce.Target != 9 || bounce.Point != vmath.V2(80, 0) {
		t.Errorf("Expected bounce on 9 at (80,0), got %+v", ev.Payload)
	}
}

func TestRecorderClosed(t *testing.T) {
	rec, err := NewRecorder(t.TempDir(), "", 64, fixedClock)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(rec.Directory(), "session-") {
		t.Errorf("Expected default name, got %s", rec.Directory())
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}

	if err := rec.AppendFrame(1, []byte{1}); !errors.Is(err, ErrRecorderClosed) {
		t.Errorf("Expected ErrRecorderClosed on frame, got %v", err)
	}
	if err := rec.AppendEvent(event.GameEvent{Type: event.EventBeamSpawned}); !errors.Is(err, ErrRecorderClosed) {
		t.Errorf("Expected ErrRecorderClosed on event, got %v", err)
	}
	if err := rec.Close(); !errors.Is(err, ErrRecorderClosed) {
		t.Errorf("Expected ErrRecorderClosed on second close, got %v", err)
	}

	frames, err := ReadFrames(rec.Directory())
	if err != nil || len(frames) != 0 {
		t.Errorf("Expected empty frame log, got %d frames err %v", len(frames), err)
	}
}

func TestNewRecorderRequiresRoot(t *testing.T) {
	if _, err := NewRecorder("", "x", 64, nil); err == nil {
		t.Error("Expected error for empty root")
	}
}
