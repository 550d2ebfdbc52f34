// Package replay records dispatched events and captured frames to a compressed bundle on disk
package replay

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"

	"github.com/lixenwraith/lightbeam/event"
)

// ErrRecorderClosed is returned when appending to a closed recorder
var ErrRecorderClosed = errors.New("recorder closed")

var nameCleaner = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// Bundle file names
const (
	EventsFile   = "events.jsonl.sz"
	FramesFile   = "frames.bin.zst"
	ManifestFile = "manifest.json"
)

// frameHeaderSize prefixes every frame record: [Tick:8][Len:4]
const frameHeaderSize = 12

// Manifest describes a replay bundle
type Manifest struct {
	Version    int    `json:"version"`
	CreatedAt  string `json:"created_at"`
	ClosedAt   string `json:"closed_at,omitempty"`
	TickHz     int    `json:"tick_hz"`
	EventsPath string `json:"events_path"`
	FramesPath string `json:"frames_path"`
	Events     int    `json:"events"`
	Frames     int    `json:"frames"`
}

// EventRecord is one line of the event log
type EventRecord struct {
	Frame   int64           `json:"frame"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Recorder writes a replay bundle
// Implements event.Observer so the scheduler can feed it every dispatched event
type Recorder struct {
	mu       sync.Mutex
	dir      string
	now      func() time.Time
	manifest Manifest
	closed   bool

	eventFile   *os.File
	eventStream *snappy.Writer
	frameFile   *os.File
	frameStream *zstd.Encoder
}

// NewRecorder creates a timestamped bundle directory under root and opens the compressed sinks
func NewRecorder(root, name string, tickHz int, clock func() time.Time) (*Recorder, error) {
	if root == "" {
		return nil, fmt.Errorf("replay root must be provided")
	}
	if clock == nil {
		clock = time.Now
	}

	cleaned := nameCleaner.ReplaceAllString(name, "")
	if cleaned == "" {
		cleaned = "session"
	}
	created := clock().UTC()
	dir := filepath.Join(root, fmt.Sprintf("%s-%s", cleaned, created.Format("20060102T150405Z")))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create replay dir: %w", err)
	}

	eventFile, err := os.Create(filepath.Join(dir, EventsFile))
	if err != nil {
		return nil, fmt.Errorf("create event log: %w", err)
	}
	frameFile, err := os.Create(filepath.Join(dir, FramesFile))
	if err != nil {
		eventFile.Close()
		return nil, fmt.Errorf("create frame log: %w", err)
	}
	frameStream, err := zstd.NewWriter(frameFile)
	if err != nil {
		eventFile.Close()
		frameFile.Close()
		return nil, fmt.Errorf("zstd writer: %w", err)
	}

	r := &Recorder{
		dir: dir,
		now: clock,
		manifest: Manifest{
			Version:    1,
			CreatedAt:  created.Format(time.RFC3339Nano),
			TickHz:     tickHz,
			EventsPath: EventsFile,
			FramesPath: FramesFile,
		},
		eventFile:   eventFile,
		eventStream: snappy.NewBufferedWriter(eventFile),
		frameFile:   frameFile,
		frameStream: frameStream,
	}

	if err := r.writeManifest(); err != nil {
		r.closeStreams()
		return nil, err
	}
	return r, nil
}

// Directory returns the bundle directory
func (r *Recorder) Directory() string {
	return r.dir
}

// ObserveEvent appends a dispatched event to the event log
// Write errors are logged; the simulation never blocks on replay
func (r *Recorder) ObserveEvent(ev event.GameEvent) {
	if err := r.AppendEvent(ev); err != nil && !errors.Is(err, ErrRecorderClosed) {
		log.Printf("replay: event %d: %v", ev.Type, err)
	}
}

// AppendEvent writes one event as a JSON line
func (r *Recorder) AppendEvent(ev event.GameEvent) error {
	rec := EventRecord{Frame: ev.Frame, Type: event.GetEventName(ev.Type)}
	if rec.Type == "" {
		rec.Type = fmt.Sprintf("event(%d)", ev.Type)
	}
	if ev.Payload != nil {
		payload, err := json.Marshal(ev.Payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		rec.Payload = payload
	}
	line, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRecorderClosed
	}
	if _, err := r.eventStream.Write(append(line, '\n')); err != nil {
		return err
	}
	r.manifest.Events++
	return nil
}

// AppendFrame writes one encoded frame with its tick
func (r *Recorder) AppendFrame(tick int64, payload []byte) error {
	var header [frameHeaderSize]byte
	binary.BigEndian.PutUint64(header[0:8], uint64(tick))
	binary.BigEndian.PutUint32(header[8:12], uint32(len(payload)))

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRecorderClosed
	}
	if _, err := r.frameStream.Write(header[:]); err != nil {
		return err
	}
	if _, err := r.frameStream.Write(payload); err != nil {
		return err
	}
	r.manifest.Frames++
	return nil
}

// Close flushes both streams and finalizes the manifest
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRecorderClosed
	}
	r.closed = true

	err := r.closeStreams()
	r.manifest.ClosedAt = r.now().UTC().Format(time.RFC3339Nano)
	if merr := r.writeManifest(); err == nil {
		err = merr
	}
	return err
}

func (r *Recorder) closeStreams() error {
	var errs []error
	if err := r.eventStream.Close(); err != nil {
		errs = append(errs, fmt.Errorf("flush events: %w", err))
	}
	if err := r.eventFile.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := r.frameStream.Close(); err != nil {
		errs = append(errs, fmt.Errorf("flush frames: %w", err))
	}
	if err := r.frameFile.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (r *Recorder) writeManifest() error {
	data, err := json.MarshalIndent(r.manifest, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(r.dir, ManifestFile), data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
