package replay

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"

	"github.com/lixenwraith/lightbeam/event"
)

// FrameRecord is one stored frame
type FrameRecord struct {
	Tick    int64
	Payload []byte
}

// ReadManifest loads the manifest of a bundle directory
func ReadManifest(dir string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}

// ReadFrames decodes every frame record of a bundle
func ReadFrames(dir string) ([]FrameRecord, error) {
	f, err := os.Open(filepath.Join(dir, FramesFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	var frames []FrameRecord
	var header [frameHeaderSize]byte
	for {
		if _, err := io.ReadFull(dec, header[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return frames, nil
			}
			return frames, fmt.Errorf("frame %d header: %w", len(frames), err)
		}
		rec := FrameRecord{
			Tick:    int64(binary.BigEndian.Uint64(header[0:8])),
			Payload: make([]byte, binary.BigEndian.Uint32(header[8:12])),
		}
		if _, err := io.ReadFull(dec, rec.Payload); err != nil {
			return frames, fmt.Errorf("frame %d payload: %w", len(frames), err)
		}
		frames = append(frames, rec)
	}
}

// ReadEvents decodes the event log of a bundle
func ReadEvents(dir string) ([]EventRecord, error) {
	f, err := os.Open(filepath.Join(dir, EventsFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []EventRecord
	scanner := bufio.NewScanner(snappy.NewReader(f))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		var rec EventRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return records, fmt.Errorf("event %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
	return records, scanner.Err()
}

// Decode rebuilds the typed game event of a record
func (r EventRecord) Decode() (event.GameEvent, error) {
	et, ok := event.GetEventType(r.Type)
	if !ok {
		return event.GameEvent{}, fmt.Errorf("unknown event type %q", r.Type)
	}
	ev := event.GameEvent{Type: et, Frame: r.Frame}
	if payload := event.NewPayloadStruct(et); payload != nil && len(r.Payload) > 0 {
		if err := json.Unmarshal(r.Payload, payload); err != nil {
			return ev, fmt.Errorf("decode %s payload: %w", r.Type, err)
		}
		ev.Payload = payload
	}
	return ev, nil
}
