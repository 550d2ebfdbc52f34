package main

import (
	"errors"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/frame"
	"github.com/lixenwraith/lightbeam/light"
	"github.com/lixenwraith/lightbeam/network"
	"github.com/lixenwraith/lightbeam/replay"
)

// publisher snapshots the world after every tick and fans the frame out
// Runs as a tick hook, so the world lock is already held
type publisher struct {
	world *engine.World
	cache *light.SegmentCache

	hub *network.Hub
	rec *replay.Recorder

	latest   atomic.Pointer[frame.Frame]
	failures atomic.Int64
}

func newPublisher(world *engine.World, cache *light.SegmentCache) *publisher {
	return &publisher{world: world, cache: cache}
}

func (p *publisher) onTick(tick int64) {
	f := frame.Capture(p.world, p.cache)
	p.latest.Store(f)

	if p.hub == nil && p.rec == nil {
		return
	}

	data, err := frame.Encode(f)
	if err != nil {
		p.failures.Add(1)
		log.Printf("encode frame %d: %v", tick, err)
		return
	}

	if p.hub != nil {
		p.hub.Broadcast(data)
	}
	if p.rec != nil {
		if err := p.rec.AppendFrame(tick, data); err != nil && !errors.Is(err, replay.ErrRecorderClosed) {
			p.failures.Add(1)
			log.Printf("record frame %d: %v", tick, err)
		}
	}
}

// Latest returns the most recent frame, nil before the first tick
func (p *publisher) Latest() *frame.Frame {
	return p.latest.Load()
}
