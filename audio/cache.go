package audio

import (
	"sync"

	"github.com/lixenwraith/lightbeam/core"
)

// soundKey identifies one cached sound variant
type soundKey struct {
	sound   core.SoundType
	variant int
}

// soundCache stores pre-generated unity-gain float buffers
type soundCache struct {
	mu    sync.RWMutex
	rate  int
	store map[soundKey]floatBuffer
}

func newSoundCache(rate int) *soundCache {
	return &soundCache{
		rate:  rate,
		store: make(map[soundKey]floatBuffer),
	}
}

// get returns cached buffer or generates on demand
func (c *soundCache) get(st core.SoundType, variant int) floatBuffer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}
	if st == core.SoundButton {
		variant = 0
	}
	variant = min(max(variant, 0), core.BounceVariants-1)
	key := soundKey{st, variant}

	c.mu.RLock()
	buf, ok := c.store[key]
	c.mu.RUnlock()
	if ok {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf, ok := c.store[key]; ok {
		return buf
	}
	buf = generateSound(st, variant, c.rate)
	c.store[key] = buf
	return buf
}

// preload generates every bounce variant at init
func (c *soundCache) preload() {
	for v := 0; v < core.BounceVariants; v++ {
		c.get(core.SoundBounce, v)
	}
}
