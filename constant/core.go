package constant

import "time"

// Game Loop & Engine Timing
const (
	// TickHz is the fixed simulation rate
	TickHz = 64

	// GameUpdateInterval is the fixed simulation step (clock tick)
	GameUpdateInterval = time.Second / TickHz

	// FrameUpdateInterval is the rendering frame rate interval (~30 FPS, terminal bound)
	FrameUpdateInterval = 33 * time.Millisecond

	// InputPollTimeout bounds how long the binary waits for terminal input per frame
	InputPollTimeout = 4 * time.Millisecond
)

// ECS & Resource Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 512

	// EventBufferMask is the bitmask for fast modulo operations (512 - 1)
	EventBufferMask = 511
)
