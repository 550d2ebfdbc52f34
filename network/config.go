package network

import (
	"time"
)

// Config holds websocket hub configuration
type Config struct {
	// Address to bind, e.g. ":8080"
	Address string
	// Path the websocket endpoint is served on
	Path string

	// Connection limits
	MaxPeers int

	// Timing
	WriteTimeout time.Duration
	PongTimeout  time.Duration
	PingInterval time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
	// MaxMessageSize bounds inbound command size
	MaxMessageSize int64
}

// DefaultConfig returns production-safe defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         ":8080",
		Path:            "/ws",
		MaxPeers:        16,
		WriteTimeout:    5 * time.Second,
		PongTimeout:     30 * time.Second,
		PingInterval:    10 * time.Second,
		ReadBufferSize:  4 * 1024,
		WriteBufferSize: 64 * 1024,
		SendQueueSize:   64,
		MaxMessageSize:  4 * 1024,
	}
}
