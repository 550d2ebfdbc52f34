// Package config resolves runtime settings from defaults, environment and flags
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/lightbeam/audio"
	"github.com/lixenwraith/lightbeam/constant"
)

// ErrInvalid wraps every rejected setting
var ErrInvalid = errors.New("invalid config")

// Config holds game settings
type Config struct {
	TickHz     int
	LightSpeed float64

	// Level is the name of the first level to load
	Level string

	// WSAddr enables frame streaming when non-empty
	WSAddr string
	// ReplayDir enables recording when non-empty
	ReplayDir string

	Debug    bool
	Headless bool
	// Ticks stops a headless run after this many steps, 0 runs until interrupted
	Ticks int
	Seed  int64

	Audio *audio.AudioConfig
}

// Default returns settings that run the built-in first level at 64 Hz
func Default() *Config {
	return &Config{
		TickHz:     constant.TickHz,
		LightSpeed: constant.LightSpeed,
		Level:      "corridor",
		Seed:       1,
		Audio:      audio.DefaultAudioConfig(),
	}
}

// TickInterval returns the fixed step duration
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickHz)
}

// Load applies LIGHTBEAM_* environment overrides on top of Default
func Load() (*Config, error) {
	cfg := Default()
	cfg.Audio = audio.LoadAudioConfig()

	if v := os.Getenv("LIGHTBEAM_TICK_HZ"); v != "" {
		hz, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: LIGHTBEAM_TICK_HZ=%q: %v", ErrInvalid, v, err)
		}
		cfg.TickHz = hz
	}

	if v := os.Getenv("LIGHTBEAM_LIGHT_SPEED"); v != "" {
		speed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: LIGHTBEAM_LIGHT_SPEED=%q: %v", ErrInvalid, v, err)
		}
		cfg.LightSpeed = speed
	}

	if v := os.Getenv("LIGHTBEAM_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: LIGHTBEAM_DEBUG=%q: %v", ErrInvalid, v, err)
		}
		cfg.Debug = debug
	}

	if v := os.Getenv("LIGHTBEAM_WS_ADDR"); v != "" {
		cfg.WSAddr = v
	}
	if v := os.Getenv("LIGHTBEAM_REPLAY_DIR"); v != "" {
		cfg.ReplayDir = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	if c.TickHz <= 0 || c.TickHz > 1000 {
		return fmt.Errorf("%w: tick rate %d out of range 1-1000", ErrInvalid, c.TickHz)
	}
	if c.LightSpeed <= 0 {
		return fmt.Errorf("%w: light speed must be positive, got %v", ErrInvalid, c.LightSpeed)
	}
	if c.Ticks < 0 {
		return fmt.Errorf("%w: negative tick limit %d", ErrInvalid, c.Ticks)
	}
	return nil
}
