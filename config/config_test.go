package config

import (
	"errors"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config valid, got %v", err)
	}
	if cfg.TickInterval() != time.Second/64 {
		t.Errorf("Expected 64 Hz interval, got %v", cfg.TickInterval())
	}
	if cfg.LightSpeed != 8 {
		t.Errorf("Expected light speed 8, got %v", cfg.LightSpeed)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LIGHTBEAM_TICK_HZ", "32")
	t.Setenv("LIGHTBEAM_LIGHT_SPEED", "4.5")
	t.Setenv("LIGHTBEAM_WS_ADDR", ":9000")
	t.Setenv("LIGHTBEAM_REPLAY_DIR", "/tmp/replay")
	t.Setenv("LIGHTBEAM_DEBUG", "true")
	t.Setenv("LIGHTBEAM_AUDIO_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.TickHz != 32 || cfg.LightSpeed != 4.5 {
		t.Errorf("Expected 32 Hz at speed 4.5, got %d Hz at %v", cfg.TickHz, cfg.LightSpeed)
	}
	if cfg.WSAddr != ":9000" || cfg.ReplayDir != "/tmp/replay" || !cfg.Debug {
		t.Errorf("Expected string and bool overrides applied, got %+v", cfg)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non numeric tick", "LIGHTBEAM_TICK_HZ", "fast"},
		{"zero tick", "LIGHTBEAM_TICK_HZ", "0"},
		{"huge tick", "LIGHTBEAM_TICK_HZ", "5000"},
		{"non numeric speed", "LIGHTBEAM_LIGHT_SPEED", "c"},
		{"negative speed", "LIGHTBEAM_LIGHT_SPEED", "-1"},
		{"bad debug", "LIGHTBEAM_DEBUG", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}
