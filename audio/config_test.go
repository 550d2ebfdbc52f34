package audio

import (
	"testing"

	"github.com/lixenwraith/lightbeam/core"
)

func TestLoadAudioConfig(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		check  func(*AudioConfig) bool
		expect string
	}{
		{
			name:   "defaults",
			env:    map[string]string{},
			check:  func(c *AudioConfig) bool { return c.Enabled && c.MasterVolume == 0.5 },
			expect: "enabled at half volume",
		},
		{
			name:   "disabled",
			env:    map[string]string{"LIGHTBEAM_AUDIO_ENABLED": "false"},
			check:  func(c *AudioConfig) bool { return !c.Enabled },
			expect: "disabled",
		},
		{
			name:   "volume clamped",
			env:    map[string]string{"LIGHTBEAM_MASTER_VOLUME": "250"},
			check:  func(c *AudioConfig) bool { return c.MasterVolume == 1 },
			expect: "master volume 1",
		},
		{
			name:   "invalid volume ignored",
			env:    map[string]string{"LIGHTBEAM_MASTER_VOLUME": "loud"},
			check:  func(c *AudioConfig) bool { return c.MasterVolume == 0.5 },
			expect: "default master volume",
		},
		{
			name:   "effect volumes",
			env:    map[string]string{"LIGHTBEAM_SFX_VOLUMES": `{"bounce":0.2,"button":0.9}`},
			check:  func(c *AudioConfig) bool { return c.EffectVolumes[core.SoundBounce] == 0.2 && c.EffectVolumes[core.SoundButton] == 0.9 },
			expect: "bounce 0.2 and button 0.9",
		},
		{
			name:   "sample rate",
			env:    map[string]string{"LIGHTBEAM_SAMPLE_RATE": "22050"},
			check:  func(c *AudioConfig) bool { return c.SampleRate == 22050 },
			expect: "sample rate 22050",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := LoadAudioConfig()
			if !tt.check(cfg) {
				t.Errorf("Expected %s, got %+v", tt.expect, cfg)
			}
		})
	}
}

func TestVolumeScalesByMaster(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0.5
	cfg.EffectVolumes[core.SoundBounce] = 0.8
	if got := cfg.Volume(core.SoundBounce); got != 0.4 {
		t.Errorf("Expected 0.4, got %v", got)
	}
}
