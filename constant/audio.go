package constant

import "time"

// Audio timing
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 50 * time.Millisecond

	BounceSoundDuration = 90 * time.Millisecond
	BounceSoundAttack   = 2 * time.Millisecond
	BounceSoundRelease  = 70 * time.Millisecond

	ReflectSoundDuration = 160 * time.Millisecond
	ReflectSoundAttack   = 5 * time.Millisecond
	ReflectSoundRelease  = 120 * time.Millisecond

	ButtonSoundDuration = 60 * time.Millisecond
	ButtonSoundAttack   = 1 * time.Millisecond
	ButtonSoundRelease  = 40 * time.Millisecond
)

// BounceBaseFrequency is the pitch of the first bounce; later bounces step up a fifth
const BounceBaseFrequency = 660.0
