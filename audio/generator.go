package audio

import (
	"math"
	"time"

	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/core"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveTriangle
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples, rate int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(rate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveTriangle:
			buf[i] = 4*math.Abs(phase-0.5) - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration, rate int) {
	total := len(buf)
	attackSamples := durationToSamples(attack, rate)
	releaseSamples := durationToSamples(release, rate)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// durationToSamples converts duration to sample count
func durationToSamples(d time.Duration, rate int) int {
	return int(d.Seconds() * float64(rate))
}

// bounceFrequency steps the pitch up a fifth per bounce variant
func bounceFrequency(variant int) float64 {
	return constant.BounceBaseFrequency * math.Pow(1.5, float64(variant))
}

// --- Sound Generators (unity gain) ---

func generateBounceSound(variant, rate int) floatBuffer {
	samples := durationToSamples(constant.BounceSoundDuration, rate)
	freq := bounceFrequency(variant)

	fund := oscillator(waveSine, freq, samples, rate)
	applyEnvelope(fund, constant.BounceSoundAttack, constant.BounceSoundRelease, rate)

	over := oscillator(waveTriangle, freq*2, samples, rate)
	applyEnvelope(over, constant.BounceSoundAttack, constant.BounceSoundRelease/2, rate)

	return mixFloatBuffers(fund, over, 0.25)
}

func generateReflectSound(variant, rate int) floatBuffer {
	samples := durationToSamples(constant.ReflectSoundDuration, rate)
	freq := bounceFrequency(variant)

	// Detuned pair gives a shimmering glassy tone
	a := oscillator(waveSine, freq, samples, rate)
	b := oscillator(waveSine, freq*1.01, samples, rate)
	buf := mixFloatBuffers(a, b, 1)
	for i := range buf {
		buf[i] *= 0.5
	}
	applyEnvelope(buf, constant.ReflectSoundAttack, constant.ReflectSoundRelease, rate)
	return buf
}

func generateButtonSound(rate int) floatBuffer {
	samples := durationToSamples(constant.ButtonSoundDuration, rate)
	buf := oscillator(waveSquare, 440, samples, rate)
	applyEnvelope(buf, constant.ButtonSoundAttack, constant.ButtonSoundRelease, rate)
	for i := range buf {
		buf[i] *= 0.4
	}
	return buf
}

// generateSound dispatches to specific generator
func generateSound(st core.SoundType, variant, rate int) floatBuffer {
	switch st {
	case core.SoundBounce:
		return generateBounceSound(variant, rate)
	case core.SoundReflect:
		return generateReflectSound(variant, rate)
	case core.SoundButton:
		return generateButtonSound(rate)
	default:
		return nil
	}
}

// bufferStreamer plays a float buffer once as a beep.Streamer
type bufferStreamer struct {
	buf floatBuffer
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for n = range samples {
		if s.pos >= len(s.buf) {
			return n, true
		}
		v := s.buf[s.pos]
		samples[n][0] = v
		samples[n][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error {
	return nil
}
