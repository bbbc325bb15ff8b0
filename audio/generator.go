package audio

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/shooter-snake/parameter"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveTriangle
	waveNoise
)

// floatBuffer is mono float64 samples
type floatBuffer []float64

// noiseSource is seeded so cached cues are reproducible
var noiseSource = rand.New(rand.NewSource(1))

// sample returns one waveform value at phase in [0,1)
func sample(waveType int, phase float64) float64 {
	switch waveType {
	case waveSine:
		return math.Sin(2 * math.Pi * phase)
	case waveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case waveSaw:
		return 2.0 * (phase - 0.5)
	case waveTriangle:
		return 1.0 - 4.0*math.Abs(phase-0.5)
	case waveNoise:
		return noiseSource.Float64()*2 - 1
	}
	return 0
}

// oscillator generates a fixed-frequency waveform
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	return sweep(waveType, freq, freq, samples, false)
}

// sweep glides from one frequency to another over the buffer
// Exponential glides match pitch perception; linear ones suit warning sweeps
func sweep(waveType int, from, to float64, samples int, exponential bool) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0

	for i := 0; i < samples; i++ {
		buf[i] = sample(waveType, phase)

		t := float64(i) / float64(max(1, samples-1))
		freq := from + (to-from)*t
		if exponential && from > 0 && to > 0 {
			freq = from * math.Pow(to/from, t)
		}

		phase += freq / float64(parameter.AudioSampleRate)
		if phase >= 1.0 {
			phase -= math.Floor(phase)
		}
	}
	return buf
}

// applyEnvelope applies a linear attack and release in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := durationToSamples(attack)
	releaseSamples := durationToSamples(release)

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

// applyDecay ramps gain exponentially from peak to SoundFloor*peak
func applyDecay(buf floatBuffer, peak float64) {
	n := len(buf)
	for i := range buf {
		t := float64(i) / float64(max(1, n-1))
		buf[i] *= peak * math.Pow(parameter.SoundFloor, t)
	}
}

// applyFade ramps gain linearly from peak to silence
func applyFade(buf floatBuffer, peak float64) {
	n := len(buf)
	for i := range buf {
		buf[i] *= peak * (1 - float64(i)/float64(max(1, n)))
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

// concatFloatBuffers appends b to a
func concatFloatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * float64(parameter.AudioSampleRate))
}

// --- Sound Generators ---

func generateEatSound() floatBuffer {
	buf := sweep(waveSine, parameter.EatSoundFrom, parameter.EatSoundTo,
		durationToSamples(parameter.EatSoundDuration), true)
	applyDecay(buf, parameter.EatSoundGain)
	applyEnvelope(buf, parameter.SoundAttack, 0)
	return buf
}

func generateSpawnSound() floatBuffer {
	buf := sweep(waveSaw, parameter.SpawnSoundFrom, parameter.SpawnSoundTo,
		durationToSamples(parameter.SpawnSoundDuration), false)
	applyFade(buf, parameter.SpawnSoundGain)
	applyEnvelope(buf, parameter.SoundAttack, 0)
	return buf
}

func generateOpponentDeathSound() floatBuffer {
	buf := oscillator(waveNoise, 0, durationToSamples(parameter.OpponentDeathSoundDuration))
	applyDecay(buf, parameter.OpponentDeathSoundGain)
	return buf
}

func generatePlayerDeathSound() floatBuffer {
	n := durationToSamples(parameter.PlayerDeathSoundDuration)

	slide := sweep(waveTriangle, parameter.PlayerDeathSoundFrom, parameter.PlayerDeathSoundTo, n, true)
	applyFade(slide, parameter.PlayerDeathSoundGain)
	applyEnvelope(slide, parameter.SoundAttack, 0)

	noise := oscillator(waveNoise, 0, n)
	applyDecay(noise, parameter.PlayerDeathNoiseGain)

	return mixFloatBuffers(slide, noise, 1.0)
}

func generatePlayerShotSound() floatBuffer {
	buf := oscillator(waveSquare, parameter.PlayerShotSoundFreq, durationToSamples(parameter.PlayerShotSoundDuration))
	applyDecay(buf, parameter.PlayerShotSoundGain)
	applyEnvelope(buf, parameter.SoundAttack, 0)
	return buf
}

func generateOpponentShotSound() floatBuffer {
	buf := oscillator(waveSaw, parameter.OpponentShotSoundFreq, durationToSamples(parameter.OpponentShotSoundDuration))
	applyDecay(buf, parameter.OpponentShotSoundGain)
	applyEnvelope(buf, parameter.SoundAttack, 0)
	return buf
}

func generateVictorySound() floatBuffer {
	n1 := oscillator(waveSine, parameter.VictoryNote1Freq, durationToSamples(parameter.VictoryNote1Duration))
	applyDecay(n1, parameter.VictorySoundGain)
	applyEnvelope(n1, parameter.SoundAttack, 0)

	n2 := oscillator(waveSine, parameter.VictoryNote2Freq, durationToSamples(parameter.VictoryNote2Duration))
	applyDecay(n2, parameter.VictorySoundGain)
	applyEnvelope(n2, parameter.SoundAttack, 0)

	return concatFloatBuffers(n1, n2)
}

// generateSound dispatches to specific generator
func generateSound(st SoundType) floatBuffer {
	switch st {
	case SoundEat:
		return generateEatSound()
	case SoundSpawn:
		return generateSpawnSound()
	case SoundOpponentDeath:
		return generateOpponentDeathSound()
	case SoundPlayerDeath:
		return generatePlayerDeathSound()
	case SoundPlayerShot:
		return generatePlayerShotSound()
	case SoundOpponentShot:
		return generateOpponentShotSound()
	case SoundVictory:
		return generateVictorySound()
	default:
		return nil
	}
}
