package parameter

import "time"

// Audio output
const (
	AudioSampleRate   = 44100
	AudioBufferPeriod = 100 * time.Millisecond
	AudioMasterVolume = 0.7
)

// Sound shapes, gains follow the cue's loudness relative to the others
const (
	EatSoundDuration = 100 * time.Millisecond
	EatSoundFrom     = 600.0
	EatSoundTo       = 1200.0
	EatSoundGain     = 0.1

	SpawnSoundDuration = 300 * time.Millisecond
	SpawnSoundFrom     = 100.0
	SpawnSoundTo       = 300.0
	SpawnSoundGain     = 0.05

	OpponentDeathSoundDuration = 200 * time.Millisecond
	OpponentDeathSoundGain     = 0.1

	PlayerDeathSoundDuration = 500 * time.Millisecond
	PlayerDeathSoundFrom     = 200.0
	PlayerDeathSoundTo       = 50.0
	PlayerDeathSoundGain     = 0.2
	PlayerDeathNoiseGain     = 0.1

	PlayerShotSoundDuration = 50 * time.Millisecond
	PlayerShotSoundFreq     = 400.0
	PlayerShotSoundGain     = 0.05

	OpponentShotSoundDuration = 50 * time.Millisecond
	OpponentShotSoundFreq     = 300.0
	OpponentShotSoundGain     = 0.03

	VictoryNote1Duration = 200 * time.Millisecond
	VictoryNote1Freq     = 600.0
	VictoryNote2Duration = 400 * time.Millisecond
	VictoryNote2Freq     = 800.0
	VictorySoundGain     = 0.2

	// SoundAttack softens the onset of every cue to avoid clicks
	SoundAttack = 2 * time.Millisecond

	// SoundFloor is the level exponential decays ramp down to
	SoundFloor = 0.01
)

// Background loop
const (
	BGMBeat       = 300 * time.Millisecond
	BGMGain       = 0.06
	BGMKickLength = 80 * time.Millisecond
)

// BGMNotes is the bass line cycled one note per beat, in Hz
var BGMNotes = []float64{110, 110, 130.81, 146.83, 110, 110, 164.81, 146.83}
