// Package audio synthesizes the game's sound cues and background loop with
// beep and plays them through the system speaker.
package audio

import (
	"errors"
	"fmt"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat           SoundType = iota // Rising blip on resource pickup
	SoundSpawn                          // Low warning sweep
	SoundOpponentDeath                  // Noise crack
	SoundPlayerDeath                    // Falling slide over noise
	SoundPlayerShot                     // Short square pulse
	SoundOpponentShot                   // Short saw pulse
	SoundVictory                        // Two rising notes
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundEat:           "eat",
	SoundSpawn:         "spawn",
	SoundOpponentDeath: "opponent_death",
	SoundPlayerDeath:   "player_death",
	SoundPlayerShot:    "player_shot",
	SoundOpponentShot:  "opponent_shot",
	SoundVictory:       "victory",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return fmt.Sprintf("sound(%d)", int(s))
	}
	return soundNames[s]
}

// ParseSoundType maps a config key to its sound
func ParseSoundType(name string) (SoundType, error) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSound, name)
}

// SoundTypes lists every cue in declaration order
func SoundTypes() []SoundType {
	types := make([]SoundType, soundTypeCount)
	for i := range types {
		types[i] = SoundType(i)
	}
	return types
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound")
)
