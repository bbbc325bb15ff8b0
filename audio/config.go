package audio

import "github.com/lixenwraith/shooter-snake/parameter"

// Config controls playback; the config package fills it from file and environment
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int

	// EffectVolumes scales individual cues; missing entries play at 1.0
	EffectVolumes map[SoundType]float64
}

// DefaultConfig returns audio enabled at the default master volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MasterVolume:  parameter.AudioMasterVolume,
		SampleRate:    parameter.AudioSampleRate,
		EffectVolumes: make(map[SoundType]float64),
	}
}

// Normalize clamps volumes to [0,1] and repairs a bad sample rate
func (c *Config) Normalize() {
	c.MasterVolume = clamp01(c.MasterVolume)
	for st, v := range c.EffectVolumes {
		c.EffectVolumes[st] = clamp01(v)
	}
	if c.SampleRate <= 0 {
		c.SampleRate = parameter.AudioSampleRate
	}
}

// effectVolume returns the per-cue scale
func (c *Config) effectVolume(st SoundType) float64 {
	if v, ok := c.EffectVolumes[st]; ok {
		return v
	}
	return 1.0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
