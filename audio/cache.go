package audio

import "sync"

// soundCache synthesizes each cue once, on first use
type soundCache struct {
	entries [soundTypeCount]cacheEntry
}

type cacheEntry struct {
	once sync.Once
	buf  floatBuffer
}

func newSoundCache() *soundCache {
	return &soundCache{}
}

// get returns the cue's samples, generating them on the first call
func (c *soundCache) get(st SoundType) floatBuffer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}
	e := &c.entries[st]
	e.once.Do(func() { e.buf = generateSound(st) })
	return e.buf
}

// preload generates the per-tick cues so the first shot does not stall the tick
func (c *soundCache) preload() {
	c.get(SoundPlayerShot)
	c.get(SoundOpponentShot)
	c.get(SoundEat)
}
