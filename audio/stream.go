package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/shooter-snake/parameter"
)

// bufferStreamer plays a cached mono buffer once, duplicated to both channels
type bufferStreamer struct {
	buf  floatBuffer
	gain float64
	pos  int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.buf) {
		v := s.buf[s.pos] * s.gain
		samples[n][0] = v
		samples[n][1] = v
		n++
		s.pos++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}

// bgmGenerator is an endless kick and bass pattern, one note per beat
type bgmGenerator struct {
	sr    beep.SampleRate
	beat  int
	kick  int
	notes []float64
	pos   int
	phase float64
}

func newBGMGenerator(sr beep.SampleRate) *bgmGenerator {
	return &bgmGenerator{
		sr:    sr,
		beat:  sr.N(parameter.BGMBeat),
		kick:  sr.N(parameter.BGMKickLength),
		notes: parameter.BGMNotes,
	}
}

func (g *bgmGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.beat
		note := g.notes[(g.pos/g.beat)%len(g.notes)]
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < g.kick {
			env := 1.0 - float64(beatPos)/float64(g.kick)
			kick = 0.6 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}

		// Bass decays across the beat so note changes are audible
		env := 1.0 - 0.7*float64(beatPos)/float64(g.beat)
		bass := env * sample(waveTriangle, g.phase)
		g.phase += note / float64(g.sr)
		if g.phase >= 1.0 {
			g.phase -= 1.0
		}

		v := parameter.BGMGain * (kick + bass)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *bgmGenerator) Err() error {
	return nil
}

// lockedMixer guards a beep.Mixer and the effect chain on top of it
// The speaker goroutine streams out under mu, so effect fields set by the
// game loop must also be written under mu
type lockedMixer struct {
	mu    sync.Mutex
	mixer beep.Mixer
	out   beep.Streamer // wraps &mixer; nil streams the bare mix
}

func (m *lockedMixer) Stream(samples [][2]float64) (n int, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.out == nil {
		return m.mixer.Stream(samples)
	}
	return m.out.Stream(samples)
}

func (m *lockedMixer) Err() error {
	return nil
}

func (m *lockedMixer) add(s ...beep.Streamer) {
	m.mu.Lock()
	m.mixer.Add(s...)
	m.mu.Unlock()
}

func (m *lockedMixer) clear() {
	m.mu.Lock()
	m.mixer.Clear()
	m.mu.Unlock()
}

func (m *lockedMixer) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mixer.Len()
}
