// Package spectate serves read-only views of the running round over HTTP:
// JSON or msgpack snapshots, PNG frames, metrics and a websocket stream.
package spectate

import (
	"sync/atomic"

	"github.com/lixenwraith/shooter-snake/engine"
)

// Publisher hands snapshots from the game loop to server goroutines
// The game loop is the only writer; readers never touch the round
type Publisher struct {
	latest  atomic.Pointer[engine.Snapshot]
	version atomic.Uint64
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

// Publish stores a snapshot; it must not be mutated afterwards
func (p *Publisher) Publish(snap engine.Snapshot) {
	p.latest.Store(&snap)
	p.version.Add(1)
}

// Latest returns the most recent snapshot and its version
// ok is false until the first publish
func (p *Publisher) Latest() (snap engine.Snapshot, version uint64, ok bool) {
	ptr := p.latest.Load()
	if ptr == nil {
		return engine.Snapshot{}, 0, false
	}
	return *ptr, p.version.Load(), true
}
