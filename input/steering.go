package input

import "github.com/lixenwraith/shooter-snake/core"

// Steering buffers the next heading between moves
// A request that reverses the committed heading is rejected, so two quick
// turns before one step can never fold the snake onto its own neck
type Steering struct {
	committed core.Direction
	next      core.Direction
}

// NewSteering returns steering committed to the start heading
func NewSteering() *Steering {
	s := &Steering{}
	s.Reset()
	return s
}

// Request buffers dir unless it reverses the committed heading
func (s *Steering) Request(dir core.Direction) bool {
	if dir.IsZero() || dir.IsReverseOf(s.committed) {
		return false
	}
	s.next = dir
	return true
}

// Next returns the buffered heading, DirNone when nothing is pending
func (s *Steering) Next() core.Direction {
	return s.next
}

// Commit records the heading the snake actually moved with
// A buffered request that has been carried out is cleared
func (s *Steering) Commit(dir core.Direction) {
	if dir.IsZero() {
		return
	}
	s.committed = dir
	if s.next == dir {
		s.next = core.DirNone
	}
}

// Committed returns the last heading the snake moved with
func (s *Steering) Committed() core.Direction {
	return s.committed
}

// Reset restores the round-start heading
func (s *Steering) Reset() {
	s.committed = core.DirRight
	s.next = core.DirNone
}
