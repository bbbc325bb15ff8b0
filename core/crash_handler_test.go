package core

import (
	"testing"
	"time"
)

func TestGo_RunsInBackground(t *testing.T) {
	release := make(chan struct{})
	done := make(chan struct{})
	Go(func() {
		<-release
		close(done)
	})

	// Go must return before fn finishes
	close(release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected function to run on its own goroutine")
	}
}
