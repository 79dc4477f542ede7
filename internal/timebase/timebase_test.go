package timebase

import (
	"context"
	"testing"
	"time"
)

func TestManualWraps(t *testing.T) {
	m := NewManual(65530)
	if got := m.Advance(11 * time.Millisecond); got != 5 {
		t.Fatalf("Advance() = %d, want 5", got)
	}
	if m.Millis() != 5 {
		t.Fatalf("Millis() = %d, want 5", m.Millis())
	}

	m.Set(100)
	if m.Millis() != 100 {
		t.Fatalf("Millis() = %d after Set", m.Millis())
	}
}

func TestClockRuns(t *testing.T) {
	c := NewClock(time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for c.Millis() < 20 {
		if time.Now().After(deadline) {
			t.Fatalf("clock did not advance, still at %d", c.Millis())
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Fatalf("Run() = %v, want context.Canceled", err)
	}
}
