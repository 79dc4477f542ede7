package preview

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"libdb.so/karifa/internal/output"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init screen: %v", err)
	}
	screen.SetSize(60, 24)
	return screen
}

func cellAt(screen tcell.SimulationScreen, x, y int) tcell.SimCell {
	cells, w, _ := screen.GetContents()
	return cells[y*w+x]
}

func TestPositionsAreDistinct(t *testing.T) {
	seen := make(map[[2]int]int)
	for i := 0; i < 12; i++ {
		x, y := position(i, 12, 60, 24)
		if x < 0 || x >= 60 || y < 0 || y >= 23 {
			t.Fatalf("LED %d at %d,%d is off screen", i, x, y)
		}
		if j, ok := seen[[2]int{x, y}]; ok {
			t.Fatalf("LEDs %d and %d share cell %d,%d", i, j, x, y)
		}
		seen[[2]int{x, y}] = i
	}

	if x, y := position(0, 12, 60, 24); x != 30 || y != 1 {
		t.Fatalf("first LED at %d,%d, want the top", x, y)
	}
}

func TestDraw(t *testing.T) {
	screen := newScreen(t)
	defer screen.Fini()

	p := New(screen, &Pin{}, func() string { return "kitt" })
	p.WriteFrame(context.Background(), output.Frame{
		Mono: []uint8{15, 0, 0, 0},
		RGB:  []uint8{15, 0, 0},
	})
	p.Draw()

	x, y := position(0, 4, 60, 24)
	cell := cellAt(screen, x, y)
	if len(cell.Runes) == 0 || cell.Runes[0] != '●' {
		t.Fatalf("LED 0 cell = %q", cell.Runes)
	}
	r, g, b := output.WarmWhite.RGB255()
	fg, _, _ := cell.Style.Decompose()
	if fg != tcell.NewRGBColor(int32(r), int32(g), int32(b)) {
		t.Fatalf("LED 0 color = %v", fg)
	}

	center := cellAt(screen, 30, 11)
	if len(center.Runes) == 0 || center.Runes[0] != '◆' {
		t.Fatalf("RGB LED cell = %q", center.Runes)
	}
	if fg, _, _ := center.Style.Decompose(); fg != tcell.NewRGBColor(255, 0, 0) {
		t.Fatalf("RGB LED color = %v", fg)
	}

	status := cellAt(screen, 0, 23)
	if len(status.Runes) == 0 || status.Runes[0] != 'k' {
		t.Fatalf("status line starts with %q", status.Runes)
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRunKeys(t *testing.T) {
	screen := newScreen(t)
	pin := &Pin{}
	p := New(screen, pin, nil)

	done := make(chan error, 1)
	go func() { done <- p.Run(context.Background()) }()

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	waitFor(t, "the pin to be held", pin.Pressed)

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	waitFor(t, "the pin to be released", func() bool { return !pin.Pressed() })

	screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	waitFor(t, "the tap to press", pin.Pressed)
	waitFor(t, "the tap to release", func() bool { return !pin.Pressed() })

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		if err != ErrQuit {
			t.Fatalf("Run returned %v, want ErrQuit", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after quitting")
	}
}

func TestRunCanceled(t *testing.T) {
	screen := newScreen(t)
	p := New(screen, &Pin{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
