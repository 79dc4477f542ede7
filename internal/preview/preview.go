// Package preview draws the ornament in a terminal. It doubles as a frame
// sink and as the ornament's button.
package preview

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"libdb.so/karifa/internal/output"
)

// ErrQuit is returned by Run when the user quits the preview.
var ErrQuit = errors.New("preview closed")

// TapDuration is how long a tap holds the button down. It is longer than the
// button's debounce time.
const TapDuration = 150 * time.Millisecond

// Pin is a simulated button pin. The zero value is released.
type Pin struct {
	pressed atomic.Bool
}

// Pressed returns true if the pin is held down.
func (p *Pin) Pressed() bool {
	return p.pressed.Load()
}

// Set sets the pin state.
func (p *Pin) Set(pressed bool) {
	p.pressed.Store(pressed)
}

// Toggle flips the pin state and returns the new one.
func (p *Pin) Toggle() bool {
	for {
		old := p.pressed.Load()
		if p.pressed.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Preview renders frames as a ring of LEDs with the RGB LED in the middle.
//
// Keys:
//
//	space      hold or release the button
//	n          tap the button (next animation)
//	q, Esc     quit
type Preview struct {
	screen tcell.Screen
	pin    *Pin
	status func() string

	mu    sync.Mutex
	frame output.Frame
}

var (
	_ output.Sink   = (*Preview)(nil)
	_ output.Runner = (*Preview)(nil)
)

// Open opens the terminal and creates a preview on it.
func Open(pin *Pin, status func() string) (*Preview, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize screen")
	}
	return New(screen, pin, status), nil
}

// New creates a preview on an initialized screen. The preview owns the
// screen and finalizes it when Run returns. status may be nil.
func New(screen tcell.Screen, pin *Pin, status func() string) *Preview {
	return &Preview{
		screen: screen,
		pin:    pin,
		status: status,
	}
}

// WriteFrame implements output.Sink.
func (p *Preview) WriteFrame(ctx context.Context, f output.Frame) error {
	p.mu.Lock()
	p.frame = f.Clone()
	p.mu.Unlock()

	// Drop the redraw if the event queue is full; the next frame catches up.
	p.screen.PostEvent(tcell.NewEventInterrupt(nil))
	return nil
}

// Run handles input and redraws until the context is canceled or the user
// quits, in which case it returns ErrQuit.
func (p *Preview) Run(ctx context.Context) error {
	defer p.screen.Fini()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-done:
			return
		case <-ctx.Done():
		}
		for p.screen.PostEvent(tcell.NewEventInterrupt(ctx)) != nil {
			select {
			case <-done:
				return
			case <-time.After(10 * time.Millisecond):
			}
		}
	}()

	p.Draw()

	for {
		switch ev := p.screen.PollEvent().(type) {
		case nil:
			return ctx.Err()

		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.Draw()

		case *tcell.EventResize:
			p.screen.Sync()
			p.Draw()

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return ErrQuit
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q':
					return ErrQuit
				case ' ':
					p.pin.Toggle()
					p.Draw()
				case 'n':
					p.tap()
				}
			}
		}
	}
}

func (p *Preview) tap() {
	if p.pin.Pressed() {
		return
	}
	p.pin.Set(true)
	time.AfterFunc(TapDuration, func() { p.pin.Set(false) })
}

// position returns the cell of LED i on a ring of n LEDs, clockwise from the
// top, on a w by h screen.
func position(i, n, w, h int) (x, y int) {
	cx, cy := w/2, (h-1)/2
	ry := float64(cy - 1)
	rx := math.Min(2*ry, float64(w/2-2))

	angle := 2 * math.Pi * float64(i) / float64(n)
	x = cx + int(math.Round(rx*math.Sin(angle)))
	y = cy - int(math.Round(ry*math.Cos(angle)))
	return x, y
}

func styleOf(c colorful.Color) tcell.Style {
	r, g, b := c.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// Draw redraws the last frame.
func (p *Preview) Draw() {
	p.mu.Lock()
	f := p.frame
	p.mu.Unlock()

	s := p.screen
	s.Clear()
	w, h := s.Size()

	for i, level := range f.Mono {
		x, y := position(i, len(f.Mono), w, h)
		s.SetContent(x, y, '●', nil, styleOf(output.Color(level)))
	}

	if len(f.RGB) == 3 {
		c := output.RGBColor(f.RGB[0], f.RGB[1], f.RGB[2])
		s.SetContent(w/2, (h-1)/2, '◆', nil, styleOf(c))
	}

	status := "button up"
	if p.pin.Pressed() {
		status = "button down"
	}
	if p.status != nil {
		status = p.status() + "  " + status
	}
	drawText(s, 0, h-1, status+"  [space] hold  [n] next  [q] quit", tcell.StyleDefault)

	s.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
