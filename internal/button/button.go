// Package button debounces the ornament's push button and turns it into
// short and long press events.
package button

import "time"

const (
	// DefaultDebounce is how long the pin must stay put to count.
	DefaultDebounce = 50 * time.Millisecond
	// DefaultLongPress is how long the button must be held for a long press.
	DefaultLongPress = 2 * time.Second
)

// Event is the result of polling the button.
type Event uint8

const (
	None Event = iota
	// Short is a debounced press released before the long press timeout.
	Short
	// Long fires while the button is still held, once the long press timeout
	// has passed.
	Long
	// LongReleased fires once a long press has been released and the release
	// is debounced.
	LongReleased
)

func (e Event) String() string {
	switch e {
	case None:
		return "none"
	case Short:
		return "short"
	case Long:
		return "long"
	case LongReleased:
		return "long-released"
	default:
		return "invalid"
	}
}

// State is the state of the debouncing state machine.
type State uint8

const (
	Unpressed State = iota
	Bouncing
	Pressed
	LongPressed
	Releasing
)

// Button is the debouncing state machine. It is driven by polling with the
// current millisecond counter and the pin level, and is not safe for
// concurrent use.
type Button struct {
	debounce  uint16
	longPress uint16

	state State
	since uint16 // counter value when the current timer started
	long  bool   // the press being released was a long one
}

// New creates a button. Zero durations mean the defaults.
func New(debounce, longPress time.Duration) *Button {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if longPress <= 0 {
		longPress = DefaultLongPress
	}
	return &Button{
		debounce:  uint16(debounce.Milliseconds()),
		longPress: uint16(longPress.Milliseconds()),
	}
}

// Poll advances the state machine. now is a wrapping millisecond counter and
// pressed is the pin level.
func (b *Button) Poll(now uint16, pressed bool) Event {
	elapsed := now - b.since

	switch b.state {
	case Unpressed:
		if pressed {
			b.state, b.since = Bouncing, now
		}

	case Bouncing:
		if elapsed < b.debounce {
			break
		}
		if pressed {
			b.state, b.since = Pressed, now
		} else {
			b.state = Unpressed
		}

	case Pressed:
		switch {
		case !pressed:
			b.state, b.since = Releasing, now
			b.long = false
			return Short
		case elapsed >= b.longPress:
			b.state = LongPressed
			b.long = true
			return Long
		}

	case LongPressed:
		if !pressed {
			b.state, b.since = Releasing, now
		}

	case Releasing:
		if elapsed < b.debounce {
			break
		}
		if pressed {
			// Still bouncing, wait another round.
			b.since = now
			break
		}
		b.state = Unpressed
		if b.long {
			b.long = false
			return LongReleased
		}
	}

	return None
}
