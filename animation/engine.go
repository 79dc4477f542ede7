package animation

// Timebase is a free-running millisecond counter that wraps at 65536.
type Timebase interface {
	Millis() uint16
}

// Selector holds the index of the selected animation. It is owned by the
// persistence layer.
type Selector interface {
	Index() uint8
	SetIndex(uint8)
}

// Output receives a stream's brightness vector every time it changes.
type Output interface {
	Store(levels []uint8)
}

// StreamID identifies one of the engine's streams.
type StreamID uint8

const (
	Mono StreamID = iota
	RGB
)

func (id StreamID) String() string {
	switch id {
	case Mono:
		return "mono"
	case RGB:
		return "rgb"
	default:
		return "invalid"
	}
}

// None is the instruction index of a stream that has not evaluated anything
// since it was last reset.
const None = -1

// Runtime is the bookkeeping of one stream.
type Runtime struct {
	// Elapsed is the virtual time since the program last restarted.
	Elapsed uint16
	// LastTick is the timebase value last seen. It is only meaningful once
	// Primed is set.
	LastTick uint16
	// Primed is false until the first cycle after a reset latched LastTick.
	Primed bool
	// Current is the index of the instruction in effect, or None.
	Current int
	// Repeats is the number of remaining repetitions of a repeating
	// instruction, or zero when not repeating.
	Repeats uint8
}

func freshRuntime() Runtime {
	return Runtime{Current: None}
}

// Event describes one evaluation of an instruction.
type Event struct {
	Stream      StreamID
	Animation   uint8
	Instruction int
	// Repeats is the repeat counter after the evaluation.
	Repeats uint8
	// Done is true if the engine moved on to the instruction, false if the
	// instruction is going to be evaluated again.
	Done bool
}

type stream struct {
	id      StreamID
	spec    StreamSpec
	out     Output
	chains  chains
	rt      Runtime
	work    []int
	levels  []uint8
	program func(*Animation) Program
}

func newStream(id StreamID, spec StreamSpec, out Output, program func(*Animation) Program) *stream {
	return &stream{
		id:      id,
		spec:    spec,
		out:     out,
		chains:  newChains(spec.Channels, spec.Split),
		rt:      freshRuntime(),
		work:    make([]int, spec.Channels),
		levels:  make([]uint8, spec.Channels),
		program: program,
	}
}

// Engine interprets the selected animation of a catalog. It is not safe for
// concurrent use: Cycle and SetAnimation must be called from the same
// goroutine. Outputs may be read concurrently by their own means.
type Engine struct {
	catalog *Catalog
	tb      Timebase
	sel     Selector
	streams []*stream
	trace   func(Event)
}

// NewEngine creates an engine for the given catalog. The catalog should have
// been validated. mono and rgb may be nil; a nil rgb output or a catalog
// without an RGB stream disables the RGB stream.
func NewEngine(c *Catalog, tb Timebase, sel Selector, mono, rgb Output) *Engine {
	e := &Engine{
		catalog: c,
		tb:      tb,
		sel:     sel,
	}

	e.streams = append(e.streams, newStream(Mono, c.Mono, mono, func(a *Animation) Program {
		return a.Mono
	}))
	if c.HasRGB() && rgb != nil {
		e.streams = append(e.streams, newStream(RGB, c.RGB, rgb, func(a *Animation) Program {
			return a.RGB
		}))
	}

	return e
}

// SetTracer sets a function that is called after every instruction
// evaluation.
func (e *Engine) SetTracer(f func(Event)) {
	e.trace = f
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Current returns the selected animation index after clamping.
func (e *Engine) Current() uint8 {
	i := e.sel.Index()
	if int(i) >= e.catalog.Len() {
		return 0
	}
	return i
}

// Runtime returns a copy of the given stream's bookkeeping. The zero Runtime
// is returned for a disabled stream.
func (e *Engine) Runtime(id StreamID) Runtime {
	if s := e.stream(id); s != nil {
		return s.rt
	}
	return Runtime{}
}

// Levels returns a copy of the given stream's brightness vector.
func (e *Engine) Levels(id StreamID) []uint8 {
	if s := e.stream(id); s != nil {
		levels := make([]uint8, len(s.levels))
		copy(levels, s.levels)
		return levels
	}
	return nil
}

func (e *Engine) stream(id StreamID) *stream {
	for _, s := range e.streams {
		if s.id == id {
			return s
		}
	}
	return nil
}

// SetAnimation selects a new animation and restarts every stream. It returns
// false and changes nothing if the index is out of range.
func (e *Engine) SetAnimation(index uint8) bool {
	if int(index) >= e.catalog.Len() {
		return false
	}

	e.sel.SetIndex(index)
	for _, s := range e.streams {
		s.rt = freshRuntime()
	}
	return true
}

// Cycle advances the engine to the current time. It returns immediately if
// no time has passed since the previous call. At most one instruction per
// stream is evaluated per call.
func (e *Engine) Cycle() {
	now := e.tb.Millis()

	var ticked bool
	for _, s := range e.streams {
		if s.advance(now) {
			ticked = true
		}
	}
	if !ticked {
		return
	}

	index := e.sel.Index()
	if int(index) >= e.catalog.Len() {
		index = 0
		e.sel.SetIndex(index)
	}
	animation := &e.catalog.Animations[index]

	for _, s := range e.streams {
		ev, ok := s.step(s.program(animation))
		if ok && e.trace != nil {
			ev.Animation = index
			e.trace(ev)
		}
	}
}

// advance adds the time passed since the last call to the elapsed time. The
// first call after a reset only latches the timebase.
func (s *stream) advance(now uint16) bool {
	if !s.rt.Primed {
		s.rt.Primed = true
		s.rt.LastTick = now
		s.rt.Elapsed = 0
		return true
	}
	if now == s.rt.LastTick {
		return false
	}
	// Elapsed saturates so that a hold never expires.
	delta := now - s.rt.LastTick
	if s.rt.Elapsed > Forever-delta {
		s.rt.Elapsed = Forever
	} else {
		s.rt.Elapsed += delta
	}
	s.rt.LastTick = now
	return true
}

// locate returns the index of the instruction in effect at the given elapsed
// time. It returns false if the program has run past its end.
func locate(p Program, elapsed uint16) (int, bool) {
	var end uint32
	for i, in := range p {
		if in.Duration == Forever {
			return i, true
		}
		end += uint32(in.Duration)
		if end > uint32(elapsed) {
			return i, true
		}
	}
	return 0, false
}

// step evaluates the instruction in effect if it differs from the current
// one.
func (s *stream) step(p Program) (Event, bool) {
	if len(p) == 0 {
		return Event{}, false
	}

	target, ok := locate(p, s.rt.Elapsed)
	if !ok {
		target = 0
		s.rt.Elapsed = 0
	}
	if target == s.rt.Current {
		return Event{}, false
	}

	in := p[target]
	s.apply(in)

	done := true
	if count, ok := in.Repeat(); ok && s.spec.Ops.Has(OpRepeat) {
		if s.rt.Repeats == 0 {
			s.rt.Repeats = count
		} else {
			s.rt.Repeats--
		}
		if s.rt.Repeats != 0 {
			// Step back in time so that the next scan lands on this
			// instruction again once its duration has passed.
			s.rt.Elapsed -= in.Duration
			done = false
		}
	}
	if done {
		s.rt.Current = target
	}

	return Event{
		Stream:      s.id,
		Instruction: target,
		Repeats:     s.rt.Repeats,
		Done:        done,
	}, true
}

func (s *stream) apply(in Instruction) {
	for i, l := range s.levels {
		s.work[i] = int(l)
	}

	if in.IsLoad() {
		load(s.work, in.Values)
	} else {
		for _, op := range in.Ops {
			if !s.spec.Ops.Has(op.Kind) {
				continue
			}
			switch op.Kind {
			case OpAdd:
				add(s.work, in.Values)
			case OpRShift:
				rotateRight(s.work)
			case OpLShift:
				rotateLeft(s.work)
			case OpUSource:
				diffuse(s.work, in.Values, s.chains.up[0])
				diffuse(s.work, in.Values, s.chains.up[1])
			case OpDSource:
				diffuse(s.work, in.Values, s.chains.down[0])
				diffuse(s.work, in.Values, s.chains.down[1])
			case OpDiv:
				divide(s.work, in.Values)
			}
		}
	}

	for i, v := range s.work {
		s.levels[i] = uint8(v)
	}
	if s.out != nil {
		s.out.Store(s.levels)
	}
}
