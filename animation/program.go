package animation

import (
	"errors"
	"fmt"
)

// MaxLevel is the highest brightness level of any channel.
const MaxLevel = 15

// Forever is the duration of an instruction that never expires.
const Forever uint16 = 0xFFFF

// Instruction is one timed step of a program.
type Instruction struct {
	// Duration is how long the state produced by this instruction persists
	// before the next instruction takes over, in milliseconds.
	Duration uint16
	// Values holds one value per channel. It is an absolute level for a load
	// and a signed operand for every other operation.
	Values []int8
	// Ops is the list of operations in evaluation order. An empty list does
	// nothing but still takes its time.
	Ops []Op
	// Reserved holds opcode bits Decode did not recognize. Validate rejects
	// them.
	Reserved Opcode
}

// NewInstruction creates an instruction. The operations are sorted into
// evaluation order; no operations at all means a load.
func NewInstruction(duration uint16, values []int8, ops ...Op) Instruction {
	if len(ops) == 0 {
		ops = []Op{{Kind: OpLoad}}
	}
	sorted := make([]Op, len(ops))
	copy(sorted, ops)
	return Instruction{
		Duration: duration,
		Values:   values,
		Ops:      normalize(sorted),
	}
}

// Step creates an instruction from its byte-code form.
func Step(duration uint16, opcode Opcode, operand uint8, values ...int8) Instruction {
	return Instruction{
		Duration: duration,
		Values:   values,
		Ops:      Decode(opcode, operand),
		Reserved: opcode &^ definedBits,
	}
}

// IsLoad returns true if the instruction only loads its values.
func (in Instruction) IsLoad() bool {
	return len(in.Ops) > 0 && in.Ops[0].Kind == OpLoad
}

// Repeat returns the repeat count of the instruction and whether it repeats
// at all.
func (in Instruction) Repeat() (uint8, bool) {
	if in.IsLoad() {
		return 0, false
	}
	for _, op := range in.Ops {
		if op.Kind == OpRepeat {
			return op.Count, true
		}
	}
	return 0, false
}

func (in Instruction) String() string {
	return fmt.Sprintf("{%dms %v %s}", in.Duration, in.Values, formatOps(in.Ops))
}

// Program is an ordered list of instructions that loops forever.
type Program []Instruction

// TotalDuration returns the sum of all instruction durations.
func (p Program) TotalDuration() uint32 {
	var total uint32
	for _, in := range p {
		total += uint32(in.Duration)
	}
	return total
}

// Animation is a named entry of a catalog. RGB may be nil, in which case the
// RGB LED is left alone while the animation plays.
type Animation struct {
	Name string
	Mono Program
	RGB  Program
}

// StreamSpec describes one independently clocked brightness vector.
type StreamSpec struct {
	// Name is used in logs and validation errors.
	Name string
	// Channels is the number of levels in the vector.
	Channels int
	// Split is the index of the first channel of the right-hand chain used by
	// the source operations. Channels [0, Split) form the left chain.
	Split int
	// Ops is the set of operations this stream implements. Other operations
	// are skipped.
	Ops OpSet
}

// MonoSpec returns the stream spec of a monochrome LED ring.
func MonoSpec(channels, split int) StreamSpec {
	return StreamSpec{
		Name:     "mono",
		Channels: channels,
		Split:    split,
		Ops:      AllOps,
	}
}

// RGBSpec returns the stream spec of a single RGB LED. Rotations and source
// operations make no sense on three color channels.
func RGBSpec() StreamSpec {
	return StreamSpec{
		Name:     "rgb",
		Channels: 3,
		Ops:      NewOpSet(OpLoad, OpAdd, OpDiv, OpRepeat),
	}
}

// Catalog is the fixed list of animations the ornament cycles through. The
// last animation is reserved: it is the all-off state shown before powering
// down.
type Catalog struct {
	Name       string
	Mono       StreamSpec
	RGB        StreamSpec
	Animations []Animation
}

// Len returns the number of animations, including the reserved one.
func (c *Catalog) Len() int {
	return len(c.Animations)
}

// Off returns the index of the reserved all-off animation.
func (c *Catalog) Off() uint8 {
	return uint8(len(c.Animations) - 1)
}

// Playable returns the number of animations a user can select by cycling,
// which excludes the reserved one.
func (c *Catalog) Playable() int {
	return len(c.Animations) - 1
}

// Next returns the animation after i in user cycling order. It wraps around
// before the reserved all-off animation.
func (c *Catalog) Next(i uint8) uint8 {
	i++
	if int(i) >= c.Playable() {
		i = 0
	}
	return i
}

// HasRGB returns true if the catalog drives an RGB LED.
func (c *Catalog) HasRGB() bool {
	return c.RGB.Channels > 0
}

// Index returns the index of the animation with the given name.
func (c *Catalog) Index(name string) (uint8, bool) {
	for i, a := range c.Animations {
		if a.Name == name {
			return uint8(i), true
		}
	}
	return 0, false
}

// Validate checks the catalog for data errors that would make the engine
// misbehave at run time. All problems are reported at once.
func (c *Catalog) Validate() error {
	var errs []error

	if len(c.Animations) == 0 {
		return errors.New("catalog has no animations")
	}
	if len(c.Animations) > 0xFF {
		errs = append(errs, fmt.Errorf("catalog has %d animations, at most 255 are addressable", len(c.Animations)))
	}
	if c.Mono.Channels < 1 {
		errs = append(errs, fmt.Errorf("mono stream has %d channels", c.Mono.Channels))
	}
	if c.Mono.Split < 0 || c.Mono.Split > c.Mono.Channels {
		errs = append(errs, fmt.Errorf("mono split %d out of range [0, %d]", c.Mono.Split, c.Mono.Channels))
	}

	for _, a := range c.Animations {
		if len(a.Mono) == 0 {
			errs = append(errs, fmt.Errorf("%s: mono program is empty", a.Name))
		}
		errs = append(errs, validateProgram(a.Name, c.Mono, a.Mono)...)

		if a.RGB != nil {
			if !c.HasRGB() {
				errs = append(errs, fmt.Errorf("%s: rgb program without an rgb stream", a.Name))
				continue
			}
			errs = append(errs, validateProgram(a.Name, c.RGB, a.RGB)...)
		}
	}

	off := c.Animations[c.Off()]
	if !isAllOff(off.Mono) || (off.RGB != nil && !isAllOff(off.RGB)) {
		errs = append(errs, fmt.Errorf("%s: last animation must be the all-off program", off.Name))
	}

	return errors.Join(errs...)
}

func validateProgram(name string, spec StreamSpec, p Program) []error {
	var errs []error
	fail := func(i int, format string, args ...any) {
		prefix := fmt.Sprintf("%s/%s[%d]: ", name, spec.Name, i)
		errs = append(errs, fmt.Errorf(prefix+format, args...))
	}

	if len(p) > 0xFE {
		fail(0, "program has %d instructions, at most 254 are addressable", len(p))
	}

	var start uint32
	for i, in := range p {
		if len(in.Values) != spec.Channels {
			fail(i, "has %d values, want %d", len(in.Values), spec.Channels)
		}
		if in.Duration == 0 {
			fail(i, "has zero duration and would never be reached")
		}
		if in.Reserved != 0 {
			fail(i, "opcode bits %#x are reserved", uint8(in.Reserved))
		}
		if in.Duration == Forever && i != len(p)-1 {
			fail(i, "holds forever but is not the last instruction")
		}

		for j, op := range in.Ops {
			if !spec.Ops.Has(op.Kind) {
				fail(i, "operation %s is not supported on this stream", op)
			}
			if j > 0 && in.Ops[j-1].Kind >= op.Kind {
				fail(i, "operations %s are not in evaluation order", formatOps(in.Ops))
			}
		}

		if in.IsLoad() {
			if len(in.Ops) > 1 {
				fail(i, "load cannot be combined with %s", formatOps(in.Ops[1:]))
			}
			for ch, v := range in.Values {
				if v < 0 || v > MaxLevel {
					fail(i, "load level %d of channel %d is out of range", v, ch)
				}
			}
		}

		if count, ok := in.Repeat(); ok {
			switch {
			case count == 0:
				fail(i, "repeat count is zero and would never finish")
			case i == 0:
				fail(i, "repeat on the first instruction rewinds before the program start")
			case uint32(in.Duration) > start:
				fail(i, "repeat rewinds %dms but the instruction starts at %dms", in.Duration, start)
			}
		}

		start += uint32(in.Duration)
	}

	if len(p) > 0 && p[len(p)-1].Duration != Forever && p.TotalDuration() > uint32(Forever) {
		fail(len(p)-1, "program lasts %dms, longer than the 16-bit timeline", p.TotalDuration())
	}

	return errs
}

func isAllOff(p Program) bool {
	if len(p) == 0 {
		return false
	}
	for _, in := range p {
		if !in.IsLoad() {
			return false
		}
		for _, v := range in.Values {
			if v != 0 {
				return false
			}
		}
	}
	return true
}

// MustValidate panics if the catalog is invalid. It is meant for catalogs
// compiled into the binary.
func (c *Catalog) MustValidate() *Catalog {
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("invalid %s catalog: %v", c.Name, err))
	}
	return c
}
