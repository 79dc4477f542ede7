// Package animation implements the animation virtual machine of the ornament.
//
// An animation is a pair of programs, one for the monochrome LEDs and one for
// the RGB LED. Each program is a list of timed instructions. Instructions are
// evaluated against a millisecond timebase and mutate a brightness vector in
// place using a small set of arithmetic operations.
package animation

import (
	"fmt"
	"sort"
	"strings"
)

// Opcode is the compact bitmask form of an instruction's operations, as it is
// stored in authored program tables. Use Decode to turn it into a list of
// operations.
type Opcode uint8

const (
	LOAD    Opcode = 0x00 // replace the vector
	ADD     Opcode = 0x01 // add, overflow and underflow snap to zero
	RSHIFT  Opcode = 0x02 // rotate clockwise
	LSHIFT  Opcode = 0x04 // rotate anticlockwise
	DIV     Opcode = 0x10 // divide, zero divisors are skipped
	USOURCE Opcode = 0x20 // saturating cascade towards the split
	DSOURCE Opcode = 0x40 // saturating cascade away from the split
	REPEAT  Opcode = 0x80 // re-apply the instruction operand more times
)

// definedBits holds every opcode bit with a meaning. Other bits are reserved.
const definedBits = ADD | RSHIFT | LSHIFT | DIV | USOURCE | DSOURCE | REPEAT

// OpKind is a single operation. The numeric order of the kinds is the order
// in which they are evaluated within one instruction.
type OpKind uint8

const (
	OpLoad OpKind = iota
	OpAdd
	OpRShift
	OpLShift
	OpUSource
	OpDSource
	OpDiv
	OpRepeat
	numOpKinds
)

// String returns a string representation of the operation kind.
func (k OpKind) String() string {
	switch k {
	case OpLoad:
		return "load"
	case OpAdd:
		return "add"
	case OpRShift:
		return "rshift"
	case OpLShift:
		return "lshift"
	case OpUSource:
		return "usource"
	case OpDSource:
		return "dsource"
	case OpDiv:
		return "div"
	case OpRepeat:
		return "repeat"
	default:
		return fmt.Sprintf("OpKind(%d)", k)
	}
}

// Op is one tagged operation of an instruction. Count is only meaningful for
// OpRepeat.
type Op struct {
	Kind  OpKind
	Count uint8
}

func (o Op) String() string {
	if o.Kind == OpRepeat {
		return fmt.Sprintf("repeat(%d)", o.Count)
	}
	return o.Kind.String()
}

// OpSet is a set of operation kinds.
type OpSet uint16

// AllOps contains every operation kind.
const AllOps OpSet = 1<<numOpKinds - 1

// NewOpSet returns a set containing the given kinds.
func NewOpSet(kinds ...OpKind) OpSet {
	var s OpSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

// Has returns true if the set contains the given kind.
func (s OpSet) Has(k OpKind) bool {
	return s&(1<<k) != 0
}

// bitKinds maps opcode bits to their operation kinds.
var bitKinds = []struct {
	bit  Opcode
	kind OpKind
}{
	{ADD, OpAdd},
	{RSHIFT, OpRShift},
	{LSHIFT, OpLShift},
	{USOURCE, OpUSource},
	{DSOURCE, OpDSource},
	{DIV, OpDiv},
	{REPEAT, OpRepeat},
}

// Decode turns a bitmask opcode into its ordered list of operations. LOAD is
// the empty bitmask; any other bit produces the matching operation in
// evaluation order. Reserved bits produce nothing, so an opcode made only of
// reserved bits decodes to an empty list, which leaves the levels alone.
func Decode(opcode Opcode, operand uint8) []Op {
	if opcode == LOAD {
		return []Op{{Kind: OpLoad}}
	}

	ops := make([]Op, 0, 2)
	for _, bk := range bitKinds {
		if opcode&bk.bit == 0 {
			continue
		}
		op := Op{Kind: bk.kind}
		if bk.kind == OpRepeat {
			op.Count = operand
		}
		ops = append(ops, op)
	}
	return normalize(ops)
}

// Encode is the inverse of Decode.
func Encode(ops []Op) (Opcode, uint8) {
	var opcode Opcode
	var operand uint8
	for _, op := range ops {
		for _, bk := range bitKinds {
			if bk.kind == op.Kind {
				opcode |= bk.bit
			}
		}
		if op.Kind == OpRepeat {
			operand = op.Count
		}
	}
	return opcode, operand
}

// normalize sorts ops into evaluation order. A load always sorts first.
func normalize(ops []Op) []Op {
	sort.SliceStable(ops, func(i, j int) bool { return ops[i].Kind < ops[j].Kind })
	return ops
}

func formatOps(ops []Op) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.String()
	}
	return strings.Join(parts, "|")
}
