package animation

import (
	"reflect"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode  Opcode
		operand uint8
		want    []Op
	}{
		{LOAD, 9, []Op{{Kind: OpLoad}}},
		{ADD, 0, []Op{{Kind: OpAdd}}},
		{REPEAT | DIV | ADD, 3, []Op{{Kind: OpAdd}, {Kind: OpDiv}, {Kind: OpRepeat, Count: 3}}},
		{DSOURCE | USOURCE | LSHIFT | RSHIFT, 0, []Op{
			{Kind: OpRShift}, {Kind: OpLShift}, {Kind: OpUSource}, {Kind: OpDSource},
		}},
		{USOURCE | REPEAT, 18, []Op{{Kind: OpUSource}, {Kind: OpRepeat, Count: 18}}},
	}

	for _, test := range tests {
		got := Decode(test.opcode, test.operand)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Decode(%#02x, %d) = %v, want %v", test.opcode, test.operand, got, test.want)
		}

		opcode, operand := Encode(got)
		if opcode != test.opcode {
			t.Errorf("Encode(%v) = %#02x, want %#02x", got, opcode, test.opcode)
		}
		if test.opcode&REPEAT != 0 && operand != test.operand {
			t.Errorf("Encode(%v) operand = %d, want %d", got, operand, test.operand)
		}
	}
}

func TestInstructionHelpers(t *testing.T) {
	in := NewInstruction(10, []int8{1}, Op{Kind: OpRepeat, Count: 4}, Op{Kind: OpAdd})
	if in.IsLoad() {
		t.Fatalf("%v reported as load", in)
	}
	if count, ok := in.Repeat(); !ok || count != 4 {
		t.Fatalf("Repeat() = %d, %v", count, ok)
	}
	if s := in.String(); s != "{10ms [1] add|repeat(4)}" {
		t.Fatalf("String() = %q", s)
	}

	load := NewInstruction(10, []int8{1})
	if !load.IsLoad() {
		t.Fatalf("%v is not a load", load)
	}
	if _, ok := load.Repeat(); ok {
		t.Fatalf("load reported a repeat")
	}

	reserved := Step(10, Opcode(0x08), 0, 1)
	if reserved.IsLoad() || len(reserved.Ops) != 0 {
		t.Fatalf("reserved opcode decoded to %v", reserved)
	}
	if reserved.Reserved != 0x08 {
		t.Fatalf("Reserved = %#x, want 0x08", reserved.Reserved)
	}
	if in := (Instruction{Duration: 10}); in.IsLoad() {
		t.Fatalf("instruction without ops reported as load")
	}
}

func TestBuiltinCatalogsValidate(t *testing.T) {
	for _, name := range CatalogNames() {
		t.Run(name, func(t *testing.T) {
			c, err := Lookup(name)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			if err := c.Validate(); err != nil {
				t.Fatalf("built-in catalog is invalid:\n%v", err)
			}
			if c.Animations[c.Off()].Name != "off" {
				t.Fatalf("last animation is %q", c.Animations[c.Off()].Name)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("nope"); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestCatalogShapes(t *testing.T) {
	o := Ornament()
	if o.Len() != 18 || !o.HasRGB() || o.Mono.Channels != 12 {
		t.Fatalf("unexpected ornament catalog: %d animations, rgb %v, %d channels",
			o.Len(), o.HasRGB(), o.Mono.Channels)
	}

	c := Classic()
	if c.HasRGB() || c.Mono.Channels != 10 {
		t.Fatalf("unexpected classic catalog")
	}
	for _, a := range c.Animations {
		for i, in := range a.Mono {
			if !in.IsLoad() {
				t.Fatalf("%s[%d] is not a load", a.Name, i)
			}
		}
	}
}

func TestCatalogNext(t *testing.T) {
	c := Classic()
	if got := c.Next(0); got != 1 {
		t.Fatalf("Next(0) = %d", got)
	}
	last := uint8(c.Playable() - 1)
	if got := c.Next(last); got != 0 {
		t.Fatalf("Next(%d) = %d, want wrap to 0 before the off animation", last, got)
	}
	if got := c.Next(c.Off()); got != 0 {
		t.Fatalf("Next(off) = %d, want 0", got)
	}

	if i, ok := c.Index("race"); !ok || c.Animations[i].Name != "race" {
		t.Fatalf("Index(race) = %d, %v", i, ok)
	}
}

func TestValidateRejects(t *testing.T) {
	zeros := func(n int) []int8 { return make([]int8, n) }

	tests := []struct {
		name    string
		program Program
		want    string
	}{
		{
			"wrong value count",
			Program{Step(100, LOAD, 0, 1, 2, 3)},
			"has 3 values, want 4",
		},
		{
			"zero duration",
			Program{Step(100, LOAD, 0, zeros(4)...), Step(0, LOAD, 0, zeros(4)...)},
			"zero duration",
		},
		{
			"load out of range",
			Program{Step(100, LOAD, 0, 16, 0, 0, 0)},
			"out of range",
		},
		{
			"load combined",
			Program{NewInstruction(100, zeros(4), Op{Kind: OpLoad}, Op{Kind: OpAdd})},
			"load cannot be combined",
		},
		{
			"repeat zero",
			Program{Step(100, LOAD, 0, zeros(4)...), Step(100, ADD|REPEAT, 0, zeros(4)...)},
			"repeat count is zero",
		},
		{
			"repeat first",
			Program{Step(100, ADD|REPEAT, 2, zeros(4)...)},
			"repeat on the first instruction",
		},
		{
			"repeat rewinds too far",
			Program{Step(50, LOAD, 0, zeros(4)...), Step(100, ADD|REPEAT, 2, zeros(4)...)},
			"repeat rewinds 100ms",
		},
		{
			"hold not last",
			Program{Step(Forever, LOAD, 0, zeros(4)...), Step(100, LOAD, 0, zeros(4)...)},
			"holds forever",
		},
		{
			"too long",
			Program{Step(40000, LOAD, 0, zeros(4)...), Step(40000, LOAD, 0, zeros(4)...)},
			"longer than the 16-bit timeline",
		},
		{
			"out of order",
			Program{{Duration: 100, Values: zeros(4), Ops: []Op{{Kind: OpDiv}, {Kind: OpAdd}}}},
			"not in evaluation order",
		},
		{
			"reserved bits",
			Program{Step(100, LOAD, 0, zeros(4)...), Step(100, Opcode(0x08), 0, zeros(4)...)},
			"reserved",
		},
		{
			"reserved bits beside an operation",
			Program{Step(100, LOAD, 0, zeros(4)...), Step(100, ADD|0x08, 0, zeros(4)...)},
			"reserved",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := testCatalog(test.program).Validate()
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Fatalf("error %q does not mention %q", err, test.want)
			}
			if !strings.Contains(err.Error(), "a0/mono[") {
				t.Fatalf("error %q does not name the instruction", err)
			}
		})
	}
}

func TestValidateRequiresOffLast(t *testing.T) {
	c := &Catalog{
		Name: "test",
		Mono: MonoSpec(2, 1),
		Animations: []Animation{
			{Name: "on", Mono: Program{Step(100, LOAD, 0, 15, 15)}},
		},
	}
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "all-off") {
		t.Fatalf("expected an all-off error, got %v", err)
	}

	c.Animations = nil
	if err := c.Validate(); err == nil {
		t.Fatalf("empty catalog accepted")
	}
}

func TestValidateRGBWithoutStream(t *testing.T) {
	c := testCatalog(Program{Step(100, LOAD, 0, make([]int8, 4)...)})
	c.Animations[0].RGB = Program{Step(100, LOAD, 0, 1, 1, 1)}

	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "without an rgb stream") {
		t.Fatalf("expected an rgb stream error, got %v", err)
	}
}
