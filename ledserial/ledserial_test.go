package ledserial

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestIncomingPackets(t *testing.T) {
	ctx := ReadContext{NumMono: 12, NumRGB: 3}

	packets := []IncomingPacket{
		InitializePacket{NumMono: 12, NumRGB: 3},
		ClearPacket{},
		SetPacket{
			Mono: []uint8{0, 1, 2, 3, 4, 5, 15, 14, 13, 12, 11, 10},
			RGB:  []uint8{15, 0, 7},
		},
	}

	var buf bytes.Buffer
	for _, p := range packets {
		if err := WriteIncomingPacket(&buf, p); err != nil {
			t.Fatalf("WriteIncomingPacket(%s): %v", p.Type(), err)
		}
	}

	for _, want := range packets {
		got, err := ReadIncomingPacket(&buf, ctx)
		if err != nil {
			t.Fatalf("ReadIncomingPacket(%s): %v", want.Type(), err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("read %#v, want %#v", got, want)
		}
	}
	if buf.Len() != 0 {
		t.Fatalf("%d bytes left over", buf.Len())
	}
}

func TestSetPacketSize(t *testing.T) {
	var buf bytes.Buffer
	p := SetPacket{Mono: make([]uint8, 12), RGB: make([]uint8, 3)}
	if err := WriteIncomingPacket(&buf, p); err != nil {
		t.Fatalf("WriteIncomingPacket: %v", err)
	}
	// type + 6 mono bytes + 2 rgb bytes + checksum
	if buf.Len() != 1+6+2+4 {
		t.Fatalf("set packet is %d bytes", buf.Len())
	}
}

func TestOutgoingPackets(t *testing.T) {
	packets := []OutgoingPacket{
		AckPacket{IncomingPacketType: TypeSetPacket},
		LogPacket{Message: "hello"},
		ErrorPacket{Message: "bad"},
		PanicPacket{Message: "oops"},
	}

	var buf bytes.Buffer
	for _, p := range packets {
		if err := WriteOutgoingPacket(&buf, p); err != nil {
			t.Fatalf("WriteOutgoingPacket(%s): %v", p.Type(), err)
		}
	}

	for _, want := range packets {
		got, err := ReadOutgoingPacket(&buf)
		if err != nil {
			t.Fatalf("ReadOutgoingPacket(%s): %v", want.Type(), err)
		}
		if got != want {
			t.Fatalf("read %#v, want %#v", got, want)
		}
	}
}

func TestChecksumMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteIncomingPacket(&buf, InitializePacket{NumMono: 10}); err != nil {
		t.Fatalf("WriteIncomingPacket: %v", err)
	}

	b := buf.Bytes()
	b[1] ^= 0x01

	_, err := ReadIncomingPacket(bytes.NewReader(b), ReadContext{})
	if err == nil || !strings.Contains(err.Error(), "checksum") {
		t.Fatalf("expected a checksum error, got %v", err)
	}
}

func TestPackLevels(t *testing.T) {
	levels := []uint8{1, 2, 3, 0x1F}
	packed := PackLevels(nil, levels)
	if !bytes.Equal(packed, []byte{0x21, 0xF3}) {
		t.Fatalf("PackLevels = %x", packed)
	}
	if got := UnpackLevels(packed, 4); !bytes.Equal(got, []uint8{1, 2, 3, 15}) {
		t.Fatalf("UnpackLevels = %v", got)
	}

	odd := PackLevels(nil, []uint8{9, 8, 7})
	if len(odd) != PackedLen(3) {
		t.Fatalf("packed 3 levels into %d bytes", len(odd))
	}
	if got := UnpackLevels(odd, 3); !bytes.Equal(got, []uint8{9, 8, 7}) {
		t.Fatalf("UnpackLevels = %v", got)
	}
}

func TestReadContextApply(t *testing.T) {
	var ctx ReadContext
	ctx.Apply(ClearPacket{})
	ctx.Apply(InitializePacket{NumMono: 10, NumRGB: 0})
	if ctx != (ReadContext{NumMono: 10}) {
		t.Fatalf("ctx = %+v", ctx)
	}
}
