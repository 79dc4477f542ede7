package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"reflect"
	"testing"
	"time"

	"go.bug.st/serial"
	"libdb.so/karifa/internal/led"
	"libdb.so/karifa/ledserial"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestColor(t *testing.T) {
	if r, g, b := Color(0).RGB255(); r != 0 || g != 0 || b != 0 {
		t.Fatalf("Color(0) = %d %d %d", r, g, b)
	}

	wr, wg, wb := WarmWhite.RGB255()
	if r, g, b := Color(led.MaxLevel).RGB255(); r != wr || g != wg || b != wb {
		t.Fatalf("Color(max) = %d %d %d, want %d %d %d", r, g, b, wr, wg, wb)
	}

	// Brightness is monotonic in the level.
	var last uint8
	for l := uint8(1); l <= led.MaxLevel; l++ {
		r, _, _ := Color(l).RGB255()
		if r <= last {
			t.Fatalf("Color(%d) red %d is not brighter than %d", l, r, last)
		}
		last = r
	}

	if r, g, b := RGBColor(15, 0, 0).RGB255(); r != 255 || g != 0 || b != 0 {
		t.Fatalf("RGBColor(red) = %d %d %d", r, g, b)
	}
}

func TestPixels(t *testing.T) {
	pixels := Pixels(Frame{
		Mono: []uint8{0, 15},
		RGB:  []uint8{0, 0, 15},
	})
	if len(pixels) != 3 {
		t.Fatalf("got %d pixels, want 3", len(pixels))
	}
	if pixels[0] != [3]uint8{} {
		t.Fatalf("pixel 0 = %v, want off", pixels[0])
	}
	if pixels[2] != [3]uint8{0, 0, 255} {
		t.Fatalf("rgb pixel = %v", pixels[2])
	}

	if pixels := Pixels(Frame{Mono: make([]uint8, 4)}); len(pixels) != 4 {
		t.Fatalf("got %d pixels without rgb, want 4", len(pixels))
	}
}

func TestSamplerSkipsUnchangedFrames(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mono := led.NewBuffer(4)
	rgb := led.NewBuffer(3)

	frames := make(chan Frame, 16)
	sink := SinkFunc(func(ctx context.Context, f Frame) error {
		frames <- f.Clone()
		return nil
	})

	s := NewSampler(mono, rgb, 200, discardLogger(), sink)
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	first := <-frames
	if !first.Equal(Frame{Mono: make([]uint8, 4), RGB: make([]uint8, 3)}) {
		t.Fatalf("first frame = %+v", first)
	}

	select {
	case f := <-frames:
		t.Fatalf("unexpected frame without a change: %+v", f)
	case <-time.After(50 * time.Millisecond):
	}

	mono.Store([]uint8{1, 2, 3, 4})
	if f := <-frames; !reflect.DeepEqual(f.Mono, []uint8{1, 2, 3, 4}) {
		t.Fatalf("frame after store = %+v", f)
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Fatalf("Run returned %v", err)
	}
}

func TestSamplerRejectsBadRate(t *testing.T) {
	s := NewSampler(led.NewBuffer(1), nil, 0, discardLogger())
	if err := s.Run(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}
}

// fakeDevice reads packets like the replica firmware and acknowledges them.
func fakeDevice(conn net.Conn, sets chan<- ledserial.SetPacket) {
	var rctx ledserial.ReadContext
	for {
		p, err := ledserial.ReadIncomingPacket(conn, rctx)
		if err != nil {
			return
		}
		rctx.Apply(p)

		if p, ok := p.(ledserial.SetPacket); ok {
			sets <- p
		}

		ack := ledserial.AckPacket{IncomingPacketType: p.Type()}
		if err := ledserial.WriteOutgoingPacket(conn, ack); err != nil {
			return
		}
	}
}

func TestSerialSink(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	host, device := net.Pipe()
	defer device.Close()

	sets := make(chan ledserial.SetPacket, 4)
	go fakeDevice(device, sets)

	sink := NewSerialSink(host, 4, 3, discardLogger())
	done := make(chan error, 1)
	go func() { done <- sink.Run(ctx) }()

	want := Frame{Mono: []uint8{15, 0, 7, 1}, RGB: []uint8{0, 15, 0}}
	if err := sink.WriteFrame(ctx, want); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	select {
	case p := <-sets:
		if !reflect.DeepEqual(p.Mono, want.Mono) || !reflect.DeepEqual(p.RGB, want.RGB) {
			t.Fatalf("device got %+v, want %+v", p, want)
		}
	case <-ctx.Done():
		t.Fatalf("device never received the frame")
	}

	// A second frame goes out once the first one is acknowledged.
	want.Mono[0] = 3
	if err := sink.WriteFrame(ctx, want); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	select {
	case p := <-sets:
		if p.Mono[0] != 3 {
			t.Fatalf("device got %+v", p)
		}
	case <-ctx.Done():
		t.Fatalf("device never received the second frame")
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Fatalf("Run returned %v", err)
	}
}

func TestSerialSinkDeviceError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	host, device := net.Pipe()
	defer device.Close()

	go func() {
		var rctx ledserial.ReadContext
		if _, err := ledserial.ReadIncomingPacket(device, rctx); err != nil {
			return
		}
		ledserial.WriteOutgoingPacket(device, ledserial.ErrorPacket{Message: "no"})
	}()

	sink := NewSerialSink(host, 4, 0, discardLogger())
	err := sink.Run(ctx)
	if err == nil || err == context.Canceled || ctx.Err() != nil {
		t.Fatalf("Run returned %v, want a device error", err)
	}
}

func TestSerialSinkDisconnect(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	host, device := net.Pipe()

	go func() {
		var rctx ledserial.ReadContext
		if _, err := ledserial.ReadIncomingPacket(device, rctx); err != nil {
			return
		}
		device.Close()
	}()

	sink := NewSerialSink(host, 4, 0, discardLogger())
	if err := sink.Run(ctx); !errors.Is(err, ErrDisconnected) {
		t.Fatalf("Run returned %v, want %v", err, ErrDisconnected)
	}
	if ctx.Err() != nil {
		t.Fatalf("Run only returned once the test timed out")
	}
}

func TestDisconnected(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{io.EOF, true},
		{fmt.Errorf("failed to read outgoing packet type: %w", io.EOF), true},
		{&serial.PortError{}, false},
		{io.ErrUnexpectedEOF, false},
		{errors.New("crc mismatch"), false},
	}
	for _, test := range tests {
		if got := disconnected(test.err); got != test.want {
			t.Errorf("disconnected(%v) = %v, want %v", test.err, got, test.want)
		}
	}
}

func TestOPCSink(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	defer l.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := l.Accept()
		if err == nil {
			accepted <- conn
		}
	}()

	sink, err := DialOPC(l.Addr().String(), 2)
	if err != nil {
		t.Fatalf("DialOPC: %v", err)
	}

	conn := <-accepted
	defer conn.Close()

	f := Frame{Mono: []uint8{15, 0}, RGB: []uint8{0, 15, 0}}
	if err := sink.WriteFrame(context.Background(), f); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	// channel, command, length (big endian), then RGB triplets
	buf := make([]byte, 4+9)
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, err := io.ReadFull(conn, buf); err != nil {
		t.Fatalf("failed to read OPC message: %v", err)
	}

	if buf[0] != 2 || buf[1] != 0 || buf[2] != 0 || buf[3] != 9 {
		t.Fatalf("header = %v", buf[:4])
	}

	var data []byte
	for _, p := range Pixels(f) {
		data = append(data, p[:]...)
	}
	if !reflect.DeepEqual(buf[4:], data) {
		t.Fatalf("pixels = %v, want %v", buf[4:], data)
	}
}
