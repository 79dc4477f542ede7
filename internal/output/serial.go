package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"go.bug.st/serial"
	"golang.org/x/sync/errgroup"
	"libdb.so/karifa/ledserial"
)

// ErrDisconnected is returned by SerialSink.Run when the device goes away.
var ErrDisconnected = errors.New("serial device disconnected")

// SerialSink drives an ornament replica over a serial port using the
// ledserial protocol. Frames are sent one at a time: the next frame only goes
// out once the device has acknowledged the previous one. Frames written in
// between replace each other.
type SerialSink struct {
	port    io.ReadWriteCloser
	numMono int
	numRGB  int
	logger  *slog.Logger
	frames  chan Frame
}

var (
	_ Sink   = (*SerialSink)(nil)
	_ Runner = (*SerialSink)(nil)
)

// OpenSerial opens the serial device at the given baud rate.
func OpenSerial(device string, baud, numMono, numRGB int, logger *slog.Logger) (*SerialSink, error) {
	port, err := serial.Open(device, &serial.Mode{
		BaudRate: baud,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open serial port")
	}

	if err := port.SetReadTimeout(serial.NoTimeout); err != nil {
		port.Close()
		return nil, errors.Wrap(err, "failed to reset read timeout")
	}

	return NewSerialSink(port, numMono, numRGB, logger), nil
}

// NewSerialSink creates a sink on an already opened port. The sink owns the
// port and closes it when Run returns.
func NewSerialSink(port io.ReadWriteCloser, numMono, numRGB int, logger *slog.Logger) *SerialSink {
	return &SerialSink{
		port:    port,
		numMono: numMono,
		numRGB:  numRGB,
		logger:  logger,
		frames:  make(chan Frame, 1),
	}
}

// WriteFrame implements Sink. It never blocks on the device.
func (s *SerialSink) WriteFrame(ctx context.Context, f Frame) error {
	f = f.Clone()
	for {
		select {
		case s.frames <- f:
			return nil
		default:
		}
		// Drop the stale frame and try again.
		select {
		case <-s.frames:
		default:
		}
	}
}

// Run implements Runner.
func (s *SerialSink) Run(ctx context.Context) error {
	errg, ctx := errgroup.WithContext(ctx)
	errg.Go(func() error {
		<-ctx.Done()
		s.logger.Debug("closing serial port")
		if err := s.port.Close(); err != nil {
			return errors.Wrap(err, "failed to close serial port")
		}
		return ctx.Err()
	})

	packets := make(chan ledserial.OutgoingPacket, 4)
	errg.Go(func() error {
		return s.mainLoop(ctx, packets)
	})
	errg.Go(func() error {
		return s.readPackets(ctx, packets)
	})

	return errg.Wait()
}

func (s *SerialSink) mainLoop(ctx context.Context, packets <-chan ledserial.OutgoingPacket) error {
	s.logger.Debug("sending initialize packet")
	if err := s.writePacket(ledserial.InitializePacket{
		NumMono: uint8(s.numMono),
		NumRGB:  uint8(s.numRGB),
	}); err != nil {
		return errors.Wrap(err, "failed to initialize device")
	}

	var ready bool
	var pending *Frame

	send := func(f Frame) error {
		ready = false
		pending = nil
		return s.writePacket(ledserial.SetPacket{
			Mono: f.Mono,
			RGB:  f.RGB,
		})
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case p := <-packets:
			switch p := p.(type) {
			case ledserial.AckPacket:
				s.logger.Debug(
					"received ack packet from device",
					"acked_for", p.IncomingPacketType)
				ready = true
				if pending != nil {
					if err := send(*pending); err != nil {
						return err
					}
				}

			case ledserial.ErrorPacket:
				s.logger.Warn(
					"received error packet from device",
					"message", p.Message)
				return errors.New("device reported error")

			case ledserial.PanicPacket:
				s.logger.Error(
					"device unrecoverably panicked",
					"message", p.Message)
				return errors.New("device panicked")

			case ledserial.LogPacket:
				s.logger.Info(
					"received log packet from device",
					"message", p.Message)

			default:
				return fmt.Errorf("received unknown packet from device: %s", p.Type())
			}

		case f := <-s.frames:
			if !ready {
				pending = &f
				continue
			}
			if err := send(f); err != nil {
				return err
			}
		}
	}
}

func (s *SerialSink) readPackets(ctx context.Context, dst chan<- ledserial.OutgoingPacket) error {
	for ctx.Err() == nil {
		p, err := ledserial.ReadOutgoingPacket(s.port)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if disconnected(err) {
				return ErrDisconnected
			}
			return errors.Wrap(err, "failed to read packet")
		}

		s.logger.Debug(
			"received packet from device",
			"type", p.Type())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case dst <- p:
		}
	}

	return ctx.Err()
}

// disconnected returns true if a read error means the device went away. The
// port never times out, so EOF cannot be a timeout.
func disconnected(err error) bool {
	if errors.Is(err, io.EOF) {
		return true
	}
	var portErr *serial.PortError
	return errors.As(err, &portErr) && portErr.Code() == serial.PortClosed
}

func (s *SerialSink) writePacket(p ledserial.IncomingPacket) error {
	s.logger.Debug(
		"writing packet",
		"type", p.Type())

	if err := ledserial.WriteIncomingPacket(s.port, p); err != nil {
		return errors.Wrapf(err, "failed to write %s packet", p.Type())
	}
	return nil
}
