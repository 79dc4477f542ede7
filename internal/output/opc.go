package output

import (
	"context"

	"github.com/kellydunn/go-opc"
	"github.com/pkg/errors"
)

// OPCSink sends frames to an Open Pixel Control server such as a Fadecandy.
type OPCSink struct {
	client  *opc.Client
	channel uint8
}

var _ Sink = (*OPCSink)(nil)

// DialOPC connects to the OPC server at addr ("host:port").
func DialOPC(addr string, channel uint8) (*OPCSink, error) {
	client := opc.NewClient()
	if err := client.Connect("tcp", addr); err != nil {
		return nil, errors.Wrapf(err, "failed to connect to OPC server %s", addr)
	}
	return &OPCSink{client: client, channel: channel}, nil
}

// Message builds the OPC message for a frame.
func Message(channel uint8, f Frame) *opc.Message {
	pixels := Pixels(f)

	m := opc.NewMessage(channel)
	m.SetLength(uint16(3 * len(pixels)))
	for i, p := range pixels {
		m.SetPixelColor(i, p[0], p[1], p[2])
	}
	return m
}

// WriteFrame implements Sink.
func (s *OPCSink) WriteFrame(ctx context.Context, f Frame) error {
	if err := s.client.Send(Message(s.channel, f)); err != nil {
		return errors.Wrap(err, "failed to send OPC message")
	}
	return nil
}
