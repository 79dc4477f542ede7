// Package ledserial implements the serial protocol between the host and an
// ornament replica driven over USB.
//
// Every packet starts with a type byte and ends with the little endian
// CRC-32 (IEEE) of everything before it. Brightness levels are 4 bits wide
// and are packed two per byte, low nibble first.
package ledserial

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
)

// Endianness defines the endianness of the protocol.
var Endianness = binary.LittleEndian

// MaxLevel is the highest level that fits in a nibble.
const MaxLevel = 0x0F

// IncomingPacketType is a type of packet sent by the host.
type IncomingPacketType uint8

const (
	TypeInitializePacket IncomingPacketType = iota
	TypeClearPacket
	TypeSetPacket
)

// String returns a string representation of the packet type.
func (t IncomingPacketType) String() string {
	switch t {
	case TypeInitializePacket:
		return "initialize"
	case TypeClearPacket:
		return "clear"
	case TypeSetPacket:
		return "set"
	default:
		return fmt.Sprintf("IncomingPacketType(%d)", t)
	}
}

// IncomingPacket is a packet sent by the host.
type IncomingPacket interface {
	// Type returns the type of packet.
	Type() IncomingPacketType
}

// InitializePacket tells the device how many channels every following
// SetPacket carries.
type InitializePacket struct {
	NumMono uint8
	NumRGB  uint8
}

// ClearPacket turns every LED off.
type ClearPacket struct{}

// SetPacket sets every channel. Mono and RGB must have the lengths
// negotiated by the InitializePacket.
type SetPacket struct {
	Mono []uint8
	RGB  []uint8
}

func (p InitializePacket) Type() IncomingPacketType { return TypeInitializePacket }
func (p ClearPacket) Type() IncomingPacketType      { return TypeClearPacket }
func (p SetPacket) Type() IncomingPacketType        { return TypeSetPacket }

// OutgoingPacketType is a type of packet sent by the device.
type OutgoingPacketType uint8

const (
	TypeErrorPacket OutgoingPacketType = iota
	TypePanicPacket
	TypeLogPacket
	TypeAckPacket
)

// String returns a string representation of the packet type.
func (t OutgoingPacketType) String() string {
	switch t {
	case TypeErrorPacket:
		return "error"
	case TypePanicPacket:
		return "panic"
	case TypeLogPacket:
		return "log"
	case TypeAckPacket:
		return "ack"
	default:
		return fmt.Sprintf("OutgoingPacketType(%d)", t)
	}
}

// OutgoingPacket is a packet sent by the device.
type OutgoingPacket interface {
	// Type returns the type of packet.
	Type() OutgoingPacketType
}

// ErrorPacket is a packet that indicates an error occurred.
type ErrorPacket struct {
	Message string
}

// PanicPacket is a packet that indicates the program cannot recover.
type PanicPacket struct {
	Message string
}

// LogPacket is a packet that contains a log message.
type LogPacket struct {
	Message string
}

// AckPacket acknowledges a handled incoming packet. The host waits for it
// before sending the next frame.
type AckPacket struct {
	IncomingPacketType IncomingPacketType
}

func (p ErrorPacket) Type() OutgoingPacketType { return TypeErrorPacket }
func (p PanicPacket) Type() OutgoingPacketType { return TypePanicPacket }
func (p LogPacket) Type() OutgoingPacketType   { return TypeLogPacket }
func (p AckPacket) Type() OutgoingPacketType   { return TypeAckPacket }

// ReadContext is the state negotiated by the last InitializePacket. Data in
// this structure are required for the device to read incoming packets.
type ReadContext struct {
	NumMono uint8
	NumRGB  uint8
}

// Apply updates the context from an InitializePacket. Other packets are
// ignored.
func (c *ReadContext) Apply(p IncomingPacket) {
	if p, ok := p.(InitializePacket); ok {
		c.NumMono = p.NumMono
		c.NumRGB = p.NumRGB
	}
}

// PackedLen returns the number of bytes n packed levels take.
func PackedLen(n int) int {
	return (n + 1) / 2
}

// PackLevels appends levels to dst, two per byte. Levels are masked to 4
// bits.
func PackLevels(dst []byte, levels []uint8) []byte {
	for i := 0; i < len(levels); i += 2 {
		b := levels[i] & MaxLevel
		if i+1 < len(levels) {
			b |= (levels[i+1] & MaxLevel) << 4
		}
		dst = append(dst, b)
	}
	return dst
}

// UnpackLevels unpacks n levels from src.
func UnpackLevels(src []byte, n int) []uint8 {
	levels := make([]uint8, n)
	for i := range levels {
		b := src[i/2]
		if i%2 == 1 {
			b >>= 4
		}
		levels[i] = b & MaxLevel
	}
	return levels
}

// readChecksum reads the trailer from the raw reader and compares it with
// the hash of everything read so far.
func readChecksum(r io.Reader, hash uint32) error {
	var checksum uint32
	if err := binary.Read(r, Endianness, &checksum); err != nil {
		return fmt.Errorf("failed to read packet checksum: %w", err)
	}
	if checksum != hash {
		return fmt.Errorf("packet checksum mismatch")
	}
	return nil
}

// ReadIncomingPacket reads an incoming packet from the given reader.
func ReadIncomingPacket(r io.Reader, context ReadContext) (IncomingPacket, error) {
	hash := crc32.NewIEEE()
	tr := io.TeeReader(r, hash)

	var packet IncomingPacket
	var ptypeBuf [1]byte
	if _, err := io.ReadFull(tr, ptypeBuf[:]); err != nil {
		return nil, fmt.Errorf("failed to read incoming packet type: %w", err)
	}

	switch ptype := IncomingPacketType(ptypeBuf[0]); ptype {
	case TypeInitializePacket:
		var p InitializePacket
		if err := binary.Read(tr, Endianness, &p); err != nil {
			return nil, fmt.Errorf("failed to read channel counts: %w", err)
		}
		packet = p

	case TypeClearPacket:
		packet = ClearPacket{}

	case TypeSetPacket:
		numMono, numRGB := int(context.NumMono), int(context.NumRGB)
		buf := make([]byte, PackedLen(numMono)+PackedLen(numRGB))
		if _, err := io.ReadFull(tr, buf); err != nil {
			return nil, fmt.Errorf("failed to read levels: %w", err)
		}
		packet = SetPacket{
			Mono: UnpackLevels(buf, numMono),
			RGB:  UnpackLevels(buf[PackedLen(numMono):], numRGB),
		}

	default:
		return nil, fmt.Errorf("unknown packet type: %s", ptype)
	}

	if err := readChecksum(r, hash.Sum32()); err != nil {
		return nil, err
	}

	return packet, nil
}

// WriteIncomingPacket writes an incoming packet to the given writer.
func WriteIncomingPacket(w io.Writer, p IncomingPacket) error {
	buf := []byte{byte(p.Type())}

	switch p := p.(type) {
	case InitializePacket:
		buf = append(buf, p.NumMono, p.NumRGB)
	case ClearPacket:
	case SetPacket:
		buf = PackLevels(buf, p.Mono)
		buf = PackLevels(buf, p.RGB)
	default:
		return fmt.Errorf("unknown packet type: %T", p)
	}

	return writeFrame(w, buf)
}

// writeFrame writes the packet with its checksum in a single write, so that
// a packet is never interleaved on the wire.
func writeFrame(w io.Writer, buf []byte) error {
	buf = Endianness.AppendUint32(buf, crc32.ChecksumIEEE(buf))
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write packet: %w", err)
	}
	return nil
}

// ReadOutgoingPacket reads an outgoing packet from the given reader.
func ReadOutgoingPacket(r io.Reader) (OutgoingPacket, error) {
	hash := crc32.NewIEEE()
	tr := io.TeeReader(r, hash)

	var packet OutgoingPacket
	var ptypeBuf [1]byte
	if _, err := io.ReadFull(tr, ptypeBuf[:]); err != nil {
		return nil, fmt.Errorf("failed to read outgoing packet type: %w", err)
	}

	readMessage := func() (string, error) {
		var length uint16
		if err := binary.Read(tr, Endianness, &length); err != nil {
			return "", fmt.Errorf("failed to read message length: %w", err)
		}
		buf := make([]byte, length)
		if _, err := io.ReadFull(tr, buf); err != nil {
			return "", fmt.Errorf("failed to read message: %w", err)
		}
		return string(buf), nil
	}

	switch ptype := OutgoingPacketType(ptypeBuf[0]); ptype {
	case TypeErrorPacket:
		msg, err := readMessage()
		if err != nil {
			return nil, err
		}
		packet = ErrorPacket{Message: msg}

	case TypePanicPacket:
		msg, err := readMessage()
		if err != nil {
			return nil, err
		}
		packet = PanicPacket{Message: msg}

	case TypeLogPacket:
		msg, err := readMessage()
		if err != nil {
			return nil, err
		}
		packet = LogPacket{Message: msg}

	case TypeAckPacket:
		var acked [1]byte
		if _, err := io.ReadFull(tr, acked[:]); err != nil {
			return nil, fmt.Errorf("failed to read acked packet type: %w", err)
		}
		packet = AckPacket{IncomingPacketType: IncomingPacketType(acked[0])}

	default:
		return nil, fmt.Errorf("unknown packet type: %s", ptype)
	}

	if err := readChecksum(r, hash.Sum32()); err != nil {
		return nil, err
	}

	return packet, nil
}

// WriteOutgoingPacket writes an outgoing packet to the given writer.
func WriteOutgoingPacket(w io.Writer, p OutgoingPacket) error {
	buf := []byte{byte(p.Type())}

	appendMessage := func(msg string) {
		buf = Endianness.AppendUint16(buf, uint16(len(msg)))
		buf = append(buf, msg...)
	}

	switch p := p.(type) {
	case ErrorPacket:
		appendMessage(p.Message)
	case PanicPacket:
		appendMessage(p.Message)
	case LogPacket:
		appendMessage(p.Message)
	case AckPacket:
		buf = append(buf, byte(p.IncomingPacketType))
	default:
		return fmt.Errorf("unknown packet type: %T", p)
	}

	return writeFrame(w, buf)
}
