package trace

import (
	"fmt"
	"sort"
)

var (
	// Frame10 stores a 10-bit frame: byte1 = frame>>2, byte2 = (frame&0x3)<<6 | dir.
	// This is the layout the proving program replays.
	Frame10 Codec = frame10{}
	// Frame12 stores a 12-bit frame: byte1 = frame>>4, byte2 = (frame&0xF)<<4 | dir.
	// Emitted by the legacy replay front end.
	Frame12 Codec = frame12{}
)

var codecs = map[string]Codec{
	Frame10.Name(): Frame10,
	Frame12.Name(): Frame12,
}

// Lookup resolves a codec variant by name.
func Lookup(name string) (Codec, error) {
	c, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of %v", ErrUnknownCodec, name, Names())
	}
	return c, nil
}

func Names() []string {
	out := make([]string, 0, len(codecs))
	for name := range codecs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func checkDir(d Direction) error {
	if d > Right {
		return fmt.Errorf("%w: direction %d", ErrOutOfRange, d)
	}
	return nil
}

type frame10 struct{}

func (frame10) Name() string     { return "frame10" }
func (frame10) MaxFrame() uint16 { return 1<<10 - 1 }

func (c frame10) Pack(a Action) (out [ActionSize]byte, err error) {
	if a.Frame > c.MaxFrame() {
		return out, fmt.Errorf("%w: frame %d exceeds %d", ErrOutOfRange, a.Frame, c.MaxFrame())
	}
	if err := checkDir(a.Dir); err != nil {
		return out, err
	}
	out[0] = byte(a.Frame >> 2)
	out[1] = byte(a.Frame&0x03)<<6 | byte(a.Dir)
	return out, nil
}

func (frame10) Unpack(b [ActionSize]byte) (Action, error) {
	// bits 1..5 of the second byte are unused
	if b[1]&0x3E != 0 {
		return Action{}, fmt.Errorf("%w: reserved bits set in %02X%02X", ErrMalformedTrace, b[0], b[1])
	}
	return Action{
		Frame: uint16(b[0])<<2 | uint16(b[1]>>6),
		Dir:   Direction(b[1] & 0x01),
	}, nil
}

type frame12 struct{}

func (frame12) Name() string     { return "frame12" }
func (frame12) MaxFrame() uint16 { return 1<<12 - 1 }

func (c frame12) Pack(a Action) (out [ActionSize]byte, err error) {
	if a.Frame > c.MaxFrame() {
		return out, fmt.Errorf("%w: frame %d exceeds %d", ErrOutOfRange, a.Frame, c.MaxFrame())
	}
	if err := checkDir(a.Dir); err != nil {
		return out, err
	}
	out[0] = byte(a.Frame >> 4)
	out[1] = byte(a.Frame&0x0F)<<4 | byte(a.Dir)
	return out, nil
}

func (frame12) Unpack(b [ActionSize]byte) (Action, error) {
	// bits 1..3 of the second byte are unused
	if b[1]&0x0E != 0 {
		return Action{}, fmt.Errorf("%w: reserved bits set in %02X%02X", ErrMalformedTrace, b[0], b[1])
	}
	return Action{
		Frame: uint16(b[0])<<4 | uint16(b[1]>>4),
		Dir:   Direction(b[1] & 0x01),
	}, nil
}
