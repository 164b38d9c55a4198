package trace

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMalformedTrace = errors.New("malformed trace")
	ErrOutOfRange     = errors.New("action out of codec range")
	ErrUnknownCodec   = errors.New("unknown trace codec")
)

// Direction is the single bit of player intent carried per action.
type Direction uint8

const (
	Left  Direction = 0
	Right Direction = 1
)

// Displacement is the horizontal ship movement for the direction.
func (d Direction) Displacement() int32 {
	if d == Left {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Action is one recorded player input.
type Action struct {
	Frame uint16    `json:"frame"`
	Dir   Direction `json:"dir"`
}

func (a Action) String() string {
	return fmt.Sprintf("%d:%d", a.Frame, a.Dir)
}

// ActionSize is the number of bytes one action occupies in an encoded trace.
const ActionSize = 2

// Codec packs a single action into two bytes.
// The variants are not compatible with each other; callers must select one explicitly.
type Codec interface {
	Name() string
	// MaxFrame is the largest frame index the codec can represent.
	MaxFrame() uint16
	Pack(a Action) ([ActionSize]byte, error)
	Unpack(b [ActionSize]byte) (Action, error)
}

// Encode renders actions as upper-case hex, four characters per action, no separators.
func Encode(c Codec, actions []Action) (string, error) {
	var sb strings.Builder
	sb.Grow(len(actions) * ActionSize * 2)
	for i, a := range actions {
		b, err := c.Pack(a)
		if err != nil {
			return "", fmt.Errorf("action %d: %w", i, err)
		}
		sb.WriteString(strings.ToUpper(hex.EncodeToString(b[:])))
	}
	return sb.String(), nil
}

// Bytes returns the raw trace bytes after checking the trace decodes under c.
func Bytes(c Codec, s string) ([]byte, error) {
	if _, err := Decode(c, s); err != nil {
		return nil, err
	}
	return hex.DecodeString(s)
}

// Decode parses a hex trace produced by Encode. Either hex case is accepted.
func Decode(c Codec, s string) ([]Action, error) {
	if len(s)%(ActionSize*2) != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", ErrMalformedTrace, len(s), ActionSize*2)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTrace, err)
	}
	out := make([]Action, 0, len(raw)/ActionSize)
	for i := 0; i < len(raw); i += ActionSize {
		a, err := c.Unpack([ActionSize]byte{raw[i], raw[i+1]})
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i/ActionSize, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// Convert re-encodes a trace from one codec variant into another.
func Convert(from, to Codec, s string) (string, error) {
	actions, err := Decode(from, s)
	if err != nil {
		return "", fmt.Errorf("decode %s trace: %w", from.Name(), err)
	}
	out, err := Encode(to, actions)
	if err != nil {
		return "", fmt.Errorf("encode %s trace: %w", to.Name(), err)
	}
	return out, nil
}

// ParseActions reads a comma separated list of frame:dir pairs, e.g. "5:1,7:0".
func ParseActions(s string) ([]Action, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]Action, 0, len(parts))
	for _, p := range parts {
		frameStr, dirStr, ok := strings.Cut(strings.TrimSpace(p), ":")
		if !ok {
			return nil, fmt.Errorf("action %q: expected frame:dir", p)
		}
		frame, err := strconv.ParseUint(frameStr, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("action %q: invalid frame: %w", p, err)
		}
		dir, err := strconv.ParseUint(dirStr, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("action %q: invalid direction: %w", p, err)
		}
		out = append(out, Action{Frame: uint16(frame), Dir: Direction(dir)})
	}
	return out, nil
}
