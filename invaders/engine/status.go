package engine

import "fmt"

// Status is the outcome of a state at a given frame.
type Status uint8

const (
	Playing Status = iota
	Won
	Lost
	TimedOut
)

func (st Status) Terminal() bool {
	return st != Playing
}

func (st Status) String() string {
	switch st {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case TimedOut:
		return "timed-out"
	default:
		return fmt.Sprintf("status(%d)", uint8(st))
	}
}

func (st Status) MarshalText() ([]byte, error) {
	return []byte(st.String()), nil
}

// Status classifies the state before the given frame is played.
// Losing the last life wins over clearing the formation in the same frame.
func (s *State) Status(frame uint16) Status {
	switch {
	case s.Lives == 0:
		return Lost
	case len(s.Enemies) == 0:
		return Won
	case frame >= FrameLimit:
		return TimedOut
	default:
		return Playing
	}
}
