package session

import (
	"github.com/zkarcade/invaders/invaders/engine"
	"github.com/zkarcade/invaders/invaders/trace"
)

// Input supplies the player directions for a frame.
type Input interface {
	// Actions returns the directions to apply at frame, in application order.
	Actions(frame uint16, st *engine.State) []trace.Direction
}

// Idle never moves the ship.
type Idle struct{}

func (Idle) Actions(uint16, *engine.State) []trace.Direction {
	return nil
}

// Script feeds back a recorded trace. At each frame it applies every pending action whose
// frame equals the current one; an action whose frame has already passed blocks the rest.
// A prover that consumes at most one action per frame rejects traces this accepts.
type Script struct {
	actions []trace.Action
	next    int
}

var _ Input = (*Script)(nil)

func NewScript(actions []trace.Action) *Script {
	return &Script{actions: actions}
}

func (s *Script) Actions(frame uint16, _ *engine.State) []trace.Direction {
	var out []trace.Direction
	for s.next < len(s.actions) && s.actions[s.next].Frame == frame {
		out = append(out, s.actions[s.next].Dir)
		s.next++
	}
	return out
}

// Remaining returns the actions that have not been applied.
func (s *Script) Remaining() []trace.Action {
	return s.actions[s.next:]
}

// Sweep drives the ship from edge to edge, one column per frame, starting to the right.
type Sweep struct {
	left bool
}

func (s *Sweep) Actions(_ uint16, st *engine.State) []trace.Direction {
	if !s.left && st.Ship.X == st.Dimension.X {
		s.left = true
	} else if s.left && st.Ship.X == 0 {
		s.left = false
	}
	if s.left {
		return []trace.Direction{trace.Left}
	}
	return []trace.Direction{trace.Right}
}
