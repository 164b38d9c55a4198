package session

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/google/uuid"

	"github.com/zkarcade/invaders/invaders/engine"
	"github.com/zkarcade/invaders/invaders/record"
	"github.com/zkarcade/invaders/invaders/trace"
)

type Config struct {
	// MaxEndFrame stops the session early. Zero means engine.FrameLimit.
	MaxEndFrame uint16
	// InfoEvery logs progress every N frames. Zero disables progress logs.
	InfoEvery uint16
	// OnFrame is called after every played frame.
	OnFrame func(s *Session) error
}

// Session drives one engine state frame by frame. Interactive play, offline replay and
// the verifier all run through it, so they share a single frame loop.
type Session struct {
	ID    uuid.UUID
	State *engine.State
	Frame uint16
	// Quit is set when the session was stopped by its context before reaching an outcome.
	Quit bool

	input Input
	cfg   Config
	log   log.Logger
}

func New(logger log.Logger, input Input, cfg Config) *Session {
	if cfg.MaxEndFrame == 0 || cfg.MaxEndFrame > engine.FrameLimit {
		cfg.MaxEndFrame = engine.FrameLimit
	}
	id := uuid.New()
	return &Session{
		ID:    id,
		State: engine.NewArena(),
		input: input,
		cfg:   cfg,
		log:   logger.New("session", id),
	}
}

func (s *Session) Status() engine.Status {
	return s.State.Status(s.Frame)
}

// Done reports whether the session reached an outcome or its frame budget.
func (s *Session) Done() bool {
	return s.Status().Terminal() || s.Frame >= s.cfg.MaxEndFrame
}

// Step plays the current frame: inputs, ship fire, then the engine rules.
func (s *Session) Step() {
	for _, dir := range s.input.Actions(s.Frame, s.State) {
		s.State.Input(s.Frame, dir)
	}
	s.State.Fire(s.Frame)
	s.State.Advance(s.Frame)
	s.Frame++
}

// Run plays frames until the session is done or ctx is cancelled.
// Cancellation is an ordinary end of play: the state reached so far stays final.
func (s *Session) Run(ctx context.Context) error {
	s.log.Debug("session started", "maxEndFrame", s.cfg.MaxEndFrame)
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			s.Quit = true
			s.log.Info("session quit", "frame", s.Frame, "reason", err)
			break
		}
		s.Step()
		if s.cfg.InfoEvery != 0 && s.Frame%s.cfg.InfoEvery == 0 {
			s.log.Info("processing",
				"frame", s.Frame,
				"score", s.State.Score,
				"lives", s.State.Lives,
				"enemies", len(s.State.Enemies),
				"inputs", len(s.State.InputLog),
			)
		}
		if s.cfg.OnFrame != nil {
			if err := s.cfg.OnFrame(s); err != nil {
				return fmt.Errorf("frame hook failed at frame %d: %w", s.Frame, err)
			}
		}
	}
	s.log.Info("session ended", "frame", s.Frame, "status", s.Status(), "score", s.State.Score)
	return nil
}

// Record finalizes the session outcome, encoding the input log with c.
// Win means the ship still has lives: a timed out or stopped session with lives left is a win.
// Status tells a cleared formation apart from a timeout.
func (s *Session) Record(c trace.Codec) (*record.Record, error) {
	inputs, err := trace.Encode(c, s.State.InputLog)
	if err != nil {
		return nil, fmt.Errorf("failed to encode input log: %w", err)
	}
	return &record.Record{
		Score:    s.State.Score,
		Win:      s.State.Lives > 0,
		EndFrame: s.Frame,
		Inputs:   inputs,
		Codec:    c.Name(),
	}, nil
}
