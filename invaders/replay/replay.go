package replay

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/log"

	"github.com/zkarcade/invaders/invaders/engine"
	"github.com/zkarcade/invaders/invaders/record"
	"github.com/zkarcade/invaders/invaders/session"
	"github.com/zkarcade/invaders/invaders/trace"
)

// Result is the outcome of replaying a claimed record.
type Result struct {
	Record *record.Record
	State  *engine.State
	Status engine.Status
	// Unapplied holds trace actions the replay never reached or that were out of order.
	Unapplied []trace.Action
	// Untagged is set when the claim did not name its codec and was read with the selected one.
	Untagged bool
}

// Verifier recomputes records from their input traces on a fresh engine.
type Verifier struct {
	cfg Config
	log log.Logger
}

func NewVerifier(logger log.Logger, cfg Config) (*Verifier, error) {
	if err := cfg.Check(); err != nil {
		return nil, fmt.Errorf("invalid replay config: %w", err)
	}
	return &Verifier{cfg: cfg, log: logger}, nil
}

// Codec is the trace layout the verifier decodes claims with.
func (v *Verifier) Codec() trace.Codec {
	return v.cfg.Codec
}

// Replay decodes the claim's trace and plays it back. The claimed outcome is not consulted.
func (v *Verifier) Replay(claim *record.Record) (*Result, error) {
	if err := claim.Validate(v.cfg.Codec); err != nil {
		return nil, err
	}
	if claim.Codec == "" {
		// a trace whose frames are all multiples of 4 decodes under either layout
		v.log.Warn("record has no codec tag, assuming selected codec", "codec", v.cfg.Codec.Name())
	}
	actions, err := trace.Decode(v.cfg.Codec, claim.Inputs)
	if err != nil {
		return nil, err
	}
	script := session.NewScript(actions)
	s := session.New(v.log, script, session.Config{MaxEndFrame: v.cfg.MaxEndFrame})
	// replays run to an outcome, nothing can interrupt them
	if err := s.Run(context.Background()); err != nil {
		return nil, fmt.Errorf("replay failed: %w", err)
	}
	rec, err := s.Record(v.cfg.Codec)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Record:    rec,
		State:     s.State,
		Status:    s.Status(),
		Unapplied: script.Remaining(),
		Untagged:  claim.Codec == "",
	}
	if len(res.Unapplied) > 0 {
		v.log.Warn("trace actions not applied", "count", len(res.Unapplied), "first", res.Unapplied[0])
	}
	return res, nil
}

// Verify replays the claim and requires every record field to match the recomputed one.
func (v *Verifier) Verify(claim *record.Record) (*Result, error) {
	res, err := v.Replay(claim)
	if err != nil {
		return nil, err
	}
	if err := Compare(claim, res.Record); err != nil {
		v.log.Error("record verification failed", "err", err)
		return res, err
	}
	v.log.Info("record verified", "score", res.Record.Score, "win", res.Record.Win, "endFrame", res.Record.EndFrame)
	return res, nil
}

// Compare checks score, win, end frame and inputs, in that order.
// Inputs are compared as strings, byte for byte.
func Compare(claimed, recomputed *record.Record) error {
	if claimed.Score != recomputed.Score {
		return &MismatchError{Field: FieldScore, Claimed: claimed.Score, Recomputed: recomputed.Score}
	}
	if claimed.Win != recomputed.Win {
		return &MismatchError{Field: FieldWin, Claimed: claimed.Win, Recomputed: recomputed.Win}
	}
	if claimed.EndFrame != recomputed.EndFrame {
		return &MismatchError{Field: FieldEndFrame, Claimed: claimed.EndFrame, Recomputed: recomputed.EndFrame}
	}
	if claimed.Inputs != recomputed.Inputs {
		return &MismatchError{Field: FieldInputs, Claimed: claimed.Inputs, Recomputed: recomputed.Inputs}
	}
	return nil
}
