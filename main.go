package main

import (
	"context"
	"os"

	"github.com/ethereum/go-ethereum/log"

	"github.com/zkarcade/invaders/invaders/replay"
	"github.com/zkarcade/invaders/invaders/session"
	"github.com/zkarcade/invaders/invaders/trace"
)

func main() {
	logger := log.NewLogger(log.LogfmtHandlerWithLevel(os.Stderr, log.LevelInfo))

	// play a game with the sweep bot, the way a player would
	s := session.New(logger, &session.Sweep{}, session.Config{InfoEvery: 100})
	if err := s.Run(context.Background()); err != nil {
		logger.Crit("failed to play session", "err", err)
	}
	rec, err := s.Record(trace.Frame10)
	if err != nil {
		logger.Crit("failed to record session", "err", err)
	}
	logger.Info("played", "record", rec, "state", s.State.StateHash())

	// the verifier only sees the record and recomputes the rest
	v, err := replay.NewVerifier(logger, replay.Config{Codec: trace.Frame10})
	if err != nil {
		logger.Crit("failed to create verifier", "err", err)
	}
	res, err := v.Verify(rec)
	if err != nil {
		logger.Crit("record rejected", "err", err)
	}
	logger.Info("replayed", "state", res.State.StateHash())

	publicInput, err := rec.PublicInput(trace.Frame10)
	if err != nil {
		logger.Crit("failed to build public input", "err", err)
	}
	commitment, err := rec.Commitment(trace.Frame10)
	if err != nil {
		logger.Crit("failed to commit to record", "err", err)
	}
	logger.Info("public input", "commitment", commitment, "bytes", len(publicInput))
}
