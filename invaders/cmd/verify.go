package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/zkarcade/invaders/invaders/replay"
)

func newVerifier(ctx *cli.Context) (*replay.Verifier, error) {
	l, err := newLogger(ctx)
	if err != nil {
		return nil, err
	}
	codec, err := codecFromFlag(ctx, CodecFlag.Name)
	if err != nil {
		return nil, err
	}
	endFrame, err := maxEndFrame(ctx)
	if err != nil {
		return nil, err
	}
	return replay.NewVerifier(l, replay.Config{Codec: codec, MaxEndFrame: endFrame})
}

// Verify replays a claimed record and prints its commitment when every field matches.
func Verify(ctx *cli.Context) error {
	defer startProfile(ctx)()

	claim, err := loadClaim(ctx)
	if err != nil {
		return err
	}
	v, err := newVerifier(ctx)
	if err != nil {
		return err
	}
	res, err := v.Verify(claim)
	if err != nil {
		return fmt.Errorf("record rejected: %w", err)
	}
	if p := ctx.Path(OutputFlag.Name); p != "" {
		if err := res.Record.Store(p); err != nil {
			return fmt.Errorf("failed to write recomputed record: %w", err)
		}
	}
	commitment, err := res.Record.Commitment(v.Codec())
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(ctx.App.Writer, commitment.Hex())
	return nil
}

var VerifyCommand = &cli.Command{
	Name:        "verify",
	Usage:       "Check a game record by replaying its input trace",
	Description: "Replay the input trace of a JSON game record and require score, win, end frame and inputs to match. The public input commitment is written to stdout on success.",
	Action:      Verify,
	Flags: []cli.Flag{
		CodecFlag,
		RecordInputFlag,
		RecordFlag,
		MaxEndFrameFlag,
		OutputFlag,
		LogLevelFlag,
		PProfCPUFlag,
	},
}
