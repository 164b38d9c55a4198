package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ethereum-optimism/optimism/op-service/jsonutil"
	"github.com/urfave/cli/v2"

	"github.com/zkarcade/invaders/invaders/session"
	"github.com/zkarcade/invaders/invaders/trace"
)

func selectInput(ctx *cli.Context, c trace.Codec) (session.Input, error) {
	if inputs := ctx.String(InputsFlag.Name); inputs != "" {
		actions, err := trace.Decode(c, inputs)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s: %w", InputsFlag.Name, err)
		}
		return session.NewScript(actions), nil
	}
	switch bot := ctx.String(BotFlag.Name); bot {
	case "idle":
		return session.Idle{}, nil
	case "sweep":
		return &session.Sweep{}, nil
	default:
		return nil, fmt.Errorf("unknown bot %q, expected idle or sweep", bot)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func Play(ctx *cli.Context) error {
	defer startProfile(ctx)()

	l, err := newLogger(ctx)
	if err != nil {
		return err
	}
	codec, err := codecFromFlag(ctx, CodecFlag.Name)
	if err != nil {
		return err
	}
	endFrame, err := maxEndFrame(ctx)
	if err != nil {
		return err
	}
	input, err := selectInput(ctx, codec)
	if err != nil {
		return err
	}

	snapshotEvery := ctx.Uint(SnapshotEveryFlag.Name)
	snapshotFmt := ctx.String(SnapshotFmtFlag.Name)
	cfg := session.Config{
		MaxEndFrame: endFrame,
		InfoEvery:   uint16(ctx.Uint(InfoEveryFlag.Name)),
	}
	if snapshotEvery != 0 {
		cfg.OnFrame = func(s *session.Session) error {
			if uint(s.Frame)%snapshotEvery != 0 {
				return nil
			}
			if err := jsonutil.WriteJSON(fmt.Sprintf(snapshotFmt, s.Frame), s.State); err != nil {
				return fmt.Errorf("failed to write state snapshot: %w", err)
			}
			return nil
		}
	}

	s := session.New(l, input, cfg)
	if err := s.Run(ctx.Context); err != nil {
		return err
	}
	rec, err := s.Record(codec)
	if err != nil {
		return err
	}
	if script, ok := input.(*session.Script); ok {
		if rest := script.Remaining(); len(rest) > 0 {
			l.Warn("trace actions not applied", "count", len(rest), "first", rest[0])
		}
	}

	if p := ctx.Path(StateOutputFlag.Name); p != "" {
		if err := jsonutil.WriteJSON(p, s.State); err != nil {
			return fmt.Errorf("failed to write state output: %w", err)
		}
	}
	if p := ctx.Path(OutputFlag.Name); p != "" {
		if err := rec.Store(p); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
		return nil
	}
	return writeJSON(ctx.App.Writer, rec)
}

var PlayCommand = &cli.Command{
	Name:        "play",
	Usage:       "Play a game of invaders and emit its record",
	Description: "Play a game driven by an input trace or a bot, and emit the resulting JSON record. The record is written to stdout unless --output is set.",
	Action:      Play,
	Flags: []cli.Flag{
		CodecFlag,
		InputsFlag,
		BotFlag,
		MaxEndFrameFlag,
		OutputFlag,
		StateOutputFlag,
		SnapshotEveryFlag,
		SnapshotFmtFlag,
		InfoEveryFlag,
		LogLevelFlag,
		PProfCPUFlag,
	},
}
