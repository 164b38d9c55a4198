package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	"github.com/zkarcade/invaders/invaders/engine"
	"github.com/zkarcade/invaders/invaders/record"
	"github.com/zkarcade/invaders/invaders/trace"
)

const EnvVarPrefix = "INVADERS"

func prefixEnvVars(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	CodecFlag = &cli.StringFlag{
		Name:     "codec",
		Usage:    "input trace layout, one of frame10, frame12. Must be chosen explicitly.",
		EnvVars:  prefixEnvVars("CODEC"),
		Required: true,
	}
	MaxEndFrameFlag = &cli.UintFlag{
		Name:    "max-end-frame",
		Usage:   "stop playing at this frame even if the game is not over",
		EnvVars: prefixEnvVars("MAX_END_FRAME"),
		Value:   engine.FrameLimit,
	}
	LogLevelFlag = &cli.StringFlag{
		Name:    "log.level",
		Usage:   "lowest log level that will be output: trace, debug, info, warn, error, crit",
		EnvVars: prefixEnvVars("LOG_LEVEL"),
		Value:   "info",
	}
	PProfCPUFlag = &cli.BoolFlag{
		Name:    "pprof.cpu",
		Usage:   "enable pprof cpu profiling, written to the working directory",
		EnvVars: prefixEnvVars("PPROF_CPU"),
	}
	RecordInputFlag = &cli.PathFlag{
		Name:      "input",
		Usage:     "path of the JSON game record to check",
		EnvVars:   prefixEnvVars("INPUT"),
		TakesFile: true,
	}
	RecordFlag = &cli.StringFlag{
		Name:    "record",
		Usage:   "inline JSON game record, alternative to --input",
		EnvVars: prefixEnvVars("RECORD"),
	}
	OutputFlag = &cli.PathFlag{
		Name:      "output",
		Usage:     "path to write the JSON output to. Printed to stdout when empty.",
		EnvVars:   prefixEnvVars("OUTPUT"),
		TakesFile: true,
	}
	InputsFlag = &cli.StringFlag{
		Name:    "inputs",
		Usage:   "hex input trace to play instead of a bot",
		EnvVars: prefixEnvVars("INPUTS"),
	}
	BotFlag = &cli.StringFlag{
		Name:    "bot",
		Usage:   "input bot driving the ship when no trace is given: idle, sweep",
		EnvVars: prefixEnvVars("BOT"),
		Value:   "idle",
	}
	StateOutputFlag = &cli.PathFlag{
		Name:      "state-output",
		Usage:     "path to write the final engine state JSON to",
		EnvVars:   prefixEnvVars("STATE_OUTPUT"),
		TakesFile: true,
	}
	SnapshotEveryFlag = &cli.UintFlag{
		Name:    "snapshot-every",
		Usage:   "write an engine state snapshot every N frames, 0 disables snapshots",
		EnvVars: prefixEnvVars("SNAPSHOT_EVERY"),
	}
	SnapshotFmtFlag = &cli.StringFlag{
		Name:    "snapshot-fmt",
		Usage:   "format for snapshot output file names, with %d for the frame",
		EnvVars: prefixEnvVars("SNAPSHOT_FMT"),
		Value:   "snapshot-%d.json",
	}
	InfoEveryFlag = &cli.UintFlag{
		Name:    "info-every",
		Usage:   "log progress every N frames, 0 disables progress logs",
		EnvVars: prefixEnvVars("INFO_EVERY"),
	}
)

func newLogger(ctx *cli.Context) (log.Logger, error) {
	lvl, err := ParseLevel(ctx.String(LogLevelFlag.Name))
	if err != nil {
		return nil, err
	}
	return Logger(ctx.App.ErrWriter, lvl), nil
}

func codecFromFlag(ctx *cli.Context, name string) (trace.Codec, error) {
	return trace.Lookup(ctx.String(name))
}

func maxEndFrame(ctx *cli.Context) (uint16, error) {
	v := ctx.Uint(MaxEndFrameFlag.Name)
	if v > engine.FrameLimit {
		return 0, fmt.Errorf("--%s %d exceeds frame limit %d", MaxEndFrameFlag.Name, v, engine.FrameLimit)
	}
	return uint16(v), nil
}

// loadClaim reads the record from exactly one of --input and --record.
func loadClaim(ctx *cli.Context) (*record.Record, error) {
	path := ctx.Path(RecordInputFlag.Name)
	inline := ctx.String(RecordFlag.Name)
	switch {
	case path != "" && inline != "":
		return nil, fmt.Errorf("--%s and --%s are mutually exclusive", RecordInputFlag.Name, RecordFlag.Name)
	case path != "":
		return record.Load(path)
	case inline != "":
		return record.Parse(inline)
	default:
		return nil, fmt.Errorf("a record is required, set --%s or --%s", RecordInputFlag.Name, RecordFlag.Name)
	}
}

func startProfile(ctx *cli.Context) func() {
	if !ctx.Bool(PProfCPUFlag.Name) {
		return func() {}
	}
	return profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile).Stop
}
