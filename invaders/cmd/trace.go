package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/zkarcade/invaders/invaders/trace"
)

var (
	ActionsFlag = &cli.StringFlag{
		Name:     "actions",
		Usage:    "comma separated frame:dir pairs, dir 0 is left and 1 is right, e.g. 5:1,7:0",
		EnvVars:  prefixEnvVars("ACTIONS"),
		Required: true,
	}
	TraceFlag = &cli.StringFlag{
		Name:     "inputs",
		Usage:    "hex input trace",
		EnvVars:  prefixEnvVars("INPUTS"),
		Required: true,
	}
	FromCodecFlag = &cli.StringFlag{
		Name:     "from",
		Usage:    "trace layout of the given inputs",
		Required: true,
	}
	ToCodecFlag = &cli.StringFlag{
		Name:     "to",
		Usage:    "trace layout to re-encode the inputs with",
		Required: true,
	}
)

func TraceDecode(ctx *cli.Context) error {
	codec, err := codecFromFlag(ctx, CodecFlag.Name)
	if err != nil {
		return err
	}
	actions, err := trace.Decode(codec, ctx.String(TraceFlag.Name))
	if err != nil {
		return err
	}
	if actions == nil {
		actions = []trace.Action{}
	}
	return writeJSON(ctx.App.Writer, actions)
}

func TraceEncode(ctx *cli.Context) error {
	codec, err := codecFromFlag(ctx, CodecFlag.Name)
	if err != nil {
		return err
	}
	actions, err := trace.ParseActions(ctx.String(ActionsFlag.Name))
	if err != nil {
		return err
	}
	s, err := trace.Encode(codec, actions)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(ctx.App.Writer, s)
	return nil
}

func TraceConvert(ctx *cli.Context) error {
	from, err := codecFromFlag(ctx, FromCodecFlag.Name)
	if err != nil {
		return err
	}
	to, err := codecFromFlag(ctx, ToCodecFlag.Name)
	if err != nil {
		return err
	}
	s, err := trace.Convert(from, to, ctx.String(TraceFlag.Name))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(ctx.App.Writer, s)
	return nil
}

var TraceCommand = &cli.Command{
	Name:  "trace",
	Usage: "Inspect and re-encode input traces",
	Subcommands: []*cli.Command{
		{
			Name:   "decode",
			Usage:  "Decode a hex input trace into JSON actions",
			Action: TraceDecode,
			Flags:  []cli.Flag{CodecFlag, TraceFlag},
		},
		{
			Name:   "encode",
			Usage:  "Encode frame:dir actions into a hex input trace",
			Action: TraceEncode,
			Flags:  []cli.Flag{CodecFlag, ActionsFlag},
		},
		{
			Name:   "convert",
			Usage:  "Re-encode a hex input trace from one layout to another",
			Action: TraceConvert,
			Flags:  []cli.Flag{FromCodecFlag, ToCodecFlag, TraceFlag},
		},
	},
}
