package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/zkarcade/invaders/invaders/cmd"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "invaders"
	app.Usage = "Provable space invaders"
	app.Description = "Play, replay and verify deterministic space invaders games from compact input traces"
	app.Commands = []*cli.Command{
		cmd.PlayCommand,
		cmd.VerifyCommand,
		cmd.WitnessCommand,
		cmd.TraceCommand,
	}
	return app
}

// run executes the app and returns the process exit code.
func run(ctx context.Context, app *cli.App, args []string, stderr io.Writer) int {
	err := app.RunContext(ctx, args)
	if err == nil {
		return 0
	}
	if errors.Is(err, ctx.Err()) {
		_, _ = fmt.Fprintln(stderr, "command interrupted")
		return 130
	}
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	return 1
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for {
			<-c
			cancel()
			fmt.Println("\r\nExiting...")
		}
	}()

	os.Exit(run(ctx, newApp(), os.Args, os.Stderr))
}
