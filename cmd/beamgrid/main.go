package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/beamgrid/internal/cli"
)

// main is the entrypoint for the beamgrid command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, stdin io.Reader, outW, logW io.Writer, args []string) error {
	inv, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(logW, inv.Config)
	slog.SetDefault(logger)

	in, closeIn, err := cli.OpenInput(inv.InputPath, stdin)
	if err != nil {
		return err
	}
	defer closeIn()

	return cli.Run(ctx, inv, in, outW, logger)
}
