package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/iomapper/internal/app"
	"github.com/vk/iomapper/internal/cli"
	"github.com/vk/iomapper/internal/hcl"
)

// main is the entrypoint for the iomapper application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	mapper, err := app.NewApp(outW, appConfig, hcl.NewLoader())
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}

	if _, err := mapper.Run(context.Background()); err != nil {
		if errors.Is(err, app.ErrDiagnostics) {
			return &cli.ExitError{Code: cli.ExitDiagnostics, Message: err.Error()}
		}
		return &cli.ExitError{Code: cli.ExitFailure, Message: err.Error()}
	}
	return nil
}
