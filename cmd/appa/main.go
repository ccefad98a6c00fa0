package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/mabrarov/appa/internal/cli"
)

func main() {
	// stdout is reserved for the greeting.
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}),
	))

	if err := cli.Run(cli.NewRoot(), os.Args[1:]); err != nil {
		slog.Error("failed to print greeting", "error", err)
		os.Exit(1)
	}
}
