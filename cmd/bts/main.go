package main

import (
	"log/slog"
	"os"

	"github.com/btslang/bts/internal/cli"
)

func main() {
	// Logs go to stderr so command output stays pipeable.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	cli.Execute()
}
