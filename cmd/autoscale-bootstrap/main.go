package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/skillcoder/autoscale-bootstrap/internal/app"
	"github.com/skillcoder/autoscale-bootstrap/internal/infra/shutdown"
)

func main() {
	appStart := time.Now()
	// Start listening for signals immediately as first thing, before any other initialization
	signals := shutdown.Notify()
	ctx := context.Background()

	err := newRootCommand(signals, appStart).ExecuteContext(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "bootstrap failed", "reason", err, "exitCode", app.ExitCode(err))
		os.Exit(app.ExitCode(err))
	}
}
