package app

import (
	"context"
	"os"
	"time"

	"github.com/skillcoder/autoscale-bootstrap/internal/infra/appstate"
	"github.com/skillcoder/autoscale-bootstrap/internal/infra/shutdown"
	"github.com/skillcoder/autoscale-bootstrap/internal/logic/bootstrap"
)

// appstater defines the interface for application state management
type appstater interface {
	bootstrap.Observer
	RegisterShutdowner(shutdowner shutdown.Shutdowner)
	Quit() <-chan os.Signal
	SetStarting(ctx context.Context) error
	SetRunning(ctx context.Context) error
	FinishRun(ctx context.Context, report *bootstrap.Report, err error)
	SetNextRun(next time.Time)
	IsHealthy() bool
	IsReady() bool
	Snapshot() appstate.Status
	Shutdown(ctx context.Context) error
}

type signalHandler interface {
	HandleSignals(ctx context.Context, cancel func())
}

type bootstrapper interface {
	RunCommand(ctx context.Context, plan *bootstrap.Plan) (*bootstrap.Report, error)
}
