package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/skillcoder/autoscale-bootstrap/internal/adapters/outbound/helm"
	"github.com/skillcoder/autoscale-bootstrap/internal/adapters/outbound/k8s"
	"github.com/skillcoder/autoscale-bootstrap/internal/config"
	"github.com/skillcoder/autoscale-bootstrap/internal/httpserver"
	"github.com/skillcoder/autoscale-bootstrap/internal/infra/cronparser"
	"github.com/skillcoder/autoscale-bootstrap/internal/infra/metrics"
	"github.com/skillcoder/autoscale-bootstrap/internal/infra/runner"
	"github.com/skillcoder/autoscale-bootstrap/internal/infra/shutdown"
	"github.com/skillcoder/autoscale-bootstrap/internal/logic/bootstrap"
	"github.com/skillcoder/autoscale-bootstrap/internal/render"
)

type connectFunc func(ctx context.Context, logger *slog.Logger, kubeConfigPath, master string) (*k8s.Clients, error)

type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	appState appstater
	signals  signalHandler
	registry *prometheus.Registry
	recorder *metrics.Recorder
	out      io.Writer

	connect        connectFunc
	packageManager bootstrap.PackageManager
}

// New creates a new application instance. Reports and dry-run manifests are written to out.
func New(cfg *config.Config, logger *slog.Logger, appState appstater, out io.Writer) *App {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	recorder := metrics.New(registry)
	commandRunner := runner.New(logger, recorder)

	return &App{
		cfg:            cfg,
		logger:         logger,
		appState:       appState,
		signals:        shutdown.New(logger, appState),
		registry:       registry,
		recorder:       recorder,
		out:            out,
		connect:        k8s.Connect,
		packageManager: helm.New(logger, commandRunner, cfg.HelmBinary),
	}
}

// Run executes the bootstrap once, or on every SCHEDULE tick until a termination
// signal, and blocks until done. The returned error keeps the bootstrap sentinels.
func (a *App) Run(originCtx context.Context) error {
	plan, err := a.plan()
	if err != nil {
		return err
	}

	if a.cfg.DryRun {
		a.logger.InfoContext(originCtx, "dry run, rendering manifests only")

		return render.Manifests(a.out, plan)
	}

	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.signals.HandleSignals(gctx, cancel)

		return nil
	})

	g.Go(func() error {
		defer cancel()

		return a.serve(gctx, plan)
	})

	err = g.Wait()

	shutdownErr := a.appState.Shutdown(originCtx)
	if shutdownErr != nil {
		a.logger.ErrorContext(originCtx, "failed to shut down", "reason", shutdownErr)
	}

	return err
}

func (a *App) plan() (*bootstrap.Plan, error) {
	workload, err := bootstrap.NewWorkload(a.cfg.Name, a.cfg.Namespace, a.cfg.Image, a.cfg.Replicas)
	if err != nil {
		return nil, err
	}

	return bootstrap.NewPlan(a.cfg.AutoscalerSpec(), workload, bootstrap.DefaultTriggers())
}

func (a *App) serve(ctx context.Context, plan *bootstrap.Plan) error {
	err := a.appState.SetStarting(ctx)
	if err != nil {
		return fmt.Errorf("set starting application state: %w", err)
	}

	if a.cfg.HTTPPort != "" {
		srv := httpserver.New(a.logger, a.appState, a.registry, a.cfg.HTTPPort)

		err = srv.Start(ctx)
		if err != nil {
			return fmt.Errorf("start http server: %w", err)
		}

		a.appState.RegisterShutdowner(srv)
	}

	svc, err := a.newService(ctx)
	if err != nil {
		a.finishRun(ctx, nil, err)

		return err
	}

	err = a.appState.SetRunning(ctx)
	if err != nil {
		return fmt.Errorf("set running application state: %w", err)
	}

	if a.cfg.Schedule == "" {
		return a.runOnce(ctx, svc, plan)
	}

	return a.runScheduled(ctx, svc, plan)
}

func (a *App) newService(ctx context.Context) (*bootstrap.Service, error) {
	a.appState.EnterStep(ctx, bootstrap.StepConnect)

	clients, err := a.connect(ctx, a.logger, a.cfg.KubeConfig, a.cfg.KubeMaster)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", bootstrap.StepConnect, err)
	}

	repo := k8s.New(a.logger, clients.Kubernetes, clients.Dynamic, clients.Metrics)

	return bootstrap.New(
		a.logger,
		repo,
		a.packageManager,
		a.recorder,
		a.appState,
		a.cfg.PodPollInterval,
	), nil
}

func (a *App) runOnce(ctx context.Context, svc bootstrapper, plan *bootstrap.Plan) error {
	report, err := svc.RunCommand(ctx, plan)

	a.finishRun(ctx, report, err)

	if report != nil {
		if renderErr := render.Report(a.out, report); renderErr != nil {
			a.logger.WarnContext(ctx, "failed to write report", "reason", renderErr)
		}
	}

	return err
}

// runScheduled runs immediately, then at each schedule occurrence. Failed runs
// are logged and retried at the next occurrence; a signal ends the loop cleanly.
func (a *App) runScheduled(ctx context.Context, svc bootstrapper, plan *bootstrap.Plan) error {
	schedule, err := cronparser.Parse(a.cfg.Schedule, a.cfg.ScheduleTZ)
	if err != nil {
		return fmt.Errorf("%w: %w", bootstrap.ErrInvalidInput, err)
	}

	logger := a.logger.With("schedule", schedule.String())

	for {
		err = a.runOnce(ctx, svc, plan)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			logger.ErrorContext(ctx, "scheduled bootstrap run failed", "reason", err)
		}

		next := schedule.Next(time.Now())
		if next.IsZero() {
			return fmt.Errorf("%w: %w", bootstrap.ErrInvalidInput, cronparser.ErrNoOccurrence)
		}

		a.appState.SetNextRun(next)

		logger.InfoContext(ctx, "waiting for next run", "nextRunAt", next)

		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()

			logger.InfoContext(ctx, "schedule stopped")

			return nil
		case <-timer.C:
		}
	}
}

func (a *App) finishRun(ctx context.Context, report *bootstrap.Report, err error) {
	a.appState.FinishRun(ctx, report, err)
	a.recorder.RecordRun(time.Now(), err)

	if a.cfg.MetricsTextfile == "" {
		return
	}

	writeErr := metrics.WriteTextfile(a.cfg.MetricsTextfile, a.registry)
	if writeErr != nil {
		a.logger.WarnContext(ctx, "failed to write metrics textfile",
			"path", a.cfg.MetricsTextfile,
			"reason", writeErr,
		)
	}
}
