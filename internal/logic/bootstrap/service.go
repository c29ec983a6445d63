package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

type Service struct {
	logger         *slog.Logger
	repo           Repository
	packageManager PackageManager
	recorder       Recorder
	observer       Observer
	pollInterval   time.Duration
}

// New creates a new bootstrap service. observer may be nil.
func New(
	logger *slog.Logger,
	repo Repository,
	packageManager PackageManager,
	recorder Recorder,
	observer Observer,
	pollInterval time.Duration,
) *Service {
	if pollInterval <= 0 {
		pollInterval = DefaultPodPollInterval
	}

	return &Service{
		logger:         logger,
		repo:           repo,
		packageManager: packageManager,
		recorder:       recorder,
		observer:       observer,
		pollInterval:   pollInterval,
	}
}

type step struct {
	name Step
	run  func(ctx context.Context) ([]Outcome, error)
}

// RunCommand provisions the plan in a fixed order. The first failing step halts
// the sequence; the report holds the outcomes of the steps that completed.
func (s *Service) RunCommand(ctx context.Context, plan *Plan) (*Report, error) {
	logger := s.logger.With("controller", "RunCommand", "workload", plan.Workload.Name, "namespace", plan.Workload.Namespace)

	report := &Report{StartedAt: time.Now()}

	steps := []step{
		{
			name: StepEnsureAutoscaler,
			run: func(ctx context.Context) ([]Outcome, error) {
				return s.EnsureAutoscalerCommand(ctx, plan.Autoscaler)
			},
		},
		{
			name: StepCreateDeployment,
			run: func(ctx context.Context) ([]Outcome, error) {
				return single(s.EnsureDeploymentCommand(ctx, plan.Workload))
			},
		},
		{
			name: StepCreateService,
			run: func(ctx context.Context) ([]Outcome, error) {
				return single(s.EnsureServiceCommand(ctx, plan.Service))
			},
		},
		{
			name: StepCreateScalingPolicy,
			run: func(ctx context.Context) ([]Outcome, error) {
				return single(s.EnsureScaledObjectCommand(ctx, plan.ScaledObject))
			},
		},
	}

	for _, st := range steps {
		s.enterStep(ctx, st.name)

		outcomes, err := st.run(ctx)
		report.Outcomes = append(report.Outcomes, outcomes...)

		if err != nil {
			report.FinishedAt = time.Now()

			return report, fmt.Errorf("%s: %w", st.name, err)
		}
	}

	s.enterStep(ctx, StepDone)

	report.FinishedAt = time.Now()

	logger.InfoContext(ctx, "bootstrap completed",
		"created", report.Count(ActionCreated),
		"skipped", report.Count(ActionSkipped),
		"duration", report.FinishedAt.Sub(report.StartedAt),
	)

	return report, nil
}

// EnsureNamespaceCommand creates the namespace unless it exists.
func (s *Service) EnsureNamespaceCommand(ctx context.Context, name string) (Outcome, error) {
	logger := s.logger.With("controller", "EnsureNamespaceCommand")

	outcome, err := s.ensure(ctx, logger, KindNamespace, "", name,
		func(ctx context.Context) error {
			return s.repo.GetNamespaceQuery(ctx, name)
		},
		func(ctx context.Context) error {
			return s.repo.CreateNamespaceCommand(ctx, name)
		},
		ErrCreateNamespace,
	)
	if err != nil {
		return outcome, fmt.Errorf("%w: %w", ErrEnsureNamespace, err)
	}

	return outcome, nil
}

// EnsureDeploymentCommand creates the workload Deployment unless it exists.
func (s *Service) EnsureDeploymentCommand(ctx context.Context, workload Workload) (Outcome, error) {
	logger := s.logger.With("controller", "EnsureDeploymentCommand")

	return s.ensure(ctx, logger, KindDeployment, workload.Namespace, workload.Name,
		func(ctx context.Context) error {
			return s.repo.GetDeploymentQuery(ctx, workload.Namespace, workload.Name)
		},
		func(ctx context.Context) error {
			return s.repo.CreateDeploymentCommand(ctx, workload)
		},
		ErrCreateDeployment,
	)
}

// EnsureServiceCommand creates the workload Service unless it exists.
func (s *Service) EnsureServiceCommand(ctx context.Context, service ServiceSpec) (Outcome, error) {
	logger := s.logger.With("controller", "EnsureServiceCommand")

	return s.ensure(ctx, logger, KindService, service.Namespace, service.Name,
		func(ctx context.Context) error {
			return s.repo.GetServiceQuery(ctx, service.Namespace, service.Name)
		},
		func(ctx context.Context) error {
			return s.repo.CreateServiceCommand(ctx, service)
		},
		ErrCreateService,
	)
}

// EnsureScaledObjectCommand creates the scaling policy unless it exists.
func (s *Service) EnsureScaledObjectCommand(ctx context.Context, scaledObject ScaledObjectSpec) (Outcome, error) {
	logger := s.logger.With("controller", "EnsureScaledObjectCommand")

	return s.ensure(ctx, logger, KindScaledObject, scaledObject.Namespace, scaledObject.Name,
		func(ctx context.Context) error {
			return s.repo.GetScaledObjectQuery(ctx, scaledObject.Namespace, scaledObject.Name)
		},
		func(ctx context.Context) error {
			s.checkResourceMetrics(ctx, logger, scaledObject.Namespace)

			return s.repo.CreateScaledObjectCommand(ctx, scaledObject)
		},
		ErrCreateScaledObject,
	)
}

// ensure issues get and, only when it reports "not found", create.
// Any other get error aborts without calling create.
func (s *Service) ensure(
	ctx context.Context,
	logger *slog.Logger,
	kind Kind,
	namespace,
	name string,
	get func(ctx context.Context) error,
	create func(ctx context.Context) error,
	createErr error,
) (Outcome, error) {
	outcome := Outcome{Kind: kind, Namespace: namespace, Name: name}

	logger = logger.With("kind", kind, "name", name)
	if namespace != "" {
		logger = logger.With("namespace", namespace)
	}

	err := get(ctx)
	if err == nil {
		outcome.Action = ActionSkipped
		s.recorder.RecordOutcome(string(kind), string(ActionSkipped))

		logger.InfoContext(ctx, "already exists, skipping creation")

		return outcome, nil
	}

	var target notFound
	if !errors.As(err, &target) {
		s.recorder.RecordFailure(string(kind))

		logger.ErrorContext(ctx, "existence check failed", "reason", err)

		return outcome, fmt.Errorf("%w: get %s %s: %w", ErrAPI, kind, name, err)
	}

	err = create(ctx)
	if err != nil {
		s.recorder.RecordFailure(string(kind))

		logger.ErrorContext(ctx, "create failed", "reason", err)

		return outcome, fmt.Errorf("%w: %w: %w", createErr, ErrAPI, err)
	}

	outcome.Action = ActionCreated
	s.recorder.RecordOutcome(string(kind), string(ActionCreated))

	logger.InfoContext(ctx, "created")

	return outcome, nil
}

// checkResourceMetrics warns when cpu/memory triggers have no metrics to scale on.
func (s *Service) checkResourceMetrics(ctx context.Context, logger *slog.Logger, namespace string) {
	err := s.repo.ResourceMetricsQuery(ctx, namespace)
	if err != nil {
		logger.WarnContext(ctx, "resource metrics api unavailable, cpu and memory triggers will not scale",
			"reason", err,
		)
	}
}

func (s *Service) enterStep(ctx context.Context, step Step) {
	s.logger.DebugContext(ctx, "entering step", "step", step)

	if s.observer != nil {
		s.observer.EnterStep(ctx, step)
	}
}

func single(outcome Outcome, err error) ([]Outcome, error) {
	if outcome.Action == "" {
		return nil, err
	}

	return []Outcome{outcome}, err
}
