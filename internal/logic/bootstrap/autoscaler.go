package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// EnsureAutoscalerCommand installs the autoscaling controller release unless it is
// already listed, then waits for its pods. Returns the namespace and release outcomes.
func (s *Service) EnsureAutoscalerCommand(ctx context.Context, spec AutoscalerSpec) ([]Outcome, error) {
	logger := s.logger.With(
		"controller", "EnsureAutoscalerCommand",
		"namespace", spec.Namespace,
		"release", spec.Release,
	)

	logger.InfoContext(ctx, "ensuring autoscaler is installed")

	nsOutcome, err := s.EnsureNamespaceCommand(ctx, spec.Namespace)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnsureAutoscaler, err)
	}

	outcomes := []Outcome{nsOutcome}
	release := Outcome{Kind: KindHelmRelease, Namespace: spec.Namespace, Name: spec.Release}

	version, err := s.packageManager.VersionQuery(ctx)
	if err != nil {
		s.recorder.RecordFailure(string(KindHelmRelease))

		logger.ErrorContext(ctx, "package manager is not available", "reason", err)

		return outcomes, fmt.Errorf("%w: package manager version: %w", ErrEnsureAutoscaler, err)
	}

	logger.DebugContext(ctx, "package manager available", "version", version)

	if s.releaseInstalled(ctx, logger, spec) {
		release.Action = ActionSkipped
		s.recorder.RecordOutcome(string(KindHelmRelease), string(ActionSkipped))

		logger.InfoContext(ctx, "autoscaler is already installed")

		return append(outcomes, release), nil
	}

	err = s.install(ctx, logger, spec)
	if err != nil {
		s.recorder.RecordFailure(string(KindHelmRelease))

		return outcomes, fmt.Errorf("%w: %w", ErrEnsureAutoscaler, err)
	}

	logger.InfoContext(ctx, "autoscaler installation completed")

	err = s.WaitForPodsCommand(ctx, spec.Namespace, spec.PodLabelSelector, spec.WaitTimeout)
	if err != nil {
		s.recorder.RecordFailure(string(KindHelmRelease))

		return outcomes, fmt.Errorf("%w: %w", ErrEnsureAutoscaler, err)
	}

	release.Action = ActionCreated
	s.recorder.RecordOutcome(string(KindHelmRelease), string(ActionCreated))

	return append(outcomes, release), nil
}

// releaseInstalled matches the release name exactly. A failed listing counts as
// not installed so the install is attempted.
func (s *Service) releaseInstalled(ctx context.Context, logger *slog.Logger, spec AutoscalerSpec) bool {
	releases, err := s.packageManager.ListReleasesQuery(ctx, spec.Namespace)
	if err != nil {
		logger.WarnContext(ctx, "failed to list releases, assuming not installed", "reason", err)

		return false
	}

	return slices.ContainsFunc(releases, func(r Release) bool {
		return r.Name == spec.Release
	})
}

func (s *Service) install(ctx context.Context, logger *slog.Logger, spec AutoscalerSpec) error {
	err := s.packageManager.AddRepoCommand(ctx, spec.RepoName, spec.RepoURL)
	if err != nil {
		logger.ErrorContext(ctx, "failed to add chart repository", "repo", spec.RepoName, "reason", err)

		return fmt.Errorf("add repo %s: %w", spec.RepoName, err)
	}

	err = s.packageManager.UpdateReposCommand(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to update chart repositories", "reason", err)

		return fmt.Errorf("update repos: %w", err)
	}

	logger.InfoContext(ctx, "installing autoscaler chart", "chart", spec.Chart)

	err = s.packageManager.InstallChartCommand(ctx, spec.Release, spec.Chart, spec.Namespace, spec.WaitTimeout)
	if err != nil {
		logger.ErrorContext(ctx, "failed to install chart", "chart", spec.Chart, "reason", err)

		return fmt.Errorf("install chart %s: %w", spec.Chart, err)
	}

	return nil
}
