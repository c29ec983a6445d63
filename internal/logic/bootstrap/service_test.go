package bootstrap_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/autoscale-bootstrap/internal/logic/bootstrap"
	"github.com/skillcoder/autoscale-bootstrap/internal/logic/bootstrap/mocks"
)

// testNotFoundError implements the service's private not-found interface
// so the mock can return it and the service recognizes it.
type testNotFoundError struct{}

func (testNotFoundError) Error() string { return "not found" }
func (testNotFoundError) IsNotFound()   {}

type fakeRecorder struct {
	outcomes map[string]int
	failures map[string]int
	waits    int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{
		outcomes: make(map[string]int),
		failures: make(map[string]int),
	}
}

func (r *fakeRecorder) RecordOutcome(kind, action string) { r.outcomes[kind+"/"+action]++ }
func (r *fakeRecorder) RecordFailure(kind string)         { r.failures[kind]++ }
func (r *fakeRecorder) RecordPodWait(string, time.Duration, error) {
	r.waits++
}

type fakeObserver struct {
	steps []bootstrap.Step
}

func (o *fakeObserver) EnterStep(_ context.Context, step bootstrap.Step) {
	o.steps = append(o.steps, step)
}

type fixture struct {
	repo     *mocks.MockRepository
	pm       *mocks.MockPackageManager
	recorder *fakeRecorder
	observer *fakeObserver
	svc      *bootstrap.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	f := fixture{
		repo:     mocks.NewMockRepository(t),
		pm:       mocks.NewMockPackageManager(t),
		recorder: newFakeRecorder(),
		observer: &fakeObserver{},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = bootstrap.New(logger, f.repo, f.pm, f.recorder, f.observer, 5*time.Millisecond)

	return f
}

func demoPlan(t *testing.T) *bootstrap.Plan {
	t.Helper()

	workload, err := bootstrap.NewWorkload("demo", "", "nginx:latest", 3)
	require.NoError(t, err)

	autoscaler := bootstrap.DefaultAutoscalerSpec()
	autoscaler.WaitTimeout = time.Second

	plan, err := bootstrap.NewPlan(autoscaler, workload, bootstrap.DefaultTriggers())
	require.NoError(t, err)

	return plan
}

func runningKedaPods() []bootstrap.Pod {
	return []bootstrap.Pod{
		{Name: "keda-operator-0", Namespace: "keda", Phase: bootstrap.PodRunning},
		{Name: "keda-operator-metrics-apiserver-0", Namespace: "keda", Phase: bootstrap.PodRunning},
	}
}

// expectAutoscalerInstalled sets up an existing keda namespace and release.
func (f fixture) expectAutoscalerInstalled() {
	f.repo.EXPECT().GetNamespaceQuery(mock.Anything, "keda").Return(nil).Once()
	f.pm.EXPECT().VersionQuery(mock.Anything).Return("v3.16.2+g13654a5", nil).Once()
	f.pm.EXPECT().ListReleasesQuery(mock.Anything, "keda").
		Return([]bootstrap.Release{{Name: "keda", Namespace: "keda", Chart: "keda-2.16.0", Status: "deployed"}}, nil).
		Once()
}

func TestService_RunCommand(t *testing.T) {
	t.Parallel()

	t.Run("fresh cluster creates everything in order", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.repo.EXPECT().GetNamespaceQuery(mock.Anything, "keda").Return(testNotFoundError{}).Once()
		f.repo.EXPECT().CreateNamespaceCommand(mock.Anything, "keda").Return(nil).Once()
		f.pm.EXPECT().VersionQuery(mock.Anything).Return("v3.16.2+g13654a5", nil).Once()
		f.pm.EXPECT().ListReleasesQuery(mock.Anything, "keda").Return(nil, nil).Once()
		f.pm.EXPECT().AddRepoCommand(mock.Anything, "kedacore", "https://kedacore.github.io/charts").Return(nil).Once()
		f.pm.EXPECT().UpdateReposCommand(mock.Anything).Return(nil).Once()
		f.pm.EXPECT().InstallChartCommand(mock.Anything, "keda", "kedacore/keda", "keda", time.Second).Return(nil).Once()
		f.repo.EXPECT().ListPodsQuery(mock.Anything, "keda", "app.kubernetes.io/instance=keda").
			Return(runningKedaPods(), nil).Once()

		f.repo.EXPECT().GetDeploymentQuery(mock.Anything, "default", "demo").Return(testNotFoundError{}).Once()
		f.repo.EXPECT().
			CreateDeploymentCommand(mock.Anything, mock.MatchedBy(func(w bootstrap.Workload) bool {
				return w.Name == "demo" && w.Namespace == "default" && w.Image == "nginx:latest" && w.Replicas == 3
			})).
			Return(nil).
			Once()

		f.repo.EXPECT().GetServiceQuery(mock.Anything, "default", "demo-service").Return(testNotFoundError{}).Once()
		f.repo.EXPECT().
			CreateServiceCommand(mock.Anything, mock.MatchedBy(func(s bootstrap.ServiceSpec) bool {
				return s.Type == bootstrap.ServiceTypeNodePort && s.Selector["app"] == "demo"
			})).
			Return(nil).
			Once()

		f.repo.EXPECT().GetScaledObjectQuery(mock.Anything, "default", "demo-scaledobject").
			Return(testNotFoundError{}).Once()
		f.repo.EXPECT().ResourceMetricsQuery(mock.Anything, "default").Return(nil).Once()
		f.repo.EXPECT().
			CreateScaledObjectCommand(mock.Anything, mock.MatchedBy(func(s bootstrap.ScaledObjectSpec) bool {
				return s.ScaleTargetName == "demo" && len(s.Triggers) == 2
			})).
			Return(nil).
			Once()

		report, err := f.svc.RunCommand(t.Context(), demoPlan(t))
		require.NoError(t, err)
		require.Equal(t, []bootstrap.Outcome{
			{Kind: bootstrap.KindNamespace, Name: "keda", Action: bootstrap.ActionCreated},
			{Kind: bootstrap.KindHelmRelease, Namespace: "keda", Name: "keda", Action: bootstrap.ActionCreated},
			{Kind: bootstrap.KindDeployment, Namespace: "default", Name: "demo", Action: bootstrap.ActionCreated},
			{Kind: bootstrap.KindService, Namespace: "default", Name: "demo-service", Action: bootstrap.ActionCreated},
			{Kind: bootstrap.KindScaledObject, Namespace: "default", Name: "demo-scaledobject", Action: bootstrap.ActionCreated},
		}, report.Outcomes)
		require.Equal(t, 5, report.Count(bootstrap.ActionCreated))
		require.False(t, report.FinishedAt.Before(report.StartedAt))
		require.Equal(t, []bootstrap.Step{
			bootstrap.StepEnsureAutoscaler,
			bootstrap.StepCreateDeployment,
			bootstrap.StepCreateService,
			bootstrap.StepCreateScalingPolicy,
			bootstrap.StepDone,
		}, f.observer.steps)
		require.Equal(t, 1, f.recorder.waits)
	})

	t.Run("everything present skips all creates", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.expectAutoscalerInstalled()
		f.repo.EXPECT().GetDeploymentQuery(mock.Anything, "default", "demo").Return(nil).Once()
		f.repo.EXPECT().GetServiceQuery(mock.Anything, "default", "demo-service").Return(nil).Once()
		f.repo.EXPECT().GetScaledObjectQuery(mock.Anything, "default", "demo-scaledobject").Return(nil).Once()

		report, err := f.svc.RunCommand(t.Context(), demoPlan(t))
		require.NoError(t, err)
		require.Len(t, report.Outcomes, 5)
		require.Equal(t, 0, report.Count(bootstrap.ActionCreated))
		require.Equal(t, 5, report.Count(bootstrap.ActionSkipped))
		require.Zero(t, f.recorder.waits)
	})

	t.Run("existing deployment is skipped and service is still created", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.expectAutoscalerInstalled()
		f.repo.EXPECT().GetDeploymentQuery(mock.Anything, "default", "demo").Return(nil).Once()
		f.repo.EXPECT().GetServiceQuery(mock.Anything, "default", "demo-service").Return(testNotFoundError{}).Once()
		f.repo.EXPECT().CreateServiceCommand(mock.Anything, mock.Anything).Return(nil).Once()
		f.repo.EXPECT().GetScaledObjectQuery(mock.Anything, "default", "demo-scaledobject").Return(nil).Once()

		report, err := f.svc.RunCommand(t.Context(), demoPlan(t))
		require.NoError(t, err)
		require.Equal(t, bootstrap.ActionSkipped, report.Outcomes[2].Action)
		require.Equal(t, bootstrap.ActionCreated, report.Outcomes[3].Action)
		require.Equal(t, 1, f.recorder.outcomes["Deployment/skipped"])
		require.Equal(t, 1, f.recorder.outcomes["Service/created"])
	})

	t.Run("api error on existence check halts without create", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		forbidden := errors.New("deployments.apps is forbidden")

		f.expectAutoscalerInstalled()
		f.repo.EXPECT().GetDeploymentQuery(mock.Anything, "default", "demo").Return(forbidden).Once()

		report, err := f.svc.RunCommand(t.Context(), demoPlan(t))
		require.ErrorIs(t, err, bootstrap.ErrAPI)
		require.ErrorIs(t, err, forbidden)
		require.ErrorContains(t, err, string(bootstrap.StepCreateDeployment))
		require.Len(t, report.Outcomes, 2)
		require.False(t, report.FinishedAt.IsZero())
		require.Equal(t, 1, f.recorder.failures["Deployment"])
		require.NotContains(t, f.observer.steps, bootstrap.StepDone)
	})

	t.Run("create failure halts the sequence", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		conflict := errors.New("admission webhook denied the request")

		f.expectAutoscalerInstalled()
		f.repo.EXPECT().GetDeploymentQuery(mock.Anything, "default", "demo").Return(nil).Once()
		f.repo.EXPECT().GetServiceQuery(mock.Anything, "default", "demo-service").Return(testNotFoundError{}).Once()
		f.repo.EXPECT().CreateServiceCommand(mock.Anything, mock.Anything).Return(conflict).Once()

		report, err := f.svc.RunCommand(t.Context(), demoPlan(t))
		require.ErrorIs(t, err, bootstrap.ErrCreateService)
		require.ErrorIs(t, err, bootstrap.ErrAPI)
		require.ErrorIs(t, err, conflict)
		require.Len(t, report.Outcomes, 3)
	})

	t.Run("missing package manager stops before workload", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.repo.EXPECT().GetNamespaceQuery(mock.Anything, "keda").Return(nil).Once()
		f.pm.EXPECT().VersionQuery(mock.Anything).
			Return("", fmt.Errorf("%w: exec: \"helm\": executable file not found in $PATH", bootstrap.ErrCommandFailed)).
			Once()

		report, err := f.svc.RunCommand(t.Context(), demoPlan(t))
		require.ErrorIs(t, err, bootstrap.ErrEnsureAutoscaler)
		require.ErrorIs(t, err, bootstrap.ErrCommandFailed)
		require.Equal(t, []bootstrap.Outcome{
			{Kind: bootstrap.KindNamespace, Name: "keda", Action: bootstrap.ActionSkipped},
		}, report.Outcomes)
	})
}

func TestService_EnsureAutoscalerCommand(t *testing.T) {
	t.Parallel()

	spec := bootstrap.DefaultAutoscalerSpec()
	spec.WaitTimeout = time.Second

	t.Run("installed release skips install and wait", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.expectAutoscalerInstalled()

		outcomes, err := f.svc.EnsureAutoscalerCommand(t.Context(), spec)
		require.NoError(t, err)
		require.Equal(t, bootstrap.ActionSkipped, outcomes[1].Action)
		require.Zero(t, f.recorder.waits)
	})

	t.Run("release with a similar name is not a match", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.repo.EXPECT().GetNamespaceQuery(mock.Anything, "keda").Return(nil).Once()
		f.pm.EXPECT().VersionQuery(mock.Anything).Return("v3.16.2", nil).Once()
		f.pm.EXPECT().ListReleasesQuery(mock.Anything, "keda").
			Return([]bootstrap.Release{{Name: "keda-add-ons-http"}}, nil).Once()
		f.pm.EXPECT().AddRepoCommand(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		f.pm.EXPECT().UpdateReposCommand(mock.Anything).Return(nil).Once()
		f.pm.EXPECT().InstallChartCommand(mock.Anything, "keda", "kedacore/keda", "keda", time.Second).Return(nil).Once()
		f.repo.EXPECT().ListPodsQuery(mock.Anything, "keda", mock.Anything).Return(runningKedaPods(), nil).Once()

		outcomes, err := f.svc.EnsureAutoscalerCommand(t.Context(), spec)
		require.NoError(t, err)
		require.Equal(t, bootstrap.ActionCreated, outcomes[1].Action)
	})

	t.Run("listing failure counts as not installed", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.repo.EXPECT().GetNamespaceQuery(mock.Anything, "keda").Return(nil).Once()
		f.pm.EXPECT().VersionQuery(mock.Anything).Return("v3.16.2", nil).Once()
		f.pm.EXPECT().ListReleasesQuery(mock.Anything, "keda").Return(nil, bootstrap.ErrCommandFailed).Once()
		f.pm.EXPECT().AddRepoCommand(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		f.pm.EXPECT().UpdateReposCommand(mock.Anything).Return(nil).Once()
		f.pm.EXPECT().InstallChartCommand(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil).Once()
		f.repo.EXPECT().ListPodsQuery(mock.Anything, "keda", mock.Anything).Return(runningKedaPods(), nil).Once()

		_, err := f.svc.EnsureAutoscalerCommand(t.Context(), spec)
		require.NoError(t, err)
	})

	t.Run("install failure skips wait", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.repo.EXPECT().GetNamespaceQuery(mock.Anything, "keda").Return(nil).Once()
		f.pm.EXPECT().VersionQuery(mock.Anything).Return("v3.16.2", nil).Once()
		f.pm.EXPECT().ListReleasesQuery(mock.Anything, "keda").Return(nil, nil).Once()
		f.pm.EXPECT().AddRepoCommand(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		f.pm.EXPECT().UpdateReposCommand(mock.Anything).Return(nil).Once()
		f.pm.EXPECT().InstallChartCommand(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(bootstrap.ErrCommandFailed).Once()

		outcomes, err := f.svc.EnsureAutoscalerCommand(t.Context(), spec)
		require.ErrorIs(t, err, bootstrap.ErrEnsureAutoscaler)
		require.ErrorIs(t, err, bootstrap.ErrCommandFailed)
		require.Len(t, outcomes, 1)
		require.Zero(t, f.recorder.waits)
		require.Equal(t, 1, f.recorder.failures["HelmRelease"])
	})

	t.Run("repo add failure", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.repo.EXPECT().GetNamespaceQuery(mock.Anything, "keda").Return(nil).Once()
		f.pm.EXPECT().VersionQuery(mock.Anything).Return("v3.16.2", nil).Once()
		f.pm.EXPECT().ListReleasesQuery(mock.Anything, "keda").Return(nil, nil).Once()
		f.pm.EXPECT().AddRepoCommand(mock.Anything, mock.Anything, mock.Anything).Return(bootstrap.ErrCommandFailed).Once()

		_, err := f.svc.EnsureAutoscalerCommand(t.Context(), spec)
		require.ErrorIs(t, err, bootstrap.ErrCommandFailed)
		require.ErrorContains(t, err, "add repo kedacore")
	})

	t.Run("namespace create failure", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.repo.EXPECT().GetNamespaceQuery(mock.Anything, "keda").Return(testNotFoundError{}).Once()
		f.repo.EXPECT().CreateNamespaceCommand(mock.Anything, "keda").Return(errors.New("quota exceeded")).Once()

		outcomes, err := f.svc.EnsureAutoscalerCommand(t.Context(), spec)
		require.ErrorIs(t, err, bootstrap.ErrEnsureAutoscaler)
		require.ErrorIs(t, err, bootstrap.ErrEnsureNamespace)
		require.ErrorIs(t, err, bootstrap.ErrCreateNamespace)
		require.ErrorIs(t, err, bootstrap.ErrAPI)
		require.Nil(t, outcomes)
	})
}

func TestService_EnsureScaledObjectCommand(t *testing.T) {
	t.Parallel()

	t.Run("unavailable resource metrics only warn", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		plan := demoPlan(t)

		f.repo.EXPECT().GetScaledObjectQuery(mock.Anything, "default", "demo-scaledobject").
			Return(testNotFoundError{}).Once()
		f.repo.EXPECT().ResourceMetricsQuery(mock.Anything, "default").
			Return(errors.New("the server could not find the requested resource")).Once()
		f.repo.EXPECT().CreateScaledObjectCommand(mock.Anything, plan.ScaledObject).Return(nil).Once()

		outcome, err := f.svc.EnsureScaledObjectCommand(t.Context(), plan.ScaledObject)
		require.NoError(t, err)
		require.Equal(t, bootstrap.ActionCreated, outcome.Action)
	})

	t.Run("existing policy does not probe metrics", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		plan := demoPlan(t)

		f.repo.EXPECT().GetScaledObjectQuery(mock.Anything, "default", "demo-scaledobject").Return(nil).Once()

		outcome, err := f.svc.EnsureScaledObjectCommand(t.Context(), plan.ScaledObject)
		require.NoError(t, err)
		require.Equal(t, bootstrap.ActionSkipped, outcome.Action)
	})
}
