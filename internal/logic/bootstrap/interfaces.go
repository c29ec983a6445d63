package bootstrap

import (
	"context"
	"time"
)

// Repository is the port interface for cluster operations.
// Get* queries return nil when the object exists and an error implementing
// notFound when it does not.
type Repository interface {
	GetNamespaceQuery(
		ctx context.Context,
		name string,
	) error

	CreateNamespaceCommand(
		ctx context.Context,
		name string,
	) error

	GetDeploymentQuery(
		ctx context.Context,
		namespace,
		name string,
	) error

	CreateDeploymentCommand(
		ctx context.Context,
		workload Workload,
	) error

	GetServiceQuery(
		ctx context.Context,
		namespace,
		name string,
	) error

	CreateServiceCommand(
		ctx context.Context,
		service ServiceSpec,
	) error

	GetScaledObjectQuery(
		ctx context.Context,
		namespace,
		name string,
	) error

	CreateScaledObjectCommand(
		ctx context.Context,
		scaledObject ScaledObjectSpec,
	) error

	ListPodsQuery(
		ctx context.Context,
		namespace,
		labelSelector string,
	) ([]Pod, error)

	// ResourceMetricsQuery reports whether the resource metrics API serves the namespace.
	ResourceMetricsQuery(
		ctx context.Context,
		namespace string,
	) error
}

// PackageManager is the port interface for the chart package manager CLI.
type PackageManager interface {
	VersionQuery(ctx context.Context) (string, error)

	ListReleasesQuery(
		ctx context.Context,
		namespace string,
	) ([]Release, error)

	AddRepoCommand(
		ctx context.Context,
		name,
		url string,
	) error

	UpdateReposCommand(ctx context.Context) error

	InstallChartCommand(
		ctx context.Context,
		release,
		chart,
		namespace string,
		timeout time.Duration,
	) error
}

// Recorder receives provisioning measurements.
type Recorder interface {
	RecordOutcome(kind, action string)
	RecordFailure(kind string)
	RecordPodWait(namespace string, duration time.Duration, err error)
}

// notFound is a private interface for checking "not found" errors
// without importing the adapter package.
type notFound interface {
	IsNotFound()
}

// Observer is notified when the bootstrap sequence enters a step.
type Observer interface {
	EnterStep(ctx context.Context, step Step)
}
