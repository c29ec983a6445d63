package helm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/skillcoder/autoscale-bootstrap/internal/logic/bootstrap"
)

// DefaultBinary is looked up in PATH.
const DefaultBinary = "helm"

type adapter struct {
	logger *slog.Logger
	runner Runner
	binary string
}

// New creates a package manager backed by the helm CLI.
func New(logger *slog.Logger, runner Runner, binary string) bootstrap.PackageManager {
	if binary == "" {
		binary = DefaultBinary
	}

	return &adapter{
		logger: logger.With("component", "helm-adapter"),
		runner: runner,
		binary: binary,
	}
}

var _ bootstrap.PackageManager = (*adapter)(nil)

// release is one entry of `helm list -o json`.
type release struct {
	Name       string `json:"name"`
	Namespace  string `json:"namespace"`
	Revision   string `json:"revision"`
	Status     string `json:"status"`
	Chart      string `json:"chart"`
	AppVersion string `json:"app_version"`
}

func (a *adapter) VersionQuery(ctx context.Context) (string, error) {
	return a.run(ctx, "version", "--short")
}

func (a *adapter) ListReleasesQuery(ctx context.Context, namespace string) ([]bootstrap.Release, error) {
	out, err := a.run(ctx, "list", "--namespace", namespace, "--output", "json")
	if err != nil {
		return nil, err
	}

	// helm 3.0 prints nothing instead of [] when there are no releases
	if out == "" {
		return nil, nil
	}

	var items []release

	err = json.Unmarshal([]byte(out), &items)
	if err != nil {
		return nil, fmt.Errorf("%w: decode helm list output: %w", bootstrap.ErrCommandFailed, err)
	}

	releases := make([]bootstrap.Release, 0, len(items))
	for _, item := range items {
		releases = append(releases, bootstrap.Release{
			Name:      item.Name,
			Namespace: item.Namespace,
			Chart:     item.Chart,
			Status:    item.Status,
		})
	}

	return releases, nil
}

func (a *adapter) AddRepoCommand(ctx context.Context, name, url string) error {
	_, err := a.run(ctx, "repo", "add", name, url, "--force-update")

	return err
}

func (a *adapter) UpdateReposCommand(ctx context.Context) error {
	_, err := a.run(ctx, "repo", "update")

	return err
}

func (a *adapter) InstallChartCommand(
	ctx context.Context,
	releaseName,
	chart,
	namespace string,
	timeout time.Duration,
) error {
	_, err := a.run(ctx, "install", releaseName, chart,
		"--namespace", namespace,
		"--wait",
		"--timeout", timeout.String(),
	)

	return err
}

func (a *adapter) run(ctx context.Context, args ...string) (string, error) {
	out, err := a.runner.Run(ctx, a.binary, args...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", bootstrap.ErrCommandFailed, err)
	}

	a.logger.DebugContext(ctx, "helm command succeeded", "args", args)

	return out, nil
}
