package main

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/autoscale-bootstrap/internal/app"
	"github.com/skillcoder/autoscale-bootstrap/internal/logic/bootstrap"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand(make(chan os.Signal, 1), time.Now())

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())

	return out.String(), err
}

func TestRootCommand_InvalidInput(t *testing.T) {
	t.Setenv("AUTOSCALE_BOOTSTRAP_LOG_LEVEL", "error")

	tests := map[string]struct {
		giveArgs []string
	}{
		"missing image":     {giveArgs: []string{"--name", "demo"}},
		"missing name":      {giveArgs: []string{"--image", "nginx:latest"}},
		"unknown flag":      {giveArgs: []string{"--image", "nginx:latest", "--name", "demo", "--bogus"}},
		"positional arg":    {giveArgs: []string{"--image", "nginx:latest", "--name", "demo", "extra"}},
		"bad replicas":      {giveArgs: []string{"--image", "nginx:latest", "--name", "demo", "--replicas", "many"}},
		"invalid name":      {giveArgs: []string{"--image", "nginx:latest", "--name", "Demo_App", "--dry-run"}},
		"invalid log level": {giveArgs: []string{"--image", "nginx:latest", "--name", "demo", "--log-level", "loud"}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, tc.giveArgs...)
			require.ErrorIs(t, err, bootstrap.ErrInvalidInput)
			require.Equal(t, app.ExitInvalidInput, app.ExitCode(err))
		})
	}
}

func TestRootCommand_DryRun(t *testing.T) {
	t.Setenv("AUTOSCALE_BOOTSTRAP_LOG_LEVEL", "error")
	t.Setenv("AUTOSCALE_BOOTSTRAP_NAMESPACE", "apps")

	out, err := execute(t, "--image", "nginx:latest", "--name", "demo", "--replicas", "3", "--dry-run")
	require.NoError(t, err)
	require.Contains(t, out, "kind: Deployment")
	require.Contains(t, out, "namespace: apps")
	require.Contains(t, out, "replicas: 3")
	require.Contains(t, out, "name: demo-scaledobject")
}

func TestRootCommand_FlagOverridesEnv(t *testing.T) {
	t.Setenv("AUTOSCALE_BOOTSTRAP_LOG_LEVEL", "error")
	t.Setenv("AUTOSCALE_BOOTSTRAP_NAMESPACE", "apps")

	out, err := execute(t, "--image", "nginx:latest", "--name", "demo", "-n", "web", "--dry-run")
	require.NoError(t, err)
	require.Contains(t, out, "namespace: web")
	require.NotContains(t, out, "namespace: apps")
}
