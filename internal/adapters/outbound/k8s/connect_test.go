package k8s

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/autoscale-bootstrap/internal/logic/bootstrap"
)

const kubeConfigTemplate = `apiVersion: v1
kind: Config
clusters:
- name: test
  cluster:
    server: %s
contexts:
- name: test
  context:
    cluster: test
    user: test
current-context: test
users:
- name: test
  user:
    token: test-token
`

func writeKubeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newVersionServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/version" {
			http.NotFound(w, r)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"major":"1","minor":"33","gitVersion":"v1.33.7"}`)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestConnect(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("reachable api server", func(t *testing.T) {
		t.Parallel()

		srv := newVersionServer(t)
		path := writeKubeConfig(t, fmt.Sprintf(kubeConfigTemplate, srv.URL))

		clients, err := Connect(t.Context(), logger, path, "")
		require.NoError(t, err)
		require.Equal(t, srv.URL, clients.Host)
		require.Equal(t, "v1.33.7", clients.ServerVersion)
		require.NotNil(t, clients.Kubernetes)
		require.NotNil(t, clients.Dynamic)
		require.NotNil(t, clients.Metrics)
	})

	t.Run("master overrides kubeconfig server", func(t *testing.T) {
		t.Parallel()

		srv := newVersionServer(t)
		path := writeKubeConfig(t, fmt.Sprintf(kubeConfigTemplate, "https://127.0.0.1:1"))

		clients, err := Connect(t.Context(), logger, path, srv.URL)
		require.NoError(t, err)
		require.Equal(t, srv.URL, clients.Host)
	})

	t.Run("kubeconfig list skips missing entries", func(t *testing.T) {
		t.Parallel()

		srv := newVersionServer(t)
		path := writeKubeConfig(t, fmt.Sprintf(kubeConfigTemplate, srv.URL))
		list := strings.Join([]string{filepath.Join(t.TempDir(), "absent"), path}, string(os.PathListSeparator))

		clients, err := Connect(t.Context(), logger, list, "")
		require.NoError(t, err)
		require.Equal(t, srv.URL, clients.Host)
	})

	t.Run("kubeconfig list with no existing entry", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		list := filepath.Join(dir, "a") + string(os.PathListSeparator) + filepath.Join(dir, "b")

		_, err := Connect(t.Context(), logger, list, "")
		require.ErrorIs(t, err, bootstrap.ErrConnectionFailed)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("missing kubeconfig", func(t *testing.T) {
		t.Parallel()

		_, err := Connect(t.Context(), logger, filepath.Join(t.TempDir(), "absent"), "")
		require.ErrorIs(t, err, bootstrap.ErrConnectionFailed)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed kubeconfig", func(t *testing.T) {
		t.Parallel()

		path := writeKubeConfig(t, "clusters: [unterminated")

		_, err := Connect(t.Context(), logger, path, "")
		require.ErrorIs(t, err, bootstrap.ErrConnectionFailed)
	})

	t.Run("unreachable api server", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		path := writeKubeConfig(t, fmt.Sprintf(kubeConfigTemplate, url))

		_, err := Connect(t.Context(), logger, path, "")
		require.ErrorIs(t, err, bootstrap.ErrConnectionFailed)
		require.ErrorContains(t, err, "unreachable")
	})
}
