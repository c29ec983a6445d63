package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/autoscale-bootstrap/internal/httpserver"
	"github.com/skillcoder/autoscale-bootstrap/internal/infra/appstate"
	"github.com/skillcoder/autoscale-bootstrap/internal/infra/metrics"
	"github.com/skillcoder/autoscale-bootstrap/internal/logic/bootstrap"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRunningState(t *testing.T) *appstate.AppState {
	t.Helper()

	s := appstate.New(discardLogger(), time.Now(), make(chan os.Signal, 1))
	require.NoError(t, s.SetStarting(t.Context()))
	require.NoError(t, s.SetRunning(t.Context()))

	return s
}

func serve(t *testing.T, srv *httpserver.Server, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)

	srv.Handler().ServeHTTP(rec, req)

	return rec
}

func TestServer_Name(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(discardLogger(), newRunningState(t), prometheus.NewRegistry(), "")
	require.Equal(t, "http-server", srv.Name())
}

func TestServer_Probes(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		givePrepare   func(t *testing.T, s *appstate.AppState)
		wantHealthz   int
		wantReadyz    int
		wantLastError string
	}{
		"running before first run": {
			givePrepare: func(*testing.T, *appstate.AppState) {},
			wantHealthz: http.StatusOK,
			wantReadyz:  http.StatusServiceUnavailable,
		},
		"successful run": {
			givePrepare: func(t *testing.T, s *appstate.AppState) {
				s.FinishRun(t.Context(), &bootstrap.Report{}, nil)
			},
			wantHealthz: http.StatusOK,
			wantReadyz:  http.StatusOK,
		},
		"failed run": {
			givePrepare: func(t *testing.T, s *appstate.AppState) {
				s.FinishRun(t.Context(), nil, errors.New("timeout waiting for pods"))
			},
			wantHealthz:   http.StatusOK,
			wantReadyz:    http.StatusServiceUnavailable,
			wantLastError: "timeout waiting for pods",
		},
		"terminating": {
			givePrepare: func(t *testing.T, s *appstate.AppState) {
				require.NoError(t, s.SetTerminating(t.Context()))
			},
			wantHealthz: http.StatusServiceUnavailable,
			wantReadyz:  http.StatusServiceUnavailable,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			state := newRunningState(t)
			tc.givePrepare(t, state)

			srv := httpserver.New(discardLogger(), state, prometheus.NewRegistry(), "")

			require.Equal(t, tc.wantHealthz, serve(t, srv, "/-/healthz").Code)
			require.Equal(t, tc.wantReadyz, serve(t, srv, "/-/readyz").Code)

			rec := serve(t, srv, "/-/status")
			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var status appstate.Status

			require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
			require.Equal(t, tc.wantLastError, status.LastError)
		})
	}
}

func TestServer_Status(t *testing.T) {
	t.Parallel()

	state := newRunningState(t)
	state.EnterStep(t.Context(), bootstrap.StepDone)
	state.FinishRun(t.Context(), &bootstrap.Report{
		Outcomes: []bootstrap.Outcome{
			{Kind: bootstrap.KindService, Namespace: "default", Name: "demo-service", Action: bootstrap.ActionCreated},
		},
		StartedAt: time.Now(),
	}, nil)

	srv := httpserver.New(discardLogger(), state, prometheus.NewRegistry(), "")

	rec := serve(t, srv, "/-/status")

	var body map[string]any

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "running", body["state"])
	require.Equal(t, "done", body["step"])
	require.InDelta(t, 1, body["runs"], 0)
	require.NotContains(t, body, "nextRunAt")

	outcomes := body["lastReport"].(map[string]any)["outcomes"].([]any)
	require.Equal(t, "demo-service", outcomes[0].(map[string]any)["name"])
}

func TestServer_Metrics(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	recorder := metrics.New(registry)
	recorder.RecordOutcome("Deployment", "created")

	srv := httpserver.New(discardLogger(), newRunningState(t), registry, "")

	rec := serve(t, srv, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(),
		`autoscale_bootstrap_resource_outcomes_total{action="created",kind="Deployment"} 1`)
}

func TestServer_StartShutdown(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(discardLogger(), newRunningState(t), prometheus.NewRegistry(), "0")
	require.Nil(t, srv.Addr())

	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	defer cancel()

	require.NoError(t, srv.Start(ctx))

	select {
	case <-srv.Ready():
	case <-time.After(time.Second):
		t.Fatal("server did not become ready")
	}

	addr := srv.Addr().String()
	port := addr[strings.LastIndex(addr, ":")+1:]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://127.0.0.1:"+port+"/-/healthz", http.NoBody)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	require.NoError(t, srv.Shutdown(shutdownCtx))
	require.NoError(t, srv.Shutdown(shutdownCtx))
}

func TestServer_StartPortInUse(t *testing.T) {
	t.Parallel()

	first := httpserver.New(discardLogger(), newRunningState(t), prometheus.NewRegistry(), "0")
	require.NoError(t, first.Start(t.Context()))

	t.Cleanup(func() { _ = first.Shutdown(context.Background()) })

	addr := first.Addr().String()
	port := addr[strings.LastIndex(addr, ":")+1:]

	second := httpserver.New(discardLogger(), newRunningState(t), prometheus.NewRegistry(), port)
	require.Error(t, second.Start(t.Context()))
}
