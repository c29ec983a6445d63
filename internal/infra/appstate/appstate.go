package appstate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/skillcoder/autoscale-bootstrap/internal/infra/shutdown"
	"github.com/skillcoder/autoscale-bootstrap/internal/logic/bootstrap"
)

// State represents the application state
type State string

const (
	// StateInit is the initial state when the application is created
	StateInit State = "init"

	// StateStarting is the state while the cluster connection is established
	StateStarting State = "starting"

	// StateRunning is the state once bootstrap runs can be executed
	StateRunning State = "running"

	// StateTerminating is the state when the application is shutting down
	StateTerminating State = "terminating"

	// StateTerminated is the final state when the application has terminated
	StateTerminated State = "terminated"
)

const defaultShutdownersCount = 4

// Status is a point-in-time copy of the application and bootstrap progress.
type Status struct {
	State     State     `json:"state"`
	StartTime time.Time `json:"startTime"`
	Uptime    string    `json:"uptime"`
	UptimeSec float64   `json:"uptimeSeconds"`

	// Step is the bootstrap step in progress, or the last one entered.
	Step       bootstrap.Step    `json:"step,omitempty"`
	Runs       int               `json:"runs"`
	Failures   int               `json:"failures"`
	LastReport *bootstrap.Report `json:"lastReport,omitempty"`
	LastError  string            `json:"lastError,omitempty"`
	NextRunAt  time.Time         `json:"nextRunAt,omitzero"`
}

// AppState manages the application state with thread-safe operations
type AppState struct {
	mu          sync.RWMutex
	logger      *slog.Logger
	startedAt   time.Time
	readyAt     *time.Time
	state       State
	quit        <-chan os.Signal
	shutdowners []shutdown.Shutdowner

	step       bootstrap.Step
	runs       int
	failures   int
	lastReport *bootstrap.Report
	lastErr    error
	nextRunAt  time.Time
}

var _ bootstrap.Observer = (*AppState)(nil)

// New creates a new AppState with the given start time
func New(
	logger *slog.Logger,
	appStart time.Time,
	quit <-chan os.Signal,
) *AppState {
	return &AppState{
		logger:      logger.With("component", "appstate"),
		startedAt:   appStart,
		state:       StateInit,
		quit:        quit,
		shutdowners: make([]shutdown.Shutdowner, 0, defaultShutdownersCount),
	}
}

// RegisterShutdowner adds a component stopped by Shutdown, in reverse order.
func (s *AppState) RegisterShutdowner(shutdowner shutdown.Shutdowner) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shutdowners = append(s.shutdowners, shutdowner)
}

// SetStarting transitions the state from Init to Starting
func (s *AppState) SetStarting(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInit {
		return fmt.Errorf("set starting: %w", ErrInvalidStateTransition)
	}

	return s.setState(StateStarting)
}

// SetRunning transitions the state from Starting to Running
func (s *AppState) SetRunning(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateStarting {
		return fmt.Errorf("set running: %w", ErrInvalidStateTransition)
	}

	now := time.Now()
	s.readyAt = &now

	return s.setState(StateRunning)
}

// SetTerminating transitions the state to Terminating
func (s *AppState) SetTerminating(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateTerminated {
		return fmt.Errorf("set terminating: %w", ErrAlreadyTerminated)
	}

	return s.setState(StateTerminating)
}

func (s *AppState) setState(newState State) error {
	if s.state == StateTerminated {
		return fmt.Errorf("set state: %w", ErrAlreadyTerminated)
	}

	s.logger.Debug("state transition", "from", s.state, "to", newState)

	s.state = newState

	return nil
}

// EnterStep records the bootstrap step in progress.
func (s *AppState) EnterStep(_ context.Context, step bootstrap.Step) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.step = step
}

// FinishRun records the outcome of one bootstrap run. report may be nil when
// the run failed before provisioning started.
func (s *AppState) FinishRun(_ context.Context, report *bootstrap.Report, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs++
	s.lastErr = err

	if err != nil {
		s.failures++
	}

	if report != nil {
		copied := *report
		copied.Outcomes = slices.Clone(report.Outcomes)
		s.lastReport = &copied
	}
}

// SetNextRun records when the next scheduled run starts.
func (s *AppState) SetNextRun(next time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRunAt = next
}

// GetState returns the current application state
func (s *AppState) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// IsHealthy returns true while the process is starting or running.
func (s *AppState) IsHealthy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state == StateStarting || s.state == StateRunning
}

// IsReady returns true once running and the last bootstrap run succeeded.
func (s *AppState) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state == StateRunning && s.readyAt != nil && s.runs > 0 && s.lastErr == nil
}

// Snapshot returns a copy of the current status.
func (s *AppState) Snapshot() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uptime := time.Since(s.startedAt)

	status := Status{
		State:      s.state,
		StartTime:  s.startedAt,
		Uptime:     uptime.String(),
		UptimeSec:  uptime.Seconds(),
		Step:       s.step,
		Runs:       s.runs,
		Failures:   s.failures,
		LastReport: s.lastReport,
		NextRunAt:  s.nextRunAt,
	}

	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}

	return status
}

// Quit returns the channel that will receive the signal when shutdown is requested
func (s *AppState) Quit() <-chan os.Signal {
	return s.quit
}

// Shutdown stops the registered components and transitions to the terminated state
func (s *AppState) Shutdown(ctx context.Context) error {
	if err := s.SetTerminating(ctx); err != nil {
		return fmt.Errorf("set terminating application state: %w", err)
	}

	s.mu.RLock()
	shutdowners := slices.Clone(s.shutdowners)
	s.mu.RUnlock()

	err := shutdown.GracefulShutdown(ctx, s.logger, shutdowners)

	s.mu.Lock()
	s.state = StateTerminated
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
