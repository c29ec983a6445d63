package app

import (
	"errors"

	"github.com/skillcoder/autoscale-bootstrap/internal/logic/bootstrap"
)

// Process exit codes by failure kind.
const (
	ExitOK               = 0
	ExitFailure          = 1
	ExitConnectionFailed = 2
	ExitCommandFailed    = 3
	ExitTimeout          = 4
	ExitAPIError         = 5
	ExitInvalidInput     = 6
)

// ExitCode maps an error returned by Run to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, bootstrap.ErrInvalidInput):
		return ExitInvalidInput
	case errors.Is(err, bootstrap.ErrConnectionFailed):
		return ExitConnectionFailed
	case errors.Is(err, bootstrap.ErrTimeout):
		return ExitTimeout
	case errors.Is(err, bootstrap.ErrCommandFailed):
		return ExitCommandFailed
	case errors.Is(err, bootstrap.ErrAPI):
		return ExitAPIError
	default:
		return ExitFailure
	}
}
