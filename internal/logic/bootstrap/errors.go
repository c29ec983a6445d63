package bootstrap

import "errors"

var (
	// ErrCommandFailed is returned when an external command exits non-zero.
	ErrCommandFailed = errors.New("command failed")
	// ErrConnectionFailed is returned when cluster credentials or the API server are unusable.
	ErrConnectionFailed = errors.New("connection failed")
	// ErrAPI is returned when a control-plane call fails for a reason other than "not found".
	ErrAPI = errors.New("api error")
	// ErrTimeout is returned when pods do not reach the running phase in time.
	ErrTimeout = errors.New("timeout waiting for pods")
	// ErrInvalidInput is returned when a resource cannot be built from the given parameters.
	ErrInvalidInput = errors.New("invalid input")

	ErrEnsureNamespace    = errors.New("ensure namespace")
	ErrEnsureAutoscaler   = errors.New("ensure autoscaler")
	ErrCreateNamespace    = errors.New("create namespace")
	ErrCreateDeployment   = errors.New("create deployment")
	ErrCreateService      = errors.New("create service")
	ErrCreateScaledObject = errors.New("create scaled object")
)
