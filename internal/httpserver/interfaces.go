package httpserver

import "github.com/skillcoder/autoscale-bootstrap/internal/infra/appstate"

// appstater is an internal interface for reading the application state
type appstater interface {
	IsHealthy() bool
	IsReady() bool
	Snapshot() appstate.Status
}
