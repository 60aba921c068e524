// Package public serves the static marketing pages and the health endpoint.
package public

import (
	"net/http"

	module "github.com/inflowhq/inflow/internal/services/web/module"
	"github.com/inflowhq/inflow/internal/services/web/platform/publichandler"
	"github.com/inflowhq/inflow/internal/services/web/routepath"
)

// Option configures a public module.
type Option func(*Module)

// WithBase sets the handler base used for rendering.
func WithBase(b publichandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// WithHealthReporters sets the modules whose availability /up reports.
func WithHealthReporters(reporters map[string]module.HealthReporter) Option {
	return func(m *Module) { m.health = reporters }
}

// Module provides the root marketing routes.
type Module struct {
	base   publichandler.Base
	health map[string]module.HealthReporter
}

// New returns a public module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires marketing page handlers at the root.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.base, m.health))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
