// Package contact serves the contact page and drives each visitor's contact
// form through its submission lifecycle.
package contact

import (
	"net/http"
	"time"

	contactflow "github.com/inflowhq/inflow/internal/services/web/contact"
	module "github.com/inflowhq/inflow/internal/services/web/module"
	"github.com/inflowhq/inflow/internal/services/web/platform/publichandler"
	"github.com/inflowhq/inflow/internal/services/web/routepath"
	webstorage "github.com/inflowhq/inflow/internal/services/web/storage"
)

// Option configures a contact module.
type Option func(*Module)

// WithBase sets the handler base used for rendering.
func WithBase(b publichandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// WithRegistry sets the per-visitor form registry.
func WithRegistry(r *contactflow.Registry) Option {
	return func(m *Module) { m.registry = r }
}

// WithResetDelay sets how long the sent confirmation card waits before it
// refreshes.
func WithResetDelay(d time.Duration) Option {
	return func(m *Module) { m.resetDelay = d }
}

// WithConfigured reports whether the messaging endpoint has a base URL.
func WithConfigured(configured bool) Option {
	return func(m *Module) { m.configured = configured }
}

// WithSubmissions sets the submission log read by the operator routes.
func WithSubmissions(store webstorage.SubmissionStore) Option {
	return func(m *Module) { m.store = store }
}

// WithOperatorToken enables the operator submission routes behind a bearer
// token. Without a token they answer not found.
func WithOperatorToken(token string) Option {
	return func(m *Module) { m.operatorToken = token }
}

// Module provides the contact routes.
type Module struct {
	base          publichandler.Base
	registry      *contactflow.Registry
	resetDelay    time.Duration
	configured    bool
	store         webstorage.SubmissionStore
	operatorToken string
}

// New returns a contact module configured by the given options. Without a
// registry every visitor's submissions fail as unconfigured.
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
func (Module) ID() string { return "contact" }

// Healthy reports whether the messaging endpoint is configured.
func (m Module) Healthy() bool {
	return m.configured && m.registry != nil
}

// Mount wires contact route handlers.
func (m Module) Mount() (module.Mount, error) {
	registry := m.registry
	if registry == nil {
		registry = contactflow.NewRegistry(nil, 0)
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m, registry))
	return module.Mount{
		Prefix:  routepath.Contact + "/",
		Paths:   []string{routepath.Contact},
		Handler: mux,
	}, nil
}
