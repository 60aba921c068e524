// Package auth serves the header's call-to-action routes: the external login
// and sign-up hand-offs and sign-out.
package auth

import (
	"log"
	"net/http"
	"strings"

	module "github.com/inflowhq/inflow/internal/services/web/module"
	"github.com/inflowhq/inflow/internal/services/web/navigation"
	"github.com/inflowhq/inflow/internal/services/web/platform/publichandler"
	"github.com/inflowhq/inflow/internal/services/web/routepath"
)

// SessionResolver returns the auth session carried by a request.
type SessionResolver func(*http.Request) navigation.Session

// Option configures an auth module.
type Option func(*Module)

// WithBase sets the handler base used for rendering.
func WithBase(b publichandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// WithSessionResolver sets how requests map to auth sessions.
func WithSessionResolver(resolve SessionResolver) Option {
	return func(m *Module) { m.resolveSession = resolve }
}

// WithLoginURL sets the external login page.
func WithLoginURL(url string) Option {
	return func(m *Module) { m.loginURL = strings.TrimSpace(url) }
}

// WithSignupURL sets the external sign-up page.
func WithSignupURL(url string) Option {
	return func(m *Module) { m.signupURL = strings.TrimSpace(url) }
}

// WithLogger sets the logger for sign-out failures.
func WithLogger(l *log.Logger) Option {
	return func(m *Module) { m.logger = l }
}

// Module provides auth routes.
type Module struct {
	base           publichandler.Base
	resolveSession SessionResolver
	loginURL       string
	signupURL      string
	logger         *log.Logger
}

// New returns an auth module configured by the given options.
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
func (Module) ID() string { return "auth" }

// Mount wires auth route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{
		Base:           m.base,
		shell:          navigation.NewShell(m.logger),
		resolveSession: m.resolveSession,
		loginURL:       m.loginURL,
		signupURL:      m.signupURL,
	})
	return module.Mount{
		Prefix:  routepath.AuthPrefix,
		Paths:   []string{routepath.Login, routepath.Signup},
		Handler: mux,
	}, nil
}
