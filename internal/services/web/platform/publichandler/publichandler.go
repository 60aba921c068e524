// Package publichandler provides a shared base for web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across modules.
package publichandler

import (
	"log"
	"net/http"

	module "github.com/inflowhq/inflow/internal/services/web/module"
	"github.com/inflowhq/inflow/internal/services/web/platform/pagerender"
	"github.com/inflowhq/inflow/internal/services/web/platform/requestmeta"
	"github.com/inflowhq/inflow/internal/services/web/platform/weberror"
)

// Base provides shared error handling and page rendering. Embed this in
// handler structs to get WritePage, WriteNotFound and WriteError.
type Base struct {
	resolveSignedIn module.ResolveSignedIn
	policy          requestmeta.SchemePolicy
	logger          *log.Logger
}

// Option configures a Base.
type Option func(*Base)

// WithResolveSignedIn attaches the signed-in resolver used for header actions.
func WithResolveSignedIn(resolver module.ResolveSignedIn) Option {
	return func(b *Base) { b.resolveSignedIn = resolver }
}

// WithSchemePolicy sets the request scheme policy for cookie handling.
func WithSchemePolicy(p requestmeta.SchemePolicy) Option {
	return func(b *Base) { b.policy = p }
}

// WithLogger sets the logger for render failures.
func WithLogger(l *log.Logger) Option {
	return func(b *Base) { b.logger = l }
}

// NewBase builds a handler base with the given options.
func NewBase(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		if o != nil {
			o(&b)
		}
	}
	return b
}

// Renderer returns the page renderer for this base.
func (b Base) Renderer() pagerender.Renderer {
	return pagerender.NewRenderer(b.resolveSignedIn, b.policy)
}

// SchemePolicy returns the request scheme policy.
func (b Base) SchemePolicy() requestmeta.SchemePolicy {
	return b.policy
}

// IsViewerSignedIn reports whether the current request is authenticated.
func (b Base) IsViewerSignedIn(r *http.Request) bool {
	if b.resolveSignedIn != nil {
		return b.resolveSignedIn(r)
	}
	return false
}

// WritePage renders a page, falling back to the error page on render failure.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := b.Renderer().WritePage(w, r, page); err != nil {
		b.Printf("render page: %v", err)
		weberror.WriteAppError(w, r, http.StatusInternalServerError, b.Renderer())
	}
}

// WriteNotFound renders a localized 404 error page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.Renderer())
}

// WriteError renders a user-safe error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.Renderer())
}

// Printf logs through the configured logger.
func (b Base) Printf(format string, args ...any) {
	if b.logger == nil {
		log.Printf(format, args...)
		return
	}
	b.logger.Printf(format, args...)
}
