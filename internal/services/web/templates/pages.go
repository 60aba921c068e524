package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/inflowhq/inflow/internal/services/web/routepath"
)

// HomePage renders the landing hero.
func HomePage(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="hero"><h1>`)
		h.text(T(loc, "home.heading"))
		h.raw("</h1><p>")
		h.text(T(loc, "home.body"))
		h.raw(`</p><a class="btn btn-primary"`)
		h.attr("href", routepath.Signup)
		h.raw(">")
		h.text(T(loc, "home.cta"))
		h.raw("</a></section>")
		return h.err
	})
}

// MarketingPage renders a static copy page from a heading and body key.
func MarketingPage(loc Localizer, headingKey, bodyKey string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="page"><h1>`)
		h.text(T(loc, headingKey))
		h.raw("</h1><p>")
		h.text(T(loc, bodyKey))
		h.raw("</p></section>")
		return h.err
	})
}

// ErrorPageTitle returns the localized title for an error status.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if statusCode == http.StatusNotFound {
		return T(loc, "error.not_found.title")
	}
	return T(loc, "error.server.title")
}

// ErrorState renders the error body for a status.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		bodyKey := "error.server.body"
		if statusCode == http.StatusNotFound {
			bodyKey = "error.not_found.body"
		}
		h := &htmlWriter{w: w}
		h.raw(`<section id="error-state" class="page error-state"><h1>`)
		h.text(ErrorPageTitle(statusCode, loc))
		h.raw("</h1><p>")
		h.text(T(loc, bodyKey))
		h.raw(`</p><a class="btn btn-outline"`)
		h.attr("href", routepath.Root)
		h.raw(">")
		h.text(T(loc, "nav.home"))
		h.raw("</a></section>")
		return h.err
	})
}
