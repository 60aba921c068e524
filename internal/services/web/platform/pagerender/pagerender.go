// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	module "github.com/inflowhq/inflow/internal/services/web/module"
	"github.com/inflowhq/inflow/internal/services/web/navigation"
	flashnotice "github.com/inflowhq/inflow/internal/services/web/platform/flash"
	"github.com/inflowhq/inflow/internal/services/web/platform/httpx"
	webi18n "github.com/inflowhq/inflow/internal/services/web/platform/i18n"
	"github.com/inflowhq/inflow/internal/services/web/platform/requestmeta"
	"github.com/inflowhq/inflow/internal/services/web/routepath"
	webtemplates "github.com/inflowhq/inflow/internal/services/web/templates"
)

// Page describes a page response for both full-page and HTMX flows.
type Page struct {
	// TitleKey is the catalog key of the page title.
	TitleKey   string
	StatusCode int
	// Body builds the page body from the resolved page context.
	Body func(webtemplates.PageContext) templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// Renderer resolves shared chrome (language, navigation, auth actions,
// flash notices) and writes pages.
type Renderer struct {
	signedIn module.ResolveSignedIn
	policy   requestmeta.SchemePolicy
}

// NewRenderer builds a renderer. A nil signedIn resolver treats every
// visitor as signed out.
func NewRenderer(signedIn module.ResolveSignedIn, policy requestmeta.SchemePolicy) Renderer {
	return Renderer{signedIn: signedIn, policy: policy}
}

// SchemePolicy returns the request scheme policy used for cookies.
func (r Renderer) SchemePolicy() requestmeta.SchemePolicy {
	return r.policy
}

// IsSignedIn reports whether the request carries a signed-in session.
func (r Renderer) IsSignedIn(req *http.Request) bool {
	if r.signedIn == nil || req == nil {
		return false
	}
	return r.signedIn(req)
}

// PageContext resolves the layout context for req. It consumes any pending
// flash notice.
func (r Renderer) PageContext(w http.ResponseWriter, req *http.Request) webtemplates.PageContext {
	loc, lang := webi18n.ResolveLocalizer(w, req)
	path := routepath.Root
	if req != nil && req.URL != nil {
		path = req.URL.Path
	}
	current, _ := navigation.PageForPath(path)
	state := navigation.NewState(current)
	if req != nil && req.URL != nil && routepath.IsMenuOpen(req.URL.Query()) {
		state.ToggleMenu()
	}
	page := webtemplates.PageContext{
		Lang:        lang,
		Loc:         loc,
		CurrentPath: path,
		Nav:         state,
		Actions:     navigation.AuthActions(r.IsSignedIn(req)),
		Notice:      r.readNotice(w, req, loc),
	}
	for _, tag := range webi18n.Supported() {
		page.Languages = append(page.Languages, webtemplates.LanguageLink{
			Tag:    tag.String(),
			Label:  webi18n.T(loc, webi18n.LabelKey(tag)),
			Href:   webi18n.LanguageURL(path, tag),
			Active: tag.String() == lang,
		})
	}
	return page
}

// WritePage writes page as a full document, or as a bare fragment for HTMX
// requests.
func (r Renderer) WritePage(w http.ResponseWriter, req *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	chrome := r.PageContext(w, req)
	if page.TitleKey != "" {
		chrome.Title = webi18n.T(chrome.Loc, page.TitleKey)
	}
	var body templ.Component = emptyComponent{}
	if page.Body != nil {
		if built := page.Body(chrome); built != nil {
			body = built
		}
	}

	ctx := httpx.RequestContext(req)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(req) {
		if err := body.Render(ctx, &buf); err != nil {
			return err
		}
	} else {
		if err := webtemplates.Layout(chrome).Render(templ.WithChildren(ctx, body), &buf); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WriteFragment writes a component without the layout.
func (r Renderer) WriteFragment(w http.ResponseWriter, req *http.Request, statusCode int, fragment templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if fragment == nil {
		fragment = emptyComponent{}
	}
	var buf bytes.Buffer
	if err := fragment.Render(httpx.RequestContext(req), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func (r Renderer) readNotice(w http.ResponseWriter, req *http.Request, loc webi18n.Localizer) *webtemplates.Notice {
	if req == nil {
		return nil
	}
	notice, ok := flashnotice.ReadAndClear(w, req, r.policy)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(webi18n.T(loc, notice.Key))
	if message == "" {
		return nil
	}
	return &webtemplates.Notice{Kind: string(notice.Kind), Message: message}
}
