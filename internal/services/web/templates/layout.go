package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/inflowhq/inflow/internal/services/web/navigation"
	"github.com/inflowhq/inflow/internal/services/web/routepath"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// Layout renders the full document around the child component.
func Layout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		lang := page.Lang
		if lang == "" {
			lang = "en-US"
		}
		h.raw("<!DOCTYPE html><html")
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(PageTitle(page.Loc, page.Title))
		h.raw("</title>")
		description := page.Description
		if description == "" {
			description = T(page.Loc, "meta.description")
		}
		h.raw(`<meta name="description"`)
		h.attr("content", description)
		h.raw(">")
		h.raw(`<link rel="stylesheet" href="` + routepath.StaticPrefix + `site.css">`)
		h.raw(`<script src="` + htmxScriptURL + `" defer></script>`)
		h.raw("</head><body>")
		h.component(ctx, Header(page))
		if page.Notice != nil && page.Notice.Message != "" {
			h.raw(`<div role="status"`)
			h.attr("class", "notice notice-"+page.Notice.Kind)
			h.raw(">")
			h.text(page.Notice.Message)
			h.raw("</div>")
		}
		h.raw(`<main id="main">`)
		h.component(ctx, templ.GetChildren(ctx))
		h.raw("</main>")
		h.component(ctx, footer(page))
		h.raw("</body></html>")
		return h.err
	})
}

// Header renders the navigation bar, auth actions and mobile menu.
func Header(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<header class="site-header"><nav class="nav-island">`)
		h.raw(`<a class="brand"`)
		h.attr("href", routepath.Root)
		h.raw(">")
		h.text(T(page.Loc, "brand.name"))
		h.raw("</a>")

		h.raw(`<ul class="nav-links">`)
		navLinks(h, page)
		h.raw("</ul>")

		h.raw(`<div class="nav-actions">`)
		authActions(h, page)
		h.raw("</div>")

		menuKey := "nav.menu_open"
		if page.Nav.MenuOpen {
			menuKey = "nav.menu_close"
		}
		h.raw(`<a class="menu-toggle"`)
		h.attr("href", page.Nav.MenuTogglePath())
		h.attr("aria-label", T(page.Loc, menuKey))
		h.attr("aria-expanded", boolString(page.Nav.MenuOpen))
		h.attr("aria-controls", "mobile-menu")
		h.raw(">")
		if page.Nav.MenuOpen {
			h.raw("&times;")
		} else {
			h.raw("&#9776;")
		}
		h.raw("</a></nav>")

		if page.Nav.MenuOpen {
			h.raw(`<div id="mobile-menu" class="mobile-menu"><ul>`)
			navLinks(h, page)
			h.raw(`</ul><div class="mobile-actions">`)
			authActions(h, page)
			h.raw("</div></div>")
		}
		h.raw("</header>")
		return h.err
	})
}

func navLinks(h *htmlWriter, page PageContext) {
	for _, entry := range page.Nav.Entries() {
		h.raw("<li><a")
		h.attr("href", entry.Path)
		h.attr("class", classes("nav-link", "active", entry.Active))
		if entry.Active {
			h.attr("aria-current", "page")
		}
		h.raw(">")
		h.text(T(page.Loc, entry.LabelKey))
		h.raw("</a></li>")
	}
}

func authActions(h *htmlWriter, page PageContext) {
	for _, action := range page.Actions {
		class := classes("btn btn-outline", "btn-primary", action.Primary)
		if action.Post {
			h.raw(`<form method="post"`)
			h.attr("action", action.Path)
			h.raw(`><button type="submit"`)
			h.attr("class", class)
			h.attr("data-action", string(action.Kind))
			h.raw(">")
			h.text(T(page.Loc, action.LabelKey))
			h.raw("</button></form>")
			continue
		}
		h.raw("<a")
		h.attr("href", action.Path)
		h.attr("class", class)
		h.attr("data-action", string(action.Kind))
		h.raw(">")
		h.text(T(page.Loc, action.LabelKey))
		h.raw("</a>")
	}
}

func footer(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<footer class="site-footer"><nav class="footer-links">`)
		for _, target := range navigation.Pages {
			h.raw("<a")
			h.attr("href", navigation.Path(target))
			h.raw(">")
			h.text(T(page.Loc, navigation.LabelKey(target)))
			h.raw("</a>")
		}
		h.raw(`</nav><ul class="language-switcher">`)
		for _, link := range page.Languages {
			h.raw("<li><a")
			h.attr("href", link.Href)
			h.attr("hreflang", link.Tag)
			if link.Active {
				h.attr("aria-current", "true")
			}
			h.raw(">")
			h.text(link.Label)
			h.raw("</a></li>")
		}
		h.raw("</ul></footer>")
		return h.err
	})
}

func boolString(on bool) string {
	if on {
		return "true"
	}
	return "false"
}
