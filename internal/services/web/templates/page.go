package templates

import (
	"github.com/inflowhq/inflow/internal/services/web/navigation"
)

// Notice is a one-time banner shown above the page body.
type Notice struct {
	Kind    string
	Message string
}

// LanguageLink is one entry of the footer language switcher.
type LanguageLink struct {
	Tag    string
	Label  string
	Href   string
	Active bool
}

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	Title       string
	Description string
	CurrentPath string
	Nav         navigation.State
	Actions     []navigation.Action
	Notice      *Notice
	Languages   []LanguageLink
}

// PageTitle formats a page title with the brand suffix.
func PageTitle(loc Localizer, title string) string {
	if title == "" {
		return T(loc, "brand.name")
	}
	return T(loc, "title.page", title)
}
