// Package navigation models the site header: which page is current, whether
// the mobile menu is open, and what the auth call-to-action does.
package navigation

import (
	"context"
	"log"
	"strings"

	"github.com/inflowhq/inflow/internal/services/web/routepath"
)

// Page identifies one of the marketing pages reachable from the header.
type Page string

const (
	PageHome     Page = "home"
	PageFeatures Page = "features"
	PagePricing  Page = "pricing"
	PageFAQs     Page = "faqs"
	PageContact  Page = "contact"
)

// Pages lists every page in header order.
var Pages = []Page{PageHome, PageFeatures, PagePricing, PageFAQs, PageContact}

var pagePaths = map[Page]string{
	PageHome:     routepath.Root,
	PageFeatures: routepath.Features,
	PagePricing:  routepath.Pricing,
	PageFAQs:     routepath.FAQs,
	PageContact:  routepath.Contact,
}

var pageLabelKeys = map[Page]string{
	PageHome:     "nav.home",
	PageFeatures: "nav.features",
	PagePricing:  "nav.pricing",
	PageFAQs:     "nav.faqs",
	PageContact:  "nav.contact",
}

// PageForPath maps a request path onto its page.
func PageForPath(path string) (Page, bool) {
	path = strings.TrimSpace(path)
	if path != routepath.Root {
		path = strings.TrimSuffix(path, "/")
	}
	for _, page := range Pages {
		if pagePaths[page] == path {
			return page, true
		}
	}
	return "", false
}

// Path returns the canonical route for page, or the root for unknown pages.
func Path(page Page) string {
	if path, ok := pagePaths[page]; ok {
		return path
	}
	return routepath.Root
}

// LabelKey returns the localization key for page's header label.
func LabelKey(page Page) string {
	return pageLabelKeys[page]
}

// Entry is one header link.
type Entry struct {
	Page     Page
	Path     string
	LabelKey string
	Active   bool
}

// State is the header state for one render.
type State struct {
	Current  Page
	MenuOpen bool
}

// NewState returns the header state for current with the menu closed.
// Unknown pages fall back to home.
func NewState(current Page) State {
	if _, ok := pagePaths[current]; !ok {
		current = PageHome
	}
	return State{Current: current}
}

// Navigate moves to page and closes the menu.
func (s *State) Navigate(page Page) {
	if _, ok := pagePaths[page]; !ok {
		page = PageHome
	}
	s.Current = page
	s.MenuOpen = false
}

// ToggleMenu flips the mobile menu.
func (s *State) ToggleMenu() {
	s.MenuOpen = !s.MenuOpen
}

// Entries returns the header links in display order.
func (s State) Entries() []Entry {
	entries := make([]Entry, 0, len(Pages))
	for _, page := range Pages {
		entries = append(entries, Entry{
			Page:     page,
			Path:     pagePaths[page],
			LabelKey: pageLabelKeys[page],
			Active:   page == s.Current,
		})
	}
	return entries
}

// MenuTogglePath returns the link that flips the mobile menu on the current
// page.
func (s State) MenuTogglePath() string {
	path := Path(s.Current)
	if s.MenuOpen {
		return path
	}
	return routepath.WithMenuOpen(path)
}

// ActionKind identifies an auth call-to-action.
type ActionKind string

const (
	ActionLogin   ActionKind = "login"
	ActionSignUp  ActionKind = "signup"
	ActionSignOut ActionKind = "signout"
)

// Action is one auth button in the header.
type Action struct {
	Kind     ActionKind
	LabelKey string
	Path     string
	// Post marks actions that must be submitted as a form.
	Post    bool
	Primary bool
}

// AuthActions returns the header auth buttons for the session state.
func AuthActions(authenticated bool) []Action {
	if authenticated {
		return []Action{{
			Kind:     ActionSignOut,
			LabelKey: "nav.signout",
			Path:     routepath.Logout,
			Post:     true,
			Primary:  true,
		}}
	}
	return []Action{
		{Kind: ActionLogin, LabelKey: "nav.login", Path: routepath.Login},
		{Kind: ActionSignUp, LabelKey: "nav.signup", Path: routepath.Signup, Primary: true},
	}
}

// Session is the externally owned auth session.
type Session interface {
	IsAuthenticated(ctx context.Context) bool
	SignOut(ctx context.Context) error
}

// Redirect is a navigation performed outside the header, by the browser.
type Redirect struct {
	Location string
	// Replace drops the current page from history.
	Replace bool
	// Forced marks the fail-open redirect after a sign-out error.
	Forced bool
}

// ForceHomeRedirect replaces the current page with home after sign-out fails.
var ForceHomeRedirect = Redirect{Location: routepath.Root, Replace: true, Forced: true}

// Shell runs header actions against the session collaborator.
type Shell struct {
	logger *log.Logger
}

// NewShell builds a shell. A nil logger uses the standard logger.
func NewShell(logger *log.Logger) Shell {
	return Shell{logger: logger}
}

// AuthAction runs the single auth call-to-action. Signed-in visitors are
// signed out and sent home, even when sign-out fails. Everyone else goes to
// the login route.
func (s Shell) AuthAction(ctx context.Context, session Session) Redirect {
	if session == nil || !session.IsAuthenticated(ctx) {
		return Redirect{Location: routepath.Login}
	}
	if err := session.SignOut(ctx); err != nil {
		s.printf("sign out failed: %v", err)
		return ForceHomeRedirect
	}
	return Redirect{Location: routepath.Root}
}

func (s Shell) printf(format string, args ...any) {
	if s.logger == nil {
		log.Printf(format, args...)
		return
	}
	s.logger.Printf(format, args...)
}
