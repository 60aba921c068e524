// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root         = "/"
	Features     = "/features"
	Pricing      = "/pricing"
	FAQs         = "/faqs"
	Contact      = "/contact"
	ContactCard  = "/contact/card"
	ContactField = "/contact/field"
	Login        = "/login"
	Signup       = "/signup"
	Logout       = "/auth/logout"
	Health       = "/up"
	StaticPrefix = "/static/"

	// ContactSubmissions is the operator view of the submission log.
	ContactSubmissions = "/contact/submissions"

	// AuthPrefix groups the session routes mounted by the auth module.
	AuthPrefix = "/auth/"

	MenuQueryKey  = "menu"
	MenuOpenValue = "open"
)

// WithMenuOpen returns path with the mobile menu toggled open.
//
// Navigation links never carry the flag, so following any link closes the
// menu again.
func WithMenuOpen(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = Root
	}
	return path + "?" + url.Values{MenuQueryKey: {MenuOpenValue}}.Encode()
}

// IsMenuOpen reports whether the request query asks for the open menu.
func IsMenuOpen(query url.Values) bool {
	return strings.EqualFold(strings.TrimSpace(query.Get(MenuQueryKey)), MenuOpenValue)
}
