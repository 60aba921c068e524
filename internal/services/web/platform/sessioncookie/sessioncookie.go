// Package sessioncookie centralizes the site's first-party cookies.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/inflowhq/inflow/internal/services/web/platform/requestmeta"
)

// Jar describes one HttpOnly, SameSite=Lax cookie.
type Jar struct {
	Name   string
	MaxAge time.Duration
}

// Session carries the auth provider's access token for signed-in visitors.
var Session = Jar{Name: "inflow_session"}

// Visitor identifies the browser that owns a contact form instance.
var Visitor = Jar{Name: "inflow_visitor", MaxAge: 30 * 24 * time.Hour}

// Read returns the trimmed cookie value when present.
func (j Jar) Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(j.Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the cookie, marking it Secure when the request is HTTPS under policy.
func (j Jar) Write(w http.ResponseWriter, r *http.Request, value string, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	cookie := j.base(r, policy)
	cookie.Value = strings.TrimSpace(value)
	if j.MaxAge > 0 {
		cookie.MaxAge = int(j.MaxAge / time.Second)
	}
	http.SetCookie(w, cookie)
}

// Clear expires the cookie.
func (j Jar) Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	cookie := j.base(r, policy)
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

func (j Jar) base(r *http.Request, policy requestmeta.SchemePolicy) *http.Cookie {
	return &http.Cookie{
		Name:     j.Name,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
	}
}
