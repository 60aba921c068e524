package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inflowhq/inflow/internal/services/web/platform/requestmeta"
)

func TestRead(t *testing.T) {
	t.Parallel()

	if _, ok := Session.Read(nil); ok {
		t.Fatalf("expected nil request to have no session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	if _, ok := Session.Read(req); ok {
		t.Fatalf("expected missing cookie")
	}

	req.AddCookie(&http.Cookie{Name: Session.Name, Value: "  token-1  "})
	value, ok := Session.Read(req)
	if !ok {
		t.Fatalf("expected cookie to be present")
	}
	if value != "token-1" {
		t.Fatalf("value = %q, want %q", value, "token-1")
	}
	if _, ok := Visitor.Read(req); ok {
		t.Fatalf("visitor jar read the session cookie")
	}
}

func TestWriteSecureFollowsScheme(t *testing.T) {
	t.Parallel()

	secureRR := httptest.NewRecorder()
	Session.Write(secureRR, httptest.NewRequest(http.MethodGet, "https://inflow.example.test", nil), "token-1", requestmeta.SchemePolicy{})
	secureCookie, err := http.ParseSetCookie(secureRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if secureCookie.Name != Session.Name || secureCookie.Value != "token-1" {
		t.Fatalf("cookie = %s=%s", secureCookie.Name, secureCookie.Value)
	}
	if !secureCookie.Secure || !secureCookie.HttpOnly {
		t.Fatalf("expected secure httponly cookie for https request")
	}
	if secureCookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("SameSite = %v, want Lax", secureCookie.SameSite)
	}

	httpRR := httptest.NewRecorder()
	Session.Write(httpRR, httptest.NewRequest(http.MethodGet, "http://inflow.example.test", nil), "token-1", requestmeta.SchemePolicy{})
	httpCookie, err := http.ParseSetCookie(httpRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if httpCookie.Secure {
		t.Fatalf("expected non-secure cookie for http request")
	}

	policyReq := httptest.NewRequest(http.MethodGet, "http://inflow.example.test", nil)
	policyReq.Header.Set("X-Forwarded-Proto", "https")
	policyRR := httptest.NewRecorder()
	Session.Write(policyRR, policyReq, "token-1", requestmeta.SchemePolicy{TrustForwardedProto: true})
	policyCookie, err := http.ParseSetCookie(policyRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if !policyCookie.Secure {
		t.Fatalf("expected secure cookie when forwarded proto is trusted")
	}
}

func TestVisitorCookieCarriesMaxAge(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Visitor.Write(rr, httptest.NewRequest(http.MethodGet, "/contact", nil), "visitor-1", requestmeta.SchemePolicy{})
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.MaxAge != 30*24*60*60 {
		t.Fatalf("MaxAge = %d, want %d", cookie.MaxAge, 30*24*60*60)
	}
}

func TestClearExpiresCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Session.Clear(rr, httptest.NewRequest(http.MethodPost, "/logout", nil), requestmeta.SchemePolicy{})
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Name != Session.Name {
		t.Fatalf("cookie name = %q, want %q", cookie.Name, Session.Name)
	}
	if cookie.MaxAge >= 0 {
		t.Fatalf("MaxAge = %d, want negative", cookie.MaxAge)
	}
	if cookie.Value != "" {
		t.Fatalf("value = %q, want empty", cookie.Value)
	}

	Session.Clear(nil, nil, requestmeta.SchemePolicy{})
}
