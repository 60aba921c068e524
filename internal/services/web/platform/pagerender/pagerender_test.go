package pagerender

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"

	flashnotice "github.com/inflowhq/inflow/internal/services/web/platform/flash"
	"github.com/inflowhq/inflow/internal/services/web/platform/requestmeta"
	webtemplates "github.com/inflowhq/inflow/internal/services/web/templates"
)

func textComponent(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, value)
		return err
	})
}

func textPage(value string) func(webtemplates.PageContext) templ.Component {
	return func(webtemplates.PageContext) templ.Component { return textComponent(value) }
}

func TestWritePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := NewRenderer(nil, requestmeta.SchemePolicy{}).WritePage(rr, req, Page{
		TitleKey:   "nav.contact",
		StatusCode: http.StatusCreated,
		Body:       textPage(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) {
		t.Fatalf("body missing fragment marker: %q", body)
	}
	if strings.Contains(strings.ToLower(body), "<!doctype html") {
		t.Fatalf("expected htmx fragment without full document wrapper")
	}
}

func TestWritePageRendersFullPageWithChrome(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/features?menu=open", nil)
	rr := httptest.NewRecorder()

	signedIn := func(*http.Request) bool { return true }
	err := NewRenderer(signedIn, requestmeta.SchemePolicy{}).WritePage(rr, req, Page{
		TitleKey: "nav.features",
		Body:     textPage(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{"<!DOCTYPE html>", "<title>Features | Inflow</title>", `id="fragment-root"`, `id="mobile-menu"`, "Sign Out", `href="/features?lang=pt-BR"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("Content-Type = %q", ct)
	}
}

func TestPageContextConsumesFlashNotice(t *testing.T) {
	t.Parallel()

	payload, err := json.Marshal(flashnotice.Info("notice.signed_out"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashnotice.CookieName, Value: base64.RawURLEncoding.EncodeToString(payload)})
	rr := httptest.NewRecorder()

	page := NewRenderer(nil, requestmeta.SchemePolicy{}).PageContext(rr, req)
	if page.Notice == nil || page.Notice.Message != "You have been signed out." {
		t.Fatalf("Notice = %+v, want signed-out notice", page.Notice)
	}
	if !strings.Contains(rr.Header().Get("Set-Cookie"), flashnotice.CookieName+"=;") {
		t.Fatalf("Set-Cookie = %q, want flash cleared", rr.Header().Get("Set-Cookie"))
	}
	if len(page.Actions) != 2 {
		t.Fatalf("Actions = %+v, want signed-out actions", page.Actions)
	}
}

func TestWriteFragment(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/contact/card", nil)
	if err := NewRenderer(nil, requestmeta.SchemePolicy{}).WriteFragment(rr, req, 0, textComponent("<div>card</div>")); err != nil {
		t.Fatalf("WriteFragment() error = %v", err)
	}
	if rr.Code != http.StatusOK || rr.Body.String() != "<div>card</div>" {
		t.Fatalf("WriteFragment() = %d %q", rr.Code, rr.Body.String())
	}
}
