package flash

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inflowhq/inflow/internal/services/web/platform/requestmeta"
)

func TestWriteAndReadAndClearRoundTrip(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	writeRR := httptest.NewRecorder()

	Write(writeRR, req, Info("notice.signed_out"), requestmeta.SchemePolicy{})
	cookie, err := http.ParseSetCookie(writeRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	req.AddCookie(cookie)

	readRR := httptest.NewRecorder()
	notice, ok := ReadAndClear(readRR, req, requestmeta.SchemePolicy{})
	if !ok {
		t.Fatalf("ReadAndClear() ok = false, want true")
	}
	if notice.Kind != KindInfo {
		t.Fatalf("notice.Kind = %q, want %q", notice.Kind, KindInfo)
	}
	if notice.Key != "notice.signed_out" {
		t.Fatalf("notice.Key = %q", notice.Key)
	}
	cleared, err := http.ParseSetCookie(readRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie(clear) error = %v", err)
	}
	if cleared.Name != CookieName || cleared.MaxAge >= 0 {
		t.Fatalf("clear cookie = %+v", cleared)
	}
}

func TestWriteDropsInvalidNotices(t *testing.T) {
	t.Parallel()

	for _, notice := range []Notice{{Kind: KindInfo}, {Kind: "shout", Key: "x"}} {
		rr := httptest.NewRecorder()
		Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), notice, requestmeta.SchemePolicy{})
		if got := rr.Header().Get("Set-Cookie"); got != "" {
			t.Fatalf("Write(%+v) set cookie %q", notice, got)
		}
	}
}

func TestReadAndClearRejectsTamperedValue(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: base64.RawURLEncoding.EncodeToString([]byte("{not json"))})
	rr := httptest.NewRecorder()
	if _, ok := ReadAndClear(rr, req, requestmeta.SchemePolicy{}); ok {
		t.Fatal("expected tampered cookie to be rejected")
	}
	if rr.Header().Get("Set-Cookie") == "" {
		t.Fatal("expected tampered cookie to be cleared")
	}
}

func TestReadAndClearWithoutCookie(t *testing.T) {
	t.Parallel()

	if _, ok := ReadAndClear(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), requestmeta.SchemePolicy{}); ok {
		t.Fatal("expected no notice without cookie")
	}
}
