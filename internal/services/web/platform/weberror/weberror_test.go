package weberror

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apperrors "github.com/inflowhq/inflow/internal/services/web/platform/errors"
	"github.com/inflowhq/inflow/internal/services/web/platform/pagerender"
	"github.com/inflowhq/inflow/internal/services/web/platform/requestmeta"
)

func testRenderer() pagerender.Renderer {
	return pagerender.NewRenderer(nil, requestmeta.SchemePolicy{})
}

func TestWriteModuleErrorRendersErrorPageForNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindNotFound, "missing"), testRenderer())
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="error-state"`) || !strings.Contains(body, "Page not found") {
		t.Fatalf("body missing error state: %q", body)
	}
}

func TestWriteModuleErrorWritesPlainTextForBadRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindInvalidInput, "bad form"), testRenderer())
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, http.StatusText(http.StatusBadRequest)) {
		t.Fatalf("body = %q, want generic bad-request message", body)
	}
	if strings.Contains(body, "bad form") {
		t.Fatalf("body leaked internal message: %q", body)
	}
}

func TestWriteAppErrorCoercesStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusTeapot, testRenderer())
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestPublicMessageUsesLocalizationKey(t *testing.T) {
	t.Parallel()

	loc := message.NewPrinter(language.MustParse("en-US"))
	err := apperrors.EK(apperrors.KindInvalidInput, "contact.error.required", "name missing")
	if got := PublicMessage(loc, err); got != "Please fill in every field." {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(loc, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q", got)
	}
}
