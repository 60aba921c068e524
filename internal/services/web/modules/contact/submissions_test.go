package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	webstorage "github.com/inflowhq/inflow/internal/services/web/storage"
)

const operatorToken = "ops-token"

func operatorRequest(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func seededStore(t *testing.T) *memoryStore {
	t.Helper()
	store := &memoryStore{}
	finished := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, sub := range []webstorage.Submission{
		{ID: "sub-1", FormID: visitor, Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello", Status: "submitted", FinishedAt: finished},
		{ID: "sub-2", FormID: visitor, Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Again", Status: "failed", FailureKind: "application", ErrorMessage: "Mailbox full", FinishedAt: finished},
	} {
		if err := store.PutSubmission(context.Background(), sub); err != nil {
			t.Fatalf("PutSubmission() error = %v", err)
		}
	}
	return store
}

func TestSubmissionRoutesAccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		module Module
		token  string
		want   int
	}{
		{name: "no operator token configured", module: New(WithSubmissions(&memoryStore{})), token: operatorToken, want: http.StatusNotFound},
		{name: "missing bearer", module: New(WithSubmissions(&memoryStore{}), WithOperatorToken(operatorToken)), want: http.StatusUnauthorized},
		{name: "wrong bearer", module: New(WithSubmissions(&memoryStore{}), WithOperatorToken(operatorToken)), token: "nope", want: http.StatusUnauthorized},
		{name: "no submission log", module: New(WithOperatorToken(operatorToken)), token: operatorToken, want: http.StatusServiceUnavailable},
		{name: "authorized", module: New(WithSubmissions(&memoryStore{}), WithOperatorToken(operatorToken)), token: operatorToken, want: http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			mountHandler(t, tc.module).ServeHTTP(rr, operatorRequest("/contact/submissions", tc.token))
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
		})
	}
}

func TestListSubmissions(t *testing.T) {
	t.Parallel()

	m := New(WithSubmissions(seededStore(t)), WithOperatorToken(operatorToken))
	rr := httptest.NewRecorder()
	mountHandler(t, m).ServeHTTP(rr, operatorRequest("/contact/submissions?limit=10", operatorToken))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var payload struct {
		Submissions []submissionView `json:"submissions"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(payload.Submissions) != 2 {
		t.Fatalf("submissions = %d, want 2", len(payload.Submissions))
	}
	if got := payload.Submissions[1]; got.ID != "sub-2" || got.ErrorMessage != "Mailbox full" {
		t.Fatalf("submission[1] = %+v", got)
	}
}

func TestListSubmissionsRejectsBadLimit(t *testing.T) {
	t.Parallel()

	m := New(WithSubmissions(seededStore(t)), WithOperatorToken(operatorToken))
	rr := httptest.NewRecorder()
	mountHandler(t, m).ServeHTTP(rr, operatorRequest("/contact/submissions?limit=-1", operatorToken))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestGetSubmission(t *testing.T) {
	t.Parallel()

	m := New(WithSubmissions(seededStore(t)), WithOperatorToken(operatorToken))
	handler := mountHandler(t, m)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, operatorRequest("/contact/submissions/sub-1", operatorToken))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var got submissionView
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.ID != "sub-1" || got.Status != "submitted" || got.Message != "Hello" {
		t.Fatalf("submission = %+v", got)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, operatorRequest("/contact/submissions/missing", operatorToken))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
