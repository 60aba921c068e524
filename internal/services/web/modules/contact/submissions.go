package contact

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/inflowhq/inflow/internal/services/web/platform/errors"
	"github.com/inflowhq/inflow/internal/services/web/platform/httpx"
	webstorage "github.com/inflowhq/inflow/internal/services/web/storage"
)

const (
	defaultSubmissionLimit = 50
	maxSubmissionLimit     = 500
)

type submissionView struct {
	ID           string    `json:"id"`
	FormID       string    `json:"form_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	FailureKind  string    `json:"failure_kind,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
}

func newSubmissionView(s webstorage.Submission) submissionView {
	return submissionView{
		ID:           s.ID,
		FormID:       s.FormID,
		Name:         s.Name,
		Email:        s.Email,
		Subject:      s.Subject,
		Message:      s.Message,
		Status:       s.Status,
		FailureKind:  s.FailureKind,
		ErrorMessage: s.ErrorMessage,
		StartedAt:    s.StartedAt,
		FinishedAt:   s.FinishedAt,
	}
}

// authorizeOperator gates the submission log. Without a token the routes
// do not exist.
func (h handlers) authorizeOperator(r *http.Request) error {
	if h.operatorToken == "" {
		return apperrors.E(apperrors.KindNotFound, "not found")
	}
	token, ok := bearerToken(r)
	if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(h.operatorToken)) != 1 {
		return apperrors.E(apperrors.KindUnauthorized, "operator token required")
	}
	if h.store == nil {
		return apperrors.E(apperrors.KindUnavailable, "submission log is disabled")
	}
	return nil
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func (h handlers) handleSubmissions(w http.ResponseWriter, r *http.Request) {
	if err := h.authorizeOperator(r); err != nil {
		httpx.WriteError(w, err)
		return
	}
	limit := defaultSubmissionLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = min(parsed, maxSubmissionLimit)
	}

	submissions, err := h.store.ListSubmissions(httpx.RequestContext(r), limit)
	if err != nil {
		h.Printf("list contact submissions: %v", err)
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "submission log unavailable"))
		return
	}
	views := make([]submissionView, 0, len(submissions))
	for _, submission := range submissions {
		views = append(views, newSubmissionView(submission))
	}
	if err := httpx.WriteJSON(w, http.StatusOK, map[string]any{"submissions": views}); err != nil {
		h.Printf("write contact submissions: %v", err)
	}
}

func (h handlers) handleSubmission(w http.ResponseWriter, r *http.Request) {
	if err := h.authorizeOperator(r); err != nil {
		httpx.WriteError(w, err)
		return
	}
	submission, ok, err := h.store.GetSubmission(httpx.RequestContext(r), r.PathValue("id"))
	if err != nil {
		h.Printf("get contact submission: %v", err)
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "submission log unavailable"))
		return
	}
	if !ok {
		httpx.WriteError(w, apperrors.E(apperrors.KindNotFound, "submission not found"))
		return
	}
	if err := httpx.WriteJSON(w, http.StatusOK, newSubmissionView(submission)); err != nil {
		h.Printf("write contact submission: %v", err)
	}
}
