package contact

import (
	"context"

	contactflow "github.com/inflowhq/inflow/internal/services/web/contact"
	webstorage "github.com/inflowhq/inflow/internal/services/web/storage"
)

// storeRecorder writes flow outcomes to the submission log.
type storeRecorder struct {
	store webstorage.SubmissionStore
}

// NewRecorder adapts a submission store to the flow recorder hook. A nil
// store yields a nil recorder.
func NewRecorder(store webstorage.SubmissionStore) contactflow.Recorder {
	if store == nil {
		return nil
	}
	return storeRecorder{store: store}
}

func (r storeRecorder) Record(ctx context.Context, outcome contactflow.Outcome) error {
	return r.store.PutSubmission(ctx, webstorage.Submission{
		ID:           outcome.ID,
		FormID:       outcome.FormID,
		Name:         outcome.Form.Name,
		Email:        outcome.Form.Email,
		Subject:      outcome.Form.Subject,
		Message:      outcome.Form.Message,
		Status:       string(outcome.Status),
		FailureKind:  string(outcome.Failure),
		ErrorMessage: outcome.ErrorMessage,
		StartedAt:    outcome.StartedAt,
		FinishedAt:   outcome.FinishedAt,
	})
}
