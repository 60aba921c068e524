package contact

import (
	"context"
	"time"
)

// Outcome is the terminal result of one submission.
type Outcome struct {
	ID           string
	FormID       string
	Form         Form
	Status       Status
	Failure      FailureKind
	ErrorMessage string
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Recorder keeps an audit trail of submissions. Record errors are logged and
// never change the form state.
type Recorder interface {
	Record(ctx context.Context, outcome Outcome) error
}
