package storage

import (
	"context"
	"time"
)

// Submission is one finished contact form send.
type Submission struct {
	ID           string
	FormID       string
	Name         string
	Email        string
	Subject      string
	Message      string
	Status       string
	FailureKind  string
	ErrorMessage string
	StartedAt    time.Time
	FinishedAt   time.Time
}

// SubmissionStore persists the submission log.
type SubmissionStore interface {
	Close() error
	PutSubmission(ctx context.Context, submission Submission) error
	GetSubmission(ctx context.Context, id string) (Submission, bool, error)
	ListSubmissions(ctx context.Context, limit int) ([]Submission, error)
}
