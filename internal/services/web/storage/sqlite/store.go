package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	sqlitemigrate "github.com/inflowhq/inflow/internal/platform/storage/sqlitemigrate"
	webstorage "github.com/inflowhq/inflow/internal/services/web/storage"
	"github.com/inflowhq/inflow/internal/services/web/storage/sqlite/migrations"
)

const defaultListLimit = 50

// Store provides SQLite-backed persistence for the submission log.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a web SQLite store, creating its directory.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutSubmission appends one submission. Re-putting an id overwrites it.
func (s *Store) PutSubmission(ctx context.Context, submission webstorage.Submission) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	submission.ID = strings.TrimSpace(submission.ID)
	if submission.ID == "" {
		return fmt.Errorf("submission id is required")
	}
	submission.Status = strings.TrimSpace(submission.Status)
	if submission.Status == "" {
		return fmt.Errorf("submission status is required")
	}
	if submission.FinishedAt.IsZero() {
		submission.FinishedAt = time.Now().UTC()
	}
	if submission.StartedAt.IsZero() {
		submission.StartedAt = submission.FinishedAt
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO contact_submissions (
		    id, form_id, name, email, subject, message, status, failure_kind, error_message, started_at, finished_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		    form_id = excluded.form_id,
		    name = excluded.name,
		    email = excluded.email,
		    subject = excluded.subject,
		    message = excluded.message,
		    status = excluded.status,
		    failure_kind = excluded.failure_kind,
		    error_message = excluded.error_message,
		    started_at = excluded.started_at,
		    finished_at = excluded.finished_at`,
		submission.ID,
		submission.FormID,
		submission.Name,
		submission.Email,
		submission.Subject,
		submission.Message,
		submission.Status,
		submission.FailureKind,
		submission.ErrorMessage,
		timeToUnixMillis(submission.StartedAt),
		timeToUnixMillis(submission.FinishedAt),
	)
	if err != nil {
		return fmt.Errorf("put submission: %w", err)
	}
	return nil
}

// GetSubmission loads one submission by id.
func (s *Store) GetSubmission(ctx context.Context, id string) (webstorage.Submission, bool, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.Submission{}, false, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return webstorage.Submission{}, false, fmt.Errorf("submission id is required")
	}
	row := s.sqlDB.QueryRowContext(ctx, selectSubmission+` WHERE id = ?`, id)
	submission, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.Submission{}, false, nil
		}
		return webstorage.Submission{}, false, fmt.Errorf("get submission: %w", err)
	}
	return submission, true, nil
}

// ListSubmissions returns the newest submissions first.
func (s *Store) ListSubmissions(ctx context.Context, limit int) ([]webstorage.Submission, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := s.sqlDB.QueryContext(ctx, selectSubmission+` ORDER BY finished_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []webstorage.Submission
	for rows.Next() {
		submission, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		submissions = append(submissions, submission)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return submissions, nil
}

const selectSubmission = `SELECT id, form_id, name, email, subject, message, status, failure_kind, error_message, started_at, finished_at
	FROM contact_submissions`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (webstorage.Submission, error) {
	var submission webstorage.Submission
	var startedAt, finishedAt int64
	if err := row.Scan(
		&submission.ID,
		&submission.FormID,
		&submission.Name,
		&submission.Email,
		&submission.Subject,
		&submission.Message,
		&submission.Status,
		&submission.FailureKind,
		&submission.ErrorMessage,
		&startedAt,
		&finishedAt,
	); err != nil {
		return webstorage.Submission{}, err
	}
	submission.StartedAt = unixMillisToTime(startedAt)
	submission.FinishedAt = unixMillisToTime(finishedAt)
	return submission, nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ webstorage.SubmissionStore = (*Store)(nil)
