// Package contact runs the contact form submission lifecycle: field input,
// required-field gating, one outbound send at a time, and the timed reset
// after a successful send.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/inflowhq/inflow/internal/platform/timeouts"
)

const tracerName = "github.com/inflowhq/inflow/internal/services/web/contact"

// Status is the submission lifecycle state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSubmitted  Status = "submitted"
	StatusFailed     Status = "failed"
)

var (
	// ErrSubmissionInFlight rejects a submit while another is pending.
	ErrSubmissionInFlight = errors.New("contact submission already in flight")
	// ErrAwaitingReset rejects a submit while the sent confirmation is shown.
	ErrAwaitingReset = errors.New("contact form already sent")
	// ErrClosed rejects calls on a torn-down flow.
	ErrClosed = errors.New("contact flow closed")
)

// Snapshot is a consistent copy of the flow state.
type Snapshot struct {
	ID           string
	Form         Form
	Status       Status
	ErrorMessage string
	Failure      FailureKind
}

// CanSubmit reports whether the submit control is enabled.
func (s Snapshot) CanSubmit() bool {
	return s.Status == StatusIdle || s.Status == StatusFailed
}

// Option configures a Flow.
type Option func(*Flow)

// WithScheduler sets the scheduler used for the post-send reset.
func WithScheduler(s Scheduler) Option {
	return func(f *Flow) {
		if s != nil {
			f.scheduler = s
		}
	}
}

// WithResetDelay overrides how long the sent confirmation stays up.
func WithResetDelay(d time.Duration) Option {
	return func(f *Flow) {
		if d > 0 {
			f.resetDelay = d
		}
	}
}

// WithRecorder records every terminal outcome.
func WithRecorder(r Recorder) Option {
	return func(f *Flow) { f.recorder = r }
}

// WithLogger sets the logger for recovered failures.
func WithLogger(l *log.Logger) Option {
	return func(f *Flow) { f.logger = l }
}

// WithID sets the flow id. Flows get a random id otherwise.
func WithID(id string) Option {
	return func(f *Flow) {
		if id = strings.TrimSpace(id); id != "" {
			f.id = id
		}
	}
}

// WithClock overrides the wall clock used for outcome timestamps.
func WithClock(now func() time.Time) Option {
	return func(f *Flow) {
		if now != nil {
			f.now = now
		}
	}
}

// Flow is one contact form instance.
type Flow struct {
	id         string
	sender     Sender
	scheduler  Scheduler
	resetDelay time.Duration
	recorder   Recorder
	logger     *log.Logger
	tracer     trace.Tracer
	now        func() time.Time

	mu       sync.Mutex
	form     Form
	status   Status
	errMsg   string
	failure  FailureKind
	reset    Timer
	epoch    uint64
	closed   bool
	lastSeen time.Time
}

// NewFlow returns an idle, empty form instance that sends through sender.
// A nil sender fails every submission as unconfigured.
func NewFlow(sender Sender, opts ...Option) *Flow {
	f := &Flow{
		id:         uuid.NewString(),
		sender:     sender,
		scheduler:  SystemScheduler{},
		resetDelay: timeouts.ContactReset,
		tracer:     otel.Tracer(tracerName),
		now:        time.Now,
		status:     StatusIdle,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	f.lastSeen = f.now()
	return f
}

// ID returns the flow id.
func (f *Flow) ID() string {
	return f.id
}

// Snapshot returns the current state.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// SetField updates one input, as a keystroke would.
func (f *Flow) SetField(field Field, value string) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return f.snapshotLocked(), ErrClosed
	}
	form, err := f.form.With(field, value)
	if err != nil {
		return f.snapshotLocked(), err
	}
	f.form = form
	f.touchLocked()
	return f.snapshotLocked(), nil
}

// Submit sends form as one contact message.
//
// The flow enters StatusSubmitting before the send starts and always leaves
// it once the send resolves. A missing field leaves the state untouched and
// returns a ValidationError. A submit while one is in flight is a no-op that
// returns ErrSubmissionInFlight.
func (f *Flow) Submit(ctx context.Context, form Form) (Snapshot, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	f.mu.Lock()
	if f.closed {
		defer f.mu.Unlock()
		return f.snapshotLocked(), ErrClosed
	}
	switch f.status {
	case StatusSubmitting:
		defer f.mu.Unlock()
		return f.snapshotLocked(), ErrSubmissionInFlight
	case StatusSubmitted:
		defer f.mu.Unlock()
		return f.snapshotLocked(), ErrAwaitingReset
	}
	f.form = form
	f.touchLocked()
	if err := form.Validate(); err != nil {
		defer f.mu.Unlock()
		return f.snapshotLocked(), err
	}
	f.status = StatusSubmitting
	f.errMsg = ""
	f.failure = FailureNone
	f.epoch++
	epoch := f.epoch
	startedAt := f.now()
	f.mu.Unlock()

	ctx, span := f.tracer.Start(ctx, "contact.submit", trace.WithAttributes(
		attribute.String("contact.form_id", f.id),
	))
	defer span.End()

	result, sendErr := f.send(ctx, MessageFromForm(form))
	outcome := f.finish(epoch, form, result, sendErr)
	outcome.StartedAt = startedAt

	span.SetAttributes(attribute.String("contact.status", string(outcome.Status)))
	if outcome.Status == StatusFailed {
		span.SetAttributes(attribute.String("contact.failure", string(outcome.Failure)))
		span.SetStatus(codes.Error, outcome.ErrorMessage)
	}
	f.record(ctx, outcome)
	return f.Snapshot(), nil
}

func (f *Flow) send(ctx context.Context, msg Message) (result Result, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("contact sender panic: %v", recovered)
		}
	}()
	if f.sender == nil {
		return Result{}, ErrConfigurationMissing
	}
	return f.sender.Send(ctx, msg)
}

// finish applies the send result for the submitted form. A flow closed
// mid-send schedules no reset.
func (f *Flow) finish(epoch uint64, form Form, result Result, sendErr error) Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()

	outcome := Outcome{
		ID:         uuid.NewString(),
		FormID:     f.id,
		Form:       form,
		FinishedAt: f.now(),
	}
	switch {
	case sendErr != nil:
		outcome.Status = StatusFailed
		outcome.Failure = FailureTransport
		outcome.ErrorMessage = FallbackTransportMessage
		if errors.Is(sendErr, ErrConfigurationMissing) {
			outcome.Failure = FailureConfigurationMissing
			outcome.ErrorMessage = ErrConfigurationMissing.Error()
		}
		f.printf("send contact message: %v", sendErr)
	case !result.Success:
		outcome.Status = StatusFailed
		outcome.Failure = FailureApplication
		outcome.ErrorMessage = strings.TrimSpace(result.Error)
		if outcome.ErrorMessage == "" {
			outcome.ErrorMessage = FallbackApplicationMessage
		}
		f.printf("send contact message: endpoint rejected: %s", outcome.ErrorMessage)
	default:
		outcome.Status = StatusSubmitted
	}

	if epoch != f.epoch {
		return outcome
	}
	f.status = outcome.Status
	f.failure = outcome.Failure
	f.errMsg = outcome.ErrorMessage
	f.touchLocked()
	if outcome.Status == StatusSubmitted && !f.closed {
		f.scheduleResetLocked(epoch)
	}
	return outcome
}

func (f *Flow) scheduleResetLocked(epoch uint64) {
	if f.reset != nil {
		f.reset.Stop()
	}
	f.reset = f.scheduler.AfterFunc(f.resetDelay, func() {
		f.fireReset(epoch)
	})
}

// fireReset clears the sent form. Stale or post-close timers do nothing.
func (f *Flow) fireReset(epoch uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || epoch != f.epoch || f.status != StatusSubmitted {
		return
	}
	f.form = Form{}
	f.status = StatusIdle
	f.errMsg = ""
	f.failure = FailureNone
	f.reset = nil
}

// resetPending reports whether a post-send reset is scheduled.
func (f *Flow) resetPending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reset != nil && f.status == StatusSubmitted
}

// LastSeen returns when the visitor last touched the form.
func (f *Flow) LastSeen() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastSeen
}

// Close tears the flow down and cancels any pending reset. Later calls and
// late timer callbacks leave the state alone.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	if f.reset != nil {
		f.reset.Stop()
		f.reset = nil
	}
}

// Closed reports whether Close was called.
func (f *Flow) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *Flow) record(ctx context.Context, outcome Outcome) {
	if f.recorder == nil {
		return
	}
	// Recorded even when the visitor disconnected mid-send.
	ctx = context.WithoutCancel(ctx)
	if err := f.recorder.Record(ctx, outcome); err != nil {
		f.printf("record contact outcome: %v", err)
	}
}

func (f *Flow) touchLocked() {
	f.lastSeen = f.now()
}

func (f *Flow) snapshotLocked() Snapshot {
	return Snapshot{
		ID:           f.id,
		Form:         f.form,
		Status:       f.status,
		ErrorMessage: f.errMsg,
		Failure:      f.failure,
	}
}

func (f *Flow) printf(format string, args ...any) {
	if f.logger == nil {
		log.Printf(format, args...)
		return
	}
	f.logger.Printf(format, args...)
}
