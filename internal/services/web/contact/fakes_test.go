package contact

import (
	"context"
	"sync"
	"time"
)

type fakeTimer struct {
	scheduler *fakeScheduler
	at        time.Duration
	fn        func()
	stopped   bool
	fired     bool
}

func (t *fakeTimer) Stop() bool {
	t.scheduler.mu.Lock()
	defer t.scheduler.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler runs scheduled calls when Advance moves its clock past them.
type fakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer := &fakeTimer{scheduler: s, at: s.now + d, fn: fn}
	s.timers = append(s.timers, timer)
	return timer
}

func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*fakeTimer
	for _, timer := range s.timers {
		if !timer.stopped && !timer.fired && timer.at <= s.now {
			timer.fired = true
			due = append(due, timer)
		}
	}
	s.mu.Unlock()
	for _, timer := range due {
		timer.fn()
	}
}

// FireAll runs every scheduled call, stopped or not, to simulate a timer
// that raced its cancellation.
func (s *fakeScheduler) FireAll() {
	s.mu.Lock()
	timers := append([]*fakeTimer(nil), s.timers...)
	s.mu.Unlock()
	for _, timer := range timers {
		timer.fn()
	}
}

func (s *fakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := 0
	for _, timer := range s.timers {
		if !timer.stopped && !timer.fired {
			pending++
		}
	}
	return pending
}

func (s *fakeScheduler) LastDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.timers) == 0 {
		return 0
	}
	return s.timers[len(s.timers)-1].at
}

type fakeSender struct {
	mu       sync.Mutex
	result   Result
	err      error
	messages []Message
}

func (s *fakeSender) Send(_ context.Context, msg Message) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return s.result, s.err
}

func (s *fakeSender) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// blockingSender parks each send until release is closed.
type blockingSender struct {
	started chan struct{}
	release chan struct{}
	result  Result
}

func newBlockingSender(result Result) *blockingSender {
	return &blockingSender{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
		result:  result,
	}
}

func (s *blockingSender) Send(ctx context.Context, _ Message) (Result, error) {
	s.started <- struct{}{}
	select {
	case <-s.release:
		return s.result, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

type fakeRecorder struct {
	mu       sync.Mutex
	outcomes []Outcome
	err      error
}

func (r *fakeRecorder) Record(_ context.Context, outcome Outcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
	return r.err
}

func (r *fakeRecorder) Outcomes() []Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Outcome(nil), r.outcomes...)
}

func validForm() Form {
	return Form{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Pricing",
		Message: "How much for ten seats?",
	}
}
