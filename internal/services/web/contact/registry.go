package contact

import (
	"errors"
	"strings"
	"sync"
	"time"
)

// DefaultIdleTTL is how long an untouched visitor form is kept.
const DefaultIdleTTL = 30 * time.Minute

// ErrFormIDRequired rejects lookups without a visitor id.
var ErrFormIDRequired = errors.New("contact form id is required")

// Factory builds the flow for a visitor id.
type Factory func(id string) *Flow

// Registry owns one Flow per visitor.
type Registry struct {
	factory Factory
	ttl     time.Duration
	now     func() time.Time

	mu     sync.Mutex
	flows  map[string]*Flow
	closed bool
	stop   chan struct{}
	done   chan struct{}
}

// NewRegistry returns an empty registry. A non-positive ttl uses
// DefaultIdleTTL.
func NewRegistry(factory Factory, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultIdleTTL
	}
	return &Registry{
		factory: factory,
		ttl:     ttl,
		now:     time.Now,
		flows:   make(map[string]*Flow),
	}
}

// Lookup returns the live flow for id, if any.
func (r *Registry) Lookup(id string) (*Flow, bool) {
	id = strings.TrimSpace(id)
	r.mu.Lock()
	defer r.mu.Unlock()
	flow, ok := r.flows[id]
	if !ok || flow.Closed() {
		return nil, false
	}
	return flow, true
}

// Acquire returns the flow for id, creating it on first use.
func (r *Registry) Acquire(id string) (*Flow, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrFormIDRequired
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrClosed
	}
	if flow, ok := r.flows[id]; ok && !flow.Closed() {
		return flow, nil
	}
	var flow *Flow
	if r.factory != nil {
		flow = r.factory(id)
	}
	if flow == nil {
		flow = NewFlow(nil, WithID(id))
	}
	r.flows[id] = flow
	return flow, nil
}

// Len returns the number of tracked flows.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.flows)
}

// Sweep closes and drops flows idle longer than the ttl. Flows with a send
// in flight are kept.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, flow := range r.flows {
		if flow.Snapshot().Status == StatusSubmitting {
			continue
		}
		if flow.Closed() || flow.LastSeen().Before(cutoff) {
			flow.Close()
			delete(r.flows, id)
			evicted++
		}
	}
	return evicted
}

// StartJanitor sweeps every interval until Close.
func (r *Registry) StartJanitor(interval time.Duration) {
	if interval <= 0 {
		interval = r.ttl
	}
	r.mu.Lock()
	if r.closed || r.stop != nil {
		r.mu.Unlock()
		return
	}
	r.stop = make(chan struct{})
	r.done = make(chan struct{})
	stop, done := r.stop, r.done
	r.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				r.Sweep()
			}
		}
	}()
}

// Close stops the janitor and closes every flow.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	for id, flow := range r.flows {
		flow.Close()
		delete(r.flows, id)
	}
	stop, done := r.stop, r.done
	r.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}
