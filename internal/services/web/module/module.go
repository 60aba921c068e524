// Package module defines the feature contract used by web composition.
package module

import "net/http"

// ResolveSignedIn reports whether the request is associated with a signed-in visitor.
type ResolveSignedIn func(*http.Request) bool

// Mount describes a module route mount.
type Mount struct {
	// Prefix is the subtree the module owns. It must end with "/".
	Prefix string
	// Paths are exact routes owned outside the prefix subtree.
	Paths   []string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability. Modules with upstream dependencies implement this
// so the health endpoint can report them without centralizing client knowledge.
type HealthReporter interface {
	Healthy() bool
}
