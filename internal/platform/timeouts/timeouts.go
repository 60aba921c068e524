// Package timeouts defines shared timeout constants used across the site.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// ContactRequest caps one outbound call to the contact messaging function.
const ContactRequest = 15 * time.Second

// SignOut caps the call that revokes a session at the auth provider.
const SignOut = 5 * time.Second

// ContactReset is how long a sent contact form keeps its confirmation before
// it clears back to an empty form.
const ContactReset = 5000 * time.Millisecond
