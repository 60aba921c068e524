package contact

import (
	"context"
	"errors"
)

const (
	// FallbackApplicationMessage is shown when the endpoint reports failure
	// without saying why.
	FallbackApplicationMessage = "Failed to send message"
	// FallbackTransportMessage is shown when the request fails. The
	// underlying error is only logged.
	FallbackTransportMessage = "Failed to send message. Please try again."
)

// ErrConfigurationMissing reports that the messaging endpoint has no base URL.
var ErrConfigurationMissing = errors.New("contact messaging endpoint URL not configured")

// Message is the payload delivered to the messaging endpoint.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// MessageFromForm copies the form fields into a payload.
func MessageFromForm(form Form) Message {
	return Message{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
	}
}

// Result is the messaging endpoint's verdict.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Sender delivers one contact message.
//
// A returned error is a transport failure. A Result with Success false is an
// application failure reported by the endpoint.
type Sender interface {
	Send(ctx context.Context, msg Message) (Result, error)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) (Result, error)

// Send calls fn.
func (fn SenderFunc) Send(ctx context.Context, msg Message) (Result, error) {
	return fn(ctx, msg)
}

// FailureKind classifies why a submission failed.
type FailureKind string

const (
	FailureNone                 FailureKind = ""
	FailureConfigurationMissing FailureKind = "configuration_missing"
	FailureTransport            FailureKind = "transport"
	FailureApplication          FailureKind = "application"
)
