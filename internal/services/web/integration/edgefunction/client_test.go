package edgefunction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inflowhq/inflow/internal/services/web/contact"
)

func TestSendPostsMessage(t *testing.T) {
	t.Parallel()

	var got contact.Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != SendContactEmailPath {
			t.Errorf("path = %s, want %s", r.URL.Path, SendContactEmailPath)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer anon-key" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/", AnonKey: "anon-key"}, srv.Client())
	msg := contact.Message{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}
	result, err := client.Send(context.Background(), msg)
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if !result.Success {
		t.Fatalf("Send() = %+v, want success", result)
	}
	if got != msg {
		t.Fatalf("posted body = %+v, want %+v", got, msg)
	}
}

func TestSendDecodesFailureBodies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   contact.Result
	}{
		{name: "error message", status: http.StatusOK, body: `{"success":false,"error":"X"}`, want: contact.Result{Error: "X"}},
		{name: "no error message", status: http.StatusOK, body: `{"success":false}`, want: contact.Result{}},
		{name: "non-2xx json", status: http.StatusBadRequest, body: `{"success":false,"error":"Missing fields"}`, want: contact.Result{Error: "Missing fields"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			result, err := NewClient(Config{BaseURL: srv.URL}, srv.Client()).Send(context.Background(), contact.Message{})
			if err != nil {
				t.Fatalf("Send() error = %v", err)
			}
			if result != tc.want {
				t.Fatalf("Send() = %+v, want %+v", result, tc.want)
			}
		})
	}
}

func TestSendNonJSONIsTransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(Config{BaseURL: srv.URL}, srv.Client()).Send(context.Background(), contact.Message{})
	if err == nil || !strings.Contains(err.Error(), "decode contact response") {
		t.Fatalf("Send() error = %v, want decode error", err)
	}
}

func TestSendWithoutBaseURLFailsWithoutCalling(t *testing.T) {
	t.Parallel()

	var client *Client
	if _, err := client.Send(context.Background(), contact.Message{}); !errors.Is(err, contact.ErrConfigurationMissing) {
		t.Fatalf("nil client Send() error = %v", err)
	}
	_, err := NewClient(Config{BaseURL: "  ", AnonKey: "k"}, nil).Send(context.Background(), contact.Message{})
	if !errors.Is(err, contact.ErrConfigurationMissing) {
		t.Fatalf("Send() error = %v, want %v", err, contact.ErrConfigurationMissing)
	}
}

func TestSendUnreachableHostIsTransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := NewClient(Config{BaseURL: base}, nil).Send(context.Background(), contact.Message{})
	if err == nil || !strings.Contains(err.Error(), "contact request") {
		t.Fatalf("Send() error = %v, want transport error", err)
	}
}

func TestConfigEndpoint(t *testing.T) {
	t.Parallel()

	cfg := Config{BaseURL: " https://abc.functions.example.co/ "}
	if got := cfg.Endpoint(); got != "https://abc.functions.example.co/functions/v1/send-contact-email" {
		t.Fatalf("Endpoint() = %q", got)
	}
	if (Config{}).Configured() {
		t.Fatal("expected empty config to be unconfigured")
	}
}

func TestClientSatisfiesSender(t *testing.T) {
	t.Parallel()

	var _ contact.Sender = NewClient(Config{}, nil)
}
