// Package edgefunction calls the hosted contact-email function.
package edgefunction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/inflowhq/inflow/internal/platform/timeouts"
	"github.com/inflowhq/inflow/internal/services/web/contact"
)

// SendContactEmailPath is the function route under the base URL.
const SendContactEmailPath = "/functions/v1/send-contact-email"

const maxResponseBytes = 64 << 10

// Config locates the function host.
type Config struct {
	BaseURL string
	AnonKey string
}

// Configured reports whether a base URL is set.
func (c Config) Configured() bool {
	return strings.TrimSpace(c.BaseURL) != ""
}

// Endpoint returns the send-contact-email URL.
func (c Config) Endpoint() string {
	return strings.TrimRight(strings.TrimSpace(c.BaseURL), "/") + SendContactEmailPath
}

// Client posts contact messages to the function.
type Client struct {
	config Config
	client *http.Client
}

// NewClient builds a client. A nil http client gets a traced transport with
// the contact request timeout.
func NewClient(config Config, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{
			Timeout:   timeouts.ContactRequest,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Client{config: config, client: client}
}

// Send posts msg and decodes the function's verdict. A missing base URL
// returns contact.ErrConfigurationMissing without any network call.
//
// Any JSON body is decoded regardless of status code, so a non-2xx reply
// carrying {"success": false, "error": "..."} is an application failure.
func (c *Client) Send(ctx context.Context, msg contact.Message) (contact.Result, error) {
	if c == nil || !c.config.Configured() {
		return contact.Result{}, contact.ErrConfigurationMissing
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return contact.Result{}, fmt.Errorf("encode contact message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return contact.Result{}, fmt.Errorf("build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.AnonKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return contact.Result{}, fmt.Errorf("contact request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return contact.Result{}, fmt.Errorf("read contact response: %w", err)
	}
	var result contact.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return contact.Result{}, fmt.Errorf("decode contact response (%s): %w", resp.Status, err)
	}
	return result, nil
}
