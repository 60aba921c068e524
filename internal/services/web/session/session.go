package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/inflowhq/inflow/internal/platform/timeouts"
	"github.com/inflowhq/inflow/internal/services/web/platform/sessioncookie"
)

// LogoutPath is the auth provider's session revocation route.
const LogoutPath = "/auth/v1/logout"

// Config locates the auth provider.
type Config struct {
	BaseURL   string
	AnonKey   string
	JWTSecret string
}

// Provider resolves request sessions.
type Provider struct {
	config   Config
	verifier Verifier
	client   *http.Client
}

// NewProvider builds a provider. A nil http client gets a traced transport
// with the sign-out timeout.
func NewProvider(config Config, client *http.Client) *Provider {
	if client == nil {
		client = &http.Client{
			Timeout:   timeouts.SignOut,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Provider{
		config:   config,
		verifier: NewVerifier(config.JWTSecret, nil),
		client:   client,
	}
}

// Resolve returns the session carried by r. It never fails; a missing or
// invalid token yields a signed-out session.
func (p *Provider) Resolve(r *http.Request) *Session {
	s := &Session{provider: p}
	token, ok := sessioncookie.Session.Read(r)
	if !ok || p == nil {
		return s
	}
	user, err := p.verifier.Verify(token)
	if err != nil {
		return s
	}
	s.token = token
	s.user = &user
	return s
}

// Session is one request's view of the auth session.
type Session struct {
	provider *Provider
	token    string
	user     *User
}

// User returns the signed-in user, or nil with ErrNoSession.
func (s *Session) User(context.Context) (*User, error) {
	if s == nil || s.user == nil {
		return nil, ErrNoSession
	}
	user := *s.user
	return &user, nil
}

// IsAuthenticated reports whether a verified user is present.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	user, err := s.User(ctx)
	return err == nil && user != nil
}

// SignOut revokes the session at the auth provider.
func (s *Session) SignOut(ctx context.Context) error {
	if s == nil || s.user == nil {
		return ErrNoSession
	}
	p := s.provider
	if p == nil || strings.TrimSpace(p.config.BaseURL) == "" {
		return errors.New("auth provider URL not configured")
	}
	endpoint := strings.TrimRight(strings.TrimSpace(p.config.BaseURL), "/") + LogoutPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build sign out request: %w", err)
	}
	req.Header.Set("apikey", p.config.AnonKey)
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("sign out request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("sign out returned %s", resp.Status)
	}
	s.user = nil
	s.token = ""
	return nil
}
