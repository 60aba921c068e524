package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/inflowhq/inflow/internal/platform/timeouts"
	"github.com/inflowhq/inflow/internal/services/web/app"
	"github.com/inflowhq/inflow/internal/services/web/contact"
	"github.com/inflowhq/inflow/internal/services/web/integration/edgefunction"
	"github.com/inflowhq/inflow/internal/services/web/modules"
	"github.com/inflowhq/inflow/internal/services/web/modules/auth"
	contactmodule "github.com/inflowhq/inflow/internal/services/web/modules/contact"
	"github.com/inflowhq/inflow/internal/services/web/navigation"
	"github.com/inflowhq/inflow/internal/services/web/platform/httpx"
	"github.com/inflowhq/inflow/internal/services/web/platform/observability"
	"github.com/inflowhq/inflow/internal/services/web/platform/publichandler"
	"github.com/inflowhq/inflow/internal/services/web/platform/requestmeta"
	"github.com/inflowhq/inflow/internal/services/web/routepath"
	"github.com/inflowhq/inflow/internal/services/web/session"
	"github.com/inflowhq/inflow/internal/services/web/static"
	webstorage "github.com/inflowhq/inflow/internal/services/web/storage"
	"github.com/inflowhq/inflow/internal/services/web/storage/sqlite"
)

const janitorInterval = time.Minute

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// FunctionsBaseURL is the backend project URL hosting both the contact
	// function and the auth provider.
	FunctionsBaseURL string
	AnonKey          string
	JWTSecret        string
	LoginURL         string
	SignupURL        string
	// DBPath locates the submission log. Empty disables it.
	DBPath              string
	TrustForwardedProto bool
	// OperatorToken enables the read-only submission log routes.
	OperatorToken string
	// ContactResetDelay overrides how long a sent form stays sent.
	ContactResetDelay time.Duration
}

// Dependencies carries collaborators NewHandler would otherwise build from
// Config.
type Dependencies struct {
	Sender   contact.Sender
	Store    webstorage.SubmissionStore
	Registry *contact.Registry
	Sessions *session.Provider
	Logger   *log.Logger
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	registry   *contact.Registry
	store      webstorage.SubmissionStore
}

// NewHandler assembles the site handler.
//
// Nil dependencies are built from config. Callers that need to close the
// contact registry pass their own.
func NewHandler(config Config, deps Dependencies) (http.Handler, error) {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto}
	endpoint := edgefunction.Config{BaseURL: config.FunctionsBaseURL, AnonKey: config.AnonKey}

	sessions := deps.Sessions
	if sessions == nil {
		sessions = session.NewProvider(session.Config{
			BaseURL:   config.FunctionsBaseURL,
			AnonKey:   config.AnonKey,
			JWTSecret: config.JWTSecret,
		}, nil)
	}
	registry := deps.Registry
	if registry == nil {
		registry = NewRegistry(config, deps.Sender, deps.Store, logger)
	}

	base := publichandler.NewBase(
		publichandler.WithResolveSignedIn(func(r *http.Request) bool {
			return sessions.Resolve(r).IsAuthenticated(httpx.RequestContext(r))
		}),
		publichandler.WithSchemePolicy(policy),
		publichandler.WithLogger(logger),
	)
	root, err := app.BuildRootHandler(app.Config{
		Modules: modules.DefaultModules(modules.Dependencies{
			Base:               base,
			ContactRegistry:    registry,
			ContactConfigured:  endpoint.Configured(),
			ContactResetDelay:  config.ContactResetDelay,
			ContactSubmissions: deps.Store,
			OperatorToken:      config.OperatorToken,
			ResolveSession: auth.SessionResolver(func(r *http.Request) navigation.Session {
				return sessions.Resolve(r)
			}),
			LoginURL:  config.LoginURL,
			SignupURL: config.SignupURL,
			Logger:    logger,
		}),
		RequestSchemePolicy: policy,
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	mux.Handle(routepath.Root, root)

	handler := httpx.Chain(mux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	)
	return otelhttp.NewHandler(handler, "web"), nil
}

// NewRegistry builds the per-visitor contact registry. A nil sender posts to
// the endpoint named by config; a missing base URL surfaces as a failed
// submission.
func NewRegistry(config Config, sender contact.Sender, store webstorage.SubmissionStore, logger *log.Logger) *contact.Registry {
	if sender == nil {
		sender = edgefunction.NewClient(edgefunction.Config{
			BaseURL: config.FunctionsBaseURL,
			AnonKey: config.AnonKey,
		}, nil)
	}
	recorder := contactmodule.NewRecorder(store)
	resetDelay := config.ContactResetDelay
	if resetDelay <= 0 {
		resetDelay = timeouts.ContactReset
	}
	return contact.NewRegistry(func(id string) *contact.Flow {
		return contact.NewFlow(sender,
			contact.WithID(id),
			contact.WithRecorder(recorder),
			contact.WithResetDelay(resetDelay),
			contact.WithLogger(logger),
		)
	}, contact.DefaultIdleTTL)
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	logger := log.Default()
	if strings.TrimSpace(config.FunctionsBaseURL) == "" {
		logger.Printf("contact endpoint not configured; submissions will fail")
	}

	var store webstorage.SubmissionStore
	if path := strings.TrimSpace(config.DBPath); path != "" {
		sqliteStore, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open web storage: %w", err)
		}
		store = sqliteStore
	}

	registry := NewRegistry(config, nil, store, logger)
	handler, err := NewHandler(config, Dependencies{Store: store, Registry: registry, Logger: logger})
	if err != nil {
		registry.Close()
		closeStore(store)
		return nil, fmt.Errorf("build handler: %w", err)
	}
	registry.StartJanitor(janitorInterval)

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		registry: registry,
		store:    store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops every contact form and closes the submission log.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.registry != nil {
		s.registry.Close()
	}
	closeStore(s.store)
}

func closeStore(store webstorage.SubmissionStore) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		log.Printf("close web storage: %v", err)
	}
}
