// Package web parses web command flags and launches the marketing site.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/inflowhq/inflow/internal/platform/cmd"
	"github.com/inflowhq/inflow/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string `env:"INFLOW_WEB_HTTP_ADDR"             envDefault:"localhost:8080"`
	FunctionsBaseURL    string `env:"INFLOW_FUNCTIONS_BASE_URL"`
	AnonKey             string `env:"INFLOW_FUNCTIONS_ANON_KEY"`
	JWTSecret           string `env:"INFLOW_AUTH_JWT_SECRET"`
	LoginURL            string `env:"INFLOW_AUTH_LOGIN_URL"`
	SignupURL           string `env:"INFLOW_AUTH_SIGNUP_URL"`
	DBPath              string `env:"INFLOW_WEB_DB_PATH"               envDefault:"data/web.db"`
	TrustForwardedProto bool   `env:"INFLOW_WEB_TRUST_FORWARDED_PROTO"`
	OperatorToken       string `env:"INFLOW_WEB_OPERATOR_TOKEN"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.FunctionsBaseURL, "functions-base-url", cfg.FunctionsBaseURL, "backend project URL hosting the contact function and auth")
	fs.StringVar(&cfg.LoginURL, "login-url", cfg.LoginURL, "external login page")
	fs.StringVar(&cfg.SignupURL, "signup-url", cfg.SignupURL, "external sign-up page")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "submission log SQLite path; empty disables it")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "trust X-Forwarded-Proto from the fronting proxy")
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			FunctionsBaseURL:    cfg.FunctionsBaseURL,
			AnonKey:             cfg.AnonKey,
			JWTSecret:           cfg.JWTSecret,
			LoginURL:            cfg.LoginURL,
			SignupURL:           cfg.SignupURL,
			DBPath:              cfg.DBPath,
			TrustForwardedProto: cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
