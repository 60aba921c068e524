package app

import (
	"net/http"

	module "github.com/inflowhq/inflow/internal/services/web/module"
	"github.com/inflowhq/inflow/internal/services/web/platform/requestmeta"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	Modules             []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// BuildRootHandler composes a root mux from the configured modules.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	return Compose(ComposeInput{
		Modules:             cfg.Modules,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
}
