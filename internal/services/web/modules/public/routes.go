package public

import (
	"net/http"

	"github.com/inflowhq/inflow/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.Features, h.handleFeatures)
	mux.HandleFunc(http.MethodGet+" "+routepath.Pricing, h.handlePricing)
	mux.HandleFunc(http.MethodGet+" "+routepath.FAQs, h.handleFAQs)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
