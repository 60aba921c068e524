package public

import (
	"net/http"

	"github.com/a-h/templ"

	module "github.com/inflowhq/inflow/internal/services/web/module"
	"github.com/inflowhq/inflow/internal/services/web/platform/httpx"
	"github.com/inflowhq/inflow/internal/services/web/platform/pagerender"
	"github.com/inflowhq/inflow/internal/services/web/platform/publichandler"
	webtemplates "github.com/inflowhq/inflow/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	health map[string]module.HealthReporter
}

func newHandlers(base publichandler.Base, health map[string]module.HealthReporter) handlers {
	return handlers{Base: base, health: health}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, pagerender.Page{
		Body: func(page webtemplates.PageContext) templ.Component {
			return webtemplates.HomePage(page.Loc)
		},
	})
}

func (h handlers) handleFeatures(w http.ResponseWriter, r *http.Request) {
	h.writeMarketing(w, r, "nav.features", "features.heading", "features.body")
}

func (h handlers) handlePricing(w http.ResponseWriter, r *http.Request) {
	h.writeMarketing(w, r, "nav.pricing", "pricing.heading", "pricing.body")
}

func (h handlers) handleFAQs(w http.ResponseWriter, r *http.Request) {
	h.writeMarketing(w, r, "nav.faqs", "faqs.heading", "faqs.body")
}

func (h handlers) writeMarketing(w http.ResponseWriter, r *http.Request, titleKey, headingKey, bodyKey string) {
	h.WritePage(w, r, pagerender.Page{
		TitleKey: titleKey,
		Body: func(page webtemplates.PageContext) templ.Component {
			return webtemplates.MarketingPage(page.Loc, headingKey, bodyKey)
		},
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}

type healthReport struct {
	Status  string          `json:"status"`
	Modules map[string]bool `json:"modules,omitempty"`
}

// handleHealth always answers 200 while the process serves; degraded modules
// are listed but do not fail the check.
func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	report := healthReport{Status: "ok"}
	if len(h.health) > 0 {
		report.Modules = make(map[string]bool, len(h.health))
		for id, reporter := range h.health {
			healthy := reporter != nil && reporter.Healthy()
			report.Modules[id] = healthy
			if !healthy {
				report.Status = "degraded"
			}
		}
	}
	_ = httpx.WriteJSON(w, http.StatusOK, report)
}
