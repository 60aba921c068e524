package contact

import (
	"net/http"

	"github.com/inflowhq/inflow/internal/services/web/platform/httpx"
	"github.com/inflowhq/inflow/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Contact, h.handlePage)
	mux.HandleFunc(http.MethodPost+" "+routepath.Contact, h.handleSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.ContactCard, h.handleCard)
	mux.HandleFunc(routepath.ContactCard, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(http.MethodPost+" "+routepath.ContactField, h.handleField)
	mux.HandleFunc(routepath.ContactField, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.ContactSubmissions, h.handleSubmissions)
	mux.HandleFunc(http.MethodGet+" "+routepath.ContactSubmissions+"/{id}", h.handleSubmission)
	mux.HandleFunc(routepath.Contact+"/", h.handleNotFound)
}
