package auth

import (
	"net/http"

	"github.com/inflowhq/inflow/internal/services/web/platform/httpx"
	"github.com/inflowhq/inflow/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Login, h.handleLogin)
	mux.HandleFunc(http.MethodGet+" "+routepath.Signup, h.handleSignup)
	mux.HandleFunc(http.MethodPost+" "+routepath.Logout, h.handleLogout)
	mux.HandleFunc(routepath.Logout, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.AuthPrefix, h.handleNotFound)
}
