package auth

import (
	"context"
	"net/http"

	"github.com/inflowhq/inflow/internal/platform/timeouts"
	"github.com/inflowhq/inflow/internal/services/web/navigation"
	apperrors "github.com/inflowhq/inflow/internal/services/web/platform/errors"
	"github.com/inflowhq/inflow/internal/services/web/platform/flash"
	"github.com/inflowhq/inflow/internal/services/web/platform/httpx"
	"github.com/inflowhq/inflow/internal/services/web/platform/publichandler"
	"github.com/inflowhq/inflow/internal/services/web/platform/requestmeta"
	"github.com/inflowhq/inflow/internal/services/web/platform/sessioncookie"
)

type handlers struct {
	publichandler.Base
	shell          navigation.Shell
	resolveSession SessionResolver
	loginURL       string
	signupURL      string
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	h.handOff(w, r, h.loginURL)
}

func (h handlers) handleSignup(w http.ResponseWriter, r *http.Request) {
	h.handOff(w, r, h.signupURL)
}

func (h handlers) handOff(w http.ResponseWriter, r *http.Request, target string) {
	if target == "" {
		h.WriteError(w, r, apperrors.E(apperrors.KindUnavailable, "auth provider page not configured"))
		return
	}
	httpx.WriteRedirect(w, r, target)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	policy := h.SchemePolicy()
	_, hasSession := sessioncookie.Session.Read(r)
	if hasSession && !requestmeta.HasSameOriginProofWithPolicy(r, policy) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	var session navigation.Session
	if h.resolveSession != nil {
		session = h.resolveSession(r)
	}
	ctx, cancel := context.WithTimeout(httpx.RequestContext(r), timeouts.SignOut)
	defer cancel()
	redirect := h.shell.AuthAction(ctx, session)

	if hasSession {
		sessioncookie.Session.Clear(w, r, policy)
	}
	switch {
	case redirect.Forced:
		flash.Write(w, r, flash.Error("notice.sign_out_failed"), policy)
	case redirect.Location == navigation.ForceHomeRedirect.Location:
		flash.Write(w, r, flash.Info("notice.signed_out"), policy)
	}
	httpx.WriteRedirect(w, r, redirect.Location)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
