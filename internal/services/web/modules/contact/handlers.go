package contact

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/inflowhq/inflow/internal/platform/timeouts"
	contactflow "github.com/inflowhq/inflow/internal/services/web/contact"
	apperrors "github.com/inflowhq/inflow/internal/services/web/platform/errors"
	"github.com/inflowhq/inflow/internal/services/web/platform/httpx"
	webi18n "github.com/inflowhq/inflow/internal/services/web/platform/i18n"
	"github.com/inflowhq/inflow/internal/services/web/platform/pagerender"
	"github.com/inflowhq/inflow/internal/services/web/platform/publichandler"
	webstorage "github.com/inflowhq/inflow/internal/services/web/storage"
	webtemplates "github.com/inflowhq/inflow/internal/services/web/templates"
)

const maxFormBytes = 64 << 10

type handlers struct {
	publichandler.Base
	registry      *contactflow.Registry
	resetDelay    time.Duration
	store         webstorage.SubmissionStore
	operatorToken string
}

func newHandlers(m Module, registry *contactflow.Registry) handlers {
	resetDelay := m.resetDelay
	if resetDelay <= 0 {
		resetDelay = timeouts.ContactReset
	}
	return handlers{
		Base:          m.base,
		registry:      registry,
		resetDelay:    resetDelay,
		store:         m.store,
		operatorToken: strings.TrimSpace(m.operatorToken),
	}
}

func (h handlers) flowFor(w http.ResponseWriter, r *http.Request) (*contactflow.Flow, error) {
	flow, err := h.registry.Acquire(visitorID(w, r, h.SchemePolicy()))
	if err != nil {
		return nil, apperrors.E(apperrors.KindUnavailable, err.Error())
	}
	return flow, nil
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	flow, err := h.flowFor(w, r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writePage(w, r, http.StatusOK, h.cardView(flow.Snapshot(), ""))
}

func (h handlers) handleCard(w http.ResponseWriter, r *http.Request) {
	flow, err := h.flowFor(w, r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writeCard(w, r, http.StatusOK, h.cardView(flow.Snapshot(), ""))
}

// handleSubmit runs one submission. The send is detached from the client
// connection so leaving the page does not cancel it; the visitor sees the
// outcome on their next visit until the form resets.
func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindInvalidInput, "parse contact form: "+err.Error()))
		return
	}
	flow, err := h.flowFor(w, r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	form := contactflow.Form{
		Name:    r.PostForm.Get(string(contactflow.FieldName)),
		Email:   r.PostForm.Get(string(contactflow.FieldEmail)),
		Subject: r.PostForm.Get(string(contactflow.FieldSubject)),
		Message: r.PostForm.Get(string(contactflow.FieldMessage)),
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(httpx.RequestContext(r)), timeouts.ContactRequest)
	defer cancel()
	snap, err := flow.Submit(ctx, form)

	status := http.StatusOK
	validation := ""
	switch {
	case err == nil:
	case errors.Is(err, contactflow.ErrInvalidForm):
		status = http.StatusUnprocessableEntity
		loc, _ := webi18n.ResolveLocalizer(w, r)
		validation = webi18n.T(loc, "contact.error.required")
	case errors.Is(err, contactflow.ErrSubmissionInFlight), errors.Is(err, contactflow.ErrAwaitingReset):
		status = http.StatusConflict
	default:
		h.WriteError(w, r, apperrors.E(apperrors.KindUnavailable, err.Error()))
		return
	}

	view := h.cardView(snap, validation)
	if httpx.IsHTMXRequest(r) {
		// HTMX only swaps 2xx responses.
		h.writeCard(w, r, http.StatusOK, view)
		return
	}
	h.writePage(w, r, status, view)
}

// handleField keeps the typed inputs on the visitor's flow so a reload or
// card refresh shows them again.
func (h handlers) handleField(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindInvalidInput, "parse contact field: "+err.Error()))
		return
	}
	flow, err := h.flowFor(w, r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	updated := 0
	for _, field := range contactflow.Fields {
		values, ok := r.PostForm[string(field)]
		if !ok || len(values) == 0 {
			continue
		}
		if _, err := flow.SetField(field, values[0]); err != nil {
			h.WriteError(w, r, apperrors.E(apperrors.KindUnavailable, err.Error()))
			return
		}
		updated++
	}
	if updated == 0 {
		h.WriteError(w, r, apperrors.E(apperrors.KindInvalidInput, "contact field is required"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}

func (h handlers) cardView(snap contactflow.Snapshot, validation string) webtemplates.ContactCardView {
	return webtemplates.ContactCardView{
		Snapshot:          snap,
		ValidationMessage: validation,
		ResetAfter:        h.resetDelay,
	}
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, status int, view webtemplates.ContactCardView) {
	h.WritePage(w, r, pagerender.Page{
		TitleKey:   "nav.contact",
		StatusCode: status,
		Body: func(page webtemplates.PageContext) templ.Component {
			return webtemplates.ContactPage(page.Loc, view)
		},
	})
}

func (h handlers) writeCard(w http.ResponseWriter, r *http.Request, status int, view webtemplates.ContactCardView) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	if err := h.Renderer().WriteFragment(w, r, status, webtemplates.ContactCard(loc, view)); err != nil {
		h.Printf("render contact card: %v", err)
		h.WriteError(w, r, err)
	}
}
