package templates

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/inflowhq/inflow/internal/services/web/contact"
	"github.com/inflowhq/inflow/internal/services/web/routepath"
)

// DirectContactEmail is the fallback address shown beside the form.
const DirectContactEmail = "info@inflow.com"

const contactCardID = "contact-card"

// ContactCardView is the state the contact card renders.
type ContactCardView struct {
	Snapshot contact.Snapshot
	// ValidationMessage explains why a submit was not sent.
	ValidationMessage string
	// ResetAfter is how long the sent confirmation stays before the card
	// refreshes itself.
	ResetAfter time.Duration
}

type contactInput struct {
	field          contact.Field
	inputType      string
	labelKey       string
	placeholderKey string
	multiline      bool
}

var contactInputs = []contactInput{
	{field: contact.FieldName, inputType: "text", labelKey: "contact.name", placeholderKey: "contact.name_placeholder"},
	{field: contact.FieldEmail, inputType: "email", labelKey: "contact.email", placeholderKey: "contact.email_placeholder"},
	{field: contact.FieldSubject, inputType: "text", labelKey: "contact.subject", placeholderKey: "contact.subject_placeholder"},
	{field: contact.FieldMessage, labelKey: "contact.message", placeholderKey: "contact.message_placeholder", multiline: true},
}

// ContactPage renders the contact hero, the form card and the direct contact
// fallback.
func ContactPage(loc Localizer, view ContactCardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="hero hero-contact"><h1>`)
		h.text(T(loc, "contact.heading"))
		h.raw("</h1><p>")
		h.text(T(loc, "contact.subheading"))
		h.raw(`</p></section><section class="page contact">`)
		h.component(ctx, ContactCard(loc, view))
		h.raw(`<aside class="direct-contact"><p>`)
		h.text(T(loc, "contact.direct"))
		h.raw("</p><a")
		h.attr("href", "mailto:"+DirectContactEmail)
		h.raw(">")
		h.text(DirectContactEmail)
		h.raw("</a></aside></section>")
		return h.err
	})
}

// ContactCard renders the form card for the flow state. It is also the HTMX
// swap target for submits and refreshes.
func ContactCard(loc Localizer, view ContactCardView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		snap := view.Snapshot
		h.raw("<div")
		h.attr("id", contactCardID)
		h.attr("class", "card contact-card")
		h.attr("data-status", string(snap.Status))
		switch snap.Status {
		case contact.StatusSubmitted:
			refreshCard(h, view.ResetAfter)
			h.raw(`><div class="contact-sent" role="status"><h2>`)
			h.text(T(loc, "contact.sent_title"))
			h.raw("</h2><p>")
			h.text(T(loc, "contact.sent_body"))
			h.raw("</p></div></div>")
			return h.err
		case contact.StatusSubmitting:
			refreshCard(h, time.Second)
		}
		h.raw("><h2>")
		h.text(T(loc, "contact.form_title"))
		h.raw("</h2>")

		message := view.ValidationMessage
		if snap.Status == contact.StatusFailed && snap.ErrorMessage != "" {
			message = snap.ErrorMessage
		}
		if message != "" {
			h.raw(`<div class="contact-error" role="alert">`)
			h.text(message)
			h.raw("</div>")
		}

		h.raw(`<form method="post"`)
		h.attr("action", routepath.Contact)
		h.attr("hx-post", routepath.Contact)
		h.attr("hx-target", "#"+contactCardID)
		h.attr("hx-swap", "outerHTML")
		h.raw(">")
		for _, input := range contactInputs {
			id := "contact-" + string(input.field)
			h.raw("<label")
			h.attr("for", id)
			h.raw(">")
			h.text(T(loc, input.labelKey))
			h.raw("</label>")
			if input.multiline {
				h.raw(`<textarea rows="6"`)
			} else {
				h.raw("<input")
				h.attr("type", input.inputType)
				h.attr("value", snap.Form.Value(input.field))
			}
			h.attr("id", id)
			h.attr("name", string(input.field))
			h.attr("placeholder", T(loc, input.placeholderKey))
			h.attr("hx-post", routepath.ContactField)
			h.attr("hx-trigger", "input changed delay:500ms")
			h.attr("hx-include", "this")
			h.attr("hx-swap", "none")
			h.boolAttr("required", true)
			h.raw(">")
			if input.multiline {
				h.text(snap.Form.Value(input.field))
				h.raw("</textarea>")
			}
		}
		labelKey := "contact.send"
		if snap.Status == contact.StatusSubmitting {
			labelKey = "contact.sending"
		}
		h.raw(`<button type="submit" class="btn btn-primary"`)
		h.boolAttr("disabled", !snap.CanSubmit())
		h.raw(">")
		h.text(T(loc, labelKey))
		h.raw("</button></form></div>")
		return h.err
	})
}

func refreshCard(h *htmlWriter, after time.Duration) {
	if after <= 0 {
		after = time.Second
	}
	h.attr("hx-get", routepath.ContactCard)
	h.attr("hx-trigger", fmt.Sprintf("load delay:%dms", after.Milliseconds()))
	h.attr("hx-swap", "outerHTML")
}
