package contact

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/inflowhq/inflow/internal/services/web/platform/requestmeta"
	"github.com/inflowhq/inflow/internal/services/web/platform/sessioncookie"
)

// visitorID returns the browser's form id, issuing one when missing or
// malformed.
func visitorID(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) string {
	if raw, ok := sessioncookie.Visitor.Read(r); ok {
		if id, err := uuid.Parse(raw); err == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	sessioncookie.Visitor.Write(w, r, id, policy)
	return id
}
