// Package flash carries one-time notices across a redirect.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/inflowhq/inflow/internal/services/web/platform/requestmeta"
	"github.com/inflowhq/inflow/internal/services/web/platform/sessioncookie"
)

var jar = sessioncookie.Jar{Name: "inflow_flash"}

// CookieName is the cookie used for one-time notices.
var CookieName = jar.Name

// Kind classifies notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Notice references a localized message by key.
type Notice struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key"`
}

// Info creates an informational notice for the given localization key.
func Info(key string) Notice {
	return Notice{Kind: KindInfo, Key: key}
}

// Error creates an error notice for the given localization key.
func Error(key string) Notice {
	return Notice{Kind: KindError, Key: key}
}

// Write stores a notice for the next page render. Invalid notices are dropped.
func Write(w http.ResponseWriter, r *http.Request, notice Notice, policy requestmeta.SchemePolicy) {
	normalized, ok := normalize(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	jar.Write(w, r, base64.RawURLEncoding.EncodeToString(payload), policy)
}

// ReadAndClear reads the pending notice and expires it.
func ReadAndClear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) (Notice, bool) {
	raw, ok := jar.Read(r)
	if !ok {
		return Notice{}, false
	}
	jar.Clear(w, r, policy)
	return decode(raw)
}

func decode(raw string) (Notice, bool) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	return normalize(notice)
}

func normalize(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	if notice.Key == "" {
		return Notice{}, false
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindInfo, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}
