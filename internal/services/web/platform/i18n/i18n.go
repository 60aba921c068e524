// Package i18n resolves request languages and prints localized site copy.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "inflow_lang"
)

var (
	english    = language.MustParse("en-US")
	portuguese = language.MustParse("pt-BR")
	supported  = []language.Tag{english, portuguese}
	matcher    = language.NewMatcher(supported)
)

// Localizer prints a message for a catalog key.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Supported returns the supported language tags, default first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return english
}

// Match maps any tag onto the closest supported tag.
func Match(tags ...language.Tag) language.Tag {
	if len(tags) == 0 {
		return english
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return english
	}
	return supported[idx]
}

// ParseTag parses and matches a raw tag. It reports false for malformed input.
func ParseTag(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return language.Tag{}, false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Tag{}, false
	}
	return Match(tag), true
}

// ResolveTag picks the request language from the lang query parameter, then
// the language cookie, then Accept-Language. The bool reports whether the
// query parameter chose it and should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return english, false
	}
	if tag, ok := ParseTag(r.URL.Query().Get(LangParam)); ok {
		return tag, true
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return Match(tags...), false
		}
	}
	return english, false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves the request language, persisting an explicit
// choice, and returns a printer for it with the language string.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return message.NewPrinter(tag), tag.String()
}

// T prints key through loc, falling back to the key itself.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	value := strings.TrimSpace(loc.Sprintf(key, args...))
	if value == "" {
		return key
	}
	return value
}

// LabelKey returns the catalog key naming tag in the switcher.
func LabelKey(tag language.Tag) string {
	return "lang." + tag.String()
}

// LanguageURL returns path with the lang parameter set to tag.
func LanguageURL(path string, tag language.Tag) string {
	if strings.TrimSpace(path) == "" {
		path = "/"
	}
	return path + "?" + LangParam + "=" + tag.String()
}
