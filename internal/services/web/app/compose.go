package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/inflowhq/inflow/internal/services/web/module"
	"github.com/inflowhq/inflow/internal/services/web/platform/requestmeta"
	"github.com/inflowhq/inflow/internal/services/web/platform/sessioncookie"
)

// ComposeInput carries the site modules and shared composition contracts.
type ComposeInput struct {
	Modules             []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose builds a root HTTP handler from modules.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	wrap := requireCookieSessionSameOrigin(input.RequestSchemePolicy)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		handler := wrap(mount.Handler)
		if err := mountPattern(root, feature, mount.Prefix, handler, seen); err != nil {
			return nil, err
		}
		for _, path := range mount.Paths {
			if err := mountPattern(root, feature, path, handler, seen); err != nil {
				return nil, err
			}
		}
	}

	return root, nil
}

func mountPattern(root *http.ServeMux, feature module.Module, pattern string, handler http.Handler, seen map[string]string) error {
	if previous, ok := seen[pattern]; ok {
		return fmt.Errorf("module %q duplicates route %q owned by module %q", feature.ID(), pattern, previous)
	}
	seen[pattern] = feature.ID()
	root.Handle(pattern, handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := validatePrefix(mount.Prefix); err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	for _, path := range mount.Paths {
		if err := validatePath(path); err != nil {
			return module.Mount{}, fmt.Errorf("mount module %q has invalid path %q: %w", feature.ID(), path, err)
		}
	}
	if mount.Handler == nil {
		return module.Mount{}, fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

// validatePath accepts exact routes only; subtrees belong in the prefix.
func validatePath(path string) error {
	if strings.TrimSpace(path) != path {
		return fmt.Errorf("path must not include surrounding whitespace")
	}
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path must begin with /")
	}
	if strings.HasSuffix(path, "/") {
		return fmt.Errorf("path must not end with /")
	}
	return nil
}

func requireCookieSessionSameOrigin(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) || !hasSessionCookie(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !requestmeta.HasSameOriginProofWithPolicy(r, policy) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Session.Read(r)
	return ok
}
