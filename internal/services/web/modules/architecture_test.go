package modules

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inflowhq/inflow/internal/services/web/routepath"
)

func TestFeatureModulesDoNotImportSiblingModules(t *testing.T) {
	t.Parallel()

	entries, err := filepath.Glob(filepath.Join("*", "*.go"))
	if err != nil {
		t.Fatalf("glob module files: %v", err)
	}
	fset := token.NewFileSet()
	for _, file := range entries {
		parsed, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse imports for %s: %v", file, err)
		}
		for _, imp := range parsed.Imports {
			path := strings.Trim(imp.Path.Value, "\"")
			if strings.Contains(path, "/internal/services/web/modules/") {
				t.Fatalf("file %s imports sibling module path %q", file, path)
			}
		}
	}
}

func TestRoutePrefixesRemainUniqueConstants(t *testing.T) {
	t.Parallel()

	routes := []string{
		routepath.Root,
		routepath.Features,
		routepath.Pricing,
		routepath.FAQs,
		routepath.Contact,
		routepath.ContactCard,
		routepath.ContactField,
		routepath.ContactSubmissions,
		routepath.Login,
		routepath.Signup,
		routepath.Logout,
		routepath.Health,
		routepath.StaticPrefix,
		routepath.AuthPrefix,
	}
	seen := map[string]struct{}{}
	for _, route := range routes {
		if _, ok := seen[route]; ok {
			t.Fatalf("duplicate route constant %q", route)
		}
		seen[route] = struct{}{}
	}
}

func TestFeatureModulesFollowTemplate(t *testing.T) {
	t.Parallel()

	areas := []string{"public", "contact", "auth"}
	requiredFiles := []string{"module.go", "routes.go", "handlers.go", "module_test.go"}
	for _, area := range areas {
		for _, file := range requiredFiles {
			path := filepath.Join(area, file)
			if _, err := os.Stat(path); err != nil {
				t.Fatalf("module %q missing required file %q: %v", area, file, err)
			}
		}
	}
}
