package modules

import (
	"testing"

	"github.com/inflowhq/inflow/internal/services/web/routepath"
)

func TestDefaultModulesMountOrder(t *testing.T) {
	t.Parallel()

	mods := DefaultModules(Dependencies{})
	want := []string{"public", "contact", "auth"}
	if len(mods) != len(want) {
		t.Fatalf("module count = %d, want %d", len(mods), len(want))
	}
	for i, id := range want {
		if got := mods[i].ID(); got != id {
			t.Fatalf("module[%d] id = %q, want %q", i, got, id)
		}
	}
}

func TestDefaultModulesOwnDistinctRoutes(t *testing.T) {
	t.Parallel()

	seen := map[string]string{}
	for _, m := range DefaultModules(Dependencies{}) {
		mount, err := m.Mount()
		if err != nil {
			t.Fatalf("%s Mount() error = %v", m.ID(), err)
		}
		for _, pattern := range append([]string{mount.Prefix}, mount.Paths...) {
			if owner, ok := seen[pattern]; ok {
				t.Fatalf("route %q owned by %q and %q", pattern, owner, m.ID())
			}
			seen[pattern] = m.ID()
		}
	}
	for _, pattern := range []string{routepath.Root, routepath.Contact, routepath.Login, routepath.Signup, routepath.AuthPrefix} {
		if _, ok := seen[pattern]; !ok {
			t.Fatalf("no module owns %q", pattern)
		}
	}
}
