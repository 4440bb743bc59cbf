package scopehint_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	scopehint "github.com/goliatone/go-scopehint"
	"github.com/goliatone/go-scopehint/pkg/store"
)

const listModePath = "catalog/frontend/list_mode"

func websiteScope(id string) scopehint.Scope {
	return scopehint.Scope{Kind: scopehint.ScopeWebsites, ID: id}
}

func storeScope(id string) scopehint.Scope {
	return scopehint.Scope{Kind: scopehint.ScopeStores, ID: id}
}

// newShop registers two websites and three stores:
// base(1) owns default(1) and german(2); wholesale(2) owns b2b(3).
func newShop(t *testing.T) *store.MemoryConfig {
	t.Helper()
	cfg := store.NewMemoryConfig()
	cfg.AddWebsite(scopehint.Website{ID: "1", Code: "base", Name: "Main Website"})
	cfg.AddWebsite(scopehint.Website{ID: "2", Code: "wholesale", Name: "Wholesale"})
	cfg.AddStore(scopehint.Store{ID: "1", Code: "default", WebsiteID: "1"})
	cfg.AddStore(scopehint.Store{ID: "2", Code: "german", WebsiteID: "1"})
	cfg.AddStore(scopehint.Store{ID: "3", Code: "b2b", WebsiteID: "2"})
	return cfg
}

func set(t *testing.T, cfg *store.MemoryConfig, scope scopehint.Scope, path string, value any) {
	t.Helper()
	if err := cfg.Set(scope, path, value); err != nil {
		t.Fatalf("set %s %s: %v", scope, path, err)
	}
}

func newResolver(t *testing.T, cfg *store.MemoryConfig, opts ...scopehint.Option) *scopehint.Resolver {
	t.Helper()
	resolver, err := scopehint.New(cfg, cfg, cfg, opts...)
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}
	return resolver
}

func listModeField() *scopehint.Field {
	return &scopehint.Field{
		ID:      "list_mode",
		Path:    listModePath,
		Type:    scopehint.InputTypeSelect,
		Tooltip: "Layout",
		Options: []scopehint.FieldOption{
			{Value: "grid", Label: "Grid Only"},
			{Value: "list", Label: "List Only"},
		},
	}
}

// listModeShop overrides the list mode on the wholesale website only.
func listModeShop(t *testing.T) *store.MemoryConfig {
	t.Helper()
	cfg := newShop(t)
	set(t, cfg, scopehint.DefaultScope(), listModePath, "grid")
	set(t, cfg, websiteScope("2"), listModePath, "list")
	return cfg
}

type logRecorder struct {
	mu     sync.Mutex
	events []scopehint.LogEvent
}

func (r *logRecorder) LogHint(event scopehint.LogEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *logRecorder) kinds(kind scopehint.LogKind) []scopehint.LogEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []scopehint.LogEvent
	for _, event := range r.events {
		if event.Kind == kind {
			out = append(out, event)
		}
	}
	return out
}

var errBackend = errors.New("backend unavailable")

// failingReader fails value lookups for a single scope.
type failingReader struct {
	*store.MemoryConfig
	fail scopehint.Scope
}

func (f failingReader) Value(ctx context.Context, path string, scope scopehint.Scope) (any, error) {
	if scope.Kind == f.fail.Kind && scope.ID == f.fail.ID {
		return nil, errBackend
	}
	return f.MemoryConfig.Value(ctx, path, scope)
}

func (f failingReader) Flag(context.Context, string) (bool, error) {
	return false, errBackend
}

type failingStores struct{}

func (failingStores) Stores(context.Context) ([]scopehint.Store, error) {
	return nil, errBackend
}
