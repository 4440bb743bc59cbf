package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	scopehint "github.com/goliatone/go-scopehint"
	"github.com/goliatone/go-scopehint/layering"
)

var (
	// ErrUnknownScope indicates a lookup against a website or store that is
	// not registered.
	ErrUnknownScope = errors.New("store: unknown scope")
	// ErrScopeIDRequired indicates a website or store scope without an id.
	ErrScopeIDRequired = errors.New("store: scope id is required")
)

// Ref identifies the tree of a single scope.
type Ref struct {
	Scope scopehint.Scope
}

// Identifier returns the deterministic key of the scope tree.
func (r Ref) Identifier() (string, error) {
	switch r.Scope.Kind {
	case scopehint.ScopeDefault, "":
		return string(scopehint.ScopeDefault), nil
	case scopehint.ScopeWebsites, scopehint.ScopeStores:
		id := strings.TrimSpace(r.Scope.ID)
		if id == "" {
			return "", fmt.Errorf("%w: %s", ErrScopeIDRequired, r.Scope.Kind)
		}
		return fmt.Sprintf("%s/%s", r.Scope.Kind, id), nil
	default:
		return "", fmt.Errorf("unsupported scope kind %q", r.Scope.Kind)
	}
}

// MemoryConfig is a concurrency safe in-memory configuration backend.
type MemoryConfig struct {
	mu       sync.RWMutex
	trees    map[string]layering.Tree
	websites []scopehint.Website
	stores   []scopehint.Store
}

var (
	_ scopehint.ConfigReader     = (*MemoryConfig)(nil)
	_ scopehint.WebsiteDirectory = (*MemoryConfig)(nil)
	_ scopehint.StoreDirectory   = (*MemoryConfig)(nil)
)

// NewMemoryConfig returns an empty backend.
func NewMemoryConfig() *MemoryConfig {
	return &MemoryConfig{trees: map[string]layering.Tree{}}
}

// AddWebsite registers or replaces a website.
func (m *MemoryConfig) AddWebsite(website scopehint.Website) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.websites {
		if m.websites[i].ID == website.ID {
			m.websites[i] = website
			return
		}
	}
	m.websites = append(m.websites, website)
}

// AddStore registers or replaces a store.
func (m *MemoryConfig) AddStore(store scopehint.Store) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.stores {
		if m.stores[i].ID == store.ID {
			m.stores[i] = store
			return
		}
	}
	m.stores = append(m.stores, store)
}

// Set stores value at path for scope. Website and store scopes must be
// registered first.
func (m *MemoryConfig) Set(scope scopehint.Scope, path string, value any) error {
	key, err := Ref{Scope: scope}.Identifier()
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.knownLocked(scope) {
		return fmt.Errorf("%w: %s", ErrUnknownScope, key)
	}
	m.trees[key] = layering.Set(m.trees[key], path, value)
	return nil
}

// SetTree replaces the whole tree of scope.
func (m *MemoryConfig) SetTree(scope scopehint.Scope, tree layering.Tree) error {
	key, err := Ref{Scope: scope}.Identifier()
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.knownLocked(scope) {
		return fmt.Errorf("%w: %s", ErrUnknownScope, key)
	}
	m.trees[key] = layering.Clone(tree)
	return nil
}

// Value resolves path at scope, falling back through website and default
// trees. Missing paths resolve to nil without error.
func (m *MemoryConfig) Value(_ context.Context, path string, scope scopehint.Scope) (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	chain, err := m.chainLocked(scope)
	if err != nil {
		return nil, err
	}
	trees := make([]layering.Tree, 0, len(chain))
	for _, key := range chain {
		trees = append(trees, m.trees[key])
	}
	value, ok := layering.Lookup(layering.MergeLayers(trees...), path)
	if !ok {
		return nil, nil
	}
	return value, nil
}

// Flag reports whether path is set to a truthy value at the default scope.
func (m *MemoryConfig) Flag(ctx context.Context, path string) (bool, error) {
	value, err := m.Value(ctx, path, scopehint.DefaultScope())
	if err != nil {
		return false, err
	}
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		v = strings.TrimSpace(strings.ToLower(v))
		return v != "" && v != "0" && v != "false", nil
	case int:
		return v != 0, nil
	case float64:
		return v != 0, nil
	default:
		return false, nil
	}
}

// Websites implements scopehint.WebsiteDirectory.
func (m *MemoryConfig) Websites(context.Context) ([]scopehint.Website, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]scopehint.Website(nil), m.websites...), nil
}

// Stores implements scopehint.StoreDirectory.
func (m *MemoryConfig) Stores(context.Context) ([]scopehint.Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]scopehint.Store(nil), m.stores...), nil
}

// chainLocked returns tree keys ordered strongest to weakest.
func (m *MemoryConfig) chainLocked(scope scopehint.Scope) ([]string, error) {
	defaultKey := string(scopehint.ScopeDefault)
	switch scope.Kind {
	case scopehint.ScopeDefault, "":
		return []string{defaultKey}, nil
	case scopehint.ScopeWebsites:
		if _, ok := m.websiteLocked(scope.ID); !ok {
			return nil, fmt.Errorf("%w: websites/%s", ErrUnknownScope, scope.ID)
		}
		return []string{"websites/" + scope.ID, defaultKey}, nil
	case scopehint.ScopeStores:
		store, ok := m.storeLocked(scope.ID)
		if !ok {
			return nil, fmt.Errorf("%w: stores/%s", ErrUnknownScope, scope.ID)
		}
		return []string{"stores/" + store.ID, "websites/" + store.WebsiteID, defaultKey}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownScope, scope.Kind)
	}
}

func (m *MemoryConfig) knownLocked(scope scopehint.Scope) bool {
	switch scope.Kind {
	case scopehint.ScopeWebsites:
		_, ok := m.websiteLocked(scope.ID)
		return ok
	case scopehint.ScopeStores:
		_, ok := m.storeLocked(scope.ID)
		return ok
	default:
		return true
	}
}

func (m *MemoryConfig) websiteLocked(id string) (scopehint.Website, bool) {
	for _, website := range m.websites {
		if website.ID == id {
			return website, true
		}
	}
	return scopehint.Website{}, false
}

func (m *MemoryConfig) storeLocked(id string) (scopehint.Store, bool) {
	for _, store := range m.stores {
		if store.ID == id {
			return store, true
		}
	}
	return scopehint.Store{}, false
}
