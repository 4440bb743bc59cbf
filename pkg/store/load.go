package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	scopehint "github.com/goliatone/go-scopehint"
	"github.com/goliatone/go-scopehint/internal/hydrate"
	"github.com/goliatone/go-scopehint/layering"
)

// Document is the YAML fixture layout accepted by Load.
type Document struct {
	Websites []scopehint.Website `yaml:"websites"`
	Stores   []scopehint.Store   `yaml:"stores"`
	Config   ScopedTrees         `yaml:"config"`
	Flags    []string            `yaml:"flags"`
}

// ScopedTrees holds the configuration tree of every scope.
type ScopedTrees struct {
	Default  layering.Tree            `yaml:"default"`
	Websites map[string]layering.Tree `yaml:"websites"`
	Stores   map[string]layering.Tree `yaml:"stores"`
}

// Load decodes a YAML document from r into a MemoryConfig. name is used in
// error messages.
func Load(name string, r io.Reader) (*MemoryConfig, error) {
	decoder := hydrate.NewDecoder[Document](
		hydrate.WithKnownFields[Document](),
		hydrate.WithPostHook[Document](validateDocument),
	)
	doc, err := decoder.Decode(hydrate.Context{Name: name}, r)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc)
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*MemoryConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open fixture: %w", err)
	}
	defer file.Close()
	return Load(filepath.Base(path), file)
}

// FromDocument builds a MemoryConfig from an already decoded document.
func FromDocument(doc Document) (*MemoryConfig, error) {
	cfg := NewMemoryConfig()
	for _, website := range doc.Websites {
		cfg.AddWebsite(website)
	}
	for _, store := range doc.Stores {
		cfg.AddStore(store)
	}
	if err := cfg.SetTree(scopehint.DefaultScope(), doc.Config.Default); err != nil {
		return nil, err
	}
	for id, tree := range doc.Config.Websites {
		if err := cfg.SetTree(scopehint.Scope{Kind: scopehint.ScopeWebsites, ID: id}, tree); err != nil {
			return nil, fmt.Errorf("store: website tree: %w", err)
		}
	}
	for id, tree := range doc.Config.Stores {
		if err := cfg.SetTree(scopehint.Scope{Kind: scopehint.ScopeStores, ID: id}, tree); err != nil {
			return nil, fmt.Errorf("store: store tree: %w", err)
		}
	}
	for _, flag := range doc.Flags {
		if err := cfg.Set(scopehint.DefaultScope(), flag, "1"); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func validateDocument(ctx hydrate.Context, doc *Document) error {
	var errs []error
	websites := make(map[string]struct{}, len(doc.Websites))
	for _, website := range doc.Websites {
		if website.ID == "" {
			errs = append(errs, fmt.Errorf("website %q: %w", website.Code, ErrScopeIDRequired))
			continue
		}
		if _, dup := websites[website.ID]; dup {
			errs = append(errs, fmt.Errorf("website %q: duplicate id", website.ID))
		}
		websites[website.ID] = struct{}{}
	}
	stores := make(map[string]struct{}, len(doc.Stores))
	for _, store := range doc.Stores {
		if store.ID == "" {
			errs = append(errs, fmt.Errorf("store %q: %w", store.Code, ErrScopeIDRequired))
			continue
		}
		if _, dup := stores[store.ID]; dup {
			errs = append(errs, fmt.Errorf("store %q: duplicate id", store.ID))
		}
		stores[store.ID] = struct{}{}
		if _, ok := websites[store.WebsiteID]; !ok {
			errs = append(errs, fmt.Errorf("store %q: %w: websites/%s", store.ID, ErrUnknownScope, store.WebsiteID))
		}
	}
	return errors.Join(errs...)
}
