package scopehint

import (
	"context"
	"strings"
)

// InputType identifies how the host form renders a field.
type InputType string

const (
	InputTypeText        InputType = "text"
	InputTypeSelect      InputType = "select"
	InputTypeMultiselect InputType = "multiselect"
)

// FieldOption is a single value/label pair offered by a select style field.
type FieldOption struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Field describes a configuration setting rendered by the host form. The
// pointer is the field identity: two Field values with the same content are
// still tracked independently.
type Field struct {
	ID         string
	Path       string
	ConfigPath string
	Type       InputType
	Options    []FieldOption
	Tooltip    string
}

// HasOptions reports whether the field declares any display options.
func (f *Field) HasOptions() bool {
	return f != nil && len(f.Options) > 0
}

// FieldPath returns the storage path for field, preferring the explicit
// ConfigPath over the derived Path.
func FieldPath(field *Field) string {
	if field == nil {
		return ""
	}
	if field.ConfigPath != "" {
		return field.ConfigPath
	}
	return field.Path
}

// ScopeKind uses the host scope type strings.
type ScopeKind string

const (
	ScopeDefault  ScopeKind = "default"
	ScopeWebsites ScopeKind = "websites"
	ScopeStores   ScopeKind = "stores"
)

// ParseScopeKind maps host spellings onto a ScopeKind. Unknown values fall
// back to ScopeDefault.
func ParseScopeKind(value string) ScopeKind {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "websites", "website":
		return ScopeWebsites
	case "stores", "store":
		return ScopeStores
	default:
		return ScopeDefault
	}
}

// Scope identifies the breadth a configuration value applies to.
type Scope struct {
	Kind      ScopeKind `json:"kind"`
	ID        string    `json:"id,omitempty"`
	Code      string    `json:"code,omitempty"`
	WebsiteID string    `json:"website_id,omitempty"`
}

// DefaultScope returns the global scope.
func DefaultScope() Scope {
	return Scope{Kind: ScopeDefault}
}

// WebsiteScope builds the scope for website.
func WebsiteScope(website Website) Scope {
	return Scope{Kind: ScopeWebsites, ID: website.ID, Code: website.Code}
}

// StoreScope builds the scope for store.
func StoreScope(store Store) Scope {
	return Scope{Kind: ScopeStores, ID: store.ID, Code: store.Code, WebsiteID: store.WebsiteID}
}

// Label is the human facing name of the scope kind.
func (s Scope) Label() string {
	switch s.Kind {
	case ScopeWebsites:
		return "Website"
	case ScopeStores:
		return "Store"
	default:
		return "Default"
	}
}

// String renders the scope as kind or kind:id.
func (s Scope) String() string {
	if s.Kind == "" {
		return string(ScopeDefault)
	}
	if s.ID == "" {
		return string(s.Kind)
	}
	return string(s.Kind) + ":" + s.ID
}

// Website is read-only reference data from the website directory.
type Website struct {
	ID   string `json:"id" yaml:"id"`
	Code string `json:"code" yaml:"code"`
	Name string `json:"name,omitempty" yaml:"name"`
}

// Store is read-only reference data from the store directory. Each store
// belongs to exactly one website.
type Store struct {
	ID        string `json:"id" yaml:"id"`
	Code      string `json:"code" yaml:"code"`
	Name      string `json:"name,omitempty" yaml:"name"`
	WebsiteID string `json:"website_id" yaml:"website_id"`
}

// ConfigReader resolves configuration values. Value returns the value that
// applies at scope, including anything inherited from wider scopes.
type ConfigReader interface {
	Value(ctx context.Context, path string, scope Scope) (any, error)
	Flag(ctx context.Context, path string) (bool, error)
}

// WebsiteDirectory lists websites in display order.
type WebsiteDirectory interface {
	Websites(ctx context.Context) ([]Website, error)
}

// StoreDirectory lists stores in display order.
type StoreDirectory interface {
	Stores(ctx context.Context) ([]Store, error)
}

// Params exposes request parameters. Missing parameters return "".
type Params interface {
	Param(name string) string
}

// ParamMap adapts a plain map to Params.
type ParamMap map[string]string

// Param implements Params.
func (m ParamMap) Param(name string) string {
	if m == nil {
		return ""
	}
	return m[name]
}

// Escaper escapes text for safe HTML display.
type Escaper interface {
	EscapeHTML(text string) string
}

// Formatter renders display templates that use %1, %2... placeholders.
type Formatter interface {
	Format(template string, args ...any) string
}
