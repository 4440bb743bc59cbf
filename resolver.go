package scopehint

import (
	"context"
	"strings"

	"github.com/goliatone/go-scopehint/pkg/activity"
)

const (
	// ParamWebsite is the request parameter selecting a website scope.
	ParamWebsite = "website"
	// ParamStore is the request parameter selecting a store scope.
	ParamStore = "store"
)

// Resolver computes scope override and path hints for configuration fields.
// It is immutable after New and safe for concurrent use; per request state
// lives on the Request returned by ForRequest.
type Resolver struct {
	config   ConfigReader
	websites WebsiteDirectory
	stores   StoreDirectory
	cfg      config
	filter   CompiledRule
	emitter  *activity.Emitter
}

// New builds a Resolver over the host collaborators.
func New(reader ConfigReader, websites WebsiteDirectory, stores StoreDirectory, opts ...Option) (*Resolver, error) {
	if reader == nil {
		return nil, ErrConfigReaderRequired
	}
	if websites == nil || stores == nil {
		return nil, ErrDirectoryRequired
	}
	cfg := applyOptions(opts)
	r := &Resolver{
		config:   reader,
		websites: websites,
		stores:   stores,
		cfg:      cfg,
		emitter:  activity.NewEmitter(cfg.activityHooks, cfg.activityCfg),
	}
	if cfg.lineFilter != "" {
		evaluator := cfg.resolveEvaluator()
		if evaluator == nil {
			return nil, wrapRuleError("unknown", cfg.lineFilter, "", ErrNoEvaluator)
		}
		rule, err := evaluator.Compile(cfg.lineFilter)
		if err != nil {
			return nil, wrapRuleError(evaluatorEngineName(evaluator), cfg.lineFilter, "", err)
		}
		r.filter = rule
	}
	return r, nil
}

// Selection is the admin scope currently being viewed.
type Selection struct {
	WebsiteID        string `json:"website_id,omitempty"`
	StoreID          string `json:"store_id,omitempty"`
	ImpliedWebsiteID string `json:"implied_website_id,omitempty"`
}

// IsGlobal reports whether neither a website nor a store is selected.
func (s Selection) IsGlobal() bool {
	return s.WebsiteID == "" && s.StoreID == ""
}

// Baseline is the scope whose value override lines are compared against.
func (s Selection) Baseline() Scope {
	if s.WebsiteID != "" {
		return Scope{Kind: ScopeWebsites, ID: s.WebsiteID}
	}
	return DefaultScope()
}

// SelectionFromParams reads the website and store parameters. Empty values
// and "0" count as absent.
func SelectionFromParams(params Params) Selection {
	if params == nil {
		return Selection{}
	}
	return Selection{
		WebsiteID: normalizeParam(params.Param(ParamWebsite)),
		StoreID:   normalizeParam(params.Param(ParamStore)),
	}
}

func normalizeParam(value string) string {
	value = strings.TrimSpace(value)
	if value == "0" {
		return ""
	}
	return value
}

// Request carries the state of one admin request: the selected scope and
// the fields already annotated with a path hint. It is not safe for
// concurrent use.
type Request struct {
	resolver  *Resolver
	selection Selection
	handled   map[*Field]struct{}
}

// ForRequest starts a request scoped hint session.
func (r *Resolver) ForRequest(params Params) *Request {
	return &Request{
		resolver:  r,
		selection: SelectionFromParams(params),
		handled:   make(map[*Field]struct{}),
	}
}

// Selection returns the selected scope context.
func (q *Request) Selection() Selection {
	return q.selection
}

// ensureImpliedWebsite records the owning website of the selected store once
// the store list is known.
func (q *Request) ensureImpliedWebsite(stores []Store) {
	if q.selection.StoreID == "" || q.selection.ImpliedWebsiteID != "" {
		return
	}
	for _, store := range stores {
		if store.ID == q.selection.StoreID {
			q.selection.ImpliedWebsiteID = store.WebsiteID
			return
		}
	}
}

func (q *Request) log(event LogEvent) {
	q.resolver.cfg.logger.LogHint(event)
}

func (q *Request) emit(ctx context.Context, event activity.Event) {
	if !q.resolver.emitter.Enabled() {
		return
	}
	if err := q.resolver.emitter.Emit(ctx, event); err != nil {
		q.log(LogEvent{Kind: LogKindActivity, Path: event.ObjectID, Err: err})
	}
}
