package scopehint

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-scopehint/pkg/activity"
)

const (
	// TemplateWebsiteLine renders a website override hint.
	TemplateWebsiteLine = `Website <code>%1</code>: "%2"`
	// TemplateStoreLine renders a store override hint.
	TemplateStoreLine = `Store <code>%1</code>: "%2"`
)

// Tooltip appends one line per narrower scope whose value differs from the
// value at the selected scope. Website lines are only produced when viewing
// the default scope. Lookup failures drop the affected line.
func (q *Request) Tooltip(ctx context.Context, field *Field, result string) string {
	if field == nil {
		return result
	}
	start := time.Now()
	trace, err := q.walk(ctx, field)
	if err != nil {
		q.logErrors(err)
	}

	hints := trace.Lines()
	lines := append([]string{result}, hints...)
	for _, entry := range trace.Scopes {
		if entry.Line == "" {
			continue
		}
		q.emit(ctx, activity.BuildOverrideDetectedEvent(activity.HintEventInput{
			Path:      trace.Path,
			Scope:     scopeContext(entry.Scope),
			Value:     entry.Text,
			Baseline:  trace.Baseline.Text,
			Selection: selectionContext(q.selection),
		}))
	}

	out := joinLines(lines, q.resolver.cfg.separator)
	q.log(LogEvent{
		Kind:     LogKindTooltip,
		Path:     trace.Path,
		Scope:    trace.Baseline.Scope.String(),
		Lines:    len(hints),
		Duration: time.Since(start),
	})
	return out
}

// Trace reports the per scope comparison behind Tooltip. Collaborator errors
// are joined into the returned error while the remaining scopes are still
// traced.
func (q *Request) Trace(ctx context.Context, field *Field) (Trace, error) {
	if field == nil {
		return Trace{Selection: q.selection}, nil
	}
	return q.walk(ctx, field)
}

func (q *Request) walk(ctx context.Context, field *Field) (Trace, error) {
	path := FieldPath(field)
	reader := q.resolver.config
	scopes, listErr := q.candidates(ctx)

	baselineScope := q.selection.Baseline()
	trace := Trace{Path: path, Selection: q.selection}
	value, err := reader.Value(ctx, path, baselineScope)
	trace.Baseline = Provenance{Scope: baselineScope, Value: value}
	if err != nil {
		err = lookupError("baseline", path, baselineScope, err)
		trace.Baseline.Error = err.Error()
		return trace, errors.Join(listErr, err)
	}
	trace.Baseline.Composite = isComposite(value)
	if !trace.Baseline.Composite {
		trace.Baseline.Text = stringify(value)
	}

	errs := []error{listErr}
	trace.Scopes = make([]Provenance, 0, len(scopes))
	for _, scope := range scopes {
		entry, err := q.compare(ctx, field, path, scope, trace.Baseline)
		if err != nil {
			entry.Error = err.Error()
			errs = append(errs, err)
		}
		trace.Scopes = append(trace.Scopes, entry)
	}
	return trace, errors.Join(errs...)
}

// candidates lists the scopes eligible for an override line under the
// current selection, websites first.
func (q *Request) candidates(ctx context.Context) ([]Scope, error) {
	var (
		scopes []Scope
		errs   []error
	)
	if q.selection.IsGlobal() {
		websites, err := q.resolver.websites.Websites(ctx)
		if err != nil {
			errs = append(errs, lookupError("list websites", "", DefaultScope(), err))
		}
		for _, website := range websites {
			scopes = append(scopes, WebsiteScope(website))
		}
	}

	stores, err := q.resolver.stores.Stores(ctx)
	if err != nil {
		errs = append(errs, lookupError("list stores", "", DefaultScope(), err))
	}
	q.ensureImpliedWebsite(stores)
	for _, store := range stores {
		if q.selection.StoreID != "" && store.ID == q.selection.StoreID {
			continue
		}
		if q.selection.WebsiteID != "" && store.WebsiteID != q.selection.WebsiteID {
			continue
		}
		scopes = append(scopes, StoreScope(store))
	}
	return scopes, errors.Join(errs...)
}

func (q *Request) compare(ctx context.Context, field *Field, path string, scope Scope, baseline Provenance) (Provenance, error) {
	value, err := q.resolver.config.Value(ctx, path, scope)
	entry := Provenance{Scope: scope, Value: value}
	if err != nil {
		return entry, lookupError("value", path, scope, err)
	}
	entry.Composite = isComposite(value)
	if entry.Composite || baseline.Composite {
		return entry, nil
	}
	entry.Text = stringify(value)
	if entry.Text == baseline.Text {
		return entry, nil
	}
	entry.Override = true

	allowed, err := q.allowLine(field, scope, entry.Text, baseline.Text)
	if err != nil || !allowed {
		entry.Filtered = true
		return entry, err
	}
	entry.Line = q.renderLine(field, scope, entry.Text)
	return entry, nil
}

func (q *Request) allowLine(field *Field, scope Scope, value, baseline string) (bool, error) {
	rule := q.resolver.filter
	if rule == nil {
		return true, nil
	}
	result, err := rule.Evaluate(RuleContext{
		Field:     field,
		Scope:     scope,
		Selection: q.selection,
		Value:     value,
		Baseline:  baseline,
	})
	if err != nil {
		return false, err
	}
	return truthy(result), nil
}

func (q *Request) renderLine(field *Field, scope Scope, value string) string {
	cfg := q.resolver.cfg
	label := ResolveLabel(field, cfg.escaper.EscapeHTML(value))
	template := TemplateWebsiteLine
	if scope.Kind == ScopeStores {
		template = TemplateStoreLine
	}
	return cfg.formatter.Format(template, scope.Code, label)
}

func (q *Request) logErrors(err error) {
	if err == nil {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, inner := range joined.Unwrap() {
			q.logErrors(inner)
		}
		return
	}
	event := LogEvent{Kind: LogKindLookup, Err: err}
	var lookupErr *LookupError
	var ruleErr *RuleError
	switch {
	case errors.As(err, &lookupErr):
		event.Path = lookupErr.Path
		event.Scope = lookupErr.Scope.String()
		if lookupErr.Path == "" {
			event.Kind = LogKindDirectory
		}
	case errors.As(err, &ruleErr):
		event.Kind = LogKindRule
		event.Scope = ruleErr.Scope
	}
	q.log(event)
}

func joinLines(lines []string, separator string) string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, separator)
}

func scopeContext(scope Scope) activity.ScopeContext {
	return activity.ScopeContext{
		Kind:      string(scope.Kind),
		ID:        scope.ID,
		Code:      scope.Code,
		WebsiteID: scope.WebsiteID,
	}
}

func selectionContext(selection Selection) activity.SelectionContext {
	return activity.SelectionContext{
		WebsiteID:        selection.WebsiteID,
		StoreID:          selection.StoreID,
		ImpliedWebsiteID: selection.ImpliedWebsiteID,
	}
}
