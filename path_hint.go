package scopehint

import (
	"context"

	"github.com/goliatone/go-scopehint/pkg/activity"
)

// TemplatePathHint renders the path hint body.
const TemplatePathHint = `Path: <code>%1</code>`

// FieldData injects the path hint into result when the show path flag is
// enabled. Each field identity is annotated at most once per Request, which
// keeps re-entrant plugin chains from recomputing it.
func (q *Request) FieldData(ctx context.Context, field *Field, result map[string]any) map[string]any {
	if field == nil {
		return result
	}
	cfg := q.resolver.cfg
	enabled, err := q.resolver.config.Flag(ctx, cfg.showPathFlag)
	if err != nil {
		q.log(LogEvent{
			Kind:  LogKindFlag,
			Path:  cfg.showPathFlag,
			Scope: DefaultScope().String(),
			Err:   lookupError("flag", cfg.showPathFlag, DefaultScope(), err),
		})
		return result
	}
	if !enabled {
		return result
	}
	if q.Processed(field) {
		return result
	}
	q.handled[field] = struct{}{}

	path := FieldPath(field)
	if result == nil {
		result = make(map[string]any, 1)
	}
	result[PathHintKey] = "<small>" + cfg.formatter.Format(TemplatePathHint, cfg.escaper.EscapeHTML(path)) + "</small>"

	q.log(LogEvent{Kind: LogKindPathHint, Path: path})
	q.emit(ctx, activity.BuildPathAnnotatedEvent(activity.HintEventInput{
		Path:      path,
		FieldID:   field.ID,
		Selection: selectionContext(q.selection),
	}))
	return result
}

// Processed reports whether field already received its path hint in this
// request.
func (q *Request) Processed(field *Field) bool {
	_, ok := q.handled[field]
	return ok
}
