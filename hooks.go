package scopehint

import "context"

// TooltipHook runs after the host computed a field tooltip.
type TooltipHook interface {
	AfterTooltip(ctx context.Context, field *Field, result string) string
}

// DataHook runs after the host computed the field data map.
type DataHook interface {
	AfterData(ctx context.Context, field *Field, result map[string]any) map[string]any
}

// TooltipHookFunc adapts a function to TooltipHook.
type TooltipHookFunc func(ctx context.Context, field *Field, result string) string

// AfterTooltip implements TooltipHook.
func (fn TooltipHookFunc) AfterTooltip(ctx context.Context, field *Field, result string) string {
	if fn == nil {
		return result
	}
	return fn(ctx, field, result)
}

// DataHookFunc adapts a function to DataHook.
type DataHookFunc func(ctx context.Context, field *Field, result map[string]any) map[string]any

// AfterData implements DataHook.
func (fn DataHookFunc) AfterData(ctx context.Context, field *Field, result map[string]any) map[string]any {
	if fn == nil {
		return result
	}
	return fn(ctx, field, result)
}

// AfterTooltip lets a Request sit in a host plugin chain.
func (q *Request) AfterTooltip(ctx context.Context, field *Field, result string) string {
	return q.Tooltip(ctx, field, result)
}

// AfterData lets a Request sit in a host plugin chain.
func (q *Request) AfterData(ctx context.Context, field *Field, result map[string]any) map[string]any {
	return q.FieldData(ctx, field, result)
}

// Chain applies registered plugins in order around the host accessors.
// Plugins implementing neither hook interface are ignored.
type Chain struct {
	tooltip []TooltipHook
	data    []DataHook
}

// NewChain sorts plugins into tooltip and data hooks.
func NewChain(plugins ...any) *Chain {
	chain := &Chain{}
	for _, plugin := range plugins {
		if plugin == nil {
			continue
		}
		if hook, ok := plugin.(TooltipHook); ok {
			chain.tooltip = append(chain.tooltip, hook)
		}
		if hook, ok := plugin.(DataHook); ok {
			chain.data = append(chain.data, hook)
		}
	}
	return chain
}

// Tooltip starts from field.Tooltip and threads it through every hook.
func (c *Chain) Tooltip(ctx context.Context, field *Field) string {
	if field == nil {
		return ""
	}
	result := field.Tooltip
	if c == nil {
		return result
	}
	for _, hook := range c.tooltip {
		result = hook.AfterTooltip(ctx, field, result)
	}
	return result
}

// Data threads base through every data hook. base is copied first so the
// caller's map is left untouched.
func (c *Chain) Data(ctx context.Context, field *Field, base map[string]any) map[string]any {
	result := make(map[string]any, len(base)+1)
	for key, value := range base {
		result[key] = value
	}
	if c == nil {
		return result
	}
	for _, hook := range c.data {
		result = hook.AfterData(ctx, field, result)
	}
	return result
}
