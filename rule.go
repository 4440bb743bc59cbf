package scopehint

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoEvaluator indicates a line filter was configured but no evaluator is
// available for it.
var ErrNoEvaluator = errors.New("scopehint: evaluator not configured")

// RuleContext carries the inputs of a line filter evaluation.
type RuleContext struct {
	Field     *Field
	Scope     Scope
	Selection Selection
	Value     string
	Baseline  string
	Now       *time.Time
	Args      map[string]any
}

func (ctx RuleContext) withDefaults() RuleContext {
	if ctx.Now == nil {
		now := time.Now()
		ctx.Now = &now
	}
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	return ctx
}

func (ctx RuleContext) timestamp() time.Time {
	ctx = ctx.withDefaults()
	return *ctx.Now
}

func (ctx RuleContext) scopeLabel() string {
	return ctx.Scope.String()
}

// bindings returns the variables visible to rule expressions.
func (ctx RuleContext) bindings() map[string]any {
	field := map[string]any{"id": "", "path": "", "type": ""}
	if ctx.Field != nil {
		field["id"] = ctx.Field.ID
		field["path"] = FieldPath(ctx.Field)
		field["type"] = string(ctx.Field.Type)
	}
	return map[string]any{
		"now":  ctx.timestamp(),
		"args": ctx.Args,
		"scope": map[string]any{
			"kind":       string(ctx.Scope.Kind),
			"id":         ctx.Scope.ID,
			"code":       ctx.Scope.Code,
			"website_id": ctx.Scope.WebsiteID,
			"label":      ctx.Scope.Label(),
		},
		"field":    field,
		"value":    ctx.Value,
		"baseline": ctx.Baseline,
		"selection": map[string]any{
			"website": ctx.Selection.WebsiteID,
			"store":   ctx.Selection.StoreID,
		},
	}
}

// Evaluator executes rule expressions against a rule context.
type Evaluator interface {
	Evaluate(ctx RuleContext, expr string) (any, error)
	Compile(expr string) (CompiledRule, error)
}

// CompiledRule is a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx RuleContext) (any, error)
}

// ProgramCache stores compiled expression programs keyed by expression.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// WithProgramCache registers a program cache used by the built-in evaluators.
func WithProgramCache(cache ProgramCache) Option {
	return func(cfg *config) {
		cfg.programCache = cache
	}
}

// resolveEvaluator returns the configured evaluator or builds the default expr
// evaluator wired with the cache and function registry. An explicitly
// configured nil evaluator stays nil.
func (cfg config) resolveEvaluator() Evaluator {
	if cfg.evaluatorSet {
		return cfg.evaluator
	}
	var exprOpts []ExprEvaluatorOption
	if cfg.programCache != nil {
		exprOpts = append(exprOpts, ExprWithProgramCache(cfg.programCache))
	}
	if cfg.functions != nil {
		exprOpts = append(exprOpts, ExprWithFunctionRegistry(cfg.functions))
	}
	return NewExprEvaluator(exprOpts...)
}

func evaluatorEngineName(e Evaluator) string {
	switch e.(type) {
	case nil:
		return "unknown"
	case *exprEvaluator:
		return "expr"
	case *celEvaluator:
		return "cel"
	default:
		if jsEvaluatorAvailable() && fmt.Sprintf("%T", e) == "*scopehint.jsEvaluator" {
			return "js"
		}
		return "custom"
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case nil:
		return false
	case string:
		return v != "" && v != "0"
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}
