package scopehint

import (
	"errors"
	"fmt"
)

// LookupError records a collaborator failure while resolving a hint. Hint
// operations never return it; it is delivered to the Logger.
type LookupError struct {
	Op    string
	Path  string
	Scope Scope
	Err   error
}

func (e *LookupError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path == "" {
		return fmt.Sprintf("scopehint: %s scope=%s: %v", e.Op, e.Scope, e.Err)
	}
	return fmt.Sprintf("scopehint: %s path=%q scope=%s: %v", e.Op, e.Path, e.Scope, e.Err)
}

func (e *LookupError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RuleError captures line filter evaluation metadata alongside the cause.
type RuleError struct {
	Engine string
	Expr   string
	Scope  string
	Err    error
}

func (e *RuleError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("scopehint: %s evaluator %s scope=%s: %v", e.Engine, describeExpression(e.Expr), e.Scope, e.Err)
}

func (e *RuleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func describeExpression(expr string) string {
	if expr == "" {
		return "expr=<empty>"
	}
	return fmt.Sprintf("expr=%q", expr)
}

// wrapRuleError wraps err into a RuleError, filling blank metadata on an
// existing RuleError without overwriting what is already set.
func wrapRuleError(engine, expr, scope string, err error) error {
	if err == nil {
		return nil
	}
	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		if ruleErr.Engine == "" {
			ruleErr.Engine = engine
		}
		if ruleErr.Expr == "" {
			ruleErr.Expr = expr
		}
		if ruleErr.Scope == "" {
			ruleErr.Scope = scope
		}
		return err
	}
	return &RuleError{Engine: engine, Expr: expr, Scope: scope, Err: err}
}

func lookupError(op, path string, scope Scope, err error) error {
	if err == nil {
		return nil
	}
	return &LookupError{Op: op, Path: path, Scope: scope, Err: err}
}
