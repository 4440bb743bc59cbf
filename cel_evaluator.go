package scopehint

import (
	"fmt"
	"reflect"

	celgo "github.com/google/cel-go/cel"
	functions "github.com/google/cel-go/common/functions"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
)

// CELEvaluatorOption configures the CEL evaluator.
type CELEvaluatorOption func(*celEvaluator)

// CELWithProgramCache wires a ProgramCache into the CEL evaluator.
func CELWithProgramCache(cache ProgramCache) CELEvaluatorOption {
	return func(e *celEvaluator) {
		e.cache = cache
	}
}

// CELWithFunctionRegistry wires a FunctionRegistry into the CEL evaluator.
func CELWithFunctionRegistry(registry *FunctionRegistry) CELEvaluatorOption {
	return func(e *celEvaluator) {
		if registry == nil {
			return
		}
		e.registry = registry.Clone()
	}
}

type celEvaluator struct {
	cache    ProgramCache
	registry *FunctionRegistry
}

// NewCELEvaluator constructs an Evaluator backed by cel-go.
func NewCELEvaluator(opts ...CELEvaluatorOption) Evaluator {
	e := &celEvaluator{}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

func (e *celEvaluator) Evaluate(ctx RuleContext, expression string) (any, error) {
	if expression == "" {
		return nil, wrapRuleError("cel", "", "", fmt.Errorf("expression must not be empty"))
	}
	program, err := e.loadOrCompile(expression)
	if err != nil {
		return nil, err
	}
	return e.run(program, expression, ctx)
}

func (e *celEvaluator) Compile(expression string) (CompiledRule, error) {
	if expression == "" {
		return nil, wrapRuleError("cel", "", "", fmt.Errorf("expression must not be empty"))
	}
	program, err := e.loadOrCompile(expression)
	if err != nil {
		return nil, err
	}
	return &celCompiledRule{evaluator: e, program: program, expression: expression}, nil
}

func (e *celEvaluator) run(program celgo.Program, expression string, ctx RuleContext) (any, error) {
	ctx = ctx.withDefaults()
	out, _, err := program.Eval(ctx.bindings())
	if err != nil {
		return nil, wrapRuleError("cel", expression, ctx.scopeLabel(), err)
	}
	return out.Value(), nil
}

func (e *celEvaluator) loadOrCompile(expression string) (celgo.Program, error) {
	if e.cache != nil {
		if cached, ok := e.cache.Get(expression); ok {
			if program, ok := cached.(celgo.Program); ok {
				return program, nil
			}
		}
	}
	env, err := e.buildEnv()
	if err != nil {
		return nil, wrapRuleError("cel", expression, "", err)
	}
	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, wrapRuleError("cel", expression, "", issues.Err())
	}
	program, err := env.Program(ast)
	if err != nil {
		return nil, wrapRuleError("cel", expression, "", err)
	}
	if e.cache != nil {
		e.cache.Set(expression, program)
	}
	return program, nil
}

func (e *celEvaluator) buildEnv() (*celgo.Env, error) {
	opts := []celgo.EnvOption{
		celgo.Variable("now", celgo.TimestampType),
		celgo.Variable("args", celgo.DynType),
		celgo.Variable("scope", celgo.MapType(celgo.StringType, celgo.DynType)),
		celgo.Variable("field", celgo.MapType(celgo.StringType, celgo.DynType)),
		celgo.Variable("selection", celgo.MapType(celgo.StringType, celgo.DynType)),
		celgo.Variable("value", celgo.StringType),
		celgo.Variable("baseline", celgo.StringType),
	}
	if e.registry != nil {
		opts = append(opts, celgo.Function("call",
			celgo.Overload("call_dyn",
				[]*celgo.Type{celgo.StringType, celgo.ListType(celgo.DynType)},
				celgo.DynType,
				celgo.FunctionBinding(functions.FunctionOp(e.callBinding())),
			),
		))
	}
	return celgo.NewEnv(opts...)
}

type celCompiledRule struct {
	evaluator  *celEvaluator
	program    celgo.Program
	expression string
}

func (r *celCompiledRule) Evaluate(ctx RuleContext) (any, error) {
	return r.evaluator.run(r.program, r.expression, ctx)
}

// callBinding dispatches call(name, [args...]) to the function registry.
func (e *celEvaluator) callBinding() func(...ref.Val) ref.Val {
	return func(values ...ref.Val) ref.Val {
		if len(values) != 2 {
			return types.NewErr("scopehint: call requires a name and an argument list")
		}
		name, ok := values[0].Value().(string)
		if !ok {
			return types.NewErr("scopehint: call name must be string")
		}
		native, err := values[1].ConvertToNative(reflect.TypeOf([]any{}))
		if err != nil {
			return types.NewErr("%s", err.Error())
		}
		args, _ := native.([]any)
		result, err := e.registry.Call(name, args...)
		if err != nil {
			return types.NewErr("%s", err.Error())
		}
		if result == nil {
			return types.NullValue
		}
		return types.DefaultTypeAdapter.NativeToValue(result)
	}
}
