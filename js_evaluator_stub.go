//go:build !js_eval

package scopehint

// NewJSEvaluator is unavailable without the js_eval build tag and returns
// nil. New reports ErrNoEvaluator when a line filter is paired with it.
func NewJSEvaluator(opts ...JSEvaluatorOption) Evaluator {
	_ = applyJSEvaluatorOptions(opts)
	return nil
}

func jsEvaluatorAvailable() bool {
	return false
}
