// Package layering merges scoped configuration trees and addresses values
// inside them by path.
package layering

// Tree is a nested configuration document as stored for one scope.
type Tree = map[string]any

// MergeLayers composes trees ordered from strongest to weakest. Nested maps
// are merged key by key; any other value set in a stronger tree replaces the
// weaker one wholesale. Inputs are never mutated.
func MergeLayers(layers ...Tree) Tree {
	if len(layers) == 0 {
		return nil
	}
	merged := Clone(layers[len(layers)-1])
	for i := len(layers) - 2; i >= 0; i-- {
		merged = mergeTree(layers[i], merged)
	}
	return merged
}

func mergeTree(strong, weak Tree) Tree {
	if strong == nil {
		return weak
	}
	result := make(Tree, len(strong)+len(weak))
	for key, value := range weak {
		result[key] = value
	}
	for key, value := range strong {
		strongChild, strongIsTree := asTree(value)
		weakChild, weakIsTree := asTree(result[key])
		if strongIsTree && weakIsTree {
			result[key] = mergeTree(strongChild, weakChild)
			continue
		}
		result[key] = cloneValue(value)
	}
	return result
}

// Clone deep copies a tree including nested maps and slices.
func Clone(tree Tree) Tree {
	if tree == nil {
		return nil
	}
	out := make(Tree, len(tree))
	for key, value := range tree {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return Clone(v)
	case map[any]any:
		child, _ := asTree(v)
		return Clone(child)
	case []any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = cloneValue(v[i])
		}
		return out
	default:
		return value
	}
}

// asTree normalises map shapes produced by JSON and YAML decoders.
func asTree(value any) (Tree, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(Tree, len(v))
		for key, child := range v {
			if name, ok := key.(string); ok {
				out[name] = child
			}
		}
		return out, true
	default:
		return nil, false
	}
}
