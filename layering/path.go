package layering

import "strings"

// SplitPath splits a slash or dot separated path, dropping empty segments.
func SplitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '.'
	})
}

// Lookup returns the value stored at path. An empty path addresses the whole
// tree.
func Lookup(tree Tree, path string) (any, bool) {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return tree, tree != nil
	}
	var current any = tree
	for _, segment := range segments {
		node, ok := asTree(current)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Set stores value at path, creating intermediate maps and replacing scalar
// nodes that stand in the way. It returns the updated tree.
func Set(tree Tree, path string, value any) Tree {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return tree
	}
	if tree == nil {
		tree = Tree{}
	}
	node := tree
	for _, segment := range segments[:len(segments)-1] {
		child, ok := asTree(node[segment])
		if !ok {
			child = Tree{}
		}
		node[segment] = child
		node = child
	}
	node[segments[len(segments)-1]] = value
	return tree
}
