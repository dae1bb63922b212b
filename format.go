package valis

import "sort"

// ErrorsKey is the leaf sentinel under which an ErrorTree node's own
// messages appear when the tree is rendered as a map.
const ErrorsKey = "_errors"

// ErrorTree groups issues into a nested tree keyed by path segment.
// Messages at a node's exact path live in Errors; deeper issues live in
// Children, keyed by the segment's string form (indices in decimal).
// Root-level (empty-path) issues land in the root node's Errors.
type ErrorTree struct {
	Errors   []string
	Children map[string]*ErrorTree
}

// TreeOf folds issues into an ErrorTree. An empty issue list yields an
// empty tree. The tree is a derived view: recomputed from the issues, never
// cached by the validation itself.
func TreeOf(iss Issues) *ErrorTree {
	root := &ErrorTree{}
	for _, it := range iss {
		node := root
		for _, seg := range it.Path {
			key := seg.String()
			if node.Children == nil {
				node.Children = map[string]*ErrorTree{}
			}
			child, ok := node.Children[key]
			if !ok {
				child = &ErrorTree{}
				node.Children[key] = child
			}
			node = child
		}
		node.Errors = append(node.Errors, it.Message)
	}
	return root
}

// At walks the tree along path and returns the node there, or nil when the
// path has no recorded issues beneath it.
func (t *ErrorTree) At(path ...Segment) *ErrorTree {
	node := t
	for _, seg := range path {
		if node == nil || node.Children == nil {
			return nil
		}
		node = node.Children[seg.String()]
	}
	return node
}

// FirstAt returns the first message recorded exactly at path.
func (t *ErrorTree) FirstAt(path ...Segment) (string, bool) {
	node := t.At(path...)
	if node == nil || len(node.Errors) == 0 {
		return "", false
	}
	return node.Errors[0], true
}

// HasErrors reports whether any message exists at this node or below.
func (t *ErrorTree) HasErrors() bool {
	if t == nil {
		return false
	}
	if len(t.Errors) > 0 {
		return true
	}
	for _, c := range t.Children {
		if c.HasErrors() {
			return true
		}
	}
	return false
}

// AsMap renders the tree in its wire form: child segments as keys plus the
// "_errors" sentinel holding this node's own messages.
func (t *ErrorTree) AsMap() map[string]any {
	out := map[string]any{ErrorsKey: append([]string{}, t.Errors...)}
	for k, c := range t.Children {
		out[k] = c.AsMap()
	}
	return out
}

// Flatten returns every message in issue order.
func Flatten(iss Issues) []string {
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.Message)
	}
	return out
}

// GroupByPointer groups messages by the JSON Pointer rendering of their
// paths, preserving per-path issue order.
func GroupByPointer(iss Issues) map[string][]string {
	out := map[string][]string{}
	for _, it := range iss {
		p := it.Path.Pointer()
		out[p] = append(out[p], it.Message)
	}
	return out
}

// Pointers returns the distinct pointers present in iss in ascending order.
func Pointers(iss Issues) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		p := it.Path.Pointer()
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
