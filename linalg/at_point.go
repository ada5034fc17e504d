package linalg

import (
	"github.com/dhamidi/mathpad/linalg/parser"
)

// NodeAtPoint returns the innermost node whose span contains offset, or nil
// if offset lies outside the tree. A caret right after a node counts as being
// on it.
func NodeAtPoint(root parser.Expr, offset int) parser.Expr {
	path := PathAtPoint(root, offset)
	if len(path) == 0 {
		return nil
	}
	return path[len(path)-1]
}

// PathAtPoint returns the chain of nodes from root down to the innermost node
// containing offset.
func PathAtPoint(root parser.Expr, offset int) []parser.Expr {
	if root == nil || !root.Span().Contains(offset) {
		return nil
	}
	path := []parser.Expr{root}
	node := root
	for {
		next := childAtPoint(node, offset)
		if next == nil {
			return path
		}
		path = append(path, next)
		node = next
	}
}

// childAtPoint picks the child containing offset. When a caret sits on the
// boundary between two children, a placeholder wins, then the later child,
// so that typing after "1," lands in the slot the comma created.
func childAtPoint(node parser.Expr, offset int) parser.Expr {
	var found parser.Expr
	for _, child := range parser.Children(node) {
		if !child.Span().Contains(offset) {
			continue
		}
		if found != nil && parser.IsPlaceholder(found) && !parser.IsPlaceholder(child) {
			continue
		}
		found = child
	}
	return found
}

// Placeholders returns every placeholder in root in source order.
func Placeholders(root parser.Expr) []parser.Placeholder {
	var out []parser.Placeholder
	parser.Walk(root, func(e parser.Expr) bool {
		if p, ok := e.(parser.Placeholder); ok {
			out = append(out, p)
		}
		return true
	})
	return out
}

// NextPlaceholder returns the first placeholder starting after offset.
func NextPlaceholder(root parser.Expr, offset int) (parser.Placeholder, bool) {
	for _, p := range Placeholders(root) {
		if p.Loc.Start > offset {
			return p, true
		}
	}
	return parser.Placeholder{}, false
}

// PrevPlaceholder returns the last placeholder starting before offset.
func PrevPlaceholder(root parser.Expr, offset int) (parser.Placeholder, bool) {
	var prev parser.Placeholder
	found := false
	for _, p := range Placeholders(root) {
		if p.Loc.Start >= offset {
			break
		}
		prev, found = p, true
	}
	return prev, found
}
