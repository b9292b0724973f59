package ast

// Walk traverses the tree rooted at v in depth-first pre-order, calling fn
// for every value node. If fn returns false the node's children are
// skipped. Traversal is read-only.
func Walk(v Value, fn func(Value) bool) {
	if v == nil || !fn(v) {
		return
	}
	for _, child := range Children(v) {
		Walk(child, fn)
	}
}

// Children returns the direct child values of v in source order. Field and
// map keys count as children.
func Children(v Value) []Value {
	switch n := v.(type) {
	case *Option:
		if n.Inner == nil {
			return nil
		}
		return []Value{n.Inner}
	case *Sequence:
		return n.Elements
	case *Tuple:
		return n.Elements
	case *NamedFields:
		children := make([]Value, 0, len(n.Fields))
		for i := range n.Fields {
			children = append(children, n.Fields[i].Value)
		}
		return children
	case *Map:
		children := make([]Value, 0, 2*len(n.Entries))
		for i := range n.Entries {
			children = append(children, n.Entries[i].Key, n.Entries[i].Value)
		}
		return children
	default:
		return nil
	}
}
