package ast

// Visit walks n and its descendants in source order, calling pre before
// descending into a node's children and post after (spec §4.C3 "Tree
// traversal"). Either callback may be nil. Returning false from pre skips
// that node's children (but post, if non-nil, is still invoked for n
// itself, to let a caller balance enter/exit bookkeeping).
func Visit(n Node, pre, post func(Node) bool) {
	if n == nil {
		return
	}
	descend := true
	if pre != nil {
		descend = pre(n)
	}
	if descend {
		for _, child := range n.Children() {
			Visit(child, pre, post)
		}
	}
	if post != nil {
		post(n)
	}
}

// PreOrder calls visit for n and every descendant, parent before children.
func PreOrder(n Node, visit func(Node)) {
	Visit(n, func(node Node) bool {
		visit(node)
		return true
	}, nil)
}

// PostOrder calls visit for n and every descendant, children before parent.
func PostOrder(n Node, visit func(Node)) {
	Visit(n, nil, func(node Node) bool {
		visit(node)
		return true
	})
}

// ChildCount returns len(n.Children()) without allocating when n has no
// children.
func ChildCount(n Node) int {
	if n == nil {
		return 0
	}
	return len(n.Children())
}

// ChildAt returns n's i'th child, per Children()'s source order.
func ChildAt(n Node, i int) Node {
	return n.Children()[i]
}
