package compute

// AssociativeNesting flattens left-leaning chains of ADD or MULTIPLY
// nodes (e.g. ((a+b)+c)+d) into a balanced binary tree over the same
// operands, preserving left-to-right order (required because MULTIPLY is
// not commutative, only associative). A chain of N operands keeps N-1
// operator nodes but its depth drops from N-1 to about log2(N). The
// engine still resolves one node per round, so the number of rounds for
// the chain is unchanged; independent subtrees are not evaluated
// concurrently.
//
// Already-resolved Operator nodes are treated as operands and not
// flattened, so their results are reused.
//
// Applied once per tree, bottom-up, before the first findResolvable call.
// Returns the (possibly different) root; callers must use the return
// value, since flattening the root itself produces a new node.
func (n *Node) AssociativeNesting() *Node {
	if n.isLeaf {
		return n
	}

	if n.kind == Add || n.kind == Multiply {
		operands := collectChain(n, n.kind)
		if len(operands) > 2 {
			processed := make([]*Node, len(operands))
			for i, o := range operands {
				processed[i] = o.AssociativeNesting()
			}

			return buildBalanced(n.kind, processed)
		}
	}

	newChildren := make([]*Node, len(n.children))
	for i, c := range n.children {
		newChildren[i] = c.AssociativeNesting()
	}
	n.children = newChildren

	return n
}

// collectChain walks n, descending through nested Operators of kind,
// collecting their non-matching (or leaf) operands in left-to-right order.
func collectChain(n *Node, kind Kind) []*Node {
	if n.isLeaf || n.kind != kind || n.IsResolved() {
		return []*Node{n}
	}

	var operands []*Node
	for _, c := range n.children {
		operands = append(operands, collectChain(c, kind)...)
	}

	return operands
}

// buildBalanced rebuilds a balanced binary Operator tree of kind over
// operands without reordering them.
func buildBalanced(kind Kind, operands []*Node) *Node {
	if len(operands) == 1 {
		return operands[0]
	}

	mid := len(operands) / 2
	left := buildBalanced(kind, operands[:mid])
	right := buildBalanced(kind, operands[mid:])

	node, err := NewOperator(kind, left, right)
	if err != nil {
		// left and right are always non-nil Nodes and kind is always
		// Add or Multiply here, so NewOperator cannot actually fail.
		panic("compute: buildBalanced: unexpected NewOperator error: " + err.Error())
	}

	return node
}
