package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leafOf(t *testing.T, v float64) *Node {
	t.Helper()
	n, err := NewLeaf([][]float64{{v}})
	require.NoError(t, err)
	return n
}

func TestAssociativeNesting_FlattensAddChain(t *testing.T) {
	a, b, c, d := leafOf(t, 1), leafOf(t, 2), leafOf(t, 3), leafOf(t, 4)

	ab, _ := NewOperator(Add, a, b)
	abc, _ := NewOperator(Add, ab, c)
	chain, _ := NewOperator(Add, abc, d)

	root := chain.AssociativeNesting()

	require.False(t, root.IsLeaf())
	require.Equal(t, Add, root.Kind())
	require.Len(t, root.GetChildren(), 2)

	// Balanced: both children should themselves be non-leaf Add nodes
	// over 2 operands each, not a leaf and a 3-deep leftover chain.
	left, right := root.GetChildren()[0], root.GetChildren()[1]
	assert.False(t, left.IsLeaf())
	assert.False(t, right.IsLeaf())
	assert.Len(t, left.GetChildren(), 2)
	assert.Len(t, right.GetChildren(), 2)
}

func TestAssociativeNesting_PreservesOperandOrderForMultiply(t *testing.T) {
	a, b, c := leafOf(t, 1), leafOf(t, 2), leafOf(t, 3)

	ab, _ := NewOperator(Multiply, a, b)
	chain, _ := NewOperator(Multiply, ab, c)

	root := chain.AssociativeNesting()

	var collect func(n *Node) []*Node
	collect = func(n *Node) []*Node {
		if n.IsLeaf() {
			return []*Node{n}
		}
		var out []*Node
		for _, child := range n.GetChildren() {
			out = append(out, collect(child)...)
		}
		return out
	}

	ordered := collect(root)
	require.Len(t, ordered, 3)
	assert.Same(t, a, ordered[0])
	assert.Same(t, b, ordered[1])
	assert.Same(t, c, ordered[2])
}

func TestAssociativeNesting_LeavesShortChainsAlone(t *testing.T) {
	a, b := leafOf(t, 1), leafOf(t, 2)
	op, _ := NewOperator(Add, a, b)

	root := op.AssociativeNesting()
	assert.Same(t, op, root)
}

func TestAssociativeNesting_RecursesIntoUnrelatedKinds(t *testing.T) {
	a, b, c := leafOf(t, 1), leafOf(t, 2), leafOf(t, 3)
	ab, _ := NewOperator(Add, a, b)
	abc, _ := NewOperator(Add, ab, c)
	neg, _ := NewOperator(Negate, abc)

	root := neg.AssociativeNesting()
	require.Equal(t, Negate, root.Kind())
	inner := root.GetChildren()[0]
	assert.Equal(t, Add, inner.Kind())
	assert.Len(t, inner.GetChildren(), 2)
}
