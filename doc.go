// Package lae is a concurrent linear-algebra expression evaluator: it
// reads a tree of ADD/MULTIPLY/NEGATE/TRANSPOSE operators over matrix
// leaves, fans each operator's per-row work out across a fatigue-aware
// worker pool, and resolves the tree bottom-up.
//
// sharedmem holds the lock-disciplined matrix/vector storage, executor
// is the worker pool, compute is the expression tree, engine drives the
// two together, and treeio is the file-based glue. See cmd/lae for the
// process entry point.
package lae
