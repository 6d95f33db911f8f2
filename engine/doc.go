// Package engine drives a compute.Node expression tree to full
// resolution: it repeatedly finds the deepest resolvable node, loads its
// operands into a pair of sharedmem.SharedMatrix buffers, fans the
// operation out across an executor.Executor one row at a time, and reads
// the result back once every row task has drained.
package engine
