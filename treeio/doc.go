// Package treeio reads an expression tree description from a JSON file
// into a compute.Node, and writes a resolved result matrix back out to
// JSON. This is the file-based glue around the engine; the wire format is
// this package's own design, not dictated by any particular caller.
package treeio
