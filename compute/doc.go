// Package compute defines the expression tree the engine evaluates: a node
// is either a Leaf carrying a materialized matrix, or an Operator with a
// kind and ordered children. Trees are built once by a parser and then
// driven to full resolution by repeatedly finding and resolving the
// deepest ready node.
package compute
