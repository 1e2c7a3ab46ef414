// Package ir provides the value model shared by parse trees and their
// flattened results.
//
// # Overview
//
// A grammar evaluator built from sequence, optional and repetition
// combinators produces a tree of tagged nodes whose leaves are text. The
// flatten package reduces such a tree to a result value that application
// code can use directly. Both the input tree and the result are ir.Node
// values.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - AtomType: text, optionally carrying the source position it was
//     matched at (see Kind)
//   - ListType: ordered, unnamed values
//   - MappingType: ordered, key-unique named values
//   - AbsentType: an optional that did not match, under a name
//   - TaggedType: an unreduced combinator node (input only)
//   - AccumulatorType: a key matched more than once, mid-fold only
//
// # Creating Nodes
//
//	seq := ir.Sequence(
//	    ir.FromString("("),
//	    ir.Single("x", ir.FromPos("12", ir.Pos{Offset: 1, Col: 1})),
//	    ir.FromString(")"),
//	)
//	list := ir.FromSlice([]*ir.Node{ir.FromString("a")})
//	m := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromString("1")}})
//
// # Structure Constraints
//
// For MappingType nodes, Fields[i] is the key for the value at Values[i].
// Keys are unique and their order is the order in which they were matched.
//
// For AccumulatorType nodes, Fields has exactly one entry. Accumulators are
// persistent: Append returns a new node. Materialize converts one into the
// mapping {key: [values...]}.
//
// # Comparison
//
// Compare orders nodes by type and then content; Equal is Compare == 0.
// Atoms compare by text alone.
//
// # JSON
//
// Nodes marshal to a self-describing JSON form, so input trees can be
// produced by tools in any language:
//
//	{"type": "Tagged", "tag": "sequence", "values": [{"type": "Atom", "text": "a"}]}
//
// # Thread Safety
//
// Nodes are not synchronized. The flatten package never mutates its input,
// so a tree may be flattened from several goroutines at once.
package ir
