package ir

import "slices"

// Accumulate returns an accumulator collecting vs under key.
func Accumulate(key string, vs ...*Node) *Node {
	return &Node{
		Type:   AccumulatorType,
		Fields: []string{key},
		Values: slices.Clone(vs),
	}
}

// Key returns the key of an accumulator or of a single-entry mapping.
func (y *Node) Key() string {
	if len(y.Fields) == 0 {
		return ""
	}
	return y.Fields[0]
}

// Append returns a new accumulator with v added after y's values. y is
// left unchanged, so accumulators from separate folds never share storage.
func (y *Node) Append(v *Node) *Node {
	return &Node{
		Type:   AccumulatorType,
		Fields: []string{y.Key()},
		Values: append(slices.Clip(y.Values), v),
	}
}

// Materialize turns an accumulator into the mapping {key: [values...]}.
// Any other node is returned as is.
func (y *Node) Materialize() *Node {
	if y == nil || y.Type != AccumulatorType {
		return y
	}
	return Single(y.Key(), FromSlice(y.Values))
}
