package flatten

import (
	"fmt"
	"slices"

	"github.com/signadot/pegfold/debug"
	"github.com/signadot/pegfold/ir"
)

type flattener struct {
	cfg *Config
}

// Flatten reduces a tagged tree to a result value.
//
// named is set when the result will be stored under a key by a named
// capture (see As). It changes what an unmatched optional and an empty
// repetition reduce to: absence and an empty list rather than empty text.
//
// Nodes that are not tagged are returned unchanged. node is never
// modified, though untouched subtrees may be shared with the result.
func Flatten(node *ir.Node, named bool, opts ...Option) (*ir.Node, error) {
	f := &flattener{cfg: newConfig(opts)}
	return f.flatten(node, named)
}

func (f *flattener) flatten(node *ir.Node, named bool) (*ir.Node, error) {
	if node == nil || node.Type != ir.TaggedType {
		return node, nil
	}
	if !node.Tag.Valid() {
		return nil, fmt.Errorf("%w %s", ErrUnrecognizedTag, node.Tag)
	}
	if debug.Flatten() {
		debug.Logf("flatten: %s (named=%t)\n", node, named)
	}
	children := make([]*ir.Node, len(node.Values))
	for i, child := range node.Values {
		flat, err := f.flatten(child, false)
		if err != nil {
			return nil, err
		}
		children[i] = flat
	}

	var (
		res *ir.Node
		err error
	)
	switch node.Tag {
	case ir.SequenceTag:
		res, err = f.sequence(children)
	case ir.OptionalTag:
		res = optional(children, named)
	case ir.RepetitionTag:
		res, err = f.repetition(children, named)
	default:
		return nil, fmt.Errorf("%w %s", ErrUnrecognizedTag, node.Tag)
	}
	if err != nil {
		return nil, err
	}
	if debug.Flatten() {
		debug.Logf("flatten: %s -> %s\n", node.Tag, res)
	}
	return res, nil
}

// sequence merges the results of "a >> b >> c". Text alone concatenates;
// named results merge into one mapping, and a name matched again becomes a
// list under that name.
func (f *flattener) sequence(children []*ir.Node) (*ir.Node, error) {
	res, err := foldl(compact(children), f.merge)
	if err != nil {
		return nil, err
	}
	return res.Materialize(), nil
}

func optional(children []*ir.Node, named bool) *ir.Node {
	var first *ir.Node
	if len(children) != 0 {
		first = children[0]
	}
	if named {
		if first == nil {
			return ir.Absent()
		}
		return first
	}
	if isAbsent(first) {
		return ir.FromString("")
	}
	return first
}

// foldl folds list from the left, seeding with its first element. An empty
// list folds to empty text.
func foldl(list []*ir.Node, f func(l, r *ir.Node) (*ir.Node, error)) (*ir.Node, error) {
	if len(list) == 0 {
		return ir.FromString(""), nil
	}
	acc := list[0]
	for _, r := range list[1:] {
		var err error
		acc, err = f(acc, r)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func isAbsent(y *ir.Node) bool {
	return y == nil || y.Type == ir.AbsentType
}

// compact returns list without absent values.
func compact(list []*ir.Node) []*ir.Node {
	if !slices.ContainsFunc(list, isAbsent) {
		return list
	}
	return slices.DeleteFunc(slices.Clone(list), isAbsent)
}
