package flatten

import (
	"fmt"
	"slices"

	"github.com/signadot/pegfold/debug"
	"github.com/signadot/pegfold/ir"
)

// repetition reduces the per-iteration results of a repeated parser.
//
// Named results win: the mappings are kept as a list and the text between
// them is dropped (name it to keep it). Otherwise nested lists are flattened
// by one level. Only text left means the text is concatenated, except that
// zero iterations under a name give an empty list.
func (f *flattener) repetition(items []*ir.Node, named bool) (*ir.Node, error) {
	if debug.Repetition() {
		debug.Logf("repetition: %s (named=%t)\n", items, named)
	}
	if slices.ContainsFunc(items, isType(ir.MappingType)) {
		return ir.FromSlice(filter(items, isType(ir.MappingType))), nil
	}
	if slices.ContainsFunc(items, isType(ir.ListType)) {
		var res []*ir.Node
		for _, item := range filter(items, isType(ir.ListType)) {
			res = append(res, item.Values...)
		}
		return ir.FromSlice(res), nil
	}
	if named && len(items) == 0 {
		return ir.FromSlice(nil), nil
	}
	return foldl(compact(items), concatText)
}

func concatText(l, r *ir.Node) (*ir.Node, error) {
	if l.Type != ir.AtomType || r.Type != ir.AtomType {
		return nil, fmt.Errorf("%w: repeated %s and %s", ErrUnhandledMergeCase, l.Type, r.Type)
	}
	return concatAtoms(l, r), nil
}

func isType(t ir.Type) func(*ir.Node) bool {
	return func(y *ir.Node) bool {
		return y != nil && y.Type == t
	}
}

func filter(items []*ir.Node, keep func(*ir.Node) bool) []*ir.Node {
	res := make([]*ir.Node, 0, len(items))
	for _, item := range items {
		if keep(item) {
			res = append(res, item)
		}
	}
	return res
}
