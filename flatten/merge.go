package flatten

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/pegfold/debug"
	"github.com/signadot/pegfold/ir"
)

// merge combines two adjacent results of a sequence.
//
// Same-typed results combine: lists and text concatenate, mappings merge
// key-wise. A key matched once on each side escalates to an accumulator,
// which absorbs further single matches of that key. Text next to structure
// is dropped, and a mapping next to a list joins it as an element.
func (f *flattener) merge(l, r *ir.Node) (*ir.Node, error) {
	if debug.Merge() {
		debug.Logf("merge: %s <- %s\n", l, r)
	}
	// accumulators only ever come from the left side of the fold
	r = r.Materialize()

	if l.Type == ir.AccumulatorType {
		switch r.Type {
		case ir.MappingType:
			return absorb(l, r)
		case ir.AtomType:
			return l, nil
		default:
			l = l.Materialize()
		}
	}

	if l.Type == r.Type {
		switch l.Type {
		case ir.MappingType:
			return f.mergeMappings(l, r)
		case ir.ListType:
			return ir.FromSlice(slices.Concat(l.Values, r.Values)), nil
		case ir.AtomType:
			return concatAtoms(l, r), nil
		}
	}

	switch {
	case l.Type == ir.AtomType && r.Type.IsStructured():
		return r, nil
	case r.Type == ir.AtomType && l.Type.IsStructured():
		return l, nil
	case l.Type == ir.ListType && r.Type == ir.MappingType:
		return ir.FromSlice(slices.Concat(l.Values, []*ir.Node{r})), nil
	case l.Type == ir.MappingType && r.Type == ir.ListType:
		return ir.FromSlice(slices.Concat([]*ir.Node{l}, r.Values)), nil
	}
	return nil, fmt.Errorf("%w: %s and %s", ErrUnhandledMergeCase, l.Type, r.Type)
}

// absorb adds the value of the single-entry mapping m to acc.
func absorb(acc, m *ir.Node) (*ir.Node, error) {
	switch len(m.Fields) {
	case 0:
		return acc, nil
	case 1:
	default:
		return nil, fmt.Errorf("%w: repeated %q followed by %s", ErrUnmergeableKeys, acc.Key(), m)
	}
	if m.Key() != acc.Key() {
		return nil, fmt.Errorf("%w: repeated %q followed by %q", ErrUnmergeableKeys, acc.Key(), m.Key())
	}
	return acc.Append(m.Values[0]), nil
}

func (f *flattener) mergeMappings(l, r *ir.Node) (*ir.Node, error) {
	res := &ir.Node{
		Type:   ir.MappingType,
		Fields: slices.Clone(l.Fields),
		Values: slices.Clone(l.Values),
	}
	var conflicts []string
	for i, key := range r.Fields {
		j := res.Index(key)
		switch {
		case j < 0:
			res.Fields = append(res.Fields, key)
			res.Values = append(res.Values, r.Values[i])
		case ir.Equal(res.Values[j], r.Values[i]):
		default:
			conflicts = append(conflicts, key)
		}
	}
	if len(conflicts) == 0 {
		return res, nil
	}
	if len(l.Fields) == 1 && len(r.Fields) == 1 {
		if debug.Merge() {
			debug.Logf("merge: %q matched again, collecting a list\n", conflicts[0])
		}
		return ir.Accumulate(conflicts[0], l.Values[0], r.Values[0]), nil
	}
	if f.cfg.Duplicates == KeepLatest {
		f.cfg.Warnf("duplicate subtrees while merging %s and %s: only the latter values of %s are kept\n",
			l, r, strings.Join(conflicts, ", "))
		for _, key := range conflicts {
			res.Values[res.Index(key)] = ir.Get(r, key)
		}
		return res, nil
	}
	return nil, &DuplicateKeysError{Keys: conflicts, Left: l, Right: r}
}

// concatAtoms joins the text of two atoms. The result is positioned when
// either side is, at the leftmost known position: joined text starts where
// its first positioned part starts, as the span of a concatenation does.
func concatAtoms(l, r *ir.Node) *ir.Node {
	res := ir.FromString(l.Text + r.Text)
	switch {
	case l.Pos != nil:
		p := *l.Pos
		res.Pos = &p
	case r.Pos != nil:
		p := *r.Pos
		res.Pos = &p
	}
	return res
}
