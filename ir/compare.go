package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Atoms compare by text only; their kind and position do not take part.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case AtomType:
		return strings.Compare(a.Text, b.Text)
	case ListType:
		return compareValues(a.Values, b.Values)
	case MappingType, AccumulatorType:
		return compareEntries(a, b)
	case TaggedType:
		if c := cmp.Compare(a.Tag, b.Tag); c != 0 {
			return c
		}
		return compareValues(a.Values, b.Values)
	case AbsentType:
		return 0
	}
	return 0
}

// Equal reports whether a and b hold the same value.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Absent < Atom < List < Mapping < Accumulator < Tagged
func rank(t Type) int {
	switch t {
	case AbsentType:
		return 0
	case AtomType:
		return 1
	case ListType:
		return 2
	case MappingType:
		return 3
	case AccumulatorType:
		return 4
	case TaggedType:
		return 5
	}
	return 100
}

func compareValues(a, b []*Node) int {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareEntries(a, b *Node) int {
	minLen := min(len(a.Fields), len(b.Fields))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(len(a.Fields), len(b.Fields)); c != 0 {
		return c
	}
	return compareValues(a.Values, b.Values)
}
