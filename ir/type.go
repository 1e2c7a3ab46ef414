package ir

import "fmt"

type Type int

const (
	AbsentType Type = iota
	AtomType
	ListType
	MappingType
	AccumulatorType
	TaggedType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		AbsentType:      "Absent",
		AtomType:        "Atom",
		ListType:        "List",
		MappingType:     "Mapping",
		AccumulatorType: "Accumulator",
		TaggedType:      "Tagged",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Absent":      AbsentType,
		"Atom":        AtomType,
		"List":        ListType,
		"Mapping":     MappingType,
		"Accumulator": AccumulatorType,
		"Tagged":      TaggedType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

// IsStructured reports whether values of type t carry named or ordered
// structure that wins over incidental text when merged.
func (t Type) IsStructured() bool {
	switch t {
	case ListType, MappingType, AccumulatorType:
		return true
	default:
		return false
	}
}

// AtomKind distinguishes library-constructed text from text matched at a
// source position.
type AtomKind int

const (
	PlainKind AtomKind = iota
	PositionedKind
)

func (k AtomKind) String() string {
	switch k {
	case PlainKind:
		return "plain"
	case PositionedKind:
		return "positioned"
	}
	return "<unknown kind>"
}
