package ir

import (
	"slices"
)

// Node is a single value of an input tree or a flattened result.
//
// For MappingType nodes, Fields[i] is the key for Values[i]. For
// AccumulatorType nodes, Fields holds exactly one key and Values the
// values collected under it. TaggedType nodes hold their children in
// Values.
type Node struct {
	Type   Type     `json:"type"`
	Tag    Tag      `json:"tag,omitempty"`
	Text   string   `json:"text,omitempty"`
	Pos    *Pos     `json:"pos,omitempty"`
	Fields []string `json:"fields,omitempty"`
	Values []*Node  `json:"values,omitempty"`
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromString(v string) *Node {
	return &Node{Type: AtomType, Text: v}
}

// FromPos returns a positioned atom.
func FromPos(v string, pos Pos) *Node {
	return &Node{Type: AtomType, Text: v, Pos: &pos}
}

func Absent() *Node {
	return &Node{Type: AbsentType}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ListType}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

// FromKeyVals builds a mapping in the order of kvs. A repeated key keeps
// its first position and takes the last value.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: MappingType}
	res.Fields = make([]string, 0, len(kvs))
	res.Values = make([]*Node, 0, len(kvs))
	for _, kv := range kvs {
		if i := res.Index(kv.Key); i >= 0 {
			res.Values[i] = kv.Val
			continue
		}
		res.Fields = append(res.Fields, kv.Key)
		res.Values = append(res.Values, kv.Val)
	}
	return res
}

// Single returns the one-entry mapping {key: v}.
func Single(key string, v *Node) *Node {
	return &Node{
		Type:   MappingType,
		Fields: []string{key},
		Values: []*Node{v},
	}
}

func Tagged(tag Tag, children ...*Node) *Node {
	return &Node{
		Type:   TaggedType,
		Tag:    tag,
		Values: children,
	}
}

func Sequence(children ...*Node) *Node {
	return Tagged(SequenceTag, children...)
}

func Optional(children ...*Node) *Node {
	return Tagged(OptionalTag, children...)
}

func Repetition(children ...*Node) *Node {
	return Tagged(RepetitionTag, children...)
}

// Kind returns the atom kind of y; it is only meaningful for atoms.
func (y *Node) Kind() AtomKind {
	if y.Pos != nil {
		return PositionedKind
	}
	return PlainKind
}

// Index returns the position of key in a mapping or accumulator, or -1.
func (y *Node) Index(key string) int {
	return slices.Index(y.Fields, key)
}

func Get(y *Node, key string) *Node {
	if y.Type != MappingType {
		return nil
	}
	i := y.Index(key)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

func (y *Node) KeyVals() []KeyVal {
	res := make([]KeyVal, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = KeyVal{Key: f, Val: y.Values[i]}
	}
	return res
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type: y.Type,
		Tag:  y.Tag,
		Text: y.Text,
	}
	if y.Pos != nil {
		p := *y.Pos
		res.Pos = &p
	}
	if y.Fields != nil {
		res.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit calls f on y and its descendants, depth first, with isPost false
// before the children and true after them. Returning false from the pre
// call skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	if y == nil {
		return nil
	}
	descend, err := f(y, false)
	if err != nil {
		return err
	}
	if descend {
		for _, v := range y.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(y, true)
	return err
}
