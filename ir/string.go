package ir

import (
	"strconv"
	"strings"
)

// String renders y on one line for logs and error messages.
//
//	"ab"            plain atom
//	"ab"@3:1        positioned atom (line:col)
//	["a", "b"]      list
//	{x: "a"}        mapping
//	{x*: ["a"]}     accumulator
//	(sequence "a")  tagged node
//	<absent>
func (y *Node) String() string {
	b := &strings.Builder{}
	y.write(b)
	return b.String()
}

func (y *Node) write(b *strings.Builder) {
	if y == nil {
		b.WriteString("<nil>")
		return
	}
	switch y.Type {
	case AbsentType:
		b.WriteString("<absent>")
	case AtomType:
		b.WriteString(strconv.Quote(y.Text))
		if y.Pos != nil {
			b.WriteByte('@')
			b.WriteString(strconv.Itoa(y.Pos.Line))
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(y.Pos.Col))
		}
	case ListType:
		b.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			v.write(b)
		}
		b.WriteByte(']')
	case MappingType:
		b.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f)
			b.WriteString(": ")
			y.Values[i].write(b)
		}
		b.WriteByte('}')
	case AccumulatorType:
		b.WriteByte('{')
		b.WriteString(y.Key())
		b.WriteString("*: ")
		FromSlice(y.Values).write(b)
		b.WriteByte('}')
	case TaggedType:
		b.WriteByte('(')
		b.WriteString(y.Tag.String())
		for _, v := range y.Values {
			b.WriteByte(' ')
			v.write(b)
		}
		b.WriteByte(')')
	default:
		b.WriteString(y.Type.String())
	}
}
