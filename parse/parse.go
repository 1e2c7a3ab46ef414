// Package parse reads tagged result trees from YAML documents.
//
// Combinator nodes are tagged sequences:
//
//	!sequence [a, !optional [], !repetition [b, c]]
//
// "!maybe" is accepted for "!optional". Scalars are plain atoms, and "!pos"
// scalars are positioned atoms at their place in the document. null is
// absence and an untagged sequence is a list value. The core tags "!!str"
// and "!!null" force an atom or absence. A mapping is a series
// of named captures: each value is parsed as a tree and flattened under its
// key in named context, and the captures are merged left to right.
package parse

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"

	"github.com/signadot/pegfold/debug"
	"github.com/signadot/pegfold/flatten"
	"github.com/signadot/pegfold/ir"
)

const PosTag = "!pos"

type parseOpts struct {
	flattenOpts []flatten.Option

	src []byte
	// byte offsets of the start of each line of the input
	lines []int
}

type ParseOption func(*parseOpts)

// FlattenOptions sets the options used when flattening named captures.
func FlattenOptions(opts ...flatten.Option) ParseOption {
	return func(o *parseOpts) { o.flattenOpts = append(o.flattenOpts, opts...) }
}

// Parse parses a single document.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	docs, err := ParseAll(d, opts...)
	if err != nil {
		return nil, err
	}
	switch len(docs) {
	case 0:
		return nil, ErrEmptyDoc
	case 1:
		return docs[0], nil
	default:
		return nil, fmt.Errorf("%w: %d documents", ErrParse, len(docs))
	}
}

// ParseAll parses a stream of "---" separated documents.
func ParseAll(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, ErrEmptyDoc
	}
	po := &parseOpts{src: d, lines: lineStarts(d)}
	for _, o := range opts {
		o(po)
	}
	file, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	res := make([]*ir.Node, 0, len(file.Docs))
	for i, doc := range file.Docs {
		if doc == nil || doc.Body == nil {
			return nil, fmt.Errorf("%w (document %d)", ErrEmptyDoc, i)
		}
		y, err := po.node(doc.Body, false)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		if debug.Parse() {
			debug.Logf("parse: document %d: %s\n", i, y)
		}
		res = append(res, y)
	}
	return res, nil
}

func (po *parseOpts) node(n ast.Node, inList bool) (*ir.Node, error) {
	if n == nil {
		return ir.Absent(), nil
	}
	switch x := n.(type) {
	case *ast.TagNode:
		return po.tagged(x, inList)
	case *ast.SequenceNode:
		vs := make([]*ir.Node, len(x.Values))
		for i, v := range x.Values {
			y, err := po.node(v, true)
			if err != nil {
				return nil, err
			}
			vs[i] = y
		}
		return ir.FromSlice(vs), nil
	case *ast.MappingNode:
		return po.captures(x.Values)
	case *ast.MappingValueNode:
		return po.captures([]*ast.MappingValueNode{x})
	case *ast.NullNode:
		return ir.Absent(), nil
	case *ast.AnchorNode, *ast.AliasNode:
		return nil, fmt.Errorf("%w: anchors and aliases at %s", ErrUnsupported, po.at(n.GetToken()))
	}
	s, err := po.scalar(n)
	if err != nil {
		return nil, err
	}
	return ir.FromString(s), nil
}

func (po *parseOpts) tagged(x *ast.TagNode, inList bool) (*ir.Node, error) {
	name := x.Start.Value
	if name == PosTag {
		s, err := po.scalar(x.Value)
		if err != nil {
			return nil, err
		}
		return ir.FromPos(s, po.pos(x.Value.GetToken())), nil
	}
	if strings.HasPrefix(name, "!!") {
		return po.core(x, inList)
	}
	if len(name) == 0 || name[0] != '!' {
		return nil, fmt.Errorf("%w %q at %s", ErrUnknownTag, name, po.at(x.Start))
	}
	tag, err := ir.ParseTag(name[1:])
	if err != nil || tag == ir.NoTag {
		return nil, fmt.Errorf("%w %q at %s", ErrUnknownTag, name, po.at(x.Start))
	}
	if inList {
		return nil, fmt.Errorf("%w: %s at %s", ErrTaggedValue, name, po.at(x.Start))
	}
	seq, ok := x.Value.(*ast.SequenceNode)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects a sequence at %s", ErrParse, name, po.at(x.Start))
	}
	children := make([]*ir.Node, len(seq.Values))
	for i, v := range seq.Values {
		child, err := po.node(v, false)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return ir.Tagged(tag, children...), nil
}

// captures flattens each value under its key and merges the results as a
// sequence would.
func (po *parseOpts) captures(mvs []*ast.MappingValueNode) (*ir.Node, error) {
	if len(mvs) == 0 {
		return ir.FromKeyVals(nil), nil
	}
	caps := make([]*ir.Node, len(mvs))
	for i, mv := range mvs {
		key, err := po.scalar(mv.Key)
		if err != nil {
			return nil, err
		}
		child, err := po.node(mv.Value, false)
		if err != nil {
			return nil, fmt.Errorf("capture %q: %w", key, err)
		}
		c, err := flatten.As(key, child, po.flattenOpts...)
		if err != nil {
			return nil, fmt.Errorf("capture %q at %s: %w", key, po.at(mv.Key.GetToken()), err)
		}
		caps[i] = c
	}
	return flatten.Flatten(ir.Sequence(caps...), false, po.flattenOpts...)
}

// core handles the YAML core schema tags. "!!str" forces an atom and
// "!!null" absence; the others leave the value as written.
func (po *parseOpts) core(x *ast.TagNode, inList bool) (*ir.Node, error) {
	switch x.Start.Value {
	case "!!str":
		s, err := po.scalar(x.Value)
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case "!!null":
		return ir.Absent(), nil
	}
	return po.node(x.Value, inList)
}

func (po *parseOpts) scalar(n ast.Node) (string, error) {
	switch x := n.(type) {
	case nil:
		return "", nil
	case *ast.StringNode:
		return x.Value, nil
	case *ast.LiteralNode:
		return x.Value.Value, nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		return n.GetToken().Value, nil
	case *ast.NullNode:
		return "", nil
	}
	return "", fmt.Errorf("%w: expected a scalar, got %s at %s", ErrUnsupported, n.Type(), po.at(n.GetToken()))
}

// pos locates the first byte of the text of tk in the input. Line numbers
// from the scanner are 1-based; columns may point at the separating space
// before a scalar, so the column is advanced past blanks on its line.
func (po *parseOpts) pos(tk *token.Token) ir.Pos {
	if tk == nil || tk.Position == nil || len(po.lines) == 0 {
		return ir.Pos{}
	}
	line := min(max(tk.Position.Line-1, 0), len(po.lines)-1)
	start := po.lines[line]
	end := len(po.src)
	if line+1 < len(po.lines) {
		end = po.lines[line+1]
	}
	off := min(start+max(tk.Position.Column-1, 0), end)
	for off < end && (po.src[off] == ' ' || po.src[off] == '\t') {
		off++
	}
	return ir.Pos{Offset: off, Line: line, Col: off - start}
}

func (po *parseOpts) at(tk *token.Token) string {
	if tk == nil || tk.Position == nil {
		return "<unknown position>"
	}
	return po.pos(tk).String()
}

func lineStarts(d []byte) []int {
	res := []int{0}
	for i, c := range d {
		if c == '\n' {
			res = append(res, i+1)
		}
	}
	return res
}
