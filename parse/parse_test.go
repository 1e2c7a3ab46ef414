package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/signadot/pegfold/flatten"
	"github.com/signadot/pegfold/ir"
)

type parseTest struct {
	in   string
	want *ir.Node
}

func str(s string) *ir.Node { return ir.FromString(s) }

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in:   `hello`,
			want: str("hello"),
		},
		{
			in:   `"12"`,
			want: str("12"),
		},
		{
			in:   `12`,
			want: str("12"),
		},
		{
			in:   `null`,
			want: ir.Absent(),
		},
		{
			in:   `[a, b]`,
			want: ir.FromSlice([]*ir.Node{str("a"), str("b")}),
		},
		{
			in:   `!sequence [a, b, c]`,
			want: ir.Sequence(str("a"), str("b"), str("c")),
		},
		{
			in:   `!maybe []`,
			want: ir.Optional(),
		},
		{
			in:   `!repetition [!optional [x], !sequence []]`,
			want: ir.Repetition(ir.Optional(str("x")), ir.Sequence()),
		},
		{
			in:   `{}`,
			want: ir.FromKeyVals(nil),
		},
		{
			in:   `x: !optional []`,
			want: ir.Single("x", ir.Absent()),
		},
		{
			in:   `xs: !repetition []`,
			want: ir.Single("xs", ir.FromSlice(nil)),
		},
		{
			in: `
name: !repetition [f, o, o]
args: !repetition
  - !sequence [{arg: "1"}, ","]
  - !sequence [{arg: "2"}, ","]
`,
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: "name", Val: str("foo")},
				{Key: "args", Val: ir.FromSlice([]*ir.Node{
					ir.Single("arg", str("1")),
					ir.Single("arg", str("2")),
				})},
			}),
		},
		{
			in: `!sequence
- {a: x}
- "-"
- {b: y}
`,
			want: ir.Sequence(
				ir.Single("a", str("x")),
				str("-"),
				ir.Single("b", str("y")),
			),
		},
		{
			in: `[{k: v}]`,
			want: ir.FromSlice([]*ir.Node{ir.Single("k", str("v"))}),
		},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			got, err := Parse([]byte(pt.in))
			if err != nil {
				t.Fatalf("Parse(%q): %v", pt.in, err)
			}
			if diff := cmp.Diff(pt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse(%q) (-want +got):\n%s", pt.in, diff)
			}
		})
	}
}

func TestParsePositioned(t *testing.T) {
	got, err := Parse([]byte("!sequence\n- a\n- !pos b\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Values) != 2 {
		t.Fatalf("got %s", got)
	}
	if k := got.Values[0].Kind(); k != ir.PlainKind {
		t.Errorf("first atom is %s", k)
	}
	b := got.Values[1]
	if b.Kind() != ir.PositionedKind || b.Text != "b" {
		t.Fatalf("got %s", b)
	}
	if b.Pos.Line != 2 {
		t.Errorf("line %d, want 2", b.Pos.Line)
	}
}

func TestParsePositionOffsets(t *testing.T) {
	tests := []struct {
		in   string
		want ir.Pos
		get  func(*ir.Node) *ir.Node
	}{
		{
			in:   "!pos abc",
			want: ir.Pos{Offset: 5, Line: 0, Col: 5},
			get:  func(y *ir.Node) *ir.Node { return y },
		},
		{
			in:   "x: !pos abc",
			want: ir.Pos{Offset: 8, Line: 0, Col: 8},
			get:  func(y *ir.Node) *ir.Node { return ir.Get(y, "x") },
		},
		{
			in:   "!sequence\n- \"q\"\n- !pos abc\n",
			want: ir.Pos{Offset: 23, Line: 2, Col: 7},
			get:  func(y *ir.Node) *ir.Node { return y.Values[1] },
		},
		{
			in:   "!sequence\n-   !pos   abc\n",
			want: ir.Pos{Offset: 21, Line: 1, Col: 11},
			get:  func(y *ir.Node) *ir.Node { return y.Values[0] },
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d := []byte(tt.in)
			y, err := Parse(d)
			if err != nil {
				t.Fatal(err)
			}
			a := tt.get(y)
			if a == nil || a.Pos == nil {
				t.Fatalf("no positioned atom in %s", y)
			}
			if *a.Pos != tt.want {
				t.Errorf("got %s, want %s", a.Pos, tt.want)
			}
			if rest := string(d[a.Pos.Offset:]); !strings.HasPrefix(rest, a.Text) {
				t.Errorf("text at offset %d is %q, want prefix %q", a.Pos.Offset, rest, a.Text)
			}
			lineStart := a.Pos.Offset - a.Pos.Col
			if lineStart != 0 && d[lineStart-1] != '\n' {
				t.Errorf("col %d does not start at a line", a.Pos.Col)
			}
		})
	}
}

func TestParseCoreTags(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{`!!str 12`, str("12")},
		{`!!str true`, str("true")},
		{`!!null`, ir.Absent()},
		{`!!null ~`, ir.Absent()},
		{`!!int 7`, str("7")},
		{`!sequence [!!str 1, a]`, ir.Sequence(str("1"), str("a"))},
		{`x: !!str 12`, ir.Single("x", str("12"))},
	}
	for _, tt := range tests {
		got, err := Parse([]byte(tt.in))
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Parse(%q) (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseAll(t *testing.T) {
	docs, err := ParseAll([]byte("!sequence [a, b]\n---\n!repetition []\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []*ir.Node{
		ir.Sequence(str("a"), str("b")),
		ir.Repetition(),
	}
	if diff := cmp.Diff(want, docs, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"", ErrEmptyDoc},
		{"  \n", ErrEmptyDoc},
		{"!choice [a]", ErrUnknownTag},
		{"!sequence a", ErrParse},
		{"[!sequence [a]]", ErrTaggedValue},
		{"!sequence [&x a, *x]", ErrUnsupported},
		{"a: !alt []", ErrUnknownTag},
		{"a\n---\nb\n", ErrParse},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("Parse(%q): got %v, want %v", tt.in, err, tt.err)
		}
	}
}

func TestParseCaptureConflict(t *testing.T) {
	in := []byte(`
x: !sequence [{a: "1", b: "2"}, {a: "3"}]
`)
	_, err := Parse(in)
	if !errors.Is(err, flatten.ErrDuplicateUnmergeableKeys) {
		t.Fatalf("got %v", err)
	}
	got, err := Parse(in, FlattenOptions(
		flatten.WithDuplicatePolicy(flatten.KeepLatest),
		flatten.WithWarnf(func(string, ...any) {}),
	))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.Single("x", ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: str("3")},
		{Key: "b", Val: str("2")},
	}))
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse([]byte("!sequence\n- !choice [a]\n"))
	if !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("got %v", err)
	}
	if want := "(line=1, col=2)"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not mention %s", err, want)
	}
}

