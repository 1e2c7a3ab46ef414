package main

import (
	"bytes"
	"testing"

	"github.com/signadot/pegfold/ir"
)

func TestWriteResultKeepsOrder(t *testing.T) {
	res := ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromString("x")},
		{Key: "a", Val: ir.FromString("z")},
	})
	buf := bytes.NewBuffer(nil)
	if err := writeResult(buf, res, false); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "b: x\na: z\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteDiff(t *testing.T) {
	want := ir.Single("a", ir.FromString("x"))
	got := ir.Single("a", ir.FromString("z"))
	buf := bytes.NewBuffer(nil)
	if err := writeDiff(buf, want, got, false); err != nil {
		t.Fatal(err)
	}
	if s, w := buf.String(), "- a: x\n+ a: z\n"; s != w {
		t.Errorf("got %q, want %q", s, w)
	}
}
