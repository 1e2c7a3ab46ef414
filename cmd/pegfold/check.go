package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/pegfold/flatten"
	"github.com/signadot/pegfold/ir"
	"github.com/signadot/pegfold/parse"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: check requires 2 args, got %v", cli.ErrUsage, args)
	}
	trees, err := cfg.readTrees(cc, args[0])
	if err != nil {
		return err
	}
	if len(trees) != 1 {
		return fmt.Errorf("%w: %s has %d documents, want 1", cli.ErrUsage, args[0], len(trees))
	}
	d, err := readFile(cc, args[1])
	if err != nil {
		return err
	}
	// an untagged document parses to the plain value it spells
	want, err := parse.Parse(d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	got, err := flatten.Flatten(trees[0], cfg.Named, cfg.flattenOpts()...)
	if err != nil {
		return fmt.Errorf("error flattening %s: %w", args[0], err)
	}

	useColor := cfg.useColor(cc.Out)
	ok := color.New(color.FgGreen)
	fail := color.New(color.FgRed, color.Bold)
	if useColor {
		ok.EnableColor()
		fail.EnableColor()
	} else {
		ok.DisableColor()
		fail.DisableColor()
	}

	if ir.Equal(want, got) {
		fmt.Fprintf(cc.Out, "%s %s\n", ok.Sprint("ok"), args[0])
		return nil
	}
	fmt.Fprintf(cc.Out, "%s %s\n", fail.Sprint("FAIL"), args[0])
	if err := writeDiff(cc.Out, want, got, useColor); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeDiff(w io.Writer, want, got *ir.Node, useColor bool) error {
	wantText, err := marshal(want, false)
	if err != nil {
		return err
	}
	gotText, err := marshal(got, false)
	if err != nil {
		return err
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(wantText), string(gotText))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	if useColor {
		_, err := io.WriteString(w, dmp.DiffPrettyText(diffs))
		return err
	}
	buf := &strings.Builder{}
	for _, diff := range diffs {
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
		}
	}
	_, err = io.WriteString(w, buf.String())
	return err
}
