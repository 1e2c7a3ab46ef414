package main

import (
	"fmt"

	"github.com/signadot/pegfold/flatten"

	"github.com/scott-cotton/cli"
)

func flattenFiles(cfg *FlattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flatten.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	n := 0
	for _, arg := range args {
		trees, err := cfg.readTrees(cc, arg)
		if err != nil {
			return err
		}
		for i, tree := range trees {
			res, err := flatten.Flatten(tree, cfg.Named, cfg.flattenOpts()...)
			if err != nil {
				return fmt.Errorf("error flattening document %d of %s: %w", i, arg, err)
			}
			if n > 0 {
				if _, err := cc.Out.Write([]byte("---\n")); err != nil {
					return fmt.Errorf("error writing document %d: %w", n, err)
				}
			}
			if err := writeResult(cc.Out, res, cfg.J); err != nil {
				return fmt.Errorf("error encoding result %d: %w", n, err)
			}
			n++
		}
	}
	return nil
}
