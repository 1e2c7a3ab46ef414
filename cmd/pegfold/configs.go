package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/pegfold/flatten"
	"github.com/signadot/pegfold/ir"
	"github.com/signadot/pegfold/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Named      bool `cli:"name=named desc='flatten in named context'"`
	KeepLatest bool `cli:"name=keep-latest desc='keep the latter value on duplicate keys instead of failing'"`
	J          bool `cli:"name=j aliases=json desc='print results as json'"`
	IR         bool `cli:"name=ir desc='read trees as ir json'"`

	Main *cli.Command
}

func (cfg *MainConfig) flattenOpts() []flatten.Option {
	if !cfg.KeepLatest {
		return nil
	}
	return []flatten.Option{flatten.WithDuplicatePolicy(flatten.KeepLatest)}
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.FlattenOptions(cfg.flattenOpts()...)}
}

// readTrees reads the documents in path, "-" being stdin.
func (cfg *MainConfig) readTrees(cc *cli.Context, path string) ([]*ir.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	if cfg.IR {
		y, err := ir.FromJSON(d)
		if err != nil {
			return nil, fmt.Errorf("error decoding ir from %s: %w", path, err)
		}
		return []*ir.Node{y}, nil
	}
	docs, err := parse.ParseAll(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return docs, nil
}

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

type FlattenConfig struct {
	*MainConfig

	Flatten *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Color bool `cli:"name=color desc='color the verdict and diff'"`
	Check *cli.Command
}

func (cfg *CheckConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorSet := false
	for _, opt := range cfg.Check.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
