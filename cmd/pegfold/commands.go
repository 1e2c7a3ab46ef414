package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "pegfold").
		WithSynopsis("pegfold [opts] command [opts]").
		WithDescription("pegfold reduces tagged parse trees to parse results.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pegfoldMain(cfg, cc, args)
		}).
		WithSubs(
			FlattenCommand(cfg),
			CheckCommand(cfg))
}

func FlattenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FlattenConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Flatten, "flatten").
		WithAliases("f").
		WithSynopsis("flatten [files]").
		WithDescription("flatten the trees in files (default stdin) and print the results").
		WithRun(func(cc *cli.Context, args []string) error {
			return flattenFiles(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithOpts(opts...).
		WithSynopsis("check [opts] <tree> <expected>").
		WithDescription("flatten a tree and compare the result with an expected result").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
