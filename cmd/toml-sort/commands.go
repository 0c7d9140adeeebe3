package main

import (
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Check bool `cli:"name=check aliases=c desc='only check formatting, fail if a file is not formatted'"`
	Color bool `cli:"name=color desc='force colored output'"`

	ConfigPath string

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "config",
		Description: "config file (default: discover toml-sort.toml upward from the working directory)",
		Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
	})
	return cli.NewCommandAt(&cfg.Main, "toml-sort").
		WithSynopsis("toml-sort [opts] FILE...").
		WithDescription("toml-sort canonicalizes key order and layout of TOML files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tomlSortMain(cfg, cc, args)
		})
}

func (cfg *MainConfig) configOpt(cc *cli.Context, a string) (any, error) {
	cfg.ConfigPath = a
	return nil, nil
}
