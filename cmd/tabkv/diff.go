package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/tabkv/go-tabkv"
)

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	from, err := cfg.loadStore(args[0])
	if err != nil {
		return err
	}
	to, err := cfg.loadStore(args[1])
	if err != nil {
		return err
	}
	d := tabkv.Diff(from, to)
	if d == "" {
		return nil
	}
	fmt.Fprint(cc.Out, d)
	return cli.ExitCodeErr(1)
}
