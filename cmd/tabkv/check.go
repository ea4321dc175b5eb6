package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, arg := range args {
		if _, err := cfg.loadStore(arg); err != nil {
			fmt.Fprintf(cc.Out, "%v\n", err)
			failed = true
			continue
		}
		fmt.Fprintf(cc.Out, "%s: ok\n", arg)
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
