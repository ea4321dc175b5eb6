package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func contains(cfg *ContainsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Contains.Parse(cc, args)
	if err != nil {
		cfg.Contains.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: contains requires one argument, a dotted key", cli.ErrUsage)
	}
	key := args[0]
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	s, err := cfg.loadStore(file)
	if err != nil {
		return err
	}
	if !s.Contains(key) {
		return cli.ExitCodeErr(1)
	}
	return nil
}
