package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted key", cli.ErrUsage)
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
	v, ok := s.Get(key)
	if !ok {
		return cli.ExitCodeErr(1)
	}
	fmt.Fprintln(cc.Out, v)
	return nil
}
