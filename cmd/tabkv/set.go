package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/tabkv/go-tabkv"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: set requires a key, a value and a file", cli.ErrUsage)
	}
	key, value, file := args[0], args[1], args[2]
	s, err := tabkv.Open(file)
	if err != nil {
		return err
	}
	s.Set(key, value)
	return s.Save()
}
