package main

import (
	"github.com/scott-cotton/cli"
	"github.com/tabkv/go-tabkv/encode"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	encOpts := cfg.encOpts(cc)
	for _, arg := range args {
		s, err := cfg.loadStore(arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(s.Tree(), cc.Out, encOpts...); err != nil {
			return err
		}
	}
	return nil
}
