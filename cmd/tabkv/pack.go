package main

import (
	"github.com/scott-cotton/cli"
	"github.com/tabkv/go-tabkv/encode"
)

func pack(cfg *PackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pack.Parse(cc, args)
	if err != nil {
		cfg.Pack.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file := "-"
	if len(args) > 0 {
		file = args[0]
	}
	// pack reads text regardless of -w.
	cfg.Wire = false
	s, err := cfg.loadStore(file)
	if err != nil {
		return err
	}
	return s.SaveWire(cc.Out)
}

func unpack(cfg *UnpackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unpack.Parse(cc, args)
	if err != nil {
		cfg.Unpack.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file := "-"
	if len(args) > 0 {
		file = args[0]
	}
	// unpack reads wire regardless of -w.
	cfg.Wire = true
	s, err := cfg.loadStore(file)
	if err != nil {
		return err
	}
	return encode.Encode(s.Tree(), cc.Out, cfg.encOpts(cc)...)
}
