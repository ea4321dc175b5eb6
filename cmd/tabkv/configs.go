package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tabkv/go-tabkv"
	"github.com/tabkv/go-tabkv/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render text output with color'"`
	Wire  bool `cli:"name=w aliases=wire desc='read input files in wire form'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(cc *cli.Context) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// loadStore opens arg as a store, honoring the -w flag. "-" reads
// standard input.
func (cfg *MainConfig) loadStore(arg string) (*tabkv.Store, error) {
	if arg == "-" {
		s, err := cfg.load(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return s, nil
	}
	if !cfg.Wire {
		return tabkv.Open(arg)
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := cfg.load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", arg, err)
	}
	return s, nil
}

func (cfg *MainConfig) load(r io.Reader) (*tabkv.Store, error) {
	if cfg.Wire {
		return tabkv.LoadWire(r)
	}
	return tabkv.Load(r)
}
