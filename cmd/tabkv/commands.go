package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "tabkv").
		WithSynopsis("tabkv [opts] command [opts]").
		WithDescription("tabkv is a tool for working with tabkv storage files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tabkvMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			ContainsCommand(cfg),
			CheckCommand(cfg),
			FmtCommand(cfg),
			PackCommand(cfg),
			UnpackCommand(cfg),
			ConvertCommand(cfg),
			DiffCommand(cfg))
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <key> [file]").
		WithDescription("print the value at a dotted key").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

type SetConfig struct {
	*MainConfig
	Set *cli.Command
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set <key> <value> <file>").
		WithDescription("set the value at a dotted key and save the file").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

type ContainsConfig struct {
	*MainConfig
	Contains *cli.Command
}

func ContainsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ContainsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("contains").
		WithSynopsis("contains <key> [file]").
		WithDescription("exit 0 if an entry exists at the dotted key, 1 if not").
		WithRun(func(cc *cli.Context, args []string) error {
			return contains(cfg, cc, args)
		})
	cfg.Contains = cmd
	return cmd
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("parse and load files, reporting the first error of each").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

type FmtConfig struct {
	*MainConfig
	Fmt *cli.Command
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("re-render files in canonical text form").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtRun(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

type PackConfig struct {
	*MainConfig
	Pack *cli.Command
}

func PackCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PackConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("pack").
		WithSynopsis("pack [file]").
		WithDescription("convert text form to wire form").
		WithRun(func(cc *cli.Context, args []string) error {
			return pack(cfg, cc, args)
		})
	cfg.Pack = cmd
	return cmd
}

type UnpackConfig struct {
	*MainConfig
	Unpack *cli.Command
}

func UnpackCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnpackConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("unpack").
		WithSynopsis("unpack [file]").
		WithDescription("convert wire form to text form").
		WithRun(func(cc *cli.Context, args []string) error {
			return unpack(cfg, cc, args)
		})
	cfg.Unpack = cmd
	return cmd
}

type ConvertConfig struct {
	*MainConfig
	Convert *cli.Command
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("convert").
		WithSynopsis("convert [files]").
		WithDescription("render files as YAML").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("show a line diff of the text forms of two files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffRun(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
