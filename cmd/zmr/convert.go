package main

import (
	"fmt"

	"github.com/liabri/zmerald/interop"
	"github.com/liabri/zmerald/ir"
	"github.com/liabri/zmerald/parse"

	"github.com/scott-cotton/cli"
)

func formatArg(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: expected json or yaml", cli.ErrUsage)
	}
	switch args[0] {
	case "json", "j":
		return "json", args[1:], nil
	case "yaml", "y", "yml":
		return "yaml", args[1:], nil
	}
	return "", nil, fmt.Errorf("%w: unknown format %q, expected json or yaml", cli.ErrUsage, args[0])
}

func to(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	fmat, files, err := formatArg(args)
	if err != nil {
		return err
	}
	return eachFile(cc, files, func(_ string, d []byte) error {
		v, err := parse.ParseValue(d, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		var out []byte
		if fmat == "json" {
			indent := ""
			if cfg.JSONIndent {
				indent = "  "
			}
			out, err = interop.ToJSON(v, indent)
			if err == nil {
				out = append(out, '\n')
			}
		} else {
			out, err = interop.ToYAML(v)
		}
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(out)
		return err
	})
}

func from(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	fmat, files, err := formatArg(args)
	if err != nil {
		return err
	}
	return eachFile(cc, files, func(_ string, d []byte) error {
		var v ir.Value
		if fmat == "json" {
			v, err = interop.FromJSON(d)
		} else {
			v, err = interop.FromYAML(d)
		}
		if err != nil {
			return err
		}
		return writeValue(cc.Out, v, cfg.encOpts(cc.Out)...)
	})
}
