package main

import (
	"fmt"

	"github.com/liabri/zmerald/parse"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		if path[0] != '.' && path[0] != '[' {
			path = "." + path
		}
		path = "$" + path
	}
	return eachFile(cc, args[1:], func(_ string, d []byte) error {
		v, err := parse.ParseValue(d, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if !cfg.List {
			res, err := v.Get(path)
			if err != nil {
				return err
			}
			return writeValue(cc.Out, res, cfg.encOpts(cc.Out)...)
		}
		res, err := v.List(path)
		if err != nil {
			return err
		}
		for _, r := range res {
			if err := writeValue(cc.Out, r, cfg.encOpts(cc.Out)...); err != nil {
				return err
			}
		}
		return nil
	})
}
