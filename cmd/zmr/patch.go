package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/liabri/zmerald/interop"
	"github.com/liabri/zmerald/ir"
	"github.com/liabri/zmerald/parse"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := getPatch(cc, args[0])
	if err != nil {
		return err
	}
	return eachFile(cc, args[1:], func(_ string, d []byte) error {
		doc, err := parse.ParseValue(d, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		var res ir.Value
		if cfg.Merge {
			res, err = interop.MergePatch(doc, p)
		} else {
			res, err = interop.JSONPatch(doc, p)
		}
		if err != nil {
			return err
		}
		return writeValue(cc.Out, res, cfg.encOpts(cc.Out)...)
	})
}

// getPatch reads a patch written in json when the file ends in .json, and in
// zmerald otherwise.
func getPatch(cc *cli.Context, path string) (ir.Value, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return ir.Value{}, err
	}
	var v ir.Value
	if strings.EqualFold(filepath.Ext(path), ".json") {
		v, err = interop.FromJSON(d)
	} else {
		v, err = parse.ParseValue(d, parse.PreserveOrder())
	}
	if err != nil {
		return ir.Value{}, fmt.Errorf("error decoding patch %s: %w", path, err)
	}
	return v, nil
}
