package main

import (
	"fmt"

	"github.com/liabri/zmerald/eval"
	"github.com/liabri/zmerald/ir"
	"github.com/liabri/zmerald/parse"

	"github.com/scott-cotton/cli"
)

func evalExpr(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	input := args[0]
	if len(args) == 1 {
		res, err := eval.Eval(input, ir.Unit(), cfg.Env)
		if err != nil {
			return err
		}
		return writeValue(cc.Out, res, cfg.encOpts(cc.Out)...)
	}
	return eachFile(cc, args[1:], func(_ string, d []byte) error {
		doc, err := parse.ParseValue(d, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		res, err := eval.Eval(input, doc, cfg.Env)
		if err != nil {
			return err
		}
		return writeValue(cc.Out, res, cfg.encOpts(cc.Out)...)
	})
}

func expand(cfg *ExpandConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expand.Parse(cc, args)
	if err != nil {
		cfg.Expand.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachFile(cc, args, func(_ string, d []byte) error {
		doc, err := parse.ParseValue(d, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		res, err := eval.ExpandValue(doc, cfg.Env)
		if err != nil {
			return err
		}
		return writeValue(cc.Out, res, cfg.encOpts(cc.Out)...)
	})
}
