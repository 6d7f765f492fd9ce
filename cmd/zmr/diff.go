package main

import (
	"fmt"

	"github.com/liabri/zmerald/encode"
	"github.com/liabri/zmerald/libdiff"
	"github.com/liabri/zmerald/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getValueFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getValueFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d := libdiff.Diff(a, b)
	if d == nil {
		return nil
	}
	if cfg.Reverse {
		d = libdiff.Reverse(d)
	}
	if err := writeChange(cc, cfg.MainConfig, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeChange(cc *cli.Context, cfg *MainConfig, d libdiff.Change) error {
	if err := encode.Encode(d, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding diff: %w", err)
	}
	_, err := cc.Out.Write([]byte{'\n'})
	return err
}

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: apply requires a diff file", cli.ErrUsage)
	}
	dd, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	var change libdiff.Change
	if err := parse.Unmarshal(dd, &change); err != nil {
		return fmt.Errorf("error decoding diff %s: %w", args[0], err)
	}
	if cfg.Reverse {
		change = libdiff.Reverse(change)
	}
	return eachFile(cc, args[1:], func(_ string, d []byte) error {
		doc, err := parse.ParseValue(d, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		res, err := libdiff.Patch(doc, change)
		if err != nil {
			return err
		}
		return writeValue(cc.Out, res, cfg.encOpts(cc.Out)...)
	})
}
