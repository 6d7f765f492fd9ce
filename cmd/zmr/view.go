package main

import (
	"fmt"
	"io"

	"github.com/liabri/zmerald/encode"
	"github.com/liabri/zmerald/ir"
	"github.com/liabri/zmerald/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachFile(cc, args, func(_ string, d []byte) error {
		v, err := parse.ParseValue(d, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		return writeValue(cc.Out, v, cfg.encOpts(cc.Out)...)
	})
}

func writeValue(w io.Writer, v ir.Value, opts ...encode.EncodeOption) error {
	if err := encode.Encode(v, w, opts...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if _, err := w.Write([]byte{'\n'}); err != nil {
		return err
	}
	return nil
}
