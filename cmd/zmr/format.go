package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/liabri/zmerald/encode"
	"github.com/liabri/zmerald/parse"

	"github.com/scott-cotton/cli"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: fmt -w requires files", cli.ErrUsage)
	}
	return eachFile(cc, args, func(name string, d []byte) error {
		out, err := formatBytes(cfg.MainConfig, d)
		if err != nil {
			return err
		}
		changed := !bytes.Equal(d, out)
		if cfg.List {
			if changed {
				fmt.Fprintln(cc.Out, name)
			}
			return nil
		}
		if !cfg.Write {
			_, err := cc.Out.Write(out)
			return err
		}
		if !changed {
			return nil
		}
		st, err := os.Stat(name)
		if err != nil {
			return err
		}
		return os.WriteFile(name, out, st.Mode().Perm())
	})
}

// formatBytes returns the pretty form of d with a final newline.
func formatBytes(cfg *MainConfig, d []byte) ([]byte, error) {
	v, err := parse.ParseValue(d, parse.PreserveOrder())
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.Encode(v, &buf, cfg.plainOpts()...); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
