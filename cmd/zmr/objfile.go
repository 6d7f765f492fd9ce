package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/liabri/zmerald/ir"
	"github.com/liabri/zmerald/parse"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getValueFile(cc *cli.Context, path string, opts ...parse.ParseOption) (ir.Value, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return ir.Value{}, err
	}
	return parse.ParseValue(d, opts...)
}

// eachFile calls fn on every file, or on stdin when files is empty.
func eachFile(cc *cli.Context, files []string, fn func(name string, d []byte) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if err := fn(file, d); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		name, val, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: expected name=val, got %q", cli.ErrUsage, a)
		}
		v, err := parse.ParseValue([]byte(val))
		if err != nil {
			env[name] = val
			return 0, nil
		}
		env[name] = v.Interface()
		return 0, nil
	}
}
