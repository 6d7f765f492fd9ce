package main

import (
	"errors"
	"fmt"

	"github.com/liabri/zmerald/parse"
	"github.com/liabri/zmerald/token"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := 0
	for _, file := range args {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		_, err = parse.ParseValue(d)
		if err == nil {
			continue
		}
		failed++
		fmt.Fprintln(cc.Out, checkMessage(file, err))
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkMessage(file string, err error) string {
	var te *token.Error
	if errors.As(err, &te) && !te.Pos.IsZero() {
		return fmt.Sprintf("%s:%d:%d: %s", file, te.Pos.Line, te.Pos.Col, te.Message())
	}
	return fmt.Sprintf("%s: %v", file, err)
}
