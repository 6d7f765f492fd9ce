package main

import (
	"io"
	"os"

	"github.com/liabri/zmerald/encode"
	"github.com/liabri/zmerald/parse"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	Compact bool   `cli:"name=c aliases=compact desc='output in canonical compact form'"`
	Names   bool   `cli:"name=n aliases=names desc='write struct names'"`
	Depth   int    `cli:"name=depth desc='break containers over lines up to this depth'"`
	Indent  string `cli:"name=indent desc='indentation string'"`
	Sorted  bool   `cli:"name=sorted desc='sort map entries instead of keeping input order'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Sorted {
		return nil
	}
	return []parse.ParseOption{parse.PreserveOrder()}
}

func (cfg *MainConfig) prettyConfig() encode.PrettyConfig {
	pc := encode.DefaultPrettyConfig().
		WithStructNames(cfg.Names).
		WithDecimalFloats(true)
	if cfg.Depth > 0 {
		pc = pc.WithDepthLimit(cfg.Depth)
	}
	if cfg.Indent != "" {
		pc = pc.WithIndentor(cfg.Indent)
	}
	return pc
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if !cfg.Compact {
		res = append(res, encode.Pretty(cfg.prettyConfig()))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// plainOpts are encOpts without colors, for output that is stored.
func (cfg *MainConfig) plainOpts() []encode.EncodeOption {
	if cfg.Compact {
		return nil
	}
	return []encode.EncodeOption{encode.Pretty(cfg.prettyConfig())}
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to the source file instead of stdout'"`
	List  bool `cli:"name=l desc='list files whose formatting differs'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig
	List bool `cli:"name=l aliases=list desc='path may contain [*] and .. wildcards'"`

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type ApplyConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='apply diff reversed'"`

	Apply *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m aliases=merge desc='the patch is a json merge patch'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env map[string]any

	Eval *cli.Command
}

type ExpandConfig struct {
	*MainConfig
	Env map[string]any

	Expand *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	JSONIndent bool `cli:"name=i desc='indent json output'"`

	Convert *cli.Command
}
