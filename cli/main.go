package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/gbx-tools/gbxpatch/gbxscan"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

type Context struct {
	fs      billy.Filesystem
	logFunc gbxscan.LogFunc
}

var CLI struct {
	LogLevel int  `optional:"" help:"Higher values give more output."`
	NoColor  bool `optional:"" help:"Disable colored output."`

	Patch      PatchCmd      `cmd:"" help:"Zero the patch field of files with an uncompressed body."`
	Scan       ScanCmd       `cmd:"" help:"Report which files would be patched."`
	Inspect    InspectCmd    `cmd:"" help:"Decode and dump the header of one file."`
	ListFields ListFieldsCmd `cmd:"" help:"List the header fields used by the patcher."`
}

var configPaths = []string{
	"~/.config/gbxpatch.yaml",
	".gbxpatch.yaml",
}

func main() {
	k, err := kong.New(&CLI,
		kong.Name("gbxpatch"),
		kong.Description("Inspect and patch the header of Gbx files in place."),
		kong.Configuration(yamlLoader, configPaths...),
		kong.NamedMapper("int", intMapper{}))
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		return
	}

	if CLI.NoColor {
		color.NoColor = true
	}

	c := &Context{
		fs: osfs.New("/"),
		logFunc: func(level int, format string, param ...interface{}) {
			if level > CLI.LogLevel {
				return
			}
			str := fmt.Sprintf(format, param...)
			fmt.Printf("GBX(%d): %s\n", level, str)
		},
	}

	err = ctx.Run(c)
	ctx.FatalIfErrorf(err)
}

// absPaths makes paths usable on the root filesystem.
func absPaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, m := range paths {
		abs, err := filepath.Abs(m)
		if err != nil {
			return nil, err
		}
		out = append(out, abs)
	}
	return out, nil
}
