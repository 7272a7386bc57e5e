package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gbx-tools/gbxpatch/gbxhdr"
	"github.com/gbx-tools/gbxpatch/gbxscan"
)

type Selection struct {
	Paths []string `arg:"" name:"path" help:"Files or directories to process."`
	Ext   string   `optional:"" help:"File name suffix to match, case sensitive." default:".Gbx"`
}

func (s Selection) config(c *Context) gbxscan.Config {
	return gbxscan.Config{
		Extension: s.Ext,
		LogFunc:   c.logFunc,
	}
}

type PatchCmd struct {
	Selection Selection `embed:""`

	DryRun    bool `optional:"" help:"Only report what would be patched."`
	KeepGoing bool `optional:"" help:"Continue with the next file after a failure."`
	Lock      bool `optional:"" help:"Hold an exclusive lock on each file while patching."`
}

func (p *PatchCmd) Run(c *Context) error {
	paths, err := absPaths(p.Selection.Paths)
	if err != nil {
		return err
	}

	config := p.Selection.config(c)
	config.DryRun = p.DryRun
	config.KeepGoing = p.KeepGoing
	config.Lock = p.Lock

	s, err := gbxscan.New(c.fs, config).Run(paths...)
	for _, m := range s.Results {
		printResult(m)
	}
	printSummary(s)

	if err != nil {
		return err
	}
	if s.Failed > 0 {
		return fmt.Errorf("%d file(s) failed", s.Failed)
	}
	return nil
}

func printResult(r gbxscan.Result) {
	switch {
	case r.Err != nil:
		fmt.Printf("%s %s: %v\n", color.RedString("FAIL     "), r.Path, r.Err)
	case r.WouldPatch:
		fmt.Printf("%s %s\n", color.YellowString("WOULD    "), r.Path)
	case r.State == gbxhdr.StatePatched:
		fmt.Printf("%s %s\n", color.GreenString("PATCHED  "), r.Path)
	default:
		fmt.Printf("%s %s\n", "UNCHANGED", r.Path)
	}
}

func printSummary(s gbxscan.Summary) {
	fmt.Printf("\n%d patched, %d would patch, %d unchanged, %d failed.\n",
		s.Patched, s.WouldPatch, s.Unchanged, s.Failed)
}

func isTruncated(err error) bool {
	return errors.Is(err, gbxhdr.ErrorTruncated)
}
