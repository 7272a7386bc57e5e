package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gbx-tools/gbxpatch/gbxscan"
	"github.com/inancgumus/screen"
)

type ScanCmd struct {
	Selection Selection `embed:""`

	Loop     bool          `optional:"" help:"Rescan until interrupted."`
	Interval time.Duration `optional:"" help:"Time between rescans." default:"2s"`
}

func (l *ScanCmd) Run(c *Context) error {
	if l.Interval <= 0 {
		return errors.New("Interval must be positive")
	}

	paths, err := absPaths(l.Selection.Paths)
	if err != nil {
		return err
	}

	config := l.Selection.config(c)
	config.DryRun = true
	config.KeepGoing = true
	runner := gbxscan.New(c.fs, config)

	for {
		startTime := time.Now()

		s, err := runner.Run(paths...)
		if err != nil {
			return err
		}

		if l.Loop {
			screen.Clear()
			screen.MoveTopLeft()
			fmt.Printf("Scanned at %s\n\n", startTime.Format(time.RFC3339))
		}

		fmt.Printf("Indicator | Verdict    | Path\n")
		for _, m := range s.Results {
			fmt.Printf("%-10s| %s | %s\n", indicatorString(m), verdict(m), m.Path)
		}
		printSummary(s)

		if !l.Loop {
			return nil
		}

		d := time.Since(startTime)
		if d < l.Interval {
			time.Sleep(l.Interval - d)
		}
	}
}

func indicatorString(r gbxscan.Result) string {
	// A truncated file may still have an indicator, other errors have none.
	if r.Err != nil && (!isTruncated(r.Err) || r.Indicator == 0) {
		return "-"
	}
	return fmt.Sprintf("0x%02x %q", r.Indicator, rune(r.Indicator))
}

func verdict(r gbxscan.Result) string {
	switch {
	case isTruncated(r.Err):
		return color.RedString("truncated ")
	case r.Err != nil:
		return color.RedString("error     ")
	case r.WouldPatch:
		return color.YellowString("patch     ")
	}
	return "unchanged "
}
