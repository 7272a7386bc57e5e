package gbxscan

import (
	"io"
	"os"

	"github.com/gbx-tools/gbxpatch/gbxhdr"
	"github.com/go-git/go-billy/v5"
	"github.com/pkg/errors"
)

type LogFunc func(level int, format string, param ...interface{})

type Config struct {
	Extension string

	DryRun    bool
	KeepGoing bool
	Lock      bool

	LogFunc LogFunc
}

type Runner struct {
	fs     billy.Filesystem
	config Config
}

type Result struct {
	Path  string
	State gbxhdr.State

	// Only filled in dry runs, a real patch does not report the indicator.
	Indicator  byte
	WouldPatch bool

	Err error
}

type Summary struct {
	Results []Result

	Patched    int
	Unchanged  int
	WouldPatch int
	Failed     int
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)

	switch {
	case r.Err != nil:
		s.Failed++
	case r.WouldPatch:
		s.WouldPatch++
	case r.State == gbxhdr.StatePatched:
		s.Patched++
	default:
		s.Unchanged++
	}
}

func New(fs billy.Filesystem, config Config) *Runner {
	return &Runner{
		fs:     fs,
		config: config,
	}
}

func (r *Runner) log(level int, format string, param ...interface{}) {
	if r.config.LogFunc != nil {
		r.config.LogFunc(level, format, param...)
	}
}

// PatchFile opens path, patches it if needed and closes it again. The
// file is closed on every path, and a close error is only reported when
// nothing failed before.
func (r *Runner) PatchFile(path string) (res Result) {
	res.Path = path

	flag := os.O_RDWR
	if r.config.DryRun {
		flag = os.O_RDONLY
	}

	f, err := r.fs.OpenFile(path, flag, 0)
	if err != nil {
		res.Err = errors.Wrap(err, "open")
		return
	}
	defer func() {
		if err := f.Close(); err != nil && res.Err == nil {
			res.Err = errors.Wrap(err, "close")
		}
	}()

	if r.config.Lock {
		if err := f.Lock(); err != nil {
			res.Err = errors.Wrap(err, "lock")
			return
		}
		defer f.Unlock()
	}

	if r.config.DryRun {
		res.State, res.Indicator, res.WouldPatch, res.Err = inspect(f)
		return
	}

	res.State, res.Err = gbxhdr.PatchIfSentinel(f)
	return
}

// inspect decides what PatchIfSentinel would do without writing.
func inspect(f io.ReadSeeker) (gbxhdr.State, byte, bool, error) {
	indicator, err := gbxhdr.ReadIndicator(f)
	if err != nil {
		return gbxhdr.StateInspected, 0, false, err
	}

	if !gbxhdr.NeedsPatch(indicator) {
		return gbxhdr.StateUnchanged, indicator, false, nil
	}

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return gbxhdr.StateInspected, indicator, false, errors.Wrap(err, "seek to end")
	}
	if size < gbxhdr.MinPatchLength {
		return gbxhdr.StateInspected, indicator, false,
			errors.Wrapf(gbxhdr.ErrorTruncated, "%d bytes, need %d", size, gbxhdr.MinPatchLength)
	}

	return gbxhdr.StateUnchanged, indicator, true, nil
}

// Run patches every file found below roots, one file at a time. Without
// KeepGoing the first failure ends the run and is returned.
func (r *Runner) Run(roots ...string) (Summary, error) {
	var s Summary

	for _, root := range roots {
		err := Discover(r.fs, root, r.config.Extension, func(path string) error {
			res := r.PatchFile(path)
			s.add(res)

			switch {
			case res.Err != nil:
				r.log(0, "%s: %v", path, res.Err)
				if !r.config.KeepGoing {
					return errors.Wrap(res.Err, path)
				}
			case res.WouldPatch:
				r.log(1, "%s: would patch", path)
			default:
				r.log(2, "%s: %s", path, res.State)
			}
			return nil
		})

		if err == nil {
			continue
		}
		if !r.config.KeepGoing {
			return s, err
		}

		r.log(0, "%v", err)
		s.add(Result{Path: root, Err: err})
	}

	return s, nil
}
