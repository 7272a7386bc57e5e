package gbxscan

import (
	"errors"
	"testing"

	"github.com/gbx-tools/gbxpatch/gbxhdr"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/go-cmp/cmp"
)

func header(indicator byte, size int) []byte {
	data := make([]byte, size)
	copy(data, "GBX\x06\x00BU")
	if size > gbxhdr.OffsetCompression {
		data[gbxhdr.OffsetCompression] = indicator
	}
	for i := gbxhdr.OffsetPatchField; i < size && i < gbxhdr.MinPatchLength; i++ {
		data[i] = 0xAA
	}
	return data
}

func readFile(t *testing.T, fs billy.Filesystem, name string) []byte {
	t.Helper()
	data, err := util.ReadFile(fs, name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return data
}

func TestRunnerPatchFile(t *testing.T) {
	fs := newTree(t, map[string][]byte{
		"u.Gbx": header('U', 32),
		"c.Gbx": header('C', 32),
	})
	r := New(fs, Config{Extension: DefaultExtension, Lock: true})

	res := r.PatchFile("u.Gbx")
	if res.Err != nil {
		t.Fatalf("PatchFile: %v", res.Err)
	}
	if res.State != gbxhdr.StatePatched {
		t.Fatalf("state = %v, want %v", res.State, gbxhdr.StatePatched)
	}
	want := header('U', 32)
	copy(want[13:17], []byte{0, 0, 0, 0})
	if diff := cmp.Diff(want, readFile(t, fs, "u.Gbx")); diff != "" {
		t.Fatalf("patched file (-want +got):\n%s", diff)
	}

	res = r.PatchFile("c.Gbx")
	if res.Err != nil || res.State != gbxhdr.StateUnchanged {
		t.Fatalf("PatchFile(c.Gbx) = %v, %v", res.State, res.Err)
	}
	if diff := cmp.Diff(header('C', 32), readFile(t, fs, "c.Gbx")); diff != "" {
		t.Fatalf("unpatched file changed (-want +got):\n%s", diff)
	}

	res = r.PatchFile("missing.Gbx")
	if res.Err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestRunnerDryRun(t *testing.T) {
	files := map[string][]byte{
		"maps/u.Gbx":     header('U', 32),
		"maps/c.Gbx":     header('C', 32),
		"maps/short.Gbx": header('U', 10),
	}
	fs := newTree(t, files)
	r := New(fs, Config{Extension: DefaultExtension, DryRun: true, KeepGoing: true})

	s, err := r.Run("maps")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.WouldPatch != 1 || s.Unchanged != 1 || s.Failed != 1 || s.Patched != 0 {
		t.Fatalf("summary = %+v", s)
	}

	for name, data := range files {
		if diff := cmp.Diff(data, readFile(t, fs, name)); diff != "" {
			t.Fatalf("dry run changed %s (-want +got):\n%s", name, diff)
		}
	}

	for _, res := range s.Results {
		if res.Path == "maps/c.Gbx" && res.Indicator != 'C' {
			t.Errorf("indicator for %s = 0x%02x, want 'C'", res.Path, res.Indicator)
		}
		if res.Path == "maps/short.Gbx" && !errors.Is(res.Err, gbxhdr.ErrorTruncated) {
			t.Errorf("err for %s = %v, want truncated", res.Path, res.Err)
		}
	}
}

func TestRunnerKeepGoing(t *testing.T) {
	newFS := func() billy.Filesystem {
		return newTree(t, map[string][]byte{
			"maps/a.Gbx": header('U', 8),
			"maps/b.Gbx": header('U', 32),
			"maps/c.Gbx": header('C', 32),
		})
	}

	t.Run("stop on first failure", func(t *testing.T) {
		fs := newFS()
		var logged []int
		r := New(fs, Config{
			Extension: DefaultExtension,
			LogFunc: func(level int, format string, param ...interface{}) {
				logged = append(logged, level)
			},
		})

		s, err := r.Run("maps")
		if !errors.Is(err, gbxhdr.ErrorTruncated) {
			t.Fatalf("err = %v, want truncated", err)
		}
		if s.Failed != 1 || len(s.Results) != 1 {
			t.Fatalf("summary = %+v", s)
		}
		if diff := cmp.Diff(header('U', 32), readFile(t, fs, "maps/b.Gbx")); diff != "" {
			t.Fatalf("later file touched after failure (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{0}, logged); diff != "" {
			t.Fatalf("log levels (-want +got):\n%s", diff)
		}
	})

	t.Run("continue after failure", func(t *testing.T) {
		fs := newFS()
		r := New(fs, Config{Extension: DefaultExtension, KeepGoing: true})

		s, err := r.Run("maps", "absent")
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if s.Failed != 2 || s.Patched != 1 || s.Unchanged != 1 {
			t.Fatalf("summary = %+v", s)
		}
		if got := readFile(t, fs, "maps/a.Gbx"); len(got) != 8 {
			t.Fatalf("truncated file length changed to %d", len(got))
		}
		if got := readFile(t, fs, "maps/b.Gbx"); !cmp.Equal(got[13:17], []byte{0, 0, 0, 0}) {
			t.Fatalf("patch field = % x, want zero", got[13:17])
		}
	})
}
