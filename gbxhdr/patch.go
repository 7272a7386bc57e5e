package gbxhdr

import (
	"io"

	"github.com/pkg/errors"
)

type State int

const (
	StateInspected State = iota
	StateUnchanged
	StatePatched
)

func (s State) String() string {
	switch s {
	case StateInspected:
		return "inspected"
	case StateUnchanged:
		return "unchanged"
	case StatePatched:
		return "patched"
	}
	return "unknown"
}

// ReadIndicator returns the body compression byte. The handle may be
// positioned anywhere.
func ReadIndicator(r io.ReadSeeker) (byte, error) {
	if _, err := r.Seek(OffsetCompression, io.SeekStart); err != nil {
		return 0, errors.Wrap(err, "seek to compression indicator")
	}

	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, errors.Wrapf(ErrorTruncated, "reading offset %d", OffsetCompression)
		}
		return 0, errors.Wrap(err, "read compression indicator")
	}

	return buf[0], nil
}

// NeedsPatch reports whether the indicator selects the patch.
func NeedsPatch(indicator byte) bool {
	return indicator == CompressionSentinel
}

// PatchIfSentinel zeroes the patch field when the compression indicator is
// the sentinel. The length of f never changes: a file too short to hold
// the whole patch field is rejected before anything is written.
func PatchIfSentinel(f io.ReadWriteSeeker) (State, error) {
	indicator, err := ReadIndicator(f)
	if err != nil {
		return StateInspected, err
	}

	if !NeedsPatch(indicator) {
		return StateUnchanged, nil
	}

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return StateInspected, errors.Wrap(err, "seek to end")
	}
	if size < MinPatchLength {
		return StateInspected, errors.Wrapf(ErrorTruncated, "%d bytes, need %d", size, MinPatchLength)
	}

	if _, err := f.Seek(OffsetPatchField, io.SeekStart); err != nil {
		return StateInspected, errors.Wrap(err, "seek to patch field")
	}

	var zero [PatchFieldLength]byte
	n, err := f.Write(zero[:])
	if err != nil {
		return StateInspected, errors.Wrap(err, "write patch field")
	}
	if n != len(zero) {
		return StateInspected, errors.Wrapf(io.ErrShortWrite, "wrote %d of %d bytes", n, len(zero))
	}

	return StatePatched, nil
}
