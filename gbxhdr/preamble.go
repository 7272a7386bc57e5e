package gbxhdr

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

var signature = []byte("GBX")

const (
	CompressionCompressed   = 'C'
	CompressionUncompressed = 'U'
)

// Preamble is the fixed prefix of a Gbx header. It is decoded for display
// only; nothing here is validated before patching.
type Preamble struct {
	Signature       [3]byte
	Version         uint16
	Format          byte
	RefCompression  byte
	BodyCompression byte
	Unknown         byte
	ClassID         uint32
	PatchField      uint32
}

func ReadPreamble(r io.ReaderAt) (*Preamble, error) {
	var buf [MinPatchLength]byte
	n, err := r.ReadAt(buf[:], 0)
	if n < len(buf) {
		if err == nil || err == io.EOF {
			return nil, errors.Wrapf(ErrorTruncated, "%d bytes, need %d", n, len(buf))
		}
		return nil, errors.Wrap(err, "read preamble")
	}

	p := &Preamble{
		Version:         binary.LittleEndian.Uint16(buf[3:]),
		Format:          buf[5],
		RefCompression:  buf[6],
		BodyCompression: buf[OffsetCompression],
		Unknown:         buf[8],
		ClassID:         binary.LittleEndian.Uint32(buf[9:]),
		PatchField:      binary.LittleEndian.Uint32(buf[OffsetPatchField:]),
	}
	copy(p.Signature[:], buf[:3])

	return p, nil
}

func (p *Preamble) Valid() bool {
	return bytes.Equal(p.Signature[:], signature)
}

func (p *Preamble) NeedsPatch() bool {
	return NeedsPatch(p.BodyCompression)
}

func CompressionName(b byte) string {
	switch b {
	case CompressionCompressed:
		return "compressed"
	case CompressionUncompressed:
		return "uncompressed"
	}
	return fmt.Sprintf("unknown (0x%02x)", b)
}
