package gbxhdr

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadPreamble(t *testing.T) {
	data := []byte{
		'G', 'B', 'X',
		0x06, 0x00,
		'B', 'U', 'U', 'R',
		0x00, 0x30, 0x04, 0x03,
		0x10, 0x00, 0x00, 0x00,
		0xde, 0xad,
	}

	p, err := ReadPreamble(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadPreamble: %v", err)
	}

	want := &Preamble{
		Signature:       [3]byte{'G', 'B', 'X'},
		Version:         6,
		Format:          'B',
		RefCompression:  'U',
		BodyCompression: 'U',
		Unknown:         'R',
		ClassID:         0x03043000,
		PatchField:      16,
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("preamble (-want +got):\n%s", diff)
	}
	if !p.Valid() {
		t.Errorf("expected valid signature")
	}
	if !p.NeedsPatch() {
		t.Errorf("expected uncompressed body to need the patch")
	}
}

func TestReadPreambleShort(t *testing.T) {
	_, err := ReadPreamble(bytes.NewReader([]byte("GBX\x06\x00BUC")))
	if !errors.Is(err, ErrorTruncated) {
		t.Fatalf("err = %v, want %v", err, ErrorTruncated)
	}
}

func TestCompressionName(t *testing.T) {
	for b, want := range map[byte]string{
		'C':  "compressed",
		'U':  "uncompressed",
		0x00: "unknown (0x00)",
	} {
		if got := CompressionName(b); got != want {
			t.Errorf("CompressionName(0x%02x) = %q, want %q", b, got, want)
		}
	}
}
