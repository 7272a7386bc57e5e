package main

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/gbx-tools/gbxpatch/gbxhdr"
	"github.com/google/go-cmp/cmp"
)

func TestHexdump(t *testing.T) {
	color.NoColor = true

	data := []byte("GBX\x06\x00BUUR\x00\x30\x04\x03\x10\x00\x00\x00\x41")
	got := hexdump(0, data, headerMarks(len(data)))

	want := "00000000  47 42 58 06 00 42 55 55  52 00 30 04 03 10 00 00  |GBX..BUUR.0.....|\n" +
		"00000010  00 41                                             |.A              |\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("hexdump (-want +got):\n%s", diff)
	}
}

func TestHeaderMarks(t *testing.T) {
	mark := headerMarks(32)
	for i, m := range mark {
		switch {
		case i == gbxhdr.OffsetCompression:
			if m != markIndicator {
				t.Errorf("offset %d not marked as indicator", i)
			}
		case i >= 13 && i <= 16:
			if m != markPatch {
				t.Errorf("offset %d not marked as patch field", i)
			}
		case m != nil:
			t.Errorf("offset %d unexpectedly marked", i)
		}
	}
	if strings.Count(hexdump(0x20, make([]byte, 40), nil), "\n") != 3 {
		t.Errorf("expected three rows for 40 bytes")
	}
}
