package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gbx-tools/gbxpatch/gbxhdr"
)

const hexdumpWidth = 16

var (
	markIndicator = color.New(color.FgYellow)
	markPatch     = color.New(color.FgRed)
)

// headerMarks colors the compression indicator and the patch field.
func headerMarks(length int) []*color.Color {
	mark := make([]*color.Color, length)
	for i := range mark {
		if i == gbxhdr.OffsetCompression {
			mark[i] = markIndicator
		} else if i >= gbxhdr.OffsetPatchField && i < gbxhdr.MinPatchLength {
			mark[i] = markPatch
		}
	}
	return mark
}

func hexdump(offset int, data []byte, mark []*color.Color) string {
	var result string

	for len(data) > 0 {
		l := len(data)
		if l > hexdumpWidth {
			l = hexdumpWidth
		}
		work := data[:l]
		data = data[l:]
		var workMark []*color.Color
		if mark != nil {
			workMark = mark[:l]
			mark = mark[l:]
		}

		var workHex string
		var workAscii string
		for i := 0; i < hexdumpWidth; i++ {
			if i >= len(work) {
				workHex += "   "
				workAscii += " "
			} else {
				m := work[i]
				var c *color.Color
				if workMark != nil {
					c = workMark[i]
				}

				ch := m
				if ch < 32 || ch > 126 {
					ch = '.'
				}

				if c != nil {
					workHex += c.Sprintf("%02x ", m)
					workAscii += c.Sprintf("%c", ch)
				} else {
					workHex += fmt.Sprintf("%02x ", m)
					workAscii += fmt.Sprintf("%c", ch)
				}
			}
			if i%8 == 7 {
				workHex += " "
			}
		}

		result += fmt.Sprintf("%08x  %s|%s|\n", offset, workHex, workAscii)
		offset += l
	}

	return result
}
