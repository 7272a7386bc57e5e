package main

import (
	"fmt"

	"github.com/gbx-tools/gbxpatch/gbxhdr"
)

type ListFieldsCmd struct {
}

func (l *ListFieldsCmd) Run(c *Context) error {
	fmt.Printf("Field           | Offset | Length | Access\n")

	for _, m := range gbxhdr.Layout() {
		access := "read"
		if m.Writable {
			access = "write"
		}
		fmt.Printf("%-16s|  %5d |  %5d | %s\n", m.Name, m.Offset, m.Length, access)
	}

	fmt.Printf("\nPatch applies when %s == %d (%q).\n",
		gbxhdr.FieldBodyCompression, gbxhdr.CompressionSentinel, rune(gbxhdr.CompressionSentinel))
	return nil
}
