package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gbx-tools/gbxpatch/gbxhdr"
)

type InspectCmd struct {
	Filename string `arg:"" name:"filename" help:"File to inspect."`
	Bytes    int    `optional:"" help:"Number of bytes to dump." type:"int" default:"0x40"`
}

func (l *InspectCmd) Run(c *Context) error {
	paths, err := absPaths([]string{l.Filename})
	if err != nil {
		return err
	}

	f, err := c.fs.Open(paths[0])
	if err != nil {
		return err
	}
	defer f.Close()

	if l.Bytes < gbxhdr.MinPatchLength {
		l.Bytes = gbxhdr.MinPatchLength
	}

	buf := make([]byte, l.Bytes)
	n, err := f.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return err
	}
	buf = buf[:n]

	fmt.Printf("%s (%d bytes shown)\n\n", paths[0], n)
	fmt.Println(hexdump(0, buf, headerMarks(len(buf))))

	p, err := gbxhdr.ReadPreamble(f)
	if err != nil {
		return err
	}

	if !p.Valid() {
		fmt.Fprintf(os.Stderr, "%s: %v\n", color.YellowString("warning"), gbxhdr.ErrorInvalidPreamble)
	}

	fmt.Printf("Signature        %q\n", p.Signature[:])
	fmt.Printf("Version          %d\n", p.Version)
	fmt.Printf("Format           %q\n", rune(p.Format))
	fmt.Printf("RefCompression   %s\n", gbxhdr.CompressionName(p.RefCompression))
	fmt.Printf("BodyCompression  %s\n", markIndicator.Sprint(gbxhdr.CompressionName(p.BodyCompression)))
	fmt.Printf("ClassID          %08x\n", p.ClassID)
	fmt.Printf("PatchField       %s\n", markPatch.Sprintf("%08x", p.PatchField))
	fmt.Println()

	if p.NeedsPatch() {
		if p.PatchField == 0 {
			fmt.Println("Patch applies, field is already zero.")
		} else {
			fmt.Println("Patch applies, field will be zeroed.")
		}
	} else {
		fmt.Println("Patch does not apply.")
	}
	return nil
}
