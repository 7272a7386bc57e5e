package main

import (
	"reflect"
	"strconv"

	"github.com/alecthomas/kong"
)

// intMapper parses integers in the given base, base 0 accepts 0x prefixes.
type intMapper struct {
	base int
}

func (h intMapper) Decode(ctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	err := ctx.Scan.PopValueInto("int", &value)
	if err != nil {
		return err
	}
	i, err := strconv.ParseInt(value, h.base, 64)
	if err != nil {
		return err
	}
	target.SetInt(i)
	return nil
}
