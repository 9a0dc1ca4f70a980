// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package winstr

import (
	"sync"

	"github.com/MaulingMonkey/winstr/internal/native"
	"github.com/MaulingMonkey/winstr/literal"
)

// FromStatic returns a *BStr over literal data produced by package literal or cmd/bstrgen.
// The layout is trusted; FromStatic only panics if the data is not 0-terminated.
// words must never be modified afterwards.
func FromStatic(words []uint32) *BStr {
	return (*BStr)(native.FromWords(words))
}

// MustLiteral encodes src (see package literal for the escape syntax) and returns it as a *BStr.
// It panics if src is malformed, so it is meant for package-level variables, where a bad
// literal fails at program start like a regexp.MustCompile.
func MustLiteral(src string) *BStr {
	words, err := literal.Encode(src)
	if err != nil {
		panic("winstr: MustLiteral(" + src + "): " + err.Error())
	}
	return FromStatic(words)
}

// Lazy returns a function that encodes src on first use and returns the same *BStr ever after.
// Use cmd/bstrgen to do the encoding at build time instead.
func Lazy(src string) func() *BStr {
	return sync.OnceValue(func() *BStr {
		return MustLiteral(src)
	})
}
