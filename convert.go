// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package winstr

import (
	"unicode/utf16"

	"github.com/MaulingMonkey/winstr/internal/native"
	"golang.org/x/text/encoding"
)

// FromString creates a BString from UTF-8 text.
// The text is encoded to UTF-16 exactly once; the allocation is sized from that result.
func FromString(s string) (*BString, error) {
	return FromUnits(encode(s))
}

func encode(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for _, r := range s {
		units = utf16.AppendRune(units, r)
	}
	return units
}

// MustFromString is like FromString but panics on failure.
func MustFromString(s string) *BString {
	b, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// FromWide creates a BString from a NUL-terminated wide string, the platform's native text form.
// Unpaired surrogates are preserved.
func FromWide(p *uint16) (*BString, error) {
	if p == nil {
		return nil, ErrInvalidPointer
	}
	n, ok := native.WideLen(p)
	if !ok {
		return nil, ErrUnterminated
	}
	return FromUnits(native.Units(p, n))
}

// FromEncoded creates a BString from text in a legacy encoding, such as a Windows code page from
// golang.org/x/text/encoding/charmap.
func FromEncoded(b []byte, enc encoding.Encoding) (*BString, error) {
	s, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return nil, err
	}
	return FromString(string(s))
}

// FromBStr copies a borrowed string into a new BString.
func FromBStr(b *BStr) (*BString, error) {
	return FromUnits(b.Units())
}
