// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package winstr

import (
	"strconv"
	"unicode/utf16"

	"github.com/MaulingMonkey/winstr/internal/native"
	"go.uber.org/zap"
)

// BStr is a borrowed BSTR. A *BStr points at the first code unit of a valid BSTR and is never nil
// when obtained from this package. BStr never owns the memory it points at.
//
// Unlike a Go string, a BStr cannot be sliced and remain a BSTR; slice Units instead.
type BStr uint16

// FromBSTR converts a raw BSTR into a *BStr. It returns false for nil, or for a BSTR whose
// length prefix is corrupt or at or above the 2^31 code-unit limit.
//
// The caller must guarantee that p stays valid and unmodified for as long as the *BStr is used.
// Nothing ties the result's lifetime to p; prefer WithBSTR, which confines the view to a callback.
func FromBSTR(p *uint16) (*BStr, bool) {
	if _, ok := native.Check(native.System(), p); !ok {
		if p != nil {
			Logger().Debug("rejected incoming BSTR", zap.Uint32("prefix", native.Prefix(p)))
		}
		return nil, false
	}
	return (*BStr)(p), true
}

// WithBSTR borrows p for the duration of fn. It returns ErrInvalidPointer without calling fn
// if p is rejected by FromBSTR.
func WithBSTR(p *uint16, fn func(b *BStr) error) error {
	b, ok := FromBSTR(p)
	if !ok {
		return ErrInvalidPointer
	}
	return fn(b)
}

// Len is the 32-bit length in code units, excluding the terminal 0.
// A BStr does not know which allocator produced it, so the length is always queried through
// the process allocator, even for a view of a BString made under a different one.
func (b *BStr) Len() uint32 {
	return native.System().Len(b.BSTR())
}

// Len0 is the 32-bit length in code units, including the terminal 0.
func (b *BStr) Len0() uint32 {
	return b.Len() + 1
}

// ByteLen is the value of the length prefix: the length in bytes, excluding the terminal 0.
func (b *BStr) ByteLen() uint32 {
	return 2 * b.Len()
}

func (b *BStr) IsEmpty() bool {
	return b.Len() == 0
}

// Units returns the code units of the string, excluding the terminal 0.
// The slice aliases the BSTR and must not be modified.
func (b *BStr) Units() []uint16 {
	return native.Units(b.BSTR(), b.Len())
}

// Units0 returns the code units of the string, including the terminal 0.
// The slice aliases the BSTR and must not be modified.
func (b *BStr) Units0() []uint16 {
	return native.Units(b.BSTR(), b.Len0())
}

// BSTR returns the string as a raw BSTR for foreign calls.
// The result is never nil and always 0-terminated. It is not safe to modify the string through it.
func (b *BStr) BSTR() *uint16 {
	return (*uint16)(b)
}

// LPCWSTR returns the string as a NUL-terminated wide string pointer.
func (b *BStr) LPCWSTR() *uint16 {
	return b.BSTR()
}

// OptBSTR returns the string as a raw BSTR, or nil for a nil *BStr.
func (b *BStr) OptBSTR() *uint16 {
	if b == nil {
		return nil
	}
	return b.BSTR()
}

// String decodes the string as UTF-16. Unpaired surrogates become U+FFFD.
func (b *BStr) String() string {
	return string(utf16.Decode(b.Units()))
}

// GoString returns the string quoted, for %#v.
func (b *BStr) GoString() string {
	return strconv.Quote(b.String())
}

func (b *BStr) isPtr()    {}
func (b *BStr) isOptPtr() {}
