// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package winstr

import (
	"iter"
	"runtime"
	"strconv"
	"sync/atomic"
	"unicode/utf16"

	"github.com/MaulingMonkey/winstr/internal/native"
	"go.uber.org/zap"
)

// BString is an owned, non-null BSTR allocated through the foreign allocator.
//
// A BString owns exactly one allocation and frees it exactly once, when Free is called.
// Views taken from it (BStr, Units, BSTR) stay valid until then, even if the *BString itself
// is no longer referenced. A BString dropped without Free leaks its allocation, and the leak is
// logged. Copy the *BString to share the owner; use Release to hand the allocation to foreign code.
type BString struct {
	ptr     atomic.Pointer[uint16]
	alloc   native.Allocator
	cleanup runtime.Cleanup
}

type allocation struct {
	ptr   *uint16
	alloc native.Allocator
}

// reportLeak runs when an unfreed BString becomes unreachable. It never frees:
// views of the string may still be in use.
func reportLeak(a allocation) {
	Logger().Warn("BString leaked without Free", zap.Uint32("len", a.alloc.Len(a.ptr)))
}

// own wraps a live allocation. The returned BString is responsible for freeing p.
func own(p *uint16, alloc native.Allocator) *BString {
	b := &BString{alloc: alloc}
	b.ptr.Store(p)
	b.cleanup = runtime.AddCleanup(b, reportLeak, allocation{p, alloc})
	return b
}

func checkLen(n int) error {
	if n < 0 || uint64(n) > native.MaxLen {
		Logger().Debug("rejected BSTR length", zap.Int("len", n))
		return ErrTooLong
	}
	return nil
}

// allocate reserves n code units plus the terminator.
func allocate(alloc native.Allocator, n int) (*BString, error) {
	if err := checkLen(n); err != nil {
		return nil, err
	}
	p := alloc.Alloc(nil, uint32(n))
	if p == nil {
		Logger().Debug("BSTR allocation failed", zap.Int("len", n))
		return nil, ErrOutOfMemory
	}
	return own(p, alloc), nil
}

// FromUnitsSeq creates a BString of exactly n code units drawn from seq.
//
// n is trusted over seq: at most n units are read, and if seq yields fewer, the rest are 0.
// The allocation is freed again if seq panics.
func FromUnitsSeq(n int, seq iter.Seq[uint16]) (*BString, error) {
	b, err := allocate(native.System(), n)
	if err != nil {
		return nil, err
	}

	done := false
	defer func() {
		if !done {
			b.Free()
		}
	}()

	// The allocator does not promise zeroed memory, so every unit is written.
	units := native.Units(b.ptr.Load(), uint32(n)+1)
	i := 0
	if n > 0 {
		for u := range seq {
			units[i] = u
			i++
			if i == n {
				break
			}
		}
	}
	clear(units[i:])

	done = true
	return b, nil
}

// FromUnits creates a BString holding a copy of units.
func FromUnits(units []uint16) (*BString, error) {
	alloc := native.System()
	if err := checkLen(len(units)); err != nil {
		return nil, err
	}

	var src *uint16
	if len(units) > 0 {
		src = &units[0]
	}
	p := alloc.Alloc(src, uint32(len(units)))
	if p == nil {
		Logger().Debug("BSTR allocation failed", zap.Int("len", len(units)))
		return nil, ErrOutOfMemory
	}
	native.Units(p, uint32(len(units))+1)[len(units)] = 0
	return own(p, alloc), nil
}

// TakeBSTR takes ownership of p, which must have been returned by the process allocator
// and must not be owned by anything else. It returns false, leaving p untouched, for nil or corrupt BSTRs.
func TakeBSTR(p *uint16) (*BString, bool) {
	alloc := native.System()
	if _, ok := native.Check(alloc, p); !ok {
		return nil, false
	}
	return own(p, alloc), true
}

// IsFreed returns a boolean indicating whether the string has been freed or released.
func (b *BString) IsFreed() bool {
	return b.ptr.Load() == nil
}

// Free disposes of the BSTR. It is safe to call more than once; only the first call frees.
func (b *BString) Free() {
	if p := b.ptr.Swap(nil); p != nil {
		b.cleanup.Stop()
		b.alloc.Free(p)
	}
}

// Release gives up ownership and returns the raw BSTR, which the caller must now free
// (usually by passing it to foreign code that takes ownership). It returns nil if the string was already freed.
func (b *BString) Release() *uint16 {
	p := b.ptr.Swap(nil)
	if p != nil {
		b.cleanup.Stop()
	}
	return p
}

// BStr borrows the string. The view is valid until the BString is freed or released,
// and returns nil afterwards.
func (b *BString) BStr() *BStr {
	return (*BStr)(b.ptr.Load())
}

// Len is the 32-bit length in code units, excluding the terminal 0.
// Unlike (*BStr).Len, it asks the allocator that produced the string.
func (b *BString) Len() uint32 {
	return b.alloc.Len(b.BSTR())
}

// Len0 is the 32-bit length in code units, including the terminal 0.
func (b *BString) Len0() uint32 {
	return b.Len() + 1
}

func (b *BString) ByteLen() uint32 {
	return 2 * b.Len()
}

func (b *BString) IsEmpty() bool {
	return b.Len() == 0
}

// Units returns the code units of the string, excluding the terminal 0.
func (b *BString) Units() []uint16 {
	return native.Units(b.BSTR(), b.Len())
}

// Units0 returns the code units of the string, including the terminal 0.
func (b *BString) Units0() []uint16 {
	return native.Units(b.BSTR(), b.Len0())
}

// BSTR returns the string as a raw BSTR for foreign calls. Ownership is not transferred.
// It panics if the string was freed or released.
func (b *BString) BSTR() *uint16 {
	p := b.ptr.Load()
	if p == nil {
		panic("winstr: use of freed BString")
	}
	return p
}

func (b *BString) LPCWSTR() *uint16 {
	return b.BSTR()
}

// OptBSTR returns the string as a raw BSTR, or nil for a nil *BString.
func (b *BString) OptBSTR() *uint16 {
	if b == nil {
		return nil
	}
	return b.BSTR()
}

// Clone allocates an independent copy of the string.
func (b *BString) Clone() (*BString, error) {
	return FromUnits(b.Units())
}

func (b *BString) String() string {
	return string(utf16.Decode(b.Units()))
}

func (b *BString) GoString() string {
	return strconv.Quote(b.String())
}

func (b *BString) isPtr()    {}
func (b *BString) isOptPtr() {}
