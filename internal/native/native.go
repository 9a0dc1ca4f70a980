// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

// Package native provides the low-level, unsafe building blocks for BSTR handling.
// This package isn't intended for direct usage, but rather as a building block for the higher-level winstr API.
// It is the only package in the module that imports "unsafe".
package native

import (
	"math"
	"sync/atomic"
	"unsafe"
)

// MaxLen is the largest code-unit count a valid BSTR may have.
// Keeping counts below 2^31 means the byte length, the terminator-inclusive length,
// and signed-length foreign APIs can never overflow. On 32-bit targets it is one lower,
// so that the terminator-inclusive length still fits in an int.
const MaxLen = min(1<<31-1, math.MaxInt-1)

// Sentinel is the length query result treated as an invalid, overflow-prone BSTR.
const Sentinel = ^uint32(0)

// Allocator is the foreign BSTR allocator ABI.
//
// Alloc returns a buffer of n+1 code units preceded by a 4-byte byte-length prefix, or nil.
// If src is non-nil, n code units are copied from it.
// Free releases a buffer returned by Alloc; Free(nil) is a no-op.
// Len returns the length in code units, excluding the terminator.
//
// Implementations must be safe to call from any goroutine, and Free must accept
// buffers allocated on a different goroutine.
type Allocator interface {
	Alloc(src *uint16, n uint32) *uint16
	Free(p *uint16)
	Len(p *uint16) uint32
}

type allocatorBox struct{ a Allocator }

var current atomic.Pointer[allocatorBox]

func init() {
	current.Store(&allocatorBox{platformAllocator()})
}

// System returns the process-wide allocator.
func System() Allocator {
	return current.Load().a
}

// Install replaces the process-wide allocator and returns a function restoring the previous one.
// Strings remember the allocator that produced them, so swapping never frees through the wrong allocator.
// Intended for tests and diagnostics.
func Install(a Allocator) (restore func()) {
	prev := current.Swap(&allocatorBox{a})
	return func() { current.Store(prev) }
}

// Prefix reads the raw byte-length prefix stored in front of p.
func Prefix(p *uint16) uint32 {
	return *(*uint32)(unsafe.Add(unsafe.Pointer(p), -4))
}

// PrefixLen reads the byte-length prefix in front of p and returns it in code units.
func PrefixLen(p *uint16) uint32 {
	return Prefix(p) / 2
}

// Check validates an incoming BSTR and returns its length in code units.
// It rejects nil, a length query at or above 2^31 (which includes Sentinel),
// and an odd byte-length prefix such as the all-ones sentinel prefix.
func Check(a Allocator, p *uint16) (n uint32, ok bool) {
	if p == nil {
		return 0, false
	}
	n = a.Len(p)
	if n == Sentinel || n > MaxLen {
		return 0, false
	}
	if Prefix(p)%2 != 0 {
		return 0, false
	}
	return n, true
}

// Units returns a zero-copy slice over the n code units starting at p.
func Units(p *uint16, n uint32) []uint16 {
	if p == nil {
		return nil
	}
	return unsafe.Slice(p, int(n))
}

// WideLen counts the code units of a NUL-terminated wide string (LPCWSTR), excluding the terminator.
// ok is false if no terminator is found within MaxLen units.
func WideLen(p *uint16) (n uint32, ok bool) {
	if p == nil {
		return 0, false
	}
	for n = 0; n < MaxLen; n++ {
		if *(*uint16)(unsafe.Add(unsafe.Pointer(p), uintptr(n)*2)) == 0 {
			return n, true
		}
	}
	return 0, false
}

// FromWords reinterprets producer-guaranteed literal data as a BSTR.
// words[0] is the byte length; the code units follow, packed two per word with the low unit first;
// the data ends in a zero terminator. The layout is trusted, only the terminator is checked.
func FromWords(words []uint32) *uint16 {
	if len(words) < 2 {
		panic("native: BSTR literal data must hold a length prefix and a terminator")
	}
	n := words[0] / 2
	units := unsafe.Slice((*uint16)(unsafe.Pointer(&words[1])), 2*(len(words)-1))
	if int(n) >= len(units) || units[n] != 0 {
		panic("native: BSTR literal data was supposed to be NUL-terminated")
	}
	return &units[0]
}
