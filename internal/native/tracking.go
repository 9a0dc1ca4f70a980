// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package native

import (
	"sync"
	"unsafe"
)

// TrackingAllocator is a Go-heap BSTR allocator with exact accounting.
// It lays buffers out exactly like SysAllocStringLen and records every Alloc and Free,
// so tests can prove that each string is freed once and only once.
// Buffers live on the Go heap: they must never be handed to real foreign code.
type TrackingAllocator struct {
	// FailAfter makes Alloc return nil once this many allocations have succeeded.
	// Zero means never fail.
	FailAfter int

	// OnViolation, if set, is called for every Free of an unknown or already freed pointer.
	OnViolation func(p *uint16)

	mu         sync.Mutex
	live       map[*uint16][]uint32
	freed      map[*uint16]struct{}
	allocs     int
	frees      int
	violations int
	doubles    int
}

func NewTrackingAllocator() *TrackingAllocator {
	return &TrackingAllocator{
		live:  make(map[*uint16][]uint32),
		freed: make(map[*uint16]struct{}),
	}
}

// Alloc allocates room for the prefix, n units, and a terminator.
func (a *TrackingAllocator) Alloc(src *uint16, n uint32) *uint16 {
	if n > MaxLen {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.FailAfter > 0 && a.allocs >= a.FailAfter {
		return nil
	}

	// One prefix word, then n+1 units rounded up to whole words.
	words := make([]uint32, 2+int(n/2))
	words[0] = 2 * n
	p := (*uint16)(unsafe.Pointer(&words[1]))
	if src != nil {
		copy(unsafe.Slice(p, int(n)), unsafe.Slice(src, int(n)))
	}

	a.live[p] = words
	delete(a.freed, p)
	a.allocs++
	return p
}

// Free releases p. Freeing nil is a no-op; freeing anything else not currently live counts as a violation.
func (a *TrackingAllocator) Free(p *uint16) {
	if p == nil {
		return
	}

	a.mu.Lock()
	if _, ok := a.live[p]; !ok {
		a.violations++
		if _, ok := a.freed[p]; ok {
			a.doubles++
		}
		cb := a.OnViolation
		a.mu.Unlock()
		if cb != nil {
			cb(p)
		}
		return
	}
	delete(a.live, p)
	a.freed[p] = struct{}{}
	a.frees++
	a.mu.Unlock()
}

func (a *TrackingAllocator) Len(p *uint16) uint32 {
	if p == nil {
		return 0
	}
	return PrefixLen(p)
}

// Allocs returns the number of successful allocations.
func (a *TrackingAllocator) Allocs() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocs
}

// Frees returns the number of successful frees.
func (a *TrackingAllocator) Frees() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frees
}

// Live returns the number of allocations not yet freed.
func (a *TrackingAllocator) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}

// Violations returns how many times Free was called with a pointer that was not live.
func (a *TrackingAllocator) Violations() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.violations
}

// DoubleFrees returns how many of the Violations were frees of a pointer this allocator had already freed,
// as opposed to a pointer it never allocated.
func (a *TrackingAllocator) DoubleFrees() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doubles
}

// Owns reports whether p is a live allocation of a.
func (a *TrackingAllocator) Owns(p *uint16) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.live[p]
	return ok
}

// SetPrefix overwrites the raw byte-length prefix of a live allocation.
// It exists to simulate corrupt foreign data in tests.
func (a *TrackingAllocator) SetPrefix(p *uint16, prefix uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if words, ok := a.live[p]; ok {
		words[0] = prefix
	}
}
