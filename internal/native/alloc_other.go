// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

//go:build !windows

package native

// Unavailable is the process allocator on platforms without OLE Automation.
// Every allocation fails; length queries read the prefix so that literal data still works.
type Unavailable struct{}

func platformAllocator() Allocator {
	return Unavailable{}
}

func (Unavailable) Alloc(src *uint16, n uint32) *uint16 { return nil }

// Free is a no-op: Alloc never hands out memory.
func (Unavailable) Free(p *uint16) {}

func (Unavailable) Len(p *uint16) uint32 {
	if p == nil {
		return 0
	}
	return PrefixLen(p)
}
