// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

//go:build windows

package native

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modoleaut32 = windows.NewLazySystemDLL("oleaut32.dll")

	procSysAllocStringLen = modoleaut32.NewProc("SysAllocStringLen")
	procSysFreeString     = modoleaut32.NewProc("SysFreeString")
	procSysStringLen      = modoleaut32.NewProc("SysStringLen")
)

// OleAut binds the OLE Automation BSTR allocator.
// SysFreeString is safe to call on a BSTR allocated by another thread.
type OleAut struct{}

func platformAllocator() Allocator {
	return OleAut{}
}

// Alloc calls SysAllocStringLen. It returns nil if oleaut32.dll could not be loaded or the allocation failed.
func (OleAut) Alloc(src *uint16, n uint32) *uint16 {
	if procSysAllocStringLen.Find() != nil {
		return nil
	}
	r, _, _ := procSysAllocStringLen.Call(uintptr(unsafe.Pointer(src)), uintptr(n))
	return (*uint16)(unsafe.Pointer(r))
}

// Free calls SysFreeString.
func (OleAut) Free(p *uint16) {
	if p == nil {
		return
	}
	procSysFreeString.Call(uintptr(unsafe.Pointer(p)))
}

// Len calls SysStringLen.
func (OleAut) Len(p *uint16) uint32 {
	if p == nil {
		return 0
	}
	if procSysStringLen.Find() != nil {
		return PrefixLen(p)
	}
	r, _, _ := procSysStringLen.Call(uintptr(unsafe.Pointer(p)))
	return uint32(r)
}
