// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

// Package winstr provides safe wrappers around BSTRs, the length-prefixed UTF-16ish strings
// of OLE Automation.
//
// A BSTR is a pointer to the first code unit of a buffer laid out as
//
//	[u32 byte length][u16 code unit]*[u16 0]
//
// where the byte length excludes the terminating 0. BSTRs are allocated with SysAllocStringLen
// and freed with SysFreeString.
//
// Two types model them:
//
//   - *BString owns one BSTR allocation and frees it exactly once, when Free is called.
//     A BString dropped without Free leaks, and the leak is logged.
//   - *BStr borrows a BSTR owned by someone else: a BString, foreign code, or literal data.
//
// Neither is ever nil when obtained from this package; an absent string is None, a nil
// pointer behind OptPtr, or a false ok result. Lengths are always below 2^31 code units.
//
// Literals can be built without allocating, either at build time with cmd/bstrgen:
//
//	//go:generate go run github.com/MaulingMonkey/winstr/cmd/bstrgen -p main -o strings_bstr.go Greeting=Hello
//
// or at first use with Lazy:
//
//	var greeting = winstr.Lazy(`Hello \u{1F600}`)
//
// Pass strings to foreign functions through Ptr, OptPtr or Borrow:
//
//	arg, err := winstr.Borrow("some text")
//	if err != nil {
//	    return err
//	}
//	defer arg.Close()
//	callForeign(arg.BSTR())
//
// On platforms without OLE Automation every allocation fails with ErrOutOfMemory.
package winstr
