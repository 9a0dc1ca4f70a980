// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package main

//go:generate go run github.com/MaulingMonkey/winstr/cmd/bstrgen -p main -o strings_bstr.go "Borrowed=Testing\\0123"

import (
	"errors"
	"fmt"
	"os"

	"github.com/MaulingMonkey/winstr"
)

func describe(name string, b *winstr.BStr) {
	fmt.Printf("%s = %#v (len %d, hash %016x)\n", name, b, b.Len(), winstr.Hash(b))
}

func main() {
	winstr.EnableTracing()

	standard := "Testing\x00123"
	fmt.Printf("standard = %q\n", standard)

	describe("borrowed", Borrowed)

	owned, err := winstr.FromString(standard)
	if errors.Is(err, winstr.ErrOutOfMemory) {
		fmt.Println("owned: no BSTR allocator on this platform")
		os.Exit(0)
	}
	if err != nil {
		panic(err)
	}
	defer owned.Free()

	describe("owned", owned.BStr())
	fmt.Println("borrowed == owned:", winstr.Equal(Borrowed, owned))

	for _, arg := range os.Args[1:] {
		s, err := winstr.FromString(arg)
		if err != nil {
			panic(err)
		}
		describe("arg", s.BStr())
		s.Free()
	}
}
