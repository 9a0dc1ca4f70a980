// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

// Package benchmarks measures BSTR construction, borrowing and hashing against plain Go UTF-16 handling.
package benchmarks

import (
	"fmt"
	"strings"
)

// Configuration constants
const (
	CorpusSize = 256
	LongRepeat = 64
)

// Corpus returns count strings mixing ASCII, BMP and astral text.
func Corpus(count int) []string {
	out := make([]string, count)
	for i := range out {
		switch i % 3 {
		case 0:
			out[i] = fmt.Sprintf("item_%d in partition %d", i, i%4)
		case 1:
			out[i] = fmt.Sprintf("élément %d • größe", i)
		default:
			out[i] = fmt.Sprintf("emoji %d \U0001F600\U0001F680", i)
		}
	}
	return out
}

// Long returns a single string of about LongRepeat times the size of a corpus entry.
func Long() string {
	return strings.Repeat("The quick brown fox jumps over the lazy dog. ", LongRepeat)
}

// TotalBytes is the UTF-8 size of strs, for b.SetBytes.
func TotalBytes(strs []string) int64 {
	var n int64
	for _, s := range strs {
		n += int64(len(s))
	}
	return n
}
