// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package winstr

import (
	"encoding/binary"
	"slices"

	"github.com/spaolacci/murmur3"
)

// Units is implemented by *BStr and *BString. Equality, ordering and hashing
// are defined over the code units alone, never over pointer identity.
type Units interface {
	Units() []uint16
}

// Equal reports whether a and b hold the same code units.
func Equal(a, b Units) bool {
	return slices.Equal(a.Units(), b.Units())
}

// EqualString reports whether a holds the UTF-16 encoding of s.
func EqualString(a Units, s string) bool {
	return slices.Equal(a.Units(), encode(s))
}

// EqualUnits reports whether a holds exactly the code units u.
func EqualUnits(a Units, u []uint16) bool {
	return slices.Equal(a.Units(), u)
}

// Compare orders a and b lexicographically by code unit.
func Compare(a, b Units) int {
	return slices.Compare(a.Units(), b.Units())
}

// Hash hashes the code units of u. Equal strings hash equal, whatever their type.
func Hash(u Units) uint64 {
	return hashUnits(u.Units())
}

// HashString returns the Hash of the UTF-16 encoding of s.
func HashString(s string) uint64 {
	return hashUnits(encode(s))
}

func hashUnits(units []uint16) uint64 {
	h := murmur3.New64()
	var buf [256]byte
	for len(units) > 0 {
		chunk := units[:min(len(units), len(buf)/2)]
		b := buf[:0]
		for _, u := range chunk {
			b = binary.LittleEndian.AppendUint16(b, u)
		}
		h.Write(b)
		units = units[len(chunk):]
	}
	return h.Sum64()
}

func (b *BStr) Equal(o Units) bool         { return Equal(b, o) }
func (b *BStr) Compare(o Units) int        { return Compare(b, o) }
func (b *BStr) EqualString(s string) bool  { return EqualString(b, s) }
func (b *BStr) EqualUnits(u []uint16) bool { return EqualUnits(b, u) }

func (b *BString) Equal(o Units) bool         { return Equal(b, o) }
func (b *BString) Compare(o Units) int        { return Compare(b, o) }
func (b *BString) EqualString(s string) bool  { return EqualString(b, s) }
func (b *BString) EqualUnits(u []uint16) bool { return EqualUnits(b, u) }
