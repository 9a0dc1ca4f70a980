// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package winstr_test

import (
	"testing"

	"github.com/MaulingMonkey/winstr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// foreignCall stands in for a foreign function taking a required and an optional BSTR.
func foreignCall(required winstr.Ptr, optional winstr.OptPtr) (*uint16, *uint16) {
	return required.BSTR(), optional.OptBSTR()
}

func TestPtrImplementations(t *testing.T) {
	tracked(t)

	owned := winstr.MustFromString("owned")
	defer owned.Free()
	lit := winstr.MustLiteral("literal")

	req, opt := foreignCall(owned, lit)
	assert.Equal(t, owned.BSTR(), req)
	assert.Equal(t, lit.BSTR(), opt)

	req, opt = foreignCall(lit, winstr.None)
	assert.Equal(t, lit.BSTR(), req)
	assert.Nil(t, opt)

	var absentOwned *winstr.BString
	var absentBorrowed *winstr.BStr
	_, opt = foreignCall(lit, absentOwned)
	assert.Nil(t, opt)
	_, opt = foreignCall(lit, absentBorrowed)
	assert.Nil(t, opt)
}

func TestBorrowDoesNotCopyBStrings(t *testing.T) {
	a := tracked(t)

	owned := winstr.MustFromString("no copy")
	defer owned.Free()

	arg, err := winstr.Borrow(owned)
	require.NoError(t, err)
	defer arg.Close()
	assert.Same(t, owned.BSTR(), arg.BSTR())

	arg2, err := winstr.Borrow(owned.BStr())
	require.NoError(t, err)
	defer arg2.Close()
	assert.Same(t, owned.BSTR(), arg2.BSTR())

	assert.Equal(t, 1, a.Allocs())
}

func TestBorrowConvertsText(t *testing.T) {
	a := tracked(t)

	arg, err := winstr.Borrow("temporary")
	require.NoError(t, err)
	assert.Equal(t, 1, a.Live())

	b, ok := winstr.FromBSTR(arg.BSTR())
	require.True(t, ok)
	assert.Equal(t, "temporary", b.String())

	arg.Close()
	assert.Equal(t, 0, a.Live())

	arg, err = winstr.Borrow([]uint16{'u', 0xD800})
	require.NoError(t, err)
	defer arg.Close()
	b, ok = winstr.FromBSTR(arg.BSTR())
	require.True(t, ok)
	assert.Equal(t, []uint16{'u', 0xD800}, b.Units())
}

func TestBorrowRejectsNilAndFreed(t *testing.T) {
	tracked(t)

	_, err := winstr.Borrow((*winstr.BStr)(nil))
	assert.ErrorIs(t, err, winstr.ErrInvalidPointer)

	freed := winstr.MustFromString("gone")
	freed.Free()
	_, err = winstr.Borrow(freed)
	assert.ErrorIs(t, err, winstr.ErrInvalidPointer)
}

func TestBorrowOpt(t *testing.T) {
	a := tracked(t)

	absent, err := winstr.BorrowOpt("ignored", false)
	require.NoError(t, err)
	assert.True(t, absent.IsAbsent())
	assert.Nil(t, absent.OptBSTR())
	assert.Panics(t, func() { absent.BSTR() })
	absent.Close()
	assert.Equal(t, 0, a.Allocs())

	present, err := winstr.BorrowOpt("", true)
	require.NoError(t, err)
	defer present.Close()
	assert.False(t, present.IsAbsent())
	assert.NotNil(t, present.OptBSTR())

	_, opt := foreignCall(winstr.MustLiteral("x"), present)
	assert.Equal(t, present.BSTR(), opt)
}

func TestBorrowReportsAllocationFailure(t *testing.T) {
	a := tracked(t)
	a.FailAfter = 1
	keep := winstr.MustFromString("only")
	defer keep.Free()

	_, err := winstr.Borrow("does not fit")
	assert.ErrorIs(t, err, winstr.ErrOutOfMemory)
}
