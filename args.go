// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package winstr

// Ptr is implemented by values that can be borrowed as a non-null BSTR:
// *BStr, *BString and Arg. The set is closed.
type Ptr interface {
	BSTR() *uint16
	isPtr()
}

// OptPtr is implemented by values that can be borrowed as a BSTR or null:
// *BStr, *BString (a nil pointer is null), Arg and None. The set is closed.
type OptPtr interface {
	OptBSTR() *uint16
	isOptPtr()
}

type none struct{}

func (none) OptBSTR() *uint16 { return nil }
func (none) isOptPtr()        {}

// None is the absent string; it borrows as a null BSTR.
var None OptPtr = none{}

// Text lists the argument types accepted by Borrow and BorrowOpt.
type Text interface {
	string | []uint16 | *BStr | *BString
}

// Arg is a function argument borrowed as a BSTR. Borrowed and owned strings are passed through;
// Go text is converted into a temporary BString, which Close frees.
// The zero Arg is absent: OptBSTR returns nil and BSTR panics.
type Arg struct {
	ref Ptr
	tmp *BString
}

// Borrow prepares v to be passed where a non-null BSTR is expected.
// *BStr and *BString arguments are not copied. Call Close when the foreign call returns.
func Borrow[T Text](v T) (Arg, error) {
	switch v := any(v).(type) {
	case *BStr:
		if v == nil {
			return Arg{}, ErrInvalidPointer
		}
		return Arg{ref: v}, nil
	case *BString:
		if v == nil || v.IsFreed() {
			return Arg{}, ErrInvalidPointer
		}
		return Arg{ref: v}, nil
	}

	var (
		tmp *BString
		err error
	)
	switch v := any(v).(type) {
	case string:
		tmp, err = FromString(v)
	case []uint16:
		tmp, err = FromUnits(v)
	}
	if err != nil {
		return Arg{}, err
	}
	return Arg{ref: tmp, tmp: tmp}, nil
}

// BorrowOpt is like Borrow, but an absent value borrows as a null BSTR.
func BorrowOpt[T Text](v T, present bool) (Arg, error) {
	if !present {
		return Arg{}, nil
	}
	return Borrow(v)
}

// BSTR returns the borrowed BSTR. It panics for an absent Arg.
func (a Arg) BSTR() *uint16 {
	if a.ref == nil {
		panic("winstr: BSTR of absent Arg")
	}
	return a.ref.BSTR()
}

// OptBSTR returns the borrowed BSTR, or nil for an absent Arg.
func (a Arg) OptBSTR() *uint16 {
	if a.ref == nil {
		return nil
	}
	return a.ref.BSTR()
}

// IsAbsent reports whether a borrows as null.
func (a Arg) IsAbsent() bool {
	return a.ref == nil
}

// Close frees any temporary BString created by Borrow.
func (a Arg) Close() {
	if a.tmp != nil {
		a.tmp.Free()
	}
}

func (a Arg) isPtr()    {}
func (a Arg) isOptPtr() {}
