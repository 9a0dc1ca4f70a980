// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package winstr

// ResultCode classifies why no string was produced.
type ResultCode uint

const (
	ResultCodeSuccess ResultCode = iota
	ResultCodeTooLong
	ResultCodeOutOfMemory
	ResultCodeInvalidPointer
	ResultCodeUnterminated
)

var (
	// ErrTooLong is returned when a string would reach 2^31 code units.
	ErrTooLong = &Error{ResultCodeTooLong}
	// ErrOutOfMemory is returned when the allocator returned null.
	ErrOutOfMemory = &Error{ResultCodeOutOfMemory}
	// ErrInvalidPointer is returned for a null or corrupt incoming BSTR.
	ErrInvalidPointer = &Error{ResultCodeInvalidPointer}
	// ErrUnterminated is returned for wide text with no NUL terminator in range.
	ErrUnterminated = &Error{ResultCodeUnterminated}
)

type Error struct {
	code ResultCode
}

func (e *Error) Code() uint {
	return uint(e.code)
}

// Is matches errors by code, so errors.Is(err, ErrTooLong) works for any *Error with that code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code == e.code
}

func (e *Error) Error() string {
	switch e.code {
	case ResultCodeSuccess:
		return "action was successful" // Shouldn't call this, but might as well return something descriptive.
	case ResultCodeTooLong:
		return "string length would overflow the BSTR length prefix"
	case ResultCodeOutOfMemory:
		return "BSTR allocation failed"
	case ResultCodeInvalidPointer:
		return "BSTR was null or had an invalid length prefix"
	case ResultCodeUnterminated:
		return "wide string was not NUL-terminated"
	default:
		return "unknown error"
	}
}
