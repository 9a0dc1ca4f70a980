// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package literal

import "fmt"

// Code identifies why a literal could not be encoded.
type Code uint

const (
	CodeBadEscape Code = iota + 1
	CodeTruncatedEscape
	CodeBadHex
	CodeBadUnicodeEscape
	CodeInvalidScalar
	CodeInvalidUTF8
	CodeTooLong
)

// Error reports malformed literal text. Offset is the byte offset in the source
// where the offending sequence starts.
type Error struct {
	Code   Code
	Offset int
	Value  rune
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeBadEscape:
		return fmt.Sprintf("unknown escape sequence `\\%c` at offset %d", e.Value, e.Offset)
	case CodeTruncatedEscape:
		return fmt.Sprintf("expected character after `\\` at offset %d", e.Offset)
	case CodeBadHex:
		return fmt.Sprintf("expected two hexadecimal characters after `\\x` escape sequence at offset %d", e.Offset)
	case CodeBadUnicodeEscape:
		return fmt.Sprintf("expected 1-6 hexadecimal characters in `\\u{...}` escape sequence at offset %d", e.Offset)
	case CodeInvalidScalar:
		return fmt.Sprintf("invalid unicode codepoint U+%04X in `\\u{...}` escape sequence at offset %d", e.Value, e.Offset)
	case CodeInvalidUTF8:
		return fmt.Sprintf("invalid UTF-8 in literal at offset %d", e.Offset)
	case CodeTooLong:
		return "expected < 4GB bstr"
	default:
		return "unknown error"
	}
}
