// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

// Package literal encodes string literal text into the packed BSTR layout.
//
// The output of Encode is a sequence of 32-bit words:
//
//	word 0      byte length (2 × code units, terminator excluded)
//	words 1..N  code units, two per word, low unit first; an odd tail is padded with 0
//	word N+1    0 (terminator)
//
// Escapes follow the usual literal conventions:
//
//	\0 \t \n \r \\ \' \"   single characters
//	\xHH                   one code unit, exactly two hex digits
//	\u{H...}               a Unicode scalar value, 1-6 hex digits
//
// Any other escape is an error. cmd/bstrgen runs the encoder at generate time,
// so a malformed literal fails the build instead of the program.
package literal

import (
	"unicode/utf16"
	"unicode/utf8"
)

// MaxUnits is the largest code-unit count a literal may encode to.
const MaxUnits = 1<<31 - 1

type state int

const (
	statePlain state = iota
	stateEscape
)

// Decode converts literal text into UTF-16 code units, resolving escape sequences.
func Decode(src string) ([]uint16, error) {
	units := make([]uint16, 0, len(src))
	st := statePlain
	escStart := 0

	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, &Error{Code: CodeInvalidUTF8, Offset: i}
		}

		switch st {
		case statePlain:
			if r == '\\' {
				st = stateEscape
				escStart = i
				i += size
				continue
			}
			units = utf16.AppendRune(units, r)
			i += size

		case stateEscape:
			st = statePlain
			i += size
			switch r {
			case '0':
				units = append(units, 0)
			case 't':
				units = append(units, '\t')
			case 'n':
				units = append(units, '\n')
			case 'r':
				units = append(units, '\r')
			case '\\', '\'', '"':
				units = append(units, uint16(r))
			case 'x':
				v, next, err := hexByte(src, i, escStart)
				if err != nil {
					return nil, err
				}
				units = append(units, v)
				i = next
			case 'u':
				v, next, err := unicodeEscape(src, i, escStart)
				if err != nil {
					return nil, err
				}
				units = utf16.AppendRune(units, v)
				i = next
			default:
				return nil, &Error{Code: CodeBadEscape, Offset: escStart, Value: r}
			}
		}
	}

	if st == stateEscape {
		return nil, &Error{Code: CodeTruncatedEscape, Offset: escStart}
	}
	return units, nil
}

// hexByte parses the two hex digits of a \x escape starting at src[i].
func hexByte(src string, i, escStart int) (uint16, int, error) {
	if i+2 > len(src) {
		return 0, 0, &Error{Code: CodeBadHex, Offset: escStart}
	}
	var v uint16
	for j := i; j < i+2; j++ {
		d, ok := hexDigit(src[j])
		if !ok {
			return 0, 0, &Error{Code: CodeBadHex, Offset: escStart}
		}
		v = v*16 + uint16(d)
	}
	return v, i + 2, nil
}

// unicodeEscape parses the `{H...}` part of a \u escape starting at src[i].
func unicodeEscape(src string, i, escStart int) (rune, int, error) {
	bad := &Error{Code: CodeBadUnicodeEscape, Offset: escStart}
	if i >= len(src) || src[i] != '{' {
		return 0, 0, bad
	}
	i++

	var v rune
	digits := 0
	for {
		if i >= len(src) {
			return 0, 0, bad
		}
		c := src[i]
		i++
		if c == '}' {
			if digits == 0 {
				return 0, 0, bad
			}
			break
		}
		d, ok := hexDigit(c)
		if !ok || digits == 6 {
			return 0, 0, bad
		}
		v = v*16 + rune(d)
		digits++
	}

	if v > utf8.MaxRune || (v >= 0xD800 && v <= 0xDFFF) {
		return 0, 0, &Error{Code: CodeInvalidScalar, Offset: escStart, Value: v}
	}
	return v, i, nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// CheckLen rejects code-unit counts whose byte length would reach the overflow guard.
func CheckLen(n int) error {
	if n < 0 || uint64(n) > MaxUnits {
		return &Error{Code: CodeTooLong}
	}
	return nil
}

// Pack lays units out as length-prefixed, terminated 32-bit words.
func Pack(units []uint16) ([]uint32, error) {
	if err := CheckLen(len(units)); err != nil {
		return nil, err
	}

	words := make([]uint32, 0, 2+(len(units)+1)/2)
	words = append(words, 2*uint32(len(units)))
	for i := 0; i < len(units); i += 2 {
		w := uint32(units[i])
		if i+1 < len(units) {
			w |= uint32(units[i+1]) << 16
		}
		words = append(words, w)
	}
	words = append(words, 0)
	return words, nil
}

// Encode decodes src and packs the result.
func Encode(src string) ([]uint32, error) {
	units, err := Decode(src)
	if err != nil {
		return nil, err
	}
	return Pack(units)
}
