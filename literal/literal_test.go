// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package literal_test

import (
	"errors"
	"testing"
	"unicode/utf16"

	"github.com/MaulingMonkey/winstr/literal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHello(t *testing.T) {
	words, err := literal.Encode("Hello")
	require.NoError(t, err)
	assert.Equal(t, []uint32{10, 0x00650048, 0x006c006c, 0x0000006f, 0}, words)
}

func TestEncodeEvenLength(t *testing.T) {
	words, err := literal.Encode("ab")
	require.NoError(t, err)
	assert.Equal(t, []uint32{4, 0x00620061, 0}, words)
}

func TestEncodeEmpty(t *testing.T) {
	words, err := literal.Encode("")
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 0}, words)
}

func TestDecodeSurrogatePair(t *testing.T) {
	units, err := literal.Decode(`\u{1F600}`)
	require.NoError(t, err)

	hi, lo := utf16.EncodeRune(0x1F600)
	assert.Equal(t, []uint16{uint16(hi), uint16(lo)}, units)

	words, err := literal.Pack(units)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), words[0])
}

func TestDecodeMatchesUTF16(t *testing.T) {
	// The same text once as escapes and once as plain characters.
	escaped := `Hello, world!\0\r\n\t\x12\u{1234}\u{10000}©™`
	plain := "Hello, world!\x00\r\n\t\x12ሴ\U00010000©™"

	units, err := literal.Decode(escaped)
	require.NoError(t, err)
	assert.Equal(t, utf16.Encode([]rune(plain)), units)
}

func TestDecodeSimpleEscapes(t *testing.T) {
	units, err := literal.Decode(`\\\'\"`)
	require.NoError(t, err)
	assert.Equal(t, []uint16{'\\', '\'', '"'}, units)
}

func TestDecodeHexEscapeKeepsHighByte(t *testing.T) {
	units, err := literal.Decode(`\xFF\x0a`)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xFF, 0x0A}, units)
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		src    string
		code   literal.Code
		offset int
	}{
		{`abc\`, literal.CodeTruncatedEscape, 3},
		{`\q`, literal.CodeBadEscape, 0},
		{`x\x1`, literal.CodeBadHex, 1},
		{`\xZZ`, literal.CodeBadHex, 0},
		{`\u1234`, literal.CodeBadUnicodeEscape, 0},
		{`\u{}`, literal.CodeBadUnicodeEscape, 0},
		{`\u{1234567}`, literal.CodeBadUnicodeEscape, 0},
		{`\u{12`, literal.CodeBadUnicodeEscape, 0},
		{`\u{g}`, literal.CodeBadUnicodeEscape, 0},
		{`\u{D800}`, literal.CodeInvalidScalar, 0},
		{`\u{110000}`, literal.CodeInvalidScalar, 0},
		{"ok\xff", literal.CodeInvalidUTF8, 2},
	}

	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			_, err := literal.Decode(c.src)
			var lerr *literal.Error
			require.True(t, errors.As(err, &lerr), "expected *literal.Error, got %v", err)
			assert.Equal(t, c.code, lerr.Code)
			assert.Equal(t, c.offset, lerr.Offset)
			assert.NotEmpty(t, lerr.Error())
		})
	}
}

func TestDecodeSixDigitEscape(t *testing.T) {
	units, err := literal.Decode(`\u{10FFFF}\u{000041}`)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xDBFF, 0xDFFF, 'A'}, units)
}

func TestCheckLen(t *testing.T) {
	assert.NoError(t, literal.CheckLen(0))
	assert.NoError(t, literal.CheckLen(literal.MaxUnits))

	n := literal.MaxUnits
	err := literal.CheckLen(n + 1)
	var lerr *literal.Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, literal.CodeTooLong, lerr.Code)

	assert.Error(t, literal.CheckLen(-1))
}
