package parser

import (
	"strings"
	"unicode/utf8"
)

const (
	// escapePair marks a character that escapes the escaper: the character
	// following a literal double backslash is emitted without encoding.
	escapePair = `\\`

	// encodedComma is the percent-encoded form of a comma, the target of !M.
	encodedComma = "%2C"

	// urlUnsafeChars are percent-encoded in literal URL text. The characters
	// #$%&-=?_ and space are deliberately left alone so template structure
	// survives.
	urlUnsafeChars = "\"<>{}|\\^~[]`"

	// queryUnsafeChars are percent-encoded in query text. Reserved URL
	// characters are included so query content cannot alter URL structure.
	// Space stays unescaped: it is replaced by the placeholder delimiter
	// right after encoding.
	queryUnsafeChars = urlUnsafeChars + ";/:@+,!*'()"
)

const upperhex = "0123456789ABCDEF"

// escapeText percent-encodes every byte of s found in unsafe, honoring the
// double-backslash escape convention: in each segment following a literal
// `\\`, the first character is emitted as-is instead of encoded.
func escapeText(s, unsafe string) string {
	chunks := strings.Split(s, escapePair)

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(percentEncode(chunks[0], unsafe))

	for _, chunk := range chunks[1:] {
		if chunk == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(chunk)
		b.WriteString(chunk[:size])
		b.WriteString(percentEncode(chunk[size:], unsafe))
	}

	return b.String()
}

// percentEncode encodes every byte of s contained in unsafe as %XX with
// uppercase hex digits.
func percentEncode(s, unsafe string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(unsafe, c) >= 0 {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0F])
		} else {
			b.WriteByte(c)
		}
	}

	return b.String()
}
