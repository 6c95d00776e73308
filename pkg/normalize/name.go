// Package normalize converts single raw roster fields into canonical values.
// None of the functions fail: malformed input degrades to a sentinel.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Name trims, collapses internal whitespace and title-cases each token.
// Casing is ASCII only; other bytes are left untouched.
func Name(raw string) string {
	fields := strings.Fields(norm.NFC.String(raw))
	for i, f := range fields {
		fields[i] = titleASCII(f)
	}
	return strings.Join(fields, " ")
}

func titleASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		switch {
		case i == 0 && 'a' <= c && c <= 'z':
			b[i] = c - ('a' - 'A')
		case i > 0 && 'A' <= c && c <= 'Z':
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
