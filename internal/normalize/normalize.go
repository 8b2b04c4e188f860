// Package normalize canonicalizes the textual form of names before they
// reach the solver: an Identifier and the binder it refers to must compare
// equal as strings even when a collaborator's source handed them to us in
// different encodings.
package normalize

import (
	"bytes"

	"golang.org/x/text/unicode/norm"
)

// bomUTF8 is the UTF-8 byte order mark.
var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Bytes strips a leading UTF-8 BOM and applies Unicode NFC normalization.
//
// Two spellings of the same identifier that differ only in composition
// ("café" as e + combining acute vs. the single precomposed codepoint)
// must resolve to the same scope binding; scope.Scope passes every binder
// name (Extend) and every looked-up name (Lookup) through Name, so both
// spellings compare equal.
func Bytes(src []byte) []byte {
	src = bytes.TrimPrefix(src, bomUTF8)
	if !norm.NFC.IsNormal(src) {
		src = norm.NFC.Bytes(src)
	}
	return src
}

// Name normalizes a single identifier or primitive type name.
func Name(s string) string {
	return string(Bytes([]byte(s)))
}
