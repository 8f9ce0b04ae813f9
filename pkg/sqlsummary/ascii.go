// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummary // import "github.com/sqltrace/sqlsummary/pkg/sqlsummary"

// All classification in this package is ASCII-only and locale-free by
// design: only ASCII letters can start or continue a keyword match
// (spec.md §7), so there is no reason to pull in unicode tables on the hot
// path. Non-ASCII bytes fall through as identifier-like characters.

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentChar(b byte) bool {
	return isASCIILetter(b) || isDigit(b) || b == '_' || b == '.'
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
