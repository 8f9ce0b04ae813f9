// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummary // import "github.com/sqltrace/sqlsummary/pkg/sqlsummary"

// Sanitize scans sql once and returns its sanitized form alongside a
// bounded summary of its shape. It never panics, never returns an error,
// and is safe to call from many goroutines at once.
//
// An empty string sanitizes to an empty SqlStatementInfo. For the "sql text
// is simply not available" case (as opposed to an empty statement), use
// SanitizePtr with a nil pointer instead.
func Sanitize(sql string) SqlStatementInfo {
	if info, ok := cache.lookup(sql); ok {
		return info
	}

	info := scan(sql)
	cache.insertIfAbsent(sql, info)
	return info
}

// SanitizePtr is the Go-native equivalent of spec.md's nullable sql
// argument: a nil sql short-circuits to an empty result without touching
// the cache or the scratch pool, mirroring how instrumentation wrappers
// around database/sql see "no query text available" as distinct from "an
// empty query string".
func SanitizePtr(sql *string) SqlStatementInfo {
	if sql == nil {
		return SqlStatementInfo{}
	}
	return Sanitize(*sql)
}

func scan(sql string) SqlStatementInfo {
	if sql == "" {
		return SqlStatementInfo{}
	}

	n := len(sql)
	bp := getScratch(2 * n)
	defer putScratch(bp)

	s := newScanState(sql, *bp)

	for s.hasMore() {
		switch {
		case skipComment(s):
		case sanitizeStringLiteral(s):
		case sanitizeHexLiteral(s):
		case sanitizeNumericLiteral(s):
		case parseWhitespace(s):
		default:
			parseNextToken(s)
		}
	}

	return SqlStatementInfo{
		SanitizedSQL: s.sanitized(),
		Summary:      s.summary(),
	}
}
