// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummary // import "github.com/sqltrace/sqlsummary/pkg/sqlsummary"

// MaxSummaryLength is the upper bound, in bytes, on SqlStatementInfo.Summary.
// The limit is a convention carried over from the source this package was
// modeled on; it keeps the summary cheap to attach as a telemetry attribute
// regardless of statement length.
const MaxSummaryLength = 255

// placeholder is written to the sanitized buffer in place of any literal.
const placeholder = '?'

// SqlStatementInfo is the result of sanitizing and summarizing a SQL
// statement. Both fields are owned, immutable strings; either may be empty.
type SqlStatementInfo struct {
	// SanitizedSQL is the input with every string, hex, and numeric literal
	// replaced by "?" and every comment removed.
	SanitizedSQL string

	// Summary is a bounded description of the statement's shape: the
	// principal operation keyword(s) followed by the identifiers it
	// targets, space separated. len(Summary) <= MaxSummaryLength.
	Summary string
}
