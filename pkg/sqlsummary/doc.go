// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package sqlsummary implements a single-pass SQL sanitizer and summarizer.
//
// Sanitize replaces literal values in a SQL statement with a single "?"
// placeholder and strips comments, while Summary captures the statement's
// shape (operation keyword plus target identifiers) for low-cardinality
// telemetry attributes. Neither output is a parse tree: the package never
// builds an AST and makes no claim of dialect-exact grammar. It is built to
// run on every statement a database client issues, so it avoids allocation
// wherever the input allows it and never panics on malformed SQL.
package sqlsummary // import "github.com/sqltrace/sqlsummary/pkg/sqlsummary"
