// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:generate mdatagen metadata.yaml

// Package sqlsummaryconnector reads a SQL statement attribute off traces and
// logs passing through a collector pipeline, sanitizes and summarizes it
// with pkg/sqlsummary, and writes the results back as new attributes before
// forwarding to the next consumer.
package sqlsummaryconnector // import "github.com/sqltrace/sqlsummary/connector/sqlsummaryconnector"
