// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:generate mdatagen metadata.yaml

// Package sqlsummarycache provides an extension that owns the lifecycle of
// pkg/sqlsummary's process-wide result cache: it applies the configured
// capacity on start, periodically logs a size/capacity snapshot, and
// disables the cache again on shutdown so it does not outlive the
// collector pipeline that configured it.
package sqlsummarycache // import "github.com/sqltrace/sqlsummary/extension/sqlsummarycache"
