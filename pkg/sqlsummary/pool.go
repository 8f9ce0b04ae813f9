// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummary // import "github.com/sqltrace/sqlsummary/pkg/sqlsummary"

import "sync"

// scratchPool is the process-wide pool of scan buffers. Each call to
// Sanitize rents a buffer sized 2*len(sql): the lower half backs the
// sanitized SQL as it is built, the upper half backs the summary. A pool
// miss simply allocates a fresh buffer — the pool must never fail a rent,
// only make the common case cheap.
var scratchPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, 256)
		return &buf
	},
}

// getScratch returns a buffer of length n with a capacity of at least n,
// reusing a pooled backing array when it is large enough.
func getScratch(n int) *[]byte {
	bp := scratchPool.Get().(*[]byte)
	if cap(*bp) < n {
		*bp = make([]byte, n)
	} else {
		*bp = (*bp)[:n]
	}
	return bp
}

// putScratch returns a buffer to the pool. Contents are not zeroed: the
// buffer only ever held sanitized material (literals already masked with
// "?"), so there is nothing sensitive left to scrub.
func putScratch(bp *[]byte) {
	scratchPool.Put(bp)
}
