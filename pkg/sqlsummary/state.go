// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummary // import "github.com/sqltrace/sqlsummary/pkg/sqlsummary"

// scanState holds the parse state for a single Sanitize call. It never
// outlives the call that created it.
type scanState struct {
	sql string
	pos int

	san    []byte
	sanPos int

	sum    []byte
	sumPos int

	prevCategory Category
	// rootVerb is the category of the most recent top-level statement verb
	// (SELECT/INSERT/UPDATE/DELETE/CREATE/ALTER/DROP). Unlike prevCategory
	// it does not change as a DDL keyword chain is walked, which is what
	// lets UNIQUE/CLUSTERED/NONCLUSTERED/INDEX/... keep capturing into the
	// summary for the whole chain rather than only the keyword right after
	// CREATE/ALTER/DROP itself.
	rootVerb Category
	captureNext bool
}

func newScanState(sql string, scratch []byte) *scanState {
	n := len(sql)
	return &scanState{
		sql:          sql,
		san:          scratch[:n],
		sum:          scratch[n : 2*n],
		prevCategory: Unknown,
		rootVerb:     Unknown,
	}
}

func (s *scanState) hasMore() bool      { return s.pos < len(s.sql) }
func (s *scanState) hasNext() bool      { return s.pos+1 < len(s.sql) }
func (s *scanState) current() byte      { return s.sql[s.pos] }
func (s *scanState) peek() byte         { return s.sql[s.pos+1] }
func (s *scanState) advance()           { s.pos++ }
func (s *scanState) advanceBy(n int)    { s.pos += n }

// writeSan copies a single byte to the sanitized half verbatim.
func (s *scanState) writeSan(b byte) {
	s.san[s.sanPos] = b
	s.sanPos++
}

// writeSanString copies a run of bytes to the sanitized half verbatim.
func (s *scanState) writeSanString(str string) {
	copy(s.san[s.sanPos:], str)
	s.sanPos += len(str)
}

// writeSummaryToken appends tok to the summary half, preceded by a
// separator space if the summary is already non-empty, subject to the
// MaxSummaryLength bound. Writes past the bound are silently dropped,
// matching spec.md's "truncation is silent" failure mode.
func (s *scanState) writeSummaryToken(tok string) {
	if s.sumPos >= MaxSummaryLength {
		return
	}
	if s.sumPos > 0 {
		if s.sumPos >= MaxSummaryLength {
			return
		}
		s.sum[s.sumPos] = ' '
		s.sumPos++
	}
	room := MaxSummaryLength - s.sumPos
	if room <= 0 {
		return
	}
	if len(tok) > room {
		tok = tok[:room]
	}
	copy(s.sum[s.sumPos:], tok)
	s.sumPos += len(tok)
}

// sanitized returns the sanitized half built so far as an owned string.
func (s *scanState) sanitized() string {
	return string(s.san[:s.sanPos])
}

// summary returns the summary half built so far, trimmed of a trailing
// separator space, as an owned string.
func (s *scanState) summary() string {
	n := s.sumPos
	if n > MaxSummaryLength {
		n = MaxSummaryLength
	}
	if n > 0 && s.sum[n-1] == ' ' {
		n--
	}
	return string(s.sum[:n])
}
