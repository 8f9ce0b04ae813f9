// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummary // import "github.com/sqltrace/sqlsummary/pkg/sqlsummary"

// skipComment consumes a /* ... */ or -- ... comment, emitting nothing to
// either buffer. A block comment is fully consumed, including its closing
// "*/". A line comment stops before its terminating \r or \n, leaving that
// byte for the whitespace step so the sanitized output keeps the line
// break. Unterminated comments of either kind consume to end of input.
func skipComment(s *scanState) bool {
	if !s.hasNext() {
		return false
	}
	c, next := s.current(), s.peek()

	switch {
	case c == '/' && next == '*':
		s.advanceBy(2)
		for s.hasMore() {
			if s.current() == '*' && s.hasNext() && s.peek() == '/' {
				s.advanceBy(2)
				return true
			}
			s.advance()
		}
		return true // unterminated, consumed to EOF

	case c == '-' && next == '-':
		s.advanceBy(2)
		for s.hasMore() && s.current() != '\r' && s.current() != '\n' {
			s.advance()
		}
		return true

	default:
		return false
	}
}
