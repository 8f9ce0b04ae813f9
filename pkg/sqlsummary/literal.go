// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummary // import "github.com/sqltrace/sqlsummary/pkg/sqlsummary"

// sanitizeStringLiteral consumes a '-delimited string literal, treating ''
// as an escaped quote rather than a terminator. An unterminated literal
// consumes to end of input — benignly, per spec.md §7.
func sanitizeStringLiteral(s *scanState) bool {
	if s.current() != '\'' {
		return false
	}
	s.advance() // opening quote
	for s.hasMore() {
		switch s.current() {
		case '\'':
			if s.hasNext() && s.peek() == '\'' {
				s.advanceBy(2) // escaped quote, literal continues
				continue
			}
			s.advance() // closing quote
			s.writeSan(placeholder)
			return true
		default:
			s.advance()
		}
	}
	// unterminated: consumed to EOF
	s.writeSan(placeholder)
	return true
}

// sanitizeHexLiteral consumes a 0x/0X-prefixed run of hex digits.
func sanitizeHexLiteral(s *scanState) bool {
	if s.current() != '0' || !s.hasNext() {
		return false
	}
	next := s.peek()
	if next != 'x' && next != 'X' {
		return false
	}
	s.advanceBy(2)
	for s.hasMore() && isHexDigit(s.current()) {
		s.advance()
	}
	s.writeSan(placeholder)
	return true
}

// sanitizeNumericLiteral consumes a numeric literal per spec.md §4.3's
// grammar, or, when the preceding sanitized character was '(' and the
// content is a digit-only run closed by ')', passes the type-modifier
// parenthetical (e.g. VARCHAR(50)) through unchanged instead of masking it.
func sanitizeNumericLiteral(s *scanState) bool {
	if s.sanPos > 0 && s.san[s.sanPos-1] == '(' {
		if consumeParenDigits(s) {
			return true
		}
	}

	start := s.pos
	c := s.current()

	if c == '+' || c == '-' {
		if !s.hasNext() || !(isDigit(s.peek()) || s.peek() == '.') {
			return false
		}
		s.advance()
		c = s.current()
	}

	sawDigit := false
	sawDot := false

	if c == '.' {
		if !s.hasNext() || !isDigit(s.peek()) {
			s.pos = start
			return false
		}
		sawDot = true
		s.advance()
	} else if !isDigit(c) {
		s.pos = start
		return false
	}

	for s.hasMore() {
		c = s.current()
		switch {
		case isDigit(c):
			sawDigit = true
			s.advance()
		case c == '.' && !sawDot:
			sawDot = true
			s.advance()
		case (c == 'e' || c == 'E') && sawOrHasDigitAhead(s):
			s.advance()
			if s.hasMore() && (s.current() == '+' || s.current() == '-') {
				s.advance()
			}
			for s.hasMore() && isDigit(s.current()) {
				s.advance()
			}
			goto done
		default:
			goto done
		}
	}

done:
	if !sawDigit {
		s.pos = start
		return false
	}
	s.writeSan(placeholder)
	return true
}

// sawOrHasDigitAhead reports whether an e/E at the current position is a
// plausible exponent marker, i.e. there is at least one digit (possibly
// after a sign) following it. Without this check a digit run directly
// followed by a word starting with e, as in "2end", would swallow the "e"
// into a bogus numeric literal and leave "nd" behind.
func sawOrHasDigitAhead(s *scanState) bool {
	i := s.pos + 1
	if i < len(s.sql) && (s.sql[i] == '+' || s.sql[i] == '-') {
		i++
	}
	return i < len(s.sql) && isDigit(s.sql[i])
}

// consumeParenDigits implements spec.md §4.3's carve-out for sequences like
// (50) immediately after an opening paren already copied to the sanitized
// buffer: a digit-only run followed by ')' is copied through unmodified
// rather than masked, so "VARCHAR(50)" survives sanitization untouched.
func consumeParenDigits(s *scanState) bool {
	start := s.pos
	for s.hasMore() && isDigit(s.current()) {
		s.advance()
	}
	if s.pos == start || !s.hasMore() || s.current() != ')' {
		s.pos = start
		return false
	}
	s.advance() // the ')'
	s.writeSanString(s.sql[start:s.pos])
	return true
}
