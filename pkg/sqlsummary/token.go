// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummary // import "github.com/sqltrace/sqlsummary/pkg/sqlsummary"

// parseWhitespace copies a contiguous run of space/tab/CR/LF verbatim and
// skips it for keyword/identifier matching purposes.
func parseWhitespace(s *scanState) bool {
	if !isSpace(s.current()) {
		return false
	}
	for s.hasMore() && isSpace(s.current()) {
		s.writeSan(s.current())
		s.advance()
	}
	return true
}

// candidateSet picks the keywords the tokenizer is willing to try matching
// at the current position: a sub-query head after an open paren, the
// active keyword chain's follow-on set, or the top-level statement verbs.
func candidateSet(s *scanState) []Category {
	if s.pos > 0 && s.sql[s.pos-1] == '(' {
		return []Category{Select}
	}
	if followOn := keywordTable[s.prevCategory].followOn; len(followOn) > 0 {
		return followOn
	}
	return topLevelVerbs
}

// matchKeyword reports whether kw.text matches the input at s.pos,
// case-insensitively, requiring that the byte following the match (if any)
// is whitespace so that e.g. "SELECTOR" is never mistaken for "SELECT".
func matchKeyword(s *scanState, kw *keyword) bool {
	text := kw.text
	if s.pos+len(text) > len(s.sql) {
		return false
	}
	for i := 0; i < len(text); i++ {
		if toLower(s.sql[s.pos+i]) != toLower(text[i]) {
			return false
		}
	}
	end := s.pos + len(text)
	if end < len(s.sql) && !isSpace(s.sql[end]) {
		return false
	}
	return true
}

// parseNextToken implements the per-token dispatch of spec.md §4.4: try a
// keyword match from the current candidate set, fall back to an
// identifier run, and finally pass through a single opaque character.
func parseNextToken(s *scanState) bool {
	c := s.current()
	lower := toLower(c)

	if !s.captureNext && isASCIILetter(lower) {
		for _, cat := range candidateSet(s) {
			kw := &keywordTable[cat]
			if kw.text == "" || !matchKeyword(s, kw) {
				continue
			}
			matched := s.sql[s.pos : s.pos+len(kw.text)]
			s.writeSanString(matched)
			if kw.capture(s) {
				s.writeSummaryToken(kw.text)
			}
			s.prevCategory = kw.category
			if inSet(kw.category, topLevelVerbs...) {
				s.rootVerb = kw.category
			}
			s.captureNext = kw.followedByIdent
			s.advanceBy(len(kw.text))
			return true
		}
	}

	if isASCIILetter(c) || c == '_' || c >= 0x80 {
		start := s.pos
		for s.hasMore() && (isIdentChar(s.current()) || s.current() >= 0x80) {
			s.advance()
		}
		run := s.sql[start:s.pos]
		s.writeSanString(run)
		if s.captureNext {
			s.writeSummaryToken(run)
		}
		s.captureNext = false
		return true
	}

	s.writeSan(c)
	if s.prevCategory == From && c == ',' {
		s.captureNext = true
	}
	s.advance()
	return true
}
