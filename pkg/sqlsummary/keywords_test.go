// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummary

import "testing"

func TestKeywordTableCoversEveryCategoryExceptUnknown(t *testing.T) {
	for cat := Select; cat < numCategories; cat++ {
		kw := keywordTable[cat]
		if kw.text == "" {
			t.Errorf("category %d has no keyword record", cat)
		}
		if kw.category != cat {
			t.Errorf("keywordTable[%d].category = %d; want %d", cat, kw.category, cat)
		}
	}
	if keywordTable[Unknown].text != "" {
		t.Errorf("Unknown should carry no keyword text, got %q", keywordTable[Unknown].text)
	}
}

func TestOnEqualsDoesNotToggleCapture(t *testing.T) {
	resetCache()
	got := Sanitize("SELECT o.Id FROM Orders o JOIN Customers c ON o.CustomerId = c.Id")
	if got.Summary != "SELECT Orders Customers" {
		t.Errorf("summary = %q; ON/= capture toggle should stay off per default", got.Summary)
	}
}

func TestFromCommaTogglesCapture(t *testing.T) {
	resetCache()
	got := Sanitize("SELECT * FROM A, B, C")
	if got.Summary != "SELECT A B C" {
		t.Errorf("summary = %q; want SELECT A B C", got.Summary)
	}
}

// A subquery immediately after FROM/INTO inherits the outer keyword's
// pending identifier capture before the tokenizer ever reaches the "("'s
// own candidate-set rule, so the inner SELECT is captured as if it were the
// table name rather than recognized as a keyword. This single-pass, no
// backtracking state machine has no notion of nested scopes (spec.md's
// Non-goals rule out exotic sub-language correctness); what matters here is
// that it stays well-defined and doesn't panic.
func TestSubqueryImmediatelyAfterFromIsNotBacktracked(t *testing.T) {
	resetCache()
	got := Sanitize("SELECT * FROM (SELECT DISTINCT Id FROM Orders) x")
	if got.SanitizedSQL != "SELECT * FROM (SELECT DISTINCT Id FROM Orders) x" {
		t.Errorf("SanitizedSQL = %q; want input unchanged (no literals present)", got.SanitizedSQL)
	}
	if got.Summary != "SELECT SELECT" {
		t.Errorf("summary = %q; want SELECT SELECT", got.Summary)
	}
}

// The subquery candidate-set rule only governs keyword recognition, not
// summary capture: the inner FROM still marks its own target identifier for
// capture, same as an outer FROM would, since the tokenizer has no notion
// of query nesting depth.
func TestSubqueryHeadRecognizedWhenNotPrecededByIdentCapture(t *testing.T) {
	resetCache()
	got := Sanitize("SELECT * FROM Customers WHERE Id IN (SELECT CustomerId FROM Orders)")
	if got.Summary != "SELECT Customers Orders" {
		t.Errorf("summary = %q; want SELECT Customers Orders", got.Summary)
	}
}
