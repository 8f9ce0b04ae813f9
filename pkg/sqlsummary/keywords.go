// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummary // import "github.com/sqltrace/sqlsummary/pkg/sqlsummary"

// Category is the logical role of a matched keyword token. It doubles as
// the state of the per-call keyword state machine: prevKeyword.category is
// the current state, and a keyword's followOn set is the DAG edge list out
// of that state.
type Category int

const (
	Unknown Category = iota
	Select
	Insert
	Update
	Delete
	From
	Into
	Join
	On
	Create
	Alter
	Drop
	Table
	Index
	Procedure
	View
	Database
	Trigger
	Schema
	Function
	User
	Role
	Sequence
	Unique
	Clustered
	NonClustered
	Distinct

	numCategories
)

// keyword is a single tagged variant carrying everything the tokenizer
// needs for one keyword text: its category, whether a matched occurrence
// expects an identifier next, the set of categories legitimately following
// it, and the predicate deciding whether it contributes to the summary.
type keyword struct {
	text            string
	category        Category
	followedByIdent bool
	followOn        []Category
	// capture decides whether a matched occurrence of this keyword
	// contributes to the summary. It takes the whole scan state rather
	// than just the immediately preceding category because the DDL chain
	// keywords (UNIQUE, CLUSTERED, NONCLUSTERED, and the object-kind
	// keywords following CREATE/ALTER/DROP) key off the chain's root verb,
	// not the immediately preceding keyword in the chain — see DESIGN.md.
	capture func(s *scanState) bool
}

// ddlTargets is the follow-on set shared by CREATE, DROP, and ALTER: the
// set of object kinds (or DDL modifiers) that may appear right after the
// verb, per spec.md's DAG.
var ddlTargets = []Category{
	Table, Index, View, Procedure, Trigger, Database, Schema, Function,
	User, Role, Sequence, Unique, Clustered, NonClustered,
}

// topLevelVerbs is the candidate set tried when no keyword chain is active:
// the statement-opening verbs.
var topLevelVerbs = []Category{Select, Insert, Update, Delete, Create, Alter, Drop}

func inSet(prev Category, set ...Category) bool {
	for _, c := range set {
		if prev == c {
			return true
		}
	}
	return false
}

// keywordTable is a constant array indexed by Category, returning a
// reference to the matching record without copying it. Categories with no
// matching keyword text (Unknown) carry a zero-value entry: its empty
// follow-on set sends candidateSet to the top-level verbs, and its empty
// text is never matched.
var keywordTable = buildKeywordTable()

func buildKeywordTable() [numCategories]keyword {
	var t [numCategories]keyword

	t[Select] = keyword{
		text: "SELECT", category: Select, followedByIdent: false,
		followOn: []Category{Distinct, From},
		capture:  func(s *scanState) bool { return inSet(s.prevCategory, Unknown, Select) },
	}
	t[Distinct] = keyword{
		text: "DISTINCT", category: Distinct, followedByIdent: false,
		followOn: []Category{From},
		capture:  func(s *scanState) bool { return s.prevCategory == Select },
	}
	t[From] = keyword{
		text: "FROM", category: From, followedByIdent: true,
		followOn: []Category{Join},
		capture:  func(*scanState) bool { return false },
	}
	t[Join] = keyword{
		text: "JOIN", category: Join, followedByIdent: true,
		followOn: nil,
		capture:  func(*scanState) bool { return false },
	}
	t[Insert] = keyword{
		text: "INSERT", category: Insert, followedByIdent: false,
		followOn: []Category{Into},
		capture:  func(s *scanState) bool { return s.prevCategory == Unknown },
	}
	t[Into] = keyword{
		text: "INTO", category: Into, followedByIdent: true,
		followOn: nil,
		capture:  func(*scanState) bool { return false },
	}
	// UPDATE has no keyword of its own between the verb and the table name
	// ("UPDATE Orders SET ..."), so it marks the next token as the
	// identifier to capture directly — see DESIGN.md for why this
	// overrides the "no" in spec.md's capture matrix for this column.
	t[Update] = keyword{
		text: "UPDATE", category: Update, followedByIdent: true,
		followOn: nil,
		capture:  func(s *scanState) bool { return s.prevCategory == Unknown },
	}
	// DELETE does not mark the next token itself; it reaches its target
	// table through FROM, so it needs FROM in its follow-on set or "DELETE
	// FROM Orders" would never recognize FROM as a keyword at all — see
	// DESIGN.md.
	t[Delete] = keyword{
		text: "DELETE", category: Delete, followedByIdent: false,
		followOn: []Category{From},
		capture:  func(s *scanState) bool { return s.prevCategory == Unknown },
	}
	t[Create] = keyword{
		text: "CREATE", category: Create, followedByIdent: false,
		followOn: ddlTargets,
		capture:  func(s *scanState) bool { return s.prevCategory == Unknown },
	}
	t[Alter] = keyword{
		text: "ALTER", category: Alter, followedByIdent: false,
		followOn: ddlTargets,
		capture:  func(s *scanState) bool { return s.prevCategory == Unknown },
	}
	t[Drop] = keyword{
		text: "DROP", category: Drop, followedByIdent: false,
		followOn: ddlTargets,
		capture:  func(s *scanState) bool { return s.prevCategory == Unknown },
	}
	t[On] = keyword{
		text: "ON", category: On, followedByIdent: true,
		followOn: nil,
		capture:  func(*scanState) bool { return false },
	}
	t[Unique] = keyword{
		text: "UNIQUE", category: Unique, followedByIdent: false,
		followOn: []Category{Index, Clustered, NonClustered},
		capture:  func(s *scanState) bool { return inSet(s.rootVerb, Create, Drop, Alter) },
	}
	t[Clustered] = keyword{
		text: "CLUSTERED", category: Clustered, followedByIdent: false,
		followOn: []Category{Index},
		capture:  func(s *scanState) bool { return inSet(s.rootVerb, Create, Drop, Alter) },
	}
	t[NonClustered] = keyword{
		text: "NONCLUSTERED", category: NonClustered, followedByIdent: false,
		followOn: []Category{Index},
		capture:  func(s *scanState) bool { return inSet(s.rootVerb, Create, Drop, Alter) },
	}

	ddlIdentTargets := []Category{Table, Index, View, Procedure, Trigger, Database, Schema, Function, User, Role, Sequence}
	for _, cat := range ddlIdentTargets {
		text := ddlTargetText[cat]
		var followOn []Category
		if cat == Index {
			followOn = []Category{On}
		}
		t[cat] = keyword{
			text: text, category: cat, followedByIdent: true,
			followOn: followOn,
			capture:  func(s *scanState) bool { return inSet(s.rootVerb, Create, Drop, Alter) },
		}
	}

	return t
}

// ddlTargetText maps the identifier-expecting DDL object categories to
// their literal keyword text. Kept separate from buildKeywordTable's loop
// body so each entry reads as a flat lookup rather than a chain of cases.
var ddlTargetText = map[Category]string{
	Table:     "TABLE",
	Index:     "INDEX",
	View:      "VIEW",
	Procedure: "PROCEDURE",
	Trigger:   "TRIGGER",
	Database:  "DATABASE",
	Schema:    "SCHEMA",
	Function:  "FUNCTION",
	User:      "USER",
	Role:      "ROLE",
	Sequence:  "SEQUENCE",
}
