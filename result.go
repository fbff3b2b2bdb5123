package pdo

import "strings"

// Row is a single result row, keyed by column name.
type Row map[string]any

// Kind tells callers which Result field carries the payload.
type Kind int

const (
	// KindNone marks statements that execute without a typed result
	// (DDL, SET, and anything else outside the read/write keyword sets).
	KindNone Kind = iota
	// KindRows marks read statements; Result.Rows holds the payload.
	KindRows
	// KindCount marks write statements; Result.Affected holds the payload.
	KindCount
)

// Result is the per-call return value of Run. Each call produces its own
// Result; nothing is retained on the Conn between calls.
type Result struct {
	Kind     Kind
	Rows     []Row
	Affected int64
}

var (
	readKeywords  = map[string]bool{"select": true, "describe": true, "pragma": true}
	writeKeywords = map[string]bool{"insert": true, "update": true, "delete": true}
)

// Classify inspects the leading keyword of a statement, case-insensitively,
// and reports how its result should be read: rows for select/describe/pragma,
// an affected count for insert/update/delete, and no typed result otherwise.
func Classify(query string) Kind {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return KindNone
	}
	keyword := strings.ToLower(fields[0])
	switch {
	case readKeywords[keyword]:
		return KindRows
	case writeKeywords[keyword]:
		return KindCount
	default:
		return KindNone
	}
}
