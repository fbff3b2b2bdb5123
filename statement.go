package pdo

import (
	"fmt"
	"strings"
)

// UpdatePrefix is prepended to SET-clause placeholder names so they cannot
// collide with placeholders the caller already uses in the WHERE fragment.
const UpdatePrefix = "update_"

// BuildSelect returns `SELECT <fields> FROM <table> [WHERE <where>];`.
// An empty fields expression defaults to "*". The table, where, and fields
// arguments are interpolated verbatim — only bound values are parameterized.
func BuildSelect(table, where, fields string) string {
	if fields == "" {
		fields = "*"
	}
	if where == "" {
		return fmt.Sprintf("SELECT %s FROM %s;", fields, table)
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s;", fields, table, where)
}

// BuildDelete returns `DELETE FROM <table> WHERE <where>;`.
func BuildDelete(table, where string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s;", table, where)
}

// BuildInsert returns `INSERT INTO <table> (c1, c2) VALUES (:c1, :c2);` for
// the given column set. Zero columns yield a statement the driver will
// reject, which is how schema-filter misses surface to the caller.
func BuildInsert(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		placeholders[i] = ":" + col
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "))
}

// BuildUpdate returns `UPDATE <table> SET c1 = :update_c1, … WHERE <where>;`.
// SET placeholders carry UpdatePrefix so they stay disjoint from any
// placeholders embedded in the where fragment's own bind map.
func BuildUpdate(table string, columns []string, where string) string {
	assignments := make([]string, len(columns))
	for i, col := range columns {
		assignments[i] = fmt.Sprintf("%s = :%s%s", col, UpdatePrefix, col)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s;",
		table,
		strings.Join(assignments, ", "),
		where)
}
