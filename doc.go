// Package pdo is a thin convenience layer over database/sql for common CRUD
// work: it builds SELECT/INSERT/UPDATE/DELETE statements from table names and
// column maps, binds named parameters through sqlx, and normalizes results
// and errors. It is not an ORM and does not manage pooling, transactions, or
// migrations — all of that stays with database/sql and the driver.
//
// # Statements
//
// BuildSelect, BuildInsert, BuildUpdate, and BuildDelete assemble SQL text.
// Only bound values are parameterized; table names, field expressions, and
// WHERE fragments are interpolated verbatim. Callers who accept untrusted
// input for those positions are responsible for validating it themselves.
// This is deliberate: complex WHERE clauses depend on raw interpolation.
//
// # Column filtering
//
// Insert and Update accept an arbitrary column→value map and keep only the
// keys that exist on the target table, in the order the database reports
// them. Column names come from a per-dialect metadata statement (PRAGMA
// table_info, DESCRIBE, or information_schema.columns); see Dialect.
//
// # Results
//
// Run classifies a statement by its leading keyword. select/describe/pragma
// return rows as []Row, insert/update/delete return an affected-row count,
// and anything else (DDL and friends) executes with an explicit no-result
// Result. Failures are returned as errors; a Conn never panics on driver
// errors.
//
// # Error reporting
//
// An optional ErrorSink receives a rendered report (HTML or plain text) for
// every failed statement, carrying the message, the SQL text, the bind
// parameters, and the calling location. See SetErrorCallback.
package pdo
