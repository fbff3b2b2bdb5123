package pdo

import (
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
)

// Dialect describes how one database family reports a table's columns.
type Dialect struct {
	// Name identifies the dialect (sqlite, mysql, ansi, …).
	Name string

	// ColumnQuery returns the metadata statement listing the table's
	// columns. The table name is interpolated, not bound: metadata
	// statements like PRAGMA do not accept parameters on all drivers.
	ColumnQuery func(table string) string

	// NameField is the result column holding each column name.
	NameField string
}

var (
	dialectMu sync.RWMutex
	dialects  = make(map[string]Dialect)
	// driverDialects maps database/sql driver names onto dialect names.
	driverDialects = make(map[string]string)
)

// RegisterDialect adds a dialect to the registry and binds it to the given
// driver names. Registering a name twice is an error.
func RegisterDialect(d Dialect, drivers ...string) error {
	dialectMu.Lock()
	defer dialectMu.Unlock()

	if _, exists := dialects[d.Name]; exists {
		return fmt.Errorf("dialect %s already registered", d.Name)
	}
	dialects[d.Name] = d
	for _, drv := range drivers {
		driverDialects[drv] = d.Name
	}
	return nil
}

// LookupDialect returns the dialect registered under name.
func LookupDialect(name string) (Dialect, bool) {
	dialectMu.RLock()
	defer dialectMu.RUnlock()
	d, ok := dialects[name]
	return d, ok
}

// DialectFor resolves the dialect for a database/sql driver name. Unknown
// drivers fall back to the ansi dialect, whose information_schema query is
// the closest thing to a standard.
func DialectFor(driver string) Dialect {
	dialectMu.RLock()
	defer dialectMu.RUnlock()

	if name, ok := driverDialects[driver]; ok {
		if d, ok := dialects[name]; ok {
			return d
		}
	}
	return dialects["ansi"]
}

func init() {
	// Embedded, file-based engines.
	must(RegisterDialect(Dialect{
		Name: "sqlite",
		ColumnQuery: func(table string) string {
			return fmt.Sprintf("PRAGMA table_info('%s');", table)
		},
		NameField: "name",
	}, "sqlite", "sqlite3"))

	// MySQL and derivatives.
	must(RegisterDialect(Dialect{
		Name: "mysql",
		ColumnQuery: func(table string) string {
			return fmt.Sprintf("DESCRIBE %s;", table)
		},
		NameField: "Field",
	}, "mysql", "nrmysql"))

	// Standards-based fallback (postgres and anything unrecognized).
	must(RegisterDialect(Dialect{
		Name: "ansi",
		ColumnQuery: func(table string) string {
			return fmt.Sprintf("SELECT column_name FROM information_schema.columns WHERE table_name = '%s';", table)
		},
		NameField: "column_name",
	}, "pgx", "pgx/v5", "postgres", "pq"))

	// modernc.org/sqlite registers as "sqlite", which sqlx does not know
	// out of the box; named placeholders compile to ? for it.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
