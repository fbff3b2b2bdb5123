package pdo

import (
	"strings"
	"testing"
)

func TestDialectFor(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{"sqlite", "sqlite"},
		{"sqlite3", "sqlite"},
		{"mysql", "mysql"},
		{"pgx", "ansi"},
		{"postgres", "ansi"},
		{"some-exotic-driver", "ansi"}, // fallback
	}

	for _, tt := range tests {
		if got := DialectFor(tt.driver); got.Name != tt.want {
			t.Errorf("DialectFor(%s) = %s, want %s", tt.driver, got.Name, tt.want)
		}
	}
}

func TestDialectColumnQueries(t *testing.T) {
	sqlite, _ := LookupDialect("sqlite")
	if got := sqlite.ColumnQuery("users"); got != "PRAGMA table_info('users');" {
		t.Errorf("sqlite column query = %q", got)
	}
	if sqlite.NameField != "name" {
		t.Errorf("sqlite name field = %q, want name", sqlite.NameField)
	}

	mysql, _ := LookupDialect("mysql")
	if got := mysql.ColumnQuery("users"); got != "DESCRIBE users;" {
		t.Errorf("mysql column query = %q", got)
	}
	if mysql.NameField != "Field" {
		t.Errorf("mysql name field = %q, want Field", mysql.NameField)
	}

	ansi, _ := LookupDialect("ansi")
	q := ansi.ColumnQuery("users")
	if !strings.Contains(q, "information_schema.columns") || !strings.Contains(q, "'users'") {
		t.Errorf("ansi column query = %q", q)
	}
	if ansi.NameField != "column_name" {
		t.Errorf("ansi name field = %q, want column_name", ansi.NameField)
	}
}

func TestRegisterDialect(t *testing.T) {
	d := Dialect{
		Name:        "duck",
		ColumnQuery: func(table string) string { return "DESCRIBE " + table + ";" },
		NameField:   "column_name",
	}
	if err := RegisterDialect(d, "duckdb"); err != nil {
		t.Fatalf("RegisterDialect: %v", err)
	}

	if got := DialectFor("duckdb"); got.Name != "duck" {
		t.Errorf("DialectFor(duckdb) = %s, want duck", got.Name)
	}

	// Duplicate registration must be rejected.
	if err := RegisterDialect(d); err == nil {
		t.Error("expected error registering duplicate dialect")
	}
}
