package pdo

import "testing"

func TestBuildSelect(t *testing.T) {
	tests := []struct {
		name   string
		table  string
		where  string
		fields string
		want   string
	}{
		{
			name:  "no where",
			table: "users",
			want:  "SELECT * FROM users;",
		},
		{
			name:  "with where",
			table: "users",
			where: "x=1",
			want:  "SELECT * FROM users WHERE x=1;",
		},
		{
			name:   "explicit fields",
			table:  "users",
			where:  "id = :id",
			fields: "id, name",
			want:   "SELECT id, name FROM users WHERE id = :id;",
		},
		{
			name:   "empty fields defaults to star",
			table:  "t",
			fields: "",
			want:   "SELECT * FROM t;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildSelect(tt.table, tt.where, tt.fields); got != tt.want {
				t.Errorf("BuildSelect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildDelete(t *testing.T) {
	got := BuildDelete("sessions", "expires_at < :now")
	want := "DELETE FROM sessions WHERE expires_at < :now;"
	if got != want {
		t.Errorf("BuildDelete() = %q, want %q", got, want)
	}
}

func TestBuildInsert(t *testing.T) {
	got := BuildInsert("users", []string{"id", "name", "email"})
	want := "INSERT INTO users (id, name, email) VALUES (:id, :name, :email);"
	if got != want {
		t.Errorf("BuildInsert() = %q, want %q", got, want)
	}
}

func TestBuildInsertNoColumns(t *testing.T) {
	// A zero-column statement is intentionally malformed; the driver
	// rejects it when the schema filter finds nothing.
	got := BuildInsert("users", nil)
	want := "INSERT INTO users () VALUES ();"
	if got != want {
		t.Errorf("BuildInsert() = %q, want %q", got, want)
	}
}

func TestBuildUpdate(t *testing.T) {
	got := BuildUpdate("users", []string{"name", "email"}, "id = :id")
	want := "UPDATE users SET name = :update_name, email = :update_email WHERE id = :id;"
	if got != want {
		t.Errorf("BuildUpdate() = %q, want %q", got, want)
	}
}

// Placeholders in the SET clause must stay disjoint from where-clause
// placeholders, even when the same column appears in both.
func TestBuildUpdatePlaceholderDisjoint(t *testing.T) {
	got := BuildUpdate("users", []string{"id"}, "id = :id")
	want := "UPDATE users SET id = :update_id WHERE id = :id;"
	if got != want {
		t.Errorf("BuildUpdate() = %q, want %q", got, want)
	}
}
