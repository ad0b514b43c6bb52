package storage

import "testing"

func TestPostgresRebind(t *testing.T) {
	d := postgresDialect{}
	cases := []struct {
		in   string
		want string
	}{
		{"SELECT * FROM tasks WHERE id = ?", "SELECT * FROM tasks WHERE id = $1"},
		{"UPDATE tasks SET title = ?, notes = ? WHERE id = ?", "UPDATE tasks SET title = $1, notes = $2 WHERE id = $3"},
		{"SELECT 1", "SELECT 1"},
		{"SELECT * FROM t WHERE status = 'a?b' AND id = ?", "SELECT * FROM t WHERE status = 'a?b' AND id = $1"},
	}
	for _, tc := range cases {
		if got := d.rebind(tc.in); got != tc.want {
			t.Fatalf("rebind(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSqliteRebindIsVerbatim(t *testing.T) {
	q := "SELECT * FROM tasks WHERE id = ?"
	if got := (sqliteDialect{}).rebind(q); got != q {
		t.Fatalf("expected verbatim query, got %q", got)
	}
}

func TestEnsureReturning(t *testing.T) {
	got := ensureReturning("INSERT INTO t (a) VALUES (?)")
	want := "INSERT INTO t (a) VALUES (?) RETURNING *"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	already := "INSERT INTO t (a) VALUES (?) RETURNING id"
	if got := ensureReturning(already); got != already {
		t.Fatalf("expected clause to be left alone, got %q", got)
	}

	trailing := "INSERT INTO t (a) VALUES (?);\n"
	if got := ensureReturning(trailing); got != "INSERT INTO t (a) VALUES (?) RETURNING *" {
		t.Fatalf("expected trailing separators trimmed, got %q", got)
	}
}
