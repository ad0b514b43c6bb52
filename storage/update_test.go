package storage

import "testing"

func TestFieldSetSkipsNilFields(t *testing.T) {
	var fs fieldSet
	title := "new title"
	var notes *string
	set(&fs, "title", &title)
	set(&fs, "notes", notes)

	if fs.empty() {
		t.Fatal("expected a non-empty field set")
	}
	got := fs.clause("2024-01-01T00:00:00Z")
	want := "title = ?, updated_at = ?"
	if got != want {
		t.Fatalf("expected clause %q, got %q", want, got)
	}
	if len(fs.args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(fs.args))
	}
	if fs.args[0] != "new title" || fs.args[1] != "2024-01-01T00:00:00Z" {
		t.Fatalf("unexpected args: %v", fs.args)
	}
}

func TestFieldSetEmpty(t *testing.T) {
	var fs fieldSet
	var nothing *int
	set(&fs, "priority", nothing)
	if !fs.empty() {
		t.Fatal("expected empty field set when no fields supplied")
	}
}

func TestFieldSetMultiple(t *testing.T) {
	var fs fieldSet
	status := "done"
	priority := 3
	set(&fs, "status", &status)
	set(&fs, "priority", &priority)
	got := fs.clause("now")
	want := "status = ?, priority = ?, updated_at = ?"
	if got != want {
		t.Fatalf("expected clause %q, got %q", want, got)
	}
}
