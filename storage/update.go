package storage

import "strings"

// fieldSet accumulates SET assignments for a partial update. Repositories add
// only the patch fields that were actually supplied, so untouched columns
// never appear in the statement.
type fieldSet struct {
	cols []string
	args []any
}

// set records an assignment when the patch field is present.
func set[T any](fs *fieldSet, col string, v *T) {
	if v == nil {
		return
	}
	fs.cols = append(fs.cols, col)
	fs.args = append(fs.args, *v)
}

func (fs *fieldSet) empty() bool { return len(fs.cols) == 0 }

// clause renders "a = ?, b = ?, updated_at = ?" and appends the timestamp to
// the argument list. Callers must not invoke it on an empty set.
func (fs *fieldSet) clause(now string) string {
	fs.args = append(fs.args, now)
	var b strings.Builder
	for _, c := range fs.cols {
		b.WriteString(c)
		b.WriteString(" = ?, ")
	}
	b.WriteString("updated_at = ?")
	return b.String()
}
