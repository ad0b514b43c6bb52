package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pdm-api/domain"
)

func scanDocument(r Row) (*domain.Document, error) {
	var d domain.Document
	err := r.Scan(&d.ID, &d.UserID, &d.Title, &d.OriginalFilename, &d.SourcePath,
		&d.ContentText, &d.UploadedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan document: %w", err)
	}
	return &d, nil
}

func (s *Store) CreateDocument(ctx context.Context, in domain.NewDocumentInput) (*domain.Document, error) {
	now := nowISO()
	row, err := s.InsertReturning(ctx, "documents", `
		INSERT INTO documents (user_id, title, original_filename, source_path, content_text, uploaded_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.Title, in.OriginalFilename, in.SourcePath, in.ContentText, now, now)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	return scanDocument(row)
}

func (s *Store) GetDocument(ctx context.Context, id int64) (*domain.Document, error) {
	return scanDocument(s.QueryOne(ctx, "SELECT * FROM documents WHERE id = ?", id))
}

// ListDocuments optionally filters by a substring match over the title and
// the extracted text.
func (s *Store) ListDocuments(ctx context.Context, search string) ([]domain.Document, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if search != "" {
		pattern := "%" + search + "%"
		rows, err = s.QueryMany(ctx,
			"SELECT * FROM documents WHERE title LIKE ? OR content_text LIKE ? ORDER BY uploaded_at DESC",
			pattern, pattern)
	} else {
		rows, err = s.QueryMany(ctx, "SELECT * FROM documents ORDER BY uploaded_at DESC")
	}
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	out := []domain.Document{}
	for rows.Next() {
		d, scanErr := scanDocument(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// FindDocumentByStoredName locates a document whose stored path ends with the
// given filename, used to recover the original filename on download.
func (s *Store) FindDocumentByStoredName(ctx context.Context, filename string) (*domain.Document, error) {
	return scanDocument(s.QueryOne(ctx, "SELECT * FROM documents WHERE source_path LIKE ?", "%"+filename))
}
