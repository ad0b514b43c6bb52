package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pdm-api/domain"
)

func scanWorkLink(r Row) (*domain.WorkLink, error) {
	var w domain.WorkLink
	err := r.Scan(&w.ID, &w.UserID, &w.Title, &w.URL, &w.Description, &w.Category,
		&w.IconEmoji, &w.RelatedTaskID, &w.Notes, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan work link: %w", err)
	}
	return &w, nil
}

func (s *Store) ListWorkLinks(ctx context.Context, userID int64) ([]domain.WorkLink, error) {
	rows, err := s.QueryMany(ctx, "SELECT * FROM work_links WHERE user_id = ? ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("list work links: %w", err)
	}
	defer rows.Close()

	out := []domain.WorkLink{}
	for rows.Next() {
		w, scanErr := scanWorkLink(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, *w)
	}
	return out, rows.Err()
}

func (s *Store) GetWorkLink(ctx context.Context, id int64) (*domain.WorkLink, error) {
	return scanWorkLink(s.QueryOne(ctx, "SELECT * FROM work_links WHERE id = ?", id))
}

func (s *Store) CreateWorkLink(ctx context.Context, in domain.NewWorkLinkInput) (*domain.WorkLink, error) {
	now := nowISO()
	row, err := s.InsertReturning(ctx, "work_links", `
		INSERT INTO work_links (user_id, title, url, description, category, icon_emoji, related_task_id, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.Title, in.URL, in.Description, in.Category, in.IconEmoji, in.RelatedTaskID, in.Notes, now, now)
	if err != nil {
		return nil, fmt.Errorf("create work link: %w", err)
	}
	return scanWorkLink(row)
}

func (s *Store) UpdateWorkLink(ctx context.Context, id int64, p domain.WorkLinkPatch) (*domain.WorkLink, error) {
	var fs fieldSet
	set(&fs, "title", p.Title)
	set(&fs, "url", p.URL)
	set(&fs, "description", p.Description)
	set(&fs, "category", p.Category)
	set(&fs, "icon_emoji", p.IconEmoji)
	set(&fs, "related_task_id", p.RelatedTaskID)
	set(&fs, "notes", p.Notes)
	if fs.empty() {
		return s.GetWorkLink(ctx, id)
	}
	query := "UPDATE work_links SET " + fs.clause(nowISO()) + " WHERE id = ?"
	if _, err := s.Execute(ctx, query, append(fs.args, id)...); err != nil {
		return nil, fmt.Errorf("update work link: %w", err)
	}
	return s.GetWorkLink(ctx, id)
}

func (s *Store) DeleteWorkLink(ctx context.Context, id int64) error {
	if _, err := s.Execute(ctx, "DELETE FROM work_links WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete work link: %w", err)
	}
	return nil
}
