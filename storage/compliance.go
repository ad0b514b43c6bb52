package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pdm-api/domain"
)

func scanComplianceItem(r Row) (*domain.ComplianceItem, error) {
	var c domain.ComplianceItem
	err := r.Scan(&c.ID, &c.UserID, &c.SubjectType, &c.SubjectName, &c.Category, &c.Status,
		&c.DueDate, &c.CompletedDate, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan compliance item: %w", err)
	}
	return &c, nil
}

func (s *Store) ListComplianceItems(ctx context.Context, userID int64) ([]domain.ComplianceItem, error) {
	rows, err := s.QueryMany(ctx,
		"SELECT * FROM compliance_items WHERE user_id = ? ORDER BY due_date ASC, created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("list compliance items: %w", err)
	}
	defer rows.Close()

	out := []domain.ComplianceItem{}
	for rows.Next() {
		c, scanErr := scanComplianceItem(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (s *Store) GetComplianceItem(ctx context.Context, id int64) (*domain.ComplianceItem, error) {
	return scanComplianceItem(s.QueryOne(ctx, "SELECT * FROM compliance_items WHERE id = ?", id))
}

func (s *Store) CreateComplianceItem(ctx context.Context, in domain.NewComplianceItemInput) (*domain.ComplianceItem, error) {
	now := nowISO()
	row, err := s.InsertReturning(ctx, "compliance_items", `
		INSERT INTO compliance_items (user_id, subject_type, subject_name, category, status, due_date, completed_date, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.SubjectType, in.SubjectName, in.Category, in.Status, in.DueDate, in.CompletedDate, in.Notes, now, now)
	if err != nil {
		return nil, fmt.Errorf("create compliance item: %w", err)
	}
	return scanComplianceItem(row)
}

func (s *Store) UpdateComplianceItem(ctx context.Context, id int64, p domain.ComplianceItemPatch) (*domain.ComplianceItem, error) {
	var fs fieldSet
	set(&fs, "subject_type", p.SubjectType)
	set(&fs, "subject_name", p.SubjectName)
	set(&fs, "category", p.Category)
	set(&fs, "status", p.Status)
	set(&fs, "due_date", p.DueDate)
	set(&fs, "completed_date", p.CompletedDate)
	set(&fs, "notes", p.Notes)
	if fs.empty() {
		return s.GetComplianceItem(ctx, id)
	}
	query := "UPDATE compliance_items SET " + fs.clause(nowISO()) + " WHERE id = ?"
	if _, err := s.Execute(ctx, query, append(fs.args, id)...); err != nil {
		return nil, fmt.Errorf("update compliance item: %w", err)
	}
	return s.GetComplianceItem(ctx, id)
}

func (s *Store) DeleteComplianceItem(ctx context.Context, id int64) error {
	if _, err := s.Execute(ctx, "DELETE FROM compliance_items WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete compliance item: %w", err)
	}
	return nil
}
