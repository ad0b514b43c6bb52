package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pdm-api/domain"
)

func scanChildcareOption(r Row) (*domain.ChildcareOption, error) {
	var c domain.ChildcareOption
	err := r.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.Location, &c.MinAgeMonths,
		&c.MaxAgeMonths, &c.DailyFee, &c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan childcare option: %w", err)
	}
	return &c, nil
}

func (s *Store) ListChildcareOptions(ctx context.Context) ([]domain.ChildcareOption, error) {
	rows, err := s.QueryMany(ctx, "SELECT * FROM childcare_options ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list childcare options: %w", err)
	}
	defer rows.Close()

	out := []domain.ChildcareOption{}
	for rows.Next() {
		c, scanErr := scanChildcareOption(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (s *Store) GetChildcareOption(ctx context.Context, id int64) (*domain.ChildcareOption, error) {
	return scanChildcareOption(s.QueryOne(ctx, "SELECT * FROM childcare_options WHERE id = ?", id))
}

func (s *Store) CreateChildcareOption(ctx context.Context, in domain.NewChildcareOptionInput) (*domain.ChildcareOption, error) {
	now := nowISO()
	row, err := s.InsertReturning(ctx, "childcare_options", `
		INSERT INTO childcare_options (user_id, name, type, location, min_age_months, max_age_months, daily_fee, status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.Name, in.Type, in.Location, in.MinAgeMonths, in.MaxAgeMonths, in.DailyFee, in.Status, in.Notes, now, now)
	if err != nil {
		return nil, fmt.Errorf("create childcare option: %w", err)
	}
	return scanChildcareOption(row)
}

func (s *Store) UpdateChildcareOption(ctx context.Context, id int64, p domain.ChildcareOptionPatch) (*domain.ChildcareOption, error) {
	var fs fieldSet
	set(&fs, "name", p.Name)
	set(&fs, "type", p.Type)
	set(&fs, "location", p.Location)
	set(&fs, "min_age_months", p.MinAgeMonths)
	set(&fs, "max_age_months", p.MaxAgeMonths)
	set(&fs, "daily_fee", p.DailyFee)
	set(&fs, "status", p.Status)
	set(&fs, "notes", p.Notes)
	if fs.empty() {
		return s.GetChildcareOption(ctx, id)
	}
	query := "UPDATE childcare_options SET " + fs.clause(nowISO()) + " WHERE id = ?"
	if _, err := s.Execute(ctx, query, append(fs.args, id)...); err != nil {
		return nil, fmt.Errorf("update childcare option: %w", err)
	}
	return s.GetChildcareOption(ctx, id)
}

func (s *Store) DeleteChildcareOption(ctx context.Context, id int64) error {
	if _, err := s.Execute(ctx, "DELETE FROM childcare_options WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete childcare option: %w", err)
	}
	return nil
}
