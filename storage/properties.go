package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pdm-api/domain"
)

func scanProperty(r Row) (*domain.Property, error) {
	var p domain.Property
	err := r.Scan(&p.ID, &p.UserID, &p.Address, &p.Type, &p.RentWeekly, &p.Status, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan property: %w", err)
	}
	return &p, nil
}

func (s *Store) ListProperties(ctx context.Context) ([]domain.Property, error) {
	rows, err := s.QueryMany(ctx, "SELECT * FROM properties ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	out := []domain.Property{}
	for rows.Next() {
		p, scanErr := scanProperty(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (s *Store) GetProperty(ctx context.Context, id int64) (*domain.Property, error) {
	return scanProperty(s.QueryOne(ctx, "SELECT * FROM properties WHERE id = ?", id))
}

func (s *Store) CreateProperty(ctx context.Context, in domain.NewPropertyInput) (*domain.Property, error) {
	now := nowISO()
	row, err := s.InsertReturning(ctx, "properties", `
		INSERT INTO properties (user_id, address, type, rent_weekly, status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.Address, in.Type, in.RentWeekly, in.Status, in.Notes, now, now)
	if err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}
	return scanProperty(row)
}

func (s *Store) UpdateProperty(ctx context.Context, id int64, p domain.PropertyPatch) (*domain.Property, error) {
	var fs fieldSet
	set(&fs, "address", p.Address)
	set(&fs, "type", p.Type)
	set(&fs, "rent_weekly", p.RentWeekly)
	set(&fs, "status", p.Status)
	set(&fs, "notes", p.Notes)
	if fs.empty() {
		return s.GetProperty(ctx, id)
	}
	query := "UPDATE properties SET " + fs.clause(nowISO()) + " WHERE id = ?"
	if _, err := s.Execute(ctx, query, append(fs.args, id)...); err != nil {
		return nil, fmt.Errorf("update property: %w", err)
	}
	return s.GetProperty(ctx, id)
}

func (s *Store) DeleteProperty(ctx context.Context, id int64) error {
	if _, err := s.Execute(ctx, "DELETE FROM properties WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	return nil
}
