package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pdm-api/domain"
)

func scanProvider(r Row) (*domain.Provider, error) {
	var p domain.Provider
	err := r.Scan(&p.ID, &p.UserID, &p.Name, &p.Type, &p.Phone, &p.Email, &p.Address, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan provider: %w", err)
	}
	return &p, nil
}

func (s *Store) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	rows, err := s.QueryMany(ctx, "SELECT * FROM providers ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()

	out := []domain.Provider{}
	for rows.Next() {
		p, scanErr := scanProvider(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (s *Store) GetProvider(ctx context.Context, id int64) (*domain.Provider, error) {
	return scanProvider(s.QueryOne(ctx, "SELECT * FROM providers WHERE id = ?", id))
}

func (s *Store) CreateProvider(ctx context.Context, in domain.NewProviderInput) (*domain.Provider, error) {
	now := nowISO()
	row, err := s.InsertReturning(ctx, "providers", `
		INSERT INTO providers (user_id, name, type, phone, email, address, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.Name, in.Type, in.Phone, in.Email, in.Address, in.Notes, now, now)
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}
	return scanProvider(row)
}

func (s *Store) UpdateProvider(ctx context.Context, id int64, p domain.ProviderPatch) (*domain.Provider, error) {
	var fs fieldSet
	set(&fs, "name", p.Name)
	set(&fs, "type", p.Type)
	set(&fs, "phone", p.Phone)
	set(&fs, "email", p.Email)
	set(&fs, "address", p.Address)
	set(&fs, "notes", p.Notes)
	if fs.empty() {
		return s.GetProvider(ctx, id)
	}
	query := "UPDATE providers SET " + fs.clause(nowISO()) + " WHERE id = ?"
	if _, err := s.Execute(ctx, query, append(fs.args, id)...); err != nil {
		return nil, fmt.Errorf("update provider: %w", err)
	}
	return s.GetProvider(ctx, id)
}

func (s *Store) DeleteProvider(ctx context.Context, id int64) error {
	if _, err := s.Execute(ctx, "DELETE FROM providers WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	return nil
}
