package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pdm-api/domain"
)

func scanCommunityPlace(r Row) (*domain.CommunityPlace, error) {
	var p domain.CommunityPlace
	err := r.Scan(&p.ID, &p.UserID, &p.Name, &p.Address, &p.Category, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan community place: %w", err)
	}
	return &p, nil
}

func scanCommunityVisit(r Row) (*domain.CommunityVisit, error) {
	var v domain.CommunityVisit
	err := r.Scan(&v.ID, &v.PlaceID, &v.VisitedAt, &v.Notes, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan community visit: %w", err)
	}
	return &v, nil
}

func (s *Store) ListCommunityPlaces(ctx context.Context) ([]domain.CommunityPlace, error) {
	rows, err := s.QueryMany(ctx, "SELECT * FROM community_places ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("list community places: %w", err)
	}
	defer rows.Close()

	out := []domain.CommunityPlace{}
	for rows.Next() {
		p, scanErr := scanCommunityPlace(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (s *Store) GetCommunityPlace(ctx context.Context, id int64) (*domain.CommunityPlace, error) {
	return scanCommunityPlace(s.QueryOne(ctx, "SELECT * FROM community_places WHERE id = ?", id))
}

func (s *Store) CreateCommunityPlace(ctx context.Context, in domain.NewCommunityPlaceInput) (*domain.CommunityPlace, error) {
	now := nowISO()
	row, err := s.InsertReturning(ctx, "community_places", `
		INSERT INTO community_places (user_id, name, address, category, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.Name, in.Address, in.Category, in.Notes, now, now)
	if err != nil {
		return nil, fmt.Errorf("create community place: %w", err)
	}
	return scanCommunityPlace(row)
}

func (s *Store) UpdateCommunityPlace(ctx context.Context, id int64, p domain.CommunityPlacePatch) (*domain.CommunityPlace, error) {
	var fs fieldSet
	set(&fs, "name", p.Name)
	set(&fs, "address", p.Address)
	set(&fs, "category", p.Category)
	set(&fs, "notes", p.Notes)
	if fs.empty() {
		return s.GetCommunityPlace(ctx, id)
	}
	query := "UPDATE community_places SET " + fs.clause(nowISO()) + " WHERE id = ?"
	if _, err := s.Execute(ctx, query, append(fs.args, id)...); err != nil {
		return nil, fmt.Errorf("update community place: %w", err)
	}
	return s.GetCommunityPlace(ctx, id)
}

// DeleteCommunityPlace removes the place's visits first, mirroring the
// packing cascade policy.
func (s *Store) DeleteCommunityPlace(ctx context.Context, id int64) error {
	if _, err := s.Execute(ctx, "DELETE FROM community_visits WHERE place_id = ?", id); err != nil {
		return fmt.Errorf("delete community visits: %w", err)
	}
	if _, err := s.Execute(ctx, "DELETE FROM community_places WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete community place: %w", err)
	}
	return nil
}

func (s *Store) ListCommunityVisits(ctx context.Context, placeID int64) ([]domain.CommunityVisit, error) {
	rows, err := s.QueryMany(ctx, "SELECT * FROM community_visits WHERE place_id = ? ORDER BY visited_at DESC", placeID)
	if err != nil {
		return nil, fmt.Errorf("list community visits: %w", err)
	}
	defer rows.Close()

	out := []domain.CommunityVisit{}
	for rows.Next() {
		v, scanErr := scanCommunityVisit(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

func (s *Store) CreateCommunityVisit(ctx context.Context, in domain.NewCommunityVisitInput) (*domain.CommunityVisit, error) {
	now := nowISO()
	visitedAt := now
	if in.VisitedAt != nil && *in.VisitedAt != "" {
		visitedAt = *in.VisitedAt
	}
	row, err := s.InsertReturning(ctx, "community_visits", `
		INSERT INTO community_visits (place_id, visited_at, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		in.PlaceID, visitedAt, in.Notes, now, now)
	if err != nil {
		return nil, fmt.Errorf("create community visit: %w", err)
	}
	return scanCommunityVisit(row)
}

func (s *Store) DeleteCommunityVisit(ctx context.Context, id int64) error {
	if _, err := s.Execute(ctx, "DELETE FROM community_visits WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete community visit: %w", err)
	}
	return nil
}
