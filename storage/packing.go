package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pdm-api/domain"
)

func scanPackingArea(r Row) (*domain.PackingArea, error) {
	var a domain.PackingArea
	err := r.Scan(&a.ID, &a.UserID, &a.Name, &a.LocationDescription, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan packing area: %w", err)
	}
	return &a, nil
}

func scanPackingBox(r Row) (*domain.PackingBox, error) {
	var b domain.PackingBox
	err := r.Scan(&b.ID, &b.AreaID, &b.Label, &b.BoxType, &b.WeightKg, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan packing box: %w", err)
	}
	return &b, nil
}

func scanPackingItem(r Row) (*domain.PackingItem, error) {
	var i domain.PackingItem
	err := r.Scan(&i.ID, &i.BoxID, &i.Name, &i.Quantity, &i.Fragile, &i.Notes, &i.CreatedAt, &i.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan packing item: %w", err)
	}
	return &i, nil
}

func (s *Store) ListPackingAreas(ctx context.Context) ([]domain.PackingArea, error) {
	rows, err := s.QueryMany(ctx, "SELECT * FROM packing_areas ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("list packing areas: %w", err)
	}
	defer rows.Close()

	out := []domain.PackingArea{}
	for rows.Next() {
		a, scanErr := scanPackingArea(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *Store) GetPackingArea(ctx context.Context, id int64) (*domain.PackingArea, error) {
	return scanPackingArea(s.QueryOne(ctx, "SELECT * FROM packing_areas WHERE id = ?", id))
}

func (s *Store) CreatePackingArea(ctx context.Context, in domain.NewPackingAreaInput) (*domain.PackingArea, error) {
	now := nowISO()
	row, err := s.InsertReturning(ctx, "packing_areas", `
		INSERT INTO packing_areas (user_id, name, location_description, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		in.UserID, in.Name, in.LocationDescription, in.Notes, now, now)
	if err != nil {
		return nil, fmt.Errorf("create packing area: %w", err)
	}
	return scanPackingArea(row)
}

func (s *Store) UpdatePackingArea(ctx context.Context, id int64, p domain.PackingAreaPatch) (*domain.PackingArea, error) {
	var fs fieldSet
	set(&fs, "name", p.Name)
	set(&fs, "location_description", p.LocationDescription)
	set(&fs, "notes", p.Notes)
	if fs.empty() {
		return s.GetPackingArea(ctx, id)
	}
	query := "UPDATE packing_areas SET " + fs.clause(nowISO()) + " WHERE id = ?"
	if _, err := s.Execute(ctx, query, append(fs.args, id)...); err != nil {
		return nil, fmt.Errorf("update packing area: %w", err)
	}
	return s.GetPackingArea(ctx, id)
}

// DeletePackingArea removes the area's items, then its boxes, then the area,
// as three independent statements. No transaction wraps them: a failure
// partway leaves the earlier deletes committed.
func (s *Store) DeletePackingArea(ctx context.Context, id int64) error {
	if _, err := s.Execute(ctx,
		"DELETE FROM packing_items WHERE box_id IN (SELECT id FROM packing_boxes WHERE area_id = ?)", id); err != nil {
		return fmt.Errorf("delete packing items: %w", err)
	}
	if _, err := s.Execute(ctx, "DELETE FROM packing_boxes WHERE area_id = ?", id); err != nil {
		return fmt.Errorf("delete packing boxes: %w", err)
	}
	if _, err := s.Execute(ctx, "DELETE FROM packing_areas WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete packing area: %w", err)
	}
	return nil
}

func (s *Store) ListPackingBoxes(ctx context.Context, areaID int64) ([]domain.PackingBox, error) {
	rows, err := s.QueryMany(ctx, "SELECT * FROM packing_boxes WHERE area_id = ? ORDER BY id ASC", areaID)
	if err != nil {
		return nil, fmt.Errorf("list packing boxes: %w", err)
	}
	defer rows.Close()

	out := []domain.PackingBox{}
	for rows.Next() {
		b, scanErr := scanPackingBox(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (s *Store) GetPackingBox(ctx context.Context, id int64) (*domain.PackingBox, error) {
	return scanPackingBox(s.QueryOne(ctx, "SELECT * FROM packing_boxes WHERE id = ?", id))
}

func (s *Store) CreatePackingBox(ctx context.Context, in domain.NewPackingBoxInput) (*domain.PackingBox, error) {
	now := nowISO()
	row, err := s.InsertReturning(ctx, "packing_boxes", `
		INSERT INTO packing_boxes (area_id, label, box_type, weight_kg, status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.AreaID, in.Label, in.BoxType, in.WeightKg, in.Status, in.Notes, now, now)
	if err != nil {
		return nil, fmt.Errorf("create packing box: %w", err)
	}
	return scanPackingBox(row)
}

func (s *Store) UpdatePackingBox(ctx context.Context, id int64, p domain.PackingBoxPatch) (*domain.PackingBox, error) {
	var fs fieldSet
	set(&fs, "label", p.Label)
	set(&fs, "box_type", p.BoxType)
	set(&fs, "weight_kg", p.WeightKg)
	set(&fs, "status", p.Status)
	set(&fs, "notes", p.Notes)
	if fs.empty() {
		return s.GetPackingBox(ctx, id)
	}
	query := "UPDATE packing_boxes SET " + fs.clause(nowISO()) + " WHERE id = ?"
	if _, err := s.Execute(ctx, query, append(fs.args, id)...); err != nil {
		return nil, fmt.Errorf("update packing box: %w", err)
	}
	return s.GetPackingBox(ctx, id)
}

// DeletePackingBox removes the box's items first, same non-transactional
// policy as area deletes.
func (s *Store) DeletePackingBox(ctx context.Context, id int64) error {
	if _, err := s.Execute(ctx, "DELETE FROM packing_items WHERE box_id = ?", id); err != nil {
		return fmt.Errorf("delete packing items: %w", err)
	}
	if _, err := s.Execute(ctx, "DELETE FROM packing_boxes WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete packing box: %w", err)
	}
	return nil
}

func (s *Store) ListPackingItems(ctx context.Context, boxID int64) ([]domain.PackingItem, error) {
	rows, err := s.QueryMany(ctx, "SELECT * FROM packing_items WHERE box_id = ? ORDER BY id ASC", boxID)
	if err != nil {
		return nil, fmt.Errorf("list packing items: %w", err)
	}
	defer rows.Close()

	out := []domain.PackingItem{}
	for rows.Next() {
		i, scanErr := scanPackingItem(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, *i)
	}
	return out, rows.Err()
}

func (s *Store) GetPackingItem(ctx context.Context, id int64) (*domain.PackingItem, error) {
	return scanPackingItem(s.QueryOne(ctx, "SELECT * FROM packing_items WHERE id = ?", id))
}

func (s *Store) CreatePackingItem(ctx context.Context, in domain.NewPackingItemInput) (*domain.PackingItem, error) {
	now := nowISO()
	quantity := int64(1)
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	fragile := int64(0)
	if in.Fragile != nil {
		fragile = *in.Fragile
	}
	row, err := s.InsertReturning(ctx, "packing_items", `
		INSERT INTO packing_items (box_id, name, quantity, fragile, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.BoxID, in.Name, quantity, fragile, in.Notes, now, now)
	if err != nil {
		return nil, fmt.Errorf("create packing item: %w", err)
	}
	return scanPackingItem(row)
}

func (s *Store) UpdatePackingItem(ctx context.Context, id int64, p domain.PackingItemPatch) (*domain.PackingItem, error) {
	var fs fieldSet
	set(&fs, "name", p.Name)
	set(&fs, "quantity", p.Quantity)
	set(&fs, "fragile", p.Fragile)
	set(&fs, "notes", p.Notes)
	if fs.empty() {
		return s.GetPackingItem(ctx, id)
	}
	query := "UPDATE packing_items SET " + fs.clause(nowISO()) + " WHERE id = ?"
	if _, err := s.Execute(ctx, query, append(fs.args, id)...); err != nil {
		return nil, fmt.Errorf("update packing item: %w", err)
	}
	return s.GetPackingItem(ctx, id)
}

func (s *Store) DeletePackingItem(ctx context.Context, id int64) error {
	if _, err := s.Execute(ctx, "DELETE FROM packing_items WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete packing item: %w", err)
	}
	return nil
}
