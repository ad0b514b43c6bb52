package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pdm-api/domain"
)

func scanTrip(r Row) (*domain.Trip, error) {
	var t domain.Trip
	err := r.Scan(&t.ID, &t.UserID, &t.Date, &t.Origin, &t.Destination, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan trip: %w", err)
	}
	return &t, nil
}

func scanTripAssignment(r Row) (*domain.TripAssignment, error) {
	var a domain.TripAssignment
	err := r.Scan(&a.ID, &a.TripID, &a.Vehicle, &a.DriverName, &a.Passengers, &a.CargoNotes, &a.MiscNotes, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan trip assignment: %w", err)
	}
	return &a, nil
}

func (s *Store) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	rows, err := s.QueryMany(ctx, "SELECT * FROM trips ORDER BY date ASC, created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	out := []domain.Trip{}
	for rows.Next() {
		t, scanErr := scanTrip(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (s *Store) GetTrip(ctx context.Context, id int64) (*domain.Trip, error) {
	return scanTrip(s.QueryOne(ctx, "SELECT * FROM trips WHERE id = ?", id))
}

func (s *Store) CreateTrip(ctx context.Context, in domain.NewTripInput) (*domain.Trip, error) {
	now := nowISO()
	row, err := s.InsertReturning(ctx, "trips", `
		INSERT INTO trips (user_id, date, origin, destination, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.Date, in.Origin, in.Destination, in.Notes, now, now)
	if err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}
	return scanTrip(row)
}

func (s *Store) UpdateTrip(ctx context.Context, id int64, p domain.TripPatch) (*domain.Trip, error) {
	var fs fieldSet
	set(&fs, "date", p.Date)
	set(&fs, "origin", p.Origin)
	set(&fs, "destination", p.Destination)
	set(&fs, "notes", p.Notes)
	if fs.empty() {
		return s.GetTrip(ctx, id)
	}
	query := "UPDATE trips SET " + fs.clause(nowISO()) + " WHERE id = ?"
	if _, err := s.Execute(ctx, query, append(fs.args, id)...); err != nil {
		return nil, fmt.Errorf("update trip: %w", err)
	}
	return s.GetTrip(ctx, id)
}

func (s *Store) DeleteTrip(ctx context.Context, id int64) error {
	if _, err := s.Execute(ctx, "DELETE FROM trips WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	return nil
}

func (s *Store) ListTripAssignments(ctx context.Context, tripID int64) ([]domain.TripAssignment, error) {
	rows, err := s.QueryMany(ctx, "SELECT * FROM trip_assignments WHERE trip_id = ? ORDER BY id ASC", tripID)
	if err != nil {
		return nil, fmt.Errorf("list trip assignments: %w", err)
	}
	defer rows.Close()

	out := []domain.TripAssignment{}
	for rows.Next() {
		a, scanErr := scanTripAssignment(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *Store) CreateTripAssignment(ctx context.Context, in domain.NewTripAssignmentInput) (*domain.TripAssignment, error) {
	now := nowISO()
	row, err := s.InsertReturning(ctx, "trip_assignments", `
		INSERT INTO trip_assignments (trip_id, vehicle, driver_name, passengers, cargo_notes, misc_notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.TripID, in.Vehicle, in.DriverName, in.Passengers, in.CargoNotes, in.MiscNotes, now, now)
	if err != nil {
		return nil, fmt.Errorf("create trip assignment: %w", err)
	}
	return scanTripAssignment(row)
}

func (s *Store) UpdateTripAssignment(ctx context.Context, id int64, p domain.TripAssignmentPatch) (*domain.TripAssignment, error) {
	var fs fieldSet
	set(&fs, "vehicle", p.Vehicle)
	set(&fs, "driver_name", p.DriverName)
	set(&fs, "passengers", p.Passengers)
	set(&fs, "cargo_notes", p.CargoNotes)
	set(&fs, "misc_notes", p.MiscNotes)
	if fs.empty() {
		return scanTripAssignment(s.QueryOne(ctx, "SELECT * FROM trip_assignments WHERE id = ?", id))
	}
	query := "UPDATE trip_assignments SET " + fs.clause(nowISO()) + " WHERE id = ?"
	if _, err := s.Execute(ctx, query, append(fs.args, id)...); err != nil {
		return nil, fmt.Errorf("update trip assignment: %w", err)
	}
	return scanTripAssignment(s.QueryOne(ctx, "SELECT * FROM trip_assignments WHERE id = ?", id))
}

func (s *Store) DeleteTripAssignment(ctx context.Context, id int64) error {
	if _, err := s.Execute(ctx, "DELETE FROM trip_assignments WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete trip assignment: %w", err)
	}
	return nil
}
