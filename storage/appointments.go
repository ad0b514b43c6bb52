package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pdm-api/domain"
)

func scanAppointment(r Row) (*domain.Appointment, error) {
	var a domain.Appointment
	err := r.Scan(&a.ID, &a.UserID, &a.ProviderID, &a.Title, &a.Description, &a.Location,
		&a.StartDatetime, &a.EndDatetime, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan appointment: %w", err)
	}
	return &a, nil
}

func (s *Store) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	rows, err := s.QueryMany(ctx, "SELECT * FROM appointments ORDER BY start_datetime ASC")
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	out := []domain.Appointment{}
	for rows.Next() {
		a, scanErr := scanAppointment(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *Store) GetAppointment(ctx context.Context, id int64) (*domain.Appointment, error) {
	return scanAppointment(s.QueryOne(ctx, "SELECT * FROM appointments WHERE id = ?", id))
}

func (s *Store) CreateAppointment(ctx context.Context, in domain.NewAppointmentInput) (*domain.Appointment, error) {
	now := nowISO()
	row, err := s.InsertReturning(ctx, "appointments", `
		INSERT INTO appointments (user_id, provider_id, title, description, location, start_datetime, end_datetime, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.ProviderID, in.Title, in.Description, in.Location, in.StartDatetime, in.EndDatetime, in.Notes, now, now)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return scanAppointment(row)
}

func (s *Store) UpdateAppointment(ctx context.Context, id int64, p domain.AppointmentPatch) (*domain.Appointment, error) {
	var fs fieldSet
	set(&fs, "provider_id", p.ProviderID)
	set(&fs, "title", p.Title)
	set(&fs, "description", p.Description)
	set(&fs, "location", p.Location)
	set(&fs, "start_datetime", p.StartDatetime)
	set(&fs, "end_datetime", p.EndDatetime)
	set(&fs, "notes", p.Notes)
	if fs.empty() {
		return s.GetAppointment(ctx, id)
	}
	query := "UPDATE appointments SET " + fs.clause(nowISO()) + " WHERE id = ?"
	if _, err := s.Execute(ctx, query, append(fs.args, id)...); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return s.GetAppointment(ctx, id)
}

func (s *Store) DeleteAppointment(ctx context.Context, id int64) error {
	if _, err := s.Execute(ctx, "DELETE FROM appointments WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}
