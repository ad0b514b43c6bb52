package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pdm-api/domain"
)

func scanJobOption(r Row) (*domain.JobOption, error) {
	var j domain.JobOption
	err := r.Scan(&j.ID, &j.UserID, &j.Employer, &j.Role, &j.HoursPerWeek, &j.PayRateHourly,
		&j.Status, &j.Pros, &j.Cons, &j.Notes, &j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan job option: %w", err)
	}
	return &j, nil
}

func (s *Store) ListJobOptions(ctx context.Context) ([]domain.JobOption, error) {
	rows, err := s.QueryMany(ctx, "SELECT * FROM job_options ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list job options: %w", err)
	}
	defer rows.Close()

	out := []domain.JobOption{}
	for rows.Next() {
		j, scanErr := scanJobOption(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

func (s *Store) GetJobOption(ctx context.Context, id int64) (*domain.JobOption, error) {
	return scanJobOption(s.QueryOne(ctx, "SELECT * FROM job_options WHERE id = ?", id))
}

func (s *Store) CreateJobOption(ctx context.Context, in domain.NewJobOptionInput) (*domain.JobOption, error) {
	now := nowISO()
	row, err := s.InsertReturning(ctx, "job_options", `
		INSERT INTO job_options (user_id, employer, role, hours_per_week, pay_rate_hourly, status, pros, cons, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.Employer, in.Role, in.HoursPerWeek, in.PayRateHourly, in.Status, in.Pros, in.Cons, in.Notes, now, now)
	if err != nil {
		return nil, fmt.Errorf("create job option: %w", err)
	}
	return scanJobOption(row)
}

func (s *Store) UpdateJobOption(ctx context.Context, id int64, p domain.JobOptionPatch) (*domain.JobOption, error) {
	var fs fieldSet
	set(&fs, "employer", p.Employer)
	set(&fs, "role", p.Role)
	set(&fs, "hours_per_week", p.HoursPerWeek)
	set(&fs, "pay_rate_hourly", p.PayRateHourly)
	set(&fs, "status", p.Status)
	set(&fs, "pros", p.Pros)
	set(&fs, "cons", p.Cons)
	set(&fs, "notes", p.Notes)
	if fs.empty() {
		return s.GetJobOption(ctx, id)
	}
	query := "UPDATE job_options SET " + fs.clause(nowISO()) + " WHERE id = ?"
	if _, err := s.Execute(ctx, query, append(fs.args, id)...); err != nil {
		return nil, fmt.Errorf("update job option: %w", err)
	}
	return s.GetJobOption(ctx, id)
}

func (s *Store) DeleteJobOption(ctx context.Context, id int64) error {
	if _, err := s.Execute(ctx, "DELETE FROM job_options WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete job option: %w", err)
	}
	return nil
}
