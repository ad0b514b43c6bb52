package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"pdm-api/domain"
)

func scanTask(r Row) (*domain.Task, error) {
	var t domain.Task
	err := r.Scan(
		&t.ID, &t.UserID, &t.DomainID, &t.Title, &t.Description, &t.Status,
		&t.Priority, &t.DueDate, &t.OriginDocID, &t.RelatedPropertyID,
		&t.RelatedJobID, &t.RelatedProviderID, &t.RelatedChildcareID,
		&t.RelatedTripID, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &t, nil
}

// CreateTask inserts a task and returns the stored row. New tasks always
// start pending; priority defaults to 2 when the caller leaves it unset.
func (s *Store) CreateTask(ctx context.Context, in domain.NewTaskInput) (*domain.Task, error) {
	now := nowISO()
	priority := 2
	if in.Priority != nil {
		priority = *in.Priority
	}
	row, err := s.InsertReturning(ctx, "tasks", `
		INSERT INTO tasks (
			user_id, domain_id, title, description, status, priority, due_date, origin_doc_id,
			related_property_id, related_job_id, related_provider_id, related_childcare_id,
			related_trip_id, notes, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.DomainID, in.Title, in.Description, domain.TaskStatusPending, priority,
		in.DueDate, in.OriginDocID, in.RelatedPropertyID, in.RelatedJobID, in.RelatedProviderID,
		in.RelatedChildcareID, in.RelatedTripID, in.Notes, now, now)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return scanTask(row)
}

func (s *Store) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return scanTask(s.QueryOne(ctx, "SELECT * FROM tasks WHERE id = ?", id))
}

// ListTasksByDomain accepts either a domain slug or a numeric domain id.
func (s *Store) ListTasksByDomain(ctx context.Context, slugOrID string) ([]domain.Task, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if id, convErr := strconv.ParseInt(slugOrID, 10, 64); convErr == nil {
		rows, err = s.QueryMany(ctx, `
			SELECT * FROM tasks
			WHERE domain_id = ?
			ORDER BY due_date ASC, priority DESC, created_at ASC`, id)
	} else {
		rows, err = s.QueryMany(ctx, `
			SELECT t.* FROM tasks t
			JOIN domains d ON t.domain_id = d.id
			WHERE d.slug = ?
			ORDER BY t.due_date ASC, t.priority DESC, t.created_at ASC`, slugOrID)
	}
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// ListPendingNextActions fetches every pending task joined to its domain.
// Tasks whose domain row is missing drop out of the join by design. Ordering
// and the limit are applied by the ranking engine, not here.
func (s *Store) ListPendingNextActions(ctx context.Context) ([]domain.NextAction, error) {
	rows, err := s.QueryMany(ctx, `
		SELECT t.*, d.slug
		FROM tasks t
		JOIN domains d ON t.domain_id = d.id
		WHERE t.status = ?`, domain.TaskStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending tasks: %w", err)
	}
	defer rows.Close()

	actions := []domain.NextAction{}
	for rows.Next() {
		var a domain.NextAction
		err := rows.Scan(
			&a.ID, &a.UserID, &a.DomainID, &a.Title, &a.Description, &a.Status,
			&a.Priority, &a.DueDate, &a.OriginDocID, &a.RelatedPropertyID,
			&a.RelatedJobID, &a.RelatedProviderID, &a.RelatedChildcareID,
			&a.RelatedTripID, &a.Notes, &a.CreatedAt, &a.UpdatedAt, &a.DomainSlug,
		)
		if err != nil {
			return nil, fmt.Errorf("scan pending task: %w", err)
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

// UpdateTaskStatus sets only the status and the update stamp.
func (s *Store) UpdateTaskStatus(ctx context.Context, id int64, status string) (*domain.Task, error) {
	if _, err := s.Execute(ctx,
		"UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?",
		status, nowISO(), id); err != nil {
		return nil, fmt.Errorf("update task status: %w", err)
	}
	return s.GetTask(ctx, id)
}

// UpdateTask applies a partial update and returns the canonical current row.
// An empty patch is not an error: the row comes back unchanged.
func (s *Store) UpdateTask(ctx context.Context, id int64, p domain.TaskPatch) (*domain.Task, error) {
	var fs fieldSet
	set(&fs, "title", p.Title)
	set(&fs, "description", p.Description)
	set(&fs, "priority", p.Priority)
	set(&fs, "due_date", p.DueDate)
	set(&fs, "origin_doc_id", p.OriginDocID)
	set(&fs, "related_property_id", p.RelatedPropertyID)
	set(&fs, "related_job_id", p.RelatedJobID)
	set(&fs, "related_provider_id", p.RelatedProviderID)
	set(&fs, "related_childcare_id", p.RelatedChildcareID)
	set(&fs, "related_trip_id", p.RelatedTripID)
	set(&fs, "notes", p.Notes)
	if fs.empty() {
		return s.GetTask(ctx, id)
	}
	query := "UPDATE tasks SET " + fs.clause(nowISO()) + " WHERE id = ?"
	if _, err := s.Execute(ctx, query, append(fs.args, id)...); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return s.GetTask(ctx, id)
}

// DeleteTask removes the row unconditionally; deleting an absent id is a
// no-op.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	if _, err := s.Execute(ctx, "DELETE FROM tasks WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
