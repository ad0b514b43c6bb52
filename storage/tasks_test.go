package storage

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"pdm-api/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateTaskRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateTask(ctx, domain.NewTaskInput{
		UserID:      1,
		DomainID:    1,
		Title:       "Sign lease",
		Description: strPtr("Bring passport and proof of income"),
		Priority:    intPtr(3),
		DueDate:     strPtr("2026-09-15"),
		Notes:       strPtr("agency closes at 5pm"),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a generated id")
	}
	if created.Status != domain.TaskStatusPending {
		t.Fatalf("expected new task to be pending, got %q", created.Status)
	}
	if created.Priority != 3 {
		t.Fatalf("expected priority 3, got %d", created.Priority)
	}
	if created.CreatedAt == "" || created.UpdatedAt == "" {
		t.Fatal("expected timestamps to be stamped")
	}

	got, err := s.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if !reflect.DeepEqual(got, created) {
		t.Fatalf("fetched task differs from created task:\n  created: %+v\n  fetched: %+v", created, got)
	}
	if got.Description == nil || *got.Description != "Bring passport and proof of income" {
		t.Fatal("description did not survive the round trip")
	}
	if got.OriginDocID != nil {
		t.Fatal("expected unset origin_doc_id to come back NULL")
	}
}

func TestCreateTaskDefaultPriority(t *testing.T) {
	s := newTestStore(t)
	created, err := s.CreateTask(context.Background(), domain.NewTaskInput{
		UserID: 1, DomainID: 1, Title: "Forward mail",
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if created.Priority != 2 {
		t.Fatalf("expected default priority 2, got %d", created.Priority)
	}
}

func TestUpdateTaskPartial(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateTask(ctx, domain.NewTaskInput{
		UserID: 1, DomainID: 1, Title: "Open bank account",
		Notes: strPtr("needs residence permit"),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	time.Sleep(2 * time.Millisecond)
	updated, err := s.UpdateTask(ctx, created.ID, domain.TaskPatch{Priority: intPtr(3)})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}
	if updated.Priority != 3 {
		t.Fatalf("expected priority 3, got %d", updated.Priority)
	}
	if updated.Title != created.Title {
		t.Fatalf("title changed unexpectedly: %q", updated.Title)
	}
	if updated.Notes == nil || *updated.Notes != "needs residence permit" {
		t.Fatal("untouched notes field changed")
	}
	if updated.Status != created.Status || updated.CreatedAt != created.CreatedAt {
		t.Fatal("fields outside the patch changed")
	}
	if updated.UpdatedAt == created.UpdatedAt {
		t.Fatal("expected updated_at to move forward")
	}
	if updated.UpdatedAt < created.UpdatedAt {
		t.Fatalf("updated_at went backwards: %q -> %q", created.UpdatedAt, updated.UpdatedAt)
	}
}

func TestUpdateTaskEmptyPatchIsNoOp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateTask(ctx, domain.NewTaskInput{
		UserID: 1, DomainID: 1, Title: "Register at city hall",
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	time.Sleep(2 * time.Millisecond)
	got, err := s.UpdateTask(ctx, created.ID, domain.TaskPatch{})
	if err != nil {
		t.Fatalf("empty patch: %v", err)
	}
	if got.UpdatedAt != created.UpdatedAt {
		t.Fatalf("empty patch must not stamp updated_at: %q -> %q", created.UpdatedAt, got.UpdatedAt)
	}
	if !reflect.DeepEqual(got, created) {
		t.Fatal("empty patch changed the row")
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateTask(ctx, domain.NewTaskInput{
		UserID: 1, DomainID: 2, Title: "Submit visa paperwork",
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	time.Sleep(2 * time.Millisecond)
	got, err := s.UpdateTaskStatus(ctx, created.ID, domain.TaskStatusDone)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if got.Status != domain.TaskStatusDone {
		t.Fatalf("expected done, got %q", got.Status)
	}
	if got.UpdatedAt == created.UpdatedAt {
		t.Fatal("expected updated_at to move forward")
	}
	if got.Title != created.Title || got.Priority != created.Priority {
		t.Fatal("status update touched other fields")
	}
}

func TestGetTaskNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetTask(context.Background(), 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTaskAbsentIDIsNoOp(t *testing.T) {
	s := newTestStore(t)
	if err := s.DeleteTask(context.Background(), 9999); err != nil {
		t.Fatalf("expected delete of absent id to succeed, got %v", err)
	}
}

func TestListTasksByDomainSlugAndID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, title := range []string{"View apartment", "Compare neighborhoods"} {
		if _, err := s.CreateTask(ctx, domain.NewTaskInput{UserID: 1, DomainID: 1, Title: title}); err != nil {
			t.Fatalf("create task: %v", err)
		}
	}
	if _, err := s.CreateTask(ctx, domain.NewTaskInput{UserID: 1, DomainID: 2, Title: "Find pediatrician"}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	bySlug, err := s.ListTasksByDomain(ctx, "housing")
	if err != nil {
		t.Fatalf("list by slug: %v", err)
	}
	if len(bySlug) != 2 {
		t.Fatalf("expected 2 housing tasks, got %d", len(bySlug))
	}

	byID, err := s.ListTasksByDomain(ctx, "1")
	if err != nil {
		t.Fatalf("list by id: %v", err)
	}
	if len(byID) != len(bySlug) {
		t.Fatalf("slug and id lookups disagree: %d vs %d", len(bySlug), len(byID))
	}
}

func TestListPendingNextActions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	pending, err := s.CreateTask(ctx, domain.NewTaskInput{UserID: 1, DomainID: 1, Title: "Schedule movers"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	done, err := s.CreateTask(ctx, domain.NewTaskInput{UserID: 1, DomainID: 1, Title: "Book flights"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if _, err := s.UpdateTaskStatus(ctx, done.ID, domain.TaskStatusDone); err != nil {
		t.Fatalf("update status: %v", err)
	}

	actions, err := s.ListPendingNextActions(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(actions) != 1 {
		t.Fatalf("expected 1 pending action, got %d", len(actions))
	}
	if actions[0].ID != pending.ID {
		t.Fatalf("expected task %d, got %d", pending.ID, actions[0].ID)
	}
	if actions[0].DomainSlug != "housing" {
		t.Fatalf("expected domain slug 'housing', got %q", actions[0].DomainSlug)
	}
}
