package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"pdm-api/domain"
)

type mockNextActionStore struct {
	actions []domain.NextAction
	err     error
}

func (m *mockNextActionStore) ListPendingNextActions(context.Context) ([]domain.NextAction, error) {
	return m.actions, m.err
}

func pendingAction(id int64, priority int, due *string, created, slug string) domain.NextAction {
	return domain.NextAction{
		Task: domain.Task{
			ID:        id,
			Title:     "task",
			Status:    domain.TaskStatusPending,
			Priority:  priority,
			DueDate:   due,
			CreatedAt: created,
		},
		DomainSlug: slug,
	}
}

func TestGetNextActionsDefaultLimit(t *testing.T) {
	e := echo.New()
	due := "2026-09-02"
	store := &mockNextActionStore{actions: []domain.NextAction{
		pendingAction(1, 1, nil, "2026-08-01T00:00:00.000Z", "housing"),
		pendingAction(2, 3, &due, "2026-08-02T00:00:00.000Z", "health"),
		pendingAction(3, 2, nil, "2026-08-03T00:00:00.000Z", "housing"),
		pendingAction(4, 2, &due, "2026-08-04T00:00:00.000Z", "housing"),
	}}
	req := httptest.NewRequest(http.MethodGet, "/api/next-actions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := getNextActions(store, testLogger())(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []domain.NextAction
	if err := sonic.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected default limit of 3, got %d", len(got))
	}
	if got[0].ID != 2 {
		t.Fatalf("expected highest-priority task first, got id %d", got[0].ID)
	}
	if got[0].Why != "" {
		t.Fatal("explanations must be omitted unless requested")
	}
}

func TestGetNextActionsIncludeWhy(t *testing.T) {
	e := echo.New()
	store := &mockNextActionStore{actions: []domain.NextAction{
		pendingAction(1, 3, nil, "2026-08-01T00:00:00.000Z", "housing"),
	}}
	req := httptest.NewRequest(http.MethodGet, "/api/next-actions?includeWhy=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := getNextActions(store, testLogger())(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	var got []domain.NextAction
	if err := sonic.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 action, got %d", len(got))
	}
	if got[0].Why != "High-priority task in housing." {
		t.Fatalf("unexpected explanation: %q", got[0].Why)
	}
}

func TestGetNextActionsLimitCeiling(t *testing.T) {
	e := echo.New()
	actions := make([]domain.NextAction, 0, 8)
	for i := int64(1); i <= 8; i++ {
		actions = append(actions, pendingAction(i, 2, nil, "2026-08-01T00:00:00.000Z", "housing"))
	}
	store := &mockNextActionStore{actions: actions}
	req := httptest.NewRequest(http.MethodGet, "/api/next-actions?limit=50", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := getNextActions(store, testLogger())(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	var got []domain.NextAction
	if err := sonic.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != domain.MaxNextActionLimit {
		t.Fatalf("expected limit capped at %d, got %d", domain.MaxNextActionLimit, len(got))
	}
}

func TestGetNextActionsInvalidLimit(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/next-actions?limit=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := getNextActions(&mockNextActionStore{}, testLogger())(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetNextActionsEmpty(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/next-actions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := getNextActions(&mockNextActionStore{}, testLogger())(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" && body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}
