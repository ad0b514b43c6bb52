package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"pdm-api/domain"
	"pdm-api/storage"
)

func testLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

type mockTaskStore struct {
	task       *domain.Task
	tasks      []domain.Task
	err        error
	lastStatus string
	lastPatch  domain.TaskPatch
	lastInput  domain.NewTaskInput
	deletedID  int64
}

func (m *mockTaskStore) CreateTask(_ context.Context, in domain.NewTaskInput) (*domain.Task, error) {
	m.lastInput = in
	return m.task, m.err
}

func (m *mockTaskStore) GetTask(_ context.Context, id int64) (*domain.Task, error) {
	return m.task, m.err
}

func (m *mockTaskStore) ListTasksByDomain(_ context.Context, slugOrID string) ([]domain.Task, error) {
	return m.tasks, m.err
}

func (m *mockTaskStore) UpdateTaskStatus(_ context.Context, id int64, status string) (*domain.Task, error) {
	m.lastStatus = status
	return m.task, m.err
}

func (m *mockTaskStore) UpdateTask(_ context.Context, id int64, p domain.TaskPatch) (*domain.Task, error) {
	m.lastPatch = p
	return m.task, m.err
}

func (m *mockTaskStore) DeleteTask(_ context.Context, id int64) error {
	m.deletedID = id
	return m.err
}

func newTaskContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetTask(t *testing.T) {
	e := echo.New()
	store := &mockTaskStore{task: &domain.Task{ID: 7, Title: "Pack kitchen", Status: "pending"}}
	c, rec := newTaskContext(e, http.MethodGet, "/api/tasks/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := getTask(store, testLogger())(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got domain.Task
	if err := sonic.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 7 || got.Title != "Pack kitchen" {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	e := echo.New()
	store := &mockTaskStore{err: storage.ErrNotFound}
	c, rec := newTaskContext(e, http.MethodGet, "/api/tasks/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	if err := getTask(store, testLogger())(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetTaskInvalidID(t *testing.T) {
	e := echo.New()
	c, rec := newTaskContext(e, http.MethodGet, "/api/tasks/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := getTask(&mockTaskStore{}, testLogger())(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPostTask(t *testing.T) {
	e := echo.New()
	store := &mockTaskStore{task: &domain.Task{ID: 1, Title: "Book removalist", Status: "pending"}}
	c, rec := newTaskContext(e, http.MethodPost, "/api/tasks", `{"title":"Book removalist","domain_id":1}`)

	if err := postTask(store, testLogger())(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if store.lastInput.UserID != defaultUserID {
		t.Fatalf("expected default user id, got %d", store.lastInput.UserID)
	}
}

func TestPostTaskMissingTitle(t *testing.T) {
	e := echo.New()
	c, rec := newTaskContext(e, http.MethodPost, "/api/tasks", `{"domain_id":1}`)

	if err := postTask(&mockTaskStore{}, testLogger())(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPatchTaskStatus(t *testing.T) {
	e := echo.New()
	store := &mockTaskStore{task: &domain.Task{ID: 1, Status: "done"}}
	c, rec := newTaskContext(e, http.MethodPatch, "/api/tasks/1/status", `{"status":"done"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := patchTaskStatus(store, testLogger())(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if store.lastStatus != "done" {
		t.Fatalf("expected status 'done' forwarded, got %q", store.lastStatus)
	}
}

func TestPatchTaskStatusRejectsUnknown(t *testing.T) {
	e := echo.New()
	store := &mockTaskStore{}
	c, rec := newTaskContext(e, http.MethodPatch, "/api/tasks/1/status", `{"status":"finished"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := patchTaskStatus(store, testLogger())(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if store.lastStatus != "" {
		t.Fatal("invalid status must not reach the store")
	}
}

func TestPatchTaskIgnoresUnknownKeys(t *testing.T) {
	e := echo.New()
	store := &mockTaskStore{task: &domain.Task{ID: 1, Priority: 3}}
	c, rec := newTaskContext(e, http.MethodPatch, "/api/tasks/1", `{"priority":3,"id":1,"created_at":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := patchTask(store, testLogger())(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if store.lastPatch.Priority == nil || *store.lastPatch.Priority != 3 {
		t.Fatal("priority not forwarded in patch")
	}
	if store.lastPatch.Title != nil {
		t.Fatal("unset fields must stay nil")
	}
}

func TestDeleteTask(t *testing.T) {
	e := echo.New()
	store := &mockTaskStore{}
	c, rec := newTaskContext(e, http.MethodDelete, "/api/tasks/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := deleteTask(store, testLogger())(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if store.deletedID != 4 {
		t.Fatalf("expected delete of id 4, got %d", store.deletedID)
	}
}

func TestServerErrorHidesDetail(t *testing.T) {
	e := echo.New()
	store := &mockTaskStore{err: errors.New("pq: connection refused at 10.0.0.5")}
	c, rec := newTaskContext(e, http.MethodGet, "/api/tasks/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := getTask(store, testLogger())(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "10.0.0.5") {
		t.Fatal("internal detail leaked into the response body")
	}
}
