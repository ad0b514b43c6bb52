package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"pdm-api/domain"
)

func getTask(store TaskStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid task id")
		}
		task, err := store.GetTask(c.Request().Context(), id)
		if err != nil {
			return serverError(c, logger, "task", err)
		}
		return c.JSON(http.StatusOK, task)
	}
}

// getTasksByDomain lists tasks by domain slug or numeric id.
func getTasksByDomain(store TaskStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := strings.TrimSpace(c.Param("domain"))
		if key == "" {
			return badRequest(c, "missing domain")
		}
		tasks, err := store.ListTasksByDomain(c.Request().Context(), key)
		if err != nil {
			return serverError(c, logger, "tasks", err)
		}
		return c.JSON(http.StatusOK, tasks)
	}
}

func postTask(store TaskStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in domain.NewTaskInput
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid body")
		}
		if in.Title == "" || in.DomainID == 0 {
			return badRequest(c, "title and domain_id are required")
		}
		if in.UserID == 0 {
			in.UserID = defaultUserID
		}
		task, err := store.CreateTask(c.Request().Context(), in)
		if err != nil {
			return serverError(c, logger, "create task", err)
		}
		return c.JSON(http.StatusCreated, task)
	}
}

type taskStatusBody struct {
	Status string `json:"status"`
}

func patchTaskStatus(store TaskStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid task id")
		}
		var body taskStatusBody
		if err := decodeBody(c, &body); err != nil {
			return badRequest(c, "invalid body")
		}
		if !domain.ValidTaskStatus(body.Status) {
			return badRequest(c, "invalid status")
		}
		task, err := store.UpdateTaskStatus(c.Request().Context(), id, body.Status)
		if err != nil {
			return serverError(c, logger, "task", err)
		}
		return c.JSON(http.StatusOK, task)
	}
}

func patchTask(store TaskStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid task id")
		}
		var patch domain.TaskPatch
		if err := decodeBody(c, &patch); err != nil {
			return badRequest(c, "invalid body")
		}
		task, err := store.UpdateTask(c.Request().Context(), id, patch)
		if err != nil {
			return serverError(c, logger, "task", err)
		}
		return c.JSON(http.StatusOK, task)
	}
}

func deleteTask(store TaskStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid task id")
		}
		if err := store.DeleteTask(c.Request().Context(), id); err != nil {
			return serverError(c, logger, "delete task", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
