package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"pdm-api/domain"
)

func getWorkLinks(store WorkLinkStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		links, err := store.ListWorkLinks(c.Request().Context(), defaultUserID)
		if err != nil {
			return serverError(c, logger, "work links", err)
		}
		return c.JSON(http.StatusOK, links)
	}
}

func getWorkLink(store WorkLinkStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid work link id")
		}
		link, err := store.GetWorkLink(c.Request().Context(), id)
		if err != nil {
			return serverError(c, logger, "work link", err)
		}
		return c.JSON(http.StatusOK, link)
	}
}

func postWorkLink(store WorkLinkStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in domain.NewWorkLinkInput
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid body")
		}
		if in.Title == "" || in.URL == "" {
			return badRequest(c, "title and url are required")
		}
		if in.UserID == 0 {
			in.UserID = defaultUserID
		}
		link, err := store.CreateWorkLink(c.Request().Context(), in)
		if err != nil {
			return serverError(c, logger, "create work link", err)
		}
		return c.JSON(http.StatusCreated, link)
	}
}

func patchWorkLink(store WorkLinkStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid work link id")
		}
		var patch domain.WorkLinkPatch
		if err := decodeBody(c, &patch); err != nil {
			return badRequest(c, "invalid body")
		}
		link, err := store.UpdateWorkLink(c.Request().Context(), id, patch)
		if err != nil {
			return serverError(c, logger, "work link", err)
		}
		return c.JSON(http.StatusOK, link)
	}
}

func deleteWorkLink(store WorkLinkStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid work link id")
		}
		if err := store.DeleteWorkLink(c.Request().Context(), id); err != nil {
			return serverError(c, logger, "delete work link", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
