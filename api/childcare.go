package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"pdm-api/domain"
)

func getChildcareOptions(store ChildcareStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		options, err := store.ListChildcareOptions(c.Request().Context())
		if err != nil {
			return serverError(c, logger, "childcare options", err)
		}
		return c.JSON(http.StatusOK, options)
	}
}

func getChildcareOption(store ChildcareStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid childcare option id")
		}
		option, err := store.GetChildcareOption(c.Request().Context(), id)
		if err != nil {
			return serverError(c, logger, "childcare option", err)
		}
		return c.JSON(http.StatusOK, option)
	}
}

func postChildcareOption(store ChildcareStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in domain.NewChildcareOptionInput
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid body")
		}
		if in.Name == "" || in.Type == "" {
			return badRequest(c, "name and type are required")
		}
		if in.UserID == 0 {
			in.UserID = defaultUserID
		}
		option, err := store.CreateChildcareOption(c.Request().Context(), in)
		if err != nil {
			return serverError(c, logger, "create childcare option", err)
		}
		return c.JSON(http.StatusCreated, option)
	}
}

func patchChildcareOption(store ChildcareStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid childcare option id")
		}
		var patch domain.ChildcareOptionPatch
		if err := decodeBody(c, &patch); err != nil {
			return badRequest(c, "invalid body")
		}
		option, err := store.UpdateChildcareOption(c.Request().Context(), id, patch)
		if err != nil {
			return serverError(c, logger, "childcare option", err)
		}
		return c.JSON(http.StatusOK, option)
	}
}

func deleteChildcareOption(store ChildcareStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid childcare option id")
		}
		if err := store.DeleteChildcareOption(c.Request().Context(), id); err != nil {
			return serverError(c, logger, "delete childcare option", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
