package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"pdm-api/domain"
)

func getProperties(store PropertyStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		properties, err := store.ListProperties(c.Request().Context())
		if err != nil {
			return serverError(c, logger, "properties", err)
		}
		return c.JSON(http.StatusOK, properties)
	}
}

func getProperty(store PropertyStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid property id")
		}
		property, err := store.GetProperty(c.Request().Context(), id)
		if err != nil {
			return serverError(c, logger, "property", err)
		}
		return c.JSON(http.StatusOK, property)
	}
}

func postProperty(store PropertyStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in domain.NewPropertyInput
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid body")
		}
		if in.Address == "" || in.Type == "" {
			return badRequest(c, "address and type are required")
		}
		if in.UserID == 0 {
			in.UserID = defaultUserID
		}
		property, err := store.CreateProperty(c.Request().Context(), in)
		if err != nil {
			return serverError(c, logger, "create property", err)
		}
		return c.JSON(http.StatusCreated, property)
	}
}

func patchProperty(store PropertyStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid property id")
		}
		var patch domain.PropertyPatch
		if err := decodeBody(c, &patch); err != nil {
			return badRequest(c, "invalid body")
		}
		property, err := store.UpdateProperty(c.Request().Context(), id, patch)
		if err != nil {
			return serverError(c, logger, "property", err)
		}
		return c.JSON(http.StatusOK, property)
	}
}

func deleteProperty(store PropertyStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid property id")
		}
		if err := store.DeleteProperty(c.Request().Context(), id); err != nil {
			return serverError(c, logger, "delete property", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
