package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"pdm-api/domain"
)

func getProviders(store ProviderStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		providers, err := store.ListProviders(c.Request().Context())
		if err != nil {
			return serverError(c, logger, "providers", err)
		}
		return c.JSON(http.StatusOK, providers)
	}
}

func getProvider(store ProviderStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid provider id")
		}
		provider, err := store.GetProvider(c.Request().Context(), id)
		if err != nil {
			return serverError(c, logger, "provider", err)
		}
		return c.JSON(http.StatusOK, provider)
	}
}

func postProvider(store ProviderStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in domain.NewProviderInput
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid body")
		}
		if in.Name == "" || in.Type == "" {
			return badRequest(c, "name and type are required")
		}
		if in.UserID == 0 {
			in.UserID = defaultUserID
		}
		provider, err := store.CreateProvider(c.Request().Context(), in)
		if err != nil {
			return serverError(c, logger, "create provider", err)
		}
		return c.JSON(http.StatusCreated, provider)
	}
}

func patchProvider(store ProviderStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid provider id")
		}
		var patch domain.ProviderPatch
		if err := decodeBody(c, &patch); err != nil {
			return badRequest(c, "invalid body")
		}
		provider, err := store.UpdateProvider(c.Request().Context(), id, patch)
		if err != nil {
			return serverError(c, logger, "provider", err)
		}
		return c.JSON(http.StatusOK, provider)
	}
}

func deleteProvider(store ProviderStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid provider id")
		}
		if err := store.DeleteProvider(c.Request().Context(), id); err != nil {
			return serverError(c, logger, "delete provider", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
