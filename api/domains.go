package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

func getDomains(store DomainStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		domains, err := store.ListDomains(c.Request().Context())
		if err != nil {
			return serverError(c, logger, "domains", err)
		}
		return c.JSON(http.StatusOK, domains)
	}
}

func health() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

func landing() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "pdm-api is running. See /api/health.")
	}
}
