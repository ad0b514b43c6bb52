package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"pdm-api/domain"
)

func getJobOptions(store JobOptionStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		options, err := store.ListJobOptions(c.Request().Context())
		if err != nil {
			return serverError(c, logger, "job options", err)
		}
		return c.JSON(http.StatusOK, options)
	}
}

func getJobOption(store JobOptionStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid job option id")
		}
		option, err := store.GetJobOption(c.Request().Context(), id)
		if err != nil {
			return serverError(c, logger, "job option", err)
		}
		return c.JSON(http.StatusOK, option)
	}
}

func postJobOption(store JobOptionStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in domain.NewJobOptionInput
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid body")
		}
		if in.Employer == "" {
			return badRequest(c, "employer is required")
		}
		if in.UserID == 0 {
			in.UserID = defaultUserID
		}
		option, err := store.CreateJobOption(c.Request().Context(), in)
		if err != nil {
			return serverError(c, logger, "create job option", err)
		}
		return c.JSON(http.StatusCreated, option)
	}
}

func patchJobOption(store JobOptionStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid job option id")
		}
		var patch domain.JobOptionPatch
		if err := decodeBody(c, &patch); err != nil {
			return badRequest(c, "invalid body")
		}
		option, err := store.UpdateJobOption(c.Request().Context(), id, patch)
		if err != nil {
			return serverError(c, logger, "job option", err)
		}
		return c.JSON(http.StatusOK, option)
	}
}

func deleteJobOption(store JobOptionStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid job option id")
		}
		if err := store.DeleteJobOption(c.Request().Context(), id); err != nil {
			return serverError(c, logger, "delete job option", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
