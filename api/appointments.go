package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"pdm-api/domain"
)

func getAppointments(store AppointmentStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		appointments, err := store.ListAppointments(c.Request().Context())
		if err != nil {
			return serverError(c, logger, "appointments", err)
		}
		return c.JSON(http.StatusOK, appointments)
	}
}

func getAppointment(store AppointmentStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid appointment id")
		}
		appointment, err := store.GetAppointment(c.Request().Context(), id)
		if err != nil {
			return serverError(c, logger, "appointment", err)
		}
		return c.JSON(http.StatusOK, appointment)
	}
}

func postAppointment(store AppointmentStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in domain.NewAppointmentInput
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid body")
		}
		if in.Title == "" || in.StartDatetime == "" {
			return badRequest(c, "title and start_datetime are required")
		}
		if in.UserID == 0 {
			in.UserID = defaultUserID
		}
		appointment, err := store.CreateAppointment(c.Request().Context(), in)
		if err != nil {
			return serverError(c, logger, "create appointment", err)
		}
		return c.JSON(http.StatusCreated, appointment)
	}
}

func patchAppointment(store AppointmentStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid appointment id")
		}
		var patch domain.AppointmentPatch
		if err := decodeBody(c, &patch); err != nil {
			return badRequest(c, "invalid body")
		}
		appointment, err := store.UpdateAppointment(c.Request().Context(), id, patch)
		if err != nil {
			return serverError(c, logger, "appointment", err)
		}
		return c.JSON(http.StatusOK, appointment)
	}
}

func deleteAppointment(store AppointmentStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid appointment id")
		}
		if err := store.DeleteAppointment(c.Request().Context(), id); err != nil {
			return serverError(c, logger, "delete appointment", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
