package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"pdm-api/domain"
)

func getTrips(store TripStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		trips, err := store.ListTrips(c.Request().Context())
		if err != nil {
			return serverError(c, logger, "trips", err)
		}
		return c.JSON(http.StatusOK, trips)
	}
}

func getTrip(store TripStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid trip id")
		}
		trip, err := store.GetTrip(c.Request().Context(), id)
		if err != nil {
			return serverError(c, logger, "trip", err)
		}
		return c.JSON(http.StatusOK, trip)
	}
}

func postTrip(store TripStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in domain.NewTripInput
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid body")
		}
		if in.Date == "" || in.Origin == "" || in.Destination == "" {
			return badRequest(c, "date, origin and destination are required")
		}
		if in.UserID == 0 {
			in.UserID = defaultUserID
		}
		trip, err := store.CreateTrip(c.Request().Context(), in)
		if err != nil {
			return serverError(c, logger, "create trip", err)
		}
		return c.JSON(http.StatusCreated, trip)
	}
}

func patchTrip(store TripStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid trip id")
		}
		var patch domain.TripPatch
		if err := decodeBody(c, &patch); err != nil {
			return badRequest(c, "invalid body")
		}
		trip, err := store.UpdateTrip(c.Request().Context(), id, patch)
		if err != nil {
			return serverError(c, logger, "trip", err)
		}
		return c.JSON(http.StatusOK, trip)
	}
}

func deleteTrip(store TripStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid trip id")
		}
		if err := store.DeleteTrip(c.Request().Context(), id); err != nil {
			return serverError(c, logger, "delete trip", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func getTripAssignments(store TripStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		tripID, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid trip id")
		}
		assignments, err := store.ListTripAssignments(c.Request().Context(), tripID)
		if err != nil {
			return serverError(c, logger, "trip assignments", err)
		}
		return c.JSON(http.StatusOK, assignments)
	}
}

func postTripAssignment(store TripStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		tripID, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid trip id")
		}
		var in domain.NewTripAssignmentInput
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid body")
		}
		if in.Vehicle == "" || in.DriverName == "" {
			return badRequest(c, "vehicle and driver_name are required")
		}
		in.TripID = tripID
		// The parent trip must exist; a dangling assignment would never
		// surface in any listing.
		if _, err := store.GetTrip(c.Request().Context(), tripID); err != nil {
			return serverError(c, logger, "trip", err)
		}
		assignment, err := store.CreateTripAssignment(c.Request().Context(), in)
		if err != nil {
			return serverError(c, logger, "create trip assignment", err)
		}
		return c.JSON(http.StatusCreated, assignment)
	}
}

func putTripAssignment(store TripStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid assignment id")
		}
		var patch domain.TripAssignmentPatch
		if err := decodeBody(c, &patch); err != nil {
			return badRequest(c, "invalid body")
		}
		assignment, err := store.UpdateTripAssignment(c.Request().Context(), id, patch)
		if err != nil {
			return serverError(c, logger, "trip assignment", err)
		}
		return c.JSON(http.StatusOK, assignment)
	}
}

func deleteTripAssignment(store TripStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid assignment id")
		}
		if err := store.DeleteTripAssignment(c.Request().Context(), id); err != nil {
			return serverError(c, logger, "delete trip assignment", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
