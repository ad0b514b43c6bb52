package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"pdm-api/domain"
)

func getCommunityPlaces(store CommunityStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		places, err := store.ListCommunityPlaces(c.Request().Context())
		if err != nil {
			return serverError(c, logger, "community places", err)
		}
		return c.JSON(http.StatusOK, places)
	}
}

func getCommunityPlace(store CommunityStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid place id")
		}
		place, err := store.GetCommunityPlace(c.Request().Context(), id)
		if err != nil {
			return serverError(c, logger, "community place", err)
		}
		return c.JSON(http.StatusOK, place)
	}
}

func postCommunityPlace(store CommunityStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in domain.NewCommunityPlaceInput
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid body")
		}
		if in.Name == "" {
			return badRequest(c, "name is required")
		}
		if in.UserID == 0 {
			in.UserID = defaultUserID
		}
		place, err := store.CreateCommunityPlace(c.Request().Context(), in)
		if err != nil {
			return serverError(c, logger, "create community place", err)
		}
		return c.JSON(http.StatusCreated, place)
	}
}

func patchCommunityPlace(store CommunityStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid place id")
		}
		var patch domain.CommunityPlacePatch
		if err := decodeBody(c, &patch); err != nil {
			return badRequest(c, "invalid body")
		}
		place, err := store.UpdateCommunityPlace(c.Request().Context(), id, patch)
		if err != nil {
			return serverError(c, logger, "community place", err)
		}
		return c.JSON(http.StatusOK, place)
	}
}

// deleteCommunityPlace removes the place and its visits, same cascade policy
// as packing deletes.
func deleteCommunityPlace(store CommunityStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid place id")
		}
		if err := store.DeleteCommunityPlace(c.Request().Context(), id); err != nil {
			return serverError(c, logger, "delete community place", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func getCommunityVisits(store CommunityStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		placeID, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid place id")
		}
		visits, err := store.ListCommunityVisits(c.Request().Context(), placeID)
		if err != nil {
			return serverError(c, logger, "community visits", err)
		}
		return c.JSON(http.StatusOK, visits)
	}
}

func postCommunityVisit(store CommunityStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		placeID, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid place id")
		}
		var in domain.NewCommunityVisitInput
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid body")
		}
		in.PlaceID = placeID
		if _, err := store.GetCommunityPlace(c.Request().Context(), placeID); err != nil {
			return serverError(c, logger, "community place", err)
		}
		visit, err := store.CreateCommunityVisit(c.Request().Context(), in)
		if err != nil {
			return serverError(c, logger, "create community visit", err)
		}
		return c.JSON(http.StatusCreated, visit)
	}
}

func deleteCommunityVisit(store CommunityStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid visit id")
		}
		if err := store.DeleteCommunityVisit(c.Request().Context(), id); err != nil {
			return serverError(c, logger, "delete community visit", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
