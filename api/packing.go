package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"pdm-api/domain"
)

func getPackingAreas(store PackingStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		areas, err := store.ListPackingAreas(c.Request().Context())
		if err != nil {
			return serverError(c, logger, "packing areas", err)
		}
		return c.JSON(http.StatusOK, areas)
	}
}

func getPackingArea(store PackingStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid area id")
		}
		area, err := store.GetPackingArea(c.Request().Context(), id)
		if err != nil {
			return serverError(c, logger, "packing area", err)
		}
		return c.JSON(http.StatusOK, area)
	}
}

func postPackingArea(store PackingStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in domain.NewPackingAreaInput
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid body")
		}
		if in.Name == "" {
			return badRequest(c, "name is required")
		}
		if in.UserID == 0 {
			in.UserID = defaultUserID
		}
		area, err := store.CreatePackingArea(c.Request().Context(), in)
		if err != nil {
			return serverError(c, logger, "create packing area", err)
		}
		return c.JSON(http.StatusCreated, area)
	}
}

func patchPackingArea(store PackingStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid area id")
		}
		var patch domain.PackingAreaPatch
		if err := decodeBody(c, &patch); err != nil {
			return badRequest(c, "invalid body")
		}
		area, err := store.UpdatePackingArea(c.Request().Context(), id, patch)
		if err != nil {
			return serverError(c, logger, "packing area", err)
		}
		return c.JSON(http.StatusOK, area)
	}
}

func deletePackingArea(store PackingStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid area id")
		}
		if err := store.DeletePackingArea(c.Request().Context(), id); err != nil {
			return serverError(c, logger, "delete packing area", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func getPackingBoxes(store PackingStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		areaID, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid area id")
		}
		boxes, err := store.ListPackingBoxes(c.Request().Context(), areaID)
		if err != nil {
			return serverError(c, logger, "packing boxes", err)
		}
		return c.JSON(http.StatusOK, boxes)
	}
}

func postPackingBox(store PackingStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		areaID, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid area id")
		}
		var in domain.NewPackingBoxInput
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid body")
		}
		if in.Label == "" {
			return badRequest(c, "label is required")
		}
		in.AreaID = areaID
		if _, err := store.GetPackingArea(c.Request().Context(), areaID); err != nil {
			return serverError(c, logger, "packing area", err)
		}
		box, err := store.CreatePackingBox(c.Request().Context(), in)
		if err != nil {
			return serverError(c, logger, "create packing box", err)
		}
		return c.JSON(http.StatusCreated, box)
	}
}

func patchPackingBox(store PackingStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid box id")
		}
		var patch domain.PackingBoxPatch
		if err := decodeBody(c, &patch); err != nil {
			return badRequest(c, "invalid body")
		}
		box, err := store.UpdatePackingBox(c.Request().Context(), id, patch)
		if err != nil {
			return serverError(c, logger, "packing box", err)
		}
		return c.JSON(http.StatusOK, box)
	}
}

func deletePackingBox(store PackingStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid box id")
		}
		if err := store.DeletePackingBox(c.Request().Context(), id); err != nil {
			return serverError(c, logger, "delete packing box", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func getPackingItems(store PackingStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		boxID, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid box id")
		}
		items, err := store.ListPackingItems(c.Request().Context(), boxID)
		if err != nil {
			return serverError(c, logger, "packing items", err)
		}
		return c.JSON(http.StatusOK, items)
	}
}

func postPackingItem(store PackingStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		boxID, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid box id")
		}
		var in domain.NewPackingItemInput
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid body")
		}
		if in.Name == "" {
			return badRequest(c, "name is required")
		}
		in.BoxID = boxID
		if _, err := store.GetPackingBox(c.Request().Context(), boxID); err != nil {
			return serverError(c, logger, "packing box", err)
		}
		item, err := store.CreatePackingItem(c.Request().Context(), in)
		if err != nil {
			return serverError(c, logger, "create packing item", err)
		}
		return c.JSON(http.StatusCreated, item)
	}
}

func patchPackingItem(store PackingStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid item id")
		}
		var patch domain.PackingItemPatch
		if err := decodeBody(c, &patch); err != nil {
			return badRequest(c, "invalid body")
		}
		item, err := store.UpdatePackingItem(c.Request().Context(), id, patch)
		if err != nil {
			return serverError(c, logger, "packing item", err)
		}
		return c.JSON(http.StatusOK, item)
	}
}

func deletePackingItem(store PackingStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid item id")
		}
		if err := store.DeletePackingItem(c.Request().Context(), id); err != nil {
			return serverError(c, logger, "delete packing item", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
