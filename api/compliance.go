package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"pdm-api/domain"
)

func getComplianceItems(store ComplianceStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := store.ListComplianceItems(c.Request().Context(), defaultUserID)
		if err != nil {
			return serverError(c, logger, "compliance items", err)
		}
		return c.JSON(http.StatusOK, items)
	}
}

func getComplianceItem(store ComplianceStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid compliance item id")
		}
		item, err := store.GetComplianceItem(c.Request().Context(), id)
		if err != nil {
			return serverError(c, logger, "compliance item", err)
		}
		return c.JSON(http.StatusOK, item)
	}
}

func postComplianceItem(store ComplianceStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in domain.NewComplianceItemInput
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid body")
		}
		if in.SubjectType == "" || in.SubjectName == "" || in.Category == "" {
			return badRequest(c, "subject_type, subject_name and category are required")
		}
		if in.Status == "" {
			in.Status = "pending"
		}
		if in.UserID == 0 {
			in.UserID = defaultUserID
		}
		item, err := store.CreateComplianceItem(c.Request().Context(), in)
		if err != nil {
			return serverError(c, logger, "create compliance item", err)
		}
		return c.JSON(http.StatusCreated, item)
	}
}

func patchComplianceItem(store ComplianceStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid compliance item id")
		}
		var patch domain.ComplianceItemPatch
		if err := decodeBody(c, &patch); err != nil {
			return badRequest(c, "invalid body")
		}
		item, err := store.UpdateComplianceItem(c.Request().Context(), id, patch)
		if err != nil {
			return serverError(c, logger, "compliance item", err)
		}
		return c.JSON(http.StatusOK, item)
	}
}

func deleteComplianceItem(store ComplianceStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid compliance item id")
		}
		if err := store.DeleteComplianceItem(c.Request().Context(), id); err != nil {
			return serverError(c, logger, "delete compliance item", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
