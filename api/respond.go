package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"pdm-api/storage"
)

// maxBodySize bounds request body reads. Document uploads go through
// multipart handling and are not subject to this limit.
const maxBodySize = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func notFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, errorResponse{Error: msg})
}

// serverError logs the real cause and returns an opaque 500. Not-found
// sentinels from the store become 404s here so handlers can pass storage
// errors straight through.
func serverError(c echo.Context, logger *log.Logger, what string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return notFound(c, what+" not found")
	}
	logger.WithError(err).Error(what)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// decodeBody reads a bounded JSON body into v. Unknown keys are ignored:
// clients routinely send full objects to the patch endpoints.
func decodeBody(c echo.Context, v any) error {
	lr := io.LimitReader(c.Request().Body, maxBodySize)
	return sonic.ConfigStd.NewDecoder(lr).Decode(v)
}

// parseID extracts a positive integer path parameter.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
