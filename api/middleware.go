package api

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// WriteGuard protects mutating routes with HTTP basic auth. Reads pass
// through untouched. When either credential is empty the guard is inert,
// which is the out-of-the-box single-user setup.
func WriteGuard(user, pass string) echo.MiddlewareFunc {
	enabled := user != "" && pass != ""
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}
			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}
			gotUser, gotPass, ok := basicCredentials(c.Request().Header.Get("Authorization"))
			if ok &&
				subtle.ConstantTimeCompare([]byte(gotUser), []byte(user)) == 1 &&
				subtle.ConstantTimeCompare([]byte(gotPass), []byte(pass)) == 1 {
				return next(c)
			}
			c.Response().Header().Set("WWW-Authenticate", `Basic realm="Admin"`)
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		}
	}
}

func basicCredentials(header string) (user, pass string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	user, pass, ok = strings.Cut(string(raw), ":")
	return user, pass, ok
}
