package api

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func runGuard(t *testing.T, user, pass, method, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/api/tasks", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := WriteGuard(user, pass)(okHandler)(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	return rec
}

func basicHeader(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestWriteGuardDisabledWithoutCredentials(t *testing.T) {
	rec := runGuard(t, "", "", http.MethodPost, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through when unconfigured, got %d", rec.Code)
	}
}

func TestWriteGuardAllowsReads(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		rec := runGuard(t, "admin", "secret", method, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected reads to pass without auth, got %d", method, rec.Code)
		}
	}
}

func TestWriteGuardRejectsUnauthenticatedWrite(t *testing.T) {
	rec := runGuard(t, "admin", "secret", http.MethodPost, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := rec.Header().Get("WWW-Authenticate"); got != `Basic realm="Admin"` {
		t.Fatalf("unexpected WWW-Authenticate header: %q", got)
	}
}

func TestWriteGuardRejectsWrongPassword(t *testing.T) {
	rec := runGuard(t, "admin", "secret", http.MethodDelete, basicHeader("admin", "nope"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestWriteGuardAcceptsValidCredentials(t *testing.T) {
	rec := runGuard(t, "admin", "secret", http.MethodPost, basicHeader("admin", "secret"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestWriteGuardRejectsMalformedHeader(t *testing.T) {
	rec := runGuard(t, "admin", "secret", http.MethodPost, "Basic not-base64!!")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
