package api

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"pdm-api/domain"
)

// maxUploadSize bounds document uploads.
const maxUploadSize = 20 << 20

// postDocument accepts a multipart upload, stores the file under a generated
// name and indexes whatever text can be pulled out of it.
func postDocument(store DocumentStore, uploadDir string, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return badRequest(c, "missing file")
		}
		if fileHeader.Size > maxUploadSize {
			return badRequest(c, "file too large")
		}

		src, err := fileHeader.Open()
		if err != nil {
			return serverError(c, logger, "upload", err)
		}
		defer src.Close()

		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			return serverError(c, logger, "upload", err)
		}
		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		storedName := uuid.NewString() + ext
		storedPath := filepath.Join(uploadDir, storedName)

		dst, err := os.Create(storedPath)
		if err != nil {
			return serverError(c, logger, "upload", err)
		}
		if _, err := io.Copy(dst, src); err != nil {
			dst.Close()
			os.Remove(storedPath)
			return serverError(c, logger, "upload", err)
		}
		if err := dst.Close(); err != nil {
			os.Remove(storedPath)
			return serverError(c, logger, "upload", err)
		}

		title := c.FormValue("title")
		if title == "" {
			title = fileHeader.Filename
		}

		doc, err := store.CreateDocument(c.Request().Context(), domain.NewDocumentInput{
			UserID:           defaultUserID,
			Title:            title,
			OriginalFilename: fileHeader.Filename,
			SourcePath:       storedPath,
			ContentText:      extractText(storedPath, ext),
		})
		if err != nil {
			os.Remove(storedPath)
			return serverError(c, logger, "create document", err)
		}
		return c.JSON(http.StatusCreated, doc)
	}
}

func getDocuments(store DocumentStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		docs, err := store.ListDocuments(c.Request().Context(), c.QueryParam("search"))
		if err != nil {
			return serverError(c, logger, "documents", err)
		}
		return c.JSON(http.StatusOK, docs)
	}
}

func getDocument(store DocumentStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "invalid document id")
		}
		doc, err := store.GetDocument(c.Request().Context(), id)
		if err != nil {
			return serverError(c, logger, "document", err)
		}
		return c.JSON(http.StatusOK, doc)
	}
}

// downloadDocument serves a stored file under its original filename. The
// path parameter is the generated stored name, so path traversal gets no
// further than a failed lookup.
func downloadDocument(store DocumentStore, uploadDir string, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		filename := filepath.Base(c.Param("filename"))
		if filename == "" || filename == "." || filename == "/" {
			return badRequest(c, "invalid filename")
		}
		doc, err := store.FindDocumentByStoredName(c.Request().Context(), filename)
		if err != nil {
			return serverError(c, logger, "document", err)
		}
		downloadName := filename
		if doc.OriginalFilename != nil && *doc.OriginalFilename != "" {
			downloadName = *doc.OriginalFilename
		}
		return c.Attachment(filepath.Join(uploadDir, filename), downloadName)
	}
}
