package httpserver

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkotelnikov/shop-backend/internal/logging"
	"github.com/dkotelnikov/shop-backend/internal/storage"
	"github.com/dkotelnikov/shop-backend/internal/transport"
)

type UploadHTTP struct {
	Store storage.FileStore
}

func (h *UploadHTTP) Upload(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "upload")

	fileHeader, err := c.FormFile("product")
	if err != nil {
		l.Warn("upload_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": 0, "errors": "multipart field 'product' is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		l.Error("upload_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": 0, "errors": "internal server error"})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		l.Error("upload_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": 0, "errors": "internal server error"})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	name := storage.NewFileName(fileHeader.Filename)
	url, err := h.Store.Save(ctx, name, contentType, data)
	if err != nil {
		l.Error("upload_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": 0, "errors": "internal server error"})
	}

	l.Info("file uploaded", "name", name)
	return c.JSON(http.StatusOK, transport.UploadResponse{Success: 1, ImageURL: url})
}

// Serve streams a stored image back. Only jpeg and png come out, whatever
// went in.
func (h *UploadHTTP) Serve(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "serve.image")

	name := c.Param("filename")
	rc, contentType, err := h.Store.Open(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"err": "No file exists"})
	}
	if err != nil {
		l.Error("serve_image_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"err": "internal server error"})
	}
	defer rc.Close()

	if contentType != "image/jpeg" && contentType != "image/png" {
		return c.JSON(http.StatusNotFound, echo.Map{"err": "Not an image"})
	}

	return c.Stream(http.StatusOK, contentType, rc)
}
