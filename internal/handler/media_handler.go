package handler

import (
	"mime"
	"net/http"
	"os"
	"path"

	"github.com/labstack/echo/v4"

	apperrors "agrivoice/internal/errors"
	"agrivoice/internal/media"
)

// MediaHandler serves stored audio back to clients. Serving goes through the
// media store so disk and object-storage backends expose the same URLs.
type MediaHandler struct {
	store media.Store
}

// NewMediaHandler creates a new media handler.
func NewMediaHandler(store media.Store) *MediaHandler {
	return &MediaHandler{store: store}
}

// Serve streams a stored blob by name.
func (h *MediaHandler) Serve(c echo.Context) error {
	name := path.Base(c.Param("name"))

	blob, err := h.store.Open(c.Request().Context(), name)
	if err != nil {
		if os.IsNotExist(err) {
			return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Error: "fichier introuvable"})
		}
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: err.Error()})
	}
	defer blob.Close()

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return c.Stream(http.StatusOK, contentType, blob)
}
