package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplace-backend/internal/storage"
)

type UploadHandler struct {
	uploader *storage.Uploader
}

func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// UploadImage stores a listing image and returns its public URL. Upload
// success does not guarantee the listing insert that usually follows; an
// orphaned object is accepted rather than compensated.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	if h.uploader == nil {
		return c.JSON(http.StatusServiceUnavailable, NewErrorResponse("unavailable", "image storage is not configured"))
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "cannot open file"))
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	url, err := h.uploader.UploadListingImage(c.Request().Context(), file, fileHeader.Filename, contentType)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "upload failed"))
	}
	return c.JSON(http.StatusCreated, map[string]string{"imageUrl": url})
}
