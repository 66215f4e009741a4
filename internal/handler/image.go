package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carlosRosario19/EventEase-Backend/internal/storage"
)

// ImageHandler serves stored event images.
type ImageHandler struct {
	Images *storage.ImageStore
}

func NewImageHandler(images *storage.ImageStore) *ImageHandler {
	return &ImageHandler{Images: images}
}

// Get streams a stored image as an attachment download. Unknown names and
// names that would escape the storage root both answer 404.
func (h *ImageHandler) Get(c echo.Context) error {
	name := c.Param("filename")

	path, err := h.Images.Path(name)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) || errors.Is(err, storage.ErrInvalidName) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "image not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "read image failed"})
	}
	return c.Attachment(path, name)
}
