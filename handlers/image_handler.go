package handlers

import (
	"net/http"

	"blog-cms/helper"
	"blog-cms/imagehost"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type ImageHandler struct {
	images *imagehost.Client
	log    zerolog.Logger
	Helper *helper.HTTPHelper
}

func NewImageHandler(images *imagehost.Client, log zerolog.Logger, h *helper.HTTPHelper) *ImageHandler {
	return &ImageHandler{images: images, log: log, Helper: h}
}

// UploadImage proxies a multipart upload to the image host and returns the
// {url, id} reference the article form stores alongside the article.
func (h *ImageHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.Helper.SendBadRequest(c, "Image file required", h.Helper.EmptyJsonMap())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.Helper.SendBadRequest(c, "Could not read image file", h.Helper.EmptyJsonMap())
		return
	}
	defer file.Close()

	image, err := h.images.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		h.log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("image upload failed")
		h.Helper.SendError(c, "Image upload failed", h.Helper.EmptyJsonMap(), http.StatusBadGateway, `imageHostError`)
		return
	}

	h.Helper.SendSuccess(c, "Image uploaded", image)
}

func (h *ImageHandler) DeleteImage(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		h.Helper.SendBadRequest(c, "Image ID required", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.images.Delete(c.Request.Context(), id); err != nil {
		h.log.Error().Err(err).Str("image_id", id).Msg("image delete failed")
		h.Helper.SendError(c, "Image delete failed", h.Helper.EmptyJsonMap(), http.StatusBadGateway, `imageHostError`)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
