package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campuspress/internal/app"
	"campuspress/internal/media"
	"campuspress/internal/transport/http/middleware"
	"campuspress/internal/transport/http/response"
)

type UploadHandler struct {
	media *media.Store
	auth  *app.AuthService
}

func NewUploadHandler(mediaStore *media.Store, auth *app.AuthService) *UploadHandler {
	return &UploadHandler{media: mediaStore, auth: auth}
}

// Upload accepts any allowed image or video as multipart field "file".
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "no file part")
		return
	}
	if header.Filename == "" {
		response.Error(c, http.StatusBadRequest, "no selected file")
		return
	}

	src, err := header.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "read uploaded file failed")
		return
	}
	defer src.Close()

	url, err := h.media.SaveMedia(header.Filename, src)
	if err != nil {
		writeMediaError(c, err)
		return
	}

	response.OK(c, gin.H{"url": url})
}

// UploadAvatar accepts an image as multipart field "avatar" and stores
// its URL on the authenticated user.
func (h *UploadHandler) UploadAvatar(c *gin.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	header, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "no avatar part")
		return
	}
	if header.Filename == "" {
		response.Error(c, http.StatusBadRequest, "no selected file")
		return
	}

	src, err := header.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "read uploaded file failed")
		return
	}
	defer src.Close()

	url, err := h.media.SaveImage(header.Filename, src)
	if err != nil {
		writeMediaError(c, err)
		return
	}

	if err := h.auth.UpdateAvatar(c.Request.Context(), user.ID, url); err != nil {
		if errors.Is(err, app.ErrTokenNotFound) {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		response.Error(c, http.StatusInternalServerError, "update avatar failed")
		return
	}

	response.OK(c, gin.H{"avatarUrl": url})
}

func writeMediaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, media.ErrUnsupportedMedia):
		response.Error(c, http.StatusBadRequest, "file type not allowed")
	case errors.Is(err, media.ErrEmptyFilename):
		response.Error(c, http.StatusBadRequest, "no selected file")
	default:
		response.Error(c, http.StatusInternalServerError, "save uploaded file failed")
	}
}
