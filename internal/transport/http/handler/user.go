package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campuspress/internal/app"
	"campuspress/internal/transport/http/middleware"
	"campuspress/internal/transport/http/response"
)

type UserHandler struct {
	auth *app.AuthService
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewUserHandler(auth *app.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// Login verifies credentials, registering the username on first sight,
// and returns a fresh bearer token. The previous token, if any, stops
// working.
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "username and password are required")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrInvalidCredential):
			response.Error(c, http.StatusUnauthorized, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "login failed")
		}
		return
	}

	response.OK(c, gin.H{
		"token":     result.Token,
		"username":  result.User.Username,
		"nickname":  result.User.Nickname,
		"avatarUrl": result.User.AvatarURL,
	})
}

func (h *UserHandler) Info(c *gin.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	response.OK(c, gin.H{
		"username":  user.Username,
		"nickname":  user.Nickname,
		"avatarUrl": user.AvatarURL,
	})
}
