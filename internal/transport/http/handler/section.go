package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campuspress/internal/app"
	"campuspress/internal/transport/http/response"
)

type SectionHandler struct {
	sections *app.SectionService
}

func NewSectionHandler(sections *app.SectionService) *SectionHandler {
	return &SectionHandler{sections: sections}
}

func (h *SectionHandler) Stats(c *gin.Context) {
	stats, err := h.sections.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "read section stats failed")
		return
	}
	response.OK(c, gin.H{"sections": stats})
}
