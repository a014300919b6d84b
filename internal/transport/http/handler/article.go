package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campuspress/internal/app"
	"campuspress/internal/transport/http/response"
)

type ArticleHandler struct {
	articles *app.ArticleService
}

// CreateArticleRequest mirrors the submission shape; images and videos
// must be arrays of URL strings (a scalar fails JSON binding).
type CreateArticleRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Section string   `json:"section"`
	Images  []string `json:"images"`
	Videos  []string `json:"videos"`
}

func NewArticleHandler(articles *app.ArticleService) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

func (h *ArticleHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "page must be an integer")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(app.DefaultPageSize)))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "page_size must be an integer")
		return
	}

	items, total, err := h.articles.List(c.Request.Context(), page, pageSize)
	if err != nil {
		if errors.Is(err, app.ErrInvalidPagination) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "list articles failed")
		return
	}

	response.OK(c, gin.H{
		"page":      page,
		"page_size": pageSize,
		"total":     total,
		"items":     items,
	})
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	article, err := h.articles.Create(c.Request.Context(), app.CreateArticleInput{
		Title:   req.Title,
		Content: req.Content,
		Section: req.Section,
		Images:  req.Images,
		Videos:  req.Videos,
	})
	if err != nil {
		if errors.Is(err, app.ErrValidation) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "create article failed")
		return
	}

	response.Created(c, gin.H{"article": article})
}
