package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"campuspress/internal/model"
	"campuspress/internal/storage"
)

var (
	ErrValidation        = errors.New("missing required field")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ArticlePublisher fans a freshly stored article out to interested
// consumers (section counters). Publishing is best-effort; a broker
// outage never fails the request.
type ArticlePublisher interface {
	Publish(ctx context.Context, article model.Article) error
}

// ArticleListCache caches list pages between writes.
type ArticleListCache interface {
	GetPage(ctx context.Context, page, pageSize int) ([]model.Article, int64, bool, error)
	SetPage(ctx context.Context, page, pageSize int, items []model.Article, total int64) error
	Invalidate(ctx context.Context) error
}

type ArticleService struct {
	store     storage.ArticleStore
	publisher ArticlePublisher
	cache     ArticleListCache
}

type CreateArticleInput struct {
	Title   string
	Content string
	Section string
	Images  []string
	Videos  []string
}

func NewArticleService(store storage.ArticleStore, publisher ArticlePublisher, cache ArticleListCache) *ArticleService {
	return &ArticleService{
		store:     store,
		publisher: publisher,
		cache:     cache,
	}
}

func (s *ArticleService) Create(ctx context.Context, input CreateArticleInput) (*model.Article, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	section := strings.TrimSpace(input.Section)

	switch {
	case title == "":
		return nil, fmt.Errorf("%w: title", ErrValidation)
	case content == "":
		return nil, fmt.Errorf("%w: content", ErrValidation)
	case section == "":
		return nil, fmt.Errorf("%w: section", ErrValidation)
	}

	article := &model.Article{
		Title:   title,
		Content: content,
		Section: section,
		Images:  normalizeList(input.Images),
		Videos:  normalizeList(input.Videos),
	}
	if err := s.store.CreateArticle(ctx, article); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, *article); err != nil {
			log.Printf("publish article event failed: %v", err)
		}
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Printf("invalidate article list cache failed: %v", err)
		}
	}
	return article, nil
}

func (s *ArticleService) List(ctx context.Context, page, pageSize int) ([]model.Article, int64, error) {
	if page < 1 {
		return nil, 0, fmt.Errorf("%w: page must be >= 1", ErrInvalidPagination)
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return nil, 0, fmt.Errorf("%w: page_size must be between 1 and %d", ErrInvalidPagination, MaxPageSize)
	}

	if s.cache != nil {
		items, total, hit, err := s.cache.GetPage(ctx, page, pageSize)
		if err != nil {
			log.Printf("read article list cache failed: %v", err)
		} else if hit {
			return items, total, nil
		}
	}

	items, total, err := s.store.ListArticles(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}

	if s.cache != nil {
		if err := s.cache.SetPage(ctx, page, pageSize, items, total); err != nil {
			log.Printf("fill article list cache failed: %v", err)
		}
	}
	return items, total, nil
}

func normalizeList(items []string) model.StringList {
	if items == nil {
		return model.StringList{}
	}
	return model.StringList(items)
}
