// Package storage defines the persistence boundary for articles and
// users. Handlers and services depend on these interfaces; concrete
// implementations live in gormstore (MySQL) and memstore (in-memory).
package storage

import (
	"context"

	"campuspress/internal/model"
)

// ArticleStore persists published articles. Articles are immutable after
// creation; there is no update or delete path.
type ArticleStore interface {
	// CreateArticle persists the article and fills in ID and CreatedAt.
	CreateArticle(ctx context.Context, article *model.Article) error

	// ListArticles returns articles newest-first, sliced to
	// [offset, offset+limit), together with the total row count. An
	// offset past the end yields an empty slice, not an error.
	ListArticles(ctx context.Context, offset, limit int) ([]model.Article, int64, error)
}

// UserStore persists user records and their single active token.
// Lookups return (nil, nil) when no row matches.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByToken(ctx context.Context, token string) (*model.User, error)

	// UpdateUserToken replaces the user's active token. The previous
	// token stops resolving immediately.
	UpdateUserToken(ctx context.Context, id uint, token string) error

	UpdateUserAvatar(ctx context.Context, id uint, avatarURL string) error
}

// Store combines both stores; each implementation satisfies it.
type Store interface {
	ArticleStore
	UserStore
}
