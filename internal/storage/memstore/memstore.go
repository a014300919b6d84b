// Package memstore is an in-memory Store used by tests and local
// development. A single RWMutex guards both tables; the zero database
// round trip keeps handler tests free of external infrastructure.
package memstore

import (
	"context"
	"sync"
	"time"

	"campuspress/internal/model"
	"campuspress/internal/storage"
)

type Store struct {
	mu sync.RWMutex

	articles      []model.Article
	nextArticleID uint

	users      map[uint]*model.User
	byUsername map[string]uint
	byToken    map[string]uint
	nextUserID uint
}

func New() *Store {
	return &Store{
		nextArticleID: 1,
		users:         make(map[uint]*model.User),
		byUsername:    make(map[string]uint),
		byToken:       make(map[string]uint),
		nextUserID:    1,
	}
}

func (s *Store) CreateArticle(_ context.Context, article *model.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	article.ID = s.nextArticleID
	s.nextArticleID++
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now()
	}
	if article.Images == nil {
		article.Images = model.StringList{}
	}
	if article.Videos == nil {
		article.Videos = model.StringList{}
	}

	s.articles = append(s.articles, *article)
	return nil
}

func (s *Store) ListArticles(_ context.Context, offset, limit int) ([]model.Article, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := int64(len(s.articles))
	if offset >= len(s.articles) || limit <= 0 {
		return []model.Article{}, total, nil
	}

	end := offset + limit
	if end > len(s.articles) {
		end = len(s.articles)
	}

	// Stored oldest-first; serve newest-first.
	items := make([]model.Article, 0, end-offset)
	for i := len(s.articles) - 1 - offset; i >= len(s.articles)-end; i-- {
		items = append(items, s.articles[i])
	}
	return items, total, nil
}

func (s *Store) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[user.Username]; exists {
		return storage.ErrDuplicateUsername
	}

	user.ID = s.nextUserID
	s.nextUserID++
	user.UpdatedAt = time.Now()

	stored := *user
	s.users[stored.ID] = &stored
	s.byUsername[stored.Username] = stored.ID
	if stored.Token != "" {
		s.byToken[stored.Token] = stored.ID
	}
	return nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return nil, nil
	}
	return s.copyUser(id), nil
}

func (s *Store) GetUserByToken(_ context.Context, token string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if token == "" {
		return nil, nil
	}
	id, ok := s.byToken[token]
	if !ok {
		return nil, nil
	}
	return s.copyUser(id), nil
}

func (s *Store) UpdateUserToken(_ context.Context, id uint, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return storage.ErrUserNotFound
	}

	if user.Token != "" {
		delete(s.byToken, user.Token)
	}
	user.Token = token
	user.UpdatedAt = time.Now()
	if token != "" {
		s.byToken[token] = id
	}
	return nil
}

func (s *Store) UpdateUserAvatar(_ context.Context, id uint, avatarURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return storage.ErrUserNotFound
	}
	user.AvatarURL = avatarURL
	user.UpdatedAt = time.Now()
	return nil
}

func (s *Store) copyUser(id uint) *model.User {
	user, ok := s.users[id]
	if !ok {
		return nil
	}
	clone := *user
	return &clone
}
