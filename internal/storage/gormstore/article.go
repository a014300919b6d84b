package gormstore

import (
	"context"
	"fmt"

	"campuspress/internal/model"
)

func (s *Store) CreateArticle(ctx context.Context, article *model.Article) error {
	if err := s.db.WithContext(ctx).Create(article).Error; err != nil {
		return fmt.Errorf("create article failed: %w", err)
	}
	return nil
}

func (s *Store) ListArticles(ctx context.Context, offset, limit int) ([]model.Article, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Article{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count articles failed: %w", err)
	}

	articles := make([]model.Article, 0, limit)
	if err := s.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error; err != nil {
		return nil, 0, fmt.Errorf("list articles failed: %w", err)
	}
	return articles, total, nil
}
