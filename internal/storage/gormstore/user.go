package gormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campuspress/internal/model"
	"campuspress/internal/storage"
)

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return storage.ErrDuplicateUsername
		}
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by username failed: %w", err)
	}
	return &user, nil
}

func (s *Store) GetUserByToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, nil
	}
	var user model.User
	if err := s.db.WithContext(ctx).Where("token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by token failed: %w", err)
	}
	return &user, nil
}

func (s *Store) UpdateUserToken(ctx context.Context, id uint, token string) error {
	res := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("token", token)
	if res.Error != nil {
		return fmt.Errorf("update user token failed: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrUserNotFound
	}
	return nil
}

func (s *Store) UpdateUserAvatar(ctx context.Context, id uint, avatarURL string) error {
	res := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("avatar_url", avatarURL)
	if res.Error != nil {
		return fmt.Errorf("update user avatar failed: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrUserNotFound
	}
	return nil
}
