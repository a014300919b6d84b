package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"campuspress/internal/model"
	"campuspress/internal/storage"
)

var (
	ErrInvalidInput      = errors.New("username and password are required")
	ErrInvalidCredential = errors.New("invalid username or password")
	ErrTokenNotFound     = errors.New("token not found")
)

// tokenBytes is the entropy of an issued bearer token before hex
// encoding. Tokens carry no claims and no expiry; a user's token stays
// valid until the next login replaces it.
const tokenBytes = 32

type AuthService struct {
	store storage.UserStore
}

type AuthResult struct {
	Token string
	User  *model.User
}

func NewAuthService(store storage.UserStore) *AuthService {
	return &AuthService{store: store}
}

// Login verifies credentials for a known username or registers a new
// user on first sight, then issues a fresh token. Issuing the token
// overwrites the previous one, which stops resolving immediately.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if user == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password failed: %w", err)
		}
		user = &model.User{
			Username:     username,
			PasswordHash: string(hash),
			Nickname:     username,
		}
		if err := s.store.CreateUser(ctx, user); err != nil {
			return nil, err
		}
	} else if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateUserToken(ctx, user.ID, token); err != nil {
		return nil, err
	}
	user.Token = token

	return &AuthResult{Token: token, User: user}, nil
}

// GetByToken resolves a bearer token to its user.
func (s *AuthService) GetByToken(ctx context.Context, token string) (*model.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrTokenNotFound
	}

	user, err := s.store.GetUserByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrTokenNotFound
	}
	return user, nil
}

func (s *AuthService) UpdateAvatar(ctx context.Context, userID uint, avatarURL string) error {
	if err := s.store.UpdateUserAvatar(ctx, userID, avatarURL); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return ErrTokenNotFound
		}
		return err
	}
	return nil
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token failed: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
