package memstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuspress/internal/model"
	"campuspress/internal/storage"
)

func TestCreateArticleAssignsIDAndTimestamp(t *testing.T) {
	s := New()
	ctx := context.Background()

	article := &model.Article{Title: "a", Content: "b", Section: "news"}
	require.NoError(t, s.CreateArticle(ctx, article))

	assert.Equal(t, uint(1), article.ID)
	assert.False(t, article.CreatedAt.IsZero())
	assert.NotNil(t, article.Images)
	assert.NotNil(t, article.Videos)
}

func TestListArticlesNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		require.NoError(t, s.CreateArticle(ctx, &model.Article{Title: title, Content: "c", Section: "s"}))
	}

	items, total, err := s.ListArticles(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 3)
	assert.Equal(t, "C", items[0].Title)
	assert.Equal(t, "B", items[1].Title)
	assert.Equal(t, "A", items[2].Title)
}

func TestListArticlesPagination(t *testing.T) {
	s := New()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, s.CreateArticle(ctx, &model.Article{
			Title:   fmt.Sprintf("t%d", i),
			Content: "c",
			Section: "s",
		}))
	}

	items, total, err := s.ListArticles(ctx, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, items, 5)

	// Second page of two leaves one.
	items, total, err = s.ListArticles(ctx, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, items, 1)
	assert.Equal(t, "t1", items[0].Title)

	// Offset past the end is empty, not an error.
	items, total, err = s.ListArticles(ctx, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, items)
}

func TestUserLifecycle(t *testing.T) {
	s := New()
	ctx := context.Background()

	user := &model.User{Username: "alice", PasswordHash: "hash", Nickname: "alice"}
	require.NoError(t, s.CreateUser(ctx, user))
	require.Equal(t, uint(1), user.ID)

	err := s.CreateUser(ctx, &model.User{Username: "alice"})
	assert.ErrorIs(t, err, storage.ErrDuplicateUsername)

	found, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "alice", found.Username)

	missing, err := s.GetUserByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateUserTokenReplacesPrevious(t *testing.T) {
	s := New()
	ctx := context.Background()

	user := &model.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, s.CreateUser(ctx, user))

	require.NoError(t, s.UpdateUserToken(ctx, user.ID, "token-one"))
	require.NoError(t, s.UpdateUserToken(ctx, user.ID, "token-two"))

	stale, err := s.GetUserByToken(ctx, "token-one")
	require.NoError(t, err)
	assert.Nil(t, stale)

	current, err := s.GetUserByToken(ctx, "token-two")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	err = s.UpdateUserToken(ctx, 99, "x")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUpdateUserAvatar(t *testing.T) {
	s := New()
	ctx := context.Background()

	user := &model.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, s.CreateUser(ctx, user))

	require.NoError(t, s.UpdateUserAvatar(ctx, user.ID, "/uploads/a.png"))

	found, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/a.png", found.AvatarURL)

	err = s.UpdateUserAvatar(ctx, 42, "/uploads/a.png")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestReturnedUserIsACopy(t *testing.T) {
	s := New()
	ctx := context.Background()

	user := &model.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, s.CreateUser(ctx, user))

	found, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	found.Nickname = "mutated"

	again, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Nickname)
}
