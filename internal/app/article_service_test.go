package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuspress/internal/storage/memstore"
)

func newArticleService() (*ArticleService, *memstore.Store) {
	store := memstore.New()
	return NewArticleService(store, nil, nil), store
}

func TestCreateArticlePreservesMediaOrder(t *testing.T) {
	svc, _ := newArticleService()
	ctx := context.Background()

	images := []string{"/uploads/1.png", "/uploads/2.png", "/uploads/3.png"}
	videos := []string{"/uploads/a.mp4"}

	article, err := svc.Create(ctx, CreateArticleInput{
		Title:   "campus fair",
		Content: "body",
		Section: "events",
		Images:  images,
		Videos:  videos,
	})
	require.NoError(t, err)

	assert.Equal(t, images, []string(article.Images))
	assert.Equal(t, videos, []string(article.Videos))

	items, _, err := svc.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, images, []string(items[0].Images))
}

func TestCreateArticleNilMediaBecomesEmpty(t *testing.T) {
	svc, _ := newArticleService()

	article, err := svc.Create(context.Background(), CreateArticleInput{
		Title:   "t",
		Content: "c",
		Section: "s",
	})
	require.NoError(t, err)
	assert.NotNil(t, article.Images)
	assert.NotNil(t, article.Videos)
	assert.Empty(t, article.Images)
}

func TestCreateArticleValidation(t *testing.T) {
	svc, _ := newArticleService()
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateArticleInput
	}{
		{"empty title", CreateArticleInput{Content: "c", Section: "s"}},
		{"blank title", CreateArticleInput{Title: "   ", Content: "c", Section: "s"}},
		{"empty content", CreateArticleInput{Title: "t", Section: "s"}},
		{"empty section", CreateArticleInput{Title: "t", Content: "c"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.input)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// Nothing was persisted by the rejected submissions.
	_, total, err := svc.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestListArticlesNewestFirst(t *testing.T) {
	svc, _ := newArticleService()
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, CreateArticleInput{Title: title, Content: "c", Section: "s"})
		require.NoError(t, err)
	}

	items, total, err := svc.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 3)
	assert.Equal(t, "C", items[0].Title)
	assert.Equal(t, "A", items[2].Title)
}

func TestListArticlesPaginationBounds(t *testing.T) {
	svc, _ := newArticleService()
	ctx := context.Background()

	cases := []struct {
		name     string
		page     int
		pageSize int
	}{
		{"page zero", 0, 10},
		{"negative page", -1, 10},
		{"page size zero", 1, 0},
		{"page size over max", 1, MaxPageSize + 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.List(ctx, tc.page, tc.pageSize)
			assert.ErrorIs(t, err, ErrInvalidPagination)
		})
	}
}

func TestListArticlesEmptyPagePastEnd(t *testing.T) {
	svc, _ := newArticleService()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, CreateArticleInput{
			Title:   fmt.Sprintf("t%d", i),
			Content: "c",
			Section: "s",
		})
		require.NoError(t, err)
	}

	items, total, err := svc.List(ctx, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, items)

	items, total, err = svc.List(ctx, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, items, 5)
}
