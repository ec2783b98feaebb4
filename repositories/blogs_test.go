package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-admin/db"
)

// MONGO_TEST_URI 가 설정된 경우에만 실제 MongoDB 에 붙어서 실행한다.
func newMongoRepo(t *testing.T) *BlogRepository {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx := context.Background()
	dbName := fmt.Sprintf("blogadmin_test_%d", time.Now().UnixNano())
	d, err := db.Connect(ctx, uri, dbName)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = d.Drop(context.Background())
		_ = d.Client().Disconnect(context.Background())
	})
	return NewBlogRepository(d)
}

func TestBlogRepositoryCRUD(t *testing.T) {
	repo := newMongoRepo(t)
	blogs := seed(t, repo, 12)
	ctx := context.Background()

	assert.Equal(t, int64(1), blogs[0].ID)
	assert.Equal(t, int64(12), blogs[11].ID)

	items, total, err := repo.List(ctx, ListBlogsOptions{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, items, 2)

	items, total, err = repo.List(ctx, ListBlogsOptions{Page: 1, Limit: 10, Search: "number 1"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, items, 4)

	b := blogs[0]
	b.Title = "renamed"
	require.NoError(t, repo.Update(ctx, &b))
	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)

	toggled, err := repo.ToggleActive(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Active)
	toggled, err = repo.ToggleActive(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	byLink, err := repo.FindByRedirectLink(ctx, "https://example.com/3")
	require.NoError(t, err)
	assert.Equal(t, int64(3), byLink.ID)

	require.NoError(t, repo.Delete(ctx, b.ID))
	_, err = repo.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, b.ID), ErrNotFound)
}
