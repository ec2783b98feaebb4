package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-admin/config"
)

func newMemStore(t *testing.T) *AFSStore {
	t.Helper()
	base := fmt.Sprintf("mem://localhost/storage-test/%d", time.Now().UnixNano())
	return NewAFSStore(base, "http://localhost:8080/uploads/")
}

func TestCleanKey(t *testing.T) {
	got, err := CleanKey("/blogs/a.png")
	require.NoError(t, err)
	assert.Equal(t, "blogs/a.png", got)

	for _, bad := range []string{"", "  ", "../etc/passwd", "blogs/../../x", "/"} {
		_, err := CleanKey(bad)
		assert.ErrorIs(t, err, ErrInvalidKey, bad)
	}
}

func TestAFSStorePutOpenDelete(t *testing.T) {
	s := newMemStore(t)
	ctx := context.Background()
	payload := []byte("\x89PNG\r\n\x1a\nfake")

	require.NoError(t, s.Put(ctx, "blogs/cover.png", bytes.NewReader(payload), int64(len(payload)), "image/png"))

	rc, err := s.Open(ctx, "blogs/cover.png")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	require.NoError(t, s.Delete(ctx, "blogs/cover.png"))
	_, err = s.Open(ctx, "blogs/cover.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "blogs/cover.png"), ErrObjectNotFound)
}

func TestAFSStoreRejectsEscapingKeys(t *testing.T) {
	s := newMemStore(t)
	err := s.Put(context.Background(), "../x.png", bytes.NewReader(nil), 0, "image/png")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestAFSStoreURL(t *testing.T) {
	s := newMemStore(t)
	assert.Equal(t, "http://localhost:8080/uploads/blogs/a.png", s.URL("blogs/a.png"))
}

func TestNewSelectsBackend(t *testing.T) {
	ctx := context.Background()

	st, err := New(ctx, config.StorageConfig{Backend: "memory", PublicBaseURL: "http://x/uploads"})
	require.NoError(t, err)
	assert.IsType(t, &AFSStore{}, st)
	assert.Equal(t, "http://x/uploads/k.png", st.URL("k.png"))

	st, err = New(ctx, config.StorageConfig{Backend: "FILE", BaseURL: "file:///tmp/blog-admin-test"})
	require.NoError(t, err)
	assert.IsType(t, &AFSStore{}, st)

	_, err = New(ctx, config.StorageConfig{Backend: "ftp"})
	assert.Error(t, err)
}

func TestS3StoreURLFallsBackToEndpoint(t *testing.T) {
	s, err := NewS3Store(config.S3Config{Endpoint: "minio.local:9000", Bucket: "covers"}, "")
	require.NoError(t, err)
	assert.Equal(t, "http://minio.local:9000/covers/blogs/a.png", s.URL("blogs/a.png"))

	s, err = NewS3Store(config.S3Config{Endpoint: "minio.local:9000", Bucket: "covers"}, "https://cdn.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/blogs/a.png", s.URL("blogs/a.png"))
}
