package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-admin/models"
	"blog-admin/storage"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func newTestUploadService(t *testing.T, maxBytes int64) (*UploadService, storage.ObjectStore) {
	t.Helper()
	base := fmt.Sprintf("mem://localhost/upload-test/%d", time.Now().UnixNano())
	store := storage.NewAFSStore(base, "http://localhost:8080/uploads")
	return NewUploadService(store, maxBytes, "blogs"), store
}

func TestUploadImageStoresPNG(t *testing.T) {
	svc, store := newTestUploadService(t, 0)
	ctx := context.Background()

	res, err := svc.UploadImage(ctx, "cover.png", bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "image/png", res.MimeType)
	assert.Equal(t, int64(len(pngHeader)), res.Size)
	assert.True(t, strings.HasPrefix(res.Key, "blogs/"))
	assert.True(t, strings.HasSuffix(res.Key, ".png"))
	assert.Equal(t, "http://localhost:8080/uploads/"+res.Key, res.FileURL)

	rc, err := store.Open(ctx, res.Key)
	require.NoError(t, err)
	defer rc.Close()
	stored, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	svc, _ := newTestUploadService(t, 0)

	_, err := svc.UploadImage(context.Background(), "notes.png", strings.NewReader("just some text"))
	assert.ErrorIs(t, err, ErrNotImage)
	assert.Equal(t, "Please upload a valid image file.", err.Error())
}

func TestUploadImageRejectsOversized(t *testing.T) {
	svc, _ := newTestUploadService(t, 16)
	assert.Equal(t, int64(16), svc.MaxBytes())

	_, err := svc.UploadImage(context.Background(), "big.png", bytes.NewReader(pngHeader))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestUploadImageRejectsEmpty(t *testing.T) {
	svc, _ := newTestUploadService(t, 0)
	assert.Equal(t, DefaultMaxUploadBytes, svc.MaxBytes())

	_, err := svc.UploadImage(context.Background(), "empty.png", bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmptyUpload)
}

func TestDiscardImageRemovesStoredUpload(t *testing.T) {
	svc, store := newTestUploadService(t, 0)
	ctx := context.Background()
	res, err := svc.UploadImage(ctx, "cover.png", bytes.NewReader(pngHeader))
	require.NoError(t, err)

	require.NoError(t, svc.DiscardImage(ctx, res.FileURL))
	_, err = store.Open(ctx, res.Key)
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)

	// 이미 지워진 객체도 에러가 아니다
	assert.NoError(t, svc.DiscardImage(ctx, res.FileURL))
}

func TestDiscardImageIgnoresForeignURLs(t *testing.T) {
	svc, store := newTestUploadService(t, 0)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "other/keep.png", bytes.NewReader(pngHeader), int64(len(pngHeader)), "image/png"))

	for _, u := range []string{
		"",
		"https://cdn.example.com/blogs/a.png",
		"http://localhost:8080/uploads/other/keep.png",
		"http://localhost:8080/uploads/blogs/../other/keep.png",
	} {
		assert.NoError(t, svc.DiscardImage(ctx, u), u)
	}
	rc, err := store.Open(ctx, "other/keep.png")
	require.NoError(t, err)
	_ = rc.Close()
}

func TestBlogServiceDiscardsReplacedAndDeletedCovers(t *testing.T) {
	uploads, store := newTestUploadService(t, 0)
	blogs, _ := newTestBlogService()
	blogs.Images = uploads
	ctx := context.Background()

	first, err := uploads.UploadImage(ctx, "a.png", bytes.NewReader(pngHeader))
	require.NoError(t, err)
	second, err := uploads.UploadImage(ctx, "b.png", bytes.NewReader(pngHeader))
	require.NoError(t, err)

	form := validForm(1)
	form.Image = first.FileURL
	created, err := blogs.Create(ctx, form)
	require.NoError(t, err)

	// 이미지 외 필드만 바꾸면 커버는 그대로
	_, err = blogs.Update(ctx, created.ID, models.BlogPatch{Title: strPtr("Renamed")})
	require.NoError(t, err)
	rc, err := store.Open(ctx, first.Key)
	require.NoError(t, err)
	_ = rc.Close()

	_, err = blogs.Update(ctx, created.ID, models.BlogPatch{Image: strPtr(second.FileURL)})
	require.NoError(t, err)
	_, err = store.Open(ctx, first.Key)
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)

	require.NoError(t, blogs.Delete(ctx, created.ID))
	_, err = store.Open(ctx, second.Key)
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}
