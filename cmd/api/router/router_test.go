package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-admin/cmd/api/auth"
	"blog-admin/dto"
	"blog-admin/eventbus"
	"blog-admin/feeder"
	"blog-admin/repositories"
	"blog-admin/services"
	"blog-admin/storage"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type fakeFetcher struct {
	items []feeder.RssFeedItem
	err   error
}

func (f fakeFetcher) Fetch(context.Context, string, int) ([]feeder.RssFeedItem, error) {
	return f.items, f.err
}

type testServer struct {
	engine *gin.Engine
	token  string
}

func newTestServer(t *testing.T, fetcher services.FeedFetcher, ping func(context.Context) error) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewAFSStore(
		fmt.Sprintf("mem://localhost/router-test/%d", time.Now().UnixNano()),
		"http://localhost:8080/uploads",
	)
	blogs := services.NewBlogService(repositories.NewMemoryBlogRepository(), eventbus.NoopBus{}, eventbus.TopicBlogEvents)
	if fetcher == nil {
		fetcher = fakeFetcher{}
	}
	jwtManager, err := auth.NewJWTManager("router-secret", "blog-admin", time.Hour)
	require.NoError(t, err)
	token, err := jwtManager.Sign("admin-1", auth.RoleAdmin)
	require.NoError(t, err)

	uploads := services.NewUploadService(store, 1024, "blogs")
	blogs.Images = uploads

	engine := New(Deps{
		Blogs:   blogs,
		Uploads: uploads,
		Imports: services.NewImportService(blogs, fetcher, nil),
		Store:   store,
		JWT:     jwtManager,
		Ping:    ping,
	})
	return &testServer{engine: engine, token: token}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) upload(t *testing.T, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/uploads/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func validBody(i int) map[string]any {
	return map[string]any{
		"title":        fmt.Sprintf("Post %d", i),
		"image":        fmt.Sprintf("https://cdn.example.com/%d.png", i),
		"textSummary":  fmt.Sprintf("Summary %d", i),
		"redirectLink": fmt.Sprintf("https://example.com/%d", i),
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/blogs", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateGetListFlow(t *testing.T) {
	s := newTestServer(t, nil, nil)

	for i := 1; i <= 12; i++ {
		w := s.do(t, http.MethodPost, "/api/v1/admin/blogs", validBody(i))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := s.do(t, http.MethodGet, "/api/v1/admin/blogs/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	blog := decode[dto.BlogDTO](t, w)
	assert.Equal(t, "Post 3", blog.Title)
	assert.Contains(t, w.Body.String(), `"textSummary"`)
	assert.Contains(t, w.Body.String(), `"redirectLink"`)

	w = s.do(t, http.MethodGet, "/api/v1/admin/blogs?page=2&limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[dto.Pagination[dto.BlogDTO]](t, w)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, dto.PageInfo{Page: 2, Limit: 10, Total: 12, TotalPages: 2}, page.Pagination)

	w = s.do(t, http.MethodGet, "/api/v1/admin/blogs?search=summary%2011", nil)
	page = decode[dto.Pagination[dto.BlogDTO]](t, w)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Post 11", page.Data[0].Title)

	w = s.do(t, http.MethodGet, "/api/v1/admin/blogs?page=9", nil)
	page = decode[dto.Pagination[dto.BlogDTO]](t, w)
	assert.Empty(t, page.Data)
	assert.Equal(t, 2, page.Pagination.TotalPages)

	w = s.do(t, http.MethodGet, "/api/v1/admin/blogs?page=922337203685477582&limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	page = decode[dto.Pagination[dto.BlogDTO]](t, w)
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(12), page.Pagination.Total)
}

func TestCreateValidationError(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := s.do(t, http.MethodPost, "/api/v1/admin/blogs", map[string]any{"title": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[dto.ErrorResponseDTO](t, w)
	assert.Equal(t, "validation_failed", body.Error)
	assert.Equal(t, "Image is required", body.Message)
	assert.Equal(t, "Summary is required", body.Fields["textSummary"])
}

func TestCreateRejectsMalformedJSON(t *testing.T) {
	s := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/blogs", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decode[dto.ErrorResponseDTO](t, w).Error)
}

func TestPatchToggleDelete(t *testing.T) {
	s := newTestServer(t, nil, nil)
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/v1/admin/blogs", validBody(1)).Code)

	w := s.do(t, http.MethodPatch, "/api/v1/admin/blogs/1", map[string]any{"title": "Renamed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Renamed", decode[dto.BlogDTO](t, w).Title)

	w = s.do(t, http.MethodPatch, "/api/v1/admin/blogs/1", map[string]any{"image": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Image is required", decode[dto.ErrorResponseDTO](t, w).Message)

	w = s.do(t, http.MethodPost, "/api/v1/admin/blogs/1/toggle-active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.BlogDTO](t, w).Active)

	w = s.do(t, http.MethodDelete, "/api/v1/admin/blogs/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Blog deleted successfully.", decode[dto.MessageResponseDTO](t, w).Message)

	w = s.do(t, http.MethodGet, "/api/v1/admin/blogs/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decode[dto.ErrorResponseDTO](t, w).Error)
}

func TestInvalidID(t *testing.T) {
	s := newTestServer(t, nil, nil)

	for _, path := range []string{"/api/v1/admin/blogs/abc", "/api/v1/admin/blogs/0", "/api/v1/admin/blogs/-1"} {
		w := s.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "invalid_id", decode[dto.ErrorResponseDTO](t, w).Error)
	}
}

func TestUploadAndServeImage(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := s.upload(t, "cover.png", pngBytes)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	res := decode[dto.UploadResponseDTO](t, w)
	assert.Equal(t, "image/png", res.MimeType)
	assert.Equal(t, "http://localhost:8080/uploads/"+res.Key, res.FileURL)

	get := httptest.NewRecorder()
	s.engine.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/uploads/"+res.Key, nil))
	require.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, "image/png", get.Header().Get("Content-Type"))
	assert.Equal(t, pngBytes, get.Body.Bytes())

	missing := httptest.NewRecorder()
	s.engine.ServeHTTP(missing, httptest.NewRequest(http.MethodGet, "/uploads/blogs/nope.png", nil))
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestUploadRejectsNonImage(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := s.upload(t, "notes.txt", []byte("plain text, not an image"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[dto.ErrorResponseDTO](t, w)
	assert.Equal(t, "not_an_image", body.Error)
	assert.Equal(t, "Please upload a valid image file.", body.Message)
}

func TestUploadRejectsOversized(t *testing.T) {
	s := newTestServer(t, nil, nil)

	big := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{0}, 2048)...)
	w := s.upload(t, "big.png", big)
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "file_too_large", decode[dto.ErrorResponseDTO](t, w).Error)
}

func TestUploadRequiresFile(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := s.do(t, http.MethodPost, "/api/v1/admin/uploads/image", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decode[dto.ErrorResponseDTO](t, w).Error)
}

func TestImportFeed(t *testing.T) {
	s := newTestServer(t, fakeFetcher{items: []feeder.RssFeedItem{{
		Title:       "From feed",
		Link:        "https://example.com/feed/1",
		Description: "<p>Feed summary</p>",
		ImageURL:    "https://cdn.example.com/feed.png",
	}}}, nil)

	w := s.do(t, http.MethodPost, "/api/v1/admin/blogs/import", map[string]any{"feedUrl": "https://example.com/feed.xml"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[dto.ImportResult](t, w)
	require.Len(t, res.Imported, 1)
	assert.Equal(t, "Feed summary", res.Imported[0].TextSummary)

	w = s.do(t, http.MethodPost, "/api/v1/admin/blogs/import", map[string]any{"feedUrl": "not a url"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportFeedUpstreamFailure(t *testing.T) {
	s := newTestServer(t, fakeFetcher{err: errors.New("timeout")}, nil)

	w := s.do(t, http.MethodPost, "/api/v1/admin/blogs/import", map[string]any{"feedUrl": "https://example.com/feed.xml"})
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "feed_fetch_failed", decode[dto.ErrorResponseDTO](t, w).Error)
}

func TestHealth(t *testing.T) {
	ok := newTestServer(t, nil, func(context.Context) error { return nil })
	w := httptest.NewRecorder()
	ok.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	down := newTestServer(t, nil, func(context.Context) error { return errors.New("no primary") })
	w = httptest.NewRecorder()
	down.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "degraded", decode[dto.HealthResponseDTO](t, w).Status)
}
