package blogclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"

	"blog-admin/cmd/api/httpclient"
	"blog-admin/dto"
	"blog-admin/models"
)

// Client는 blog-admin HTTP API 를 호출하는 얇은 클라이언트다.
// cmd/blogadmin CLI 가 이 클라이언트를 통해 서버와 통신한다.
//
// baseURL 예: http://localhost:8080
type Client struct {
	base  *httpclient.BaseClient
	token string
}

const (
	EnvAPIURL       = "API_URL"
	EnvToken        = "BLOG_ADMIN_TOKEN"
	DefaultBaseURL  = "http://localhost:8080"
	MessageGeneric  = "Something went wrong."
	adminBlogsPath  = "/api/v1/admin/blogs"
	adminUploadPath = "/api/v1/admin/uploads/image"
)

// APIError 는 서버의 에러 응답(dto.ErrorResponseDTO)을 표현한다.
type APIError struct {
	Status  int
	Code    string
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return MessageGeneric
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// New 는 baseURL 과 Bearer 토큰으로 클라이언트를 만든다. 빈 baseURL 은 DefaultBaseURL.
func New(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{base: httpclient.NewBaseClient(baseURL), token: token}
}

// -------------------- Blogs --------------------

type ListParams struct {
	Page   int
	Limit  int
	Search string
	Active *bool
}

func (c *Client) ListBlogs(ctx context.Context, params ListParams) (dto.Pagination[dto.BlogDTO], error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Active != nil {
		q.Set("active", strconv.FormatBool(*params.Active))
	}

	var out dto.Pagination[dto.BlogDTO]
	err := c.doJSON(ctx, http.MethodGet, adminBlogsPath, q, nil, &out)
	return out, err
}

func (c *Client) GetBlog(ctx context.Context, id int64) (dto.BlogDTO, error) {
	var out dto.BlogDTO
	err := c.doJSON(ctx, http.MethodGet, blogPath(id), nil, nil, &out)
	return out, err
}

func (c *Client) CreateBlog(ctx context.Context, form models.BlogForm) (dto.BlogDTO, error) {
	var out dto.BlogDTO
	err := c.doJSON(ctx, http.MethodPost, adminBlogsPath, nil, form, &out)
	return out, err
}

// UpdateBlog 는 patch 에 설정된 필드만 PATCH 로 보낸다.
func (c *Client) UpdateBlog(ctx context.Context, id int64, patch models.BlogPatch) (dto.BlogDTO, error) {
	var out dto.BlogDTO
	err := c.doJSON(ctx, http.MethodPatch, blogPath(id), nil, patch, &out)
	return out, err
}

func (c *Client) ToggleActive(ctx context.Context, id int64) (dto.BlogDTO, error) {
	var out dto.BlogDTO
	err := c.doJSON(ctx, http.MethodPost, blogPath(id)+"/toggle-active", nil, nil, &out)
	return out, err
}

func (c *Client) DeleteBlog(ctx context.Context, id int64) (dto.MessageResponseDTO, error) {
	var out dto.MessageResponseDTO
	err := c.doJSON(ctx, http.MethodDelete, blogPath(id), nil, nil, &out)
	return out, err
}

func (c *Client) ImportFeed(ctx context.Context, req dto.ImportFeedRequestDTO) (dto.ImportResult, error) {
	var out dto.ImportResult
	err := c.doJSON(ctx, http.MethodPost, adminBlogsPath+"/import", nil, req, &out)
	return out, err
}

// -------------------- Uploads --------------------

// UploadImage 는 r 의 내용을 multipart "file" 필드로 업로드한다.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (dto.UploadResponseDTO, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return dto.UploadResponseDTO{}, err
	}
	if _, err := io.Copy(fw, r); err != nil {
		return dto.UploadResponseDTO{}, err
	}
	if err := mw.Close(); err != nil {
		return dto.UploadResponseDTO{}, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, adminUploadPath, nil, &buf)
	if err != nil {
		return dto.UploadResponseDTO{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out dto.UploadResponseDTO
	err = c.send(req, &out)
	return out, err
}

// -------------------- Health --------------------

func (c *Client) Health(ctx context.Context) (dto.HealthResponseDTO, error) {
	var out dto.HealthResponseDTO
	err := c.doJSON(ctx, http.MethodGet, "/health", nil, nil, &out)
	return out, err
}

// -------------------- internals --------------------

func blogPath(id int64) string {
	return adminBlogsPath + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) newRequest(ctx context.Context, method, relPath string, q url.Values, body io.Reader) (*http.Request, error) {
	req, err := c.base.NewRequest(ctx, method, relPath, q, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) doJSON(ctx context.Context, method, relPath string, q url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}
	req, err := c.newRequest(ctx, method, relPath, q, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("blogclient: decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
	var body dto.ErrorResponseDTO
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Code = body.Error
		apiErr.Message = body.Message
		apiErr.Fields = body.Fields
	}
	return apiErr
}
