package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"blog-admin/cmd/api/trace"
	"blog-admin/config"
	"blog-admin/dto"
	"blog-admin/services"
	"blog-admin/storage"
)

const (
	CodeInvalidID        = "invalid_id"
	CodeInvalidRequest   = "invalid_request"
	CodeValidationFailed = "validation_failed"
	CodeNotAnImage       = "not_an_image"
	CodeNotFound         = "not_found"
	CodeFileTooLarge     = "file_too_large"
	CodeFeedFetchFailed  = "feed_fetch_failed"
	CodeInternal         = "internal_error"

	MessageGeneric = "Something went wrong."
)

// parseID reads the :id path parameter. It writes 400 and returns false when invalid.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abort(c, http.StatusBadRequest, dto.ErrorResponseDTO{Error: CodeInvalidID, Message: "Blog id must be a positive integer."})
		return 0, false
	}
	return id, true
}

func abort(c *gin.Context, status int, body dto.ErrorResponseDTO) {
	c.AbortWithStatusJSON(status, body)
}

func badRequest(c *gin.Context, err error) {
	abort(c, http.StatusBadRequest, dto.ErrorResponseDTO{Error: CodeInvalidRequest, Message: fmt.Sprintf("Invalid request: %v", err)})
}

func tooLarge(c *gin.Context, maxBytes int64) {
	abort(c, http.StatusRequestEntityTooLarge, dto.ErrorResponseDTO{
		Error:   CodeFileTooLarge,
		Message: fmt.Sprintf("Image must be %s or smaller.", humanize.IBytes(uint64(maxBytes))),
	})
}

// writeError maps service errors to HTTP responses in one place.
func writeError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		abort(c, http.StatusBadRequest, dto.ErrorResponseDTO{Error: CodeValidationFailed, Message: verr.Error(), Fields: verr.Fields})
	case errors.Is(err, services.ErrBlogNotFound):
		abort(c, http.StatusNotFound, dto.ErrorResponseDTO{Error: CodeNotFound, Message: "Blog not found."})
	case errors.Is(err, storage.ErrObjectNotFound), errors.Is(err, storage.ErrInvalidKey):
		abort(c, http.StatusNotFound, dto.ErrorResponseDTO{Error: CodeNotFound, Message: "File not found."})
	case errors.Is(err, services.ErrNotImage):
		abort(c, http.StatusBadRequest, dto.ErrorResponseDTO{Error: CodeNotAnImage, Message: services.ErrNotImage.Error()})
	case errors.Is(err, services.ErrEmptyUpload):
		abort(c, http.StatusBadRequest, dto.ErrorResponseDTO{Error: CodeInvalidRequest, Message: "Please choose an image to upload."})
	case errors.Is(err, services.ErrFeedFetch):
		abort(c, http.StatusBadGateway, dto.ErrorResponseDTO{Error: CodeFeedFetchFailed, Message: "Could not read the feed. Check the URL and try again."})
	default:
		config.ErrorWithFields("request failed", config.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"error":      err.Error(),
		})
		_ = c.Error(err)
		abort(c, http.StatusInternalServerError, dto.ErrorResponseDTO{Error: CodeInternal, Message: MessageGeneric})
	}
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

func queryBoolPtr(c *gin.Context, key string) *bool {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}
