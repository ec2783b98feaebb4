package services

import (
	"errors"
	"fmt"

	"blog-admin/models"
	"blog-admin/repositories"
)

// ErrBlogNotFound wraps repositories.ErrNotFound so handlers only need this package.
var ErrBlogNotFound = fmt.Errorf("services: %w", repositories.ErrNotFound)

var (
	ErrNotImage     = errors.New("Please upload a valid image file.")
	ErrFileTooLarge = errors.New("file exceeds the upload size limit")
	ErrEmptyUpload  = errors.New("uploaded file is empty")
	ErrFeedFetch    = errors.New("failed to fetch feed")
)

// ValidationError carries field -> message for a rejected BlogForm.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := models.OrderedErrors(e.Fields)
	if len(msgs) == 0 {
		return "validation failed"
	}
	return msgs[0]
}

func notFound(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrBlogNotFound
	}
	return err
}
