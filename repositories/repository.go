package repositories

import (
	"context"
	"errors"
	"math"

	"blog-admin/models"
)

// ErrNotFound is returned when no blog matches the lookup.
var ErrNotFound = errors.New("blog not found")

// BlogStore is the persistence contract used by services.BlogService.
// BlogRepository (MongoDB) and MemoryBlogRepository implement it.
type BlogStore interface {
	Insert(ctx context.Context, b *models.Blog) error
	FindByID(ctx context.Context, id int64) (*models.Blog, error)
	FindByRedirectLink(ctx context.Context, link string) (*models.Blog, error)
	List(ctx context.Context, opt ListBlogsOptions) ([]models.Blog, int64, error)
	Update(ctx context.Context, b *models.Blog) error
	ToggleActive(ctx context.Context, id int64) (*models.Blog, error)
	Delete(ctx context.Context, id int64) error
}

// ListBlogsOptions controls List. Page is 1-based; callers normalize Page and Limit.
type ListBlogsOptions struct {
	Page   int
	Limit  int
	Search string
	Active *bool
}

// skip saturates at math.MaxInt64 instead of wrapping for huge pages.
func (o ListBlogsOptions) skip() int64 {
	if o.Page <= 1 || o.Limit <= 0 {
		return 0
	}
	pages, limit := int64(o.Page-1), int64(o.Limit)
	if pages > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return pages * limit
}
