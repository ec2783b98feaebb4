package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"blog-admin/models"
)

// MemoryBlogRepository keeps blogs in process. It backs tests and
// storage-less local runs and follows BlogRepository semantics.
type MemoryBlogRepository struct {
	mu     sync.RWMutex
	blogs  map[int64]models.Blog
	nextID int64
	now    func() time.Time
}

func NewMemoryBlogRepository() *MemoryBlogRepository {
	return &MemoryBlogRepository{
		blogs: make(map[int64]models.Blog),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryBlogRepository) Insert(ctx context.Context, b *models.Blog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := r.now()
	b.ID = r.nextID
	b.CreatedAt = now
	b.UpdatedAt = now
	r.blogs[b.ID] = *b
	return nil
}

func (r *MemoryBlogRepository) FindByID(ctx context.Context, id int64) (*models.Blog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.blogs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *MemoryBlogRepository) FindByRedirectLink(ctx context.Context, link string) (*models.Blog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.sortedIDsLocked(false) {
		if b := r.blogs[id]; b.RedirectLink == link {
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryBlogRepository) List(ctx context.Context, opt ListBlogsOptions) ([]models.Blog, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(opt.Search))
	matched := make([]models.Blog, 0, len(r.blogs))
	for _, id := range r.sortedIDsLocked(true) {
		b := r.blogs[id]
		if opt.Active != nil && b.Active != *opt.Active {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(b.Title), needle) &&
			!strings.Contains(strings.ToLower(b.TextSummary), needle) {
			continue
		}
		matched = append(matched, b)
	}

	total := int64(len(matched))
	start := opt.skip()
	if start >= total {
		return []models.Blog{}, total, nil
	}
	end := total
	if opt.Limit > 0 && int64(opt.Limit) < total-start {
		end = start + int64(opt.Limit)
	}
	return matched[start:end], total, nil
}

func (r *MemoryBlogRepository) Update(ctx context.Context, b *models.Blog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.blogs[b.ID]
	if !ok {
		return ErrNotFound
	}
	b.CreatedAt = cur.CreatedAt
	b.UpdatedAt = r.now()
	r.blogs[b.ID] = *b
	return nil
}

func (r *MemoryBlogRepository) ToggleActive(ctx context.Context, id int64) (*models.Blog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.blogs[id]
	if !ok {
		return nil, ErrNotFound
	}
	b.Active = !b.Active
	b.UpdatedAt = r.now()
	r.blogs[id] = b
	return &b, nil
}

func (r *MemoryBlogRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blogs[id]; !ok {
		return ErrNotFound
	}
	delete(r.blogs, id)
	return nil
}

// sortedIDsLocked orders ids by created_at then id, newest first when desc.
func (r *MemoryBlogRepository) sortedIDsLocked(desc bool) []int64 {
	ids := make([]int64, 0, len(r.blogs))
	for id := range r.blogs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := r.blogs[ids[i]], r.blogs[ids[j]]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if desc {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.CreatedAt.Before(b.CreatedAt)
		}
		if desc {
			return a.ID > b.ID
		}
		return a.ID < b.ID
	})
	return ids
}
