package services

import (
	"context"
	"errors"

	"blog-admin/config"
	"blog-admin/dto"
	"blog-admin/eventbus"
	"blog-admin/events"
	"blog-admin/models"
	"blog-admin/repositories"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// ImageDiscarder removes a stored cover image that no blog points at anymore.
type ImageDiscarder interface {
	DiscardImage(ctx context.Context, fileURL string) error
}

// BlogService encapsulates business logic for blogs and DTO mapping
type BlogService struct {
	repo  repositories.BlogStore
	bus   eventbus.Publisher
	topic eventbus.Topic

	// Images 가 설정되면 교체/삭제된 커버 이미지를 저장소에서 지운다.
	Images ImageDiscarder

	DefaultLimit int
	MaxLimit     int
}

func NewBlogService(repo repositories.BlogStore, bus eventbus.Publisher, topic eventbus.Topic) *BlogService {
	if bus == nil {
		bus = eventbus.NoopBus{}
	}
	return &BlogService{
		repo:         repo,
		bus:          bus,
		topic:        topic,
		DefaultLimit: DefaultPageLimit,
		MaxLimit:     MaxPageLimit,
	}
}

type ListBlogsInput struct {
	Page   int
	Limit  int
	Search string
	Active *bool
}

// List returns one page of blogs. A page past the end yields empty data with
// the real pagination block so callers can clamp and refetch.
func (s *BlogService) List(ctx context.Context, in ListBlogsInput) (dto.Pagination[dto.BlogDTO], error) {
	page, limit := s.normalizePage(in.Page, in.Limit)
	items, total, err := s.repo.List(ctx, repositories.ListBlogsOptions{
		Page:   page,
		Limit:  limit,
		Search: in.Search,
		Active: in.Active,
	})
	if err != nil {
		return dto.Pagination[dto.BlogDTO]{}, err
	}
	out := make([]dto.BlogDTO, 0, len(items))
	for _, b := range items {
		out = append(out, dto.NewBlogDTO(b))
	}
	return dto.NewPagination(out, page, limit, total), nil
}

func (s *BlogService) normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.DefaultLimit
	}
	if s.MaxLimit > 0 && limit > s.MaxLimit {
		limit = s.MaxLimit
	}
	return page, limit
}

// Get loads a blog by id
func (s *BlogService) Get(ctx context.Context, id int64) (*dto.BlogDTO, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	d := dto.NewBlogDTO(*b)
	return &d, nil
}

// Create validates the form and stores a new blog.
func (s *BlogService) Create(ctx context.Context, form models.BlogForm) (*dto.BlogDTO, error) {
	form = form.Normalize()
	if fields := form.Validate(); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	var b models.Blog
	b.Apply(form)
	if err := s.repo.Insert(ctx, &b); err != nil {
		return nil, err
	}
	config.InfoWithFields("blog created", config.Fields{"blog_id": b.ID, "title": b.Title})
	s.publish(ctx, events.BlogCreated, b)

	d := dto.NewBlogDTO(b)
	return &d, nil
}

// Update applies the set fields of patch. The merged form must still validate.
func (s *BlogService) Update(ctx context.Context, id int64, patch models.BlogPatch) (*dto.BlogDTO, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if patch.IsEmpty() {
		d := dto.NewBlogDTO(*b)
		return &d, nil
	}

	form := patch.MergeInto(b.Form()).Normalize()
	if fields := form.Validate(); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	oldImage := b.Image
	b.Apply(form)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, notFound(err)
	}
	config.InfoWithFields("blog updated", config.Fields{"blog_id": b.ID})
	if oldImage != b.Image {
		s.discardImage(ctx, b.ID, oldImage)
	}
	s.publish(ctx, events.BlogUpdated, *b)

	d := dto.NewBlogDTO(*b)
	return &d, nil
}

// ToggleActive flips the active flag and returns the updated blog.
func (s *BlogService) ToggleActive(ctx context.Context, id int64) (*dto.BlogDTO, error) {
	b, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	config.InfoWithFields("blog active toggled", config.Fields{"blog_id": b.ID, "active": b.Active})
	s.publish(ctx, events.ToggleType(b.Active), *b)

	d := dto.NewBlogDTO(*b)
	return &d, nil
}

func (s *BlogService) Delete(ctx context.Context, id int64) error {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	config.InfoWithFields("blog deleted", config.Fields{"blog_id": id})
	s.discardImage(ctx, id, b.Image)
	s.publish(ctx, events.BlogDeleted, *b)
	return nil
}

// discardImage 실패는 로그만 남긴다. 레코드 변경은 이미 끝났다.
func (s *BlogService) discardImage(ctx context.Context, blogID int64, fileURL string) {
	if s.Images == nil || fileURL == "" {
		return
	}
	if err := s.Images.DiscardImage(ctx, fileURL); err != nil {
		config.WarnWithFields("cover image cleanup failed", config.Fields{
			"blog_id": blogID,
			"image":   fileURL,
			"error":   err.Error(),
		})
	}
}

// ExistsByRedirectLink reports whether a blog already points at link.
func (s *BlogService) ExistsByRedirectLink(ctx context.Context, link string) (bool, error) {
	if link == "" {
		return false, nil
	}
	_, err := s.repo.FindByRedirectLink(ctx, link)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	return false, err
}

// publish 실패는 요청을 실패시키지 않고 로그만 남긴다.
func (s *BlogService) publish(ctx context.Context, t events.EventType, b models.Blog) {
	evt := events.NewBlogEvent(t, b.ID, b.Title, b.Active)
	msg, err := eventbus.NewJSONEvent(evt.ID, evt)
	if err != nil {
		config.ErrorWithFields("blog event encode failed", config.Fields{"type": string(t), "error": err.Error()})
		return
	}
	if err := s.bus.Publish(ctx, s.topic.Base(), msg); err != nil {
		config.WarnWithFields("blog event publish failed", config.Fields{
			"type":    string(t),
			"blog_id": b.ID,
			"topic":   s.topic.Base(),
			"error":   err.Error(),
		})
	}
}
