package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"blog-admin/article"
	"blog-admin/config"
	"blog-admin/dto"
	"blog-admin/feeder"
	"blog-admin/models"
	"blog-admin/summarizer"
)

const (
	DefaultImportItems  = 20
	DefaultSummaryRunes = 500
	SkipReasonDuplicate = "duplicate"
	SkipReasonNoLink    = "missing link"
)

// FeedFetcher is satisfied by *feeder.Fetcher.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string, limit int) ([]feeder.RssFeedItem, error)
}

// ArticleExtractor is satisfied by *article.Extractor.
type ArticleExtractor interface {
	Extract(ctx context.Context, pageURL string) (*article.Article, error)
}

type ImportInput struct {
	FeedURL string
	Limit   int
	Active  bool
}

// ImportService turns feed entries into blogs.
type ImportService struct {
	blogs      *BlogService
	fetcher    FeedFetcher
	summarizer summarizer.Summarizer
	policy     *bluemonday.Policy

	MaxItems        int
	SummaryMaxRunes int
	// Extractor 가 있으면 이미지나 요약이 빠진 항목은 기사 페이지에서 보강한다.
	Extractor ArticleExtractor
}

// NewImportService builds the service. sum may be nil; items without a
// description are then skipped.
func NewImportService(blogs *BlogService, fetcher FeedFetcher, sum summarizer.Summarizer) *ImportService {
	return &ImportService{
		blogs:           blogs,
		fetcher:         fetcher,
		summarizer:      sum,
		policy:          bluemonday.StrictPolicy(),
		MaxItems:        DefaultImportItems,
		SummaryMaxRunes: DefaultSummaryRunes,
	}
}

func (s *ImportService) ImportFeed(ctx context.Context, in ImportInput) (*dto.ImportResult, error) {
	limit := in.Limit
	if limit <= 0 || (s.MaxItems > 0 && limit > s.MaxItems) {
		limit = s.MaxItems
	}

	items, err := s.fetcher.Fetch(ctx, in.FeedURL, limit)
	if err != nil {
		config.ErrorWithFields("feed fetch failed", config.Fields{"feed_url": in.FeedURL, "error": err.Error()})
		return nil, fmt.Errorf("%w: %v", ErrFeedFetch, err)
	}

	res := &dto.ImportResult{
		Imported: []dto.BlogDTO{},
		Skipped:  []dto.SkippedItem{},
	}
	for _, item := range items {
		skip := func(reason string) {
			res.Skipped = append(res.Skipped, dto.SkippedItem{Link: item.Link, Title: item.Title, Reason: reason})
		}

		if item.Link == "" {
			skip(SkipReasonNoLink)
			continue
		}
		exists, err := s.blogs.ExistsByRedirectLink(ctx, item.Link)
		if err != nil {
			return nil, err
		}
		if exists {
			skip(SkipReasonDuplicate)
			continue
		}

		item = s.enrich(ctx, item)
		form := models.BlogForm{
			Title:        item.Title,
			Image:        item.ImageURL,
			TextSummary:  s.summaryFor(ctx, item),
			RedirectLink: item.Link,
			Active:       in.Active,
		}
		created, err := s.blogs.Create(ctx, form)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				skip(verr.Error())
				continue
			}
			return nil, err
		}
		res.Imported = append(res.Imported, *created)
	}

	config.InfoWithFields("feed imported", config.Fields{
		"feed_url": in.FeedURL,
		"imported": len(res.Imported),
		"skipped":  len(res.Skipped),
	})
	return res, nil
}

// enrich fills a missing image, description or content from the linked page.
func (s *ImportService) enrich(ctx context.Context, item feeder.RssFeedItem) feeder.RssFeedItem {
	if s.Extractor == nil || (item.ImageURL != "" && s.plainText(item.Description) != "") {
		return item
	}
	art, err := s.Extractor.Extract(ctx, item.Link)
	if err != nil {
		config.WarnWithFields("article extract failed", config.Fields{"link": item.Link, "error": err.Error()})
		return item
	}
	if item.ImageURL == "" {
		item.ImageURL = art.Image
	}
	if s.plainText(item.Description) == "" {
		item.Description = art.Excerpt
	}
	if s.plainText(item.Content) == "" {
		item.Content = art.Text
	}
	if item.Title == "" {
		item.Title = art.Title
	}
	return item
}

// summaryFor uses the sanitized description, falling back to the summarizer.
func (s *ImportService) summaryFor(ctx context.Context, item feeder.RssFeedItem) string {
	if text := s.plainText(item.Description); text != "" {
		return truncateRunes(text, s.SummaryMaxRunes)
	}
	if s.summarizer == nil {
		return ""
	}
	source := s.plainText(item.Content)
	if source == "" {
		return ""
	}
	summary, err := s.summarizer.Summarize(ctx, source)
	if err != nil {
		config.WarnWithFields("summarizer failed", config.Fields{"link": item.Link, "error": err.Error()})
		return ""
	}
	return truncateRunes(s.plainText(summary), s.SummaryMaxRunes)
}

func (s *ImportService) plainText(raw string) string {
	text := html.UnescapeString(s.policy.Sanitize(raw))
	return strings.Join(strings.Fields(text), " ")
}

// truncateRunes returns s truncated to max runes.
func truncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
