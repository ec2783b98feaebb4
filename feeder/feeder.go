package feeder

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

type RssFeedItem struct {
	Title       string
	Link        string
	Description string
	Content     string
	ImageURL    string
	PublishedAt time.Time
}

// Fetcher reads RSS/Atom feeds over HTTP.
type Fetcher struct {
	Client *http.Client
}

func New() *Fetcher {
	return &Fetcher{Client: &http.Client{Timeout: 15 * time.Second}}
}

// Fetch fetches the feed at rssUrl.
// If limit is greater than 0, it returns only the first limit items.
func (f *Fetcher) Fetch(ctx context.Context, rssUrl string, limit int) ([]RssFeedItem, error) {
	fp := gofeed.NewParser()
	if f.Client != nil {
		fp.Client = f.Client
	}

	feed, err := fp.ParseURLWithContext(rssUrl, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", rssUrl, err)
	}

	items := make([]RssFeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		items = append(items, RssFeedItem{
			Title:       strings.TrimSpace(item.Title),
			Link:        strings.TrimSpace(item.Link),
			Description: item.Description,
			Content:     item.Content,
			ImageURL:    itemImage(item),
			PublishedAt: published,
		})

		if limit > 0 && len(items) >= limit {
			break
		}
	}

	return items, nil
}

// itemImage picks the item image, then the first image enclosure.
func itemImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		if strings.HasPrefix(enc.Type, "image/") || isImagePath(enc.URL) {
			return enc.URL
		}
	}
	return ""
}

func isImagePath(u string) bool {
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	switch strings.ToLower(path.Ext(u)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".avif", ".svg":
		return true
	}
	return false
}
