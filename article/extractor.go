package article

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"blog-admin/config"
)

const (
	UserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36"
	DefaultMaxBytes = 4 << 20
)

// Renderer returns the HTML of a page after client-side rendering.
type Renderer interface {
	Render(ctx context.Context, pageURL string) (string, error)
}

// Extractor 는 기사 페이지를 받아 Article 을 만든다.
// 정적 HTML 로 이미지나 본문을 못 찾으면 Renderer 가 있을 때 렌더링 후 다시 시도한다.
type Extractor struct {
	Client   *http.Client
	Renderer Renderer
	MaxBytes int64
}

func NewExtractor(client *http.Client, renderer Renderer) *Extractor {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &Extractor{Client: client, Renderer: renderer, MaxBytes: DefaultMaxBytes}
}

func (e *Extractor) Extract(ctx context.Context, pageURL string) (*Article, error) {
	htmlStr, err := e.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	art, err := Parse(htmlStr, pageURL)
	if e.Renderer == nil || (err == nil && art.Image != "" && art.Text != "") {
		return art, err
	}

	rendered, rerr := e.Renderer.Render(ctx, pageURL)
	if rerr != nil {
		config.WarnWithFields("article render failed", config.Fields{"url": pageURL, "error": rerr.Error()})
		return art, err
	}
	rart, rerr := Parse(rendered, pageURL)
	if rerr != nil {
		return art, err
	}
	if art != nil {
		if rart.Excerpt == "" {
			rart.Excerpt = art.Excerpt
		}
		if rart.Image == "" {
			rart.Image = art.Image
		}
	}
	return rart, nil
}

func (e *Extractor) fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("article: GET %s: status %d", pageURL, resp.StatusCode)
	}
	max := e.MaxBytes
	if max <= 0 {
		max = DefaultMaxBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, max))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
