package article

import (
	"errors"
	"net/url"
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// ErrNoContent is returned when a page yields neither text nor an image.
var ErrNoContent = errors.New("article: no content extracted")

// Article 은 기사 페이지에서 뽑아낸 요약/본문/대표 이미지다.
type Article struct {
	Title   string
	Excerpt string
	Text    string
	Image   string
}

// Parse extracts the article from htmlStr. readability is the main parser;
// trafilatura and then goose fill in whatever it leaves empty.
func Parse(htmlStr, pageURL string) (*Article, error) {
	base := parseBase(pageURL)

	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}
	// readability 가 doc 을 손대기 전에 메타 이미지 후보를 먼저 찾는다.
	fallbackImage := findTopImage(doc, base)

	art := &Article{}
	if r, err := readability.FromDocument(doc, base); err == nil {
		art.Title = r.Title
		art.Excerpt = r.Excerpt
		art.Text = r.TextContent
		art.Image = r.Image
	}

	if isBlank(art.Text) || isBlank(art.Excerpt) {
		fillFromTrafilatura(art, htmlStr, base)
	}
	if isBlank(art.Text) {
		fillFromGoose(art, htmlStr, pageURL)
	}
	if art.Image == "" {
		art.Image = fallbackImage
	}

	art.Title = collapseSpace(art.Title)
	art.Excerpt = collapseSpace(art.Excerpt)
	art.Text = collapseSpace(art.Text)
	art.Image = resolveImageURL(strings.TrimSpace(art.Image), base)

	if art.Text == "" && art.Excerpt == "" && art.Image == "" {
		return nil, ErrNoContent
	}
	return art, nil
}

// 실험중인 parser: readability 가 본문을 못 찾는 페이지용
func fillFromTrafilatura(art *Article, htmlStr string, base *url.URL) {
	res, err := trafilatura.Extract(strings.NewReader(htmlStr), trafilatura.Options{
		IncludeImages: true,
		OriginalURL:   base,
	})
	if err != nil || res == nil {
		return
	}
	if isBlank(art.Text) {
		art.Text = res.ContentText
	}
	if isBlank(art.Excerpt) {
		art.Excerpt = res.Metadata.Description
	}
	if art.Title == "" {
		art.Title = res.Metadata.Title
	}
	if art.Image == "" {
		art.Image = res.Metadata.Image
	}
}

func fillFromGoose(art *Article, htmlStr, pageURL string) {
	g := goose.New()
	res, err := g.ExtractFromRawHTML(htmlStr, pageURL)
	if err != nil || res == nil {
		return
	}
	art.Text = res.CleanedText
	if isBlank(art.Excerpt) {
		art.Excerpt = res.MetaDescription
	}
	if art.Title == "" {
		art.Title = res.Title
	}
	if art.Image == "" {
		art.Image = res.TopImage
	}
}

func parseBase(pageURL string) *url.URL {
	if pageURL == "" {
		return nil
	}
	u, err := url.Parse(pageURL)
	if err != nil || !u.IsAbs() {
		return nil
	}
	return u
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
