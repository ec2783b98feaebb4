package article

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

const (
	minImageWidth  = 300
	minImageHeight = 300
)

// findTopImage 우선순위: 메타 태그 → <link rel=image_src> → 충분히 큰 <img>
func findTopImage(doc *html.Node, base *url.URL) string {
	if img := findTopImageFromMeta(doc); img != "" {
		return img
	}
	if img := findTopImageFromLink(doc); img != "" {
		return img
	}
	return findTopImageFromImg(doc, base)
}

func findTopImageFromMeta(doc *html.Node) string {
	// Open Graph 이미지 → Twitter 카드 이미지 → 기타 이미지 관련 메타
	if img := findMetaContent(doc, "property", "og:image", "og:image:url", "og:image:secure_url"); img != "" {
		return img
	}
	if img := findMetaContent(doc, "name", "twitter:image", "twitter:image:src", "thumbnail", "image"); img != "" {
		return img
	}
	return findMetaContent(doc, "itemprop", "image")
}

func findMetaContent(root *html.Node, key string, candidates ...string) string {
	want := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		want[c] = struct{}{}
	}
	return findFirst(root, func(n *html.Node) string {
		if n.Data != "meta" {
			return ""
		}
		if _, ok := want[strings.ToLower(attr(n, key))]; !ok {
			return ""
		}
		return strings.TrimSpace(attr(n, "content"))
	})
}

func findTopImageFromLink(doc *html.Node) string {
	return findFirst(doc, func(n *html.Node) string {
		if n.Data != "link" {
			return ""
		}
		rel := strings.ToLower(attr(n, "rel"))
		if rel == "image_src" || strings.Contains(rel, "thumbnail") {
			return strings.TrimSpace(attr(n, "href"))
		}
		return ""
	})
}

// findTopImageFromImg 는 선언된 width/height 가 썸네일로 쓰기 충분한 본문 이미지를 찾는다.
func findTopImageFromImg(doc *html.Node, base *url.URL) string {
	return findFirst(doc, func(n *html.Node) string {
		if n.Data != "img" {
			return ""
		}
		w, _ := strconv.Atoi(attr(n, "width"))
		h, _ := strconv.Atoi(attr(n, "height"))
		if w < minImageWidth || h < minImageHeight {
			return ""
		}
		abs, ok := makeAbsoluteImageURL(attr(n, "src"), base)
		if !ok {
			return ""
		}
		return abs
	})
}

// findFirst walks element nodes depth-first and returns the first non-empty match.
func findFirst(root *html.Node, match func(*html.Node) string) string {
	if root == nil {
		return ""
	}
	if root.Type == html.ElementNode {
		if v := match(root); v != "" {
			return v
		}
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if v := findFirst(c, match); v != "" {
			return v
		}
	}
	return ""
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func makeAbsoluteImageURL(src string, base *url.URL) (string, bool) {
	if src == "" || strings.HasPrefix(src, "data:") {
		return "", false
	}
	parsed, err := url.Parse(src)
	if err != nil {
		return "", false
	}
	if parsed.IsAbs() {
		return parsed.String(), true
	}
	if base == nil {
		return "", false
	}
	return base.ResolveReference(parsed).String(), true
}

func resolveImageURL(src string, base *url.URL) string {
	if abs, ok := makeAbsoluteImageURL(src, base); ok {
		return abs
	}
	return src
}
