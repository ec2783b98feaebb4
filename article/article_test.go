package article

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paragraph = "Connection pools keep a bounded set of sockets open to the database so that request handlers never pay the handshake cost twice. "

func articlePage(head string) string {
	return `<!doctype html><html><head><title>Pooling in practice</title>` + head + `</head><body>
<header><nav><a href="/">Home</a></nav></header>
<article>
<h1>Pooling in practice</h1>
<p>` + strings.Repeat(paragraph, 6) + `</p>
<p>` + strings.Repeat("Tuning the pool size against the worker count is the part most teams get wrong. ", 6) + `</p>
<p>` + strings.Repeat("Measure queue wait time before raising the limit again. ", 6) + `</p>
</article>
<footer>© example</footer>
</body></html>`
}

func TestParseUsesOpenGraphImageAndBodyText(t *testing.T) {
	page := articlePage(`<meta property="og:image" content="https://cdn.example.com/cover.png">`)

	art, err := Parse(page, "https://blog.example.com/posts/pooling")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/cover.png", art.Image)
	assert.Contains(t, art.Text, "Connection pools keep a bounded set of sockets")
	assert.NotContains(t, art.Text, "  ")
}

func TestParseResolvesRelativeImage(t *testing.T) {
	page := articlePage(`<link rel="image_src" href="/img/cover.jpg">`)

	art, err := Parse(page, "https://blog.example.com/posts/pooling")
	require.NoError(t, err)
	assert.Equal(t, "https://blog.example.com/img/cover.jpg", art.Image)
}

func TestFindTopImageFromImgNeedsDeclaredSize(t *testing.T) {
	doc := mustParse(t, `<html><body>
<img src="/icon.png" width="32" height="32">
<img src="/big.png" width="800" height="400">
</body></html>`)

	assert.Equal(t, "https://blog.example.com/big.png", findTopImage(doc, parseBase("https://blog.example.com/a")))
}

func TestFindTopImagePrefersMeta(t *testing.T) {
	doc := mustParse(t, `<html><head>
<meta name="twitter:image" content="https://cdn.example.com/tw.png">
<meta property="og:image" content="https://cdn.example.com/og.png">
</head><body><img src="/big.png" width="800" height="400"></body></html>`)

	assert.Equal(t, "https://cdn.example.com/og.png", findTopImage(doc, nil))
}

func TestParseEmptyPage(t *testing.T) {
	_, err := Parse("<html><body></body></html>", "")
	assert.ErrorIs(t, err, ErrNoContent)
}

type stubRenderer struct {
	html  string
	err   error
	calls int
}

func (s *stubRenderer) Render(context.Context, string) (string, error) {
	s.calls++
	return s.html, s.err
}

func TestExtractorFetchesPage(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(articlePage(`<meta property="og:image" content="/cover.png">`)))
	}))
	defer srv.Close()

	r := &stubRenderer{}
	art, err := NewExtractor(srv.Client(), r).Extract(context.Background(), srv.URL+"/post")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/cover.png", art.Image)
	assert.Equal(t, UserAgent, gotUA)
	assert.Zero(t, r.calls)
}

func TestExtractorFallsBackToRenderer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div id="app"></div></body></html>`))
	}))
	defer srv.Close()

	r := &stubRenderer{html: articlePage(`<meta property="og:image" content="https://cdn.example.com/spa.png">`)}
	art, err := NewExtractor(srv.Client(), r).Extract(context.Background(), srv.URL+"/spa")
	require.NoError(t, err)
	assert.Equal(t, 1, r.calls)
	assert.Equal(t, "https://cdn.example.com/spa.png", art.Image)
}

func TestExtractorRendererFailureKeepsStaticResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body></body></html>`))
	}))
	defer srv.Close()

	r := &stubRenderer{err: errors.New("no chrome")}
	_, err := NewExtractor(srv.Client(), r).Extract(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestExtractorNon200(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewExtractor(srv.Client(), nil).Extract(context.Background(), srv.URL)
	assert.Error(t, err)
}

// CHROME_PATH 가 설정된 환경에서만 실제 브라우저로 렌더링한다.
func TestChromeRenderer(t *testing.T) {
	path := os.Getenv("CHROME_PATH")
	if path == "" {
		t.Skip("CHROME_PATH not set")
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div id="app"></div><script>document.getElementById("app").textContent="rendered";</script></body></html>`))
	}))
	defer srv.Close()

	out, err := NewChromeRenderer(path).Render(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "rendered")
}
