package article

import (
	"context"
	"os"
	"time"

	"github.com/chromedp/chromedp"
)

const defaultChromePath = "/usr/bin/chromium-browser" // Docker/Linux 기본

// ChromeRenderer renders pages with headless Chrome for client-rendered blogs.
type ChromeRenderer struct {
	ExecPath string
	Timeout  time.Duration
}

// NewChromeRenderer uses execPath, then CHROME_PATH, then the Linux default.
func NewChromeRenderer(execPath string) *ChromeRenderer {
	if execPath == "" {
		execPath = os.Getenv("CHROME_PATH")
	}
	if execPath == "" {
		execPath = defaultChromePath
	}
	return &ChromeRenderer{ExecPath: execPath, Timeout: 30 * time.Second}
}

func (r *ChromeRenderer) Render(ctx context.Context, pageURL string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(r.ExecPath),
		chromedp.UserAgent(UserAgent),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-crashpad", true),
		chromedp.Flag("disable-breakpad", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("headless", true),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()
	runCtx, cancel := context.WithTimeout(browserCtx, r.Timeout)
	defer cancel()

	var htmlContent string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1*time.Second), // JS 렌더링 대기
		chromedp.OuterHTML("html", &htmlContent),
	)
	if err != nil {
		return "", err
	}
	return htmlContent, nil
}
