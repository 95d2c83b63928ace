// Package renderer turns embedded chart markup into a PNG by loading it in a
// headless browser and taking a screenshot. The markup is treated as opaque;
// a render failure is the only validation it ever gets.
package renderer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
)

// settleDelay gives chart libraries (Highcharts and friends) time to draw
// after the page load event.
const settleDelay = 3 * time.Second

type Renderer struct {
	outDir  string
	timeout time.Duration
	logger  *log.Logger
}

func New(outDir string, logger *log.Logger) *Renderer {
	if outDir == "" {
		outDir = "charts"
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{outDir: outDir, timeout: 60 * time.Second, logger: logger}
}

// Render rasterizes markup at the requested pixel dimensions and returns the
// path of the written PNG.
func (r *Renderer) Render(ctx context.Context, markup string, width, height int) (string, error) {
	if strings.TrimSpace(markup) == "" {
		return "", errors.New("render: empty markup")
	}
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("render: invalid dimensions %dx%d", width, height)
	}

	page := WrapMarkup(markup, width, height)

	tmp, err := os.CreateTemp("", "chart-*.html")
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(page); err != nil {
		tmp.Close()
		return "", fmt.Errorf("render: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	shot, err := r.screenshot(ctx, "file://"+tmp.Name(), width, height)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	name := fmt.Sprintf("chart_%s_%s.png", time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	outPath := filepath.Join(r.outDir, name)
	if err := os.WriteFile(outPath, shot, 0o644); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	r.logger.Printf("chart rendered %dx%d -> %s", width, height, outPath)
	return outPath, nil
}

func (r *Renderer) screenshot(ctx context.Context, url string, width, height int) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("force-device-scale-factor", "1"),
		chromedp.WindowSize(width, height),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate(url),
		chromedp.Sleep(settleDelay),
		chromedp.CaptureScreenshot(&buf),
	)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// WrapMarkup embeds a chart fragment into a standalone document sized to the
// target pixels. Full documents pass through unchanged.
func WrapMarkup(markup string, width, height int) string {
	lower := strings.ToLower(markup)
	if strings.Contains(lower, "<html") {
		return markup
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  html, body { margin: 0; padding: 0; background: #ffffff; }
  #container { width: %dpx; height: %dpx; overflow: hidden; }
</style>
</head>
<body>
<div id="container">
%s
</div>
</body>
</html>
`, width, height, markup)
}
