// Package preview writes what a post would look like without calling any
// API: a Markdown file for quick reading and an HTML card rendered from it.
package preview

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/yuin/goldmark"
)

// Preview describes one assembled post ready for inspection.
type Preview struct {
	Content      string
	ImagePath    string
	ChatURL      string
	AnalysisType string
	CreatedAt    time.Time
}

// Write saves Markdown and HTML previews into dir and returns both paths.
func Write(dir string, p Preview) (mdPath, htmlPath string, err error) {
	if dir == "" {
		dir = "tweet_previews"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}

	when := p.CreatedAt
	if when.IsZero() {
		when = time.Now()
	}
	stamp := when.Format("20060102_150405")

	md := buildMarkdown(p, when)
	mdPath = filepath.Join(dir, "tweet_preview_"+stamp+".md")
	if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
		return "", "", err
	}

	html, err := buildHTML(md)
	if err != nil {
		return "", "", err
	}
	htmlPath = filepath.Join(dir, "tweet_preview_"+stamp+".html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return "", "", err
	}
	return mdPath, htmlPath, nil
}

func buildMarkdown(p Preview, when time.Time) string {
	var sb strings.Builder
	sb.WriteString("# Tweet Preview\n\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", when.Format("2006-01-02 15:04:05"))
	if p.AnalysisType != "" {
		fmt.Fprintf(&sb, "Analysis type: %s\n\n", p.AnalysisType)
	}
	fmt.Fprintf(&sb, "## Content (%d/280 characters)\n\n", utf8.RuneCountInString(p.Content))
	sb.WriteString("```\n")
	sb.WriteString(p.Content)
	sb.WriteString("\n```\n\n")
	if p.ImagePath != "" {
		fmt.Fprintf(&sb, "Image: `%s`\n\n", p.ImagePath)
	} else {
		sb.WriteString("Image: none\n\n")
	}
	if p.ChatURL != "" {
		fmt.Fprintf(&sb, "Chat link: %s\n", p.ChatURL)
	}
	return sb.String()
}

func buildHTML(md string) (string, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(md), &body); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Tweet Preview</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; background: #f5f8fa; margin: 0; padding: 24px; }
  .card { max-width: 600px; margin: 0 auto; background: #fff; border: 1px solid #e1e8ed; border-radius: 12px; padding: 20px; }
  pre { white-space: pre-wrap; background: #f8f9fa; border-radius: 8px; padding: 12px; }
</style>
</head>
<body>
<div class="card">
`)
	sb.Write(body.Bytes())
	sb.WriteString("</div>\n</body>\n</html>\n")
	return sb.String(), nil
}
