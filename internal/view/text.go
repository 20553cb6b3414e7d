package view

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const wordsPerMinute = 200

var stripPolicy = bluemonday.StrictPolicy()

// ReadingTime estimates minutes to read content: markup stripped, whitespace-split,
// 200 words per minute rounded up. Non-empty content takes at least one minute,
// even when it has no words left after stripping.
func ReadingTime(content string) int {
	if content == "" {
		return 0
	}

	words := len(strings.Fields(stripPolicy.Sanitize(content)))
	return max(1, (words+wordsPerMinute-1)/wordsPerMinute)
}

// Markdown renders article bodies to sanitized HTML.
type Markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewMarkdown() *Markdown {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre")

	return &Markdown{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: p,
	}
}

// Render converts GitHub-flavored markdown and strips anything unsafe.
func (m *Markdown) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	//nolint:gosec // sanitized by bluemonday
	return template.HTML(m.policy.SanitizeBytes(buf.Bytes())), nil
}
