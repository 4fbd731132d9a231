package handlers

import (
	"strings"
	"testing"
)

func TestRenderMarkdownBasics(t *testing.T) {
	html, err := renderMarkdown("# Need a plumber\n\nSink is **leaking**.")
	if err != nil {
		t.Fatalf("renderMarkdown: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "Need a plumber") {
		t.Errorf("heading not rendered: %q", html)
	}
	if !strings.Contains(html, "<strong>leaking</strong>") {
		t.Errorf("emphasis not rendered: %q", html)
	}
}

func TestRenderMarkdownEscapesRawHTML(t *testing.T) {
	html, err := renderMarkdown("hello <script>alert(1)</script>")
	if err != nil {
		t.Fatalf("renderMarkdown: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("raw HTML passed through unescaped: %q", html)
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	html, err := renderMarkdown("")
	if err != nil {
		t.Fatalf("renderMarkdown: %v", err)
	}
	if strings.TrimSpace(html) != "" {
		t.Errorf("empty input rendered non-empty output: %q", html)
	}
}
