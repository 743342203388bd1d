package parser

import (
	"strings"
	"testing"
)

func TestHTMLExtractor_Headings(t *testing.T) {
	input := `<html><head><title>Guide</title></head><body>
<h1>Overview</h1>
<p>Some intro.</p>
<h2>Setup</h2>
<p>Steps.</p>
<h3>Linux</h3>
<h2>Usage</h2>
</body></html>`

	e := &HTMLExtractor{}
	res, err := e.Extract(strings.NewReader(input), "guide.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Title != "Guide" {
		t.Errorf("expected title from <title>, got %q", res.Title)
	}

	wantLevels := []int{1, 2, 3, 2}
	wantTexts := []string{"Overview", "Setup", "Linux", "Usage"}
	if len(res.Records) != len(wantLevels) {
		t.Fatalf("expected %d headings, got %d", len(wantLevels), len(res.Records))
	}
	for i, r := range res.Records {
		if r.Level != wantLevels[i] || r.Text != wantTexts[i] {
			t.Errorf("heading %d = level %d %q, want level %d %q", i, r.Level, r.Text, wantLevels[i], wantTexts[i])
		}
	}

	// 4 headings + 2 paragraphs advance the counter.
	if res.ParagraphCount != 6 {
		t.Errorf("ParagraphCount = %d, want 6", res.ParagraphCount)
	}
}

func TestHTMLExtractor_SkipsChrome(t *testing.T) {
	input := `<html><body>
<nav><h1>Site Nav</h1></nav>
<h1>Real Heading</h1>
<script>var x = "<h2>fake</h2>";</script>
</body></html>`

	e := &HTMLExtractor{}
	res, err := e.Extract(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Records) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(res.Records))
	}
	if res.Records[0].Text != "Real Heading" {
		t.Errorf("got heading %q, want %q", res.Records[0].Text, "Real Heading")
	}
}

func TestHTMLExtractor_NestedInlineText(t *testing.T) {
	input := `<html><body><h2>Part <em>Two</em></h2></body></html>`

	e := &HTMLExtractor{}
	res, err := e.Extract(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Records) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(res.Records))
	}
	if res.Records[0].Text != "Part Two" {
		t.Errorf("got heading text %q, want %q", res.Records[0].Text, "Part Two")
	}
}

func TestForFile(t *testing.T) {
	supported := []string{"a.md", "b.markdown", "c.html", "d.htm", "e.pdf", "f.docx", "G.DOCX"}
	for _, name := range supported {
		if _, err := ForFile(name); err != nil {
			t.Errorf("ForFile(%q): unexpected error %v", name, err)
		}
		if !IsSupportedExtension(name) {
			t.Errorf("IsSupportedExtension(%q) = false", name)
		}
	}

	for _, name := range []string{"a.txt", "b.csv", "noext", "x.pptx"} {
		if _, err := ForFile(name); err == nil {
			t.Errorf("ForFile(%q): expected error", name)
		}
		if IsSupportedExtension(name) {
			t.Errorf("IsSupportedExtension(%q) = true", name)
		}
	}
}
