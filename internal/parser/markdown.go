package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor handles Markdown files using goldmark. ATX and setext
// headings both surface as ast.Heading with a 1-6 level; the style name is
// synthesized to match the Word convention.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Extract(r io.Reader, filename string) (*Result, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	res := &Result{
		Title: strings.TrimSuffix(strings.TrimSuffix(filename, ".md"), ".markdown"),
	}

	// Position is the index of the top-level block in document order.
	pos := 0
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if heading, ok := n.(*ast.Heading); ok {
			res.Records = append(res.Records, outline.HeadingRecord{
				Position:  pos,
				Text:      string(heading.Text(src)),
				Level:     heading.Level,
				StyleName: fmt.Sprintf("Heading %d", heading.Level),
			})
		}
		pos++
	}
	res.ParagraphCount = pos

	return res, nil
}
