package parser

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/fumiama/go-docx"
)

// DOCXExtractor handles .docx files. Heading levels come from the paragraph
// style name via the classifier; run formatting is captured as pass-through
// data.
type DOCXExtractor struct{}

func (e *DOCXExtractor) Extract(r io.Reader, filename string) (*Result, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	res := &Result{
		Title: strings.TrimSuffix(filename, ".docx"),
	}

	// Position counts every body paragraph, heading or not, so ids map
	// back to real document offsets.
	pos := 0
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}

		styleName := docxStyleName(para)
		if level := outline.HeadingLevel(styleName); level > 0 {
			res.Records = append(res.Records, outline.HeadingRecord{
				Position:  pos,
				Text:      docxParagraphText(para),
				Level:     level,
				StyleName: styleName,
				Format:    docxFormat(para),
			})
		}
		pos++
	}
	res.ParagraphCount = pos

	return res, nil
}

func docxStyleName(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return para.Properties.Style.Val
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// docxFormat reports the formatting of the paragraph's first styled run,
// which is representative for heading paragraphs.
func docxFormat(para *docx.Paragraph) *outline.TextFormat {
	var f *outline.TextFormat
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok || run.RunProperties == nil {
			continue
		}
		rp := run.RunProperties
		f = &outline.TextFormat{
			Bold:   rp.Bold != nil,
			Italic: rp.Italic != nil,
		}
		if rp.Fonts != nil {
			f.FontName = rp.Fonts.ASCII
		}
		if rp.Size != nil {
			// w:sz is half-points.
			if half, err := strconv.ParseFloat(rp.Size.Val, 64); err == nil {
				f.FontSize = half / 2
			}
		}
		if rp.Color != nil {
			f.Color = rp.Color.Val
		}
		break
	}
	if para.Properties != nil && para.Properties.Justification != nil {
		if f == nil {
			f = &outline.TextFormat{}
		}
		f.Alignment = para.Properties.Justification.Val
	}
	return f
}
