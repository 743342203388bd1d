package parser

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFExtractor handles PDF files. PDFs carry no paragraph styles, so
// headings are inferred from font size: the dominant size is body text and
// larger sizes rank into levels, largest first.
type PDFExtractor struct{}

// maxHeadingRunes guards against body-sized pull quotes and cover pages
// being promoted to headings.
const maxHeadingRunes = 200

type pdfLine struct {
	text     string
	fontName string
	fontSize float64
}

func (e *PDFExtractor) Extract(r io.Reader, filename string) (*Result, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	lines, err := collectPDFLines(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	res := &Result{
		Title:          strings.TrimSuffix(filename, ".pdf"),
		ParagraphCount: len(lines),
	}

	sizeToLevel := rankHeadingSizes(lines)
	for i, line := range lines {
		level, ok := sizeToLevel[sizeKey(line.fontSize)]
		if !ok || line.text == "" || len([]rune(line.text)) > maxHeadingRunes {
			continue
		}
		res.Records = append(res.Records, outline.HeadingRecord{
			Position:  i,
			Text:      line.text,
			Level:     level,
			StyleName: fmt.Sprintf("Heading %d", level),
			Format: &outline.TextFormat{
				FontName: line.fontName,
				FontSize: line.fontSize,
			},
		})
	}

	return res, nil
}

// collectPDFLines walks every page and groups text fragments into lines by
// their Y coordinate. A line's font size is the largest of its fragments.
func collectPDFLines(path string) ([]pdfLine, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []pdfLine
	var cur *pdfLine
	var curY float64
	var buf strings.Builder

	flush := func() {
		if cur == nil {
			return
		}
		cur.text = strings.TrimSpace(buf.String())
		lines = append(lines, *cur)
		cur = nil
		buf.Reset()
	}

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, t := range page.Content().Text {
			if cur == nil || math.Abs(t.Y-curY) > 0.5 {
				flush()
				cur = &pdfLine{fontName: t.Font, fontSize: t.FontSize}
				curY = t.Y
			}
			if t.FontSize > cur.fontSize {
				cur.fontSize = t.FontSize
				cur.fontName = t.Font
			}
			buf.WriteString(t.S)
		}
		flush() // Page break always ends the current line.
	}
	flush()

	return lines, nil
}

// rankHeadingSizes finds the body font size (the size covering the most
// characters) and maps every strictly larger size to a heading level:
// largest size = level 1, next = level 2, and so on, capped at 9.
func rankHeadingSizes(lines []pdfLine) map[int]int {
	weight := make(map[int]int)
	for _, line := range lines {
		if line.text == "" {
			continue
		}
		weight[sizeKey(line.fontSize)] += len(line.text)
	}
	if len(weight) == 0 {
		return nil
	}

	bodyKey, bodyWeight := 0, -1
	for key, w := range weight {
		if w > bodyWeight || (w == bodyWeight && key < bodyKey) {
			bodyKey, bodyWeight = key, w
		}
	}

	var headingKeys []int
	for key := range weight {
		if key > bodyKey {
			headingKeys = append(headingKeys, key)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(headingKeys)))

	levels := make(map[int]int, len(headingKeys))
	for i, key := range headingKeys {
		if i >= 9 {
			break
		}
		levels[key] = i + 1
	}
	return levels
}

// sizeKey buckets font sizes to half-points so float jitter in the content
// stream doesn't split one visual size into several ranks.
func sizeKey(size float64) int {
	return int(math.Round(size * 2))
}
