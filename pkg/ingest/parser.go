package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/lorekeep/lorekeep/pkg/fault"
)

// SegmentKind classifies a run of extracted text.
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentHeading
	SegmentTable
	SegmentCaption
)

// Segment is a contiguous run of text with layout hints. Table and caption
// segments are atomic: the chunker never splits inside them.
type Segment struct {
	Kind         SegmentKind
	Text         string
	Page         int
	Section      string
	HeadingLevel int
}

// ParseResult is the outcome of parsing one PDF.
type ParseResult struct {
	Segments  []Segment
	PageCount int
}

var (
	headingRe = regexp.MustCompile(`^(\d+(\.\d+)*)[.)]?\s+\S`)
	captionRe = regexp.MustCompile(`(?i)^(figure|table|fig\.)\s+\d+`)
	// A table-ish line has several cell gaps: runs of 2+ spaces, tabs, or pipes.
	tableCellRe = regexp.MustCompile(`( {2,}|\t|\|)`)
)

// ParsePDF extracts per-page text from a stored PDF and classifies lines into
// headings, captions, table blocks and body text. A file the library cannot
// open is a permanent failure: retrying will not uncorrupt it.
func ParsePDF(path string) (*ParseResult, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fault.Permanent(fmt.Errorf("failed to open PDF %s: %w", path, err))
	}
	defer f.Close()

	total := r.NumPage()
	if total == 0 {
		return nil, fault.Permanentf("PDF %s has no pages", path)
	}

	result := &ParseResult{PageCount: total}
	section := ""

	for pageNum := 1; pageNum <= total; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not fail the document
			continue
		}
		segs, nextSection := classifyPage(text, pageNum, section)
		section = nextSection
		result.Segments = append(result.Segments, segs...)
	}

	if len(result.Segments) == 0 {
		return nil, fault.Permanentf("PDF %s contains no extractable text", path)
	}
	return result, nil
}

// classifyPage walks a page's lines and groups them into segments, carrying
// the current section heading forward across pages.
func classifyPage(text string, pageNum int, section string) ([]Segment, string) {
	var segments []Segment
	var body []string
	var table []string

	flushBody := func() {
		if len(body) == 0 {
			return
		}
		segments = append(segments, Segment{
			Kind:    SegmentText,
			Text:    strings.TrimSpace(strings.Join(body, "\n")),
			Page:    pageNum,
			Section: section,
		})
		body = nil
	}
	flushTable := func() {
		if len(table) == 0 {
			return
		}
		segments = append(segments, Segment{
			Kind:    SegmentTable,
			Text:    strings.TrimSpace(strings.Join(table, "\n")),
			Page:    pageNum,
			Section: section,
		})
		table = nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flushTable()
			flushBody()
			continue
		}

		switch {
		case isHeading(trimmed):
			flushTable()
			flushBody()
			section = trimmed
			segments = append(segments, Segment{
				Kind:         SegmentHeading,
				Text:         trimmed,
				Page:         pageNum,
				Section:      trimmed,
				HeadingLevel: headingLevel(trimmed),
			})
		case captionRe.MatchString(trimmed):
			flushTable()
			flushBody()
			segments = append(segments, Segment{
				Kind:    SegmentCaption,
				Text:    trimmed,
				Page:    pageNum,
				Section: section,
			})
		case isTableLine(line):
			flushBody()
			table = append(table, trimmed)
		default:
			flushTable()
			body = append(body, trimmed)
		}
	}
	flushTable()
	flushBody()

	return segments, section
}

func isHeading(line string) bool {
	if len(line) > 120 {
		return false
	}
	if headingRe.MatchString(line) {
		return true
	}
	// Short all-caps lines read as headings
	if len(line) <= 60 && line == strings.ToUpper(line) && strings.ContainsFunc(line, isLetter) {
		return true
	}
	return false
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func headingLevel(line string) int {
	m := headingRe.FindStringSubmatch(line)
	if m == nil {
		return 1
	}
	return strings.Count(m[1], ".") + 1
}

func isTableLine(line string) bool {
	return len(tableCellRe.FindAllString(line, -1)) >= 2
}
