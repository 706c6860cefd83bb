package ingest

import (
	"strings"
)

// Chunk is one retrieval unit produced from a document.
type Chunk struct {
	Index        int
	Text         string
	Page         int
	Section      string
	IsTable      bool
	IsCaption    bool
	HeadingLevel int
}

// Chunker splits parsed segments into overlapping chunks. Table and caption
// segments are emitted whole even when they exceed the target size; splitting
// a table row from its header renders both meaningless.
type Chunker struct {
	Size    int
	Overlap int
}

// Split converts segments into document-ordered chunks.
func (c *Chunker) Split(segments []Segment) []Chunk {
	var chunks []Chunk
	var buf []Segment // pending body/heading text to pack together

	flush := func() {
		if len(buf) == 0 {
			return
		}
		chunks = append(chunks, c.packSegments(buf, len(chunks))...)
		buf = nil
	}

	for _, seg := range segments {
		switch seg.Kind {
		case SegmentTable:
			flush()
			chunks = append(chunks, Chunk{
				Index:   len(chunks),
				Text:    seg.Text,
				Page:    seg.Page,
				Section: seg.Section,
				IsTable: true,
			})
		case SegmentCaption:
			flush()
			chunks = append(chunks, Chunk{
				Index:     len(chunks),
				Text:      seg.Text,
				Page:      seg.Page,
				Section:   seg.Section,
				IsCaption: true,
			})
		default:
			buf = append(buf, seg)
		}
	}
	flush()

	return chunks
}

// packSegments joins prose segments and recursively splits the joined text,
// attributing each chunk to the page and section where it starts.
func (c *Chunker) packSegments(segments []Segment, startIndex int) []Chunk {
	var sb strings.Builder
	type mark struct {
		offset       int
		page         int
		section      string
		headingLevel int
	}
	marks := make([]mark, 0, len(segments))

	for i, seg := range segments {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		marks = append(marks, mark{
			offset:       sb.Len(),
			page:         seg.Page,
			section:      seg.Section,
			headingLevel: seg.HeadingLevel,
		})
		sb.WriteString(seg.Text)
	}

	text := sb.String()
	pieces := c.split(text)

	locate := func(offset int) mark {
		best := marks[0]
		for _, m := range marks {
			if m.offset <= offset {
				best = m
			}
		}
		return best
	}

	chunks := make([]Chunk, 0, len(pieces))
	offset := 0
	for _, piece := range pieces {
		at := strings.Index(text[offset:], piece)
		if at >= 0 {
			offset += at
		}
		m := locate(offset)
		chunks = append(chunks, Chunk{
			Index:        startIndex + len(chunks),
			Text:         piece,
			Page:         m.page,
			Section:      m.section,
			HeadingLevel: m.headingLevel,
		})
	}
	return chunks
}

// separators, most structural first: section break, paragraph, sentence, word.
var separators = []string{"\n\n", "\n", ". ", " "}

// split performs recursive character splitting with overlap.
func (c *Chunker) split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= c.Size {
		return []string{text}
	}

	parts := c.splitBySeparator(text, 0)
	return c.mergeWithOverlap(parts)
}

// splitBySeparator breaks text on the given separator level, recursing to
// finer separators for pieces still over the target size.
func (c *Chunker) splitBySeparator(text string, level int) []string {
	if level >= len(separators) {
		// No separator left: hard cut
		var out []string
		for len(text) > c.Size {
			out = append(out, text[:c.Size])
			text = text[c.Size:]
		}
		if text != "" {
			out = append(out, text)
		}
		return out
	}

	sep := separators[level]
	var out []string
	for _, part := range strings.SplitAfter(text, sep) {
		if part == "" {
			continue
		}
		if len(part) > c.Size {
			out = append(out, c.splitBySeparator(part, level+1)...)
		} else {
			out = append(out, part)
		}
	}
	return out
}

// mergeWithOverlap greedily packs parts up to Size and prepends the tail of
// the previous chunk as overlap.
func (c *Chunker) mergeWithOverlap(parts []string) []string {
	var chunks []string
	var cur strings.Builder

	emit := func() {
		s := strings.TrimSpace(cur.String())
		if s != "" {
			chunks = append(chunks, s)
		}
		cur.Reset()
	}

	for _, part := range parts {
		if cur.Len() > 0 && cur.Len()+len(part) > c.Size {
			tail := overlapTail(cur.String(), c.Overlap)
			emit()
			cur.WriteString(tail)
		}
		cur.WriteString(part)
	}
	emit()

	return chunks
}

// overlapTail returns the last n characters of s, extended left to the
// nearest word boundary so the overlap never starts mid-word.
func overlapTail(s string, n int) string {
	if n <= 0 || len(s) == 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	tail := s[len(s)-n:]
	if idx := strings.IndexAny(tail, " \n"); idx >= 0 && idx < len(tail)-1 {
		tail = tail[idx+1:]
	}
	return tail
}
