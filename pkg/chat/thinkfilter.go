package chat

import "strings"

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
)

// ThinkFilter strips <think>...</think> reasoning blocks from a token stream
// in real time. Reasoning models interleave these blocks with the answer;
// users should never see them. The filter is stateful because tags can be
// split across stream chunks.
type ThinkFilter struct {
	inThink bool
	pending string // tail that might be a partial tag
}

// Feed consumes one stream fragment and returns the displayable text.
func (f *ThinkFilter) Feed(fragment string) string {
	buf := f.pending + fragment
	f.pending = ""
	var out strings.Builder

	for buf != "" {
		if f.inThink {
			idx := strings.Index(buf, thinkClose)
			if idx < 0 {
				// Keep a tail that could be the start of the close tag
				f.pending = partialTagTail(buf, thinkClose)
				return out.String()
			}
			buf = buf[idx+len(thinkClose):]
			f.inThink = false
			continue
		}

		idx := strings.Index(buf, thinkOpen)
		if idx < 0 {
			tail := partialTagTail(buf, thinkOpen)
			out.WriteString(buf[:len(buf)-len(tail)])
			f.pending = tail
			return out.String()
		}
		out.WriteString(buf[:idx])
		buf = buf[idx+len(thinkOpen):]
		f.inThink = true
	}
	return out.String()
}

// Flush returns any text still held back. Inside an unterminated think block
// nothing is released.
func (f *ThinkFilter) Flush() string {
	if f.inThink {
		f.pending = ""
		return ""
	}
	out := f.pending
	f.pending = ""
	return out
}

// partialTagTail returns the longest suffix of buf that is a proper prefix
// of tag, so a tag split across chunks is not emitted by half.
func partialTagTail(buf, tag string) string {
	max := len(tag) - 1
	if max > len(buf) {
		max = len(buf)
	}
	for n := max; n > 0; n-- {
		if strings.HasPrefix(tag, buf[len(buf)-n:]) {
			return buf[len(buf)-n:]
		}
	}
	return ""
}
