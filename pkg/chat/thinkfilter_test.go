package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThinkFilter_PassThrough(t *testing.T) {
	f := &ThinkFilter{}
	assert.Equal(t, "hello world", f.Feed("hello world")+f.Flush())
}

func TestThinkFilter_StripsWholeBlock(t *testing.T) {
	f := &ThinkFilter{}
	out := f.Feed("before <think>internal reasoning</think>after")
	assert.Equal(t, "before after", out+f.Flush())
}

func TestThinkFilter_TagSplitAcrossChunks(t *testing.T) {
	f := &ThinkFilter{}
	var out string
	for _, chunk := range []string{"ans", "wer <th", "ink>hidden", " stuff</thi", "nk> visible"} {
		out += f.Feed(chunk)
	}
	out += f.Flush()
	assert.Equal(t, "answer  visible", out)
}

func TestThinkFilter_UnterminatedBlockSwallowed(t *testing.T) {
	f := &ThinkFilter{}
	out := f.Feed("result <think>never closed")
	out += f.Flush()
	assert.Equal(t, "result ", out)
}

func TestThinkFilter_MultipleBlocks(t *testing.T) {
	f := &ThinkFilter{}
	out := f.Feed("<think>a</think>one<think>b</think>two")
	assert.Equal(t, "onetwo", out+f.Flush())
}

func TestThinkFilter_AngleBracketNotATag(t *testing.T) {
	f := &ThinkFilter{}
	out := f.Feed("compare a < b and c > d")
	out += f.Flush()
	assert.Equal(t, "compare a < b and c > d", out)
}
