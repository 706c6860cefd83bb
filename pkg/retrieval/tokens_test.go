package retrieval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens_Latin(t *testing.T) {
	// 40 latin chars at ~4 chars/token
	assert.Equal(t, 10, EstimateTokens(strings.Repeat("abcd", 10)))
}

func TestEstimateTokens_CJK(t *testing.T) {
	// 10 ideographs at ~2 chars/token
	assert.Equal(t, 5, EstimateTokens(strings.Repeat("漢字", 5)))
}

func TestEstimateTokens_Mixed(t *testing.T) {
	// 8 latin (2 tokens) + 4 CJK (2 tokens)
	assert.Equal(t, 4, EstimateTokens("abcdefgh"+strings.Repeat("字", 4)))
}

func TestEstimateTokens_RoundsUp(t *testing.T) {
	assert.Equal(t, 1, EstimateTokens("a"))
	assert.Equal(t, 1, EstimateTokens("字"))
	assert.Equal(t, 0, EstimateTokens(""))
}

func TestEstimateTokens_Kana(t *testing.T) {
	assert.Equal(t, 3, EstimateTokens("こんにちは")) // 5 kana → ceil(5/2)
}
