package retrieval

// EstimateTokens approximates the token count of mixed-script text. CJK
// scripts average about 2 characters per token, everything else about 4.
// This intentionally mirrors the estimator the context budget was tuned
// against rather than any particular tokenizer.
func EstimateTokens(s string) int {
	cjk, other := 0, 0
	for _, r := range s {
		if isCJK(r) {
			cjk++
		} else {
			other++
		}
	}
	tokens := (cjk + 1) / 2
	tokens += (other + 3) / 4
	return tokens
}

func isCJK(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // CJK unified ideographs
		return true
	case r >= 0x3400 && r <= 0x4DBF: // extension A
		return true
	case r >= 0x3040 && r <= 0x30FF: // hiragana + katakana
		return true
	case r >= 0xAC00 && r <= 0xD7AF: // hangul syllables
		return true
	case r >= 0xF900 && r <= 0xFAFF: // compatibility ideographs
		return true
	}
	return false
}
