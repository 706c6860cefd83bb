package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyTerms_CapitalizedPhrases(t *testing.T) {
	terms := KeyTerms("How does the Circuit Breaker interact with the Retry Budget policy?")
	assert.Contains(t, terms, "circuit breaker")
	assert.Contains(t, terms, "retry budget")
}

func TestKeyTerms_QuotedPhrases(t *testing.T) {
	terms := KeyTerms(`What is an "orphan scan" and when does it run?`)
	assert.Contains(t, terms, "orphan scan")
}

func TestKeyTerms_SingleEntityWords(t *testing.T) {
	terms := KeyTerms("What is GraphRAG?")
	assert.Contains(t, terms, "graphrag")

	terms = KeyTerms("Tell me about the Warranty policy")
	assert.Contains(t, terms, "warranty")
}

func TestKeyTerms_SingleCapitalsIgnored(t *testing.T) {
	terms := KeyTerms("What does It mean when The job fails?")
	assert.Empty(t, terms)
}

func TestKeyTerms_Deduplicates(t *testing.T) {
	terms := KeyTerms(`"Load Balancer" versus Load Balancer`)
	count := 0
	for _, term := range terms {
		if term == "load balancer" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestKeyTerms_EmptyQuery(t *testing.T) {
	assert.Empty(t, KeyTerms(""))
	assert.Empty(t, KeyTerms("lowercase question without phrases"))
}
