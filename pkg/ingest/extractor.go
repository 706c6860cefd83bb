package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/lorekeep/lorekeep/pkg/graphstore"
	"github.com/lorekeep/lorekeep/pkg/llm"
)

// ruleConfidence is assigned to pattern-matched candidates; LLM candidates
// carry the model's own score.
const ruleConfidence = 0.9

// edgeScoreFloor drops weak relations after fusion.
const edgeScoreFloor = 0.5

// Completer is the slice of the LLM gateway the extractor needs.
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, llm.Usage, error)
}

// Extractor produces graph nodes and edges from chunks using a rule pass and
// an LLM pass, fused by normalized name.
type Extractor struct {
	llm Completer
}

// NewExtractor builds an extractor over the given completer.
func NewExtractor(completer Completer) *Extractor {
	return &Extractor{llm: completer}
}

// Normalize lowercases, collapses whitespace and strips punctuation for
// dedup. Display names keep their original casing.
func Normalize(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r > 127:
			sb.WriteRune(r)
		case r == ' ', r == '\t', r == '\n':
			sb.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

var (
	definedAsRe = regexp.MustCompile(`(?m)^(.{2,80}?)\s+is defined as\s+(.{10,400})`)
	colonDefRe  = regexp.MustCompile(`(?m)^([A-Z][^:\n]{1,60}):\s+([A-Z].{10,400})`)
	numberedRe  = regexp.MustCompile(`(?m)^\s*(\d+)[.)]\s+(.{5,200})`)
)

// Extract runs both passes over the chunks. chunkID maps a chunk index to its
// stable point id. LLM failures on individual chunks are logged and skipped;
// only a complete inability to extract is an error for the caller.
func (e *Extractor) Extract(ctx context.Context, chunks []Chunk, chunkID func(int) string) ([]graphstore.Node, []graphstore.Edge, error) {
	nodes := map[string]*graphstore.Node{} // keyed by norm_name + "\x00" + type
	var edges []graphstore.Edge

	addNode := func(n graphstore.Node) {
		if n.NormName == "" {
			return
		}
		key := n.NormName + "\x00" + n.Type
		existing, ok := nodes[key]
		if !ok {
			nodes[key] = &n
			return
		}
		// Merge: max confidence, union chunk ids, longest description
		if n.Confidence > existing.Confidence {
			existing.Confidence = n.Confidence
		}
		if len(n.Description) > len(existing.Description) {
			existing.Description = n.Description
		}
		existing.ChunkIDs = unionStrings(existing.ChunkIDs, n.ChunkIDs)
	}

	for _, chunk := range chunks {
		id := chunkID(chunk.Index)

		for _, n := range rulePass(chunk, id) {
			addNode(n)
		}

		llmNodes, llmEdges, err := e.llmPass(ctx, chunk, id)
		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, ctx.Err()
			}
			slog.Warn("Skipping LLM extraction for chunk",
				"chunk_index", chunk.Index, "error", err)
			continue
		}
		for _, n := range llmNodes {
			addNode(n)
		}
		edges = append(edges, llmEdges...)
	}

	out := make([]graphstore.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, *n)
	}

	kept := make([]graphstore.Edge, 0, len(edges))
	for _, e := range edges {
		if e.Score >= edgeScoreFloor {
			kept = append(kept, e)
		}
	}

	return out, kept, nil
}

// rulePass emits Definition and Process candidates from structural patterns.
func rulePass(chunk Chunk, chunkID string) []graphstore.Node {
	var nodes []graphstore.Node

	for _, m := range definedAsRe.FindAllStringSubmatch(chunk.Text, -1) {
		name := strings.TrimSpace(m[1])
		nodes = append(nodes, graphstore.Node{
			Type:        graphstore.NodeDefinition,
			Name:        name,
			NormName:    Normalize(name),
			Description: strings.TrimSpace(m[2]),
			ChunkIDs:    []string{chunkID},
			Confidence:  ruleConfidence,
		})
	}

	for _, m := range colonDefRe.FindAllStringSubmatch(chunk.Text, -1) {
		name := strings.TrimSpace(m[1])
		nodes = append(nodes, graphstore.Node{
			Type:        graphstore.NodeDefinition,
			Name:        name,
			NormName:    Normalize(name),
			Description: strings.TrimSpace(m[2]),
			ChunkIDs:    []string{chunkID},
			Confidence:  ruleConfidence,
		})
	}

	// Two or more numbered steps in one chunk indicate a procedure; the
	// section heading names it.
	steps := numberedRe.FindAllStringSubmatch(chunk.Text, -1)
	if len(steps) >= 2 && chunk.Section != "" {
		nodes = append(nodes, graphstore.Node{
			Type:        graphstore.NodeProcess,
			Name:        chunk.Section,
			NormName:    Normalize(chunk.Section),
			Description: fmt.Sprintf("Procedure with %d steps", len(steps)),
			ChunkIDs:    []string{chunkID},
			Confidence:  ruleConfidence,
		})
	}

	if chunk.HeadingLevel > 0 && chunk.Section != "" {
		nodes = append(nodes, graphstore.Node{
			Type:       graphstore.NodeConcept,
			Name:       chunk.Section,
			NormName:   Normalize(chunk.Section),
			ChunkIDs:   []string{chunkID},
			Confidence: ruleConfidence,
		})
	}

	return nodes
}

const extractionPrompt = `You extract a knowledge graph from a document excerpt.
Return ONLY a JSON object, no prose, with this exact shape:
{"entities": [{"name": "...", "type": "concept|definition|process", "description": "..."}],
 "relations": [{"source": "...", "target": "...", "type": "RELATED_TO|DEFINES|DEPENDS_ON", "score": 0, "context": "..."}]}
Rules:
- type must be one of: concept, definition, process
- relation type must be one of: RELATED_TO, DEFINES, DEPENDS_ON
- score is an integer 0-10 indicating relation strength
- source and target must appear in entities
- at most 10 entities and 10 relations`

type llmEntity struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type llmRelation struct {
	Source  string `json:"source"`
	Target  string `json:"target"`
	Type    string `json:"type"`
	Score   int    `json:"score"`
	Context string `json:"context"`
}

type llmExtraction struct {
	Entities  []llmEntity   `json:"entities"`
	Relations []llmRelation `json:"relations"`
}

// llmPass asks the model for entities and relations in one chunk.
func (e *Extractor) llmPass(ctx context.Context, chunk Chunk, chunkID string) ([]graphstore.Node, []graphstore.Edge, error) {
	content, _, err := e.llm.Complete(ctx, []llm.Message{
		{Role: "system", Content: extractionPrompt},
		{Role: "user", Content: chunk.Text},
	})
	if err != nil {
		return nil, nil, err
	}

	parsed, err := salvageExtraction(content)
	if err != nil {
		return nil, nil, fmt.Errorf("unusable extraction response: %w", err)
	}

	var nodes []graphstore.Node
	for _, ent := range parsed.Entities {
		nodeType, ok := mapEntityType(ent.Type)
		if !ok {
			continue
		}
		name := strings.TrimSpace(ent.Name)
		if name == "" {
			continue
		}
		nodes = append(nodes, graphstore.Node{
			Type:        nodeType,
			Name:        name,
			NormName:    Normalize(name),
			Description: strings.TrimSpace(ent.Description),
			ChunkIDs:    []string{chunkID},
			Confidence:  0.7,
		})
	}

	var edges []graphstore.Edge
	for _, rel := range parsed.Relations {
		relType := strings.ToUpper(strings.TrimSpace(rel.Type))
		if relType != graphstore.EdgeRelatedTo && relType != graphstore.EdgeDefines && relType != graphstore.EdgeDependsOn {
			continue
		}
		if rel.Score < 0 || rel.Score > 10 {
			continue
		}
		src, dst := Normalize(rel.Source), Normalize(rel.Target)
		if src == "" || dst == "" || src == dst {
			continue
		}
		edges = append(edges, graphstore.Edge{
			SourceNorm: src,
			TargetNorm: dst,
			Type:       relType,
			Score:      float64(rel.Score) / 10.0,
			Context:    strings.TrimSpace(rel.Context),
		})
	}

	return nodes, edges, nil
}

func mapEntityType(t string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "concept":
		return graphstore.NodeConcept, true
	case "definition":
		return graphstore.NodeDefinition, true
	case "process":
		return graphstore.NodeProcess, true
	}
	return "", false
}

// salvageExtraction tolerates models that wrap JSON in prose or code fences:
// it parses the substring between the first '{' and the last '}'.
func salvageExtraction(content string) (*llmExtraction, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var parsed llmExtraction
	if err := json.Unmarshal([]byte(content[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}
	return &parsed, nil
}

func unionStrings(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	for _, s := range b {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
