// Package graphstore persists the knowledge graph in Neo4j. Every node and
// relationship carries (tenant_id, version) so tenants and build versions
// never see each other's subgraphs.
package graphstore

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/pkg/fault"
)

// Node types map to Neo4j labels.
const (
	NodeConcept    = "Concept"
	NodeDefinition = "Definition"
	NodeProcess    = "Process"
)

// Edge types form the closed relation set.
const (
	EdgeRelatedTo = "RELATED_TO"
	EdgeDefines   = "DEFINES"
	EdgeDependsOn = "DEPENDS_ON"
)

// Node is an extracted entity.
type Node struct {
	Type        string
	Name        string
	NormName    string
	Description string
	ChunkIDs    []string
	Confidence  float64
}

// Edge is a typed, scored relationship between two nodes, addressed by
// normalized name.
type Edge struct {
	SourceNorm string
	TargetNorm string
	Type       string
	Score      float64
	Context    string
	SubType    string
}

// ExpandedNode is a node reached during graph expansion.
type ExpandedNode struct {
	Node
	Hop       int
	EdgeScore float64 // best score among the edges that reached it
}

// Store is the Neo4j-backed graph store.
type Store struct {
	driver neo4j.DriverWithContext
}

// New connects to Neo4j and verifies connectivity.
func New(ctx context.Context, cfg config.Neo4jConfig) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to neo4j at %s: %w", cfg.URI, err)
	}
	return &Store{driver: driver}, nil
}

// Close shuts down the driver.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func validLabel(t string) bool {
	return t == NodeConcept || t == NodeDefinition || t == NodeProcess
}

func validEdgeType(t string) bool {
	return t == EdgeRelatedTo || t == EdgeDefines || t == EdgeDependsOn
}

// UpsertNodes merges nodes by (tenant, version, type, norm_name). Chunk id
// lists are unioned and confidence keeps its maximum, so re-running the graph
// stage is idempotent.
func (s *Store) UpsertNodes(ctx context.Context, tenantID string, version int, nodes []Node) error {
	if len(nodes) == 0 {
		return nil
	}

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, n := range nodes {
			if !validLabel(n.Type) {
				return nil, fmt.Errorf("invalid node type %q for %q", n.Type, n.Name)
			}
			// Label cannot be parameterized; it comes from the closed set above.
			query := fmt.Sprintf(`
				MERGE (n:%s {tenant_id: $tenant_id, version: $version, norm_name: $norm_name})
				ON CREATE SET n.name = $name, n.description = $description,
				              n.chunk_ids = $chunk_ids, n.confidence = $confidence
				ON MATCH SET  n.description = CASE WHEN $description <> '' THEN $description ELSE n.description END,
				              n.confidence = CASE WHEN $confidence > n.confidence THEN $confidence ELSE n.confidence END,
				              n.chunk_ids = [x IN coalesce(n.chunk_ids, []) WHERE NOT x IN $chunk_ids] + $chunk_ids`,
				n.Type)
			_, err := tx.Run(ctx, query, map[string]any{
				"tenant_id":   tenantID,
				"version":     version,
				"norm_name":   n.NormName,
				"name":        n.Name,
				"description": n.Description,
				"chunk_ids":   n.ChunkIDs,
				"confidence":  n.Confidence,
			})
			if err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return fault.Transient(fmt.Errorf("failed to upsert %d nodes: %w", len(nodes), err))
	}
	return nil
}

// UpsertEdges merges relationships between already-upserted nodes. Edges
// whose endpoints are missing are silently skipped by MATCH.
func (s *Store) UpsertEdges(ctx context.Context, tenantID string, version int, edges []Edge) error {
	if len(edges) == 0 {
		return nil
	}

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, e := range edges {
			if !validEdgeType(e.Type) {
				return nil, fmt.Errorf("invalid edge type %q", e.Type)
			}
			query := fmt.Sprintf(`
				MATCH (a {tenant_id: $tenant_id, version: $version, norm_name: $source})
				MATCH (b {tenant_id: $tenant_id, version: $version, norm_name: $target})
				MERGE (a)-[r:%s]->(b)
				SET r.score = CASE WHEN $score > coalesce(r.score, 0.0) THEN $score ELSE r.score END,
				    r.context = $context, r.sub_type = $sub_type,
				    r.tenant_id = $tenant_id, r.version = $version`,
				e.Type)
			_, err := tx.Run(ctx, query, map[string]any{
				"tenant_id": tenantID,
				"version":   version,
				"source":    e.SourceNorm,
				"target":    e.TargetNorm,
				"score":     e.Score,
				"context":   e.Context,
				"sub_type":  e.SubType,
			})
			if err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return fault.Transient(fmt.Errorf("failed to upsert %d edges: %w", len(edges), err))
	}
	return nil
}

func recordToNode(rec *neo4j.Record) Node {
	n := Node{}
	if v, ok := rec.Get("type"); ok {
		n.Type, _ = v.(string)
	}
	if v, ok := rec.Get("name"); ok {
		n.Name, _ = v.(string)
	}
	if v, ok := rec.Get("norm_name"); ok {
		n.NormName, _ = v.(string)
	}
	if v, ok := rec.Get("description"); ok {
		n.Description, _ = v.(string)
	}
	if v, ok := rec.Get("chunk_ids"); ok {
		if raw, ok := v.([]any); ok {
			for _, c := range raw {
				if s, ok := c.(string); ok {
					n.ChunkIDs = append(n.ChunkIDs, s)
				}
			}
		}
	}
	if v, ok := rec.Get("confidence"); ok {
		n.Confidence, _ = v.(float64)
	}
	return n
}

const nodeReturn = `RETURN labels(n)[0] AS type, n.name AS name, n.norm_name AS norm_name,
	n.description AS description, n.chunk_ids AS chunk_ids, n.confidence AS confidence`

// SeedsByChunkIDs returns nodes whose chunk id lists intersect the given ids.
func (s *Store) SeedsByChunkIDs(ctx context.Context, tenantID string, version int, chunkIDs []string) ([]Node, error) {
	if len(chunkIDs) == 0 {
		return nil, nil
	}
	query := `
		MATCH (n {tenant_id: $tenant_id, version: $version})
		WHERE any(c IN n.chunk_ids WHERE c IN $chunk_ids)
		` + nodeReturn
	return s.readNodes(ctx, query, map[string]any{
		"tenant_id": tenantID,
		"version":   version,
		"chunk_ids": chunkIDs,
	})
}

// SeedsByTerms returns nodes whose normalized name contains any of the given
// lowercase terms. Used for keyword seeding when the vector pass finds
// nothing useful.
func (s *Store) SeedsByTerms(ctx context.Context, tenantID string, version int, terms []string) ([]Node, error) {
	if len(terms) == 0 {
		return nil, nil
	}
	query := `
		MATCH (n {tenant_id: $tenant_id, version: $version})
		WHERE any(t IN $terms WHERE n.norm_name CONTAINS t)
		` + nodeReturn
	return s.readNodes(ctx, query, map[string]any{
		"tenant_id": tenantID,
		"version":   version,
		"terms":     terms,
	})
}

func (s *Store) readNodes(ctx context.Context, query string, params map[string]any) ([]Node, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, fault.Transient(fmt.Errorf("failed to read nodes: %w", err))
	}

	records := result.([]*neo4j.Record)
	nodes := make([]Node, 0, len(records))
	for _, rec := range records {
		nodes = append(nodes, recordToNode(rec))
	}
	return nodes, nil
}

// Expand walks up to maxHops hops out from the seed nodes, following edges at
// or above minScore, and returns at most maxNodes nodes ordered by hop count
// then best incident edge score.
func (s *Store) Expand(ctx context.Context, tenantID string, version int, seedNorms []string, maxHops int, minScore float64, maxNodes int) ([]ExpandedNode, error) {
	if len(seedNorms) == 0 {
		return nil, nil
	}

	// Variable-length bounds cannot be parameterized in Cypher; maxHops is a
	// validated integer from configuration.
	query := fmt.Sprintf(`
		MATCH (seed {tenant_id: $tenant_id, version: $version})
		WHERE seed.norm_name IN $seeds
		MATCH path = (seed)-[*1..%d]-(n {tenant_id: $tenant_id, version: $version})
		WHERE NOT n.norm_name IN $seeds
		  AND all(r IN relationships(path) WHERE r.score >= $min_score)
		WITH n, min(length(path)) AS hop,
		     max(reduce(best = 0.0, r IN relationships(path) |
		         CASE WHEN r.score > best THEN r.score ELSE best END)) AS edge_score
		RETURN labels(n)[0] AS type, n.name AS name, n.norm_name AS norm_name,
		       n.description AS description, n.chunk_ids AS chunk_ids,
		       n.confidence AS confidence, hop, edge_score
		ORDER BY hop ASC, edge_score DESC
		LIMIT $max_nodes`, maxHops)

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, map[string]any{
			"tenant_id": tenantID,
			"version":   version,
			"seeds":     seedNorms,
			"min_score": minScore,
			"max_nodes": maxNodes,
		})
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, fault.Transient(fmt.Errorf("failed to expand graph: %w", err))
	}

	records := result.([]*neo4j.Record)
	nodes := make([]ExpandedNode, 0, len(records))
	for _, rec := range records {
		en := ExpandedNode{Node: recordToNode(rec)}
		if v, ok := rec.Get("hop"); ok {
			if h, ok := v.(int64); ok {
				en.Hop = int(h)
			}
		}
		if v, ok := rec.Get("edge_score"); ok {
			en.EdgeScore, _ = v.(float64)
		}
		nodes = append(nodes, en)
	}
	return nodes, nil
}

// RemoveDocument strips a document's chunk ids from all nodes of the version
// and deletes nodes left without any chunk evidence.
func (s *Store) RemoveDocument(ctx context.Context, tenantID string, version int, chunkIDs []string) error {
	if len(chunkIDs) == 0 {
		return nil
	}

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, `
			MATCH (n {tenant_id: $tenant_id, version: $version})
			WHERE any(c IN n.chunk_ids WHERE c IN $chunk_ids)
			SET n.chunk_ids = [x IN n.chunk_ids WHERE NOT x IN $chunk_ids]
			WITH n
			WHERE size(n.chunk_ids) = 0
			DETACH DELETE n`,
			map[string]any{
				"tenant_id": tenantID,
				"version":   version,
				"chunk_ids": chunkIDs,
			})
		return nil, err
	})
	if err != nil {
		return fault.Transient(fmt.Errorf("failed to remove document chunks from graph: %w", err))
	}
	return nil
}

// DeleteVersion removes one build version's subgraph.
func (s *Store) DeleteVersion(ctx context.Context, tenantID string, version int) error {
	return s.deleteWhere(ctx, `MATCH (n {tenant_id: $tenant_id, version: $version}) DETACH DELETE n`,
		map[string]any{"tenant_id": tenantID, "version": version})
}

// DeleteTenant removes everything a tenant ever wrote to the graph.
func (s *Store) DeleteTenant(ctx context.Context, tenantID string) error {
	return s.deleteWhere(ctx, `MATCH (n {tenant_id: $tenant_id}) DETACH DELETE n`,
		map[string]any{"tenant_id": tenantID})
}

func (s *Store) deleteWhere(ctx context.Context, query string, params map[string]any) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, query, params)
		return nil, err
	})
	if err != nil {
		return fault.Transient(fmt.Errorf("failed to delete graph subset: %w", err))
	}
	return nil
}
