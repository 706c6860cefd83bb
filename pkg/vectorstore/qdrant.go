// Package vectorstore stores and searches chunk embeddings in Qdrant. Each
// (tenant, version) pair maps to one collection, so activating or discarding
// a build version is a collection-level operation.
package vectorstore

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/pkg/fault"
)

// Chunk is the payload stored alongside each embedding.
type Chunk struct {
	DocumentID   string
	ChunkIndex   int
	Text         string
	Page         int
	Section      string
	Filename     string
	IsTable      bool
	IsCaption    bool
	HeadingLevel int
}

// ScoredChunk is a search hit.
type ScoredChunk struct {
	Chunk
	PointID string
	Score   float32
}

// Store is the Qdrant-backed vector store.
type Store struct {
	client *qdrant.Client
	dim    int
}

// New connects to Qdrant over gRPC.
func New(cfg config.QdrantConfig, dim int) (*Store, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
		UseTLS: cfg.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}
	return &Store{client: client, dim: dim}, nil
}

// Close releases the underlying gRPC connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// CollectionName returns the collection for a tenant's build version.
func CollectionName(tenantID string, version int) string {
	return fmt.Sprintf("chatbot_%s_v%d", tenantID, version)
}

// PointID derives a deterministic UUID-shaped id from the document and chunk
// index, so re-running the embed stage overwrites instead of duplicating.
func PointID(documentID string, chunkIndex int) string {
	h := sha256.Sum256(fmt.Appendf(nil, "%s:%d", documentID, chunkIndex))
	// Force UUIDv5-compatible version and variant bits
	h[6] = (h[6] & 0x0f) | 0x50
	h[8] = (h[8] & 0x3f) | 0x80
	id, _ := uuid.FromBytes(h[:16])
	return id.String()
}

// EnsureCollection creates the collection if missing. An existing collection
// with a different vector size is a permanent error: embeddings produced with
// another model cannot be mixed, and rebuilds must be explicit.
func (s *Store) EnsureCollection(ctx context.Context, tenantID string, version int) error {
	name := CollectionName(tenantID, version)

	exists, err := s.client.CollectionExists(ctx, name)
	if err != nil {
		return fault.Transient(fmt.Errorf("failed to check collection %s: %w", name, err))
	}
	if exists {
		info, err := s.client.GetCollectionInfo(ctx, name)
		if err != nil {
			return fault.Transient(fmt.Errorf("failed to inspect collection %s: %w", name, err))
		}
		params := info.GetConfig().GetParams().GetVectorsConfig().GetParams()
		if params != nil && params.GetSize() != uint64(s.dim) {
			return fault.Permanentf(
				"collection %s has dimension %d but EMBEDDING_DIM is %d; re-ingest the corpus to rebuild",
				name, params.GetSize(), s.dim)
		}
		return nil
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(s.dim),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fault.Transient(fmt.Errorf("failed to create collection %s: %w", name, err))
	}
	return nil
}

// UpsertChunks writes chunks and their vectors into the version's collection.
// len(chunks) must equal len(vectors).
func (s *Store) UpsertChunks(ctx context.Context, tenantID string, version int, chunks []Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("chunk/vector count mismatch: %d vs %d", len(chunks), len(vectors))
	}
	if len(chunks) == 0 {
		return nil
	}

	name := CollectionName(tenantID, version)
	points := make([]*qdrant.PointStruct, len(chunks))
	for i, c := range chunks {
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(PointID(c.DocumentID, c.ChunkIndex)),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: qdrant.NewValueMap(map[string]any{
				"tenant_id":     tenantID,
				"version":       version,
				"document_id":   c.DocumentID,
				"chunk_index":   c.ChunkIndex,
				"text":          c.Text,
				"page":          c.Page,
				"section":       c.Section,
				"filename":      c.Filename,
				"is_table":      c.IsTable,
				"is_caption":    c.IsCaption,
				"heading_level": c.HeadingLevel,
			}),
		}
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: name,
		Points:         points,
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return fault.Transient(fmt.Errorf("failed to upsert %d points into %s: %w", len(points), name, err))
	}
	return nil
}

// Search returns up to topK chunks scoring at or above threshold.
func (s *Store) Search(ctx context.Context, tenantID string, version int, vector []float32, topK int, threshold float64) ([]ScoredChunk, error) {
	name := CollectionName(tenantID, version)

	results, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: name,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(topK)),
		ScoreThreshold: qdrant.PtrOf(float32(threshold)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fault.Transient(fmt.Errorf("failed to search %s: %w", name, err))
	}

	hits := make([]ScoredChunk, 0, len(results))
	for _, p := range results {
		payload := p.GetPayload()
		hits = append(hits, ScoredChunk{
			Chunk: Chunk{
				DocumentID:   payload["document_id"].GetStringValue(),
				ChunkIndex:   int(payload["chunk_index"].GetIntegerValue()),
				Text:         payload["text"].GetStringValue(),
				Page:         int(payload["page"].GetIntegerValue()),
				Section:      payload["section"].GetStringValue(),
				Filename:     payload["filename"].GetStringValue(),
				IsTable:      payload["is_table"].GetBoolValue(),
				IsCaption:    payload["is_caption"].GetBoolValue(),
				HeadingLevel: int(payload["heading_level"].GetIntegerValue()),
			},
			PointID: p.GetId().GetUuid(),
			Score:   p.GetScore(),
		})
	}
	return hits, nil
}

// DeleteDocument removes all points of one document from the collection.
// Used when an administrator deletes a single document.
func (s *Store) DeleteDocument(ctx context.Context, tenantID string, version int, documentID string) error {
	name := CollectionName(tenantID, version)

	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: name,
		Points: qdrant.NewPointsSelectorFilter(&qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("document_id", documentID),
			},
		}),
		Wait: qdrant.PtrOf(true),
	})
	if err != nil {
		return fault.Transient(fmt.Errorf("failed to delete document %s from %s: %w", documentID, name, err))
	}
	return nil
}

// DropCollection removes an entire version's collection. Dropping a missing
// collection is not an error.
func (s *Store) DropCollection(ctx context.Context, tenantID string, version int) error {
	name := CollectionName(tenantID, version)
	if err := s.client.DeleteCollection(ctx, name); err != nil {
		return fault.Transient(fmt.Errorf("failed to drop collection %s: %w", name, err))
	}
	return nil
}
