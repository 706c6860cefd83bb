package ingest

import (
	"context"
	"sync"

	"github.com/lorekeep/lorekeep/pkg/graphstore"
)

// GraphWriter is the slice of the graph store the builder needs.
type GraphWriter interface {
	UpsertNodes(ctx context.Context, tenantID string, version int, nodes []graphstore.Node) error
	UpsertEdges(ctx context.Context, tenantID string, version int, edges []graphstore.Edge) error
}

// GraphBuilder serializes graph writes per tenant. Two documents of the same
// tenant may reach the graph stage concurrently and merge into the same
// nodes; the per-tenant mutex keeps those merges from interleaving.
type GraphBuilder struct {
	store GraphWriter

	mu      sync.Mutex
	tenants map[string]*sync.Mutex
}

// NewGraphBuilder wraps a graph store.
func NewGraphBuilder(store GraphWriter) *GraphBuilder {
	return &GraphBuilder{
		store:   store,
		tenants: make(map[string]*sync.Mutex),
	}
}

func (b *GraphBuilder) tenantLock(tenantID string) *sync.Mutex {
	b.mu.Lock()
	defer b.mu.Unlock()
	lock, ok := b.tenants[tenantID]
	if !ok {
		lock = &sync.Mutex{}
		b.tenants[tenantID] = lock
	}
	return lock
}

// Build upserts nodes first so edge MATCHes find their endpoints, holding the
// tenant's write lock throughout.
func (b *GraphBuilder) Build(ctx context.Context, tenantID string, version int, nodes []graphstore.Node, edges []graphstore.Edge) error {
	lock := b.tenantLock(tenantID)
	lock.Lock()
	defer lock.Unlock()

	if err := b.store.UpsertNodes(ctx, tenantID, version, nodes); err != nil {
		return err
	}
	return b.store.UpsertEdges(ctx, tenantID, version, edges)
}
