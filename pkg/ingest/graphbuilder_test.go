package ingest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lorekeep/pkg/graphstore"
)

// fakeGraphWriter records writes and can block to expose lock behavior.
type fakeGraphWriter struct {
	mu       sync.Mutex
	nodeSets int
	edgeSets int
	inFlight int
	maxSeen  int
	delay    time.Duration
	edgeErr  error
}

func (f *fakeGraphWriter) UpsertNodes(_ context.Context, _ string, _ int, _ []graphstore.Node) error {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxSeen {
		f.maxSeen = f.inFlight
	}
	f.nodeSets++
	f.mu.Unlock()

	time.Sleep(f.delay)

	f.mu.Lock()
	f.inFlight--
	f.mu.Unlock()
	return nil
}

func (f *fakeGraphWriter) UpsertEdges(_ context.Context, _ string, _ int, _ []graphstore.Edge) error {
	if f.edgeErr != nil {
		return f.edgeErr
	}
	f.mu.Lock()
	f.edgeSets++
	f.mu.Unlock()
	return nil
}

func TestBuild_NodesBeforeEdges(t *testing.T) {
	writer := &fakeGraphWriter{}
	builder := NewGraphBuilder(writer)

	err := builder.Build(context.Background(), "tenant-a", 1,
		[]graphstore.Node{{Type: "Concept", Name: "Warranty", NormName: "warranty"}},
		[]graphstore.Edge{{SourceNorm: "warranty", TargetNorm: "refund", Type: "RELATED_TO", Score: 0.8}})
	require.NoError(t, err)

	assert.Equal(t, 1, writer.nodeSets)
	assert.Equal(t, 1, writer.edgeSets)
}

func TestBuild_EdgeFailureSurfaces(t *testing.T) {
	writer := &fakeGraphWriter{edgeErr: errors.New("merge failed")}
	builder := NewGraphBuilder(writer)

	err := builder.Build(context.Background(), "tenant-a", 1, nil, nil)
	require.Error(t, err)
	assert.Equal(t, 1, writer.nodeSets, "nodes were written before the edge failure")
}

func TestBuild_SerializesPerTenant(t *testing.T) {
	writer := &fakeGraphWriter{delay: 20 * time.Millisecond}
	builder := NewGraphBuilder(writer)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, builder.Build(context.Background(), "tenant-a", 1, nil, nil))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, writer.maxSeen, "same-tenant builds must not overlap")
}

func TestBuild_TenantsRunIndependently(t *testing.T) {
	writer := &fakeGraphWriter{delay: 30 * time.Millisecond}
	builder := NewGraphBuilder(writer)

	var wg sync.WaitGroup
	for _, tenant := range []string{"tenant-a", "tenant-b"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			assert.NoError(t, builder.Build(context.Background(), id, 1, nil, nil))
		}(tenant)
	}
	wg.Wait()

	assert.Equal(t, 2, writer.maxSeen, "distinct tenants proceed concurrently")
}
