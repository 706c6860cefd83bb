package vectorstore

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionName(t *testing.T) {
	assert.Equal(t, "chatbot_3f2a_v1", CollectionName("3f2a", 1))
	assert.Equal(t, "chatbot_3f2a_v12", CollectionName("3f2a", 12))
}

func TestPointID_Deterministic(t *testing.T) {
	a := PointID("doc-1", 0)
	b := PointID("doc-1", 0)
	assert.Equal(t, a, b, "same document and index must yield the same id")

	assert.NotEqual(t, a, PointID("doc-1", 1))
	assert.NotEqual(t, a, PointID("doc-2", 0))
}

func TestPointID_IsValidUUID(t *testing.T) {
	id, err := uuid.Parse(PointID("doc-1", 7))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), id.Version())
	assert.Equal(t, uuid.RFC4122, id.Variant())
}
