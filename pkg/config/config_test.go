package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse-battery"), bcrypt.DefaultCost)
	require.NoError(t, err)
	t.Setenv("LLM_BASE_URL", "http://localhost:8000/v1")
	t.Setenv("EMBEDDING_BASE_URL", "http://localhost:8001/v1")
	t.Setenv("ADMIN_BOOTSTRAP_EMAIL", "ops@example.com")
	t.Setenv("ADMIN_BOOTSTRAP_PASSWORD_HASH", string(hash))
	t.Setenv("ADMIN_API_TOKEN", "test-token")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 2, cfg.LLM.Concurrency)
	assert.Equal(t, 120*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, 8, cfg.Retrieval.TopK)
	assert.Equal(t, 0.7, cfg.Retrieval.VectorScoreThreshold)
	assert.Equal(t, 2, cfg.Retrieval.MaxHops)
	assert.Equal(t, 3000, cfg.Retrieval.ContextTokenBudget)
	assert.Equal(t, 1000, cfg.Ingest.ChunkSize)
	assert.Equal(t, 200, cfg.Ingest.ChunkOverlap)
	assert.Equal(t, 30*time.Minute, cfg.Chat.SessionTTL)
	assert.Equal(t, 10, cfg.Chat.HistoryTurns)
	assert.Equal(t, int64(104857600), cfg.Storage.MaxDocumentBytes)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TOP_K", "12")
	t.Setenv("WORKER_CONCURRENCY", "5")
	t.Setenv("MAX_CONCURRENT_DOCUMENTS", "10")
	t.Setenv("SESSION_TTL_MIN", "60")
	t.Setenv("LLM_CONCURRENCY", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Retrieval.TopK)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 60*time.Minute, cfg.Chat.SessionTTL)
	assert.Equal(t, 4, cfg.LLM.Concurrency)
}

func TestLoad_RequiredValues(t *testing.T) {
	tests := []struct {
		name        string
		unset       string
		errContains string
	}{
		{"missing LLM base URL", "LLM_BASE_URL", "LLM_BASE_URL"},
		{"missing embedding base URL", "EMBEDDING_BASE_URL", "EMBEDDING_BASE_URL"},
		{"missing bootstrap email", "ADMIN_BOOTSTRAP_EMAIL", "ADMIN_BOOTSTRAP_EMAIL"},
		{"missing bootstrap hash", "ADMIN_BOOTSTRAP_PASSWORD_HASH", "ADMIN_BOOTSTRAP_PASSWORD_HASH"},
		{"missing API token", "ADMIN_API_TOKEN", "ADMIN_API_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			os.Unsetenv(tt.unset)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoad_ChunkOverlapMustBeSmaller(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CHUNK_SIZE", "100")
	t.Setenv("CHUNK_OVERLAP", "100")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHUNK_OVERLAP")
}

func TestValidateBootstrapHash(t *testing.T) {
	t.Run("rejects empty", func(t *testing.T) {
		err := ValidateBootstrapHash("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no default admin account")
	})

	t.Run("rejects non-bcrypt", func(t *testing.T) {
		err := ValidateBootstrapHash("plaintext-password")
		assert.Error(t, err)
	})

	t.Run("rejects hash of well-known password", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		require.NoError(t, err)
		err = ValidateBootstrapHash(string(hash))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "well-known password")
	})

	t.Run("rejects low cost", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("a-strong-enough-password"), bcrypt.MinCost)
		require.NoError(t, err)
		assert.Error(t, ValidateBootstrapHash(string(hash)))
	})

	t.Run("accepts strong hash", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("a-strong-enough-password"), bcrypt.DefaultCost)
		require.NoError(t, err)
		assert.NoError(t, ValidateBootstrapHash(string(hash)))
	})
}

func TestQueueConfig_Validate(t *testing.T) {
	valid := QueueConfigFromEnv()
	assert.NoError(t, valid.Validate())

	zeroWorkers := valid
	zeroWorkers.WorkerCount = 0
	assert.Error(t, zeroWorkers.Validate())

	tooFewSlots := valid
	tooFewSlots.MaxConcurrentDocuments = valid.WorkerCount - 1
	assert.Error(t, tooFewSlots.Validate())
}
