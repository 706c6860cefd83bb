// Package config loads and validates application configuration from the
// environment. Every tunable has a default; only credentials and endpoint
// URLs are required.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Exit codes for main. Zero is a normal stop.
const (
	ExitOK             = 0
	ExitConfigInvalid  = 1
	ExitMigration      = 2
	ExitLLMUnreachable = 3 // soft: logged, boot continues with retries
)

// Config is the root application configuration.
type Config struct {
	HTTP      HTTPConfig
	LLM       LLMConfig
	Retrieval RetrievalConfig
	Ingest    IngestConfig
	Chat      ChatConfig
	Queue     QueueConfig
	Cleanup   CleanupConfig
	Redis     RedisConfig
	Qdrant    QdrantConfig
	Neo4j     Neo4jConfig
	Storage   StorageConfig
	Admin     AdminConfig
}

// HTTPConfig controls the public HTTP listener.
type HTTPConfig struct {
	Host string
	Port int
}

// LLMConfig configures the chat and embedding endpoints. Both speak the
// OpenAI-compatible wire protocol.
type LLMConfig struct {
	BaseURL          string
	Model            string
	APIKey           string
	EmbeddingBaseURL string
	EmbeddingModel   string
	EmbeddingDim     int
	Concurrency      int
	RequestTimeout   time.Duration
}

// RetrievalConfig tunes the hybrid retriever.
type RetrievalConfig struct {
	TopK                 int
	VectorScoreThreshold float64
	MaxHops              int
	EdgeScoreThreshold   float64
	MaxGraphNodes        int
	ContextTokenBudget   int
	VectorTimeout        time.Duration
	GraphTimeout         time.Duration
}

// IngestConfig tunes the document pipeline.
type IngestConfig struct {
	ChunkSize        int
	ChunkOverlap     int
	MaxRetries       int
	RetryBaseBackoff time.Duration
	StageTimeout     time.Duration
}

// ChatConfig tunes the public chat surface.
type ChatConfig struct {
	SessionTTL      time.Duration
	HistoryTurns    int
	MaxMessageChars int
}

// CleanupConfig tunes the background janitor.
type CleanupConfig struct {
	Interval     time.Duration
	SessionGrace time.Duration
}

// RedisConfig configures the progress/cancellation bus.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// QdrantConfig configures the vector store connection.
type QdrantConfig struct {
	Host   string
	Port   int
	APIKey string
	UseTLS bool
}

// Neo4jConfig configures the graph store connection.
type Neo4jConfig struct {
	URI      string
	Username string
	Password string
}

// StorageConfig controls uploaded file storage.
type StorageConfig struct {
	Root             string
	MaxDocumentBytes int64
}

// AdminConfig holds the bootstrap admin account and API auth settings.
type AdminConfig struct {
	BootstrapEmail        string
	BootstrapPasswordHash string
	APIToken              string
	RateLimitPerMinute    int
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		HTTP: HTTPConfig{
			Host: envOr("HTTP_HOST", "0.0.0.0"),
			Port: envInt("HTTP_PORT", 8080),
		},
		LLM: LLMConfig{
			BaseURL:          os.Getenv("LLM_BASE_URL"),
			Model:            envOr("LLM_MODEL", "qwen3-14b"),
			APIKey:           envOr("LLM_API_KEY", "not-needed"),
			EmbeddingBaseURL: os.Getenv("EMBEDDING_BASE_URL"),
			EmbeddingModel:   envOr("EMBEDDING_MODEL", "bge-m3"),
			EmbeddingDim:     envInt("EMBEDDING_DIM", 1024),
			Concurrency:      envInt("LLM_CONCURRENCY", 2),
			RequestTimeout:   envDuration("LLM_REQUEST_TIMEOUT", 120*time.Second),
		},
		Retrieval: RetrievalConfig{
			TopK:                 envInt("TOP_K", 8),
			VectorScoreThreshold: envFloat("VECTOR_SCORE_THRESHOLD", 0.7),
			MaxHops:              envInt("MAX_HOPS", 2),
			EdgeScoreThreshold:   envFloat("EDGE_SCORE_THRESHOLD", 0.7),
			MaxGraphNodes:        envInt("MAX_GRAPH_NODES", 20),
			ContextTokenBudget:   envInt("CONTEXT_TOKEN_BUDGET", 3000),
			VectorTimeout:        envDuration("VECTOR_TIMEOUT", 5*time.Second),
			GraphTimeout:         envDuration("GRAPH_TIMEOUT", 10*time.Second),
		},
		Ingest: IngestConfig{
			ChunkSize:        envInt("CHUNK_SIZE", 1000),
			ChunkOverlap:     envInt("CHUNK_OVERLAP", 200),
			MaxRetries:       envInt("INGEST_MAX_RETRIES", 3),
			RetryBaseBackoff: envDuration("INGEST_RETRY_BACKOFF", 60*time.Second),
			StageTimeout:     envDuration("INGEST_STAGE_TIMEOUT", 15*time.Minute),
		},
		Chat: ChatConfig{
			SessionTTL:      time.Duration(envInt("SESSION_TTL_MIN", 30)) * time.Minute,
			HistoryTurns:    envInt("HISTORY_TURNS", 10),
			MaxMessageChars: envInt("MAX_MESSAGE_CHARS", 10000),
		},
		Queue: QueueConfigFromEnv(),
		Cleanup: CleanupConfig{
			Interval:     envDuration("CLEANUP_INTERVAL", 10*time.Minute),
			SessionGrace: envDuration("SESSION_PURGE_GRACE", 24*time.Hour),
		},
		Redis: RedisConfig{
			Addr:     envOr("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
		},
		Qdrant: QdrantConfig{
			Host:   envOr("QDRANT_HOST", "localhost"),
			Port:   envInt("QDRANT_PORT", 6334),
			APIKey: os.Getenv("QDRANT_API_KEY"),
			UseTLS: envBool("QDRANT_USE_TLS", false),
		},
		Neo4j: Neo4jConfig{
			URI:      envOr("NEO4J_URI", "bolt://localhost:7687"),
			Username: envOr("NEO4J_USER", "neo4j"),
			Password: os.Getenv("NEO4J_PASSWORD"),
		},
		Storage: StorageConfig{
			Root:             envOr("STORAGE_ROOT", "/var/lib/lorekeep/uploads"),
			MaxDocumentBytes: envInt64("MAX_DOCUMENT_BYTES", 104857600),
		},
		Admin: AdminConfig{
			BootstrapEmail:        os.Getenv("ADMIN_BOOTSTRAP_EMAIL"),
			BootstrapPasswordHash: os.Getenv("ADMIN_BOOTSTRAP_PASSWORD_HASH"),
			APIToken:              os.Getenv("ADMIN_API_TOKEN"),
			RateLimitPerMinute:    envInt("RATE_LIMIT_PER_MINUTE", 60),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required values and cross-field constraints.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT out of range: %d", c.HTTP.Port)
	}
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("LLM_BASE_URL is required")
	}
	if c.LLM.EmbeddingBaseURL == "" {
		return fmt.Errorf("EMBEDDING_BASE_URL is required")
	}
	if c.LLM.EmbeddingDim <= 0 {
		return fmt.Errorf("EMBEDDING_DIM must be positive, got %d", c.LLM.EmbeddingDim)
	}
	if c.LLM.Concurrency <= 0 {
		return fmt.Errorf("LLM_CONCURRENCY must be positive, got %d", c.LLM.Concurrency)
	}
	if c.Retrieval.TopK <= 0 {
		return fmt.Errorf("TOP_K must be positive, got %d", c.Retrieval.TopK)
	}
	if c.Retrieval.VectorScoreThreshold < 0 || c.Retrieval.VectorScoreThreshold > 1 {
		return fmt.Errorf("VECTOR_SCORE_THRESHOLD must be in [0,1], got %v", c.Retrieval.VectorScoreThreshold)
	}
	if c.Ingest.ChunkOverlap >= c.Ingest.ChunkSize {
		return fmt.Errorf("CHUNK_OVERLAP (%d) must be smaller than CHUNK_SIZE (%d)",
			c.Ingest.ChunkOverlap, c.Ingest.ChunkSize)
	}
	if c.Storage.MaxDocumentBytes <= 0 {
		return fmt.Errorf("MAX_DOCUMENT_BYTES must be positive, got %d", c.Storage.MaxDocumentBytes)
	}
	if c.Admin.BootstrapEmail == "" || !strings.Contains(c.Admin.BootstrapEmail, "@") {
		return fmt.Errorf("ADMIN_BOOTSTRAP_EMAIL is required and must be an email address")
	}
	if err := ValidateBootstrapHash(c.Admin.BootstrapPasswordHash); err != nil {
		return err
	}
	if c.Admin.APIToken == "" {
		return fmt.Errorf("ADMIN_API_TOKEN is required")
	}
	return c.Queue.Validate()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
