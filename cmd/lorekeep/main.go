// Lorekeep server — hosts the admin and chat HTTP APIs, runs the document
// ingestion worker pool, and coordinates index versioning across replicas.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/lorekeep/lorekeep/ent/adminuser"
	"github.com/lorekeep/lorekeep/pkg/api"
	"github.com/lorekeep/lorekeep/pkg/bus"
	"github.com/lorekeep/lorekeep/pkg/chat"
	"github.com/lorekeep/lorekeep/pkg/cleanup"
	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/pkg/database"
	"github.com/lorekeep/lorekeep/pkg/graphstore"
	"github.com/lorekeep/lorekeep/pkg/ingest"
	"github.com/lorekeep/lorekeep/pkg/llm"
	"github.com/lorekeep/lorekeep/pkg/queue"
	"github.com/lorekeep/lorekeep/pkg/retrieval"
	"github.com/lorekeep/lorekeep/pkg/services"
	"github.com/lorekeep/lorekeep/pkg/storage"
	"github.com/lorekeep/lorekeep/pkg/vectorstore"
	"github.com/lorekeep/lorekeep/pkg/version"
)

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// bootstrapAdmin ensures the configured admin account exists. The password
// hash arrives pre-computed from the environment (validated at config load),
// so re-running on every boot is cheap and keeps the hash in sync with the
// deployment secret.
func bootstrapAdmin(ctx context.Context, dbClient *database.Client, cfg config.AdminConfig) error {
	existing, err := dbClient.AdminUser.Query().
		Where(adminuser.Email(cfg.BootstrapEmail)).
		Only(ctx)
	if err == nil {
		if existing.PasswordHash == cfg.BootstrapPasswordHash {
			return nil
		}
		return existing.Update().
			SetPasswordHash(cfg.BootstrapPasswordHash).
			Exec(ctx)
	}

	return dbClient.AdminUser.Create().
		SetID(uuid.New().String()).
		SetEmail(cfg.BootstrapEmail).
		SetPasswordHash(cfg.BootstrapPasswordHash).
		Exec(ctx)
}

func main() {
	envPath := flag.String("env-file", ".env", "Path to optional .env file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envPath)
	}

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(config.ExitConfigInvalid)
	}
	slog.Info("Starting lorekeep",
		"version", version.Full(),
		"pod_id", podID,
		"http_port", cfg.HTTP.Port)

	// 2. Database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(config.ExitConfigInvalid)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(config.ExitMigration)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Progress/cancellation bus
	eventBus, err := bus.New(ctx, cfg.Redis)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(config.ExitConfigInvalid)
	}
	defer func() {
		if err := eventBus.Close(); err != nil {
			slog.Error("Error closing bus", "error", err)
		}
	}()

	// 4. Stores
	vectors, err := vectorstore.New(cfg.Qdrant, cfg.LLM.EmbeddingDim)
	if err != nil {
		slog.Error("Failed to connect to Qdrant", "error", err)
		os.Exit(config.ExitConfigInvalid)
	}
	defer func() {
		if err := vectors.Close(); err != nil {
			slog.Error("Error closing vector store", "error", err)
		}
	}()

	graphs, err := graphstore.New(ctx, cfg.Neo4j)
	if err != nil {
		slog.Error("Failed to connect to Neo4j", "error", err)
		os.Exit(config.ExitConfigInvalid)
	}
	defer func() {
		if err := graphs.Close(ctx); err != nil {
			slog.Error("Error closing graph store", "error", err)
		}
	}()

	files, err := storage.New(cfg.Storage.Root, cfg.Storage.MaxDocumentBytes)
	if err != nil {
		slog.Error("Failed to initialize file storage", "error", err)
		os.Exit(config.ExitConfigInvalid)
	}
	slog.Info("Stores initialized", "storage_root", cfg.Storage.Root)

	// 5. LLM gateway. An unreachable endpoint is not fatal: documents queue
	// up and per-stage retries pick them up once the endpoint recovers.
	gateway := llm.NewGateway(cfg.LLM)
	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	if err := gateway.Ping(pingCtx); err != nil {
		slog.Warn("LLM endpoint unreachable at startup, continuing",
			"base_url", cfg.LLM.BaseURL, "error", err)
	} else {
		slog.Info("LLM endpoint reachable", "model", cfg.LLM.Model)
	}
	pingCancel()

	// 6. Bootstrap admin account
	if err := bootstrapAdmin(ctx, dbClient, cfg.Admin); err != nil {
		slog.Error("Failed to bootstrap admin account", "error", err)
		os.Exit(config.ExitConfigInvalid)
	}

	// 7. One-time startup orphan requeue for documents this pod abandoned
	if err := queue.RequeueStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to requeue startup orphans", "error", err)
		// Non-fatal — the stale-claim sweeper catches them later
	}

	// 8. Domain services
	versionService := services.NewVersionService(dbClient.Client, vectors, graphs, files)
	chatbotService := services.NewChatbotService(dbClient.Client, versionService)
	documentService := services.NewDocumentService(dbClient.Client, files, vectors, graphs, eventBus, versionService)
	statsService := services.NewStatsService(dbClient.Client)

	retriever := retrieval.New(gateway, vectors, graphs, cfg.Retrieval)
	streamer := chat.NewStreamer(dbClient.Client, retriever, gateway, eventBus, cfg.Chat)
	sessionService := services.NewSessionService(dbClient.Client, chatbotService, streamer, eventBus, cfg.Chat)
	slog.Info("Services initialized")

	// 9. Ingestion pipeline + worker pool (before HTTP server, so claimed
	// documents make progress even while the listener is still binding)
	orchestrator := ingest.NewOrchestrator(
		dbClient,
		eventBus,
		gateway,
		vectors,
		ingest.NewGraphBuilder(graphs),
		ingest.NewExtractor(gateway),
		cfg.Ingest,
		versionService,
	)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, &cfg.Queue, orchestrator)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(config.ExitConfigInvalid)
	}

	// 10. Background janitor
	janitor := cleanup.NewService(cfg.Cleanup, dbClient.Client, sessionService, versionService, eventBus)
	janitor.Start(ctx)

	// 11. HTTP server (non-blocking)
	httpServer := api.NewServer(dbClient, workerPool,
		chatbotService, documentService, versionService, sessionService, statsService, cfg)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Lorekeep started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: janitor first (cheap), then workers (bounded by
	// the queue timeout), then the HTTP listener.
	janitor.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — in-flight documents will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
