package main

import (
	"chat-circle/auth"
	"chat-circle/infrastructure/http/server"
	"chat-circle/internal"
	"chat-circle/moderation"
	"chat-circle/observability"
	"chat-circle/repositories"
	"chat-circle/runtime/workers"
	"chat-circle/search"
	"chat-circle/services"
	"chat-circle/storage"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	goruntime "runtime"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and owns the server lifecycle, so deferred cleanups
// execute before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB) and full-text index
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	index, err := search.Open(config.BlugeFilepath, log)
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() { _ = index.Close() }()

	metrics := observability.NewMetrics()
	store := storage.NewStore(db, log,
		storage.WithObserver(metrics),
		storage.WithChangeFeedBuffer(config.ChangeFeedSize))
	blobs := storage.NewBlobStore(db, log, config.PublicURL+"/blobs", config.MaxBlobSize)

	// 3. Moderation
	dictionary, err := moderation.LoadDictionary()
	if err != nil {
		return fmt.Errorf("censored words loading failed: %w", err)
	}
	censorChar, err := internal.CharacterRune(config.CensorCharacter)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	moderator, err := moderation.NewModerator(dictionary.Words, censorChar, log)
	if err != nil {
		return fmt.Errorf("moderator creation failed: %w", err)
	}
	log.Info("Censored words loaded", "words", len(dictionary.Words), "languages", dictionary.Languages)

	// 4. Repositories & services
	users := repositories.NewUserRepository(store)
	unread := repositories.NewUnreadRepository(store)
	groups := repositories.NewGroupRepository(store, log)
	messages := repositories.NewMessageRepository(store, log)
	gate := services.NewSessionGate()

	authService := services.NewAuthService(
		repositories.NewAccountRepository(db),
		users,
		repositories.NewRevocationRepository(db),
		blobs,
		auth.NewTokenIssuer(config.JWTSecret, config.TokenDuration),
		gate,
		log,
	)
	profileService := services.NewProfileService(users, unread, blobs, log)
	chatService := services.NewChatService(users, groups, messages, unread, blobs,
		moderation.NewSanitizer(moderator, log), index, metrics, log)
	groupService := services.NewGroupService(groups, users, unread, log)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Background workers
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewIndexerWorker(store.Changes(), index, log),
		workers.NewHeartbeatWorker(log, config.MetricInterval, metrics,
			store.ActiveSubscriptions, goruntime.NumGoroutine),
	)
	supervised := make(chan struct{})
	go func() {
		defer close(supervised)
		sup.Run(ctx)
	}()

	// 7. HTTP server
	api := server.NewServer(authService, profileService, chatService, groupService,
		gate, blobs, metrics, metrics.Handler(), config.MaxBlobSize, log).
		WithAuthRateLimit(config.AuthRateLimit, config.AuthBurst)
	if config.EnableInspector {
		api.WithInspector(internal.InspectHandler(db, func() map[string]any {
			return map[string]any{
				"Subscriptions": store.ActiveSubscriptions(),
				"Goroutines":    goruntime.NumGoroutine(),
				"Time":          time.Now().Format(time.RFC822),
			}
		}))
	}
	httpServer := &http.Server{
		Addr:              config.Address(),
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 8. gRPC health
	listener, err := net.Listen("tcp", config.HealthAddress())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", config.HealthAddress(), err)
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	errChan := make(chan error, 2)
	go func() {
		log.Info("Starting HTTP server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()
	go func() {
		log.Info("Starting gRPC health server", "address", config.HealthAddress())
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 9. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		stop()
		<-supervised
		return err
	}

	// 10. Final Cleanup
	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "error", err)
	}
	grpcServer.GracefulStop()
	sup.Stop()
	<-supervised
	log.Info("Program stopped cleanly")

	return nil
}
