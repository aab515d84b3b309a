//	@title			Cloud Uploader API
//	@version		1.0
//	@description	HTTP relay that streams browser multipart uploads into an S3 bucket, tracks completion state in Redis, and pushes upload events to Pusher subscribers.
//
//	@host		localhost:5000
//	@BasePath	/

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/dtmtec/cloud-uploader/internal/config"
	"github.com/dtmtec/cloud-uploader/internal/keyvalue"
	appMiddleware "github.com/dtmtec/cloud-uploader/internal/middleware"
	"github.com/dtmtec/cloud-uploader/internal/notify"
	"github.com/dtmtec/cloud-uploader/internal/status"
	"github.com/dtmtec/cloud-uploader/internal/storage"
	"github.com/dtmtec/cloud-uploader/internal/upload"

	_ "github.com/dtmtec/cloud-uploader/docs/swagger"
)

func main() {
	cfg := config.Load()

	kv, err := newKeyValueStore(cfg.RedisURL)
	if err != nil {
		log.Fatalf("key-value store init failed: %v", err)
	}

	store, err := storage.NewMinioStorage(
		cfg.S3Endpoint,
		cfg.AWSKey,
		cfg.AWSSecret,
		cfg.AWSRegion,
		cfg.Bucket,
		cfg.UseSSL,
	)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	// Wire dependencies: capabilities → orchestrator → handler
	statusStore := status.NewStore(kv)
	svc := upload.NewService(cfg, store, statusStore, newNotifier(cfg))
	handler := upload.NewHandler(svc, statusStore)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(cfg.IsDevelopment()))
	r.Use(chiMiddleware.Recoverer)
	r.Use(appMiddleware.Headers(cfg.AllowOrigin, cfg.AllowMethods))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowOrigin},
		AllowedMethods: strings.Split(cfg.AllowMethods, ", "),
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI — available at http://localhost:5000/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	handler.Routes(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
		// slow multipart bodies need a generous read window; a truncated
		// body is ended here rather than by the handlers
		ReadTimeout:  15 * time.Minute,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	// let in-flight storage transfers settle before closing the store
	svc.Wait()

	if closer, ok := kv.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Printf("closing key-value store: %v", err)
		}
	}

	log.Println("server stopped")
}

// newKeyValueStore picks the status-cache backend: Redis in production,
// the in-process store when REDIS_URL is memory:// (local development).
func newKeyValueStore(rawURL string) (keyvalue.Store, error) {
	if rawURL == "memory://" {
		log.Println("REDIS_URL is memory://, upload status is not shared between instances")
		return keyvalue.NewMemoryStore(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return keyvalue.NewRedisStore(ctx, rawURL)
}

func newNotifier(cfg *config.Config) notify.Notifier {
	if cfg.PusherAppID != "" && cfg.PusherKey != "" && cfg.PusherSecret != "" {
		return notify.NewPusherNotifier(cfg.PusherAppID, cfg.PusherKey, cfg.PusherSecret, cfg.PusherCluster)
	}
	log.Println("PUSHER_APP_ID, PUSHER_KEY and PUSHER_SECRET are not set, pusher feature will not be available")
	return notify.NewLogNotifier()
}
