package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"tokensmith.app/forge/common/id"
	"tokensmith.app/forge/common/llm"
	"tokensmith.app/forge/common/logger"
	"tokensmith.app/forge/common/otel"
	"tokensmith.app/forge/core/config"
	"tokensmith.app/forge/core/db"
	"tokensmith.app/forge/internal/http/middleware"
	httprouter "tokensmith.app/forge/internal/http/router"
	"tokensmith.app/forge/internal/service"
	"tokensmith.app/forge/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "tokensmith starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	var (
		stores   *store.Stores
		txRunner service.TxRunner
	)
	if cfg.DB.Enabled() {
		database, err := db.New(ctx, cfg.DB)
		if err != nil {
			slog.ErrorContext(ctx, "failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to apply schema", "error", err)
			os.Exit(1)
		}
		stores = store.NewStores(database.Pool())
		txRunner = service.NewTxRunner(database)
		slog.InfoContext(ctx, "database connected")
	} else {
		slog.InfoContext(ctx, "database disabled, golden examples unavailable")
	}

	var cache store.GenerationCache
	if cfg.Redis.Enabled() {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
			os.Exit(1)
		}
		redisClient := redis.NewClient(redisOpts)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
			os.Exit(1)
		}
		cache = store.NewRedisGenerationCache(redisClient, cfg.Redis.KeyPrefix, cfg.Redis.TTL)
		slog.InfoContext(ctx, "redis connected", "ttl", cfg.Redis.TTL)
	}

	var llmClient llm.Client
	if cfg.GenerationLLM.Enabled() {
		llmClient, err = llm.New(ctx, llm.Config{
			Provider: cfg.GenerationLLM.Provider,
			APIKey:   cfg.GenerationLLM.APIKey,
			BaseURL:  cfg.GenerationLLM.BaseURL,
			Model:    cfg.GenerationLLM.Model,
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to create llm client", "error", err)
			os.Exit(1)
		}
		slog.InfoContext(ctx, "generation llm configured", "provider", cfg.GenerationLLM.Provider, "model", llmClient.Model())
	} else {
		slog.InfoContext(ctx, "generation llm disabled, brand systems will be scaffolded locally")
	}

	services := service.NewServices(stores, txRunner, llmClient, cache, cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      3 * time.Minute,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → RequestID tags the context → Recovery catches panics → Logger logs with both
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		AdminAPIKey:     cfg.AdminAPIKey,
		MaxRequestBytes: cfg.Export.MaxRequestBytes,
	})

	return router
}

const banner = `
╔╦╗╔═╗╦╔═╔═╗╔╗╔╔═╗╔╦╗╦╔╦╗╦ ╦
 ║ ║ ║╠╩╗║╣ ║║║╚═╗║║║║ ║ ╠═╣
 ╩ ╚═╝╩ ╩╚═╝╝╚╝╚═╝╩ ╩╩ ╩ ╩ ╩
`
