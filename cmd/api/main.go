package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"herald/internal/config"
	"herald/internal/infra/adapter/persistence/mongodb"
	"herald/internal/infra/db"
	"herald/internal/infra/feed"
	"herald/internal/observability/logging"
	"herald/internal/observability/tracing"

	artUC "herald/internal/usecase/article"
	bnUC "herald/internal/usecase/breakingnews"
	dashUC "herald/internal/usecase/dashboard"

	hhttp "herald/internal/handler/http"
	harticle "herald/internal/handler/http/article"
	hbreaking "herald/internal/handler/http/breaking"
	hdashboard "herald/internal/handler/http/dashboard"
	"herald/internal/handler/http/middleware"
	"herald/internal/handler/http/requestid"

	_ "herald/docs" // swagger docs
)

// @title           Herald Newsroom API
// @version         1.0
// @description     ニュースサイトの記事・速報ティッカー・管理画面集計を提供する REST API

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	// .env は任意。存在しなければ環境変数のみを使う
	_ = godotenv.Load()

	serverCfg, err := config.LoadServerConfig()
	if err != nil {
		slog.Error("failed to load server configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := initLogger(serverCfg.LogLevel)

	store := initStore(logger)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			logger.Error("failed to close store", slog.Any("error", err))
		}
	}()

	shutdownTracing := tracing.Setup("herald-api", serverCfg.Version)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, store, serverCfg)
	runServer(logger, handler, serverCfg)
}

// initLogger initializes the JSON logger and installs it as the default.
func initLogger(level string) *slog.Logger {
	logger := logging.NewLogger(os.Stdout, level)
	slog.SetDefault(logger)
	return logger
}

// initStore connects to MongoDB and ensures indexes. A missing or unreachable
// store is fatal; an index failure is logged and tolerated.
func initStore(logger *slog.Logger) *db.Store {
	cfg, err := config.LoadStoreConfig()
	if err != nil {
		logger.Error("failed to load store configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	store, err := db.Open(ctx, cfg)
	if err != nil {
		logger.Error("failed to open store", slog.Any("error", err))
		os.Exit(1)
	}

	if err := mongodb.EnsureIndexes(ctx,
		store.Collection(db.ArticlesCollection),
		store.Collection(db.BreakingNewsCollection),
	); err != nil {
		// 既存データに重複スラッグがあると一意インデックスは作れない
		logger.Warn("failed to ensure indexes", slog.Any("error", err))
	}

	logger.Info("store connected", slog.String("database", cfg.Database))
	return store
}

// setupServer wires repositories, use cases and routes, and returns the
// handler wrapped in the middleware chain.
func setupServer(logger *slog.Logger, store *db.Store, cfg *config.ServerConfig) http.Handler {
	articleRepo := mongodb.NewArticleRepo(store.Collection(db.ArticlesCollection), store.OpTimeout())
	breakingRepo := mongodb.NewBreakingNewsRepo(store.Collection(db.BreakingNewsCollection), store.OpTimeout())

	artSvc := &artUC.Service{Repo: articleRepo}
	bnSvc := &bnUC.Service{
		Repo: breakingRepo,
		Feed: feed.NewWireParser(&http.Client{Timeout: 30 * time.Second}),
	}
	dashSvc := &dashUC.Service{Repo: articleRepo}

	mux := http.NewServeMux()
	mux.Handle("GET /health", &hhttp.HealthHandler{Store: store, Version: cfg.Version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Store: store})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	harticle.Register(mux, artSvc)
	hbreaking.Register(mux, bnSvc)
	hdashboard.Register(mux, dashSvc)

	return applyMiddleware(logger, mux, cfg)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: CORS → Request ID → Recovery → Tracing → Logging → Body Limit → Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler, cfg *config.ServerConfig) http.Handler {
	corsConfig := middleware.DefaultCORSConfig(cfg.AllowedOrigins)
	if len(corsConfig.AllowedOrigins) == 0 {
		logger.Warn("CORS_ALLOWED_ORIGINS is empty; cross-origin requests will not receive CORS headers")
	} else {
		logger.Info("CORS enabled",
			slog.Any("allowed_origins", corsConfig.AllowedOrigins),
			slog.Any("allowed_methods", corsConfig.AllowedMethods),
			slog.Int("max_age", corsConfig.MaxAge))
	}

	return hhttp.Chain(handler,
		middleware.CORS(corsConfig),
		requestid.Middleware,
		hhttp.Recover(logger),
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.LimitRequestBody(cfg.MaxBodyBytes),
		hhttp.MetricsMiddleware,
	)
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, cfg *config.ServerConfig) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris 対策
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
