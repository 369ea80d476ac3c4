package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/casthive/media-store-go/internal/cache"
	"github.com/casthive/media-store-go/internal/config"
	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/handler/api"
	"github.com/casthive/media-store-go/internal/logger"
	cMiddleware "github.com/casthive/media-store-go/internal/middleware"
	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/port"
	"github.com/casthive/media-store-go/internal/renderer"
	"github.com/casthive/media-store-go/internal/repository/mariadb"
	"github.com/casthive/media-store-go/internal/resolver"
	assetSvc "github.com/casthive/media-store-go/internal/usecase/asset"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/go-sql-driver/mysql"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx, cfg.JWTSecret)

	assetRepo := mariadb.NewAssetRepository(database.DB)
	configRepo := mariadb.NewStorageConfigRepository(database.DB)

	ensureDefaultConfig(ctx, configRepo, cfg.LocalStorageRoot)

	backendResolver := resolver.New(configRepo, cfg.ResolverRefreshInterval)

	var ca port.Cache
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		logger.Warn(ctx, "⚠️  Redis not configured — caching is disabled")
	}

	saverSvc := assetSvc.NewAssetSaver(assetRepo, backendResolver)
	r.Post("/assets/cover_art", api.UploadAssetHandler(model.AssetKindCoverArt, saverSvc))
	r.Post("/assets/episode_audio", api.UploadAssetHandler(model.AssetKindEpisodeAudio, saverSvc))

	getterSvc := assetSvc.NewAssetGetter(assetRepo)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.With(cMiddleware.WithAssetID()).
		Get("/assets/{id}", api.GetAssetHandler(rendererSvc, getterSvc))

	deleterSvc := assetSvc.NewAssetDeleter(assetRepo, backendResolver, ca)
	r.With(cMiddleware.WithAssetID()).
		Delete("/assets/{id}", api.DeleteAssetHandler(deleterSvc))

	replacerSvc := assetSvc.NewAudioReplacer(assetRepo, saverSvc, deleterSvc)
	r.With(cMiddleware.WithAssetID()).
		Put("/assets/{id}/file", api.ReplaceAudioHandler(replacerSvc))

	streamerSvc := assetSvc.NewAssetStreamer(assetRepo, backendResolver)
	r.Get("/media/{category}/{filename}", api.StreamMediaHandler(streamerSvc))

	r.Get("/admin/storage-configs", api.ListStorageConfigsHandler(configRepo))
	r.Post("/admin/storage-configs", api.CreateStorageConfigHandler(configRepo, backendResolver))
	r.With(cMiddleware.WithAssetID()).
		Post("/admin/storage-configs/{id}/activate", api.ActivateStorageConfigHandler(configRepo, backendResolver))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context, jwtSecret string) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithAuth(jwtSecret))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

// ensureDefaultConfig seeds an active local-disk config on first boot so
// a fresh deployment can accept uploads before an admin touches anything.
func ensureDefaultConfig(ctx context.Context, repo port.StorageConfigRepository, localRoot string) {
	_, err := repo.GetActive(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, sql.ErrNoRows) {
		logger.Errorf(ctx, "❌  Failed to look up active storage config: %v", err)
		os.Exit(1)
	}

	cfg := &model.StorageConfig{
		Name:        "default-local",
		BackendKind: model.BackendKindLocal,
		LocalRoot:   &localRoot,
	}
	if err := repo.Create(ctx, cfg); err != nil {
		logger.Errorf(ctx, "❌  Failed to seed default storage config: %v", err)
		os.Exit(1)
	}
	if err := repo.Activate(ctx, cfg.ID); err != nil {
		logger.Errorf(ctx, "❌  Failed to activate default storage config: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "✅  Seeded default local storage config rooted at %s", localRoot)
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
