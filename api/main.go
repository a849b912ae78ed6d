package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/apm-catalog/internal/auth"
	"github.com/rogerio-castellano/apm-catalog/internal/catalog"
	"github.com/rogerio-castellano/apm-catalog/internal/client"
	"github.com/rogerio-castellano/apm-catalog/internal/config"
	"github.com/rogerio-castellano/apm-catalog/internal/db"
	api "github.com/rogerio-castellano/apm-catalog/internal/http"
	"github.com/rogerio-castellano/apm-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/apm-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/apm-catalog/internal/logging"
	"github.com/rogerio-castellano/apm-catalog/internal/models"
	"github.com/rogerio-castellano/apm-catalog/internal/redissvc"
	"github.com/rogerio-castellano/apm-catalog/internal/repo"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

// @title APM Catalog API
// @version 1.0
// @description Product catalog views over a mock catalog backend.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "", "path to a config file (defaults to ./config.yaml when present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("Could not load configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	handlers.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	auth.Configure(cfg.JWTSecret, cfg.TokenTTL)
	rl.Configure(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	go rl.StartVisitorCleanupLoop(ctx, time.Minute, 5*time.Minute)

	userRepo, closeDB := setupRepositories(ctx, cfg, logger)
	defer closeDB()

	if err := ensureEditor(userRepo, cfg); err != nil {
		logger.Fatalf("Could not create editor account: %v", err)
	}

	var cache catalog.Cache
	if cfg.RedisAddr != "" {
		rdb, err := redissvc.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		cache = redissvc.NewRedisService(rdb)
		logger.Infof("Using Redis cache at %s", cfg.RedisAddr)
	}

	catalogClient := client.NewCatalogClient(cfg.BackendURL, cfg.FetchTimeout, logger)
	store := catalog.NewStore(catalogClient, cache, logger, catalog.Options{
		PriceMarkup:         cfg.PriceMarkup,
		CacheTTL:            cfg.CacheTTL,
		SupplierConcurrency: cfg.SupplierConcurrency,
	})
	defer store.Close()
	handlers.SetCatalogStore(store)

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           api.NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down server")
		store.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Server shutdown failed: %v", err)
		}
	}()

	logger.Infof("Server running on %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(err)
	}
}

// setupRepositories wires the backend repositories to Postgres when a
// database URL is configured and to the seeded in-memory catalog otherwise.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (repo.UserRepository, func()) {
	if cfg.DatabaseURL == "" {
		handlers.SetProductRepo(repo.NewInMemoryProductRepository(repo.SeedProducts()...))
		handlers.SetCategoryRepo(repo.NewInMemoryCategoryRepository(repo.SeedCategories()...))
		handlers.SetSupplierRepo(repo.NewInMemorySupplierRepository(repo.SeedSuppliers()...))
		userRepo := repo.NewInMemoryUserRepository()
		handlers.SetUserRepo(userRepo)
		logger.Info("Using in-memory catalog")
		return userRepo, func() {}
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Could not connect to database: %v", err)
	}
	if err := db.EnsureSchema(ctx, database); err != nil {
		database.Close()
		logger.Fatalf("Could not prepare database: %v", err)
	}

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetCategoryRepo(repo.NewPostgresCategoryRepository(database))
	handlers.SetSupplierRepo(repo.NewPostgresSupplierRepository(database))
	userRepo := repo.NewPostgresUserRepository(database)
	handlers.SetUserRepo(userRepo)
	logger.Info("Using Postgres catalog")

	return userRepo, func() { closeDatabase(database, logger) }
}

func closeDatabase(database *sql.DB, logger *logrus.Logger) {
	if err := database.Close(); err != nil {
		logger.Errorf("Could not close database: %v", err)
	}
}

// ensureEditor creates the configured editor account unless it exists.
func ensureEditor(users repo.UserRepository, cfg *config.Config) error {
	hash := cfg.EditorPasswordHash
	if hash == "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.EditorPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hash = string(hashed)
	}

	_, err := users.CreateUser(models.User{
		Username:     cfg.EditorUsername,
		PasswordHash: hash,
		Role:         "editor",
	})
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return nil
	}
	return err
}
