package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/georgemunganga/printa-storefront/internal/modules/account"
	"github.com/georgemunganga/printa-storefront/internal/modules/bag"
	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/georgemunganga/printa-storefront/internal/modules/favorite"
	"github.com/georgemunganga/printa-storefront/internal/observability"
	"github.com/georgemunganga/printa-storefront/internal/platform/cache"
	"github.com/georgemunganga/printa-storefront/internal/platform/db"
	"github.com/georgemunganga/printa-storefront/internal/screen"
)

// Storefront is the wired application: HTTP handler plus the resources it
// holds open.
type Storefront struct {
	Handler http.Handler
	Metrics *observability.Metrics

	closers []func() error
}

// New builds every store, client and service named by cfg.
func New(ctx context.Context, cfg *Config, logger *slog.Logger) (_ *Storefront, err error) {
	s := &Storefront{Metrics: observability.NewMetrics()}
	s.Metrics.Registerer().MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	defer func() {
		if err != nil {
			_ = s.Close()
		}
	}()

	pricing, err := catalog.NewPricing(cfg.SaleDiscount)
	if err != nil {
		return nil, err
	}

	var pool *sql.DB
	if cfg.DatabaseURL != "" {
		pool, err = db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, pool.Close)
		logger.Info("connected to postgres")
	}

	store, err := s.openFavorites(ctx, cfg, pool)
	if err != nil {
		return nil, err
	}
	logger.Info("favorites store ready", slog.String("backend", cfg.FavoritesBackend))

	auth, err := newAuthenticator(ctx, cfg, pool, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("authenticator ready", slog.String("provider", cfg.AuthProvider))

	remote := catalog.InstrumentRemote(
		catalog.NewHTTPRemote(cfg.ShopAPIBaseURL, cfg.ShopAPIStore, &http.Client{Timeout: cfg.ShopAPITimeout}),
		s.Metrics,
	)
	repo := catalog.NewRepository(remote, store, pricing)

	catalogService := catalog.NewService(repo)
	bagService := bag.NewService(repo, auth)
	favoriteService := favorite.NewService(repo)
	accountService := account.NewService(auth)

	s.Handler = NewRouter(RouterParams{
		Logger:           logger,
		Config:           cfg,
		Metrics:          s.Metrics,
		CatalogHandler:   catalog.NewHandler(catalogService),
		BagHandler:       bag.NewHandler(bagService),
		FavoritesHandler: favorite.NewHandler(favoriteService),
		AccountHandler:   account.NewHandler(accountService),
		ScreenHandler:    screen.NewHandler(catalogService, bagService, favoriteService, accountService, logger),
	})
	return s, nil
}

func (s *Storefront) openFavorites(ctx context.Context, cfg *Config, pool *sql.DB) (favorite.Store, error) {
	switch cfg.FavoritesBackend {
	case BackendPostgres:
		if pool == nil {
			return nil, errors.New("postgres favorites backend needs DATABASE_URL")
		}
		store := favorite.NewPostgresStore(pool)
		if err := store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("favorites migrate: %w", err)
		}
		return store, nil
	case BackendRedis:
		client, err := cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, client.Close)
		return favorite.NewRedisStore(client, cfg.ShopAPIStore), nil
	default:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, err
		}
		store, err := favorite.NewPebbleStore(filepath.Join(cfg.DataDir, "favorites"))
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, store.Close)
		return store, nil
	}
}

func newAuthenticator(ctx context.Context, cfg *Config, pool *sql.DB, logger *slog.Logger) (account.Authenticator, error) {
	var (
		credentials account.CredentialStore
		profiles    account.ProfileStore
	)
	if pool != nil {
		store := account.NewPostgresStore(pool)
		if err := store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("accounts migrate: %w", err)
		}
		credentials, profiles = store, store
	} else {
		store := account.NewMemoryStore()
		credentials, profiles = store, store
	}

	if cfg.AuthProvider == AuthFirebase {
		return account.NewFirebaseAuthenticator(cfg.FirebaseAuthURL, cfg.FirebaseAPIKey, &http.Client{Timeout: cfg.ShopAPITimeout}, profiles), nil
	}
	return account.NewLocalAuthenticator(credentials, profiles, account.LogMailer{Logger: logger}, cfg.JWTSecret), nil
}

// Close releases stores and connections in reverse order of opening.
func (s *Storefront) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	s.closers = nil
	return errors.Join(errs...)
}
