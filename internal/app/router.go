package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/georgemunganga/printa-storefront/internal/modules/account"
	"github.com/georgemunganga/printa-storefront/internal/modules/bag"
	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/georgemunganga/printa-storefront/internal/modules/favorite"
	"github.com/georgemunganga/printa-storefront/internal/observability"
	"github.com/georgemunganga/printa-storefront/internal/platform/httpx"
	"github.com/georgemunganga/printa-storefront/internal/screen"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	Metrics          *observability.Metrics
	CatalogHandler   *catalog.Handler
	BagHandler       *bag.Handler
	FavoritesHandler *favorite.Handler
	AccountHandler   *account.Handler
	ScreenHandler    *screen.Handler
}

// NewRouter constructs the chi.Router with storefront defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())

	params.CatalogHandler.RegisterRoutes(r)
	params.BagHandler.RegisterRoutes(r)
	params.FavoritesHandler.RegisterRoutes(r)
	params.ScreenHandler.RegisterRoutes(r)
	params.AccountHandler.RegisterRoutes(r.With(httprate.LimitByIP(params.Config.RateLimitPerMinute, time.Minute)))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Problem(w, http.StatusNotFound, "no route for "+r.URL.Path)
	})
	return r
}
