package screen

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/printa-storefront/internal/modules/account"
	"github.com/georgemunganga/printa-storefront/internal/modules/bag"
	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/georgemunganga/printa-storefront/internal/modules/favorite"
	"github.com/georgemunganga/printa-storefront/internal/resource"
)

// Handler streams screen state as server-sent events. Each request opens
// the screen, runs one action and ends after its terminal emission.
type Handler struct {
	catalog   catalog.Service
	bag       bag.Service
	favorites favorite.Service
	account   account.Service
	logger    *slog.Logger
}

func NewHandler(c catalog.Service, b bag.Service, f favorite.Service, a account.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{catalog: c, bag: b, favorites: f, account: a, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/screens", func(r chi.Router) {
		r.Get("/search/events", h.searchEvents)
		r.Get("/products/events", h.productEvents)
		r.Get("/bag/events", h.bagEvents)
		r.Get("/favorites/events", h.favoriteEvents)
		r.Get("/profile/events", h.profileEvents)
	})
}

func (h *Handler) searchEvents(w http.ResponseWriter, r *http.Request) {
	s := NewSearch(r.Context(), h.logger, h.catalog)
	defer s.Close()
	query := r.URL.Query().Get("q")
	stream(w, r, s.Results, func() { s.SearchProduct(query) })
}

func (h *Handler) productEvents(w http.ResponseWriter, r *http.Request) {
	s := NewCategoryProducts(r.Context(), h.logger, h.catalog)
	defer s.Close()
	category := r.URL.Query().Get("category")
	stream(w, r, s.Products, func() {
		if category == "" {
			s.GetProducts()
			return
		}
		s.GetProductsByCategory(category)
	})
}

func (h *Handler) bagEvents(w http.ResponseWriter, r *http.Request) {
	s := NewBag(r.Context(), h.logger, h.bag)
	defer s.Close()
	stream(w, r, s.Products, s.GetBagProducts)
}

func (h *Handler) favoriteEvents(w http.ResponseWriter, r *http.Request) {
	s := NewFavorites(r.Context(), h.logger, h.favorites)
	defer s.Close()
	stream(w, r, s.Products, s.GetFavorites)
}

// profileEvents streams the lookup the profile screen starts on its own.
func (h *Handler) profileEvents(w http.ResponseWriter, r *http.Request) {
	s := NewProfile(r.Context(), h.logger, h.account)
	defer s.Close()
	stream(w, r, s.CurrentUser, nil)
}

// stream subscribes to live, triggers start and writes every emission up to
// the first terminal one. With a nil start the action is already running and
// the current value is written first.
func stream[T any](w http.ResponseWriter, r *http.Request, live *Live[resource.Resource[T]], start func()) {
	events, cancel := live.Subscribe(8)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	rc := http.NewResponseController(w)

	write := func(res resource.Resource[T]) bool {
		raw, err := json.Marshal(res)
		if err != nil {
			return false
		}
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", res.Status(), raw)
		_ = rc.Flush()
		return !res.IsTerminal()
	}

	if start != nil {
		start()
	} else if !write(live.Value()) {
		return
	}
	for {
		select {
		case <-r.Context().Done():
			return
		case res, ok := <-events:
			if !ok || !write(res) {
				return
			}
		}
	}
}
