package favorite

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/georgemunganga/printa-storefront/internal/platform/httpx"
)

type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/favorites", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.add)
		r.Delete("/", h.clear)
		r.Delete("/{id}", h.remove)
	})
}

type addFavoriteRequest struct {
	ID          int      `json:"id" validate:"required,gt=0"`
	Category    string   `json:"category"`
	Count       int      `json:"count"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	ImageTwo    string   `json:"imageTwo"`
	ImageThree  string   `json:"imageThree"`
	Price       float64  `json:"price" validate:"gte=0"`
	Rate        float64  `json:"rate"`
	Title       string   `json:"title" validate:"required"`
	SaleState   int      `json:"saleState" validate:"oneof=0 1"`
	SalePrice   *float64 `json:"salePrice"`
}

func (req addFavoriteRequest) product() catalog.Product {
	return catalog.Product{
		ID: req.ID, Category: req.Category, Count: req.Count, Description: req.Description,
		Image: req.Image, ImageTwo: req.ImageTwo, ImageThree: req.ImageThree,
		Price: req.Price, Rate: req.Rate, Title: req.Title, SaleState: req.SaleState,
		SalePrice: req.SalePrice,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	httpx.Resource(w, h.service.GetFavorites(r.Context()))
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req addFavoriteRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.AddToFavorites(r.Context(), req.product()); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := catalog.ParseProductID(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.DeleteFromFavorites(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearFavorites(r.Context()); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
