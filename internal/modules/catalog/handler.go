package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/printa-storefront/internal/platform/httpx"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/sale", h.listSaleProducts)
		r.Get("/products/search", h.searchProducts)
		r.Get("/categories", h.listCategories)
		r.Get("/categories/{category}/products", h.listCategoryProducts)
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	httpx.Resource(w, h.service.GetProducts(r.Context()))
}

func (h *Handler) listSaleProducts(w http.ResponseWriter, r *http.Request) {
	httpx.Resource(w, h.service.GetSaleProducts(r.Context()))
}

func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	httpx.Resource(w, h.service.SearchProduct(r.Context(), r.URL.Query().Get("q")))
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	httpx.Resource(w, h.service.GetCategories(r.Context()))
}

func (h *Handler) listCategoryProducts(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	httpx.Resource(w, h.service.GetProductsByCategory(r.Context(), category))
}
