package bag

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/georgemunganga/printa-storefront/internal/platform/httpx"
)

type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/bag", func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/count", h.count)
		r.Post("/", h.add)
		r.Delete("/", h.clear)
		r.Delete("/{id}", h.remove)
	})
}

type addToBagRequest struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	httpx.Resource(w, h.service.GetBagProducts(r.Context()))
}

func (h *Handler) count(w http.ResponseWriter, r *http.Request) {
	httpx.Resource(w, h.service.GetBagProductsCount(r.Context()))
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req addToBagRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.Resource(w, h.service.AddToBag(r.Context(), catalog.Product{ID: req.ProductID}))
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := catalog.ParseProductID(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.Resource(w, h.service.DeleteFromBag(r.Context(), id))
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	httpx.Resource(w, h.service.ClearBag(r.Context()))
}
