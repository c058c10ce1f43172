package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/printa-storefront/internal/platform/httpx"
)

type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/account", func(r chi.Router) {
		r.Post("/signin", h.signIn)
		r.Post("/signup", h.signUp)
		r.Post("/password-reset", h.forgotPassword)
		r.Post("/password-reset/confirm", h.confirmPasswordReset)
		r.Post("/signout", h.signOut)
		r.Get("/me", h.me)
	})
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signUpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Nickname    string `json:"nickname" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,e164|numeric"`
}

type passwordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.Resource(w, h.service.SignIn(r.Context(), req.Email, req.Password))
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	user := User{Email: req.Email, Nickname: req.Nickname, PhoneNumber: req.PhoneNumber}
	res := h.service.SignUp(r.Context(), user, req.Password)
	if res.IsSuccess() {
		httpx.JSON(w, http.StatusCreated, res)
		return
	}
	httpx.Resource(w, res)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req passwordResetRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.Resource(w, h.service.ForgotPassword(r.Context(), req.Email))
}

type confirmResetRequest struct {
	Code     string `json:"code" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *Handler) confirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req confirmResetRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.Resource(w, h.service.ResetPassword(r.Context(), req.Code, req.Password))
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	if err := h.service.SignOut(r.Context()); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	httpx.Resource(w, h.service.GetCurrentUser(r.Context()))
}
