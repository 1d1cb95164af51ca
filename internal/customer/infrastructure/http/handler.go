package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/Harish120/go-commerce/internal/customer/application"
	"github.com/Harish120/go-commerce/internal/customer/domain"
	"github.com/Harish120/go-commerce/internal/web"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("customer-http"),
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/customers", h.createCustomer)
	r.Get("/customers/{id}", h.getCustomer)
}

type createCustomerReq struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateCustomer")
	defer span.End()

	var req createCustomerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	customer, err := h.service.CreateCustomer(ctx, application.CustomerInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		h.log.Warn("create customer failed", "email", req.Email, "err", err)
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusCreated, map[string]any{"data": customerJSON(customer)})
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetCustomer")
	defer span.End()

	customer, err := h.service.GetCustomer(ctx, chi.URLParam(r, "id"))
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, map[string]any{"data": customerJSON(customer)})
}

type customerResp struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Active    bool   `json:"active"`
}

func customerJSON(c *domain.Customer) customerResp {
	return customerResp{
		ID:        c.ID(),
		Email:     c.Email(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Phone:     c.Phone(),
		Active:    c.IsActive(),
	}
}
