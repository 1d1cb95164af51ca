package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/Harish120/go-commerce/internal/catalog/application"
	"github.com/Harish120/go-commerce/internal/catalog/domain"
	shared "github.com/Harish120/go-commerce/internal/shared/domain"
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
		tracer:  otel.Tracer("catalog-http"),
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/products", h.listProducts)
	r.Post("/products", h.createProduct)
	r.Get("/products/{id}", h.getProduct)
	r.Put("/products/{id}", h.updateProduct)
	r.Post("/products/{id}/publish", h.publishProduct)
}

type productReq struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	StockQuantity int     `json:"stock_quantity"`
	CategoryID    string  `json:"category_id"`
}

func (r productReq) input() application.ProductInput {
	return application.ProductInput{
		SKU:           r.SKU,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Currency:      r.Currency,
		StockQuantity: r.StockQuantity,
		CategoryID:    r.CategoryID,
	}
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ListProducts")
	defer span.End()

	var (
		products []*domain.Product
		err      error
	)
	if r.URL.Query().Get("status") == "active" {
		products, err = h.service.ListActiveProducts(ctx)
	} else {
		products, err = h.service.ListProducts(ctx)
	}
	if err != nil {
		web.WriteError(w, err)
		return
	}
	out := make([]productResp, 0, len(products))
	for _, p := range products {
		out = append(out, productJSON(p))
	}
	web.WriteJSON(w, http.StatusOK, map[string]any{"data": out})
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateProduct")
	defer span.End()

	var req productReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	product, err := h.service.CreateProduct(ctx, req.input())
	if err != nil {
		h.log.Warn("create product failed", "name", req.Name, "err", err)
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusCreated, map[string]any{"data": productJSON(product)})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetProduct")
	defer span.End()

	product, err := h.service.GetProduct(ctx, chi.URLParam(r, "id"))
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, map[string]any{"data": productJSON(product)})
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UpdateProduct")
	defer span.End()

	var req productReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	product, err := h.service.UpdateProduct(ctx, chi.URLParam(r, "id"), req.input())
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, map[string]any{"data": productJSON(product)})
}

func (h *Handler) publishProduct(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PublishProduct")
	defer span.End()

	product, err := h.service.PublishProduct(ctx, chi.URLParam(r, "id"))
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, map[string]any{"data": productJSON(product)})
}

type moneyResp struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type productResp struct {
	ID            string    `json:"id"`
	SKU           string    `json:"sku,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         moneyResp `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	Status        string    `json:"status"`
	CategoryID    string    `json:"category_id,omitempty"`
	Images        []string  `json:"images,omitempty"`
}

func productJSON(p *domain.Product) productResp {
	return productResp{
		ID:            p.ID(),
		SKU:           p.SKU(),
		Name:          p.Name(),
		Description:   p.Description(),
		Price:         moneyJSON(p.Price()),
		StockQuantity: p.StockQuantity(),
		Status:        p.Status().String(),
		CategoryID:    p.CategoryID(),
		Images:        p.Images(),
	}
}

func moneyJSON(m shared.Money) moneyResp {
	amount, _ := m.Amount().Float64()
	return moneyResp{Amount: amount, Currency: m.Currency()}
}
