package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/Harish120/go-commerce/internal/ordering/application"
	"github.com/Harish120/go-commerce/internal/ordering/domain"
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
		tracer:  otel.Tracer("ordering-http"),
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/orders", h.createOrder)
	r.Get("/orders/{id}", h.getOrder)
	r.Post("/orders/{id}/confirm", h.confirmOrder)
	r.Get("/customers/{id}/orders", h.listCustomerOrders)
}

type orderLineReq struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type createOrderReq struct {
	CustomerID      string          `json:"customer_id"`
	Items           []orderLineReq  `json:"items"`
	ShippingAddress *shared.Address `json:"shipping_address"`
	BillingAddress  *shared.Address `json:"billing_address"`
	Notes           string          `json:"notes"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateOrder")
	defer span.End()

	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.CustomerID == "" || len(req.Items) == 0 {
		web.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "customer_id and at least one item are required"})
		return
	}

	in := application.CreateOrderInput{
		CustomerID:      req.CustomerID,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Notes:           req.Notes,
	}
	for _, line := range req.Items {
		in.Items = append(in.Items, application.OrderLineInput{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	order, err := h.service.CreateOrder(ctx, in)
	if err != nil {
		h.log.Warn("create order failed", "customer_id", req.CustomerID, "err", err)
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusCreated, map[string]any{"data": orderJSON(order)})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetOrder")
	defer span.End()

	order, err := h.service.GetOrder(ctx, chi.URLParam(r, "id"))
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, map[string]any{"data": orderJSON(order)})
}

func (h *Handler) confirmOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ConfirmOrder")
	defer span.End()

	order, err := h.service.ConfirmOrder(ctx, chi.URLParam(r, "id"))
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, map[string]any{"data": orderJSON(order)})
}

func (h *Handler) listCustomerOrders(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ListCustomerOrders")
	defer span.End()

	orders, err := h.service.ListCustomerOrders(ctx, chi.URLParam(r, "id"))
	if err != nil {
		web.WriteError(w, err)
		return
	}
	out := make([]orderResp, 0, len(orders))
	for _, order := range orders {
		out = append(out, orderJSON(order))
	}
	web.WriteJSON(w, http.StatusOK, map[string]any{"data": out})
}

type moneyResp struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func moneyJSON(m shared.Money) moneyResp {
	amount, _ := m.Amount().Float64()
	return moneyResp{Amount: amount, Currency: m.Currency()}
}

type orderItemResp struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	ProductSKU  string    `json:"product_sku"`
	UnitPrice   moneyResp `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	TotalPrice  moneyResp `json:"total_price"`
}

type orderResp struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	CustomerID      string          `json:"customer_id"`
	Status          string          `json:"status"`
	Subtotal        moneyResp       `json:"subtotal"`
	ShippingCost    moneyResp       `json:"shipping_cost"`
	Tax             moneyResp       `json:"tax"`
	Total           moneyResp       `json:"total"`
	ShippingAddress *shared.Address `json:"shipping_address,omitempty"`
	BillingAddress  *shared.Address `json:"billing_address,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Items           []orderItemResp `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at,omitempty"`
}

func orderJSON(o *domain.Order) orderResp {
	resp := orderResp{
		ID:              o.ID(),
		OrderNumber:     o.OrderNumber(),
		CustomerID:      o.CustomerID(),
		Status:          o.Status().String(),
		Subtotal:        moneyJSON(o.Subtotal()),
		ShippingCost:    moneyJSON(o.ShippingCost()),
		Tax:             moneyJSON(o.Tax()),
		Total:           moneyJSON(o.Total()),
		ShippingAddress: o.ShippingAddress(),
		BillingAddress:  o.BillingAddress(),
		Notes:           o.Notes(),
		Items:           make([]orderItemResp, 0, o.ItemCount()),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
	for _, item := range o.Items() {
		resp.Items = append(resp.Items, orderItemResp{
			ID:          item.ID(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			ProductSKU:  item.ProductSKU(),
			UnitPrice:   moneyJSON(item.UnitPrice()),
			Quantity:    item.Quantity(),
			TotalPrice:  moneyJSON(item.TotalPrice()),
		})
	}
	return resp
}
