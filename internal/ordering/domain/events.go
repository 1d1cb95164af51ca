package domain

import shared "github.com/Harish120/go-commerce/internal/shared/domain"

type OrderCreated struct {
	OrderID     string
	OrderNumber string
	CustomerID  string
	Total       shared.Money
	ItemCount   int
}

func (OrderCreated) EventName() string { return "ordering.order_created" }

type OrderConfirmed struct {
	OrderID     string
	OrderNumber string
	CustomerID  string
}

func (OrderConfirmed) EventName() string { return "ordering.order_confirmed" }
