package domain

type ProductCreated struct {
	ProductID string
	SKU       string
	Name      string
}

func (ProductCreated) EventName() string { return "catalog.product_created" }

type ProductStockReduced struct {
	ProductID string
	Quantity  int
	Remaining int
}

func (ProductStockReduced) EventName() string { return "catalog.product_stock_reduced" }
