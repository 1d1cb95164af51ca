package domain

type CustomerCreated struct {
	CustomerID string
	Email      string
}

func (CustomerCreated) EventName() string { return "customer.customer_created" }
