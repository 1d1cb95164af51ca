package domain

import (
	"fmt"
	"net/mail"
	"strings"

	shared "github.com/Harish120/go-commerce/internal/shared/domain"
)

type Customer struct {
	id              string
	email           string
	firstName       string
	lastName        string
	phone           string
	billingAddress  *shared.Address
	shippingAddress *shared.Address
	active          bool
}

func NewCustomer(email, firstName, lastName string) (*Customer, error) {
	c := &Customer{active: true}
	if err := c.SetEmail(email); err != nil {
		return nil, err
	}
	if err := c.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := c.SetLastName(lastName); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Customer) ID() string                        { return c.id }
func (c *Customer) SetID(id string)                   { c.id = id }
func (c *Customer) Email() string                     { return c.email }
func (c *Customer) FirstName() string                 { return c.firstName }
func (c *Customer) LastName() string                  { return c.lastName }
func (c *Customer) Phone() string                     { return c.phone }
func (c *Customer) BillingAddress() *shared.Address   { return c.billingAddress }
func (c *Customer) ShippingAddress() *shared.Address  { return c.shippingAddress }
func (c *Customer) IsActive() bool                    { return c.active }

func (c *Customer) FullName() string {
	return c.firstName + " " + c.lastName
}

func (c *Customer) SetEmail(email string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return fmt.Errorf("%w: invalid email address", shared.ErrInvalidValue)
	}
	c.email = strings.ToLower(addr.Address)
	return nil
}

func (c *Customer) SetFirstName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: first name cannot be empty", shared.ErrInvalidValue)
	}
	c.firstName = strings.TrimSpace(name)
	return nil
}

func (c *Customer) SetLastName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: last name cannot be empty", shared.ErrInvalidValue)
	}
	c.lastName = strings.TrimSpace(name)
	return nil
}

func (c *Customer) SetPhone(phone string)                    { c.phone = strings.TrimSpace(phone) }
func (c *Customer) SetBillingAddress(addr *shared.Address)   { c.billingAddress = addr }
func (c *Customer) SetShippingAddress(addr *shared.Address)  { c.shippingAddress = addr }
func (c *Customer) Activate()                                { c.active = true }
func (c *Customer) Deactivate()                              { c.active = false }
func (c *Customer) HasBillingAddress() bool                  { return c.billingAddress != nil }
func (c *Customer) HasShippingAddress() bool                 { return c.shippingAddress != nil }
