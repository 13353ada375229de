package order

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer holds the contact details attached to an order.
// Name and phone are required so the restaurant can always reach the
// customer about their order; email is optional.
type Customer struct { //nolint:recvcheck //using for validation
	name  string
	phone string
	email string

	guard guard.ConstructorGuard
}

// NewCustomer creates validated customer contact details.
// Returns an error if name or phone is empty.
func NewCustomer(name string, phone string, email string) (Customer, error) {
	customer := Customer{
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setPhone(phone),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate ensures the Customer instance was properly constructed through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Email returns the customer's email address, or an empty string when not provided.
func (c Customer) Email() string {
	return c.email
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.phone = phone
	return nil
}
