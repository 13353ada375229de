package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a customer's request to submit an order
// assembled from their cart. It carries everything the aggregate needs;
// the total is computed by the domain, never taken from the client.
//
// Example:
//
//	orderID := kernel.NewOrderID(time.Now())
//	cmd, err := NewPlaceOrderCommand(orderID, items, customer, fulfillment)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed and awaiting confirmation", orderID)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.OrderID
	items       []order.LineItem
	customer    order.Customer
	fulfillment order.Fulfillment

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to submit a new order.
// Validates that the id, every line item, the customer, and the fulfillment
// details are well-formed. Returns an error if any validation fails, so a
// malformed submission is rejected before it reaches the store.
func NewPlaceOrderCommand(
	orderID kernel.OrderID,
	items []order.LineItem,
	customer order.Customer,
	fulfillment order.Fulfillment,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
		cmd.setCustomer(customer),
		cmd.setFulfillment(fulfillment),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier issued for the order.
func (c PlaceOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Items returns the submitted line items.
func (c PlaceOrderCommand) Items() []order.LineItem {
	out := make([]order.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Customer returns the customer's contact details.
func (c PlaceOrderCommand) Customer() order.Customer {
	return c.customer
}

// Fulfillment returns the delivery or takeaway handling details.
func (c PlaceOrderCommand) Fulfillment() order.Fulfillment {
	return c.fulfillment
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return order.ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = make([]order.LineItem, len(items))
	copy(c.items, items)
	return nil
}

func (c *PlaceOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *PlaceOrderCommand) setFulfillment(fulfillment order.Fulfillment) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}
	c.fulfillment = fulfillment
	return nil
}
