package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoItems is returned when an order is submitted without any line items.
	ErrOrderHasNoItems = errors.New("order must contain at least one line item")
)

// Order represents a customer's purchase in the system. It is the aggregate root
// that manages the order lifecycle from submission through the kitchen workflow
// to completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid identifier, customer, and fulfillment
//   - Must contain at least one line item
//   - Total equals the sum of all line totals at the moment of submission
//     and is never recomputed afterwards
//   - Status transitions follow the forward chain defined by Status
//   - Everything except status and updatedAt is immutable after creation
//   - Orders are never deleted; terminal orders move to the history view
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the human-readable identifier assigned at creation.
	id kernel.OrderID

	// items is the non-empty sequence of cart entries.
	items []LineItem

	// total is the amount computed at submission time.
	total kernel.Price

	// customer holds the contact details.
	customer Customer

	// fulfillment describes delivery or takeaway handling.
	fulfillment Fulfillment

	// status is the current state in the order lifecycle.
	status Status

	// createdAt is set once at creation.
	createdAt time.Time

	// updatedAt is refreshed on every status change.
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method.
	isConstructed bool
}

// NewOrder creates a new Order from a submitted cart. This is the only way to
// create an order from client input, ensuring all invariants hold before
// anything reaches the store.
//
// The total is computed here as the sum of line totals; a client-claimed
// total is never trusted. The order starts in Pending status with createdAt
// and updatedAt both set to now.
//
// Parameters:
//   - id: Identifier issued for this order
//   - items: Cart entries (must be non-empty, each valid)
//   - customer: Contact details (name and phone required)
//   - fulfillment: Delivery or takeaway handling
//   - now: Submission time
//
// Returns a validation error if any input is invalid; in that case no
// partially built order escapes.
func NewOrder(
	id kernel.OrderID,
	items []LineItem,
	customer Customer,
	fulfillment Fulfillment,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setItems(items),
		order.setCustomer(customer),
		order.setFulfillment(fulfillment),
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroPrice()
	for _, item := range order.items {
		total = total.Add(item.Total())
	}
	order.total = total

	return order, nil
}

// RestoreOrder rebuilds an order from persistence. The stored total and
// timestamps are taken as-is: the total was fixed at submission time and is
// deliberately not recomputed on the way back in.
//
// Used by the repository layer only.
func RestoreOrder(
	id kernel.OrderID,
	items []LineItem,
	total kernel.Price,
	customer Customer,
	fulfillment Fulfillment,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setItems(items),
		order.setCustomer(customer),
		order.setFulfillment(fulfillment),
		order.setTotal(total),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Total returns the amount fixed at submission time.
func (o *Order) Total() kernel.Price {
	return o.total
}

// Customer returns the customer's contact details.
func (o *Order) Customer() Customer {
	return o.customer
}

// Fulfillment returns the delivery or takeaway handling details.
func (o *Order) Fulfillment() Fulfillment {
	return o.fulfillment
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the submission time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last status change, or the submission
// time if the status never changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Advance moves the order one step along the forward chain and refreshes
// updatedAt.
//
// Returns ErrIllegalTransition if the order is already in a terminal state.
// Callers offering an "advance" action should check Status().Next() first;
// hitting this error means the order moved underneath them.
func (o *Order) Advance(now time.Time) error {
	next, ok := o.status.Next()
	if !ok {
		return fmt.Errorf("%w: %s order has no next status", ErrIllegalTransition, o.status)
	}

	o.status = next
	o.updatedAt = now
	return nil
}

// Cancel moves the order to Cancelled and refreshes updatedAt.
//
// Cancellation is always available from any non-terminal state; cancelling
// a completed or already cancelled order returns ErrIllegalTransition.
func (o *Order) Cancel(now time.Time) error {
	cancelled, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = cancelled
	o.updatedAt = now
	return nil
}

// ChangeStatus moves the order to the requested target status, enforcing
// the transition graph: the target must be the next status in the forward
// chain, or Cancelled from a non-terminal state. Anything else is rejected
// with ErrIllegalTransition and leaves the order untouched.
//
// This is the single mutation primitive exposed to the operator boundary;
// there is no way to move backward or skip states through it.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	if err := o.status.CanTransitionTo(target); err != nil {
		return err
	}

	o.status = target
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setFulfillment(fulfillment Fulfillment) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}
	o.fulfillment = fulfillment
	return nil
}

func (o *Order) setTotal(total kernel.Price) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	o.status = status
	return nil
}
