package order

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrFulfillmentIsNotConstructed is returned when a Fulfillment instance was
// not created through one of its factory methods.
var ErrFulfillmentIsNotConstructed = errors.New(
	"Fulfillment must be created via NewDeliveryFulfillment, NewTakeawayFulfillment, or RestoreFulfillment")

// Fulfillment describes how the customer receives the order.
//
// A delivery fulfillment carries a mandatory address and optional courier
// notes; a takeaway fulfillment carries an optional requested pickup time.
// Fields belonging to the other type are always empty, so persistence and
// display code never has to guess which ones apply.
type Fulfillment struct { //nolint:recvcheck //using for validation
	orderType       kernel.OrderType
	deliveryAddress string
	deliveryNotes   string
	pickupTime      string

	guard guard.ConstructorGuard
}

// NewDeliveryFulfillment creates a delivery fulfillment.
// The address is required; notes are optional instructions for the driver.
func NewDeliveryFulfillment(address string, notes string) (Fulfillment, error) {
	if address == "" {
		return Fulfillment{}, errs.NewValueIsRequiredError("delivery address")
	}

	return Fulfillment{
		orderType:       kernel.Delivery,
		deliveryAddress: address,
		deliveryNotes:   notes,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// NewTakeawayFulfillment creates a takeaway fulfillment.
// The pickup time is an optional free-form wish ("19h30"); the restaurant
// confirms it out of band.
func NewTakeawayFulfillment(pickupTime string) (Fulfillment, error) {
	return Fulfillment{
		orderType:  kernel.Takeaway,
		pickupTime: pickupTime,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreFulfillment rebuilds a fulfillment from persisted fields,
// re-applying the per-type rules. Used by the repository layer only.
func RestoreFulfillment(
	orderType kernel.OrderType, address string, notes string, pickupTime string,
) (Fulfillment, error) {
	if err := orderType.Validate(); err != nil {
		return Fulfillment{}, err
	}

	switch orderType {
	case kernel.Delivery:
		return NewDeliveryFulfillment(address, notes)
	case kernel.Takeaway:
		return NewTakeawayFulfillment(pickupTime)
	default:
		return Fulfillment{}, errs.NewValueIsInvalidError("order type")
	}
}

// Validate ensures the Fulfillment instance was properly constructed.
func (f Fulfillment) Validate() error {
	return f.guard.Validate(ErrFulfillmentIsNotConstructed)
}

// OrderType returns whether this is a delivery or takeaway fulfillment.
func (f Fulfillment) OrderType() kernel.OrderType {
	return f.orderType
}

// DeliveryAddress returns the delivery address, or an empty string for takeaway.
func (f Fulfillment) DeliveryAddress() string {
	return f.deliveryAddress
}

// DeliveryNotes returns the courier instructions, or an empty string for takeaway.
func (f Fulfillment) DeliveryNotes() string {
	return f.deliveryNotes
}

// PickupTime returns the requested pickup time, or an empty string for delivery.
func (f Fulfillment) PickupTime() string {
	return f.pickupTime
}
