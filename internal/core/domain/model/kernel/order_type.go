package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// OrderType distinguishes how a customer receives their order.
// It is fixed at submission time and never changes afterwards.
type OrderType int

const (
	// UnknownOrderType represents an invalid or undefined order type.
	// This value (0) helps catch uninitialized OrderType values.
	UnknownOrderType OrderType = iota

	// Delivery means the restaurant brings the order to the customer's
	// address. Orders of this type carry a mandatory delivery address.
	Delivery

	// Takeaway means the customer picks the order up at the restaurant,
	// optionally at a requested pickup time.
	Takeaway
)

func getOrderTypeStrings() map[OrderType]string {
	return map[OrderType]string{
		UnknownOrderType: "unknown",
		Delivery:         "delivery",
		Takeaway:         "takeaway",
	}
}

func getValidOrderTypeStrings() map[OrderType]string {
	//nolint:exhaustive // UnknownOrderType is intentionally excluded as it's invalid
	return map[OrderType]string{
		Delivery: "delivery",
		Takeaway: "takeaway",
	}
}

// OrderTypeFromString parses an order type from its wire representation
// ("delivery" or "takeaway"). Returns an error for anything else.
func OrderTypeFromString(s string) (OrderType, error) {
	for t, str := range getValidOrderTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return UnknownOrderType, errs.NewValueIsInvalidErrorWithCause("order type",
		fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks if the OrderType value is valid.
// Valid types are Delivery and Takeaway.
func (t OrderType) Validate() error {
	if _, ok := getValidOrderTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the wire representation of the order type.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (t OrderType) String() string {
	if str, ok := getOrderTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
