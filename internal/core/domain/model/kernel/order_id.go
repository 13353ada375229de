package kernel

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrOrderIDIsNotConstructed is returned when attempting to use an improperly
// initialized OrderID. OrderIDs must be created via NewOrderID or OrderIDFromString.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"order id must be created via NewOrderID or OrderIDFromString constructors")

const (
	// orderIDPrefix marks every identifier issued by this storefront.
	orderIDPrefix = "MT"

	// orderIDSuffixLength is the number of random base36 characters appended
	// after the date segment.
	orderIDSuffixLength = 4

	orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// orderIDPattern matches the canonical identifier format MT-YYMMDD-XXXX,
// where YYMMDD is a UTC date and XXXX is an uppercase base36 suffix.
var orderIDPattern = regexp.MustCompile(`^` + orderIDPrefix + `-\d{6}-[0-9A-Z]{4}$`)

// OrderID is the human-readable identifier assigned to an order at creation.
//
// The format is MT-YYMMDD-XXXX: a fixed prefix, the creation date, and a
// random base36 suffix. The date segment lets operators eyeball when an
// order came in; the suffix keeps ids unique within a day for any realistic
// order volume. OrderID is immutable and assigned exactly once.
//
// The zero value is invalid and must be constructed using NewOrderID or
// OrderIDFromString.
//
// Example:
//
//	id := kernel.NewOrderID(time.Now())
//	fmt.Println(id.String()) // e.g., "MT-260829-K3ZP"
type OrderID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewOrderID issues a fresh identifier for an order created at the given time.
// The date segment is derived from t in UTC so ids sort consistently
// regardless of the server's local zone.
func NewOrderID(t time.Time) OrderID {
	suffix := make([]byte, orderIDSuffixLength)
	for i := range suffix {
		suffix[i] = orderIDAlphabet[rand.IntN(len(orderIDAlphabet))]
	}

	return OrderID{
		value: fmt.Sprintf("%s-%s-%s", orderIDPrefix, t.UTC().Format("060102"), suffix),
		guard: guard.NewConstructorGuard(),
	}
}

// OrderIDFromString parses an identifier from its string representation.
// The string must match the canonical MT-YYMMDD-XXXX format exactly.
// This function is typically used when reconstructing orders from
// persistence or when parsing ids from request paths.
func OrderIDFromString(s string) (OrderID, error) {
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}
	if !orderIDPattern.MatchString(s) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%q does not match the %s-YYMMDD-XXXX format", s, orderIDPrefix))
	}

	return OrderID{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the canonical string representation of the identifier.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was properly constructed and still holds
// a canonical value.
func (id OrderID) Validate() error {
	if err := id.guard.Validate(ErrOrderIDIsNotConstructed); err != nil {
		return err
	}
	if !orderIDPattern.MatchString(id.value) {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%q does not match the %s-YYMMDD-XXXX format", id.value, orderIDPrefix))
	}
	return nil
}
