package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly
// initialized Price. Prices must be created via one of the constructors.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPriceFromFloat, NewPriceFromString, or ZeroPrice constructors")

// Price is a non-negative monetary amount in euros.
//
// Amounts are held as arbitrary-precision decimals so that supplement
// surcharges and quantity multiplication never accumulate float drift.
// Price is an immutable value object; arithmetic methods return new values.
//
// The zero value is invalid and must be constructed using NewPriceFromFloat,
// NewPriceFromString, or ZeroPrice.
//
// Example:
//
//	unit, _ := kernel.NewPriceFromFloat(10)
//	extra, _ := kernel.NewPriceFromFloat(2)
//	total := unit.Add(extra).MulInt(3)
//	fmt.Println(total.String()) // "36.00"
type Price struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPriceFromFloat creates a Price from a float amount.
// Returns an error if the amount is negative.
func NewPriceFromFloat(amount float64) (Price, error) {
	return newPrice(decimal.NewFromFloat(amount))
}

// NewPriceFromString creates a Price from a decimal string such as "12.50".
// Returns an error if the string is not a valid decimal or the amount is negative.
// This constructor is used when reconstructing prices from persistence, where
// amounts are stored as NUMERIC and scanned as text.
func NewPriceFromString(amount string) (Price, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return newPrice(d)
}

// ZeroPrice returns a valid Price of zero euros.
// Used as the starting point for summation.
func ZeroPrice() Price {
	return Price{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

func newPrice(d decimal.Decimal) (Price, error) {
	if d.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", d))
	}
	return Price{
		amount: d,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) Price {
	return Price{
		amount: p.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulInt returns the price multiplied by a whole quantity.
func (p Price) MulInt(quantity int) Price {
	return Price{
		amount: p.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual reports whether two prices represent the same amount,
// ignoring trailing zeros ("36" equals "36.00").
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// Float64 returns the amount as a float. Intended for JSON responses only;
// arithmetic should stay on Price.
func (p Price) Float64() float64 {
	f, _ := p.amount.Float64()
	return f
}

// Decimal returns the underlying decimal amount.
func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

// String returns the amount formatted with two decimal places.
func (p Price) String() string {
	return p.amount.StringFixed(2)
}

// Validate checks that the Price was properly constructed and is non-negative.
func (p Price) Validate() error {
	if err := p.guard.Validate(ErrPriceIsNotConstructed); err != nil {
		return err
	}
	if p.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", p.amount))
	}
	return nil
}
