package order

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

const (
	// MinQuantity is the smallest allowed quantity for a line item.
	MinQuantity = 1
	// MaxQuantity caps a single line item. Larger orders are expressed as
	// multiple line items, which keeps fat-finger submissions out.
	MaxQuantity = 99
)

// Supplement is a named add-on selected for a line item, such as an extra
// topping. Each supplement is counted once per line item; the quantity
// multiplier applies to the whole line, not to individual supplements.
type Supplement struct {
	name  string
	price kernel.Price

	guard guard.ConstructorGuard
}

// NewSupplement creates a supplement with a non-empty name and a valid price.
func NewSupplement(name string, price kernel.Price) (Supplement, error) {
	if name == "" {
		return Supplement{}, errs.NewValueIsRequiredError("supplement name")
	}
	if err := price.Validate(); err != nil {
		return Supplement{}, err
	}

	return Supplement{
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Name returns the supplement's display name.
func (s Supplement) Name() string {
	return s.name
}

// Price returns the supplement's surcharge.
func (s Supplement) Price() kernel.Price {
	return s.price
}

// Validate ensures the Supplement was created through NewSupplement.
func (s Supplement) Validate() error {
	return s.guard.Validate(errors.New("Supplement must be created via NewSupplement constructor"))
}

// LineItem is one cart entry inside an order: a dish plus its selected
// options and quantity.
//
// LineItem follows these invariants:
//   - uniqueID and dish name must be non-empty
//   - unitPrice already includes per-unit option surcharges baked in at
//     add-to-cart time (meat choice, extra poppings, and so on)
//   - quantity lies in [MinQuantity..MaxQuantity]
//   - supplements are each counted once per line item
//
// The uniqueID identifies this specific cart entry, not the catalog dish:
// the same dish with different options yields distinct entries. LineItem is
// an immutable value object; an order's items never change after submission.
type LineItem struct { //nolint:recvcheck //using for validation
	// uniqueID identifies this cart entry, distinct from the dish id.
	uniqueID string

	// dishID references the catalog dish this entry was built from.
	dishID string

	// name is the dish display name captured at add-to-cart time.
	name string

	// unitPrice is the per-unit price with option surcharges included.
	unitPrice kernel.Price

	// quantity multiplies the whole line, supplements included.
	quantity int

	// supplements are the selected add-ons, each counted once per line.
	supplements []Supplement

	// notes carries free-text customer instructions for this entry.
	notes string

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated LineItem.
//
// Parameters:
//   - uniqueID: Identifier of this cart entry (required)
//   - dishID: Catalog dish identifier (required)
//   - name: Dish display name (required)
//   - unitPrice: Per-unit price with option surcharges baked in
//   - quantity: Number of units, within [MinQuantity..MaxQuantity]
//   - supplements: Selected add-ons (may be empty)
//   - notes: Free-text instructions (may be empty)
//
// Returns a validation error if any parameter is invalid.
func NewLineItem(
	uniqueID string,
	dishID string,
	name string,
	unitPrice kernel.Price,
	quantity int,
	supplements []Supplement,
	notes string,
) (LineItem, error) {
	item := LineItem{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setUniqueID(uniqueID),
		item.setDishID(dishID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
		item.setSupplements(supplements),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem instance was properly constructed through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// UniqueID returns the identifier of this cart entry.
func (i LineItem) UniqueID() string {
	return i.uniqueID
}

// DishID returns the catalog dish identifier.
func (i LineItem) DishID() string {
	return i.dishID
}

// Name returns the dish display name.
func (i LineItem) Name() string {
	return i.name
}

// UnitPrice returns the per-unit price with option surcharges included.
func (i LineItem) UnitPrice() kernel.Price {
	return i.unitPrice
}

// Quantity returns the number of units ordered.
func (i LineItem) Quantity() int {
	return i.quantity
}

// Supplements returns a copy of the selected add-ons.
func (i LineItem) Supplements() []Supplement {
	out := make([]Supplement, len(i.supplements))
	copy(out, i.supplements)
	return out
}

// Notes returns the customer's free-text instructions for this entry.
func (i LineItem) Notes() string {
	return i.notes
}

// Total computes the line total:
//
//	(unitPrice + sum of supplement prices) * quantity
//
// The computation is deterministic and side-effect free; applying it twice
// to the same item yields the same value.
func (i LineItem) Total() kernel.Price {
	perUnit := i.unitPrice
	for _, s := range i.supplements {
		perUnit = perUnit.Add(s.price)
	}
	return perUnit.MulInt(i.quantity)
}

func (i *LineItem) setUniqueID(uniqueID string) error {
	if uniqueID == "" {
		return errs.NewValueIsRequiredError("line item unique id")
	}
	i.uniqueID = uniqueID
	return nil
}

func (i *LineItem) setDishID(dishID string) error {
	if dishID == "" {
		return errs.NewValueIsRequiredError("line item dish id")
	}
	i.dishID = dishID
	return nil
}

func (i *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("line item name")
	}
	i.name = name
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice kernel.Price) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setSupplements(supplements []Supplement) error {
	for _, s := range supplements {
		if err := s.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("supplements", err)
		}
	}
	i.supplements = make([]Supplement, len(supplements))
	copy(i.supplements, supplements)
	return nil
}
