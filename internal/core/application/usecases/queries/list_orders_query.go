// Package queries contains read-side handlers that bypass the domain
// aggregates and read denormalized rows straight from storage.
package queries

import (
	"errors"
	"time"

	"storefront/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves every order in the store, newest first.
// The operator dashboard uses it to render both the active board and
// the history tab, splitting rows on the Historical flag.
//
// Example:
//
//	query := NewListOrdersQuery()
//	handler := NewListOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s %s %s\n", o.ID, o.Status, o.Total)
//	}
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query; filtering happens in the caller.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OrderItemResponse is one line of an order as stored in the read model.
// Prices are decimal strings with two fraction digits.
type OrderItemResponse struct {
	UniqueID    string                    `json:"uniqueId"`
	DishID      string                    `json:"dishId"`
	Name        string                    `json:"name"`
	UnitPrice   string                    `json:"unitPrice"`
	Quantity    int                       `json:"quantity"`
	Supplements []OrderSupplementResponse `json:"supplements"`
	Notes       string                    `json:"notes"`
}

// OrderSupplementResponse is a paid addition attached to one line item.
type OrderSupplementResponse struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// OrderResponse represents one order row for list and detail reads.
//
// Example:
//
//	response := OrderResponse{
//	    ID:     "MT-240101-AB12",
//	    Status: "pending",
//	    Total:  "36.00",
//	}
type OrderResponse struct {
	ID              string
	Items           []OrderItemResponse
	Total           string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	OrderType       string
	DeliveryAddress string
	DeliveryNotes   string
	PickupTime      string
	Status          string
	Historical      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
