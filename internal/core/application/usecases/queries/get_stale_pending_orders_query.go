package queries

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetStalePendingOrdersQueryIsNotConstructed = errors.New(
		"GetStalePendingOrdersQuery must be created via NewGetStalePendingOrdersQuery constructor",
	)
)

// GetStalePendingOrdersQuery finds pending orders older than a cutoff.
// The reminder job runs it to surface orders nobody has confirmed yet.
//
// Example:
//
//	query, err := NewGetStalePendingOrdersQuery(10 * time.Minute)
//	if err != nil {
//	    return err
//	}
//	stale, err := handler.Handle(ctx, query)
type GetStalePendingOrdersQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStalePendingOrdersQuery creates a query for pending orders
// created more than olderThan ago. The duration must be positive.
func NewGetStalePendingOrdersQuery(olderThan time.Duration) (GetStalePendingOrdersQuery, error) {
	if olderThan <= 0 {
		return GetStalePendingOrdersQuery{}, errs.NewValueIsInvalidError("olderThan")
	}
	return GetStalePendingOrdersQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OlderThan returns the minimum age a pending order must have to match.
func (q GetStalePendingOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStalePendingOrdersQueryIsNotConstructed if validation fails.
func (q GetStalePendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePendingOrdersQueryIsNotConstructed)
}

// StalePendingOrderResponse identifies one pending order past the cutoff.
type StalePendingOrderResponse struct {
	ID           string
	CustomerName string
	Total        string
	CreatedAt    time.Time
}
