package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStalePendingOrdersQueryHandler reads pending orders past the cutoff.
// Oldest orders come first so the most neglected ones get logged on top.
type GetStalePendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStalePendingOrdersQueryHandler creates a handler for stale
// pending order queries.
func NewGetStalePendingOrdersQueryHandler(db *gorm.DB) GetStalePendingOrdersQueryHandler {
	return GetStalePendingOrdersQueryHandler{db: db}
}

// Handle executes the query and returns pending orders created before
// now minus the query cutoff, oldest first.
func (h GetStalePendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStalePendingOrdersQuery,
) ([]StalePendingOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.OlderThan())
	stale := make([]StalePendingOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			total,
			created_at
		FROM orders
		WHERE status = ? AND created_at < ?
		ORDER BY created_at
	`, order.Pending, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp StalePendingOrderResponse
		var createdAt time.Time

		if err = rows.Scan(&resp.ID, &resp.CustomerName, &resp.Total, &createdAt); err != nil {
			return nil, err
		}
		resp.CreatedAt = createdAt.UTC()
		stale = append(stale, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stale, nil
}
