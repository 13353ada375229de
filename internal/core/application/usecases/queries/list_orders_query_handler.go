package queries

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads all order rows from the database.
// Rows come back newest first so the dashboard can show fresh orders on top.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query := NewListOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns every order, newest first.
// Ties on created_at break on id so the ordering is stable.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			items,
			total,
			customer_name,
			customer_phone,
			customer_email,
			order_type,
			delivery_address,
			delivery_notes,
			pickup_time,
			status,
			created_at,
			updated_at
		FROM orders
		ORDER BY created_at DESC, id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		orderResp, scanErr := scanOrderResponse(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderResponse maps one raw order row onto the read model,
// decoding the items jsonb column and rendering enum columns as strings.
func scanOrderResponse(scan func(dest ...any) error) (OrderResponse, error) {
	var (
		resp      OrderResponse
		items     []byte
		orderType int16
		status    int16
		createdAt time.Time
		updatedAt time.Time
	)

	err := scan(
		&resp.ID,
		&items,
		&resp.Total,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.CustomerEmail,
		&orderType,
		&resp.DeliveryAddress,
		&resp.DeliveryNotes,
		&resp.PickupTime,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if err = json.Unmarshal(items, &resp.Items); err != nil {
		return OrderResponse{}, err
	}

	st := order.Status(status)
	if err = st.Validate(); err != nil {
		return OrderResponse{}, err
	}
	resp.Status = st.String()
	resp.Historical = st.IsHistorical()

	ot := kernel.OrderType(orderType)
	if err = ot.Validate(); err != nil {
		return OrderResponse{}, err
	}
	resp.OrderType = ot.String()

	resp.CreatedAt = createdAt.UTC()
	resp.UpdatedAt = updatedAt.UTC()
	return resp, nil
}
