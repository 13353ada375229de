package http

import (
	"strconv"
	"time"

	"storefront/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned on every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SupplementPayload is a paid addition on a submitted order line.
type SupplementPayload struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderItemPayload is one line of a submitted order.
// UniqueID distinguishes two lines of the same dish with different
// options; the server assigns one when the client omits it.
type OrderItemPayload struct {
	UniqueID    string              `json:"uniqueId"`
	DishID      string              `json:"dishId"`
	Name        string              `json:"name"`
	UnitPrice   float64             `json:"unitPrice"`
	Quantity    int                 `json:"quantity"`
	Supplements []SupplementPayload `json:"selectedSupplements,omitempty"`
	Notes       string              `json:"notes,omitempty"`
}

// CreateOrderRequest is the checkout payload. The server assigns the
// order ID and recomputes the total; any client-side figures are ignored.
type CreateOrderRequest struct {
	Items           []OrderItemPayload `json:"items"`
	OrderType       string             `json:"orderType"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerEmail   string             `json:"customerEmail,omitempty"`
	DeliveryAddress string             `json:"deliveryAddress,omitempty"`
	DeliveryNotes   string             `json:"deliveryNotes,omitempty"`
	PickupTime      string             `json:"pickupTime,omitempty"`
}

// ChangeStatusRequest moves an order to a new workflow status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is one order line as returned to clients.
type OrderItemResponse struct {
	UniqueID    string              `json:"uniqueId"`
	DishID      string              `json:"dishId"`
	Name        string              `json:"name"`
	UnitPrice   float64             `json:"unitPrice"`
	Quantity    int                 `json:"quantity"`
	Supplements []SupplementPayload `json:"selectedSupplements,omitempty"`
	Notes       string              `json:"notes,omitempty"`
}

// OrderResponse is one order as returned to clients.
// Timestamps are RFC 3339 in UTC.
type OrderResponse struct {
	ID              string              `json:"id"`
	Items           []OrderItemResponse `json:"items"`
	Total           float64             `json:"total"`
	OrderType       string              `json:"orderType"`
	CustomerName    string              `json:"customerName"`
	CustomerPhone   string              `json:"customerPhone"`
	CustomerEmail   string              `json:"customerEmail,omitempty"`
	DeliveryAddress string              `json:"deliveryAddress,omitempty"`
	DeliveryNotes   string              `json:"deliveryNotes,omitempty"`
	PickupTime      string              `json:"pickupTime,omitempty"`
	Status          string              `json:"status"`
	Historical      bool                `json:"historical"`
	CreatedAt       string              `json:"createdAt"`
	UpdatedAt       string              `json:"updatedAt"`
}

// toOrderResponse maps a read model row onto the wire contract.
// Stored decimal strings become JSON numbers, matching what the
// storefront client renders.
func toOrderResponse(row queries.OrderResponse) (OrderResponse, error) {
	total, err := strconv.ParseFloat(row.Total, 64)
	if err != nil {
		return OrderResponse{}, err
	}

	items := make([]OrderItemResponse, 0, len(row.Items))
	for _, item := range row.Items {
		unitPrice, priceErr := strconv.ParseFloat(item.UnitPrice, 64)
		if priceErr != nil {
			return OrderResponse{}, priceErr
		}

		supplements := make([]SupplementPayload, 0, len(item.Supplements))
		for _, s := range item.Supplements {
			price, supErr := strconv.ParseFloat(s.Price, 64)
			if supErr != nil {
				return OrderResponse{}, supErr
			}
			supplements = append(supplements, SupplementPayload{Name: s.Name, Price: price})
		}

		items = append(items, OrderItemResponse{
			UniqueID:    item.UniqueID,
			DishID:      item.DishID,
			Name:        item.Name,
			UnitPrice:   unitPrice,
			Quantity:    item.Quantity,
			Supplements: supplements,
			Notes:       item.Notes,
		})
	}

	return OrderResponse{
		ID:              row.ID,
		Items:           items,
		Total:           total,
		OrderType:       row.OrderType,
		CustomerName:    row.CustomerName,
		CustomerPhone:   row.CustomerPhone,
		CustomerEmail:   row.CustomerEmail,
		DeliveryAddress: row.DeliveryAddress,
		DeliveryNotes:   row.DeliveryNotes,
		PickupTime:      row.PickupTime,
		Status:          row.Status,
		Historical:      row.Historical,
		CreatedAt:       row.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       row.UpdatedAt.Format(time.RFC3339),
	}, nil
}
