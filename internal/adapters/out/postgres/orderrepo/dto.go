// Package orderrepo implements order aggregate persistence over GORM.
// One row per order: scalar columns for the searchable fields and a
// jsonb document for the line items, which are never queried on their own.
package orderrepo

import (
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderDTO represents the database row for an order aggregate.
// Status and created_at carry indexes for the stale pending scan
// and the newest-first listing.
type OrderDTO struct {
	ID              string    `gorm:"type:text;primaryKey"`
	Items           []byte    `gorm:"type:jsonb"`
	Total           string    `gorm:"type:numeric(12,2)"`
	CustomerName    string    `gorm:"type:text"`
	CustomerPhone   string    `gorm:"type:text"`
	CustomerEmail   string    `gorm:"type:text"`
	OrderType       int16     `gorm:"type:smallint"`
	DeliveryAddress string    `gorm:"type:text"`
	DeliveryNotes   string    `gorm:"type:text"`
	PickupTime      string    `gorm:"type:text"`
	Status          int16     `gorm:"type:smallint;index"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// lineItemDTO is the jsonb shape of one order line.
// Prices are serialized as fixed two-digit decimal strings so no
// precision is lost on the round trip through the document column.
type lineItemDTO struct {
	UniqueID    string          `json:"uniqueId"`
	DishID      string          `json:"dishId"`
	Name        string          `json:"name"`
	UnitPrice   string          `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Supplements []supplementDTO `json:"supplements"`
	Notes       string          `json:"notes"`
}

// supplementDTO is the jsonb shape of a paid addition on a line item.
type supplementDTO struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]lineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		supplements := make([]supplementDTO, 0, len(item.Supplements()))
		for _, s := range item.Supplements() {
			supplements = append(supplements, supplementDTO{
				Name:  s.Name(),
				Price: s.Price().String(),
			})
		}
		items = append(items, lineItemDTO{
			UniqueID:    item.UniqueID(),
			DishID:      item.DishID(),
			Name:        item.Name(),
			UnitPrice:   item.UnitPrice().String(),
			Quantity:    item.Quantity(),
			Supplements: supplements,
			Notes:       item.Notes(),
		})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	fulfillment := aggregate.Fulfillment()
	customer := aggregate.Customer()

	return OrderDTO{
		ID:              aggregate.ID().String(),
		Items:           rawItems,
		Total:           aggregate.Total().String(),
		CustomerName:    customer.Name(),
		CustomerPhone:   customer.Phone(),
		CustomerEmail:   customer.Email(),
		OrderType:       int16(fulfillment.OrderType()),
		DeliveryAddress: fulfillment.DeliveryAddress(),
		DeliveryNotes:   fulfillment.DeliveryNotes(),
		PickupTime:      fulfillment.PickupTime(),
		Status:          int16(aggregate.Status()),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database row to an order aggregate.
// Reconstructs the complete aggregate through RestoreOrder, which takes
// the stored total as-is instead of recomputing it.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	var rawItems []lineItemDTO
	if err = json.Unmarshal(dto.Items, &rawItems); err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(rawItems))
	for _, raw := range rawItems {
		item, itemErr := lineItemToDomain(raw)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewPriceFromString(dto.Total)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerPhone, dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	fulfillment, err := order.RestoreFulfillment(
		kernel.OrderType(dto.OrderType),
		dto.DeliveryAddress,
		dto.DeliveryNotes,
		dto.PickupTime,
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		items,
		total,
		customer,
		fulfillment,
		order.Status(dto.Status),
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}

func lineItemToDomain(raw lineItemDTO) (order.LineItem, error) {
	unitPrice, err := kernel.NewPriceFromString(raw.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}

	supplements := make([]order.Supplement, 0, len(raw.Supplements))
	for _, s := range raw.Supplements {
		price, priceErr := kernel.NewPriceFromString(s.Price)
		if priceErr != nil {
			return order.LineItem{}, priceErr
		}
		supplement, supErr := order.NewSupplement(s.Name, price)
		if supErr != nil {
			return order.LineItem{}, supErr
		}
		supplements = append(supplements, supplement)
	}

	return order.NewLineItem(
		raw.UniqueID,
		raw.DishID,
		raw.Name,
		unitPrice,
		raw.Quantity,
		supplements,
		raw.Notes,
	)
}
