package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryFulfillment(t *testing.T) {
	t.Run("should create valid delivery fulfillment", func(t *testing.T) {
		f, err := order.NewDeliveryFulfillment("12 rue des Lilas, Paris", "3e etage")

		require.NoError(t, err)
		require.NoError(t, f.Validate())
		assert.Equal(t, kernel.Delivery, f.OrderType())
		assert.Equal(t, "12 rue des Lilas, Paris", f.DeliveryAddress())
		assert.Equal(t, "3e etage", f.DeliveryNotes())
		assert.Empty(t, f.PickupTime())
	})

	t.Run("address is mandatory for delivery", func(t *testing.T) {
		_, err := order.NewDeliveryFulfillment("", "3e etage")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "delivery address")
	})

	t.Run("notes are optional", func(t *testing.T) {
		f, err := order.NewDeliveryFulfillment("12 rue des Lilas, Paris", "")

		require.NoError(t, err)
		assert.Empty(t, f.DeliveryNotes())
	})
}

func TestNewTakeawayFulfillment(t *testing.T) {
	t.Run("should create valid takeaway fulfillment", func(t *testing.T) {
		f, err := order.NewTakeawayFulfillment("19h30")

		require.NoError(t, err)
		require.NoError(t, f.Validate())
		assert.Equal(t, kernel.Takeaway, f.OrderType())
		assert.Equal(t, "19h30", f.PickupTime())
		assert.Empty(t, f.DeliveryAddress())
		assert.Empty(t, f.DeliveryNotes())
	})

	t.Run("pickup time is optional", func(t *testing.T) {
		f, err := order.NewTakeawayFulfillment("")

		require.NoError(t, err)
		assert.Empty(t, f.PickupTime())
	})
}

func TestRestoreFulfillment(t *testing.T) {
	t.Run("restores delivery fulfillment", func(t *testing.T) {
		f, err := order.RestoreFulfillment(kernel.Delivery, "12 rue des Lilas", "code 1234", "")

		require.NoError(t, err)
		assert.Equal(t, kernel.Delivery, f.OrderType())
		assert.Equal(t, "12 rue des Lilas", f.DeliveryAddress())
	})

	t.Run("restores takeaway fulfillment", func(t *testing.T) {
		f, err := order.RestoreFulfillment(kernel.Takeaway, "", "", "20h00")

		require.NoError(t, err)
		assert.Equal(t, kernel.Takeaway, f.OrderType())
		assert.Equal(t, "20h00", f.PickupTime())
	})

	t.Run("rejects delivery without address", func(t *testing.T) {
		_, err := order.RestoreFulfillment(kernel.Delivery, "", "", "")

		require.Error(t, err)
	})

	t.Run("rejects invalid order type", func(t *testing.T) {
		_, err := order.RestoreFulfillment(kernel.UnknownOrderType, "", "", "")

		require.Error(t, err)
	})
}

func TestFulfillment_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var f order.Fulfillment

		err := f.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrFulfillmentIsNotConstructed, err)
	})
}
