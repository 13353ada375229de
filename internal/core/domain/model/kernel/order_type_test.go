package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderTypeFromString(t *testing.T) {
	t.Run("should parse valid types", func(t *testing.T) {
		typ, err := kernel.OrderTypeFromString("delivery")
		require.NoError(t, err)
		assert.Equal(t, kernel.Delivery, typ)

		typ, err = kernel.OrderTypeFromString("takeaway")
		require.NoError(t, err)
		assert.Equal(t, kernel.Takeaway, typ)
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "pickup", "DELIVERY", "Takeaway", "unknown"} {
			_, err := kernel.OrderTypeFromString(s)
			require.Error(t, err, "expected %q to be rejected", s)
		}
	})
}

func TestOrderType_Validate(t *testing.T) {
	assert.NoError(t, kernel.Delivery.Validate())
	assert.NoError(t, kernel.Takeaway.Validate())
	assert.Error(t, kernel.UnknownOrderType.Validate())
	assert.Error(t, kernel.OrderType(42).Validate())
}

func TestOrderType_String(t *testing.T) {
	assert.Equal(t, "delivery", kernel.Delivery.String())
	assert.Equal(t, "takeaway", kernel.Takeaway.String())
	assert.Equal(t, "unknown", kernel.UnknownOrderType.String())
	assert.Equal(t, "unknown", kernel.OrderType(42).String())
}
