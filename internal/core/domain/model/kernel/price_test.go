package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriceFromFloat(t *testing.T) {
	t.Run("should create valid price", func(t *testing.T) {
		p, err := kernel.NewPriceFromFloat(12.5)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "12.50", p.String())
		assert.InDelta(t, 12.5, p.Float64(), 0.0001)
	})

	t.Run("should accept zero", func(t *testing.T) {
		p, err := kernel.NewPriceFromFloat(0)

		require.NoError(t, err)
		assert.True(t, p.IsEqual(kernel.ZeroPrice()))
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewPriceFromFloat(-0.01)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price")
		assert.Contains(t, err.Error(), "negative")
	})
}

func TestNewPriceFromString(t *testing.T) {
	t.Run("should parse decimal strings", func(t *testing.T) {
		p, err := kernel.NewPriceFromString("9.90")

		require.NoError(t, err)
		assert.Equal(t, "9.90", p.String())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.NewPriceFromString("neuf euros")

		require.Error(t, err)
	})

	t.Run("should reject negative strings", func(t *testing.T) {
		_, err := kernel.NewPriceFromString("-3")

		require.Error(t, err)
	})
}

func TestPrice_Arithmetic(t *testing.T) {
	t.Run("add and multiply compose a line total", func(t *testing.T) {
		unit, _ := kernel.NewPriceFromFloat(10)
		supplement, _ := kernel.NewPriceFromFloat(2)

		total := unit.Add(supplement).MulInt(3)

		expected, _ := kernel.NewPriceFromFloat(36)
		assert.True(t, total.IsEqual(expected))
		assert.Equal(t, "36.00", total.String())
	})

	t.Run("arithmetic does not mutate operands", func(t *testing.T) {
		p, _ := kernel.NewPriceFromFloat(5)

		_ = p.Add(p)
		_ = p.MulInt(7)

		assert.Equal(t, "5.00", p.String())
	})

	t.Run("no float drift on repeated cents", func(t *testing.T) {
		cent, _ := kernel.NewPriceFromString("0.10")
		sum := kernel.ZeroPrice()
		for range 3 {
			sum = sum.Add(cent)
		}

		expected, _ := kernel.NewPriceFromString("0.30")
		assert.True(t, sum.IsEqual(expected))
	})
}

func TestPrice_IsEqual(t *testing.T) {
	t.Run("ignores trailing zeros", func(t *testing.T) {
		a, _ := kernel.NewPriceFromString("36")
		b, _ := kernel.NewPriceFromString("36.00")

		assert.True(t, a.IsEqual(b))
	})
}

func TestPrice_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.Price

		err := p.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price must be created")
	})

	t.Run("ZeroPrice passes validation", func(t *testing.T) {
		require.NoError(t, kernel.ZeroPrice().Validate())
	})
}
