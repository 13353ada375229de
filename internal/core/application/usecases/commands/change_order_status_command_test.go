package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	id := kernel.NewOrderID(time.Now())

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStatusCommand(id, order.Confirmed)
		require.NoError(t, err)
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, order.Confirmed, cmd.Target())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("empty order id", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.OrderID{}, order.Confirmed)
		require.Error(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(id, order.Unknown)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestChangeOrderStatusCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.ChangeOrderStatusCommand{}
	require.Error(t, cmd.Validate())
}
