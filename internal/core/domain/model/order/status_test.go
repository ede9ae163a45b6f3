package order_test

import (
	"testing"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Shipped,
			order.PartiallyDelivered, order.Delivered, order.Cancelled,
		} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown and out-of-range values fail", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:            "unknown",
		order.Pending:            "pending",
		order.Confirmed:          "confirmed",
		order.Shipped:            "shipped",
		order.PartiallyDelivered: "partially_delivered",
		order.Delivered:          "delivered",
		order.Cancelled:          "cancelled",
		order.Status(99):         "unknown",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses every wire name", func(t *testing.T) {
		for _, name := range []string{
			"pending", "confirmed", "shipped", "partially_delivered", "delivered", "cancelled",
		} {
			status, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("returned")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	legal := []struct{ from, to order.Status }{
		{order.Pending, order.Confirmed},
		{order.Pending, order.Cancelled},
		{order.Confirmed, order.Shipped},
		{order.Confirmed, order.Cancelled},
		{order.Shipped, order.Delivered},
		{order.Shipped, order.PartiallyDelivered},
		{order.PartiallyDelivered, order.Delivered},
	}

	t.Run("legal edges are allowed", func(t *testing.T) {
		for _, edge := range legal {
			assert.True(t, edge.from.CanTransitionTo(edge.to),
				"%s -> %s should be legal", edge.from, edge.to)
		}
	})

	t.Run("everything else is rejected", func(t *testing.T) {
		all := []order.Status{
			order.Pending, order.Confirmed, order.Shipped,
			order.PartiallyDelivered, order.Delivered, order.Cancelled,
		}
		isLegal := func(from, to order.Status) bool {
			for _, edge := range legal {
				if edge.from == from && edge.to == to {
					return true
				}
			}
			return false
		}

		for _, from := range all {
			for _, to := range all {
				if isLegal(from, to) {
					continue
				}
				assert.False(t, from.CanTransitionTo(to),
					"%s -> %s should be illegal", from, to)
			}
		}
	})

	t.Run("terminal statuses have no outgoing edges", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
		assert.False(t, order.Shipped.IsTerminal())
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("legal transition returns target", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(order.Confirmed)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, next)
	})

	t.Run("illegal transition fails with IllegalTransitionError", func(t *testing.T) {
		_, err := order.Shipped.TransitionTo(order.Pending)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Contains(t, err.Error(), "shipped -> pending")
	})

	t.Run("invalid target fails validation", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("cancel is reachable only from pending and confirmed", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Cancelled)
		require.NoError(t, err)

		_, err = order.Confirmed.TransitionTo(order.Cancelled)
		require.NoError(t, err)

		_, err = order.Shipped.TransitionTo(order.Cancelled)
		require.ErrorIs(t, err, errs.ErrIllegalTransition)

		_, err = order.Delivered.TransitionTo(order.Cancelled)
		require.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}

func TestStatus_CanReceive(t *testing.T) {
	assert.True(t, order.Shipped.CanReceive())
	assert.True(t, order.PartiallyDelivered.CanReceive())
	assert.False(t, order.Pending.CanReceive())
	assert.False(t, order.Confirmed.CanReceive())
	assert.False(t, order.Delivered.CanReceive())
	assert.False(t, order.Cancelled.CanReceive())
}
