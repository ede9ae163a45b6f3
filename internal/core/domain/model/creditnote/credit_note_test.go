package creditnote_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/creditnote"
	"procurement/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeNote(t *testing.T, amount int64) *creditnote.CreditNote {
	t.Helper()
	store, err := kernel.NewStoreContext(kernel.NewUUID())
	require.NoError(t, err)
	note, err := creditnote.NewCreditNote(kernel.NewUUID(), store, kernel.NewUUID(), decimal.NewFromInt(amount))
	require.NoError(t, err)
	return note
}

func TestNewCreditNote(t *testing.T) {
	t.Run("should issue an active note with zero used amount", func(t *testing.T) {
		note := activeNote(t, 100)

		require.NoError(t, note.Validate())
		assert.Equal(t, creditnote.StatusActive, note.Status())
		assert.True(t, note.Amount().Equal(decimal.NewFromInt(100)))
		assert.True(t, note.UsedAmount().IsZero())
		assert.True(t, note.Remaining().Equal(decimal.NewFromInt(100)))
	})

	t.Run("should fail for a non-positive amount", func(t *testing.T) {
		store, err := kernel.NewStoreContext(kernel.NewUUID())
		require.NoError(t, err)

		_, err = creditnote.NewCreditNote(kernel.NewUUID(), store, kernel.NewUUID(), decimal.Zero)
		require.Error(t, err)

		_, err = creditnote.NewCreditNote(kernel.NewUUID(), store, kernel.NewUUID(), decimal.NewFromInt(-5))
		require.Error(t, err)
	})
}

func TestCreditNote_Consume(t *testing.T) {
	t.Run("should grow used amount and shrink remaining", func(t *testing.T) {
		note := activeNote(t, 100)

		require.NoError(t, note.Consume(decimal.NewFromInt(30)))

		assert.True(t, note.UsedAmount().Equal(decimal.NewFromInt(30)))
		assert.True(t, note.Remaining().Equal(decimal.NewFromInt(70)))
		assert.Equal(t, creditnote.StatusActive, note.Status())
	})

	t.Run("should flip to exhausted when the full amount is used", func(t *testing.T) {
		note := activeNote(t, 100)

		require.NoError(t, note.Consume(decimal.NewFromInt(60)))
		require.NoError(t, note.Consume(decimal.NewFromInt(40)))

		assert.Equal(t, creditnote.StatusExhausted, note.Status())
		assert.True(t, note.Remaining().IsZero())
	})

	t.Run("should never let used amount exceed the amount", func(t *testing.T) {
		note := activeNote(t, 100)
		require.NoError(t, note.Consume(decimal.NewFromInt(80)))

		err := note.Consume(decimal.NewFromInt(30))

		require.Error(t, err)
		assert.True(t, note.UsedAmount().Equal(decimal.NewFromInt(80)))
	})

	t.Run("should reject a non-positive delta", func(t *testing.T) {
		note := activeNote(t, 100)

		require.Error(t, note.Consume(decimal.Zero))
		require.Error(t, note.Consume(decimal.NewFromInt(-10)))
	})

	t.Run("should reject consumption of an exhausted note", func(t *testing.T) {
		note := activeNote(t, 10)
		require.NoError(t, note.Consume(decimal.NewFromInt(10)))

		require.Error(t, note.Consume(decimal.NewFromInt(1)))
	})

	t.Run("should reject consumption of a voided note", func(t *testing.T) {
		note := activeNote(t, 10)
		require.NoError(t, note.Void())

		require.Error(t, note.Consume(decimal.NewFromInt(1)))
	})
}

func TestCreditNote_Void(t *testing.T) {
	t.Run("should void an active note", func(t *testing.T) {
		note := activeNote(t, 10)

		require.NoError(t, note.Void())

		assert.Equal(t, creditnote.StatusVoided, note.Status())
	})

	t.Run("should not void twice", func(t *testing.T) {
		note := activeNote(t, 10)
		require.NoError(t, note.Void())

		require.Error(t, note.Void())
	})
}

func TestRestoreCreditNote(t *testing.T) {
	store, err := kernel.NewStoreContext(kernel.NewUUID())
	require.NoError(t, err)

	t.Run("should restore a partially consumed note", func(t *testing.T) {
		createdAt := time.Now().UTC().Add(-time.Hour)
		updatedAt := time.Now().UTC()

		note, err := creditnote.RestoreCreditNote(
			kernel.NewUUID(), store, kernel.NewUUID(),
			decimal.NewFromInt(100), decimal.NewFromInt(40),
			creditnote.StatusActive, 2, createdAt, updatedAt,
		)

		require.NoError(t, err)
		assert.True(t, note.Remaining().Equal(decimal.NewFromInt(60)))
		assert.Equal(t, 2, note.Version())
	})

	t.Run("should fail when used amount exceeds the amount", func(t *testing.T) {
		_, err := creditnote.RestoreCreditNote(
			kernel.NewUUID(), store, kernel.NewUUID(),
			decimal.NewFromInt(100), decimal.NewFromInt(120),
			creditnote.StatusActive, 0, time.Now(), time.Now(),
		)

		require.Error(t, err)
	})
}
