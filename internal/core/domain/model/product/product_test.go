package product_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStore(t *testing.T) kernel.StoreContext {
	t.Helper()
	store, err := kernel.NewStoreContext(kernel.NewUUID())
	require.NoError(t, err)
	return store
}

func TestNewProduct(t *testing.T) {
	store := validStore(t)

	t.Run("should create a valid product", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.NewProduct(id, store, "Tomates grappe", "Fruits et Légumes", "Légumes", decimal.NewFromFloat(2.49), 10)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Tomates grappe", p.Name())
		assert.Equal(t, "Fruits et Légumes", p.Category())
		assert.Equal(t, "Légumes", p.Subcategory())
		assert.True(t, p.Price().Equal(decimal.NewFromFloat(2.49)))
		assert.Equal(t, 10, p.Quantity())
		assert.Equal(t, 0, p.Version())
	})

	t.Run("should allow empty category and subcategory", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), store, "Divers", "", "", decimal.NewFromInt(1), 0)

		require.NoError(t, err)
		assert.Empty(t, p.Category())
		assert.Empty(t, p.Subcategory())
	})

	t.Run("should fail without a name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), store, "", "Épicerie", "", decimal.NewFromInt(1), 0)

		require.Error(t, err)
	})

	t.Run("should fail for a negative price", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), store, "Tomates", "", "", decimal.NewFromInt(-1), 0)

		require.Error(t, err)
	})

	t.Run("should fail for a negative quantity", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), store, "Tomates", "", "", decimal.NewFromInt(1), -3)

		require.Error(t, err)
	})

	t.Run("should fail for a zero-value store", func(t *testing.T) {
		var badStore kernel.StoreContext

		_, err := product.NewProduct(kernel.NewUUID(), badStore, "Tomates", "", "", decimal.NewFromInt(1), 0)

		require.Error(t, err)
	})
}

func TestProduct_IncrementQuantity(t *testing.T) {
	store := validStore(t)

	t.Run("should add delta to the quantity on hand", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), store, "Tomates", "", "", decimal.NewFromInt(2), 5)
		require.NoError(t, err)

		require.NoError(t, p.IncrementQuantity(7))

		assert.Equal(t, 12, p.Quantity())
	})

	t.Run("should reject a non-positive delta", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), store, "Tomates", "", "", decimal.NewFromInt(2), 5)
		require.NoError(t, err)

		require.Error(t, p.IncrementQuantity(0))
		require.Error(t, p.IncrementQuantity(-1))
		assert.Equal(t, 5, p.Quantity())
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var p product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}
