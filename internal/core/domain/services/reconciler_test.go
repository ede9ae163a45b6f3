package services_test

import (
	"context"
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MatcherMock struct {
	mock.Mock
}

func (m *MatcherMock) Match(ctx context.Context, item *order.Item, inventory []*product.Product) (services.MatchResult, error) {
	args := m.Called(ctx, item, inventory)
	return args.Get(0).(services.MatchResult), args.Error(1)
}

func validStore(t *testing.T) kernel.StoreContext {
	t.Helper()
	store, err := kernel.NewStoreContext(kernel.NewUUID())
	require.NoError(t, err)
	return store
}

func mustItem(t *testing.T, catalogID, name string) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), catalogID, name, "Fruits et Légumes", "Légumes", 5, decimal.NewFromInt(2))
	require.NoError(t, err)
	return item
}

func mustOrder(t *testing.T, items ...*order.Item) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(kernel.NewUUID(), validStore(t), kernel.NewUUID(), items, true)
	require.NoError(t, err)
	return ord
}

func mustProduct(t *testing.T, store kernel.StoreContext, name string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), store, name, "Fruits et Légumes", "Légumes", decimal.NewFromInt(2), 10)
	require.NoError(t, err)
	return p
}

func TestReconciler_SuggestMatches(t *testing.T) {
	ctx := context.Background()
	reconciler := services.NewReconciler()

	t.Run("should prefer an established mapping over the matcher", func(t *testing.T) {
		ord := mustOrder(t, mustItem(t, "cat-1", "Tomates grappe"))
		tomatoes := mustProduct(t, ord.Store(), "Tomates")
		mappings := map[string]kernel.UUID{"cat-1": tomatoes.ID()}
		matcher := &MatcherMock{}

		suggestions, err := reconciler.SuggestMatches(ctx, ord, mappings, []*product.Product{tomatoes}, matcher)

		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, services.SourceMapping, suggestions[0].Source)
		assert.Equal(t, 1.0, suggestions[0].Confidence)
		require.NotNil(t, suggestions[0].MatchedProductID)
		assert.True(t, suggestions[0].MatchedProductID.IsEqual(tomatoes.ID()))
		assert.Equal(t, "Tomates", suggestions[0].MatchedProductName)
		matcher.AssertNotCalled(t, "Match")
	})

	t.Run("should delegate unmapped items to the matcher", func(t *testing.T) {
		item := mustItem(t, "cat-2", "Tomates grappe 500g")
		ord := mustOrder(t, item)
		tomatoes := mustProduct(t, ord.Store(), "Tomates")
		inventory := []*product.Product{tomatoes}

		matcher := &MatcherMock{}
		productID := tomatoes.ID()
		matcher.On("Match", ctx, item, inventory).Return(services.MatchResult{
			ProductID:  &productID,
			Confidence: 0.82,
			Reason:     "name similarity",
		}, nil)

		suggestions, err := reconciler.SuggestMatches(ctx, ord, nil, inventory, matcher)

		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, services.SourceHeuristic, suggestions[0].Source)
		assert.Equal(t, 0.82, suggestions[0].Confidence)
		assert.Equal(t, "name similarity", suggestions[0].Reason)
		assert.Equal(t, "Tomates", suggestions[0].MatchedProductName)
		matcher.AssertExpectations(t)
	})

	t.Run("should pass through a no-match verdict", func(t *testing.T) {
		item := mustItem(t, "cat-3", "Safran en filaments")
		ord := mustOrder(t, item)

		matcher := &MatcherMock{}
		matcher.On("Match", ctx, item, mock.Anything).Return(services.MatchResult{
			Confidence: 0,
			Reason:     "no similar product in inventory",
		}, nil)

		suggestions, err := reconciler.SuggestMatches(ctx, ord, nil, nil, matcher)

		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Nil(t, suggestions[0].MatchedProductID)
		assert.Equal(t, services.ActionCreateNew, suggestions[0].DefaultAction())
	})

	t.Run("should fail without a matcher", func(t *testing.T) {
		ord := mustOrder(t, mustItem(t, "cat-1", "Tomates"))

		_, err := reconciler.SuggestMatches(ctx, ord, nil, nil, nil)

		require.Error(t, err)
	})

	t.Run("should carry catalog fields onto the suggestion", func(t *testing.T) {
		item := mustItem(t, "cat-4", "Courgettes")
		ord := mustOrder(t, item)

		matcher := &MatcherMock{}
		matcher.On("Match", ctx, item, mock.Anything).Return(services.MatchResult{Reason: "no match"}, nil)

		suggestions, err := reconciler.SuggestMatches(ctx, ord, nil, nil, matcher)

		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "cat-4", suggestions[0].CatalogID)
		assert.Equal(t, "Courgettes", suggestions[0].CatalogName)
		assert.Equal(t, "Fruits et Légumes", suggestions[0].CatalogCategory)
		assert.Equal(t, "Légumes", suggestions[0].CatalogSubcategory)
		assert.Equal(t, 5, suggestions[0].Quantity)
	})
}

func TestReconciler_ValidateDecisions(t *testing.T) {
	reconciler := services.NewReconciler()

	link := func(t *testing.T, catalogID string) services.Decision {
		t.Helper()
		d, err := services.NewLinkDecision(catalogID, kernel.NewUUID())
		require.NoError(t, err)
		return d
	}
	create := func(t *testing.T, catalogID string) services.Decision {
		t.Helper()
		d, err := services.NewCreateDecision(catalogID)
		require.NoError(t, err)
		return d
	}

	t.Run("should accept exactly one decision per catalog item", func(t *testing.T) {
		ord := mustOrder(t, mustItem(t, "cat-1", "Tomates"), mustItem(t, "cat-2", "Courgettes"))

		byID, err := reconciler.ValidateDecisions(ord, []services.Decision{link(t, "cat-1"), create(t, "cat-2")})

		require.NoError(t, err)
		require.Len(t, byID, 2)
		assert.False(t, byID["cat-1"].CreateNew())
		assert.True(t, byID["cat-2"].CreateNew())
	})

	t.Run("should reject a decision set that misses an item", func(t *testing.T) {
		ord := mustOrder(t, mustItem(t, "cat-1", "Tomates"), mustItem(t, "cat-2", "Courgettes"))

		_, err := reconciler.ValidateDecisions(ord, []services.Decision{link(t, "cat-1")})

		require.Error(t, err)
	})

	t.Run("should reject duplicate decisions for the same item", func(t *testing.T) {
		ord := mustOrder(t, mustItem(t, "cat-1", "Tomates"))

		_, err := reconciler.ValidateDecisions(ord, []services.Decision{link(t, "cat-1"), create(t, "cat-1")})

		require.Error(t, err)
	})

	t.Run("should reject a decision for an unknown item", func(t *testing.T) {
		ord := mustOrder(t, mustItem(t, "cat-1", "Tomates"))

		_, err := reconciler.ValidateDecisions(ord, []services.Decision{create(t, "cat-9")})

		require.Error(t, err)
	})

	t.Run("should reject a zero-value decision", func(t *testing.T) {
		ord := mustOrder(t, mustItem(t, "cat-1", "Tomates"))

		_, err := reconciler.ValidateDecisions(ord, []services.Decision{{}})

		require.Error(t, err)
	})
}

func TestDefaultAction(t *testing.T) {
	assert.Equal(t, services.ActionLinkProduct, services.DefaultAction(1.0))
	assert.Equal(t, services.ActionLinkProduct, services.DefaultAction(0.7))
	assert.Equal(t, services.ActionAmbiguous, services.DefaultAction(0.69))
	assert.Equal(t, services.ActionAmbiguous, services.DefaultAction(0.4))
	assert.Equal(t, services.ActionCreateNew, services.DefaultAction(0.39))
	assert.Equal(t, services.ActionCreateNew, services.DefaultAction(0))
}
