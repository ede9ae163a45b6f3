package heuristicmatcher_test

import (
	"testing"

	"procurement/internal/adapters/out/heuristicmatcher"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(t *testing.T, name, category string) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "CAT-001", name, category, "", 5, decimal.NewFromInt(3))
	require.NoError(t, err)
	return item
}

func testProduct(t *testing.T, name, category string) *product.Product {
	t.Helper()
	store, err := kernel.NewStoreContext(kernel.NewUUID())
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), store, name, category, "", decimal.NewFromInt(3), 10)
	require.NoError(t, err)
	return p
}

func TestMatch_ExactNameMatch(t *testing.T) {
	matcher := heuristicmatcher.NewMatcher()
	target := testProduct(t, "Tomates grappe", "Fruits et légumes")
	inventory := []*product.Product{
		testProduct(t, "Huile d'olive 1L", "Épicerie"),
		target,
	}

	result, err := matcher.Match(t.Context(), testItem(t, "Tomates grappe", "Fruits et légumes"), inventory)

	require.NoError(t, err)
	require.NotNil(t, result.ProductID)
	assert.True(t, result.ProductID.IsEqual(target.ID()))
	assert.InDelta(t, 0.95, result.Confidence, 0.001)
	assert.Equal(t, "exact name match", result.Reason)
}

func TestMatch_IgnoresCaseAndPunctuation(t *testing.T) {
	matcher := heuristicmatcher.NewMatcher()
	target := testProduct(t, "Huile d'olive", "Épicerie")

	result, err := matcher.Match(t.Context(), testItem(t, "HUILE OLIVE", "Épicerie"), []*product.Product{target})

	require.NoError(t, err)
	require.NotNil(t, result.ProductID)
	assert.InDelta(t, 0.95, result.Confidence, 0.001)
}

func TestMatch_PartialOverlap(t *testing.T) {
	matcher := heuristicmatcher.NewMatcher()
	target := testProduct(t, "Tomates grappe bio", "Fruits et légumes")

	result, err := matcher.Match(t.Context(), testItem(t, "Tomates grappe", "Fruits et légumes"), []*product.Product{target})

	require.NoError(t, err)
	require.NotNil(t, result.ProductID)
	assert.Greater(t, result.Confidence, 0.5)
	assert.Less(t, result.Confidence, 0.95)
	assert.Contains(t, result.Reason, "Tomates grappe bio")
}

func TestMatch_CategoryBonusBreaksTies(t *testing.T) {
	matcher := heuristicmatcher.NewMatcher()
	sameCategory := testProduct(t, "Jus d'orange pressé", "Boissons")
	otherCategory := testProduct(t, "Jus d'orange pressé", "Épicerie")

	result, err := matcher.Match(
		t.Context(),
		testItem(t, "Jus orange", "Boissons"),
		[]*product.Product{otherCategory, sameCategory},
	)

	require.NoError(t, err)
	require.NotNil(t, result.ProductID)
	assert.True(t, result.ProductID.IsEqual(sameCategory.ID()))
}

func TestMatch_NothingSimilar(t *testing.T) {
	matcher := heuristicmatcher.NewMatcher()
	inventory := []*product.Product{testProduct(t, "Farine T55", "Épicerie")}

	result, err := matcher.Match(t.Context(), testItem(t, "Saumon fumé", "Marée"), inventory)

	require.NoError(t, err)
	assert.Nil(t, result.ProductID)
	assert.Zero(t, result.Confidence)
	assert.Equal(t, "no similar product in inventory", result.Reason)
}

func TestMatch_EmptyInventory(t *testing.T) {
	matcher := heuristicmatcher.NewMatcher()

	result, err := matcher.Match(t.Context(), testItem(t, "Tomates grappe", ""), nil)

	require.NoError(t, err)
	assert.Nil(t, result.ProductID)
	assert.Zero(t, result.Confidence)
}

func TestMatch_IsDeterministic(t *testing.T) {
	matcher := heuristicmatcher.NewMatcher()
	inventory := []*product.Product{
		testProduct(t, "Tomates cerises", "Fruits et légumes"),
		testProduct(t, "Tomates grappe", "Fruits et légumes"),
	}
	item := testItem(t, "Tomates grappe", "Fruits et légumes")

	first, err := matcher.Match(t.Context(), item, inventory)
	require.NoError(t, err)
	second, err := matcher.Match(t.Context(), item, inventory)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
