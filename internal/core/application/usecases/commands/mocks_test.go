package commands_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/creditnote"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/model/returns"
	"procurement/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, store kernel.StoreContext, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, store, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllOverdue(ctx context.Context, before time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockReturnRepository struct{ mock.Mock }

func (m *MockReturnRepository) Add(ctx context.Context, r *returns.Return) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReturnRepository) Update(ctx context.Context, r *returns.Return) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReturnRepository) Get(ctx context.Context, store kernel.StoreContext, id kernel.UUID) (*returns.Return, error) {
	args := m.Called(ctx, store, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*returns.Return), args.Error(1)
}

type MockCreditNoteRepository struct{ mock.Mock }

func (m *MockCreditNoteRepository) Add(ctx context.Context, n *creditnote.CreditNote) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockCreditNoteRepository) Update(ctx context.Context, n *creditnote.CreditNote) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockCreditNoteRepository) Get(ctx context.Context, store kernel.StoreContext, id kernel.UUID) (*creditnote.CreditNote, error) {
	args := m.Called(ctx, store, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*creditnote.CreditNote), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, store kernel.StoreContext, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, store, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetAllByStore(ctx context.Context, store kernel.StoreContext) ([]*product.Product, error) {
	args := m.Called(ctx, store)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockProductMappingRepository struct{ mock.Mock }

func (m *MockProductMappingRepository) Upsert(ctx context.Context, store kernel.StoreContext, supplierID kernel.UUID, catalogID string, productID kernel.UUID) error {
	args := m.Called(ctx, store, supplierID, catalogID, productID)
	return args.Error(0)
}
func (m *MockProductMappingRepository) GetBySupplier(ctx context.Context, store kernel.StoreContext, supplierID kernel.UUID) (map[string]kernel.UUID, error) {
	args := m.Called(ctx, store, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]kernel.UUID), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeliveryUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockDeliveryUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockDeliveryUoW) ProductMappingRepository() ports.ProductMappingRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductMappingRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockReturnUoW struct{ mock.Mock }

func (m *MockReturnUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReturnUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReturnUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReturnUoW) ReturnRepository() ports.ReturnRepository {
	args := m.Called()
	return args.Get(0).(ports.ReturnRepository)
}
func (m *MockReturnUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockReturnUoWFactory struct{ mock.Mock }

func (m *MockReturnUoWFactory) Create() commands.ReturnUoW {
	args := m.Called()
	return args.Get(0).(commands.ReturnUoW)
}

type MockCreditNoteUoW struct{ mock.Mock }

func (m *MockCreditNoteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreditNoteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreditNoteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreditNoteUoW) ReturnRepository() ports.ReturnRepository {
	args := m.Called()
	return args.Get(0).(ports.ReturnRepository)
}
func (m *MockCreditNoteUoW) CreditNoteRepository() ports.CreditNoteRepository {
	args := m.Called()
	return args.Get(0).(ports.CreditNoteRepository)
}

type MockCreditNoteUoWFactory struct{ mock.Mock }

func (m *MockCreditNoteUoWFactory) Create() commands.CreditNoteUoW {
	args := m.Called()
	return args.Get(0).(commands.CreditNoteUoW)
}

// Test fixtures shared by the handler tests.

func testStore(t *testing.T) kernel.StoreContext {
	t.Helper()
	store, err := kernel.NewStoreContext(kernel.NewUUID())
	require.NoError(t, err)
	return store
}

func testOrderItem(t *testing.T, catalogID string, quantity int) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), catalogID, "Item "+catalogID, "Épicerie", "", quantity, decimal.NewFromInt(3))
	require.NoError(t, err)
	return item
}

func testShippedOrder(t *testing.T, store kernel.StoreContext, connected bool, items ...*order.Item) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []*order.Item{testOrderItem(t, "cat-1", 10)}
	}
	ord, err := order.NewOrder(kernel.NewUUID(), store, kernel.NewUUID(), items, connected)
	require.NoError(t, err)
	require.NoError(t, ord.TransitionTo(order.Confirmed))
	require.NoError(t, ord.TransitionTo(order.Shipped))
	return ord
}

func testPendingReturn(t *testing.T, store kernel.StoreContext) *returns.Return {
	t.Helper()
	item, err := returns.NewItem(kernel.NewUUID(), "Tomates", 2, decimal.NewFromInt(50), "")
	require.NoError(t, err)
	supplierID := kernel.NewUUID()
	ret, err := returns.NewReturn(kernel.NewUUID(), store, returns.KindSupplier, []*returns.Item{item}, nil, &supplierID, "")
	require.NoError(t, err)
	return ret
}
