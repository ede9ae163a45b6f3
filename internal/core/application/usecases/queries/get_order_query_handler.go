package queries

import (
	"context"
	"database/sql"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves single-order projections from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order projection queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and assembles the order with its line items.
// Returns ObjectNotFoundError when the order does not exist in the store.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var orderID, supplierID uuid.UUID
	var expectedDelivery sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			supplier_id,
			status,
			total_amount,
			is_connected,
			reconciled,
			notes,
			expected_delivery,
			version,
			created_at,
			updated_at
		FROM orders
		WHERE store_id = ? AND id = ?
	`, query.Store().StoreID().Bytes(), query.OrderID().Bytes()).Row()

	err := row.Scan(
		&orderID,
		&supplierID,
		&resp.Status,
		&resp.TotalAmount,
		&resp.IsConnected,
		&resp.Reconciled,
		&resp.Notes,
		&expectedDelivery,
		&resp.Version,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.SupplierID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if expectedDelivery.Valid {
		t := expectedDelivery.Time
		resp.ExpectedDelivery = &t
	}

	items, received, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items
	resp.ReceivedItems = received

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, map[string]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			catalog_id,
			name,
			category,
			subcategory,
			quantity,
			unit_price,
			received_quantity,
			mapped_product_id
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	received := make(map[string]int)

	for rows.Next() {
		var item OrderItemResponse
		var itemID uuid.UUID
		var unitPrice decimal.Decimal
		var mappedProductID uuid.NullUUID

		err = rows.Scan(
			&itemID,
			&item.CatalogID,
			&item.Name,
			&item.Category,
			&item.Subcategory,
			&item.Quantity,
			&unitPrice,
			&item.ReceivedQuantity,
			&mappedProductID,
		)
		if err != nil {
			return nil, nil, err
		}

		if item.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, nil, err
		}
		if mappedProductID.Valid {
			mapped, err := kernel.UUIDFromBytes(mappedProductID.UUID[:])
			if err != nil {
				return nil, nil, err
			}
			item.MappedProductID = &mapped
		}
		item.UnitPrice = unitPrice
		item.TotalPrice = unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))

		received[item.ItemID.String()] = item.ReceivedQuantity
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return items, received, nil
}
