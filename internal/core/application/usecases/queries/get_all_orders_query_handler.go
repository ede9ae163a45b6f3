package queries

import (
	"context"
	"database/sql"

	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists order summaries from the database.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the listing with the query's optional filters applied.
// Results are sorted newest first.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			supplier_id,
			status,
			total_amount,
			is_connected,
			reconciled,
			expected_delivery,
			created_at,
			updated_at
		FROM orders
		WHERE store_id = ?
	`
	args := []any{query.Store().StoreID().Bytes()}

	if query.Status() != nil {
		sqlText += ` AND status = ?`
		args = append(args, query.Status().String())
	}
	if query.SupplierID() != nil {
		sqlText += ` AND supplier_id = ?`
		args = append(args, query.SupplierID().Bytes())
	}
	sqlText += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetAllOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var orderID, supplierID uuid.UUID
		var expectedDelivery sql.NullTime

		err = rows.Scan(
			&orderID,
			&supplierID,
			&resp.Status,
			&resp.TotalAmount,
			&resp.IsConnected,
			&resp.Reconciled,
			&expectedDelivery,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.SupplierID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
			return nil, err
		}
		if expectedDelivery.Valid {
			t := expectedDelivery.Time
			resp.ExpectedDelivery = &t
		}

		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
