package queries

import (
	"context"

	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllReturnsQueryHandler lists return summaries from the database.
type GetAllReturnsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllReturnsQueryHandler creates a handler for return listing queries.
func NewGetAllReturnsQueryHandler(db *gorm.DB) GetAllReturnsQueryHandler {
	return GetAllReturnsQueryHandler{db: db}
}

// Handle executes the listing, newest first.
func (h GetAllReturnsQueryHandler) Handle(ctx context.Context, query GetAllReturnsQuery) ([]GetAllReturnsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			order_id,
			supplier_id,
			status,
			total_amount,
			credit_note_id,
			created_at,
			updated_at
		FROM returns
		WHERE store_id = ?
		ORDER BY created_at DESC
	`, query.Store().StoreID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]GetAllReturnsQueryResponse, 0)
	for rows.Next() {
		var resp GetAllReturnsQueryResponse
		var returnID uuid.UUID
		var orderID, supplierID, creditNoteID uuid.NullUUID

		err = rows.Scan(
			&returnID,
			&resp.Kind,
			&orderID,
			&supplierID,
			&resp.Status,
			&resp.TotalAmount,
			&creditNoteID,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ReturnID, err = kernel.UUIDFromBytes(returnID[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = optionalUUID(orderID); err != nil {
			return nil, err
		}
		if resp.SupplierID, err = optionalUUID(supplierID); err != nil {
			return nil, err
		}
		if resp.CreditNoteID, err = optionalUUID(creditNoteID); err != nil {
			return nil, err
		}

		result = append(result, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
