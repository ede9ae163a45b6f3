package queries

import (
	"context"

	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCreditNotesQueryHandler lists credit notes from the database.
type GetAllCreditNotesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCreditNotesQueryHandler creates a handler for credit note listings.
func NewGetAllCreditNotesQueryHandler(db *gorm.DB) GetAllCreditNotesQueryHandler {
	return GetAllCreditNotesQueryHandler{db: db}
}

// Handle executes the listing, newest first.
func (h GetAllCreditNotesQueryHandler) Handle(ctx context.Context, query GetAllCreditNotesQuery) ([]GetAllCreditNotesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			return_id,
			amount,
			used_amount,
			status,
			created_at,
			updated_at
		FROM credit_notes
		WHERE store_id = ?
		ORDER BY created_at DESC
	`, query.Store().StoreID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]GetAllCreditNotesQueryResponse, 0)
	for rows.Next() {
		var resp GetAllCreditNotesQueryResponse
		var noteID, returnID uuid.UUID

		err = rows.Scan(
			&noteID,
			&returnID,
			&resp.Amount,
			&resp.UsedAmount,
			&resp.Status,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.CreditNoteID, err = kernel.UUIDFromBytes(noteID[:]); err != nil {
			return nil, err
		}
		if resp.ReturnID, err = kernel.UUIDFromBytes(returnID[:]); err != nil {
			return nil, err
		}
		resp.Remaining = resp.Amount.Sub(resp.UsedAmount)

		notes = append(notes, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}
