// Package creditnoterepo provides data transfer objects and mapping functions
// for credit note persistence.
package creditnoterepo

import (
	"time"

	"procurement/internal/core/domain/model/creditnote"
	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditNoteDTO represents the database structure for persisting credit notes.
type CreditNoteDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID    uuid.UUID `gorm:"type:uuid;index"`
	ReturnID   uuid.UUID `gorm:"type:uuid;index"`
	Amount     decimal.Decimal `gorm:"type:numeric"`
	UsedAmount decimal.Decimal `gorm:"type:numeric"`
	Status     string          `gorm:"index"`
	Version    int
	CreatedAt  time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for credit note entities.
func (CreditNoteDTO) TableName() string {
	return "credit_notes"
}

// fromDomain converts a credit note domain aggregate to its database representation.
func fromDomain(aggregate *creditnote.CreditNote) CreditNoteDTO {
	return CreditNoteDTO{
		ID:         aggregate.ID().Bytes(),
		StoreID:    aggregate.Store().StoreID().Bytes(),
		ReturnID:   aggregate.ReturnID().Bytes(),
		Amount:     aggregate.Amount(),
		UsedAmount: aggregate.UsedAmount(),
		Status:     aggregate.Status().String(),
		Version:    aggregate.Version(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a credit note domain aggregate.
func toDomain(dto CreditNoteDTO) (*creditnote.CreditNote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	store, err := kernel.NewStoreContext(storeID)
	if err != nil {
		return nil, err
	}
	returnID, err := kernel.UUIDFromBytes(dto.ReturnID[:])
	if err != nil {
		return nil, err
	}
	status, err := creditnote.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return creditnote.RestoreCreditNote(
		id,
		store,
		returnID,
		dto.Amount,
		dto.UsedAmount,
		status,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
