// Package returnrepo provides data transfer objects and mapping functions for
// return persistence.
package returnrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/returns"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReturnDTO represents the database structure for persisting return aggregates.
type ReturnDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID      uuid.UUID `gorm:"type:uuid;index"`
	Kind         string
	OrderID      *uuid.UUID `gorm:"type:uuid;index"`
	SupplierID   *uuid.UUID `gorm:"type:uuid"`
	Status       string     `gorm:"index"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric"`
	CreditNoteID *uuid.UUID `gorm:"type:uuid"`
	Notes        string
	Version      int
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`

	Items []ItemDTO `gorm:"foreignKey:ReturnID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for return entities.
func (ReturnDTO) TableName() string {
	return "returns"
}

// ItemDTO represents one returned product line.
// Lines are value objects without identity of their own, so the primary key
// is a plain auto increment.
type ItemDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	ReturnID    uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric"`
	Reason      string
}

// TableName specifies the database table name for return line items.
func (ItemDTO) TableName() string {
	return "return_items"
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalFromBytes(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// fromDomain converts a return domain aggregate to its database representation.
func fromDomain(aggregate *returns.Return) ReturnDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ReturnID:    aggregate.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Reason:      item.Reason(),
		})
	}

	return ReturnDTO{
		ID:           aggregate.ID().Bytes(),
		StoreID:      aggregate.Store().StoreID().Bytes(),
		Kind:         aggregate.Kind().String(),
		OrderID:      optionalBytes(aggregate.OrderID()),
		SupplierID:   optionalBytes(aggregate.SupplierID()),
		Status:       aggregate.Status().String(),
		TotalAmount:  aggregate.TotalAmount(),
		CreditNoteID: optionalBytes(aggregate.CreditNoteID()),
		Notes:        aggregate.Notes(),
		Version:      aggregate.Version(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		Items:        items,
	}
}

// toDomain converts a database DTO to a return domain aggregate.
func toDomain(dto ReturnDTO) (*returns.Return, error) {
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
	kind, err := returns.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}
	status, err := returns.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	orderID, err := optionalFromBytes(dto.OrderID)
	if err != nil {
		return nil, err
	}
	supplierID, err := optionalFromBytes(dto.SupplierID)
	if err != nil {
		return nil, err
	}
	creditNoteID, err := optionalFromBytes(dto.CreditNoteID)
	if err != nil {
		return nil, err
	}

	items := make([]*returns.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := returns.NewItem(
			productID,
			itemDTO.ProductName,
			itemDTO.Quantity,
			itemDTO.UnitPrice,
			itemDTO.Reason,
		)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return returns.RestoreReturn(
		id,
		store,
		kind,
		items,
		orderID,
		supplierID,
		status,
		creditNoteID,
		dto.Notes,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
