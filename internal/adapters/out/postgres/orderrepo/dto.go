// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StringList stores a string slice as a JSONB column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported column type %T for StringList", value)
	}
}

// OrderDTO represents the database structure for persisting order aggregates.
// The version column backs the optimistic concurrency check performed on update.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID          uuid.UUID `gorm:"type:uuid;index"`
	SupplierID       uuid.UUID `gorm:"type:uuid;index"`
	Status           string    `gorm:"index"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric"`
	IsConnected      bool
	Reconciled       bool
	Notes            string
	ReceiptNotes     StringList `gorm:"type:jsonb"`
	ExpectedDelivery *time.Time
	Version          int
	CreatedAt        time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime:false"`

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one catalog line item of an order.
// ReceivedQuantity is the cumulative quantity received so far.
type ItemDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;index"`
	CatalogID        string    `gorm:"index"`
	Name             string
	Category         string
	Subcategory      string
	Quantity         int
	UnitPrice        decimal.Decimal `gorm:"type:numeric"`
	ReceivedQuantity int
	MappedProductID  *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		var mappedProductID *uuid.UUID
		if id := item.MappedProductID(); id != nil {
			raw := id.Bytes()
			mappedProductID = &raw
		}

		items = append(items, ItemDTO{
			ID:               item.ID().Bytes(),
			OrderID:          aggregate.ID().Bytes(),
			CatalogID:        item.CatalogID(),
			Name:             item.Name(),
			Category:         item.Category(),
			Subcategory:      item.Subcategory(),
			Quantity:         item.Quantity(),
			UnitPrice:        item.UnitPrice(),
			ReceivedQuantity: aggregate.ReceivedQuantity(item.ID()),
			MappedProductID:  mappedProductID,
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		StoreID:          aggregate.Store().StoreID().Bytes(),
		SupplierID:       aggregate.SupplierID().Bytes(),
		Status:           aggregate.Status().String(),
		TotalAmount:      aggregate.TotalAmount(),
		IsConnected:      aggregate.IsConnected(),
		Reconciled:       aggregate.IsReconciled(),
		Notes:            aggregate.Notes(),
		ReceiptNotes:     StringList(aggregate.ReceiptNotes()),
		ExpectedDelivery: aggregate.ExpectedDelivery(),
		Version:          aggregate.Version(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		Items:            items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
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
	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	receivedItems := make(map[kernel.UUID]int, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		var mappedProductID *kernel.UUID
		if itemDTO.MappedProductID != nil {
			mapped, mappedErr := kernel.UUIDFromBytes((*itemDTO.MappedProductID)[:])
			if mappedErr != nil {
				return nil, mappedErr
			}
			mappedProductID = &mapped
		}

		item, itemErr := order.RestoreItem(
			itemID,
			itemDTO.CatalogID,
			itemDTO.Name,
			itemDTO.Category,
			itemDTO.Subcategory,
			itemDTO.Quantity,
			itemDTO.UnitPrice,
			mappedProductID,
		)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
		if itemDTO.ReceivedQuantity > 0 {
			receivedItems[itemID] = itemDTO.ReceivedQuantity
		}
	}

	return order.RestoreOrder(
		id,
		store,
		supplierID,
		items,
		status,
		receivedItems,
		dto.IsConnected,
		dto.Reconciled,
		dto.Notes,
		[]string(dto.ReceiptNotes),
		dto.ExpectedDelivery,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
