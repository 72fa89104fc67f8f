// Package orderrepo persists order aggregates: the orders table plus the
// order_items snapshot lines, mapped to and from the domain model.
package orderrepo

import (
	"time"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	ShopID     uuid.UUID `gorm:"type:uuid;index"`
	Status     int       `gorm:"index"`

	Subtotal    int64
	DeliveryFee int64
	PlatformFee int64
	TotalAmount int64

	DeliveryAddress string
	Phone           string
	Notes           string
	PaymentMethod   string
	PaymentStatus   string

	CreatedAt time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName maps the DTO to the "orders" table.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one snapshot line of an order.
type ItemDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductName string
	Quantity    int
	UnitPrice   int64
	TotalPrice  int64
}

// TableName maps the DTO to the "order_items" table.
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			TotalPrice:  item.TotalPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		ShopID:          aggregate.ShopID().Bytes(),
		Status:          int(aggregate.Status()),
		Subtotal:        aggregate.Subtotal().Amount(),
		DeliveryFee:     aggregate.DeliveryFee().Amount(),
		PlatformFee:     aggregate.PlatformFee().Amount(),
		TotalAmount:     aggregate.TotalAmount().Amount(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Phone:           aggregate.Phone(),
		Notes:           aggregate.Notes(),
		PaymentMethod:   aggregate.PaymentMethod(),
		PaymentStatus:   string(aggregate.PaymentStatus()),
		CreatedAt:       aggregate.CreatedAt(),
		Items:           items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, line := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(line.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		unitPrice, itemErr := kernel.NewMoney(line.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewItem(productID, line.ProductName, line.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	platformFee, err := kernel.NewMoney(dto.PlatformFee)
	if err != nil {
		return nil, err
	}
	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, shopID,
		items,
		order.Status(dto.Status),
		subtotal, deliveryFee, platformFee, totalAmount,
		dto.DeliveryAddress, dto.Phone, dto.Notes, dto.PaymentMethod,
		order.PaymentStatus(dto.PaymentStatus),
		dto.CreatedAt,
	)
}
