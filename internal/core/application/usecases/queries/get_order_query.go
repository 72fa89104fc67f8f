package queries

import (
	"errors"
	"time"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its items.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates an order detail query.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// OrderItemDetail is one item line of an order detail.
type OrderItemDetail struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   int64
	TotalPrice  int64
}

// OrderDetail is the full order read model.
type OrderDetail struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	ShopID          kernel.UUID
	Status          string
	Subtotal        int64
	DeliveryFee     int64
	PlatformFee     int64
	TotalAmount     int64
	DeliveryAddress string
	Phone           string
	Notes           string
	PaymentMethod   string
	PaymentStatus   string
	CreatedAt       time.Time
	Items           []OrderItemDetail
}
