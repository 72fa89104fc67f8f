package queries

import (
	"context"
	"database/sql"
	"errors"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/order"
	"sokoni/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its item lines.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the read. A missing order yields an ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}

	var detail OrderDetail
	var id, customerID, shopID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_id, shop_id, status,
		       subtotal, delivery_fee, platform_fee, total_amount,
		       delivery_address, phone, notes, payment_method, payment_status,
		       created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id, &customerID, &shopID, &status,
		&detail.Subtotal, &detail.DeliveryFee, &detail.PlatformFee, &detail.TotalAmount,
		&detail.DeliveryAddress, &detail.Phone, &detail.Notes, &detail.PaymentMethod, &detail.PaymentStatus,
		&detail.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderDetail{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	if err != nil {
		return OrderDetail{}, err
	}

	if detail.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderDetail{}, err
	}
	if detail.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderDetail{}, err
	}
	if detail.ShopID, err = kernel.UUIDFromBytes(shopID[:]); err != nil {
		return OrderDetail{}, err
	}
	detail.Status = order.Status(status).String()

	detail.Items, err = h.loadItems(ctx, query.OrderID())
	if err != nil {
		return OrderDetail{}, err
	}
	return detail, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemDetail, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT product_id, product_name, quantity, unit_price, total_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemDetail, 0)
	for rows.Next() {
		var item OrderItemDetail
		var productID uuid.UUID

		err = rows.Scan(&productID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.TotalPrice)
		if err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
