package queries

import (
	"context"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders scoped to the requesting actor.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing, newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT o.id, o.customer_id, o.shop_id, o.status, o.total_amount, o.created_at
		FROM orders o
	`
	args := make([]any, 0, 2)

	switch query.Role() {
	case kernel.RoleCustomer:
		sql += ` WHERE o.customer_id = ?`
		args = append(args, query.ActorID().Bytes())
	case kernel.RoleSeller:
		sql += ` JOIN shops s ON s.id = o.shop_id WHERE s.seller_id = ?`
		args = append(args, query.ActorID().Bytes())
	case kernel.RoleRider:
		sql += ` JOIN deliveries d ON d.order_id = o.id WHERE d.rider_id = ?`
		args = append(args, query.ActorID().Bytes())
	default: // admin sees everything
		sql += ` WHERE TRUE`
	}

	if query.Status() != nil {
		sql += ` AND o.status = ?`
		args = append(args, int(*query.Status()))
	}
	sql += ` ORDER BY o.created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		var id, customerID, shopID uuid.UUID
		var status int
		var summary OrderSummary

		err = rows.Scan(&id, &customerID, &shopID, &status, &summary.TotalAmount, &summary.CreatedAt)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if summary.ShopID, err = kernel.UUIDFromBytes(shopID[:]); err != nil {
			return nil, err
		}
		summary.Status = order.Status(status).String()
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
