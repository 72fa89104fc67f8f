package http

import (
	"time"

	"sokoni/internal/core/application/usecases/queries"
)

// Request bodies.

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	DeliveryAddress string `json:"delivery_address"`
	Phone           string `json:"phone"`
	Notes           string `json:"notes"`
	PaymentMethod   string `json:"payment_method"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

type RegisterRiderRequest struct {
	VehicleType   string `json:"vehicle_type"`
	VehiclePlate  string `json:"vehicle_plate"`
	LicenseNumber string `json:"license_number"`
}

type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

type UpdateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

// Response bodies. Monetary amounts are integer TZS.

type CheckoutResponse struct {
	OrderIDs []string `json:"order_ids"`
}

type CartLineResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	ShopID      string `json:"shop_id"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	LineTotal   int64  `json:"line_total"`
	Available   bool   `json:"available"`
}

type CartResponse struct {
	CustomerID string             `json:"customer_id"`
	Lines      []CartLineResponse `json:"lines"`
	Subtotal   int64              `json:"subtotal"`
}

type OrderItemResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	TotalPrice  int64  `json:"total_price"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	CustomerID      string              `json:"customer_id"`
	ShopID          string              `json:"shop_id"`
	Status          string              `json:"status"`
	Subtotal        int64               `json:"subtotal"`
	DeliveryFee     int64               `json:"delivery_fee"`
	PlatformFee     int64               `json:"platform_fee"`
	TotalAmount     int64               `json:"total_amount"`
	DeliveryAddress string              `json:"delivery_address"`
	Phone           string              `json:"phone"`
	Notes           string              `json:"notes,omitempty"`
	PaymentMethod   string              `json:"payment_method"`
	PaymentStatus   string              `json:"payment_status"`
	CreatedAt       time.Time           `json:"created_at"`
	Items           []OrderItemResponse `json:"items"`
}

type OrderSummaryResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	ShopID      string    `json:"shop_id"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProductResponse struct {
	ID            string `json:"id"`
	ShopID        string `json:"shop_id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	DiscountPrice *int64 `json:"discount_price,omitempty"`
	StockQuantity int    `json:"stock_quantity"`
}

type RiderStatsResponse struct {
	RiderID          string `json:"rider_id"`
	IsAvailable      bool   `json:"is_available"`
	IsVerified       bool   `json:"is_verified"`
	TotalDeliveries  int    `json:"total_deliveries"`
	TotalEarnings    int64  `json:"total_earnings"`
	TodayDeliveries  int    `json:"today_deliveries"`
	TodayEarnings    int64  `json:"today_earnings"`
	ActiveDeliveries int    `json:"active_deliveries"`
}

type AvailableDeliveryResponse struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"order_id"`
	PickupAddress   string    `json:"pickup_address"`
	DeliveryAddress string    `json:"delivery_address"`
	DistanceKm      float64   `json:"distance_km"`
	Fee             int64     `json:"fee"`
	CreatedAt       time.Time `json:"created_at"`
}

type ActiveDeliveryResponse struct {
	ID              string     `json:"id"`
	OrderID         string     `json:"order_id"`
	Status          string     `json:"status"`
	PickupAddress   string     `json:"pickup_address"`
	DeliveryAddress string     `json:"delivery_address"`
	DistanceKm      float64    `json:"distance_km"`
	RiderEarnings   int64      `json:"rider_earnings"`
	AssignedAt      *time.Time `json:"assigned_at,omitempty"`
	PickedUpAt      *time.Time `json:"picked_up_at,omitempty"`
}

func toCartResponse(view queries.CartView) CartResponse {
	lines := make([]CartLineResponse, len(view.Lines))
	for i, line := range view.Lines {
		lines[i] = CartLineResponse{
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			ShopID:      line.ShopID.String(),
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal,
			Available:   line.Available,
		}
	}
	return CartResponse{
		CustomerID: view.CustomerID.String(),
		Lines:      lines,
		Subtotal:   view.Subtotal,
	}
}

func toOrderResponse(detail queries.OrderDetail) OrderResponse {
	items := make([]OrderItemResponse, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = OrderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		}
	}
	return OrderResponse{
		ID:              detail.ID.String(),
		CustomerID:      detail.CustomerID.String(),
		ShopID:          detail.ShopID.String(),
		Status:          detail.Status,
		Subtotal:        detail.Subtotal,
		DeliveryFee:     detail.DeliveryFee,
		PlatformFee:     detail.PlatformFee,
		TotalAmount:     detail.TotalAmount,
		DeliveryAddress: detail.DeliveryAddress,
		Phone:           detail.Phone,
		Notes:           detail.Notes,
		PaymentMethod:   detail.PaymentMethod,
		PaymentStatus:   detail.PaymentStatus,
		CreatedAt:       detail.CreatedAt,
		Items:           items,
	}
}

func toOrderSummaryResponses(summaries []queries.OrderSummary) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, len(summaries))
	for i, s := range summaries {
		response[i] = OrderSummaryResponse{
			ID:          s.ID.String(),
			CustomerID:  s.CustomerID.String(),
			ShopID:      s.ShopID.String(),
			Status:      s.Status,
			TotalAmount: s.TotalAmount,
			CreatedAt:   s.CreatedAt,
		}
	}
	return response
}

func toProductResponses(products []queries.ProductSummary) []ProductResponse {
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ProductResponse{
			ID:            p.ID.String(),
			ShopID:        p.ShopID.String(),
			Name:          p.Name,
			Price:         p.Price,
			DiscountPrice: p.DiscountPrice,
			StockQuantity: p.StockQuantity,
		}
	}
	return response
}

func toAvailableDeliveryResponses(deliveries []queries.AvailableDelivery) []AvailableDeliveryResponse {
	response := make([]AvailableDeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = AvailableDeliveryResponse{
			ID:              d.ID.String(),
			OrderID:         d.OrderID.String(),
			PickupAddress:   d.PickupAddress,
			DeliveryAddress: d.DeliveryAddress,
			DistanceKm:      d.DistanceKm,
			Fee:             d.Fee,
			CreatedAt:       d.CreatedAt,
		}
	}
	return response
}

func toActiveDeliveryResponse(d queries.ActiveDelivery) ActiveDeliveryResponse {
	return ActiveDeliveryResponse{
		ID:              d.ID.String(),
		OrderID:         d.OrderID.String(),
		Status:          d.Status,
		PickupAddress:   d.PickupAddress,
		DeliveryAddress: d.DeliveryAddress,
		DistanceKm:      d.DistanceKm,
		RiderEarnings:   d.RiderEarnings,
		AssignedAt:      d.AssignedAt,
		PickedUpAt:      d.PickedUpAt,
	}
}

func toRiderStatsResponse(stats queries.RiderStats) RiderStatsResponse {
	return RiderStatsResponse{
		RiderID:          stats.RiderID.String(),
		IsAvailable:      stats.IsAvailable,
		IsVerified:       stats.IsVerified,
		TotalDeliveries:  stats.TotalDeliveries,
		TotalEarnings:    stats.TotalEarnings,
		TodayDeliveries:  stats.TodayDeliveries,
		TodayEarnings:    stats.TodayEarnings,
		ActiveDeliveries: stats.ActiveDeliveries,
	}
}
