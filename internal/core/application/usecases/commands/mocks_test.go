package commands_test

import (
	"context"
	"testing"
	"time"

	"sokoni/internal/core/application/usecases/commands"
	"sokoni/internal/core/domain/model/cart"
	"sokoni/internal/core/domain/model/delivery"
	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/notification"
	"sokoni/internal/core/domain/model/order"
	"sokoni/internal/core/domain/model/product"
	"sokoni/internal/core/domain/model/rider"
	"sokoni/internal/core/domain/model/shop"
	"sokoni/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatusFrom(ctx context.Context, o *order.Order, from order.Status) error {
	args := m.Called(ctx, o, from)
	return args.Error(0)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) ClaimPending(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) UpdateStatusFrom(ctx context.Context, d *delivery.Delivery, from delivery.Status) error {
	args := m.Called(ctx, d, from)
	return args.Error(0)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) Update(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockProductRepository) RestoreStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockShopRepository struct{ mock.Mock }

func (m *MockShopRepository) Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockOutboxRepository) GetQueued(ctx context.Context, limit int) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

func (m *MockOutboxRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockCartStore struct{ mock.Mock }

func (m *MockCartStore) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartStore) Save(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartStore) Clear(ctx context.Context, customerID kernel.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// MockUoW satisfies every narrow unit-of-work interface in this package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) RiderRepository() ports.RiderRepository {
	return m.Called().Get(0).(ports.RiderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) ShopRepository() ports.ShopRepository {
	return m.Called().Get(0).(ports.ShopRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return m.Called().Get(0).(commands.CheckoutUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return m.Called().Get(0).(commands.DeliveryUoW)
}

type MockRiderUoWFactory struct{ mock.Mock }

func (m *MockRiderUoWFactory) Create() commands.RiderUoW {
	return m.Called().Get(0).(commands.RiderUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	return m.Called().Get(0).(commands.OutboxUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, aggregate *notification.Notification) error {
	return m.Called(ctx, aggregate).Error(0)
}

// Fixtures shared by the handler tests.

func fixtureOrder(t *testing.T, customerID, shopID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Kitenge fabric", 2, kernel.MustMoney(10000))
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, shopID,
		[]order.Item{item},
		status,
		kernel.MustMoney(20000), kernel.MustMoney(2000), kernel.MustMoney(1000),
		kernel.MustMoney(23000),
		"Mikocheni B, Dar es Salaam", "+255700000001", "", "cash",
		order.PaymentUnpaid,
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func fixtureDelivery(t *testing.T, orderID kernel.UUID, riderID *kernel.UUID, status delivery.Status) *delivery.Delivery {
	t.Helper()
	var assignedAt *time.Time
	if riderID != nil {
		now := time.Now()
		assignedAt = &now
	}
	earnings := kernel.Money{}
	if riderID != nil {
		earnings = kernel.MustMoney(1600)
	}
	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), orderID, riderID, status,
		"Kariakoo Market", "Mikocheni B", 5,
		kernel.MustMoney(2000), earnings,
		assignedAt, nil, nil, time.Now(),
	)
	require.NoError(t, err)
	return d
}

func fixtureRider(t *testing.T, id kernel.UUID, verified, available bool) *rider.Rider {
	t.Helper()
	r, err := rider.RestoreRider(
		id, rider.VehicleMotorcycle, "T 123 ABC", "DL-445566",
		available, verified, 0, kernel.Money{}, time.Now(),
	)
	require.NoError(t, err)
	return r
}

func fixtureShop(t *testing.T, id, sellerID kernel.UUID) *shop.Shop {
	t.Helper()
	s, err := shop.RestoreShop(id, sellerID, "Mama Ntilie Shop", "Kariakoo Market", true)
	require.NoError(t, err)
	return s
}

func fixtureProduct(t *testing.T, id, shopID kernel.UUID, priceTZS int64, stock int) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(id, shopID, "Kitenge fabric", kernel.MustMoney(priceTZS), nil, stock, true)
	require.NoError(t, err)
	return p
}
