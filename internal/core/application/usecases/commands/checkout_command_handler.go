package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sokoni/internal/core/domain/model/cart"
	"sokoni/internal/core/domain/model/delivery"
	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/notification"
	"sokoni/internal/core/domain/model/order"
	"sokoni/internal/core/domain/model/product"
	"sokoni/internal/core/domain/services"
	"sokoni/internal/core/ports"
	"sokoni/internal/pkg/errs"
)

// CheckoutCommandHandler turns the customer's cart into orders. Lines are
// grouped per shop; each group becomes one order with a pending delivery
// and a queued confirmation notification. The cart is cleared only after
// the transaction commits.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	cartStore  ports.CartStore
	feePolicy  services.FeePolicy
	logger     *slog.Logger
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	cartStore ports.CartStore,
	feePolicy services.FeePolicy,
	logger *slog.Logger,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		cartStore:  cartStore,
		feePolicy:  feePolicy,
		logger:     logger.With("component", "checkout"),
	}
}

// Handle processes the checkout and returns the created order IDs, one per
// shop represented in the cart.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) ([]kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	customerCart, err := h.cartStore.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if customerCart.IsEmpty() {
		return nil, cart.ErrCartIsEmpty
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products, err := h.loadProducts(ctx, uow.ProductRepository(), customerCart)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, 1)
	for _, group := range groupLinesByShop(customerCart.Lines(), products) {
		orderID, err := h.placeShopOrder(ctx, uow, cmd, group, products)
		if err != nil {
			return nil, err
		}
		orderIDs = append(orderIDs, orderID)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Redis is outside the transaction. The orders are committed at this
	// point, so a failed clear leaves a stale cart but must not surface as
	// a checkout failure and invite a duplicating retry.
	if err = h.cartStore.Clear(ctx, cmd.CustomerID()); err != nil {
		h.logger.WarnContext(ctx, "Cart clear after checkout failed",
			"customer_id", cmd.CustomerID().String(), "error", err)
	}

	return orderIDs, nil
}

func (h *CheckoutCommandHandler) loadProducts(
	ctx context.Context,
	repo ports.ProductRepository,
	customerCart *cart.Cart,
) (map[kernel.UUID]*product.Product, error) {
	lines := customerCart.Lines()
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	loaded, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	products := make(map[kernel.UUID]*product.Product, len(loaded))
	for _, p := range loaded {
		products[p.ID()] = p
	}

	for _, line := range lines {
		p, ok := products[line.ProductID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("productID", line.ProductID.String())
		}
		if err = p.ValidatePurchasable(line.Quantity); err != nil {
			return nil, fmt.Errorf("product %s: %w", line.ProductID, err)
		}
	}

	return products, nil
}

// shopGroup is the slice of cart lines belonging to one shop, in cart order.
type shopGroup struct {
	shopID kernel.UUID
	lines  []cart.Line
}

func groupLinesByShop(lines []cart.Line, products map[kernel.UUID]*product.Product) []shopGroup {
	groups := make([]shopGroup, 0, 1)
	index := make(map[kernel.UUID]int)

	for _, line := range lines {
		shopID := products[line.ProductID].ShopID()
		i, ok := index[shopID]
		if !ok {
			i = len(groups)
			index[shopID] = i
			groups = append(groups, shopGroup{shopID: shopID})
		}
		groups[i].lines = append(groups[i].lines, line)
	}

	return groups
}

func (h *CheckoutCommandHandler) placeShopOrder(
	ctx context.Context,
	uow CheckoutUoW,
	cmd CheckoutCommand,
	group shopGroup,
	products map[kernel.UUID]*product.Product,
) (kernel.UUID, error) {
	orderShop, err := uow.ShopRepository().Get(ctx, group.shopID)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = orderShop.ValidateCanSell(); err != nil {
		return kernel.UUID{}, err
	}

	items := make([]order.Item, 0, len(group.lines))
	subtotal := kernel.Money{}
	for _, line := range group.lines {
		p := products[line.ProductID]
		item, err := order.NewItem(p.ID(), p.Name(), line.Quantity, p.EffectivePrice())
		if err != nil {
			return kernel.UUID{}, err
		}
		items = append(items, item)
		subtotal = subtotal.Add(item.TotalPrice())
	}

	now := time.Now().UTC()
	deliveryFee := h.feePolicy.DeliveryFee()
	platformFee := h.feePolicy.PlatformFee(subtotal)

	newOrder, err := order.NewOrder(
		kernel.NewUUID(), cmd.CustomerID(), group.shopID,
		items, deliveryFee, platformFee,
		cmd.DeliveryAddress(), cmd.Phone(), cmd.Notes(), cmd.PaymentMethod(),
		now,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	for _, line := range group.lines {
		if err = uow.ProductRepository().DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			return kernel.UUID{}, err
		}
	}

	newDelivery, err := delivery.NewDelivery(
		kernel.NewUUID(), newOrder.ID(),
		orderShop.Address(), cmd.DeliveryAddress(),
		0, deliveryFee, now,
	)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return kernel.UUID{}, err
	}

	err = queueNotification(ctx, uow.OutboxRepository(),
		cmd.CustomerID(), kernel.RoleCustomer,
		notification.EventOrderConfirmation,
		"Order placed",
		fmt.Sprintf("Your order at %s was placed. Total: %s.", orderShop.Name(), newOrder.TotalAmount()),
		map[string]any{
			"order_id":     newOrder.ID().String(),
			"shop_id":      group.shopID.String(),
			"status":       newOrder.Status().String(),
			"total_amount": newOrder.TotalAmount().Amount(),
		},
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	return newOrder.ID(), nil
}
