package commands_test

import (
	"testing"

	"sokoni/internal/core/application/usecases/commands"
	"sokoni/internal/core/domain/model/cart"
	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/product"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	p := fixtureProduct(t, kernel.NewUUID(), kernel.NewUUID(), 10000, 5)

	customerCart, err := cart.NewCart(customerID)
	require.NoError(t, err)

	products := new(MockProductRepository)
	cartStore := new(MockCartStore)
	products.On("Get", mock.Anything, p.ID()).Return(p, nil).Once()
	cartStore.On("Get", mock.Anything, customerID).Return(customerCart, nil).Once()
	cartStore.On("Save", mock.Anything, customerCart).Return(nil).Once()

	cmd, err := commands.NewAddCartItemCommand(customerID, p.ID(), 2)
	require.NoError(t, err)

	h := commands.NewAddCartItemCommandHandler(cartStore, products)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, 2, customerCart.Quantity(p.ID()))
	cartStore.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_StockCheckCountsExistingLine(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	p := fixtureProduct(t, kernel.NewUUID(), kernel.NewUUID(), 10000, 5)

	customerCart, err := cart.RestoreCart(customerID, []cart.Line{
		{ProductID: p.ID(), Quantity: 4},
	})
	require.NoError(t, err)

	products := new(MockProductRepository)
	cartStore := new(MockCartStore)
	products.On("Get", mock.Anything, p.ID()).Return(p, nil).Once()
	cartStore.On("Get", mock.Anything, customerID).Return(customerCart, nil).Once()

	cmd, err := commands.NewAddCartItemCommand(customerID, p.ID(), 2)
	require.NoError(t, err)

	h := commands.NewAddCartItemCommandHandler(cartStore, products)
	require.ErrorIs(t, h.Handle(ctx, cmd), product.ErrInsufficientStock)
	cartStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateCartItemCommandHandler_Handle_ZeroRemovesLine(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()

	customerCart, err := cart.RestoreCart(customerID, []cart.Line{
		{ProductID: productID, Quantity: 3},
	})
	require.NoError(t, err)

	cartStore := new(MockCartStore)
	cartStore.On("Get", mock.Anything, customerID).Return(customerCart, nil).Once()
	cartStore.On("Save", mock.Anything, customerCart).Return(nil).Once()

	cmd, err := commands.NewUpdateCartItemCommand(customerID, productID, 0)
	require.NoError(t, err)

	h := commands.NewUpdateCartItemCommandHandler(cartStore, new(MockProductRepository))
	require.NoError(t, h.Handle(ctx, cmd))
	require.True(t, customerCart.IsEmpty())
}
