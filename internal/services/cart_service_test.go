package services

import (
	"context"
	"testing"

	"foodcourt/internal/apperrors"
	"foodcourt/internal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCartStore struct {
	states map[string]cart.State
}

func newMemCartStore() *memCartStore {
	return &memCartStore{states: make(map[string]cart.State)}
}

func (m *memCartStore) Save(_ context.Context, key string, state cart.State) error {
	m.states[key] = state
	return nil
}

func (m *memCartStore) Load(_ context.Context, key string) (cart.State, bool, error) {
	state, ok := m.states[key]
	if !ok {
		return cart.Empty(), false, nil
	}
	return state, true, nil
}

func (m *memCartStore) Watch(context.Context, string) (<-chan cart.State, error) {
	return make(chan cart.State), nil
}

func newTestCartService(t *testing.T) (CartService, *fakeMenuRepo, OrderService) {
	t.Helper()
	menuRepo := newFakeMenuRepo()
	orderService := NewOrderService(newFakeOrderRepo(), menuRepo)
	return NewCartService(newMemCartStore(), menuRepo, orderService), menuRepo, orderService
}

func TestCartAddRemove(t *testing.T) {
	svc, menuRepo, _ := newTestCartService(t)
	ctx := context.Background()

	soup := seedMenu(t, menuRepo, "Soup", "Appetizers", 5.00, true)

	state, err := svc.AddItem(ctx, 1, soup.ID)
	require.NoError(t, err)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 5.00, state.Total)

	state, err = svc.AddItem(ctx, 1, soup.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, 10.00, state.Total)

	state, err = svc.RemoveItem(ctx, 1, soup.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Items[0].Quantity)

	state, err = svc.RemoveItem(ctx, 1, soup.ID)
	require.NoError(t, err)
	assert.Empty(t, state.Items)
	assert.Zero(t, state.Total)
}

func TestCartAddUnknownOrUnavailable(t *testing.T) {
	svc, menuRepo, _ := newTestCartService(t)
	ctx := context.Background()

	stew := seedMenu(t, menuRepo, "Stew", "Main Course", 12.00, false)

	_, err := svc.AddItem(ctx, 1, 999)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	_, err = svc.AddItem(ctx, 1, stew.ID)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestCartsAreScopedPerUser(t *testing.T) {
	svc, menuRepo, _ := newTestCartService(t)
	ctx := context.Background()

	soup := seedMenu(t, menuRepo, "Soup", "Appetizers", 5.00, true)

	_, err := svc.AddItem(ctx, 1, soup.ID)
	require.NoError(t, err)

	other, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestCheckout(t *testing.T) {
	svc, menuRepo, orderService := newTestCartService(t)
	ctx := context.Background()

	soup := seedMenu(t, menuRepo, "Soup", "Appetizers", 5.00, true)
	cake := seedMenu(t, menuRepo, "Cake", "Desserts", 8.00, true)

	_, err := svc.AddItem(ctx, 1, soup.ID)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, 1, soup.ID)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, 1, cake.ID)
	require.NoError(t, err)

	order, err := svc.Checkout(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 18.00, order.TotalAmount)
	assert.Equal(t, "Pending", order.Status)

	// Cart is cleared after a successful checkout
	state, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, state.Items)

	// And the order is visible through the order service
	orders, err := orderService.ListForUser(1, false)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _, _ := newTestCartService(t)

	_, err := svc.Checkout(context.Background(), 1)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestCheckoutKeepsCartWhenItemBecameUnavailable(t *testing.T) {
	svc, menuRepo, _ := newTestCartService(t)
	ctx := context.Background()

	soup := seedMenu(t, menuRepo, "Soup", "Appetizers", 5.00, true)
	_, err := svc.AddItem(ctx, 1, soup.ID)
	require.NoError(t, err)

	// Admin flips availability between add-to-cart and checkout
	soup.Availability = false
	require.NoError(t, menuRepo.Update(soup))

	_, err = svc.Checkout(ctx, 1)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	state, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, state.Items, 1, "failed checkout must not clear the cart")
}
