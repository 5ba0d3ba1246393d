package services

import (
	"testing"

	"foodcourt/internal/apperrors"
	"foodcourt/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMenu(t *testing.T, repo *fakeMenuRepo, name, category string, price float64, available bool) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{Name: name, Category: category, Price: price, Availability: available}
	require.NoError(t, repo.Create(item))
	return item
}

func TestCreateOrderComputesTotal(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, menuRepo)

	soup := seedMenu(t, menuRepo, "Soup", "Appetizers", 5.00, true)
	cake := seedMenu(t, menuRepo, "Cake", "Desserts", 8.00, true)

	order, err := svc.Create(7, []OrderLine{
		{MenuItemID: soup.ID, Quantity: 2},
		{MenuItemID: cake.ID, Quantity: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 18.00, order.TotalAmount)
	assert.Equal(t, "Pending", order.Status)
	assert.Equal(t, uint(7), order.UserID)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Soup", order.Items[0].Name)
	assert.Equal(t, 5.00, order.Items[0].UnitPrice)
	assert.False(t, order.OrderedAt.IsZero())
}

func TestCreateOrderSnapshotsPrice(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, menuRepo)

	soup := seedMenu(t, menuRepo, "Soup", "Appetizers", 5.00, true)

	order, err := svc.Create(1, []OrderLine{{MenuItemID: soup.ID, Quantity: 2}})
	require.NoError(t, err)

	// Reprice the menu item after the order was placed
	soup.Price = 9.00
	require.NoError(t, menuRepo.Update(soup))

	got, err := svc.Get(order.ID, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 10.00, got.TotalAmount, "total must reflect price at creation time")
	assert.Equal(t, 5.00, got.Items[0].UnitPrice)
}

func TestCreateOrderValidation(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, menuRepo)

	soup := seedMenu(t, menuRepo, "Soup", "Appetizers", 5.00, true)
	stew := seedMenu(t, menuRepo, "Stew", "Main Course", 12.00, false)

	tests := []struct {
		name     string
		lines    []OrderLine
		wantKind apperrors.Kind
	}{
		{"empty order", nil, apperrors.KindValidation},
		{"zero quantity", []OrderLine{{MenuItemID: soup.ID, Quantity: 0}}, apperrors.KindValidation},
		{"unknown menu item", []OrderLine{{MenuItemID: 999, Quantity: 1}}, apperrors.KindValidation},
		{"unavailable item", []OrderLine{{MenuItemID: stew.ID, Quantity: 1}}, apperrors.KindConflict},
		{"one bad line fails the whole order", []OrderLine{
			{MenuItemID: soup.ID, Quantity: 1},
			{MenuItemID: stew.ID, Quantity: 1},
		}, apperrors.KindConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(1, tt.lines)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
		})
	}

	// Nothing may have been persisted by the failed attempts
	orders, err := svc.ListForUser(1, true)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestListForUserScoping(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, menuRepo)

	soup := seedMenu(t, menuRepo, "Soup", "Appetizers", 5.00, true)

	_, err := svc.Create(1, []OrderLine{{MenuItemID: soup.ID, Quantity: 1}})
	require.NoError(t, err)
	_, err = svc.Create(2, []OrderLine{{MenuItemID: soup.ID, Quantity: 3}})
	require.NoError(t, err)

	own, err := svc.ListForUser(1, false)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, uint(1), own[0].UserID)

	// Admins see every order in the system
	all, err := svc.ListForUser(99, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetOrderAuthorization(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, menuRepo)

	soup := seedMenu(t, menuRepo, "Soup", "Appetizers", 5.00, true)
	order, err := svc.Create(1, []OrderLine{{MenuItemID: soup.ID, Quantity: 1}})
	require.NoError(t, err)

	_, err = svc.Get(order.ID, 1, false)
	assert.NoError(t, err)

	_, err = svc.Get(order.ID, 2, false)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	// Admin may fetch any order
	_, err = svc.Get(order.ID, 2, true)
	assert.NoError(t, err)

	_, err = svc.Get(999, 1, false)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestUpdateStatus(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, menuRepo)

	soup := seedMenu(t, menuRepo, "Soup", "Appetizers", 5.00, true)
	order, err := svc.Create(1, []OrderLine{{MenuItemID: soup.ID, Quantity: 1}})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(order.ID, "Confirmed", false)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	_, err = svc.UpdateStatus(order.ID, "Shipped", true)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = svc.UpdateStatus(999, "Confirmed", true)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	// Pending cannot jump straight to Delivered
	_, err = svc.UpdateStatus(order.ID, "Delivered", true)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	// Failed updates leave the stored status untouched
	stored, err := svc.Get(order.ID, 1, false)
	require.NoError(t, err)
	assert.Equal(t, "Pending", stored.Status)

	// Walk the full lifecycle
	for _, status := range []string{"Confirmed", "Preparing", "Out for Delivery", "Delivered"} {
		updated, err := svc.UpdateStatus(order.ID, status, true)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	stored, err = svc.Get(order.ID, 1, false)
	require.NoError(t, err)
	assert.Equal(t, "Delivered", stored.Status)

	// Delivered is terminal
	_, err = svc.UpdateStatus(order.ID, "Cancelled", true)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}
